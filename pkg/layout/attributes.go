package layout

import "sort"

// Attributes maps HTML attribute names to values. Supported value kinds are
// documented on render.FlattenAttributes.
type Attributes map[string]any

// Clone returns a shallow copy. Slice values are copied.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	for key, value := range a {
		if list, ok := value.([]string); ok {
			value = append([]string(nil), list...)
		}
		out[key] = value
	}
	return out
}

// Keys returns attribute names in sorted order.
func (a Attributes) Keys() []string {
	keys := make([]string, 0, len(a))
	for key := range a {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// With returns a copy of a with key set to value.
func (a Attributes) With(key string, value any) Attributes {
	out := a.Clone()
	if out == nil {
		out = make(Attributes, 1)
	}
	out[key] = value
	return out
}
