package render

import (
	"fmt"
	"html"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/goliatone/go-boxton/pkg/layout"
)

// AttributeFlattener turns an attribute map into markup appended directly
// after an element's tag name.
type AttributeFlattener func(attrs layout.Attributes) string

// FlattenAttributes renders attrs as ` key="value"` pairs, each prefixed with a
// single space, in sorted key order. Values are HTML-escaped; keys that are
// not valid attribute names are dropped.
//
// Value handling:
//   - string and fmt.Stringer are emitted as-is
//   - []string and []any are joined with single spaces
//   - true emits the bare attribute name; false and nil omit the attribute
//   - any other scalar is formatted with fmt.Sprint
func FlattenAttributes(attrs layout.Attributes) string {
	if len(attrs) == 0 {
		return ""
	}

	var b strings.Builder
	for _, key := range attrs.Keys() {
		name := strings.TrimSpace(key)
		if !validAttributeName(name) {
			continue
		}
		value, emit, bare := attributeValue(attrs[key])
		if !emit {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(name)
		if bare {
			continue
		}
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(value))
		b.WriteByte('"')
	}
	return b.String()
}

// JoinClasses joins classes with single spaces, preserving order.
func JoinClasses(classes []string) string {
	return strings.Join(classes, " ")
}

func attributeValue(value any) (string, bool, bool) {
	switch v := value.(type) {
	case nil:
		return "", false, false
	case bool:
		return "", v, true
	case string:
		return v, true, false
	case layout.Markup:
		return string(v), true, false
	case []string:
		return strings.Join(v, " "), true, false
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, " "), true, false
	case fmt.Stringer:
		return v.String(), true, false
	default:
		return fmt.Sprint(v), true, false
	}
}

// validAttributeName rejects names the HTML tokenizer would split or end
// early: empty names, whitespace, controls, quotes, '<', '>', '/', '=' and '&'.
func validAttributeName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if unicode.IsSpace(r) || unicode.IsControl(r) || r == utf8.RuneError {
			return false
		}
		switch r {
		case '"', '\'', '<', '>', '/', '=', '&':
			return false
		}
	}
	return true
}
