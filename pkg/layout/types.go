package layout

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Region names understood by Regions.Get and Regions.Set.
const (
	RegionHeader  = "header"
	RegionTop     = "top"
	RegionContent = "content"
	RegionBottom  = "bottom"
	RegionFooter  = "footer"
)

// DefaultClass identifies the Boxton layout wrapper.
const DefaultClass = "layout--boxton"

// ErrUnknownRegion is returned when a region name is not part of the layout.
var ErrUnknownRegion = errors.New("layout: unknown region")

// Markup is trusted HTML emitted verbatim by renderers.
type Markup string

// String returns the raw markup.
func (m Markup) String() string {
	return string(m)
}

// RenderFragment satisfies Fragment so static markup can fill extension points.
func (m Markup) RenderFragment(context.Context) (Markup, error) {
	return m, nil
}

// Fragment is an extension point rendered on demand (title prefix/suffix).
type Fragment interface {
	RenderFragment(ctx context.Context) (Markup, error)
}

// FragmentFunc adapts a function into a Fragment.
type FragmentFunc func(ctx context.Context) (Markup, error)

// RenderFragment calls f.
func (f FragmentFunc) RenderFragment(ctx context.Context) (Markup, error) {
	if f == nil {
		return "", nil
	}
	return f(ctx)
}

// IsPresent reports whether a slot should be rendered. Absent and empty
// values are equivalent.
func IsPresent(m Markup) bool {
	return m != ""
}

// Regions holds the markup for each named layout region.
type Regions struct {
	Header  Markup `json:"header,omitempty" yaml:"header,omitempty"`
	Top     Markup `json:"top,omitempty" yaml:"top,omitempty"`
	Content Markup `json:"content,omitempty" yaml:"content,omitempty"`
	Bottom  Markup `json:"bottom,omitempty" yaml:"bottom,omitempty"`
	Footer  Markup `json:"footer,omitempty" yaml:"footer,omitempty"`
}

// RegionNames lists the supported regions in document order.
func RegionNames() []string {
	return []string{RegionHeader, RegionTop, RegionContent, RegionBottom, RegionFooter}
}

// Get returns the markup stored for the named region.
func (r Regions) Get(name string) (Markup, error) {
	switch normalizeRegion(name) {
	case RegionHeader:
		return r.Header, nil
	case RegionTop:
		return r.Top, nil
	case RegionContent:
		return r.Content, nil
	case RegionBottom:
		return r.Bottom, nil
	case RegionFooter:
		return r.Footer, nil
	default:
		return "", unknownRegion(name)
	}
}

// Set stores markup for the named region.
func (r *Regions) Set(name string, markup Markup) error {
	switch normalizeRegion(name) {
	case RegionHeader:
		r.Header = markup
	case RegionTop:
		r.Top = markup
	case RegionContent:
		r.Content = markup
	case RegionBottom:
		r.Bottom = markup
	case RegionFooter:
		r.Footer = markup
	default:
		return unknownRegion(name)
	}
	return nil
}

// FromMap builds Regions from a name keyed mapping. Unknown keys are rejected.
func FromMap(values map[string]Markup) (Regions, error) {
	var regions Regions
	for name, markup := range values {
		if err := regions.Set(name, markup); err != nil {
			return Regions{}, err
		}
	}
	return regions, nil
}

// Page describes the inputs for a single layout render. Pages carry no state
// between renders; callers build a fresh Page per request.
type Page struct {
	// Title is plain text; renderers escape it.
	Title       string
	TitlePrefix Fragment
	TitleSuffix Fragment

	Messages    Markup
	Tabs        Markup
	ActionLinks Markup

	Classes        []string
	Attributes     Attributes
	WrapAttributes Attributes

	Content Regions
}

func normalizeRegion(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func unknownRegion(name string) error {
	return fmt.Errorf("%w %q", ErrUnknownRegion, name)
}
