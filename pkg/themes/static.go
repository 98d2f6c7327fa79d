package themes

import (
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ErrThemeNotFound is returned by StaticSelector when no manifest matches.
var ErrThemeNotFound = errors.New("themes: theme not found")

// StaticSelector serves selections from a fixed set of manifests. The first
// manifest registered is the default when Select receives an empty name.
type StaticSelector struct {
	manifests map[string]*theme.Manifest
	fallback  string
}

var _ theme.ThemeSelector = (*StaticSelector)(nil)

// NewStaticSelector indexes manifests by name. Nil manifests and manifests
// without a name are skipped.
func NewStaticSelector(manifests ...*theme.Manifest) *StaticSelector {
	s := &StaticSelector{manifests: make(map[string]*theme.Manifest, len(manifests))}
	for _, m := range manifests {
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m.Name)
		if name == "" {
			continue
		}
		if s.fallback == "" {
			s.fallback = name
		}
		s.manifests[name] = m
	}
	return s
}

// Select implements theme.ThemeSelector. Unknown variants are rejected so
// typos surface instead of rendering the base theme silently.
func (s *StaticSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.fallback
	}
	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	variant = strings.TrimSpace(variant)
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("%w: %q has no variant %q", ErrThemeNotFound, name, variant)
		}
	}
	return &theme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}
