// Package themes resolves go-theme selections into the renderer configuration
// consumed by layout renderers.
package themes

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// PartialLayout is the partial key a theme uses to override the Boxton layout
// template.
const PartialLayout = "layout.boxton"

// DefaultFallbacks returns the partials used when a theme does not override
// them.
func DefaultFallbacks() map[string]string {
	return map[string]string{
		PartialLayout: "templates/boxton.tpl",
	}
}

// Resolve selects name/variant through selector and flattens the selection
// into a RendererConfig. Manifest templates override fallbacks and variant
// templates override both; tokens follow the same precedence and are exposed
// as CSS custom properties prefixed with "--".
func Resolve(selector theme.ThemeSelector, name, variant string, fallbacks map[string]string) (*theme.RendererConfig, error) {
	if selector == nil {
		return nil, errors.New("themes: selector is required")
	}

	selection, err := selector.Select(strings.TrimSpace(name), strings.TrimSpace(variant))
	if err != nil {
		return nil, fmt.Errorf("themes: select %q/%q: %w", name, variant, err)
	}
	if selection == nil {
		return nil, fmt.Errorf("themes: selector returned no selection for %q", name)
	}
	return FromSelection(selection, fallbacks), nil
}

// FromSelection builds a RendererConfig from an already resolved selection.
func FromSelection(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	if selection == nil {
		return nil
	}

	cfg := &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: mergeStrings(fallbacks),
		Tokens:   map[string]string{},
	}

	manifest := selection.Manifest
	if manifest == nil {
		cfg.CSSVars = cssVars(cfg.Tokens)
		cfg.AssetURL = func(string) string { return "" }
		return cfg
	}
	if cfg.Theme == "" {
		cfg.Theme = manifest.Name
	}

	cfg.Partials = mergeStrings(cfg.Partials, manifest.Templates)
	cfg.Tokens = mergeStrings(manifest.Tokens)

	prefix := manifest.Assets.Prefix
	files := mergeStrings(manifest.Assets.Files)

	if v, ok := manifest.Variants[selection.Variant]; ok {
		cfg.Partials = mergeStrings(cfg.Partials, v.Templates)
		cfg.Tokens = mergeStrings(cfg.Tokens, v.Tokens)
		files = mergeStrings(files, v.Assets.Files)
		if strings.TrimSpace(v.Assets.Prefix) != "" {
			prefix = v.Assets.Prefix
		}
	}

	cfg.CSSVars = cssVars(cfg.Tokens)
	cfg.AssetURL = assetResolver(prefix, files)
	return cfg
}

// CSSVarsStyle renders CSS custom properties as an inline style value in
// sorted key order.
func CSSVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+vars[key])
	}
	return strings.Join(parts, "; ")
}

func cssVars(tokens map[string]string) map[string]string {
	out := make(map[string]string, len(tokens))
	for key, value := range tokens {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		out["--"+strings.TrimPrefix(key, "--")] = value
	}
	return out
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	return func(key string) string {
		file, ok := files[key]
		if !ok || strings.TrimSpace(file) == "" {
			return ""
		}
		if isAbsoluteURL(file) || strings.TrimSpace(prefix) == "" {
			return file
		}
		return path.Join(prefix, file)
	}
}

func isAbsoluteURL(value string) bool {
	return strings.HasPrefix(value, "http://") ||
		strings.HasPrefix(value, "https://") ||
		strings.HasPrefix(value, "//")
}

func mergeStrings(maps ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, m := range maps {
		for key, value := range m {
			out[key] = value
		}
	}
	return out
}
