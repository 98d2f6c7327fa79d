package render

import (
	"strings"
)

// TemplateI18nConfig configures template-level translation helpers.
type TemplateI18nConfig struct {
	// FuncName customizes the translator helper name (defaults to "t").
	FuncName string
}

// TemplateI18nFuncs returns helpers suitable for injecting into a template
// render context. The locale, translator and missing handler are taken from
// opts so every render resolves strings for its own request.
//
// The main helper signature is:
//
//	t(text) string
//
// A "current_locale" helper returning opts.Locale is also provided.
func TemplateI18nFuncs(opts RenderOptions, cfg TemplateI18nConfig) map[string]any {
	name := strings.TrimSpace(cfg.FuncName)
	if name == "" {
		name = "t"
	}

	return map[string]any{
		name: func(text string) string {
			return Translate(opts, text)
		},
		"current_locale": func() string {
			return opts.Locale
		},
	}
}
