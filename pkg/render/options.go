package render

import (
	theme "github.com/goliatone/go-theme"
)

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the page inputs.
type RenderOptions struct {
	// Locale is forwarded to the Translator when resolving static UI strings
	// such as the skip link label.
	Locale string
	// Translator resolves static UI strings. When nil, source strings are
	// emitted unchanged.
	Translator Translator
	// OnMissing controls the string returned when a translation is missing.
	OnMissing MissingTranslationHandler
	// Theme carries the resolved theme configuration. When set, renderers tag
	// the outer wrapper with the theme name/variant and expose token CSS vars.
	Theme *theme.RendererConfig
}
