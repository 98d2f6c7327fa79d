package render

import "errors"

var (
	// ErrMissingTranslator is reported to MissingTranslationHandler when no
	// Translator was configured.
	ErrMissingTranslator = errors.New("render: translator not configured")
	// ErrRendererNotFound is returned by Registry.Get for unknown names.
	ErrRendererNotFound = errors.New("render: renderer not found")
)
