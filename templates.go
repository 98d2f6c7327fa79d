package boxton

import (
	"io/fs"

	boxtonrenderer "github.com/goliatone/go-boxton/pkg/renderers/boxton"
)

// EmbeddedTemplates exposes the built-in layout template so callers can reuse
// or extend it without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return boxtonrenderer.TemplatesFS()
}
