package boxton

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// DefaultTemplate is the template path rendered when no theme partial
// overrides the layout.
const DefaultTemplate = "templates/boxton.tpl"

// TemplatesFS exposes the embedded template bundle so callers can extend or
// copy the built-in layout.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
