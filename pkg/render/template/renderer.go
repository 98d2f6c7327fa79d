package template

import (
	"io"
)

// TemplateRenderer is the seam between layout renderers and the template
// engine. View data is handed to templates unchanged; markup strings must
// reach the output byte for byte.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	HasTemplate(name string) bool
}
