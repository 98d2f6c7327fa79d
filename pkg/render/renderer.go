package render

import (
	"context"

	"github.com/goliatone/go-boxton/pkg/layout"
)

// Renderer converts a layout.Page into a byte representation (HTML fragment).
// Implementations must be safe for concurrent use and produce identical output
// for identical inputs.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, page layout.Page, options RenderOptions) ([]byte, error)
}
