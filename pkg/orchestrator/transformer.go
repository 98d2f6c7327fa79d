package orchestrator

import (
	"context"

	"github.com/goliatone/go-boxton/pkg/layout"
)

// Transformer mutates a Page before it is rendered. Implementations can add
// classes, fill regions, or rewrite attributes per request.
type Transformer interface {
	Transform(ctx context.Context, page *layout.Page) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, page *layout.Page) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, page *layout.Page) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, page)
}

// EnsureClasses returns a transformer that appends classes missing from the
// page, preserving existing order.
func EnsureClasses(classes ...string) Transformer {
	return TransformerFunc(func(_ context.Context, page *layout.Page) error {
		seen := make(map[string]struct{}, len(page.Classes))
		for _, class := range page.Classes {
			seen[class] = struct{}{}
		}
		for _, class := range classes {
			if class == "" {
				continue
			}
			if _, ok := seen[class]; ok {
				continue
			}
			seen[class] = struct{}{}
			page.Classes = append(page.Classes, class)
		}
		return nil
	})
}
