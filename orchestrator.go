package boxton

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-boxton/pkg/layout"
	"github.com/goliatone/go-boxton/pkg/orchestrator"
	"github.com/goliatone/go-boxton/pkg/render"
)

// Page aliases layout.Page for callers that only import the root package.
type Page = layout.Page

// Regions aliases layout.Regions.
type Regions = layout.Regions

// Markup aliases layout.Markup.
type Markup = layout.Markup

// Attributes aliases layout.Attributes.
type Attributes = layout.Attributes

// RenderOptions carries per-request locale, translator and theme settings.
type RenderOptions = render.RenderOptions

// Request aliases orchestrator.Request.
type Request = orchestrator.Request

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewPage builds a Page seeded with the layout class.
func NewPage(options ...layout.PageOption) Page {
	return layout.NewPage(options...)
}

// RenderHTML renders page with the default Boxton renderer. It is the
// simplest entry point for callers that just want the layout fragment.
func RenderHTML(ctx context.Context, page Page, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{Page: page})
}

// RenderHTMLWithOptions renders page with explicit per-request options such
// as locale and translator.
func RenderHTMLWithOptions(ctx context.Context, page Page, opts RenderOptions, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{Page: page, RenderOptions: opts})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices are resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) orchestrator.Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}
