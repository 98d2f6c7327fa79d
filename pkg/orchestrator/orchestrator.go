package orchestrator

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"
	"github.com/hashicorp/go-hclog"

	"github.com/goliatone/go-boxton/pkg/layout"
	"github.com/goliatone/go-boxton/pkg/render"
	"github.com/goliatone/go-boxton/pkg/renderers/boxton"
	"github.com/goliatone/go-boxton/pkg/themes"
)

const defaultRendererName = boxton.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithRendererOptions configures the built-in Boxton renderer registered when
// no registry is supplied.
func WithRendererOptions(options ...boxton.Option) Option {
	return func(o *Orchestrator) {
		o.rendererOptions = append(o.rendererOptions, options...)
	}
}

// WithTransformers registers transformers applied, in order, to every page
// before rendering.
func WithTransformers(transformers ...Transformer) Option {
	return func(o *Orchestrator) {
		o.transformers = append(o.transformers, transformers...)
	}
}

// WithThemeSelector resolves request themes through selector.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithDefaultTheme sets the theme and variant used when a request names none.
func WithDefaultTheme(name, variant string) Option {
	return func(o *Orchestrator) {
		o.defaultTheme = name
		o.defaultVariant = variant
	}
}

// WithThemeFallbacks overrides the partials used when a theme omits them.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		o.themeFallbacks = fallbacks
	}
}

// WithLogger sets the orchestrator logger. The built-in renderer inherits it.
func WithLogger(logger hclog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator coordinates transformers, theme resolution and rendering. It
// applies sensible defaults (Boxton renderer, embedded template) while
// remaining open to dependency injection.
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string
	rendererOptions []boxton.Option
	transformers    []Transformer
	themeSelector   theme.ThemeSelector
	defaultTheme    string
	defaultVariant  string
	themeFallbacks  map[string]string
	logger          hclog.Logger
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		logger:          hclog.NewNullLogger(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes a single page render.
type Request struct {
	// Page holds the layout inputs. It is copied; transformers never mutate
	// the caller's value.
	Page layout.Page

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant select a theme through the configured
	// selector. Empty values fall back to WithDefaultTheme.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries per-request locale and translator settings. A
	// Theme set here takes precedence over selector resolution.
	RenderOptions render.RenderOptions
}

// Generate applies transformers, resolves the theme, and renders the page.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	page := clonePage(req.Page)
	for _, transformer := range o.transformers {
		if transformer == nil {
			continue
		}
		if err := transformer.Transform(ctx, &page); err != nil {
			return nil, fmt.Errorf("orchestrator: transform page: %w", err)
		}
	}

	options := req.RenderOptions
	if options.Theme == nil {
		cfg, err := o.resolveTheme(req)
		if err != nil {
			return nil, err
		}
		options.Theme = cfg
	}

	renderer, err := o.registry.Resolve(req.Renderer, o.defaultRenderer)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	o.logger.Trace("rendering page", "renderer", renderer.Name(), "title", page.Title)

	output, err := renderer.Render(ctx, page, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Renderers lists the registered renderer names.
func (o *Orchestrator) Renderers() []string {
	if o.registry == nil {
		return nil
	}
	return o.registry.List()
}

func (o *Orchestrator) resolveTheme(req Request) (*theme.RendererConfig, error) {
	if o.themeSelector == nil {
		return nil, nil
	}
	name, variant := req.ThemeName, req.ThemeVariant
	if name == "" {
		name = o.defaultTheme
	}
	if variant == "" {
		variant = o.defaultVariant
	}

	fallbacks := o.themeFallbacks
	if fallbacks == nil {
		fallbacks = themes.DefaultFallbacks()
	}
	cfg, err := themes.Resolve(o.themeSelector, name, variant, fallbacks)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: resolve theme: %w", err)
	}
	o.logger.Debug("resolved theme", "theme", cfg.Theme, "variant", cfg.Variant)
	return cfg, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.registry == nil {
		o.registry = render.NewRegistry()
		options := append([]boxton.Option{boxton.WithLogger(o.logger)}, o.rendererOptions...)
		renderer, err := boxton.New(options...)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
			return
		}
		o.registry.MustRegister(renderer)
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	o.logger = o.logger.Named("orchestrator")
}

func clonePage(page layout.Page) layout.Page {
	page.Classes = append([]string(nil), page.Classes...)
	page.Attributes = page.Attributes.Clone()
	page.WrapAttributes = page.WrapAttributes.Clone()
	return page
}
