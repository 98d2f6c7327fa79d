// Package boxton renders the Boxton page layout: header, top region, status
// messages, page title, tabs, action links, main content, bottom region and
// footer, wrapped in an outer and inner container.
package boxton

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/goliatone/go-boxton/pkg/layout"
	"github.com/goliatone/go-boxton/pkg/render"
	rendertemplate "github.com/goliatone/go-boxton/pkg/render/template"
	gotemplate "github.com/goliatone/go-boxton/pkg/render/template/gotemplate"
	"github.com/goliatone/go-boxton/pkg/sanitize"
	"github.com/goliatone/go-boxton/pkg/themes"
)

// Name is the registry name of the Boxton renderer.
const Name = "boxton"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateDir      string
	templateRenderer rendertemplate.TemplateRenderer
	templateName     string
	flattener        render.AttributeFlattener
	sanitizer        sanitize.Sanitizer
	logger           hclog.Logger
	i18n             render.TemplateI18nConfig
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk instead of the
// embedded bundle.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateDir = path
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithTemplateName overrides the layout template path.
func WithTemplateName(name string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cfg.templateName = trimmed
		}
	}
}

// WithAttributeFlattener replaces render.FlattenAttributes.
func WithAttributeFlattener(fn render.AttributeFlattener) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.flattener = fn
		}
	}
}

// WithSanitizer cleans messages, tabs, action links, title fragments and
// region markup before presence checks and output.
func WithSanitizer(s sanitize.Sanitizer) Option {
	return func(cfg *config) {
		cfg.sanitizer = s
	}
}

// WithLogger sets the logger used for template selection and missing
// translations.
func WithLogger(logger hclog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithI18nConfig customises the translation helper exposed to templates.
func WithI18nConfig(i18n render.TemplateI18nConfig) Option {
	return func(cfg *config) {
		cfg.i18n = i18n
	}
}

// Renderer renders layout.Page values with the Boxton template. It holds no
// per-render state and is safe for concurrent use.
type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	templateName string
	flattener    render.AttributeFlattener
	sanitizer    sanitize.Sanitizer
	logger       hclog.Logger
	i18n         render.TemplateI18nConfig
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the Boxton renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:   TemplatesFS(),
		templateName: DefaultTemplate,
		flattener:    render.FlattenAttributes,
		logger:       hclog.NewNullLogger(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		source := gotemplate.WithFS(cfg.templateFS)
		if cfg.templateDir != "" {
			source = gotemplate.WithBaseDir(cfg.templateDir)
		}
		engine, err := gotemplate.New(source, gotemplate.WithExtension(".tpl"))
		if err != nil {
			return nil, fmt.Errorf("boxton renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:    renderer,
		templateName: cfg.templateName,
		flattener:    cfg.flattener,
		sanitizer:    cfg.sanitizer,
		logger:       cfg.logger.Named(Name),
		i18n:         cfg.i18n,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(options ...Option) *Renderer {
	r, err := New(options...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the layout fragment for page. Optional slots are omitted
// when empty; the main content landmark and action links are always emitted.
func (r *Renderer) Render(ctx context.Context, page layout.Page, options render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("boxton renderer: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, errors.New("boxton renderer: template renderer is nil")
	}

	data, err := r.viewData(ctx, page, options)
	if err != nil {
		return nil, err
	}

	name := r.resolveTemplate(options)
	result, err := r.templates.RenderTemplate(name, data)
	if err != nil {
		return nil, fmt.Errorf("boxton renderer: render template: %w", err)
	}
	return []byte(strings.TrimSpace(result)), nil
}

func (r *Renderer) viewData(ctx context.Context, page layout.Page, options render.RenderOptions) (map[string]any, error) {
	var prefix, suffix layout.Markup
	if page.Title != "" {
		var err error
		if prefix, err = renderFragment(ctx, page.TitlePrefix); err != nil {
			return nil, fmt.Errorf("boxton renderer: render title prefix: %w", err)
		}
		if suffix, err = renderFragment(ctx, page.TitleSuffix); err != nil {
			return nil, fmt.Errorf("boxton renderer: render title suffix: %w", err)
		}
	}

	clean := func(m layout.Markup) string {
		return string(sanitize.Markup(r.sanitizer, m))
	}

	data := map[string]any{
		"classes":         render.JoinClasses(page.Classes),
		"attributes":      r.flattener(r.wrapperAttributes(page.Attributes, options)),
		"wrap_attributes": r.flattener(page.WrapAttributes),
		"title":           page.Title,
		"title_prefix":    clean(prefix),
		"title_suffix":    clean(suffix),
		"messages":        clean(page.Messages),
		"tabs":            clean(page.Tabs),
		"action_links":    clean(page.ActionLinks),
		"content": map[string]any{
			layout.RegionHeader:  clean(page.Content.Header),
			layout.RegionTop:     clean(page.Content.Top),
			layout.RegionContent: clean(page.Content.Content),
			layout.RegionBottom:  clean(page.Content.Bottom),
			layout.RegionFooter:  clean(page.Content.Footer),
		},
	}

	for name, fn := range render.TemplateI18nFuncs(r.translationOptions(options), r.i18n) {
		data[name] = fn
	}
	return data, nil
}

// wrapperAttributes tags the outer wrapper with the active theme. Page
// supplied attributes win over theme defaults.
func (r *Renderer) wrapperAttributes(attrs layout.Attributes, options render.RenderOptions) layout.Attributes {
	cfg := options.Theme
	if cfg == nil {
		return attrs
	}

	out := layout.Attributes{}
	if cfg.Theme != "" {
		out["data-theme"] = cfg.Theme
	}
	if cfg.Variant != "" {
		out["data-theme-variant"] = cfg.Variant
	}
	if style := themes.CSSVarsStyle(cfg.CSSVars); style != "" {
		out["style"] = style
	}
	for key, value := range attrs {
		out[key] = value
	}
	return out
}

func (r *Renderer) resolveTemplate(options render.RenderOptions) string {
	if options.Theme == nil {
		return r.templateName
	}
	partial := strings.TrimSpace(options.Theme.Partials[themes.PartialLayout])
	if partial == "" || partial == r.templateName {
		return r.templateName
	}

	if !r.templates.HasTemplate(partial) {
		r.logger.Warn("theme layout partial not found, using default", "theme", options.Theme.Theme, "partial", partial)
		return r.templateName
	}
	r.logger.Trace("using theme layout partial", "theme", options.Theme.Theme, "partial", partial)
	return partial
}

func (r *Renderer) translationOptions(options render.RenderOptions) render.RenderOptions {
	if options.Translator == nil {
		return options
	}
	onMissing := options.OnMissing
	if onMissing == nil {
		onMissing = render.MissingTranslationFallback
	}
	logger := r.logger
	options.OnMissing = func(locale, key string, args []any, err error) string {
		logger.Debug("missing translation", "locale", locale, "key", key, "error", err)
		return onMissing(locale, key, args, err)
	}
	return options
}

func renderFragment(ctx context.Context, fragment layout.Fragment) (layout.Markup, error) {
	if fragment == nil {
		return "", nil
	}
	return fragment.RenderFragment(ctx)
}
