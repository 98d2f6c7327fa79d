package layout

// PageOption customises a Page built with NewPage.
type PageOption func(*Page)

// NewPage returns a Page seeded with the layout class and any options applied
// in order.
func NewPage(options ...PageOption) Page {
	page := Page{Classes: []string{DefaultClass}}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&page)
	}
	return page
}

// WithTitle sets the plain text page title.
func WithTitle(title string) PageOption {
	return func(p *Page) {
		p.Title = title
	}
}

// WithTitleFragments sets the extension points around the title heading.
func WithTitleFragments(prefix, suffix Fragment) PageOption {
	return func(p *Page) {
		p.TitlePrefix = prefix
		p.TitleSuffix = suffix
	}
}

// WithMessages sets the status message markup.
func WithMessages(markup Markup) PageOption {
	return func(p *Page) {
		p.Messages = markup
	}
}

// WithTabs sets the secondary navigation markup.
func WithTabs(markup Markup) PageOption {
	return func(p *Page) {
		p.Tabs = markup
	}
}

// WithActionLinks sets the action link markup.
func WithActionLinks(markup Markup) PageOption {
	return func(p *Page) {
		p.ActionLinks = markup
	}
}

// WithClasses appends classes to the outer wrapper.
func WithClasses(classes ...string) PageOption {
	return func(p *Page) {
		p.Classes = append(p.Classes, classes...)
	}
}

// WithAttributes sets the outer wrapper attributes.
func WithAttributes(attrs Attributes) PageOption {
	return func(p *Page) {
		p.Attributes = attrs.Clone()
	}
}

// WithWrapAttributes sets the inner wrapper attributes.
func WithWrapAttributes(attrs Attributes) PageOption {
	return func(p *Page) {
		p.WrapAttributes = attrs.Clone()
	}
}

// WithRegion stores markup for a named region. Unknown names are ignored;
// use Regions.Set directly to observe the error.
func WithRegion(name string, markup Markup) PageOption {
	return func(p *Page) {
		_ = p.Content.Set(name, markup)
	}
}
