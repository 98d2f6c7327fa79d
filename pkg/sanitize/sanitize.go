// Package sanitize provides bluemonday policies for region markup supplied by
// untrusted sources.
package sanitize

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-boxton/pkg/layout"
)

// Sanitizer cleans markup before it is emitted. *bluemonday.Policy satisfies it.
type Sanitizer interface {
	Sanitize(s string) string
}

var (
	fragmentPolicyOnce sync.Once
	fragmentPolicy     *bluemonday.Policy
)

// FragmentPolicy returns the shared policy for layout regions: user generated
// content rules plus the landmark and accessibility attributes layout blocks
// rely on. The returned policy must not be mutated.
func FragmentPolicy() *bluemonday.Policy {
	fragmentPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowElements("nav", "header", "footer", "section", "article", "aside", "main")
		policy.AllowAttrs("class", "id").Globally()
		policy.AllowAttrs("role", "aria-label", "aria-labelledby", "aria-hidden", "aria-current").Globally()
		policy.AllowDataAttributes()
		fragmentPolicy = policy
	})
	return fragmentPolicy
}

// Markup runs markup through s. A nil sanitizer returns markup unchanged.
func Markup(s Sanitizer, markup layout.Markup) layout.Markup {
	if s == nil || markup == "" {
		return markup
	}
	return layout.Markup(s.Sanitize(string(markup)))
}
