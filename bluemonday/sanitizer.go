// Package bluemonday sanitizes extracted wiki HTML before it is served.
package bluemonday

import (
	"github.com/microcosm-cc/bluemonday"

	wikifetch "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api"
)

// Compile-time check that Sanitizer implements the interface.
var _ wikifetch.Sanitizer = (*Sanitizer)(nil)

// Sanitizer strips scripts, event handlers, and other active content
// while keeping the structural markup the extraction pipeline produces.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a sanitizer with a policy tuned for wiki content.
func NewSanitizer() *Sanitizer {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class", "id").Globally()
	p.AllowAttrs("width", "height", "alt").OnElements("img")
	p.AllowAttrs("colspan", "rowspan").OnElements("td", "th")
	p.AllowElements("figure", "figcaption", "caption")
	return &Sanitizer{policy: p}
}

// Sanitize returns html with disallowed elements and attributes removed.
func (s *Sanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}
