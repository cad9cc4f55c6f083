package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Fallback selectors tried in order when the configured content selector
// matches nothing usable. The locator stops at the first non-empty match.
var contentFallbacks = []string{
	".mw-parser-output",
	"#content",
	"#bodyContent",
}

// locateContent finds the primary content subtree. A selector match that
// carries no text and no element children counts as a miss, so an empty
// content container falls through to the next selector. Returns nil when
// every selector is exhausted.
func locateContent(doc *goquery.Document, primary string) *goquery.Selection {
	selectors := append([]string{primary}, contentFallbacks...)

	for _, selector := range selectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if strings.TrimSpace(sel.Text()) == "" && sel.Children().Length() == 0 {
			continue
		}
		return sel
	}

	return nil
}
