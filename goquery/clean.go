package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Tags eligible for empty-leaf removal. Elements outside this whitelist are
// never removed for being empty, so intentionally-empty structural
// placeholders survive cleaning.
var emptyLeafTags = map[string]bool{
	"p":      true,
	"div":    true,
	"span":   true,
	"li":     true,
	"ul":     true,
	"ol":     true,
	"em":     true,
	"strong": true,
	"i":      true,
	"b":      true,
	"td":     true,
	"th":     true,
}

var blankLineRe = regexp.MustCompile(`\n{3,}`)

// clean strips noise elements and empty leaves from the subtree in place.
// Re-running clean on already-cleaned content is a no-op: empty-leaf removal
// iterates to a fixed point, so parents emptied by a removal are handled in
// the same call rather than on the next one.
func clean(sel *goquery.Selection, removeSelectors []string) {
	for _, selector := range removeSelectors {
		sel.Find(selector).Remove()
	}

	for removeEmptyLeaves(sel) > 0 {
	}
}

// removeEmptyLeaves removes whitelisted elements with no text and no element
// children, returning the number removed.
func removeEmptyLeaves(sel *goquery.Selection) int {
	removed := 0
	sel.Find("*").Each(func(_ int, s *goquery.Selection) {
		if !emptyLeafTags[goquery.NodeName(s)] {
			return
		}
		if s.Children().Length() > 0 {
			return
		}
		if strings.TrimSpace(s.Text()) != "" {
			return
		}
		s.Remove()
		removed++
	})
	return removed
}

// collapseBlankLines collapses runs of three or more consecutive newlines in
// serialized output to exactly two, keeping paragraph breaks intact.
func collapseBlankLines(s string) string {
	return blankLineRe.ReplaceAllString(s, "\n\n")
}
