package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Presentation furniture removed before deriving plain text, on top of the
// regular noise selectors: structural panels whose text is not prose.
var textRemoveSelectors = []string{
	"script",
	"style",
	"noscript",
	tocSelector,
	".navbox",
	`[class*="` + infoboxMarker + `"]`,
}

var spaceRunRe = regexp.MustCompile(`[^\S\n]+`)

// deriveText produces the plain-text rendition of the cleaned content.
// It operates on a fresh tree parsed from the serialized subtree so the
// additional removals never touch the HTML output.
func deriveText(contentHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contentHTML))
	if err != nil {
		return ""
	}

	for _, selector := range textRemoveSelectors {
		doc.Find(selector).Remove()
	}

	return normalizeText(doc.Text())
}

// normalizeText collapses horizontal whitespace runs to single spaces,
// trims every line, and collapses excess blank-line runs.
func normalizeText(raw string) string {
	collapsed := spaceRunRe.ReplaceAllString(raw, " ")

	lines := strings.Split(collapsed, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}

	return strings.TrimSpace(collapseBlankLines(strings.Join(lines, "\n")))
}
