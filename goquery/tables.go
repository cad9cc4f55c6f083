package goquery

import "github.com/PuerkitoBio/goquery"

// canonicalTableClass is the styling class every content table carries after
// normalization, so consumers can style tables uniformly.
const canonicalTableClass = "wikitable"

// Presentation attributes stripped from tables and their descendants.
// Inline presentation is the consumer's concern, not the content's.
var tableLayoutAttrs = []string{"style", "border", "cellpadding", "cellspacing"}

// normalizeTables ensures every table carries the canonical styling class
// and strips layout-affecting attributes from the table and all descendants.
func normalizeTables(sel *goquery.Selection) {
	sel.Find("table").Each(func(_ int, table *goquery.Selection) {
		table.AddClass(canonicalTableClass)

		stripLayoutAttrs(table)
		table.Find("*").Each(func(_ int, desc *goquery.Selection) {
			stripLayoutAttrs(desc)
		})
	})
}

func stripLayoutAttrs(s *goquery.Selection) {
	for _, attr := range tableLayoutAttrs {
		s.RemoveAttr(attr)
	}
}
