package goquery

import "github.com/PuerkitoBio/goquery"

// Structural markers that identify MediaWiki-rendered output. A page is
// considered a wiki page if any one of them is present.
var validationMarkers = []string{
	"#mw-content-text",
	".mw-parser-output",
	"h1#firstHeading",
	"#mw-head",
}

// isValidPage reports whether the loaded tree looks like a wiki page.
func isValidPage(doc *goquery.Document) bool {
	for _, marker := range validationMarkers {
		if doc.Find(marker).Length() > 0 {
			return true
		}
	}
	return false
}
