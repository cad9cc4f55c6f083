package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	wikifetch "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api"
)

// normalizeLinks runs the link pass over the subtree in place. Dead links
// (edit actions, missing-page "red" links, self-links) are unwrapped to
// their own text content; root-relative internal hrefs are absolutized.
func normalizeLinks(sel *goquery.Selection, opts wikifetch.LinkOptions) {
	sel.Find("a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok || href == "" {
			return
		}

		if isDeadLink(a, href) {
			// Replace with a bare text node so the label needs no re-escaping.
			a.ReplaceWithNodes(&html.Node{Type: html.TextNode, Data: a.Text()})
			return
		}

		if opts.ConvertInternal && strings.HasPrefix(href, "/") {
			a.SetAttr("href", absolutizeURL(href, opts.BaseURL))
		}
	})
}

// isDeadLink reports whether an anchor denotes an edit action, a
// missing-page link, or a self-link. Such links are meaningless to an
// offline consumer and would otherwise dangle.
func isDeadLink(a *goquery.Selection, href string) bool {
	if a.HasClass("mw-selflink") || a.HasClass("new") {
		return true
	}
	return strings.Contains(href, "action=edit") ||
		strings.Contains(href, "veaction=edit") ||
		strings.Contains(href, "redlink=1")
}
