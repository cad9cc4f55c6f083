package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	wikifetch "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api"
)

// Namespaces recognized when deriving the namespace from a title prefix.
var knownNamespaces = []string{
	"Category",
	"Template",
	"File",
	"Help",
	"User",
	"Module",
	"Talk",
	"MediaWiki",
	"Minecraft Wiki",
}

// pageTitle resolves the document title: the page heading wins, then the
// caller's hint, then the <title> element with the site suffix stripped.
func pageTitle(doc *goquery.Document, hint wikifetch.PageHint) string {
	if t := strings.TrimSpace(doc.Find("h1#firstHeading").First().Text()); t != "" {
		return t
	}
	if hint.Title != "" {
		return hint.Title
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	for _, sep := range []string{" – ", " - "} {
		if i := strings.Index(title, sep); i >= 0 {
			title = title[:i]
			break
		}
	}
	return title
}

func pageSubtitle(doc *goquery.Document) string {
	for _, selector := range []string{"#contentSub", "#siteSub"} {
		if sub := strings.TrimSpace(doc.Find(selector).First().Text()); sub != "" {
			return sub
		}
	}
	return ""
}

// pageCategories reads the category links block. Category URLs are
// absolutized; names are taken verbatim.
func pageCategories(doc *goquery.Document, baseURL string) []wikifetch.CategoryRef {
	categories := []wikifetch.CategoryRef{}

	doc.Find("#catlinks li a, .catlinks li a").Each(func(_ int, a *goquery.Selection) {
		name := strings.TrimSpace(a.Text())
		if name == "" {
			return
		}
		categories = append(categories, wikifetch.CategoryRef{
			Name: name,
			URL:  absolutizeURL(a.AttrOr("href", ""), baseURL),
		})
	})

	return categories
}

// pageLanguages reads the interlanguage link list verbatim.
func pageLanguages(doc *goquery.Document) []wikifetch.LanguageRef {
	languages := []wikifetch.LanguageRef{}

	doc.Find(".interlanguage-link a, li.interlanguage-link > a").Each(func(_ int, a *goquery.Selection) {
		name := strings.TrimSpace(a.Text())
		if name == "" {
			return
		}
		code := a.AttrOr("hreflang", "")
		if code == "" {
			code = a.AttrOr("lang", "")
		}
		languages = append(languages, wikifetch.LanguageRef{Name: name, Code: code})
	})

	return languages
}

// pageNamespace resolves the namespace: hint first, then a recognized
// title prefix, defaulting to the main namespace.
func pageNamespace(doc *goquery.Document, hint wikifetch.PageHint) string {
	if hint.Namespace != "" {
		return hint.Namespace
	}

	title := pageTitle(doc, hint)
	if i := strings.Index(title, ":"); i > 0 {
		prefix := title[:i]
		for _, ns := range knownNamespaces {
			if prefix == ns {
				return ns
			}
		}
	}

	return "main"
}

// pageLastModified reads the footer's last-modified line, or nil when the
// markup carries none.
func pageLastModified(doc *goquery.Document) *string {
	raw := strings.TrimSpace(doc.Find("#footer-info-lastmod").First().Text())
	if raw == "" {
		return nil
	}
	return &raw
}
