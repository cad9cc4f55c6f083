package wikifetch

import (
	"net/url"
	"strings"
)

// NormalizeTitle canonicalizes a page title for use as a cache key and URL
// path segment: surrounding whitespace is trimmed, inner spaces become
// underscores, and the first letter is uppercased the way MediaWiki does.
func NormalizeTitle(title string) string {
	t := strings.TrimSpace(title)
	t = strings.ReplaceAll(t, " ", "_")
	if t == "" {
		return t
	}
	r := []rune(t)
	r[0] = []rune(strings.ToUpper(string(r[0])))[0]
	return string(r)
}

// PageURL builds the canonical wiki page URL for a title against a base URL.
func PageURL(baseURL, title string) string {
	return strings.TrimRight(baseURL, "/") + "/w/" + url.PathEscape(NormalizeTitle(title))
}

// TitleFromURL extracts the page title from a wiki page URL. Returns an
// empty string if the URL does not look like a page URL.
func TitleFromURL(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	path := u.Path
	const prefix = "/w/"
	if !strings.HasPrefix(path, prefix) {
		return ""
	}
	raw := strings.TrimPrefix(path, prefix)
	unescaped, err := url.PathUnescape(raw)
	if err != nil {
		unescaped = raw
	}
	return strings.ReplaceAll(unescaped, "_", " ")
}
