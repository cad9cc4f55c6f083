package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	wikifetch "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api"
)

// thumbContainerSelector matches the wrapping element that groups an image
// with its caption and frame. Removing the container rather than the bare
// <img> avoids leaving orphaned caption markup behind.
const thumbContainerSelector = "figure, .thumb, .thumbinner"

// captionSelector matches the caption node inside a thumbnail container.
const captionSelector = "figcaption, .thumbcaption"

// normalizeImages runs the media pass over the subtree in place:
// root-relative sources are absolutized, undersized images are removed
// together with their thumbnail container, and missing alt text is
// synthesized from the sibling caption.
func normalizeImages(sel *goquery.Selection, opts wikifetch.ImageOptions, baseURL string) {
	sel.Find("img").Each(func(_ int, img *goquery.Selection) {
		if src, ok := img.Attr("src"); ok && src != "" && opts.ConvertToAbsolute {
			img.SetAttr("src", absolutizeURL(src, baseURL))
		}

		if opts.RemoveSmall && isUndersized(img, opts.MinWidth, opts.MinHeight) {
			container := img.Closest(thumbContainerSelector)
			if container.Length() > 0 {
				container.Remove()
			} else {
				img.Remove()
			}
			return
		}

		if _, ok := img.Attr("alt"); !ok {
			caption := siblingCaption(img)
			if caption != "" {
				img.SetAttr("alt", caption)
			}
		}
	})
}

// isUndersized reports whether a declared width or height falls below the
// minimums. Images without declared dimensions are never undersized.
func isUndersized(img *goquery.Selection, minWidth, minHeight int) bool {
	if w, ok := parseDimension(img, "width"); ok && w < minWidth {
		return true
	}
	if h, ok := parseDimension(img, "height"); ok && h < minHeight {
		return true
	}
	return false
}

func parseDimension(img *goquery.Selection, attr string) (int, bool) {
	raw, ok := img.Attr(attr)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(raw, "px")))
	if err != nil {
		return 0, false
	}
	return v, true
}

// siblingCaption returns the trimmed caption text inside the image's
// thumbnail container, or empty if the image is not inside one.
func siblingCaption(img *goquery.Selection) string {
	container := img.Closest(thumbContainerSelector)
	if container.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(container.Find(captionSelector).First().Text())
}

// absolutizeURL rewrites root-relative and protocol-relative URLs against
// the base URL. Absolute and unrecognized values are left untouched.
func absolutizeURL(raw, baseURL string) string {
	base := strings.TrimRight(baseURL, "/")
	switch {
	case strings.HasPrefix(raw, "//"):
		scheme := "https"
		if i := strings.Index(base, "://"); i > 0 {
			scheme = base[:i]
		}
		return scheme + ":" + raw
	case strings.HasPrefix(raw, "/"):
		return base + raw
	default:
		return raw
	}
}
