package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	wikifetch "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api"
)

// infoboxMarker is the class substring identifying infobox panels. The
// Minecraft Wiki uses both "infobox" and its "notaninfobox" variant, and
// the substring match covers both.
const infoboxMarker = "infobox"

// infoboxTitleSelector matches the title/name-labeled child of an infobox.
const infoboxTitleSelector = ".infobox-title, .infobox-above, .infobox-header, .mcwiki-header, caption"

// tocSelector matches the table-of-contents container.
const tocSelector = "#toc, .toc"

// extractComponents walks the cleaned subtree and produces the structural
// inventory. Malformed sub-elements degrade to best-effort summaries (a
// table with no rows reports zero counts) rather than failing the call.
func extractComponents(sel *goquery.Selection) wikifetch.ContentComponents {
	return wikifetch.ContentComponents{
		Sections:  extractSections(sel),
		Images:    extractImages(sel),
		Tables:    extractTables(sel),
		Infoboxes: extractInfoboxes(sel),
		Toc:       extractToc(sel),
	}
}

// extractSections returns one Section per heading element with non-empty
// text, in document order. The list is flat; hierarchy is implicit via
// consecutive levels.
func extractSections(sel *goquery.Selection) []wikifetch.Section {
	sections := []wikifetch.Section{}

	sel.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, h *goquery.Selection) {
		text := strings.TrimSpace(h.Text())
		if text == "" {
			return
		}

		id, ok := h.Attr("id")
		if !ok || id == "" {
			// MediaWiki puts the identifier on the headline span.
			id = h.Find(".mw-headline").First().AttrOr("id", "")
		}

		anchor := ""
		if id != "" {
			anchor = "#" + id
		}

		sections = append(sections, wikifetch.Section{
			Level:  headingLevel(goquery.NodeName(h)),
			Text:   text,
			ID:     id,
			Anchor: anchor,
		})
	})

	return sections
}

func headingLevel(tag string) int {
	if len(tag) != 2 || tag[0] != 'h' {
		return 0
	}
	return int(tag[1] - '0')
}

// extractImages returns one ImageRef per image with a non-empty src.
func extractImages(sel *goquery.Selection) []wikifetch.ImageRef {
	images := []wikifetch.ImageRef{}

	sel.Find("img").Each(func(_ int, img *goquery.Selection) {
		src, ok := img.Attr("src")
		if !ok || src == "" {
			return
		}

		ref := wikifetch.ImageRef{
			Src:     src,
			Alt:     img.AttrOr("alt", ""),
			Caption: siblingCaption(img),
		}
		if w, ok := parseDimension(img, "width"); ok {
			ref.Width = w
		}
		if h, ok := parseDimension(img, "height"); ok {
			ref.Height = h
		}

		images = append(images, ref)
	})

	return images
}

// extractTables returns one TableSummary per table element. ColCount is
// the header-or-data cell count of the first row only, a documented
// approximation that misreports tables with merged cells.
func extractTables(sel *goquery.Selection) []wikifetch.TableSummary {
	tables := []wikifetch.TableSummary{}

	sel.Find("table").Each(func(_ int, table *goquery.Selection) {
		rows := table.Find("tr")

		tables = append(tables, wikifetch.TableSummary{
			Caption:   strings.TrimSpace(table.Find("caption").First().Text()),
			RowCount:  rows.Length(),
			ColCount:  rows.First().Find("th, td").Length(),
			HasHeader: table.Find("th").Length() > 0,
		})
	})

	return tables
}

// extractInfoboxes returns one InfoboxSummary per element carrying the
// infobox marker class. Nested marker elements (title bars, cells) are
// attributed to their outermost infobox rather than counted separately.
func extractInfoboxes(sel *goquery.Selection) []wikifetch.InfoboxSummary {
	infoboxes := []wikifetch.InfoboxSummary{}
	markerSelector := `[class*="` + infoboxMarker + `"]`

	sel.Find(markerSelector).Each(func(_ int, box *goquery.Selection) {
		if box.ParentsFiltered(markerSelector).Length() > 0 {
			return
		}

		infoboxes = append(infoboxes, wikifetch.InfoboxSummary{
			Title:    strings.TrimSpace(box.Find(infoboxTitleSelector).First().Text()),
			Type:     infoboxType(box),
			HasImage: box.Find("img").Length() > 0,
		})
	})

	return infoboxes
}

// infoboxType returns the first class token containing the infobox marker
// substring, defaulting to the generic marker if none is more specific.
func infoboxType(box *goquery.Selection) string {
	for _, class := range strings.Fields(box.AttrOr("class", "")) {
		if strings.Contains(class, infoboxMarker) {
			return class
		}
	}
	return infoboxMarker
}

// extractToc returns the table of contents, or nil if the page has no TOC
// container. A present container with no usable anchors yields a Toc with
// zero items - callers must be able to tell the two apart.
func extractToc(sel *goquery.Selection) *wikifetch.Toc {
	container := sel.Find(tocSelector).First()
	if container.Length() == 0 {
		return nil
	}

	toc := &wikifetch.Toc{Items: []wikifetch.TocItem{}}
	container.Find("a").Each(func(_ int, a *goquery.Selection) {
		text := strings.TrimSpace(a.Text())
		href := a.AttrOr("href", "")
		if text == "" || href == "" {
			return
		}
		toc.Items = append(toc.Items, wikifetch.TocItem{Text: text, Href: href})
	})

	return toc
}
