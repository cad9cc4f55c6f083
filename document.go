package wikifetch

import "time"

// PageHint carries optional metadata known by the caller about the page
// being extracted, typically from the request that triggered the fetch.
// Hints fill in fields the markup itself cannot provide reliably.
type PageHint struct {
	Title     string `json:"title,omitempty"`
	Namespace string `json:"namespace,omitempty"`
}

// ContentDocument is the fully extracted representation of a wiki page.
// It is immutable once constructed and owned by the caller after return.
type ContentDocument struct {
	Title        string        `json:"title"`
	Subtitle     string        `json:"subtitle"`
	Categories   []CategoryRef `json:"categories"`
	Languages    []LanguageRef `json:"languages"`
	Namespace    string        `json:"namespace"`
	LastModified *string       `json:"lastModified"`
	Content      ContentBody   `json:"content"`
	Meta         DocumentMeta  `json:"meta"`
}

// ContentBody holds the cleaned content in its three renditions. HTML is the
// serialization of the same subtree Text and Components were derived from.
type ContentBody struct {
	HTML       string            `json:"html"`
	Text       string            `json:"text"`
	Components ContentComponents `json:"components"`
}

// ContentComponents is the typed inventory of structural components found
// in the cleaned content subtree.
type ContentComponents struct {
	Sections  []Section         `json:"sections"`
	Images    []ImageRef        `json:"images"`
	Tables    []TableSummary    `json:"tables"`
	Infoboxes []InfoboxSummary  `json:"infoboxes"`
	Toc       *Toc              `json:"toc"`
}

// Section represents a heading in the content, in document order. Level
// mirrors heading depth (1-6); the list is flat, hierarchy is implicit via
// consecutive levels. Anchor is empty when ID is empty.
type Section struct {
	Level  int    `json:"level"`
	Text   string `json:"text"`
	ID     string `json:"id"`
	Anchor string `json:"anchor"`
}

// ImageRef describes an image found in the content. Src is always non-empty;
// images without a usable src are not emitted. Width and Height are zero
// when the markup declares no dimensions.
type ImageRef struct {
	Src     string `json:"src"`
	Alt     string `json:"alt"`
	Caption string `json:"caption"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
}

// TableSummary describes a table found in the content. ColCount is derived
// from the first row only, so tables with merged cells may misreport it.
type TableSummary struct {
	Caption   string `json:"caption"`
	RowCount  int    `json:"rowCount"`
	ColCount  int    `json:"colCount"`
	HasHeader bool   `json:"hasHeader"`
}

// InfoboxSummary describes an infobox panel found in the content.
type InfoboxSummary struct {
	Title    string `json:"title"`
	Type     string `json:"type"`
	HasImage bool   `json:"hasImage"`
}

// Toc is the page's table of contents. A nil *Toc means the page has no TOC
// container; a Toc with zero items means the container exists but is empty.
// Callers must distinguish the two.
type Toc struct {
	Items []TocItem `json:"items"`
}

// TocItem is a single table-of-contents entry.
type TocItem struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// CategoryRef is a category the page belongs to.
type CategoryRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// LanguageRef is an interlanguage link to the same page in another language.
type LanguageRef struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// DocumentMeta holds derived metadata about the extraction. The counts are
// taken from the component slice lengths at assembly time, so they always
// agree with Content.Components.
type DocumentMeta struct {
	WordCount    int       `json:"wordCount"`
	SectionCount int       `json:"sectionCount"`
	ImageCount   int       `json:"imageCount"`
	TableCount   int       `json:"tableCount"`
	ExtractedAt  time.Time `json:"extractedAt"`
}

// PageParser turns raw wiki markup into a ContentDocument. Implementations
// must never let an internal fault escape: every failure is returned as an
// error carrying one of the application error codes (EINVALID, ENOTWIKI,
// ENOTFOUND, EINTERNAL).
type PageParser interface {
	// Extract runs the full extraction pipeline over raw markup.
	// The hint supplies metadata the markup may lack.
	Extract(markup string, hint PageHint) (*ContentDocument, error)
}
