package wikifetch

// DefaultBaseURL is the wiki origin used for URL absolutization.
const DefaultBaseURL = "https://minecraft.wiki"

// Minimum declared dimensions below which images are treated as decorative
// and removed together with their thumbnail container.
const (
	DefaultMinImageWidth  = 50
	DefaultMinImageHeight = 50
)

// ParserOptions configures the extraction pipeline. A parser's options are
// shared read-only across concurrent extractions; per-call variations should
// be passed as an overlay, never by mutating shared defaults.
type ParserOptions struct {
	// ContentSelector locates the primary content subtree. Fallback
	// selectors are a fixed priority list owned by the pipeline.
	ContentSelector string

	// RemoveSelectors lists noise elements stripped during cleaning.
	RemoveSelectors []string

	// PreserveSelectors is accepted for configuration compatibility but is
	// not consulted by the cleaning logic.
	PreserveSelectors []string

	Images ImageOptions
	Links  LinkOptions
}

// ImageOptions configures the media normalization pass.
type ImageOptions struct {
	// ConvertToAbsolute rewrites root-relative image sources against the
	// link BaseURL.
	ConvertToAbsolute bool

	// RemoveSmall removes images whose declared width or height falls
	// below the minimums, together with their enclosing thumbnail.
	RemoveSmall bool

	MinWidth  int
	MinHeight int
}

// LinkOptions configures the link normalization pass.
type LinkOptions struct {
	// ConvertInternal rewrites root-relative hrefs against BaseURL.
	ConvertInternal bool

	// PreserveExternal keeps external links untouched.
	PreserveExternal bool

	// BaseURL is the wiki origin used for all absolutization.
	BaseURL string
}

// DefaultParserOptions returns the documented default configuration, tuned
// for MediaWiki output as rendered by the Minecraft Wiki.
func DefaultParserOptions() ParserOptions {
	return ParserOptions{
		ContentSelector: "#mw-content-text",
		RemoveSelectors: []string{
			"script",
			"style",
			"noscript",
			".mw-editsection",
			".mw-jump-link",
			".mw-indicators",
			".mw-cite-backlink",
			".navbox",
			".metadata",
			".hatnote",
			".dablink",
			".printfooter",
			".catlinks",
			"#siteSub",
		},
		PreserveSelectors: []string{},
		Images: ImageOptions{
			ConvertToAbsolute: true,
			RemoveSmall:       true,
			MinWidth:          DefaultMinImageWidth,
			MinHeight:         DefaultMinImageHeight,
		},
		Links: LinkOptions{
			ConvertInternal:  true,
			PreserveExternal: true,
			BaseURL:          DefaultBaseURL,
		},
	}
}

// ParserOverrides selects option fields to replace over a base
// configuration. Nil fields keep the base value; slices replace the base
// slice wholesale, they are never appended. The merge is shallow: a non-nil
// Images or Links replaces the whole nested struct.
type ParserOverrides struct {
	ContentSelector   *string
	RemoveSelectors   []string
	PreserveSelectors []string
	Images            *ImageOptions
	Links             *LinkOptions
}

// Apply returns a copy of the options with the overrides merged in.
// The receiver is not modified.
func (o ParserOptions) Apply(ov ParserOverrides) ParserOptions {
	merged := o
	if ov.ContentSelector != nil {
		merged.ContentSelector = *ov.ContentSelector
	}
	if ov.RemoveSelectors != nil {
		merged.RemoveSelectors = ov.RemoveSelectors
	}
	if ov.PreserveSelectors != nil {
		merged.PreserveSelectors = ov.PreserveSelectors
	}
	if ov.Images != nil {
		merged.Images = *ov.Images
	}
	if ov.Links != nil {
		merged.Links = *ov.Links
	}
	return merged
}
