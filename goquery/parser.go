// Package goquery implements the wiki content extraction pipeline on top
// of the goquery DOM library. The pipeline is a straight-line sequence of
// in-place tree transforms: validate, locate content, clean, normalize
// media/links/tables, extract components, derive text. Each invocation
// operates on its own tree; a Parser holds only immutable configuration
// and is safe to share across concurrent extractions.
package goquery

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	wikifetch "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api"
)

// Ensure Parser implements wikifetch.PageParser at compile time.
var _ wikifetch.PageParser = (*Parser)(nil)

// Parser runs the extraction pipeline with a fixed default configuration.
type Parser struct {
	opts wikifetch.ParserOptions
}

// NewParser creates a Parser with the documented default options.
func NewParser() *Parser {
	return &Parser{opts: wikifetch.DefaultParserOptions()}
}

// NewParserWithOptions creates a Parser with the defaults overridden.
func NewParserWithOptions(ov wikifetch.ParserOverrides) *Parser {
	return &Parser{opts: wikifetch.DefaultParserOptions().Apply(ov)}
}

// Options returns a copy of the parser's configuration.
func (p *Parser) Options() wikifetch.ParserOptions {
	return p.opts
}

// Extract runs the full pipeline over raw markup using the parser's
// configuration.
func (p *Parser) Extract(markup string, hint wikifetch.PageHint) (*wikifetch.ContentDocument, error) {
	return p.extract(markup, hint, p.opts)
}

// ExtractWithOptions is like Extract but applies a per-call options overlay
// without touching the shared defaults.
func (p *Parser) ExtractWithOptions(markup string, hint wikifetch.PageHint, ov wikifetch.ParserOverrides) (*wikifetch.ContentDocument, error) {
	return p.extract(markup, hint, p.opts.Apply(ov))
}

func (p *Parser) extract(markup string, hint wikifetch.PageHint, opts wikifetch.ParserOptions) (doc *wikifetch.ContentDocument, err error) {
	if strings.TrimSpace(markup) == "" {
		return nil, wikifetch.Errorf(wikifetch.EINVALID, "markup input required")
	}

	// No fault may escape the pipeline boundary: anything a stage panics
	// with surfaces as an internal extraction error instead.
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = wikifetch.Errorf(wikifetch.EINTERNAL, "extraction failed: %v", r)
		}
	}()

	tree, parseErr := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if parseErr != nil {
		return nil, wikifetch.Errorf(wikifetch.EINVALID, "failed to parse markup: %v", parseErr)
	}

	if !isValidPage(tree) {
		return nil, wikifetch.Errorf(wikifetch.ENOTWIKI, "markup does not look like a wiki page")
	}

	content := locateContent(tree, opts.ContentSelector)
	if content == nil {
		return nil, wikifetch.Errorf(wikifetch.ENOTFOUND, "no content subtree found")
	}

	// Page metadata is read before cleaning: when the locator falls back
	// to a broad container, the noise pass would otherwise strip the
	// category and footer blocks the metadata comes from.
	title := pageTitle(tree, hint)
	subtitle := pageSubtitle(tree)
	categories := pageCategories(tree, opts.Links.BaseURL)
	languages := pageLanguages(tree)
	namespace := pageNamespace(tree, hint)
	lastModified := pageLastModified(tree)

	clean(content, opts.RemoveSelectors)
	normalizeImages(content, opts.Images, opts.Links.BaseURL)
	normalizeLinks(content, opts.Links)
	normalizeTables(content)

	components := extractComponents(content)

	contentHTML, htmlErr := content.Html()
	if htmlErr != nil {
		return nil, wikifetch.Errorf(wikifetch.EINTERNAL, "failed to serialize content: %v", htmlErr)
	}
	contentHTML = collapseBlankLines(contentHTML)

	text := deriveText(contentHTML)

	return &wikifetch.ContentDocument{
		Title:        title,
		Subtitle:     subtitle,
		Categories:   categories,
		Languages:    languages,
		Namespace:    namespace,
		LastModified: lastModified,
		Content: wikifetch.ContentBody{
			HTML:       contentHTML,
			Text:       text,
			Components: components,
		},
		Meta: wikifetch.DocumentMeta{
			WordCount:    wikifetch.CountWords(text),
			SectionCount: len(components.Sections),
			ImageCount:   len(components.Images),
			TableCount:   len(components.Tables),
			ExtractedAt:  time.Now().UTC(),
		},
	}, nil
}
