package wikifetch

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be cleaned HTML (e.g., ContentBody.HTML).
	// Returns the Markdown representation of the content.
	Convert(html string) (string, error)
}

// Sanitizer strips unsafe markup from HTML before it leaves the service.
// The extraction pipeline's own cleaning is the content contract; sanitizing
// is transport hygiene applied at the serving boundary.
type Sanitizer interface {
	Sanitize(html string) string
}
