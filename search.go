package wikifetch

import "context"

// SearchResult is a single wiki search match. Results carry the engine's
// ordering; no ranking of our own is applied.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// SearchService finds wiki pages matching a query.
type SearchService interface {
	// Search returns up to limit results for the query in engine order.
	Search(ctx context.Context, query string, limit int) ([]SearchResult, error)
}
