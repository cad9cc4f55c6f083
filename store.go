package wikifetch

import (
	"context"
	"time"
)

// CachedPage is an extraction result held by a page cache.
type CachedPage struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	SourceURL string           `json:"sourceUrl"`
	RawHash   string           `json:"rawHash"`
	Document  *ContentDocument `json:"document"`
	FetchedAt time.Time        `json:"fetchedAt"`
}

// Validate returns an error if the cached page contains invalid fields.
func (p *CachedPage) Validate() error {
	if p.Title == "" {
		return Errorf(EINVALID, "cached page title required")
	}
	if p.Document == nil {
		return Errorf(EINVALID, "cached page document required")
	}
	return nil
}

// PageCache persists extraction results keyed by normalized page title.
type PageCache interface {
	// Get retrieves a cached page by title.
	// Returns ENOTFOUND if the page is absent or stale.
	Get(ctx context.Context, title string) (*CachedPage, error)

	// Put stores a page, replacing any previous entry for the same title.
	Put(ctx context.Context, page *CachedPage) error

	// Purge removes stale entries and returns how many were deleted.
	Purge(ctx context.Context) (int, error)
}
