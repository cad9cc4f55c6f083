package wikifetch

import "context"

// Fetcher retrieves raw page markup from URLs.
type Fetcher interface {
	// Fetch retrieves the raw markup at the given URL.
	// The context controls timeout and cancellation; the pipeline itself
	// has no deadline concept, bounding latency is the caller's job.
	Fetch(ctx context.Context, url string) (markup string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// DomainLimiter provides per-domain rate limiting for polite fetching.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
