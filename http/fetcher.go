// Package http provides HTTP-based implementations of the wikifetch
// fetch, search and sitemap interfaces. Wiki pages are fully
// server-rendered, so plain HTTP requests are sufficient.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	wikifetch "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 15 * time.Second

// DefaultUserAgent identifies the service to the wiki, as its API policy
// asks of automated clients.
const DefaultUserAgent = "minecraft-wiki-fetch-api/1.0"

// Ensure Fetcher implements wikifetch.Fetcher at compile time.
var _ wikifetch.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves raw page markup over HTTP with retry and optional
// per-domain rate limiting.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	limiter     wikifetch.DomainLimiter
	retryDelays []time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithLimiter sets a per-domain rate limiter consulted before each request.
func WithLimiter(l wikifetch.DomainLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// WithRetryDelays sets the backoff delays between retry attempts.
// An empty slice disables retries. Useful for testing without real delays.
func WithRetryDelays(delays []time.Duration) Option {
	return func(f *Fetcher) {
		f.retryDelays = delays
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		userAgent:   DefaultUserAgent,
		retryDelays: DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the raw markup at the given URL. Missing pages return
// ENOTFOUND; transient upstream failures are retried with backoff and
// surface as EUNAVAILABLE when exhausted.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if f.limiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", wikifetch.Errorf(wikifetch.EINVALID, "invalid URL %q: %v", rawURL, err)
		}
		if err := f.limiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}

	return fetchWithRetry(ctx, rawURL, f.doFetch, f.retryDelays)
}

func (f *Fetcher) doFetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", wikifetch.Errorf(wikifetch.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", wikifetch.Errorf(wikifetch.EUNAVAILABLE, "fetch %s: %v", rawURL, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", wikifetch.Errorf(wikifetch.ENOTFOUND, "page not found: %s", rawURL)
	case resp.StatusCode != http.StatusOK:
		return "", wikifetch.Errorf(wikifetch.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", wikifetch.Errorf(wikifetch.EUNAVAILABLE, "read body for %s: %v", rawURL, err)
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
