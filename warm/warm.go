// Package warm provides cache warming orchestration.
// It coordinates sitemap discovery, fetching, extraction, and caching
// of wiki pages ahead of demand.
package warm

import (
	"context"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	wikifetch "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api"
	"github.com/WhiteElephant-abc/minecraft-wiki-fetch-api/bloom"
	"github.com/WhiteElephant-abc/minecraft-wiki-fetch-api/sqlite"
)

// Bloom filter sizing for URL deduplication across sitemap shards.
const (
	dedupeExpectedURLs      = 100000
	dedupeFalsePositiveRate = 0.01
)

// Warmer orchestrates warming the page cache from the wiki's sitemap.
type Warmer struct {
	Sitemaps    wikifetch.SitemapService
	Fetcher     wikifetch.Fetcher
	Parser      wikifetch.PageParser
	Cache       wikifetch.PageCache
	RateLimiter wikifetch.DomainLimiter
	Concurrency int
	MaxPages    int
}

// Result holds the outcome of a warming run.
type Result struct {
	Discovered int
	Saved      int
	Failed     int
	Skipped    int
}

// ProgressEvent reports progress during a warming run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting warming progress.
type ProgressFunc func(event ProgressEvent)

// warmResult holds the outcome of processing a single URL.
type warmResult struct {
	url  string
	page *wikifetch.CachedPage
	err  error
}

// Warm discovers page URLs from baseURL's sitemap and fills the cache.
// The progress callback, if provided, receives events as warming proceeds.
func (w *Warmer) Warm(ctx context.Context, baseURL string, filter *wikifetch.URLFilter, progress ProgressFunc) (*Result, error) {
	urls, err := w.Sitemaps.DiscoverURLs(ctx, baseURL, filter)
	if err != nil {
		return nil, fmt.Errorf("sitemap discovery: %w", err)
	}

	// Sitemap shards can repeat URLs; dedupe before fanning out.
	seen := bloom.NewFilter(dedupeExpectedURLs, dedupeFalsePositiveRate)
	deduped := urls[:0]
	skipped := 0
	for _, u := range urls {
		if seen.Seen(u) {
			skipped++
			continue
		}
		deduped = append(deduped, u)
	}
	urls = deduped

	if w.MaxPages > 0 && len(urls) > w.MaxPages {
		urls = urls[:w.MaxPages]
	}

	result := &Result{Discovered: len(urls), Skipped: skipped}
	if len(urls) == 0 {
		return result, nil
	}

	concurrency := w.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	resultCh := make(chan warmResult, len(urls))

	var completed atomic.Int64
	total := len(urls)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, u := range urls {
			g.Go(func() error {
				resultCh <- w.processURL(gctx, u)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	for r := range resultCh {
		completed.Add(1)

		if r.err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       r.url,
					Error:     r.err,
				})
			}
			continue
		}

		if err := w.Cache.Put(ctx, r.page); err != nil {
			result.Failed++
			continue
		}

		result.Saved++
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       r.url,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return result, nil
}

// processURL fetches and extracts a single page.
func (w *Warmer) processURL(ctx context.Context, pageURL string) warmResult {
	result := warmResult{url: pageURL}

	if w.RateLimiter != nil {
		u, err := url.Parse(pageURL)
		if err != nil {
			result.err = err
			return result
		}
		if err := w.RateLimiter.Wait(ctx, u.Host); err != nil {
			result.err = err
			return result
		}
	}

	markup, err := w.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		result.err = err
		return result
	}

	title := wikifetch.TitleFromURL(pageURL)
	doc, err := w.Parser.Extract(markup, wikifetch.PageHint{Title: title})
	if err != nil {
		result.err = err
		return result
	}

	result.page = &wikifetch.CachedPage{
		Title:     doc.Title,
		SourceURL: pageURL,
		RawHash:   sqlite.HashRaw(markup),
		Document:  doc,
		FetchedAt: time.Now().UTC(),
	}

	return result
}
