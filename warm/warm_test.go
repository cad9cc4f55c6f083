package warm_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wikifetch "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api"
	"github.com/WhiteElephant-abc/minecraft-wiki-fetch-api/mock"
	"github.com/WhiteElephant-abc/minecraft-wiki-fetch-api/warm"
)

func TestWarmer_Warm(t *testing.T) {
	t.Parallel()

	t.Run("returns zero result when sitemap returns no URLs", func(t *testing.T) {
		t.Parallel()

		w := &warm.Warmer{
			Sitemaps: &mock.SitemapService{
				DiscoverURLsFn: func(_ context.Context, _ string, _ *wikifetch.URLFilter) ([]string, error) {
					return []string{}, nil
				},
			},
			Fetcher:     &mock.Fetcher{},
			Parser:      &mock.PageParser{},
			Cache:       &mock.PageCache{},
			Concurrency: 10,
		}

		result, err := w.Warm(context.Background(), "https://minecraft.wiki", nil, nil)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, 0, result.Discovered)
		assert.Equal(t, 0, result.Saved)
		assert.Equal(t, 0, result.Failed)
	})

	t.Run("warms single URL and caches page", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var savedPage *wikifetch.CachedPage
		w := &warm.Warmer{
			Sitemaps: &mock.SitemapService{
				DiscoverURLsFn: func(_ context.Context, _ string, _ *wikifetch.URLFilter) ([]string, error) {
					return []string{"https://minecraft.wiki/w/Diamond"}, nil
				},
			},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					return "<html><body>Diamond page</body></html>", nil
				},
			},
			Parser: &mock.PageParser{
				ExtractFn: func(_ string, hint wikifetch.PageHint) (*wikifetch.ContentDocument, error) {
					return &wikifetch.ContentDocument{Title: hint.Title}, nil
				},
			},
			Cache: &mock.PageCache{
				PutFn: func(_ context.Context, page *wikifetch.CachedPage) error {
					mu.Lock()
					defer mu.Unlock()
					savedPage = page
					return nil
				},
			},
			Concurrency: 1,
		}

		result, err := w.Warm(context.Background(), "https://minecraft.wiki", nil, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Discovered)
		assert.Equal(t, 1, result.Saved)
		assert.Equal(t, 0, result.Failed)
		require.NotNil(t, savedPage)
		assert.Equal(t, "Diamond", savedPage.Title)
		assert.Equal(t, "https://minecraft.wiki/w/Diamond", savedPage.SourceURL)
		assert.NotEmpty(t, savedPage.RawHash)
		assert.False(t, savedPage.FetchedAt.IsZero())
	})

	t.Run("deduplicates repeated sitemap URLs", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		fetched := 0
		w := &warm.Warmer{
			Sitemaps: &mock.SitemapService{
				DiscoverURLsFn: func(_ context.Context, _ string, _ *wikifetch.URLFilter) ([]string, error) {
					return []string{
						"https://minecraft.wiki/w/Diamond",
						"https://minecraft.wiki/w/Diamond",
						"https://minecraft.wiki/w/Creeper",
					}, nil
				},
			},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					mu.Lock()
					fetched++
					mu.Unlock()
					return "<html></html>", nil
				},
			},
			Parser: &mock.PageParser{
				ExtractFn: func(_ string, hint wikifetch.PageHint) (*wikifetch.ContentDocument, error) {
					return &wikifetch.ContentDocument{Title: hint.Title}, nil
				},
			},
			Cache: &mock.PageCache{
				PutFn: func(_ context.Context, _ *wikifetch.CachedPage) error {
					return nil
				},
			},
			Concurrency: 2,
		}

		result, err := w.Warm(context.Background(), "https://minecraft.wiki", nil, nil)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Discovered)
		assert.Equal(t, 1, result.Skipped)
		assert.Equal(t, 2, result.Saved)
		assert.Equal(t, 2, fetched)
	})

	t.Run("counts failed URLs without aborting the run", func(t *testing.T) {
		t.Parallel()

		w := &warm.Warmer{
			Sitemaps: &mock.SitemapService{
				DiscoverURLsFn: func(_ context.Context, _ string, _ *wikifetch.URLFilter) ([]string, error) {
					return []string{
						"https://minecraft.wiki/w/Diamond",
						"https://minecraft.wiki/w/Deleted_page",
					}, nil
				},
			},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					if url == "https://minecraft.wiki/w/Deleted_page" {
						return "", wikifetch.Errorf(wikifetch.ENOTFOUND, "Page not found.")
					}
					return "<html></html>", nil
				},
			},
			Parser: &mock.PageParser{
				ExtractFn: func(_ string, hint wikifetch.PageHint) (*wikifetch.ContentDocument, error) {
					return &wikifetch.ContentDocument{Title: hint.Title}, nil
				},
			},
			Cache: &mock.PageCache{
				PutFn: func(_ context.Context, _ *wikifetch.CachedPage) error {
					return nil
				},
			},
			Concurrency: 1,
		}

		result, err := w.Warm(context.Background(), "https://minecraft.wiki", nil, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Saved)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("respects MaxPages limit", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		fetched := 0
		w := &warm.Warmer{
			Sitemaps: &mock.SitemapService{
				DiscoverURLsFn: func(_ context.Context, _ string, _ *wikifetch.URLFilter) ([]string, error) {
					return []string{
						"https://minecraft.wiki/w/Diamond",
						"https://minecraft.wiki/w/Creeper",
						"https://minecraft.wiki/w/Redstone",
					}, nil
				},
			},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					mu.Lock()
					fetched++
					mu.Unlock()
					return "<html></html>", nil
				},
			},
			Parser: &mock.PageParser{
				ExtractFn: func(_ string, hint wikifetch.PageHint) (*wikifetch.ContentDocument, error) {
					return &wikifetch.ContentDocument{Title: hint.Title}, nil
				},
			},
			Cache: &mock.PageCache{
				PutFn: func(_ context.Context, _ *wikifetch.CachedPage) error {
					return nil
				},
			},
			Concurrency: 1,
			MaxPages:    2,
		}

		result, err := w.Warm(context.Background(), "https://minecraft.wiki", nil, nil)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Discovered)
		assert.Equal(t, 2, fetched)
	})

	t.Run("reports progress events", func(t *testing.T) {
		t.Parallel()

		var events []warm.ProgressType
		w := &warm.Warmer{
			Sitemaps: &mock.SitemapService{
				DiscoverURLsFn: func(_ context.Context, _ string, _ *wikifetch.URLFilter) ([]string, error) {
					return []string{"https://minecraft.wiki/w/Diamond"}, nil
				},
			},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "<html></html>", nil
				},
			},
			Parser: &mock.PageParser{
				ExtractFn: func(_ string, hint wikifetch.PageHint) (*wikifetch.ContentDocument, error) {
					return &wikifetch.ContentDocument{Title: hint.Title}, nil
				},
			},
			Cache: &mock.PageCache{
				PutFn: func(_ context.Context, _ *wikifetch.CachedPage) error {
					return nil
				},
			},
			Concurrency: 1,
		}

		_, err := w.Warm(context.Background(), "https://minecraft.wiki", nil, func(e warm.ProgressEvent) {
			events = append(events, e.Type)
		})

		require.NoError(t, err)
		assert.Equal(t, []warm.ProgressType{warm.ProgressStarted, warm.ProgressCompleted, warm.ProgressFinished}, events)
	})
}
