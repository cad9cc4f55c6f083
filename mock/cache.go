package mock

import (
	"context"

	wikifetch "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api"
)

var _ wikifetch.PageCache = (*PageCache)(nil)

// PageCache is a mock implementation of wikifetch.PageCache.
type PageCache struct {
	GetFn   func(ctx context.Context, title string) (*wikifetch.CachedPage, error)
	PutFn   func(ctx context.Context, page *wikifetch.CachedPage) error
	PurgeFn func(ctx context.Context) (int, error)
}

func (c *PageCache) Get(ctx context.Context, title string) (*wikifetch.CachedPage, error) {
	return c.GetFn(ctx, title)
}

func (c *PageCache) Put(ctx context.Context, page *wikifetch.CachedPage) error {
	return c.PutFn(ctx, page)
}

func (c *PageCache) Purge(ctx context.Context) (int, error) {
	return c.PurgeFn(ctx)
}
