package mock

import (
	"context"

	wikifetch "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api"
)

var _ wikifetch.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of wikifetch.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
