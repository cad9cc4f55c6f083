package mock

import (
	"context"

	wikifetch "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api"
)

var _ wikifetch.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of wikifetch.SearchService.
type SearchService struct {
	SearchFn func(ctx context.Context, query string, limit int) ([]wikifetch.SearchResult, error)
}

func (s *SearchService) Search(ctx context.Context, query string, limit int) ([]wikifetch.SearchResult, error) {
	return s.SearchFn(ctx, query, limit)
}
