package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	wikifetch "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api"
)

// DefaultSearchLimit caps results when the caller asks for none.
const DefaultSearchLimit = 10

// Ensure SearchService implements wikifetch.SearchService at compile time.
var _ wikifetch.SearchService = (*SearchService)(nil)

// SearchService queries the wiki's opensearch API. Results keep the
// engine's ordering; this client does no ranking of its own.
type SearchService struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// NewSearchService creates a SearchService against the given wiki origin.
// If client is nil, http.DefaultClient is used.
func NewSearchService(client *http.Client, baseURL string) *SearchService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SearchService{
		client:    client,
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: DefaultUserAgent,
	}
}

// Search returns up to limit results for the query in engine order.
func (s *SearchService) Search(ctx context.Context, query string, limit int) ([]wikifetch.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, wikifetch.Errorf(wikifetch.EINVALID, "search query required")
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	endpoint := s.baseURL + "/api.php?" + url.Values{
		"action": {"opensearch"},
		"format": {"json"},
		"search": {query},
		"limit":  {strconv.Itoa(limit)},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, wikifetch.Errorf(wikifetch.EINVALID, "invalid search URL: %v", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, wikifetch.Errorf(wikifetch.EUNAVAILABLE, "search request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, wikifetch.Errorf(wikifetch.EUNAVAILABLE, "search HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wikifetch.Errorf(wikifetch.EUNAVAILABLE, "read search response: %v", err)
	}

	return parseOpenSearch(body)
}

// parseOpenSearch decodes the opensearch envelope:
// [query, [titles...], [snippets...], [urls...]].
func parseOpenSearch(body []byte) ([]wikifetch.SearchResult, error) {
	var envelope []json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, wikifetch.Errorf(wikifetch.EINTERNAL, "malformed search response: %v", err)
	}
	if len(envelope) < 4 {
		return nil, wikifetch.Errorf(wikifetch.EINTERNAL, "malformed search response: %d elements", len(envelope))
	}

	var titles, snippets, urls []string
	if err := json.Unmarshal(envelope[1], &titles); err != nil {
		return nil, wikifetch.Errorf(wikifetch.EINTERNAL, "malformed search titles: %v", err)
	}
	if err := json.Unmarshal(envelope[2], &snippets); err != nil {
		return nil, wikifetch.Errorf(wikifetch.EINTERNAL, "malformed search snippets: %v", err)
	}
	if err := json.Unmarshal(envelope[3], &urls); err != nil {
		return nil, wikifetch.Errorf(wikifetch.EINTERNAL, "malformed search URLs: %v", err)
	}

	results := make([]wikifetch.SearchResult, 0, len(titles))
	for i, title := range titles {
		result := wikifetch.SearchResult{Title: title}
		if i < len(snippets) {
			result.Snippet = snippets[i]
		}
		if i < len(urls) {
			result.URL = urls[i]
		}
		results = append(results, result)
	}

	return results, nil
}
