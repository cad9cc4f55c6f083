package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wikifetch "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api"
	wikihttp "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api/http"
)

func TestSearchService_Search(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api.php", r.URL.Path)
		assert.Equal(t, "opensearch", r.URL.Query().Get("action"))
		assert.Equal(t, "diamond", r.URL.Query().Get("search"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))

		_, _ = w.Write([]byte(`["diamond",["Diamond","Diamond Ore"],["A rare mineral.","An ore."],["https://minecraft.wiki/w/Diamond","https://minecraft.wiki/w/Diamond_Ore"]]`))
	}))
	defer srv.Close()

	s := wikihttp.NewSearchService(nil, srv.URL)
	results, err := s.Search(context.Background(), "diamond", 5)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, wikifetch.SearchResult{
		Title:   "Diamond",
		URL:     "https://minecraft.wiki/w/Diamond",
		Snippet: "A rare mineral.",
	}, results[0])
	assert.Equal(t, "Diamond Ore", results[1].Title)
}

func TestSearchService_Search_EmptyQuery(t *testing.T) {
	t.Parallel()

	s := wikihttp.NewSearchService(nil, "https://minecraft.wiki")
	_, err := s.Search(context.Background(), "  ", 5)

	require.Error(t, err)
	assert.Equal(t, wikifetch.EINVALID, wikifetch.ErrorCode(err))
}

func TestSearchService_Search_DefaultLimit(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`["q",[],[],[]]`))
	}))
	defer srv.Close()

	s := wikihttp.NewSearchService(nil, srv.URL)
	results, err := s.Search(context.Background(), "q", 0)

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchService_Search_MalformedResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"nope"}`))
	}))
	defer srv.Close()

	s := wikihttp.NewSearchService(nil, srv.URL)
	_, err := s.Search(context.Background(), "diamond", 5)

	require.Error(t, err)
	assert.Equal(t, wikifetch.EINTERNAL, wikifetch.ErrorCode(err))
}

func TestSearchService_Search_UpstreamError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	s := wikihttp.NewSearchService(nil, srv.URL)
	_, err := s.Search(context.Background(), "diamond", 5)

	require.Error(t, err)
	assert.Equal(t, wikifetch.EUNAVAILABLE, wikifetch.ErrorCode(err))
}
