package chi

import (
	"net/http"
	"strconv"

	wikifetch "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api"
)

// handleSearch proxies a search query to the wiki's search engine.
//
// Query parameters:
//
//	q      search query (required)
//	limit  maximum number of results (default 10)
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		jsonError(w, wikifetch.Errorf(wikifetch.EINVALID, "Search query required."))
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			jsonError(w, wikifetch.Errorf(wikifetch.EINVALID, "Limit must be a positive integer."))
			return
		}
		limit = n
	}

	results, err := s.search.Search(r.Context(), query, limit)
	if err != nil {
		jsonError(w, err)
		return
	}

	jsonData(w, map[string]any{
		"query":   query,
		"results": results,
	})
}
