package chi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	wikifetch "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api"
	"github.com/WhiteElephant-abc/minecraft-wiki-fetch-api/sqlite"
)

// handlePage serves an extracted wiki page by title.
//
// Query parameters:
//
//	format=json|markdown  response rendition (default json)
//	nocache=1             bypass the cache and fetch fresh
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")
	if title == "" {
		jsonError(w, wikifetch.Errorf(wikifetch.EINVALID, "Page title required."))
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "markdown" {
		jsonError(w, wikifetch.Errorf(wikifetch.EINVALID, "Unknown format %q.", format))
		return
	}

	nocache := r.URL.Query().Get("nocache") == "1"

	ctx := r.Context()

	if !nocache {
		if cached, err := s.cache.Get(ctx, title); err == nil {
			s.respondDocument(w, cached.Document, format)
			return
		}
	}

	pageURL := wikifetch.PageURL(s.baseURL, title)
	markup, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		jsonError(w, err)
		return
	}
	rawHash := sqlite.HashRaw(markup)

	// A forced refresh of unchanged markup reuses the cached document and
	// only bumps its freshness.
	var doc *wikifetch.ContentDocument
	if nocache {
		if cached, err := s.cache.Get(ctx, title); err == nil && cached.RawHash == rawHash {
			doc = cached.Document
		}
	}
	if doc == nil {
		doc, err = s.parser.Extract(markup, wikifetch.PageHint{Title: title})
		if err != nil {
			jsonError(w, err)
			return
		}
	}

	// Cache failures are logged but never block the response.
	page := &wikifetch.CachedPage{
		ID:        uuid.New().String(),
		Title:     doc.Title,
		SourceURL: pageURL,
		RawHash:   rawHash,
		Document:  doc,
		FetchedAt: time.Now().UTC(),
	}
	if err := s.cache.Put(ctx, page); err != nil {
		s.logger.Error("cache put failed", "title", doc.Title, "error", err)
	}

	s.respondDocument(w, doc, format)
}

func (s *Server) respondDocument(w http.ResponseWriter, doc *wikifetch.ContentDocument, format string) {
	// Sanitize at the serving boundary so cached documents written by
	// older policy versions still go out clean.
	clean := *doc
	clean.Content.HTML = s.sanitizer.Sanitize(doc.Content.HTML)

	if format == "markdown" {
		md, err := s.converter.Convert(clean.Content.HTML)
		if err != nil {
			jsonError(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Write([]byte(md))
		return
	}

	jsonData(w, &clean)
}
