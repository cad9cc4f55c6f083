// Package chi provides the HTTP API for serving extracted wiki pages.
package chi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	wikifetch "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api"
)

// Server is the HTTP API server.
type Server struct {
	router    chi.Router
	server    *http.Server
	fetcher   wikifetch.Fetcher
	parser    wikifetch.PageParser
	cache     wikifetch.PageCache
	search    wikifetch.SearchService
	converter wikifetch.Converter
	sanitizer wikifetch.Sanitizer
	baseURL   string
	logger    *slog.Logger
}

// ServerConfig holds the collaborators and settings for a Server.
type ServerConfig struct {
	Fetcher   wikifetch.Fetcher
	Parser    wikifetch.PageParser
	Cache     wikifetch.PageCache
	Search    wikifetch.SearchService
	Converter wikifetch.Converter
	Sanitizer wikifetch.Sanitizer
	BaseURL   string
	Logger    *slog.Logger
}

// NewServer creates and configures the HTTP server.
func NewServer(cfg ServerConfig) *Server {
	s := &Server{
		fetcher:   cfg.Fetcher,
		parser:    cfg.Parser,
		cache:     cfg.Cache,
		search:    cfg.Search,
		converter: cfg.Converter,
		sanitizer: cfg.Sanitizer,
		baseURL:   cfg.BaseURL,
		logger:    cfg.Logger,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.logger))

	r.Get("/healthz", s.handleHealth)
	r.Get("/api/page/{title}", s.handlePage)
	r.Get("/api/search", s.handleSearch)

	s.router = r
}

// Listen starts the server on addr and blocks until the context is
// canceled, then shuts down gracefully.
func (s *Server) Listen(ctx context.Context, addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// jsonData writes a success envelope around data.
func jsonData(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"data":    data,
	})
}

// jsonError writes an error envelope with the HTTP status derived from
// the application error code.
func jsonError(w http.ResponseWriter, err error) {
	code := wikifetch.ErrorCode(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusFromCode(code))
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error": map[string]string{
			"code":    code,
			"message": wikifetch.ErrorMessage(err),
		},
	})
}

func statusFromCode(code string) int {
	switch code {
	case wikifetch.EINVALID:
		return http.StatusBadRequest
	case wikifetch.ENOTFOUND:
		return http.StatusNotFound
	case wikifetch.ENOTWIKI:
		return http.StatusUnprocessableEntity
	case wikifetch.ECONFLICT:
		return http.StatusConflict
	case wikifetch.EUNAVAILABLE:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
