// Package slog provides logging decorators for the core service interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	wikifetch "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api"
)

// Ensure LoggingFetcher implements wikifetch.Fetcher.
var _ wikifetch.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with timing and outcome logging.
type LoggingFetcher struct {
	next   wikifetch.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next wikifetch.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the result.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	markup, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("fetch failed",
			"url", url,
			"code", wikifetch.ErrorCode(err),
			"error", wikifetch.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return "", err
	}
	f.logger.Info("fetched",
		"url", url,
		"bytes", len(markup),
		"duration", time.Since(begin),
	)
	return markup, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
