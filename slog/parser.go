package slog

import (
	"log/slog"
	"time"

	wikifetch "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api"
)

// Ensure LoggingParser implements wikifetch.PageParser.
var _ wikifetch.PageParser = (*LoggingParser)(nil)

// LoggingParser wraps a PageParser with timing and outcome logging.
type LoggingParser struct {
	next   wikifetch.PageParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next wikifetch.PageParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Extract delegates to the wrapped parser and logs the result.
func (p *LoggingParser) Extract(markup string, hint wikifetch.PageHint) (*wikifetch.ContentDocument, error) {
	begin := time.Now()
	doc, err := p.next.Extract(markup, hint)
	if err != nil {
		p.logger.Error("page extraction failed",
			"title", hint.Title,
			"code", wikifetch.ErrorCode(err),
			"error", wikifetch.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	p.logger.Info("page extracted",
		"title", doc.Title,
		"sections", doc.Meta.SectionCount,
		"words", doc.Meta.WordCount,
		"duration", time.Since(begin),
	)
	return doc, nil
}
