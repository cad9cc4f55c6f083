package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wikifetch "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api"
	"github.com/WhiteElephant-abc/minecraft-wiki-fetch-api/mock"
	wfslog "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api/slog"
)

func TestLoggingParser_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs extraction stats on success", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PageParser{
			ExtractFn: func(markup string, hint wikifetch.PageHint) (*wikifetch.ContentDocument, error) {
				return &wikifetch.ContentDocument{
					Title: "Diamond",
					Meta:  wikifetch.DocumentMeta{WordCount: 42, SectionCount: 3},
				}, nil
			},
		}

		parser := wfslog.NewLoggingParser(inner, logger)
		doc, err := parser.Extract("<html></html>", wikifetch.PageHint{Title: "Diamond"})

		require.NoError(t, err)
		assert.Equal(t, "Diamond", doc.Title)
		output := buf.String()
		assert.Contains(t, output, "page extracted")
		assert.Contains(t, output, "title=Diamond")
		assert.Contains(t, output, "sections=3")
		assert.Contains(t, output, "words=42")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error code on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PageParser{
			ExtractFn: func(markup string, hint wikifetch.PageHint) (*wikifetch.ContentDocument, error) {
				return nil, wikifetch.Errorf(wikifetch.ENOTWIKI, "Page is not wiki content.")
			},
		}

		parser := wfslog.NewLoggingParser(inner, logger)
		_, err := parser.Extract("<html></html>", wikifetch.PageHint{Title: "Diamond"})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "page extraction failed")
		assert.Contains(t, output, "code=not_a_wiki_page")
	})
}
