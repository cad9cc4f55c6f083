// Package mock provides function-field mock implementations of the
// core service interfaces for use in tests.
package mock

import (
	wikifetch "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api"
)

var _ wikifetch.PageParser = (*PageParser)(nil)

// PageParser is a mock implementation of wikifetch.PageParser.
type PageParser struct {
	ExtractFn func(markup string, hint wikifetch.PageHint) (*wikifetch.ContentDocument, error)
}

func (p *PageParser) Extract(markup string, hint wikifetch.PageHint) (*wikifetch.ContentDocument, error) {
	return p.ExtractFn(markup, hint)
}
