package mock

import (
	wikifetch "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api"
)

var _ wikifetch.Converter = (*Converter)(nil)

// Converter is a mock implementation of wikifetch.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ wikifetch.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of wikifetch.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(html string) string
}

func (s *Sanitizer) Sanitize(html string) string {
	return s.SanitizeFn(html)
}
