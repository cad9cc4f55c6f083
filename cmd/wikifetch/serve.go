package main

import (
	wfchi "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api/chi"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := wfchi.NewServer(wfchi.ServerConfig{
		Fetcher:   deps.Fetcher,
		Parser:    deps.Parser,
		Cache:     deps.Cache,
		Search:    deps.Search,
		Converter: deps.Converter,
		Sanitizer: deps.Sanitizer,
		BaseURL:   deps.BaseURL,
		Logger:    deps.Logger,
	})

	deps.Logger.Info("listening", "addr", c.Addr)
	return server.Listen(deps.Ctx, c.Addr)
}
