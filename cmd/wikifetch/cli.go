package main

import (
	"context"
	"io"
	"log/slog"

	wikifetch "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api"
	"github.com/WhiteElephant-abc/minecraft-wiki-fetch-api/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	DB        *sqlite.DB
	BaseURL   string
	Fetcher   wikifetch.Fetcher
	Parser    wikifetch.PageParser
	Cache     wikifetch.PageCache
	Search    wikifetch.SearchService
	Sitemaps  wikifetch.SitemapService
	Converter wikifetch.Converter
	Sanitizer wikifetch.Sanitizer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Page   PageCmd   `cmd:"" help:"Fetch and extract a wiki page"`
	Search SearchCmd `cmd:"" help:"Search the wiki"`
	Serve  ServeCmd  `cmd:"" help:"Run the HTTP API server"`
	Warm   WarmCmd   `cmd:"" help:"Warm the page cache from the sitemap"`
	Purge  PurgeCmd  `cmd:"" help:"Remove stale entries from the page cache"`
}

// PageCmd is the "page" subcommand.
type PageCmd struct {
	Title   string `arg:"" help:"Page title, e.g. 'Diamond' or 'Diamond Ore'"`
	Format  string `short:"f" default:"json" enum:"json,markdown" help:"Output format (json or markdown)"`
	NoCache bool   `help:"Bypass the cache and fetch fresh"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Search query"`
	Limit int    `short:"n" default:"10" help:"Maximum number of results"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" env:"WIKIFETCH_ADDR" help:"Listen address"`
}

// WarmCmd is the "warm" subcommand.
type WarmCmd struct {
	Filter      []string `short:"F" name:"filter" help:"Filter page URLs by regex (repeatable)"`
	Concurrency int      `short:"c" default:"10" help:"Concurrent fetch limit"`
	MaxPages    int      `short:"m" help:"Stop after this many pages (0 means no limit)"`
}

// PurgeCmd is the "purge" subcommand.
type PurgeCmd struct{}
