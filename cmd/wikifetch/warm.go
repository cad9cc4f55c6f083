package main

import (
	"fmt"
	"regexp"

	wikifetch "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api"
	"github.com/WhiteElephant-abc/minecraft-wiki-fetch-api/warm"
)

// Run executes the warm command.
func (c *WarmCmd) Run(deps *Dependencies) error {
	var filter *wikifetch.URLFilter
	if len(c.Filter) > 0 {
		filter = &wikifetch.URLFilter{}
		for _, pattern := range c.Filter {
			re, err := regexp.Compile(pattern)
			if err != nil {
				return fmt.Errorf("invalid filter pattern %q: %w", pattern, err)
			}
			filter.Include = append(filter.Include, re)
		}
	}

	warmer := &warm.Warmer{
		Sitemaps:    deps.Sitemaps,
		Fetcher:     deps.Fetcher,
		Parser:      deps.Parser,
		Cache:       deps.Cache,
		Concurrency: c.Concurrency,
		MaxPages:    c.MaxPages,
	}

	result, err := warmer.Warm(deps.Ctx, deps.BaseURL, filter, func(e warm.ProgressEvent) {
		switch e.Type {
		case warm.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "warming %d pages\n", e.Total)
		case warm.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "failed %s: %s\n", e.URL, wikifetch.ErrorMessage(e.Error))
		}
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikifetch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "discovered %d, saved %d, failed %d, skipped %d duplicates\n",
		result.Discovered, result.Saved, result.Failed, result.Skipped)

	return nil
}
