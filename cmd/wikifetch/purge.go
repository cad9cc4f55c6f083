package main

import (
	"fmt"

	wikifetch "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api"
)

// Run executes the purge command.
func (c *PurgeCmd) Run(deps *Dependencies) error {
	n, err := deps.Cache.Purge(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikifetch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "purged %d stale pages\n", n)
	return nil
}
