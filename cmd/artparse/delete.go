package main

import (
	"fmt"

	"github.com/fwojciec/artparse"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Artworks.DeleteArtworksBySource(deps.Ctx, c.Source); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artparse.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted artworks for %s\n", c.Source)
	return nil
}
