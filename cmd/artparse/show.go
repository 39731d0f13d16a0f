package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/artparse"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	artworks, err := deps.Artworks.FindArtworks(deps.Ctx, artparse.ArtworkFilter{Source: &c.Source})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artparse.ErrorMessage(err))
		return err
	}

	if len(artworks) == 0 {
		fmt.Fprintf(deps.Stderr, "error: source %q not found. Use 'artparse list' to see stored sources.\n", c.Source)
		return artparse.Errorf(artparse.ENOTFOUND, "source %q not found", c.Source)
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(&artparse.Result{Artworks: artworks})
}
