package main

import (
	"fmt"

	"github.com/fwojciec/artparse"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	if c.Source == "" {
		return c.listSources(deps)
	}

	artworks, err := deps.Artworks.FindArtworks(deps.Ctx, artparse.ArtworkFilter{Source: &c.Source})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artparse.ErrorMessage(err))
		return err
	}

	if len(artworks) == 0 {
		fmt.Fprintf(deps.Stderr, "error: source %q not found. Use 'artparse list' to see stored sources.\n", c.Source)
		return artparse.Errorf(artparse.ENOTFOUND, "source %q not found", c.Source)
	}

	fmt.Fprintf(deps.Stdout, "Artworks for %s (%d total):\n\n", c.Source, len(artworks))
	for i, a := range artworks {
		fmt.Fprintf(deps.Stdout, "  %d. %s\n     %s\n", i+1, a.Name, a.Link)
	}

	return nil
}

func (c *ListCmd) listSources(deps *Dependencies) error {
	sources, err := deps.Artworks.ListSources(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artparse.ErrorMessage(err))
		return err
	}

	if len(sources) == 0 {
		fmt.Fprintln(deps.Stdout, "No sources found. Use 'artparse parse' to add one.")
		return nil
	}

	for _, s := range sources {
		fmt.Fprintf(deps.Stdout, "%s  %d artworks\n", s.Source, s.Count)
	}

	return nil
}
