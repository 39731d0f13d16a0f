package main

import (
	"fmt"

	"github.com/fwojciec/artparse"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	results, err := deps.Runner.Run(deps.Ctx, c.Files, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artparse.ErrorMessage(err))
		return err
	}

	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "skip %s: %s\n", r.Path, artparse.ErrorMessage(r.Err))
			continue
		}

		fmt.Fprintf(deps.Stdout, "Saved %d artworks to %s", len(r.Result.Artworks), deps.Writer.Path(r.Name))
		if r.Result.Rejected > 0 {
			fmt.Fprintf(deps.Stdout, " (%d incomplete skipped)", r.Result.Rejected)
		}
		fmt.Fprintln(deps.Stdout)
	}

	if failed == len(results) {
		return fmt.Errorf("all %d input files failed", failed)
	}

	return nil
}
