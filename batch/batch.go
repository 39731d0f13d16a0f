// Package batch runs parse passes over many saved pages concurrently.
package batch

import (
	"context"
	"fmt"

	"github.com/fwojciec/artparse"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of files processed at once when
// Runner.Concurrency is not set.
const DefaultConcurrency = 4

// FileResult is the outcome of processing a single input file.
type FileResult struct {
	Path   string
	Name   string
	Result *artparse.Result
	Err    error
}

// Progress reports progress during a batch run.
type Progress struct {
	Path      string
	Completed int
	Total     int
	Error     error
}

// ProgressFunc is called from a single goroutine as files complete.
type ProgressFunc func(Progress)

// Runner reads, parses and writes each input file. Every file is an
// independent parse pass, so a failure in one does not affect the others.
type Runner struct {
	Source artparse.HTMLSource
	Parser artparse.Parser
	Writer artparse.ResultWriter

	// Artworks is optional. When set, each result is also stored under its
	// result name.
	Artworks artparse.ArtworkService

	Concurrency int
}

// Run processes paths and returns one FileResult per path in input order.
// Per-file failures are reported on FileResult.Err. The returned error is
// non-nil only for invalid input or context cancellation.
func (r *Runner) Run(ctx context.Context, paths []string, progress ProgressFunc) ([]*FileResult, error) {
	if len(paths) == 0 {
		return nil, artparse.Errorf(artparse.EINVALID, "at least one input file required")
	}

	// Results are written by name, so two inputs sharing a base name would
	// overwrite each other.
	seen := make(map[string]string, len(paths))
	for _, path := range paths {
		name := artparse.ResultName(path)
		if prev, ok := seen[name]; ok {
			return nil, artparse.Errorf(artparse.EINVALID, "inputs %s and %s both produce result %q", prev, path, name)
		}
		seen[name] = path
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	type indexed struct {
		position int
		result   *FileResult
	}
	resultCh := make(chan indexed, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, path := range paths {
			g.Go(func() error {
				resultCh <- indexed{position: i, result: r.processFile(gctx, path)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]*FileResult, len(paths))
	var completed int
	for res := range resultCh {
		completed++
		results[res.position] = res.result
		if progress != nil {
			progress(Progress{
				Path:      res.result.Path,
				Completed: completed,
				Total:     len(paths),
				Error:     res.result.Err,
			})
		}
	}

	if err := ctx.Err(); err != nil {
		return results, err
	}

	return results, nil
}

func (r *Runner) processFile(ctx context.Context, path string) *FileResult {
	fr := &FileResult{Path: path, Name: artparse.ResultName(path)}

	if err := ctx.Err(); err != nil {
		fr.Err = err
		return fr
	}

	html, err := r.Source.ReadHTML(ctx, path)
	if err != nil {
		fr.Err = err
		return fr
	}

	result, err := r.Parser.Parse(html)
	if err != nil {
		fr.Err = err
		return fr
	}

	if err := r.Writer.WriteResult(ctx, fr.Name, result); err != nil {
		fr.Err = fmt.Errorf("writing result: %w", err)
		return fr
	}

	if r.Artworks != nil {
		if err := r.Artworks.ReplaceArtworks(ctx, fr.Name, result.Artworks); err != nil {
			fr.Err = fmt.Errorf("storing artworks: %w", err)
			return fr
		}
	}

	fr.Result = result
	return fr
}
