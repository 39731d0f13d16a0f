package mock

import (
	"context"

	"github.com/fwojciec/artparse"
)

// Compile-time interface verification.
var (
	_ artparse.HTMLSource   = (*HTMLSource)(nil)
	_ artparse.ResultWriter = (*ResultWriter)(nil)
)

// HTMLSource is a mock implementation of artparse.HTMLSource.
type HTMLSource struct {
	ReadHTMLFn func(ctx context.Context, path string) (string, error)
}

func (s *HTMLSource) ReadHTML(ctx context.Context, path string) (string, error) {
	return s.ReadHTMLFn(ctx, path)
}

// ResultWriter is a mock implementation of artparse.ResultWriter.
type ResultWriter struct {
	WriteResultFn func(ctx context.Context, name string, result *artparse.Result) error
}

func (w *ResultWriter) WriteResult(ctx context.Context, name string, result *artparse.Result) error {
	return w.WriteResultFn(ctx, name, result)
}
