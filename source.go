package artparse

import "context"

// HTMLSource reads raw HTML for a parse pass.
type HTMLSource interface {
	// ReadHTML returns the HTML text at path.
	// Returns ENOTFOUND if path does not exist and EINVALID if it is empty.
	ReadHTML(ctx context.Context, path string) (string, error)
}

// ResultWriter persists a parse result under a name.
type ResultWriter interface {
	WriteResult(ctx context.Context, name string, result *Result) error
}
