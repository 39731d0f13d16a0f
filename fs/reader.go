// Package fs provides file-based input and output for parse passes.
package fs

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/fwojciec/artparse"
)

// Ensure Reader implements artparse.HTMLSource at compile time.
var _ artparse.HTMLSource = (*Reader)(nil)

// Reader reads saved HTML pages from disk.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadHTML returns the contents of the HTML file at path.
func (r *Reader) ReadHTML(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", artparse.Errorf(artparse.ENOTFOUND, "input file not found: %s", path)
	} else if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", artparse.Errorf(artparse.EINVALID, "input is a directory: %s", path)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(string(b)) == "" {
		return "", artparse.Errorf(artparse.EINVALID, "input file is empty: %s", path)
	}

	return string(b), nil
}
