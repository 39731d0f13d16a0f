package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/artparse"
)

// Ensure JSONWriter implements artparse.ResultWriter at compile time.
var _ artparse.ResultWriter = (*JSONWriter)(nil)

// JSONWriter writes parse results as pretty-printed JSON files into a
// directory, one file per result name.
type JSONWriter struct {
	dir string
}

// NewJSONWriter creates a new JSONWriter that writes to dir.
func NewJSONWriter(dir string) *JSONWriter {
	return &JSONWriter{dir: dir}
}

// Path returns the file path a result with the given name is written to.
func (w *JSONWriter) Path(name string) string {
	return filepath.Join(w.dir, name+".json")
}

// WriteResult writes result to <dir>/<name>.json. The file is written to a
// temporary file first and renamed into place.
func (w *JSONWriter) WriteResult(ctx context.Context, name string, result *artparse.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if name == "" || strings.ContainsAny(name, `/\`) {
		return artparse.Errorf(artparse.EINVALID, "invalid result name: %q", name)
	}
	if result == nil {
		return artparse.Errorf(artparse.EINVALID, "result required")
	}

	out := *result
	if out.Artworks == nil {
		out.Artworks = []*artparse.Artwork{}
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(w.dir, name+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(&out); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), w.Path(name))
}
