// Package artparse extracts artwork records from saved HTML pages of an
// image search gallery and emits them as a serializable list.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, slog/).
package artparse

import (
	"path/filepath"
	"strings"
)

// DefaultBaseOrigin is the origin prepended to artwork link hrefs when no
// other origin is configured.
const DefaultBaseOrigin = "https://google.com"

// ResultName derives the name a result is stored under from its input path
// by stripping the directory and extension.
// Example: files/michelangelo-paintings.html → michelangelo-paintings
func ResultName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
