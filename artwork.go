package artparse

import (
	"context"
	"time"
)

// Artwork represents a single artwork extracted from a gallery page.
// Only Name, Link, Image and Extensions are part of the serialized record;
// the remaining fields are populated by storage.
type Artwork struct {
	Name       string   `json:"name"`
	Link       string   `json:"link"`
	Image      string   `json:"image"`
	Extensions []string `json:"extensions,omitempty"`

	ID        string    `json:"-"`
	Source    string    `json:"-"`
	Position  int       `json:"-"`
	ImageHash string    `json:"-"`
	CreatedAt time.Time `json:"-"`
}

// Validate returns an error if the artwork contains invalid fields.
func (a *Artwork) Validate() error {
	if a.Name == "" {
		return Errorf(EINVALID, "artwork name required")
	}
	if a.Link == "" {
		return Errorf(EINVALID, "artwork link required")
	}
	return nil
}

// Result is the output of a single parse pass.
type Result struct {
	// Artworks holds the valid records in document order. Never nil.
	Artworks []*Artwork `json:"artworks"`

	// Rejected counts artwork containers dropped as incomplete.
	Rejected int `json:"-"`
}

// ImageMapping maps an element ID to the image data a deferred-loading
// script assigns to it.
type ImageMapping map[string]string

// Parser turns raw HTML into artwork records.
type Parser interface {
	// Parse extracts all artworks from the HTML.
	// Returns EINVALID if the HTML is empty or cannot be parsed.
	Parse(html string) (*Result, error)
}

// ArtworkService represents a service for storing parsed artworks.
type ArtworkService interface {
	// ReplaceArtworks stores artworks under source, replacing any artworks
	// previously stored for it.
	ReplaceArtworks(ctx context.Context, source string, artworks []*Artwork) error

	// FindArtworkByID retrieves an artwork by ID.
	// Returns ENOTFOUND if artwork does not exist.
	FindArtworkByID(ctx context.Context, id string) (*Artwork, error)

	// FindArtworks retrieves artworks matching the filter.
	FindArtworks(ctx context.Context, filter ArtworkFilter) ([]*Artwork, error)

	// DeleteArtworksBySource removes all artworks stored for a source.
	// Returns ENOTFOUND if nothing is stored for the source.
	DeleteArtworksBySource(ctx context.Context, source string) error

	// ListSources returns every source with its artwork count.
	ListSources(ctx context.Context) ([]*SourceSummary, error)
}

// ArtworkFilter represents a filter for FindArtworks.
type ArtworkFilter struct {
	Source *string `json:"source"`
	Name   *string `json:"name"`
	Image  *string `json:"image"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SourceSummary describes the artworks stored for one source.
type SourceSummary struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}
