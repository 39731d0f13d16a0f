package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/artparse"
)

// Default selectors for the image search gallery markup.
const (
	DefaultContainerSelector  = "div.iELo6"
	DefaultTitleSelector      = "div.pgNMRc"
	DefaultDescriptorSelector = "div.cxzHyb"
)

// Selectors identifies the parts of an artwork container.
// Empty fields fall back to the defaults.
type Selectors struct {
	Container  string
	Title      string
	Descriptor string
}

// DefaultSelectors returns the selectors for the image search gallery markup.
func DefaultSelectors() Selectors {
	return Selectors{
		Container:  DefaultContainerSelector,
		Title:      DefaultTitleSelector,
		Descriptor: DefaultDescriptorSelector,
	}
}

// Extractor builds artwork records from artwork containers.
// Extractor holds no per-document state and is safe for concurrent use.
type Extractor struct {
	baseOrigin string
	selectors  Selectors
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithBaseOrigin sets the origin prepended to every link href.
// Defaults to artparse.DefaultBaseOrigin if not specified or empty.
func WithBaseOrigin(origin string) ExtractorOption {
	return func(e *Extractor) {
		e.baseOrigin = origin
	}
}

// WithSelectors overrides the container, title and descriptor selectors.
func WithSelectors(s Selectors) ExtractorOption {
	return func(e *Extractor) {
		e.selectors = s
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		baseOrigin: artparse.DefaultBaseOrigin,
		selectors:  DefaultSelectors(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.baseOrigin == "" {
		e.baseOrigin = artparse.DefaultBaseOrigin
	}
	defaults := DefaultSelectors()
	if e.selectors.Container == "" {
		e.selectors.Container = defaults.Container
	}
	if e.selectors.Title == "" {
		e.selectors.Title = defaults.Title
	}
	if e.selectors.Descriptor == "" {
		e.selectors.Descriptor = defaults.Descriptor
	}

	return e
}

// BaseOrigin returns the origin prepended to link hrefs.
func (e *Extractor) BaseOrigin() string {
	return e.baseOrigin
}

// Extract returns one artwork per complete container in document order,
// along with the number of containers rejected as incomplete.
// The returned slice is never nil.
func (e *Extractor) Extract(doc *goquery.Document, images artparse.ImageMapping) ([]*artparse.Artwork, int) {
	artworks := make([]*artparse.Artwork, 0)
	var rejected int

	doc.Find(e.selectors.Container).Each(func(_ int, sel *goquery.Selection) {
		artwork := e.extractArtwork(sel, images)
		if artwork == nil {
			rejected++
			return
		}
		artworks = append(artworks, artwork)
	})

	return artworks, rejected
}

// extractArtwork builds the artwork for a single container.
// Returns nil if the container lacks an image, title or link.
func (e *Extractor) extractArtwork(sel *goquery.Selection, images artparse.ImageMapping) *artparse.Artwork {
	img := sel.Find("img").First()
	if img.Length() == 0 {
		return nil
	}

	title := sel.Find(e.selectors.Title).First()
	anchor := sel.Find("a").First()
	if title.Length() == 0 || anchor.Length() == 0 {
		return nil
	}

	artwork := &artparse.Artwork{
		Name:  strippedText(title),
		Link:  e.baseOrigin + anchor.AttrOr("href", ""),
		Image: resolveImage(img, images),
	}
	if err := artwork.Validate(); err != nil {
		return nil
	}

	if desc := sel.Find(e.selectors.Descriptor).First(); desc.Length() > 0 {
		if text := strippedText(desc); text != "" {
			artwork.Extensions = []string{text}
		}
	}

	return artwork
}

// resolveImage prefers image data assigned by a deferred-loading script,
// then the lazy-load source, then the plain source.
func resolveImage(img *goquery.Selection, images artparse.ImageMapping) string {
	if id, ok := img.Attr("id"); ok {
		if data, ok := images[id]; ok {
			return data
		}
	}
	if src := img.AttrOr("data-src", ""); src != "" {
		return src
	}
	return img.AttrOr("src", "")
}
