package goquery

import "github.com/fwojciec/artparse"

// Ensure Parser implements artparse.Parser at compile time.
var _ artparse.Parser = (*Parser)(nil)

// Parser runs a full parse pass: it resolves deferred images for the whole
// document, then extracts artworks using that mapping.
type Parser struct {
	extractor *Extractor
}

// NewParser creates a new Parser. A nil extractor uses NewExtractor defaults.
func NewParser(extractor *Extractor) *Parser {
	if extractor == nil {
		extractor = NewExtractor()
	}
	return &Parser{extractor: extractor}
}

// Parse extracts all artworks from the HTML.
func (p *Parser) Parse(html string) (*artparse.Result, error) {
	doc, err := NewDocument(html)
	if err != nil {
		return nil, err
	}

	images := ResolveImages(doc)
	artworks, rejected := p.extractor.Extract(doc, images)

	return &artparse.Result{
		Artworks: artworks,
		Rejected: rejected,
	}, nil
}
