package goquery

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/artparse"
)

var (
	// deferredImagePattern matches scripts that assign inline image data to
	// an element after the initial render, e.g. s='data:image/png;base64,...'.
	deferredImagePattern = regexp.MustCompile(`s='data:image[^']+'`)

	// quotedLiteralPattern matches single-quoted string literals.
	quotedLiteralPattern = regexp.MustCompile(`'([^']+)'`)
)

// ResolveImages scans inline scripts for deferred image assignments and
// returns a mapping from element ID to image data.
//
// The first quoted literal of a matching script is the image data and the
// second is the target element ID. Scripts with fewer than two literals are
// skipped. When an ID is assigned more than once the last script wins.
func ResolveImages(doc *goquery.Document) artparse.ImageMapping {
	images := make(artparse.ImageMapping)

	doc.Find("script").Each(func(_ int, sel *goquery.Selection) {
		text := ownText(sel.Get(0))
		if !deferredImagePattern.MatchString(text) {
			return
		}

		literals := quotedLiteralPattern.FindAllStringSubmatch(text, 2)
		if len(literals) < 2 {
			return
		}

		images[literals[1][1]] = literals[0][1]
	})

	return images
}
