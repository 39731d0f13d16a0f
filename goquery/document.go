// Package goquery implements artwork extraction on top of goquery's
// HTML document tree.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/artparse"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NewDocument parses raw HTML into a document tree.
// Returns EINVALID if the HTML is blank or cannot be parsed.
func NewDocument(raw string) (*goquery.Document, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, artparse.Errorf(artparse.EINVALID, "empty HTML input")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, artparse.Errorf(artparse.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// ownText returns the concatenated text of the direct text children of n.
func ownText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// strippedText returns the visible text beneath the selection with each
// text node trimmed and empty pieces dropped.
// Example: "<div> Starry <b>Night </b></div>" → "StarryNight"
func strippedText(sel *goquery.Selection) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(strings.TrimSpace(n.Data))
			return
		case html.ElementNode:
			if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return b.String()
}
