// Package dom provides helpers for querying and mutating a locally parsed
// HTML document. Remote (webview-hosted) documents are handled by the
// webview package instead.
package dom

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document wraps a parsed HTML tree.
type Document struct {
	doc *goquery.Document
}

// Parse reads and parses an HTML document from r.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return &Document{doc: doc}, nil
}

// ParseString parses an HTML document from a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// FromNode wraps an already parsed HTML node.
func FromNode(node *html.Node) *Document {
	return &Document{doc: goquery.NewDocumentFromNode(node)}
}

// Find returns the selection matching the given CSS selector.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// Root returns the selection for the document root element.
func (d *Document) Root() *goquery.Selection {
	return d.doc.Find("html")
}

// Html renders the document back to HTML.
func (d *Document) Html() (string, error) {
	return d.doc.Html()
}
