// Package goquery implements xpatlat.Page over a static HTML snapshot, so
// a page saved with `search --dump` can be extracted again without a browser.
package goquery

import (
	"context"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/xpatlat"
)

// Compile-time interface verification.
var (
	_ xpatlat.Page = (*Page)(nil)
	_ xpatlat.Node = (*Node)(nil)
)

// Page is a parsed, immutable HTML document.
type Page struct {
	doc *goquery.Document
}

// NewPage parses an HTML document from r.
func NewPage(r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, xpatlat.Errorf(xpatlat.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Page{doc: doc}, nil
}

// ParsePage parses an HTML document from a string.
func ParsePage(html string) (*Page, error) {
	return NewPage(strings.NewReader(html))
}

// Scroll does nothing: a snapshot never loads more content.
func (p *Page) Scroll(ctx context.Context, dy float64) error {
	return ctx.Err()
}

// Candidates returns the elements matching selector in document order.
// Returns EINVALID if selector is not a valid CSS selector.
func (p *Page) Candidates(ctx context.Context, selector string) ([]xpatlat.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return nil, xpatlat.Errorf(xpatlat.EINVALID, "invalid selector %q: %v", selector, err)
	}

	var nodes []xpatlat.Node
	p.doc.FindMatcher(matcher).Each(func(_ int, sel *goquery.Selection) {
		nodes = append(nodes, &Node{sel: sel})
	})
	return nodes, nil
}

// HTML returns the document serialized back to HTML.
func (p *Page) HTML(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return p.doc.Html()
}

// Node is an element of a Page.
type Node struct {
	sel *goquery.Selection
}

// Text returns the element's text content with surrounding whitespace removed.
func (n *Node) Text(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return strings.TrimSpace(n.sel.Text()), nil
}
