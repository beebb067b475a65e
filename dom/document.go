package dom

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ErrNilDocument is returned when rendering a document that was never parsed.
var ErrNilDocument = errors.New("dom: nil document")

// Document is a parsed HTML page.
type Document struct {
	root *html.Node
}

// Parse reads a complete HTML document. Structural parsing is finished when
// Parse returns, which is the point ready handlers may run.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{root: root}, nil
}

// QueryAll returns every element matching sel in document order.
func (d *Document) QueryAll(sel Selector) []*Element {
	if d == nil || d.root == nil {
		return nil
	}

	var results []*Element
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if sel.Matches(n) {
			results = append(results, &Element{node: n})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return results
}

// Render writes the document back out as HTML.
func (d *Document) Render(w io.Writer) error {
	if d == nil || d.root == nil {
		return ErrNilDocument
	}
	return html.Render(w, d.root)
}

// Element wraps a matched node with text accessors.
type Element struct {
	node *html.Node
}

func (e *Element) Node() *html.Node {
	return e.node
}

// Text returns the concatenated text of all descendant text nodes.
func (e *Element) Text() string {
	var b strings.Builder
	collectText(e.node, &b)
	return b.String()
}

// SetText replaces every child of the element with a single text node.
func (e *Element) SetText(text string) {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

func collectText(n *html.Node, b *strings.Builder) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			b.WriteString(c.Data)
		case html.ElementNode:
			collectText(c, b)
		}
	}
}
