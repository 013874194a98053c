// Package dom is a small document tree built on golang.org/x/net/html.
//
// It offers the handful of operations the board needs from a browser
// document: lookup by id, inert <template> blueprints and their deep-cloned
// content, simple selector queries, adjacent insertion and text content.
// Lookups on the live document never descend into <template> elements, so
// blueprint markup is invisible until it is cloned and inserted.
package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed HTML document.
type Document struct {
	root *html.Node
}

// Parse reads a full HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return &Document{root: root}, nil
}

// ParseString parses an HTML document held in a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Root returns the document node.
func (d *Document) Root() *html.Node { return d.root }

// Body returns the <body> element, or nil.
func (d *Document) Body() *html.Node {
	return findFirst(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == atom.Body
	}, false)
}

// ElementByID returns the first element in the live tree whose id attribute
// equals id. Template content is not searched.
func (d *Document) ElementByID(id string) *html.Node {
	if id == "" {
		return nil
	}
	return ElementByID(d.root, id)
}

// ElementByID searches n and its descendants, skipping template content.
func ElementByID(n *html.Node, id string) *html.Node {
	return findFirst(n, func(c *html.Node) bool {
		v, ok := Attr(c, "id")
		return ok && v == id
	}, false)
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// RenderNode returns the HTML serialization of n.
func RenderNode(n *html.Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}

// IsTemplate reports whether n is a <template> element.
func IsTemplate(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode && n.DataAtom == atom.Template
}

// findFirst walks n depth-first in document order. Descendants of <template>
// elements are only visited when intoTemplates is true.
func findFirst(n *html.Node, match func(*html.Node) bool, intoTemplates bool) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	if IsTemplate(n) && !intoTemplates {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match, intoTemplates); found != nil {
			return found
		}
	}
	return nil
}
