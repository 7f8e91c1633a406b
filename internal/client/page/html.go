package page

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/dmitrijs2005/authboot/internal/filex"
)

// HTMLDocument is a Document backed by a parsed HTML tree.
// It is not safe for concurrent use.
type HTMLDocument struct {
	root *html.Node
}

// Parse reads a full HTML document from r.
func Parse(r io.Reader) (*HTMLDocument, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &HTMLDocument{root: root}, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*HTMLDocument, error) {
	return Parse(strings.NewReader(s))
}

// LoadFile parses the HTML file at path.
func LoadFile(path string) (*HTMLDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// SaveFile renders the document to path, replacing its contents atomically.
func (d *HTMLDocument) SaveFile(path string) error {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return err
	}
	return filex.WriteFileAtomic(path, buf.Bytes(), 0o644)
}

// Render writes the document as HTML to w.
func (d *HTMLDocument) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// QuerySelector returns the first element matching the CSS selector, or nil.
// A selector that does not compile matches nothing.
func (d *HTMLDocument) QuerySelector(selector string) Element {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil
	}
	n := sel.MatchFirst(d.root)
	if n == nil {
		return nil
	}
	return &htmlElement{node: n}
}

type htmlElement struct {
	node *html.Node
}

func (e *htmlElement) Text() string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node)
	return sb.String()
}

// SetText drops all children and leaves a single text node, as assigning
// textContent does in a browser.
func (e *htmlElement) SetText(text string) {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	if text == "" {
		return
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}
