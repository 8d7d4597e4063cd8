package dom

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is the host of a stylesheet: an HTML parse tree with a <head>
// and a <body>.
type Document struct {
	root *html.Node
	head *html.Node
	body *html.Node
}

const skeleton = "<!DOCTYPE html><html><head></head><body></body></html>"

// NewDocument creates an empty HTML document, consisting of <html>, <head>
// and <body> only.
func NewDocument() *Document {
	doc, err := ParseDocument(strings.NewReader(skeleton))
	if err != nil { // parsing a constant cannot fail
		panic(err)
	}
	return doc
}

// ParseDocument parses an HTML document. The HTML parser will create <head>
// and <body> if they are missing from the input.
func ParseDocument(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML document: %w", err)
	}
	return Wrap(root), nil
}

// Wrap creates a document for an existing HTML parse tree. The tree is now
// shared between the caller and the document.
//
// Wrap never fails, but a document wrapping a tree without <head> or <body>
// will report ErrHostUnavailable for operations needing them.
func Wrap(root *html.Node) *Document {
	if root == nil {
		return &Document{}
	}
	return &Document{
		root: root,
		head: findElement(atom.Head, root),
		body: findElement(atom.Body, root),
	}
}

// Root returns the root node of the document's parse tree.
func (doc *Document) Root() *html.Node {
	if doc == nil {
		return nil
	}
	return doc.root
}

// Head returns the <head> element, or nil.
func (doc *Document) Head() *html.Node {
	if doc == nil {
		return nil
	}
	return doc.head
}

// Body returns the <body> element, or nil.
func (doc *Document) Body() *html.Node {
	if doc == nil {
		return nil
	}
	return doc.body
}

// CreateElement creates a detached element for a tag name.
func (doc *Document) CreateElement(tag string) *html.Node {
	tag = strings.ToLower(tag)
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

// AppendToBody creates an element and appends it as the last child of
// <body>.
func (doc *Document) AppendToBody(tag string) (*html.Node, error) {
	if doc.Body() == nil {
		return nil, fmt.Errorf("append <%s> to body: %w", tag, ErrHostUnavailable)
	}
	el := doc.CreateElement(tag)
	doc.body.AppendChild(el)
	return el, nil
}

// Render writes the document as HTML to w.
func (doc *Document) Render(w io.Writer) error {
	if doc.Root() == nil {
		return ErrHostUnavailable
	}
	return html.Render(w, doc.root)
}

func (doc *Document) String() string {
	var b strings.Builder
	if err := doc.Render(&b); err != nil {
		return "<no document>"
	}
	return b.String()
}

// --- Style element ---------------------------------------------------------

// StyleElement is a <style> element in the <head> of a document, carrying
// the text of a stylesheet.
type StyleElement struct {
	node *html.Node
}

// NewStyleElement creates a <style> element and appends it to the <head>
// of the document. If the document has no head, ErrHostUnavailable is
// returned.
func (doc *Document) NewStyleElement() (*StyleElement, error) {
	if doc.Head() == nil {
		return nil, fmt.Errorf("create style element: %w", ErrHostUnavailable)
	}
	el := doc.CreateElement("style")
	doc.head.AppendChild(el)
	tracer().Debugf("dom: appended <style> to <head>")
	return &StyleElement{node: el}, nil
}

// Node returns the HTML node of the style element.
func (se *StyleElement) Node() *html.Node {
	return se.node
}

// SetText replaces the content of the style element.
func (se *StyleElement) SetText(text string) {
	SetTextContent(se.node, text)
}

// Text returns the current content of the style element.
func (se *StyleElement) Text() string {
	return TextContent(se.node)
}

// --- Queries ---------------------------------------------------------------

// Query returns all elements of the document matching a CSS selector, in
// document order.
func (doc *Document) Query(selector string) ([]*html.Node, error) {
	if doc.Root() == nil {
		return nil, ErrHostUnavailable
	}
	sel, err := selectors.compile(selector)
	if err != nil {
		return nil, err
	}
	return sel.MatchAll(doc.root), nil
}

// QueryFirst returns the first element of the document matching a CSS
// selector. If no element matches, nil is returned without an error.
func (doc *Document) QueryFirst(selector string) (*html.Node, error) {
	if doc.Root() == nil {
		return nil, ErrHostUnavailable
	}
	sel, err := selectors.compile(selector)
	if err != nil {
		return nil, err
	}
	return sel.MatchFirst(doc.root), nil
}

// Matches is a predicate wether an element is matched by a CSS selector.
func Matches(n *html.Node, selector string) (bool, error) {
	sel, err := selectors.compile(selector)
	if err != nil {
		return false, err
	}
	return sel.Match(n), nil
}

// selectorCache caches compiled selectors. Stylesheets tend to ask for the
// same selectors over and over again.
type selectorCache struct {
	m sync.Map
}

var selectors = &selectorCache{}

func (c *selectorCache) compile(selector string) (cascadia.Selector, error) {
	if s, ok := c.m.Load(selector); ok {
		return s.(cascadia.Selector), nil
	}
	s, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("selector %q: %w", selector, err)
	}
	c.m.Store(selector, s)
	return s, nil
}

// --- Helpers ---------------------------------------------------------------

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	ch := h.FirstChild
	for ch != nil {
		r := findElement(a, ch)
		if r != nil && r.DataAtom == a {
			return r
		}
		ch = ch.NextSibling
	}
	return nil
}
