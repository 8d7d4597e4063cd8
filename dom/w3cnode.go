package dom

import (
	"github.com/npillmayer/stylesheet/dom/w3cdom"
	"golang.org/x/net/html"
)

// W3CNode is an adapter of html.Node to interface w3cdom.Node.
type W3CNode struct {
	h *html.Node
}

// NodeAsW3C wraps an HTML node. Returns nil for nil.
//
// Please note that the return type is a pointer, which makes it possible to
// test for nil in the usual way. Code handling interface w3cdom.Node has to
// be aware that w3cdom.Node(nil-pointer) is not nil.
func NodeAsW3C(h *html.Node) *W3CNode {
	if h == nil {
		return nil
	}
	return &W3CNode{h: h}
}

// HTMLNode returns the underlying HTML node.
func (w *W3CNode) HTMLNode() *html.Node {
	return w.h
}

// NodeType returns the type of the underlying HTML node.
func (w *W3CNode) NodeType() html.NodeType {
	return w.h.Type
}

// NodeName returns the lower-case tag name for elements, "#text" for text
// nodes, "#document" for the document node and "#comment" for comments.
func (w *W3CNode) NodeName() string {
	switch w.h.Type {
	case html.DocumentNode:
		return "#document"
	case html.ElementNode:
		return TagName(w.h)
	case html.TextNode:
		return "#text"
	case html.CommentNode:
		return "#comment"
	}
	return "<node>"
}

// NodeValue returns the text for text and comment nodes, "" otherwise.
func (w *W3CNode) NodeValue() string {
	if w.h.Type == html.TextNode || w.h.Type == html.CommentNode {
		return w.h.Data
	}
	return ""
}

// HasAttributes checks for existence of attributes.
func (w *W3CNode) HasAttributes() bool {
	return len(w.h.Attr) > 0
}

// ChildNodes returns all child nodes.
func (w *W3CNode) ChildNodes() w3cdom.NodeList {
	var children []*W3CNode
	for ch := w.h.FirstChild; ch != nil; ch = ch.NextSibling {
		children = append(children, NodeAsW3C(ch))
	}
	return &nodeList{nodes: children}
}

// PreviousElementSibling returns the closest preceding element sibling
// or nil.
func (w *W3CNode) PreviousElementSibling() w3cdom.Node {
	return wrapNode(PreviousElementSibling(w.h))
}

// Attributes returns all attributes of the node.
func (w *W3CNode) Attributes() w3cdom.NamedNodeMap {
	return attrMap(w.h.Attr)
}

// wrapNode returns a true nil interface for nil nodes.
func wrapNode(h *html.Node) w3cdom.Node {
	if h == nil {
		return nil
	}
	return NodeAsW3C(h)
}

var _ w3cdom.Node = &W3CNode{}

// --- Node lists ------------------------------------------------------------

type nodeList struct {
	nodes []*W3CNode
}

func (nl *nodeList) Length() int {
	return len(nl.nodes)
}

func (nl *nodeList) Item(i int) w3cdom.Node {
	if i < 0 || i >= len(nl.nodes) {
		return nil
	}
	return nl.nodes[i]
}

var _ w3cdom.NodeList = &nodeList{}

// --- Attributes ------------------------------------------------------------

type attr struct {
	a html.Attribute
}

func (at attr) Key() string   { return at.a.Key }
func (at attr) Value() string { return at.a.Val }

type attrMap []html.Attribute

func (am attrMap) Length() int {
	return len(am)
}

func (am attrMap) Item(i int) w3cdom.Attr {
	if i < 0 || i >= len(am) {
		return nil
	}
	return attr{am[i]}
}

var _ w3cdom.NamedNodeMap = attrMap{}
