package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// NodeIsElement is a predicate to match element nodes of a DOM.
func NodeIsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// NodeIsText is a predicate to match text-nodes of a DOM.
func NodeIsText(n *html.Node) bool {
	return n != nil && n.Type == html.TextNode
}

// TagName returns the lower-case tag name of an element, or "" for
// non-element nodes.
func TagName(n *html.Node) string {
	if !NodeIsElement(n) {
		return ""
	}
	return strings.ToLower(n.Data)
}

// ElementPath returns the chain of elements from root down to el, both
// included. The chain is found by walking parent links upwards from el until
// a node is reached which is root. If root is nil, the walk stops at the first
// element with tag name "body".
//
// If the walk runs out of parents before reaching root, ErrDetachedElement
// is returned. A walk therefore always terminates.
func ElementPath(el *html.Node, root *html.Node) ([]*html.Node, error) {
	if !NodeIsElement(el) {
		return nil, ErrNotAnElement
	}
	var path []*html.Node
	for n := el; n != nil; n = n.Parent {
		if !NodeIsElement(n) {
			break
		}
		path = append(path, n)
		if isRoot(n, root) {
			reverse(path)
			return path, nil
		}
	}
	tracer().Debugf("dom: root not reachable from <%s>", TagName(el))
	return nil, ErrDetachedElement
}

func isRoot(n *html.Node, root *html.Node) bool {
	if root != nil {
		return n == root
	}
	return TagName(n) == "body"
}

func reverse(path []*html.Node) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
}

// PreviousElementSibling returns the closest preceding sibling of n which is
// an element, or nil.
func PreviousElementSibling(n *html.Node) *html.Node {
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		if NodeIsElement(s) {
			return s
		}
	}
	return nil
}

// ElementPosition returns the 1-based position of an element among the
// element children of its parent, i.e. the argument of a
// :nth-child(…) pseudo class selecting el. Text and comment nodes are not
// counted.
func ElementPosition(el *html.Node) int {
	i := 1
	for s := NodeAsW3C(el).PreviousElementSibling(); s != nil; s = s.PreviousElementSibling() {
		i++
	}
	return i
}

// TextContent returns the text of n and all of its descendents.
func TextContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		b.WriteString(TextContent(ch))
	}
	return b.String()
}

// ReplaceChildren removes all children of n and appends children instead.
func ReplaceChildren(n *html.Node, children ...*html.Node) {
	for ch := n.FirstChild; ch != nil; ch = n.FirstChild {
		n.RemoveChild(ch)
	}
	for _, ch := range children {
		n.AppendChild(ch)
	}
}

// SetTextContent replaces all children of n by a single text node.
func SetTextContent(n *html.Node, text string) {
	ReplaceChildren(n, &html.Node{Type: html.TextNode, Data: text})
}

// Attr returns the value of an attribute of n, together with an indicator
// wether it is present.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces an attribute of n.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
