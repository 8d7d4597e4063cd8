package dom

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

const page = `<html><head><title>T</title></head><body>
<div><p>one</p>
  <span>a</span> text <span id="second">b</span>
</div>
</body></html>`

func parsePage(t *testing.T) *Document {
	doc, err := ParseDocument(strings.NewReader(page))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestNewDocumentHasHeadAndBody(t *testing.T) {
	doc := NewDocument()
	if doc.Head() == nil || doc.Body() == nil {
		t.Fatalf("expected new document to have head and body, is %s", doc)
	}
}

func TestWrapWithoutHead(t *testing.T) {
	frag := &html.Node{Type: html.ElementNode, Data: "div"}
	doc := Wrap(frag)
	if _, err := doc.NewStyleElement(); !errors.Is(err, ErrHostUnavailable) {
		t.Errorf("expected host unavailable for fragment, have %v", err)
	}
	var null *Document
	if _, err := null.NewStyleElement(); !errors.Is(err, ErrHostUnavailable) {
		t.Errorf("expected host unavailable for nil document, have %v", err)
	}
	if err := null.Render(&strings.Builder{}); !errors.Is(err, ErrHostUnavailable) {
		t.Errorf("expected host unavailable when rendering nil document, have %v", err)
	}
}

func TestStyleElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylesheet.dom")
	defer teardown()
	//
	doc := NewDocument()
	se, err := doc.NewStyleElement()
	if err != nil {
		t.Fatal(err)
	}
	se.SetText("a {\n  color: red;\n}\n")
	se.SetText("b {\n}\n")
	if se.Text() != "b {\n}\n" {
		t.Errorf("expected style text to be replaced, is %q", se.Text())
	}
	if se.Node().Parent != doc.Head() {
		t.Errorf("expected style element to live in head")
	}
	out := doc.String()
	if !strings.Contains(out, "<style>b {\n}\n</style>") {
		t.Errorf("expected rendered document to contain style element, is %s", out)
	}
}

func TestElementPath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylesheet.dom")
	defer teardown()
	//
	doc := parsePage(t)
	span, err := doc.QueryFirst("#second")
	if err != nil || span == nil {
		t.Fatalf("cannot find span: %v", err)
	}
	path, err := ElementPath(span, doc.Body())
	if err != nil {
		t.Fatal(err)
	}
	var tags []string
	for _, n := range path {
		tags = append(tags, TagName(n))
	}
	if strings.Join(tags, " > ") != "body > div > span" {
		t.Errorf("expected path body > div > span, is %v", tags)
	}
	if pos := ElementPosition(span); pos != 3 {
		t.Errorf("expected second span to be 3rd element child, is %d", pos)
	}
}

func TestElementPathDetached(t *testing.T) {
	doc := NewDocument()
	div := doc.CreateElement("div")
	span := doc.CreateElement("span")
	div.AppendChild(span)
	if _, err := ElementPath(span, doc.Body()); !errors.Is(err, ErrDetachedElement) {
		t.Errorf("expected detached element error, have %v", err)
	}
	if _, err := ElementPath(span, nil); !errors.Is(err, ErrDetachedElement) {
		t.Errorf("expected detached element error without body, have %v", err)
	}
	text := &html.Node{Type: html.TextNode, Data: "x"}
	if _, err := ElementPath(text, doc.Body()); !errors.Is(err, ErrNotAnElement) {
		t.Errorf("expected not-an-element error for text node, have %v", err)
	}
}

func TestQuery(t *testing.T) {
	doc := parsePage(t)
	spans, err := doc.Query("div > span")
	if err != nil {
		t.Fatal(err)
	}
	if len(spans) != 2 {
		t.Errorf("expected 2 spans, found %d", len(spans))
	}
	if _, err := doc.Query("div >> ("); err == nil {
		t.Errorf("expected invalid selector to be flagged")
	}
	ok, err := Matches(spans[1], "body > div > span:nth-child(3)")
	if err != nil || !ok {
		t.Errorf("expected nth-child selector to match second span, err = %v", err)
	}
}

func TestAttributes(t *testing.T) {
	doc := NewDocument()
	a, err := doc.AppendToBody("a")
	if err != nil {
		t.Fatal(err)
	}
	SetAttr(a, "download", "x.css")
	SetAttr(a, "download", "y.css")
	if v, ok := Attr(a, "download"); !ok || v != "y.css" {
		t.Errorf("expected download attribute y.css, is %q", v)
	}
	if len(a.Attr) != 1 {
		t.Errorf("expected attribute to be replaced, have %d attributes", len(a.Attr))
	}
}

func TestW3CNode(t *testing.T) {
	doc := parsePage(t)
	span, _ := doc.QueryFirst("#second")
	w := NodeAsW3C(span)
	if w.NodeName() != "span" {
		t.Errorf("expected node name span, is %q", w.NodeName())
	}
	if !w.HasAttributes() || w.Attributes().Length() != 1 {
		t.Errorf("expected 1 attribute")
	} else if a := w.Attributes().Item(0); a.Key() != "id" || a.Value() != "second" {
		t.Errorf("expected id attribute 'second', is %s=%q", a.Key(), a.Value())
	}
	prev := w.PreviousElementSibling()
	if prev == nil || prev.NodeName() != "span" {
		t.Fatalf("expected previous element sibling to be a span, is %v", prev)
	}
	if prev.PreviousElementSibling() == nil || prev.PreviousElementSibling().PreviousElementSibling() != nil {
		t.Errorf("expected #second to be the third element child")
	}
	div := NodeAsW3C(span.Parent)
	if div.ChildNodes().Length() <= 3 {
		t.Errorf("expected div to have text children, too")
	}
	if div.ChildNodes().Item(-1) != nil || w.Attributes().Item(5) != nil {
		t.Errorf("expected nil for items out of range")
	}
	if NodeAsW3C(nil) != nil {
		t.Errorf("expected nil wrapper for nil node")
	}
}
