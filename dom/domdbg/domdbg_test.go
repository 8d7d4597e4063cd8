package domdbg

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/stylesheet/dom"
	"github.com/npillmayer/stylesheet/dom/style/cssom/douceuradapter"
)

func TestToGraphViz(t *testing.T) {
	doc, err := dom.ParseDocument(strings.NewReader(
		"<html><body><div><span>hello world</span></div></body></html>"))
	if err != nil {
		t.Fatal(err)
	}
	sheet, err := douceuradapter.Parse("body > div > span { color: red; } div { margin: 0; } p { x: y; }")
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	if err := ToGraphViz(dom.NodeAsW3C(doc.Root()), &b, sheet); err != nil {
		t.Fatal(err)
	}
	dot := b.String()
	if !strings.HasPrefix(dot, "digraph g {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("expected a digraph, have\n%s", dot)
	}
	if !strings.Contains(dot, "body &gt; div &gt; span") {
		t.Errorf("expected matching rule for span to be drawn, have\n%s", dot)
	}
	if strings.Contains(dot, "x:</td>") {
		t.Errorf("expected rule for p not to be drawn")
	}
	if n := strings.Count(dot, `shape="Mrecord"`); n != 2 {
		t.Errorf("expected 2 rule boxes, have %d", n)
	}
	t.Logf("\n%s", dot)
}

func TestGraphVizTextLabels(t *testing.T) {
	doc, err := dom.ParseDocument(strings.NewReader(
		`<html><body><p class="x  y">say "hi"</p><p id="u">aäöüäöüäöüä</p><p>back\slash</p></body></html>`))
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	if err := ToGraphViz(dom.NodeAsW3C(doc.Body()), &b, nil); err != nil {
		t.Fatal(err)
	}
	dot := b.String()
	if !utf8.ValidString(dot) {
		t.Errorf("expected DOT output to be valid UTF-8")
	}
	for _, label := range []string{
		`label="\"say␣\"hi\"\""`,
		`label="\"aäöüäöüäöü...\""`,
		`label="\"back\\slash\""`,
		`label="p.x.y"`,
		`label="p#u"`,
	} {
		if !strings.Contains(dot, label) {
			t.Errorf("expected DOT output to contain %s, have\n%s", label, dot)
		}
	}
}

func TestRulesTree(t *testing.T) {
	sheet, err := douceuradapter.Parse("a { color: red; margin: 0 !important; }")
	if err != nil {
		t.Fatal(err)
	}
	tree := RulesTree(sheet)
	for _, s := range []string{"stylesheet", "a", "[color]  red", "[margin]  0 !important"} {
		if !strings.Contains(tree, s) {
			t.Errorf("expected tree to contain %q, is\n%s", s, tree)
		}
	}
	if RulesTree(nil) == "" {
		t.Errorf("expected root for empty tree")
	}
}
