package sheet

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stylesheet/dom"
	"github.com/npillmayer/stylesheet/dom/style"
	"github.com/npillmayer/stylesheet/dom/style/cssom/douceuradapter"
)

func newStore(t *testing.T) *Store {
	st, err := New(dom.NewDocument())
	if err != nil {
		t.Fatal(err)
	}
	return st
}

// selectors of rules and the selector list must hold the same elements
func checkInSync(t *testing.T, st *Store) {
	t.Helper()
	if len(st.rules) != len(st.selectors) {
		t.Fatalf("expected %d selectors, have %d", len(st.rules), len(st.selectors))
	}
	for i, r := range st.rules {
		if st.selectors[i] != r.selector {
			t.Errorf("selector #%d out of sync: %q vs %q", i, st.selectors[i], r.selector)
		}
	}
}

func TestNewWithoutHost(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, dom.ErrHostUnavailable) {
		t.Errorf("expected host unavailable for nil document, have %v", err)
	}
	if _, err := New(dom.Wrap(nil)); !errors.Is(err, dom.ErrHostUnavailable) {
		t.Errorf("expected host unavailable for empty document, have %v", err)
	}
}

func TestSerialize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylesheet.sheet")
	defer teardown()
	//
	st := newStore(t)
	st.AddRule("div a", "background: red;")
	st.AddRule("body a", "color: green;")
	expected := "div a {\n  background: red;\n}\nbody a {\n  color: green;\n}\n"
	if s := st.Serialize(); s != expected {
		t.Errorf("unexpected serialization:\n%q\nexpected\n%q", s, expected)
	}
	if st.Styles() != expected {
		t.Errorf("expected rendered styles to equal serialization, are %q", st.Styles())
	}
	checkInSync(t, st)
}

func TestSelectorExistsAfterAdd(t *testing.T) {
	st := newStore(t)
	for _, sel := range []string{"a", "div > p", ".x .y", "#id:hover"} {
		st.AddRule(sel, "color: red")
		if !st.SelectorExists(sel) {
			t.Errorf("expected selector %q to exist after AddRule", sel)
		}
	}
	if st.SelectorExists("b") {
		t.Errorf("expected selector b not to exist")
	}
	checkInSync(t, st)
}

func TestMerge(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylesheet.sheet")
	defer teardown()
	//
	st := newStore(t)
	st.AddRule("a", "color: red;")
	st.AddRule("a", "background: blue;")
	if st.Len() != 1 {
		t.Fatalf("expected a single rule, have %d", st.Len())
	}
	r, _ := st.Lookup("a")
	if r.Value("color") != "red" || r.Value("background") != "blue" {
		t.Errorf("expected merged declarations, have %s", r)
	}
	checkInSync(t, st)
}

func TestOverwrite(t *testing.T) {
	st := newStore(t)
	st.AddRule("a", "color: red;")
	st.AddRule("a", "color: green;")
	r, _ := st.Lookup("a")
	if r.props.Len() != 1 || r.Value("color") != "green" {
		t.Errorf("expected exactly color: green, have %s", r)
	}
}

func TestIdempotent(t *testing.T) {
	texts := []string{
		"color: red;",
		"padding: 0; margin: 1px 2px; color: green",
		"color: red;; :blue; margin:",
		"",
	}
	for _, text := range texts {
		once, twice := newStore(t), newStore(t)
		once.AddRule("p", text)
		twice.AddRule("p", text)
		twice.AddRule("p", text)
		r1, _ := once.Lookup("p")
		r2, _ := twice.Lookup("p")
		if !r1.props.Equal(r2.props) {
			t.Errorf("expected AddRule to be idempotent for %q: %s vs %s", text, r1, r2)
		}
		if once.Serialize() != twice.Serialize() {
			t.Errorf("expected identical stylesheets for %q", text)
		}
	}
}

func TestPrefix(t *testing.T) {
	st := newStore(t)
	st.SetPrefix(".scope ")
	st.AddRule("div a", "color:red;")
	if !st.SelectorExists(".scope div a") {
		t.Errorf("expected prefixed selector to exist")
	}
	if st.SelectorExists("div a") {
		t.Errorf("expected unprefixed selector not to exist")
	}
	if s := st.Serialize(); s != ".scope div a {\n  color: red;\n}\n" {
		t.Errorf("unexpected serialization with prefix: %q", s)
	}
	if st.Prefix() != ".scope " {
		t.Errorf("expected prefix to be retained, is %q", st.Prefix())
	}
}

func TestPermissiveStyleText(t *testing.T) {
	st := newStore(t)
	st.AddRule("p", "color: red;; :blue; margin:")
	r, _ := st.Lookup("p")
	expected := style.NewPropertyMap()
	expected.Set("color", "red")
	if !r.props.Equal(expected) {
		t.Errorf("expected only color: red, have %s", r)
	}
}

func TestRuleBlocks(t *testing.T) {
	st := newStore(t)
	if blocks := st.RuleBlocks(); len(blocks) != 1 || blocks[0] != "" {
		t.Errorf("expected a single empty block for empty stylesheet, have %q", blocks)
	}
	st.AddRule("div a", "background: red;")
	st.AddRule("body a", "color: green;")
	blocks := st.RuleBlocks()
	expected := []string{"div a {\n  background: red;\n", "\nbody a {\n  color: green;\n", "\n"}
	if len(blocks) != len(expected) {
		t.Fatalf("expected %d blocks, have %d: %q", len(expected), len(blocks), blocks)
	}
	for i := range expected {
		if blocks[i] != expected[i] {
			t.Errorf("block #%d: expected %q, have %q", i, expected[i], blocks[i])
		}
	}
}

func TestStyleElementIsReused(t *testing.T) {
	st := newStore(t)
	se := st.StyleElement()
	st.AddRule("a", "color: red")
	st.AddRule("b", "color: blue")
	if st.StyleElement() != se {
		t.Errorf("expected style element to persist")
	}
	n := 0
	for ch := st.Document().Head().FirstChild; ch != nil; ch = ch.NextSibling {
		if dom.TagName(ch) == "style" {
			n++
		}
	}
	if n != 1 {
		t.Errorf("expected exactly one style element in head, found %d", n)
	}
}

func TestAppendRulesFromDouceur(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylesheet.sheet")
	defer teardown()
	//
	st := newStore(t)
	st.AddRule("p", "margin: 0")
	other, err := douceuradapter.Parse("p { color: red !important; } h1 { font-size: 2em; }")
	if err != nil {
		t.Fatal(err)
	}
	st.AppendRules(other)
	expected := "p {\n  margin: 0;\n  color: red !important;\n}\nh1 {\n  font-size: 2em;\n}\n"
	if st.Styles() != expected {
		t.Errorf("unexpected styles after append:\n%s", st.Styles())
	}
	checkInSync(t, st)
}

func TestSerializationParsesAsCSS(t *testing.T) {
	st := newStore(t)
	st.AddRule("div a", "background: red; padding: 0 1em")
	st.AddRule("body > div > span:nth-child(2)", "color: green")
	parsed, err := douceuradapter.Parse(st.Serialize())
	if err != nil {
		t.Fatal(err)
	}
	rules := parsed.Rules()
	if len(rules) != 2 {
		t.Fatalf("expected 2 parsed rules, have %d", len(rules))
	}
	if rules[1].Selector() != "body > div > span:nth-child(2)" {
		t.Errorf("unexpected selector after parsing: %q", rules[1].Selector())
	}
	if rules[0].Value("padding") != "0 1em" {
		t.Errorf("unexpected padding after parsing: %q", rules[0].Value("padding"))
	}
	if !strings.HasSuffix(st.Serialize(), "}\n") {
		t.Errorf("expected stylesheet to end with a closing brace and newline")
	}
}
