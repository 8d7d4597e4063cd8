/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

It wraps stylesheets parsed by github.com/aymerick/douceur. Only qualified
rules are exposed as cssom.Rules; at-rules (@media, @import, …) are kept
in the wrapped stylesheet but are invisible to clients of cssom.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/stylesheet/dom/style"
	"github.com/npillmayer/stylesheet/dom/style/cssom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'stylesheet.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("stylesheet.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Parse parses CSS text into a stylesheet.
func Parse(text string) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing CSS: %w", err)
	}
	return Wrap(c), nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.Rules()) == 0
}

// AppendRules appends rules from another stylesheet.
// Rules of stylesheets of other implementations are converted to douceur
// rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	if othercss, ok := other.(*CSSStyles); ok {
		sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
		return
	}
	for _, r := range other.Rules() {
		sheet.css.Rules = append(sheet.css.Rules, ToDouceurRule(r))
	}
}

// Rules returns all the qualified rules of a stylesheet.
//
// Interface style.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, 0, len(sheet.css.Rules))
	for _, r := range sheet.css.Rules {
		if r.Kind != css.QualifiedRule {
			continue
		}
		rules = append(rules, Rule(*r))
	}
	return rules
}

// Stylesheet returns the wrapped douceur stylesheet.
func (sheet *CSSStyles) Stylesheet() *css.Stylesheet {
	return &sheet.css
}

// String returns the stylesheet in douceur's own formatting.
func (sheet *CSSStyles) String() string {
	return sheet.css.String()
}

var _ cssom.StyleSheet = &CSSStyles{}

// FromStyleSheet converts any cssom.StyleSheet into a douceur stylesheet.
func FromStyleSheet(other cssom.StyleSheet) *CSSStyles {
	sheet := Wrap(css.NewStylesheet())
	sheet.AppendRules(other)
	return sheet
}

// ToDouceurRule converts a cssom.Rule into a qualified douceur rule.
func ToDouceurRule(r cssom.Rule) *css.Rule {
	rule := css.NewRule(css.QualifiedRule)
	rule.Prelude = r.Selector()
	rule.Selectors = []string{r.Selector()}
	for _, key := range r.Properties() {
		decl := css.NewDeclaration()
		decl.Property = key
		decl.Value = r.Value(key).String()
		decl.Important = r.IsImportant(key)
		rule.Declarations = append(rule.Declarations, decl)
	}
	return rule
}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top". A key declared more than once is reported once.
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	seen := make(map[string]bool, len(decl))
	for _, d := range decl {
		if seen[d.Property] {
			continue
		}
		seen[d.Property] = true
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px".
// If a key is declared more than once, the last declaration wins.
func (r Rule) Value(key string) style.Property {
	decl := r.Declarations
	value := style.NullStyle
	for _, d := range decl {
		if d.Property == key {
			value = style.Property(d.Value)
		}
	}
	return value
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	decl := r.Declarations
	important := false
	for _, d := range decl {
		if d.Property == key {
			important = d.Important
		}
	}
	return important
}

var _ cssom.Rule = &Rule{}

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets. Style elements contained in skip are
// ignored, as are empty ones. Style elements with content douceur cannot
// parse are reported as an error, together with the stylesheets extracted
// so far.
func ExtractStyleElements(htmldoc *html.Node, skip ...*html.Node) ([]*CSSStyles, error) {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	css, err := extractStyles(head, skip)
	if err != nil {
		return css, err
	}
	css2, err := extractStyles(body, skip)
	css = append(css, css2...)
	return css, err
}

func extractStyles(h *html.Node, skip []*html.Node) ([]*CSSStyles, error) {
	var css []*CSSStyles
	if h == nil {
		return css, nil
	}
	ch := h.FirstChild
	for ; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom != atom.Style || contains(skip, ch) || ch.FirstChild == nil {
			continue
		}
		c, err := parser.Parse(ch.FirstChild.Data)
		if err != nil {
			return css, fmt.Errorf("parsing <style> in <%s>: %w", h.Data, err)
		}
		tracer().Debugf("extracted %d rules from <style> in <%s>", len(c.Rules), h.Data)
		css = append(css, Wrap(c))
	}
	return css, nil
}

func contains(nodes []*html.Node, n *html.Node) bool {
	for _, x := range nodes {
		if x == n {
			return true
		}
	}
	return false
}

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
