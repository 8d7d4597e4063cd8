package sheet

import (
	"fmt"
	"strings"

	"github.com/npillmayer/stylesheet/dom"
	"github.com/npillmayer/stylesheet/dom/style"
	"github.com/npillmayer/stylesheet/dom/style/cssom"
)

// Rule is a selector together with its declarations.
type Rule struct {
	selector string
	props    *style.PropertyMap
}

// Selector returns the (prefixed) selector of the rule.
func (r *Rule) Selector() string {
	return r.selector
}

// Properties returns the property keys of a rule, in order of first
// declaration.
func (r *Rule) Properties() []string {
	return r.props.Keys()
}

// Value returns the value of a property, or style.NullStyle.
func (r *Rule) Value(key string) style.Property {
	p, _ := r.props.Property(key)
	return p
}

// IsImportant is always false: an "!important" flag is part of the value.
func (r *Rule) IsImportant(string) bool {
	return false
}

// Declarations returns a copy of the declarations of the rule.
func (r *Rule) Declarations() *style.PropertyMap {
	return r.props.Copy()
}

func (r *Rule) String() string {
	return r.selector + " {\n" + r.props.Declarations("  ") + "}\n"
}

var _ cssom.Rule = &Rule{}

// Store holds the rules of a stylesheet and renders them into the <style>
// element of a document.
//
// Selectors are unique within a store: adding declarations for a selector
// already present merges them into the existing rule.
type Store struct {
	doc       *dom.Document
	rules     []*Rule  // in insertion order, which is the output order
	selectors []string // same elements as selectors of rules
	prefix    string
	styleEle  *dom.StyleElement
}

// New creates an empty store for a document. It creates a <style> element
// in the document's <head>, which will carry the stylesheet for the lifetime
// of the store.
//
// If doc is nil or lacks a <head>, dom.ErrHostUnavailable is returned.
func New(doc *dom.Document) (*Store, error) {
	if doc == nil {
		return nil, fmt.Errorf("new stylesheet store: %w", dom.ErrHostUnavailable)
	}
	se, err := doc.NewStyleElement()
	if err != nil {
		return nil, err
	}
	st := &Store{
		doc:      doc,
		styleEle: se,
	}
	st.Render()
	return st, nil
}

// Document returns the host document of the store.
func (st *Store) Document() *dom.Document {
	return st.doc
}

// StyleElement returns the <style> element the store renders into.
func (st *Store) StyleElement() *dom.StyleElement {
	return st.styleEle
}

// Prefix returns the current selector prefix.
func (st *Store) Prefix() string {
	return st.prefix
}

// SetPrefix sets a prefix which is prepended to every selector subsequently
// added. Nothing is inserted between prefix and selector: to scope rules
// with a class, include a trailing space, e.g. ".scope ".
func (st *Store) SetPrefix(prefix string) {
	st.prefix = prefix
}

// AddRule adds declarations given as style text, e.g.
//
//     "background: red; color: green;"
//
// for a selector. The selector is prefixed first. If a rule for the
// prefixed selector exists, the declarations are merged into it:
// properties present in both have their values overwritten, other
// properties of the existing rule are left untouched. Otherwise a new rule
// is appended.
//
// Style text is not validated; see style.ParseDeclarations for details.
// The complete stylesheet is re-rendered after every call.
func (st *Store) AddRule(selector string, styleText string) {
	st.addRule(selector, style.ParseDeclarations(styleText))
	st.Render()
}

func (st *Store) addRule(selector string, props *style.PropertyMap) {
	selector = st.prefix + selector
	if st.SelectorExists(selector) {
		r, _ := st.Lookup(selector)
		n := r.props.Merge(props)
		tracer().P("selector", selector).Debugf("merged rule, %d declarations changed", n)
		return
	}
	st.rules = append(st.rules, &Rule{
		selector: selector,
		props:    props.Copy(),
	})
	st.selectors = append(st.selectors, selector)
	tracer().P("selector", selector).Debugf("added rule with %d declarations", props.Len())
}

// SelectorExists is a predicate wether a rule for a selector exists.
// The selector is compared as given, i.e. it has to include the prefix.
func (st *Store) SelectorExists(selector string) bool {
	for _, s := range st.selectors {
		if s == selector {
			return true
		}
	}
	return false
}

// Lookup returns the rule for a selector, which has to include the prefix.
func (st *Store) Lookup(selector string) (*Rule, bool) {
	for _, r := range st.rules {
		if r.selector == selector {
			return r, true
		}
	}
	return nil, false
}

// Len returns the number of rules.
func (st *Store) Len() int {
	return len(st.rules)
}

// Serialize returns the stylesheet as CSS text. Rules are written in the
// order they have been added, declarations in the order of their first
// appearance:
//
//     div a {
//       background: red;
//     }
//
func (st *Store) Serialize() string {
	return cssom.Format(st)
}

// Render writes the serialized stylesheet into the store's <style>
// element, replacing any previous content.
func (st *Store) Render() {
	st.styleEle.SetText(st.Serialize())
}

// Styles returns the stylesheet text as currently rendered into the
// <style> element.
func (st *Store) Styles() string {
	return st.styleEle.Text()
}

// RuleBlocks splits the rendered stylesheet at every '}'. Every block
// holds a selector and its declarations, without the closing brace. As the
// stylesheet ends with "}\n", the last block is a trailing "\n" (or "" for
// an empty stylesheet).
func (st *Store) RuleBlocks() []string {
	return strings.Split(st.Styles(), "}")
}

// --- Interface cssom.StyleSheet --------------------------------------------

// Empty checks if this stylesheet contains any rules.
func (st *Store) Empty() bool {
	return len(st.rules) == 0
}

// Rules returns all the rules of the stylesheet, in output order.
func (st *Store) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, len(st.rules))
	for i, r := range st.rules {
		rules[i] = r
	}
	return rules
}

// AppendRules merges all rules of another stylesheet into the store, as if
// added by AddRule (including the prefix). "!important" flags are kept as
// part of the value. The stylesheet is rendered once at the end.
func (st *Store) AppendRules(other cssom.StyleSheet) {
	if other == nil {
		return
	}
	for _, r := range other.Rules() {
		props := style.NewPropertyMap()
		for _, key := range r.Properties() {
			props.Set(key, cssom.DeclaredValue(r, key))
		}
		st.addRule(r.Selector(), props)
	}
	st.Render()
}

var _ cssom.StyleSheet = &Store{}
