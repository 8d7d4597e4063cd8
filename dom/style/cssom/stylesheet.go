package cssom

import (
	"strings"

	"github.com/npillmayer/stylesheet/dom/style"
)

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from each other
// (rules built at runtime vs. rules parsed from CSS text), we introduce an
// interface for CSS stylesheets.
//
// Having this interface imposes a performance hit. However, this
// implementation of CSS-styling will never trade modularity and
// clarity for performance.
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
}

// Format writes the rules of a stylesheet as CSS text. Every rule is
// written as
//
//     selector {
//       property: value;
//     }
//
// with declarations in the order reported by Rule.Properties and a
// newline after every closing brace. Important declarations get a
// suffix " !important". Nothing else (comments, at-rules) is written.
func Format(sheet StyleSheet) string {
	if sheet == nil {
		return ""
	}
	var b strings.Builder
	for _, r := range sheet.Rules() {
		b.WriteString(r.Selector())
		b.WriteString(" {\n")
		for _, key := range r.Properties() {
			b.WriteString("  ")
			b.WriteString(key)
			b.WriteString(": ")
			b.WriteString(DeclaredValue(r, key).String())
			b.WriteString(";\n")
		}
		b.WriteString("}\n")
	}
	tracer().Debugf("cssom: formatted %d bytes", b.Len())
	return b.String()
}

// DeclaredValue returns the value of a property of a rule as it has been
// declared, i.e. including an "!important" flag.
func DeclaredValue(r Rule, key string) style.Property {
	v := r.Value(key)
	if r.IsImportant(key) && !strings.HasSuffix(v.String(), "!important") {
		return style.Property(v.String() + " !important")
	}
	return v
}

// FindRule returns the first rule of a stylesheet with a given selector.
func FindRule(sheet StyleSheet, selector string) (Rule, bool) {
	if sheet == nil {
		return nil, false
	}
	for _, r := range sheet.Rules() {
		if r.Selector() == selector {
			return r, true
		}
	}
	return nil, false
}
