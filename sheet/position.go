package sheet

import (
	"fmt"
	"strings"

	"github.com/npillmayer/stylesheet/dom"
	"golang.org/x/net/html"
)

// SelectorForElement derives a selector from the position of an element
// within the <body> of the document: the tag names of the element's
// ancestors, starting at <body>, joined with child combinators, e.g.
//
//     body > div > span
//
// If includeSiblings is true, the selector is narrowed down with the
// position of the element among its siblings, so that only this very
// element is selected:
//
//     body > div > span:nth-child(2)
//
// Returns dom.ErrDetachedElement if el is not a descendent of <body>.
func (st *Store) SelectorForElement(el *html.Node, includeSiblings bool) (string, error) {
	if st.doc.Body() == nil {
		return "", fmt.Errorf("derive selector: %w", dom.ErrHostUnavailable)
	}
	path, err := dom.ElementPath(el, st.doc.Body())
	if err != nil {
		return "", fmt.Errorf("derive selector for <%s>: %w", dom.TagName(el), err)
	}
	tags := make([]string, len(path))
	for i, n := range path {
		tags[i] = dom.TagName(n)
	}
	selector := strings.Join(tags, " > ")
	if includeSiblings {
		selector += fmt.Sprintf(":nth-child(%d)", dom.ElementPosition(el))
	}
	return selector, nil
}

// AddStyle adds a rule for a selector derived from the position of an
// element (see SelectorForElement). The rule is added as with AddRule,
// including the prefix.
func (st *Store) AddStyle(el *html.Node, styleText string, includeSiblings bool) error {
	selector, err := st.SelectorForElement(el, includeSiblings)
	if err != nil {
		tracer().Errorf("cannot add style: %v", err)
		return err
	}
	st.AddRule(selector, styleText)
	return nil
}
