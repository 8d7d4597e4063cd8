package sheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/stylesheet/dom"
	"github.com/npillmayer/stylesheet/dom/style/cssom/douceuradapter"
	"golang.org/x/net/html"
)

// DefaultFileName is the file name offered for downloading a stylesheet.
const DefaultFileName = "styles.css"

const downloadLinkStyle = "position: fixed; left: 27px; top: 27px; padding: 3em; " +
	"background: #e2e2e2; color: green; font-size: 1.81em; border-radius: 0.27em;"

// Download appends a link to the <body> of the document, which offers the
// current stylesheet as a file download. The stylesheet is encoded into a
// data URI; fileName is set as the link's download attribute. An empty
// fileName selects DefaultFileName.
//
// The link element is returned.
func (st *Store) Download(fileName string) (*html.Node, error) {
	if fileName == "" {
		fileName = DefaultFileName
	}
	a, err := st.doc.AppendToBody("a")
	if err != nil {
		return nil, err
	}
	dom.SetAttr(a, "download", fileName)
	dom.SetAttr(a, "href", DataURI(st.Styles()))
	dom.SetAttr(a, "style", downloadLinkStyle)
	dom.SetTextContent(a, "Download styles")
	tracer().Infof("download link for %q appended to body", fileName)
	return a, nil
}

// DataURI encodes a stylesheet as a data URI.
func DataURI(styles string) string {
	return "data:application/css;charset=utf-8," + encodeURIComponent(styles)
}

// WriteTo writes the current stylesheet to w.
// It implements io.WriterTo.
func (st *Store) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, st.Styles())
	return int64(n), err
}

// Show displays the stylesheet for reading inside an element: its content
// is replaced by the lines of the stylesheet, each followed by a <br>.
// If target is nil, the <body> of the document is used.
func (st *Store) Show(target *html.Node) error {
	if target == nil {
		target = st.doc.Body()
	}
	if target == nil {
		return fmt.Errorf("show styles: %w", dom.ErrHostUnavailable)
	}
	if !dom.NodeIsElement(target) {
		return fmt.Errorf("show styles: %w", dom.ErrNotAnElement)
	}
	var children []*html.Node
	for _, line := range strings.Split(st.Styles(), "\n") {
		if line != "" {
			children = append(children, &html.Node{Type: html.TextNode, Data: line})
		}
		children = append(children, st.doc.CreateElement("br"))
	}
	dom.ReplaceChildren(target, children...)
	return nil
}

// Import merges the rules of all <style> elements of the document into the
// store (the store's own <style> element excluded), in document order.
// Rules are merged as with AddRule, i.e. the prefix applies.
//
// Style elements are parsed as CSS; at-rules are ignored. If a style
// element cannot be parsed, the rules of style elements preceding it are
// imported and an error is returned.
func (st *Store) Import() error {
	sheets, err := douceuradapter.ExtractStyleElements(st.doc.Root(), st.styleEle.Node())
	for _, s := range sheets {
		st.AppendRules(s)
	}
	tracer().Debugf("imported %d style elements", len(sheets))
	return err
}

// encodeURIComponent escapes all characters except
//
//     A–Z a–z 0–9 - _ . ! ~ * ' ( )
//
// as UTF-8 percent-encoded bytes.
func encodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
