/*
Package domdbg implements helpers to debug a DOM tree and its stylesheet.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/stylesheet/dom"
	"github.com/npillmayer/stylesheet/dom/style/cssom"
	"github.com/npillmayer/stylesheet/dom/w3cdom"
	"github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	Sheet    cssom.StyleSheet
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
	RuleTmpl *template.Template
	RuleEdge *template.Template
	RuleRule *template.Template
}

// ToGraphViz outputs a diagram for a DOM tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node of
// the DOM, a Writer, and an optional stylesheet.
// For every element, the rules of the stylesheet whose selector matches
// the element are drawn next to it. Rules with selectors which cannot be
// compiled are not drawn.
//
// Whitespace-only text nodes are left out.
func ToGraphViz(doc *dom.W3CNode, w io.Writer, sheet cssom.StyleSheet) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica", Sheet: sheet}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring":  shortText,
			"elementlabel": elementLabel,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.RuleTmpl = template.Must(template.New("rule").Parse(ruleTmpl))
	gparams.RuleEdge = template.Must(template.New("ruleedge").Parse(ruleEdgeTmpl))
	gparams.RuleRule = template.Must(template.New("rulerule").Parse(ruleRuleTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	g := &graph{w: w, params: &gparams, dict: make(map[*html.Node]string, 256)}
	if doc != nil {
		g.nodes(doc)
	}
	if g.err != nil {
		return g.err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

type graph struct {
	w      io.Writer
	params *graphParamsType
	dict   map[*html.Node]string
	rules  int
	err    error
}

type node struct {
	N    *dom.W3CNode
	Name string
}

func (g *graph) exec(t *template.Template, data interface{}) {
	if g.err != nil {
		return
	}
	g.err = t.Execute(g.w, data)
}

func (g *graph) nodes(n *dom.W3CNode) {
	g.domNode(n)
	children := n.ChildNodes()
	for i := 0; i < children.Length(); i++ {
		ch, ok := children.Item(i).(*dom.W3CNode)
		if !ok || isBlank(ch) {
			continue
		}
		g.nodes(ch)
		g.domEdge(n, ch)
	}
}

func (g *graph) domNode(n *dom.W3CNode) {
	name := g.name(n)
	g.exec(g.params.NodeTmpl, &node{n, name})
	g.domRules(n, name)
}

func (g *graph) name(n *dom.W3CNode) string {
	name := g.dict[n.HTMLNode()]
	if name == "" {
		l := len(g.dict) + 1
		name = fmt.Sprintf("node%05d", l)
		g.dict[n.HTMLNode()] = name
	}
	return name
}

type ruleBox struct {
	Name  string
	Rule  cssom.Rule
	Decls []declaration
}

type declaration struct {
	Key, Value string
}

func (g *graph) domRules(n *dom.W3CNode, name string) {
	if g.params.Sheet == nil || !dom.NodeIsElement(n.HTMLNode()) {
		return
	}
	var prev *ruleBox
	for _, r := range g.params.Sheet.Rules() {
		if ok, err := dom.Matches(n.HTMLNode(), r.Selector()); err != nil || !ok {
			continue
		}
		g.rules++
		box := &ruleBox{Name: fmt.Sprintf("rule%05d", g.rules), Rule: r}
		for _, key := range r.Properties() {
			box.Decls = append(box.Decls, declaration{key, cssom.DeclaredValue(r, key).String()})
		}
		g.exec(g.params.RuleTmpl, box)
		if prev == nil {
			g.exec(g.params.RuleEdge, ruleEdge{name, box.Name})
		} else {
			g.exec(g.params.RuleRule, ruleEdge{prev.Name, box.Name})
		}
		prev = box
	}
}

type edge struct {
	N1, N2 node
}

type ruleEdge struct {
	From, To string
}

func (g *graph) domEdge(n1 *dom.W3CNode, n2 *dom.W3CNode) {
	name1 := g.dict[n1.HTMLNode()]
	name2 := g.dict[n2.HTMLNode()]
	g.exec(g.params.EdgeTmpl, edge{node{n1, name1}, node{n2, name2}})
}

func isBlank(n w3cdom.Node) bool {
	return n.NodeType() == html.TextNode && strings.TrimSpace(n.NodeValue()) == ""
}

// Escapes for DOT string literals. Text nodes display spaces and control
// characters visibly.
var (
	quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	textEscaper  = strings.NewReplacer(`\`, `\\`, `"`, `\"`,
		"\n", `\\n`, "\t", `\\t`, " ", "␣")
)

// shortText returns a quoted DOT label for a text node, showing at most 10
// characters of text.
func shortText(n w3cdom.Node) string {
	text := []rune(n.NodeValue())
	ellipsis := ""
	if len(text) > 10 {
		text = text[:10]
		ellipsis = "..."
	}
	return `"\"` + textEscaper.Replace(string(text)) + ellipsis + `\""`
}

// elementLabel returns a quoted DOT label for an element, consisting of
// the tag name and, if present, id and classes, e.g. "div#main.wide".
func elementLabel(n w3cdom.Node) string {
	label := n.NodeName()
	if n.HasAttributes() {
		attrs := n.Attributes()
		for i := 0; i < attrs.Length(); i++ {
			switch a := attrs.Item(i); a.Key() {
			case "id":
				label += "#" + a.Value()
			case "class":
				label += "." + strings.Join(strings.Fields(a.Value()), ".")
			}
		}
	}
	return `"` + quoteEscaper.Replace(label) + `"`
}

// --- Rule tree ---------------------------------------------------------

// RulesTree returns a tree-like print of a stylesheet: one branch per
// rule, one leaf per declaration.
func RulesTree(sheet cssom.StyleSheet) string {
	tree := treeprint.NewWithRoot("stylesheet")
	if sheet == nil {
		return tree.String()
	}
	for _, r := range sheet.Rules() {
		branch := tree.AddBranch(r.Selector())
		for _, key := range r.Properties() {
			branch.AddMetaNode(key, cssom.DeclaredValue(r, key).String())
		}
	}
	return tree.String()
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if eq .N.NodeName "#text" }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ elementlabel .N }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const ruleTmpl = `{{ .Name }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Rule.Selector | html }}</font></td></tr>
      {{ range .Decls }}
      <tr><td align="right">{{ .Key | html }}:</td><td>{{ .Value | html }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no declarations</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const ruleEdgeTmpl = `{{ .From }} -> {{ .To }} [dir=none weight=1 style="dashed"] ;
`

const ruleRuleTmpl = `{{ .From }} -> {{ .To }} [dir=none weight=1 style="dotted"] ;
`
