package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/stylesheet/dom"
	"github.com/npillmayer/stylesheet/sheet"
)

// Script is a rule script, read from TOML.
type Script struct {
	Prefix    string          `toml:"prefix"`
	Output    string          `toml:"output"`
	Import    bool            `toml:"import"`
	Rules     []RuleEntry     `toml:"rule"`
	Positions []PositionEntry `toml:"position"`
}

// RuleEntry adds a rule for a selector.
type RuleEntry struct {
	Selector string `toml:"selector"`
	Style    string `toml:"style"`
}

// PositionEntry adds a rule for a selector derived from the position of an
// element, which is picked from the page by a CSS selector.
type PositionEntry struct {
	Select   string `toml:"select"`
	Style    string `toml:"style"`
	Siblings bool   `toml:"siblings"`
}

var errNoElement = errors.New("no element matches")

// LoadScript reads a rule script from a TOML file.
func LoadScript(path string) (*Script, error) {
	s := &Script{}
	md, err := toml.DecodeFile(path, s)
	if err != nil {
		return nil, fmt.Errorf("reading rule script: %w", err)
	}
	for _, key := range md.Undecoded() {
		tracer().Infof("rule script %s: ignoring unknown key %q", path, key.String())
	}
	return s, nil
}

// ParseScript reads a rule script from TOML text.
func ParseScript(text string) (*Script, error) {
	s := &Script{}
	if _, err := toml.Decode(text, s); err != nil {
		return nil, fmt.Errorf("reading rule script: %w", err)
	}
	return s, nil
}

// Apply creates a store for doc and applies the script to it.
func (s *Script) Apply(doc *dom.Document) (*sheet.Store, error) {
	st, err := sheet.New(doc)
	if err != nil {
		return nil, err
	}
	// page styles are imported unprefixed
	if s.Import {
		if err := st.Import(); err != nil {
			return nil, err
		}
	}
	st.SetPrefix(s.Prefix)
	for _, r := range s.Rules {
		if strings.TrimSpace(r.Selector) == "" {
			tracer().Errorf("rule script: skipping rule without selector")
			continue
		}
		st.AddRule(r.Selector, r.Style)
	}
	for _, p := range s.Positions {
		el, err := doc.QueryFirst(p.Select)
		if err != nil {
			return nil, err
		}
		if el == nil {
			return nil, fmt.Errorf("position %q: %w", p.Select, errNoElement)
		}
		if err := st.AddStyle(el, p.Style, p.Siblings); err != nil {
			return nil, fmt.Errorf("position %q: %w", p.Select, err)
		}
	}
	tracer().Debugf("rule script applied, stylesheet has %d rules", st.Len())
	return st, nil
}

// loadDocument reads the HTML page at path, or creates an empty document if
// path is empty.
func loadDocument(path string) (*dom.Document, error) {
	if path == "" {
		return dom.NewDocument(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dom.ParseDocument(f)
}

// build loads page and script and applies the script.
func build(opts *options) (*Script, *sheet.Store, error) {
	script, err := LoadScript(opts.script)
	if err != nil {
		return nil, nil, err
	}
	doc, err := loadDocument(opts.page)
	if err != nil {
		return nil, nil, err
	}
	st, err := script.Apply(doc)
	if err != nil {
		return nil, nil, err
	}
	return script, st, nil
}

// writeFile writes output to path, or to w if path is "-".
func writeFile(path string, w io.Writer, output io.WriterTo) error {
	if path == "-" {
		_, err := output.WriteTo(w)
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err = output.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
