package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/stylesheet/dom"
	"github.com/npillmayer/stylesheet/dom/domdbg"
	"github.com/npillmayer/stylesheet/sheet"
	"github.com/spf13/cobra"
)

var errShowNeedsInject = errors.New("flag --show needs --inject")

func newBuildCmd(opts *options) *cobra.Command {
	var output, inject string
	var show bool
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the stylesheet and write it to a CSS file",
		Long: `Build applies the rule script and writes the resulting stylesheet.
The output file defaults to the script's 'output' entry, then to styles.css.
Use '-' to write to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if show && inject == "" {
				return errShowNeedsInject
			}
			script, st, err := build(opts)
			if err != nil {
				return err
			}
			if output == "" {
				output = script.Output
			}
			if output == "" {
				output = sheet.DefaultFileName
			}
			if show {
				if err := st.Show(nil); err != nil {
					return err
				}
			}
			if err := writeFile(output, cmd.OutOrStdout(), st); err != nil {
				return err
			}
			tracer().Infof("wrote %d rules to %s", st.Len(), output)
			if inject != "" {
				if err := writeFile(inject, cmd.OutOrStdout(), page{st.Document()}); err != nil {
					return err
				}
				tracer().Infof("wrote styled page to %s", inject)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "CSS output file")
	cmd.Flags().StringVar(&inject, "inject", "", "write the page, including the generated <style> element")
	cmd.Flags().BoolVar(&show, "show", false, "with --inject: replace the page body by the rendered styles")
	return cmd
}

func newBlocksCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "blocks",
		Short: "List the rule blocks of the stylesheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := build(opts)
			if err != nil {
				return err
			}
			for i, block := range st.RuleBlocks() {
				fmt.Fprintf(cmd.OutOrStdout(), "--- block %d ---\n%s\n", i+1, block)
			}
			return nil
		},
	}
}

func newTreeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the stylesheet as a tree of rules and declarations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := build(opts)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), domdbg.RulesTree(st))
			return nil
		},
	}
}

func newDotCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dot",
		Short: "Print the styled page as a GraphViz diagram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := build(opts)
			if err != nil {
				return err
			}
			root := dom.NodeAsW3C(st.Document().Body())
			return domdbg.ToGraphViz(root, cmd.OutOrStdout(), st)
		},
	}
}

// page writes a document as HTML.
type page struct {
	doc *dom.Document
}

func (p page) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := p.doc.Render(cw)
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(b []byte) (int, error) {
	n, err := cw.w.Write(b)
	cw.n += int64(n)
	return n, err
}
