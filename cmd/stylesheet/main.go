/*
Command stylesheet builds a stylesheet from a rule script and exports it as a
static CSS file.

A rule script is a TOML file:

    prefix = ".app "
    output = "styles.css"
    import = true            # merge <style> elements of the page first

    [[rule]]
    selector = "div a"
    style    = "padding: 0; color: green;"

    [[position]]
    select   = "#logo"       # CSS selector picking an element of the page
    style    = "margin: 0 auto;"
    siblings = true          # narrow down with :nth-child(…)

Rules are applied in the order rule-tables first, then position-tables.
Position-tables need an HTML page (flag --html) to pick elements from.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/cobra"
)

// tracer traces with key 'stylesheet.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("stylesheet.cmd")
}

// tracer keys of the packages of this module
var traceKeys = []string{
	"stylesheet.cmd",
	"stylesheet.sheet",
	"stylesheet.dom",
	"stylesheet.style",
	"stylesheet.cssom",
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	verbose bool
	script  string
	page    string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "stylesheet",
		Short:        "stylesheet builds CSS from rule scripts",
		Long:         `stylesheet applies the rules of a TOML rule script to an HTML page and exports the resulting stylesheet as a static CSS file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupTracing(opts.verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose tracing")
	root.PersistentFlags().StringVarP(&opts.script, "rules", "r", "", "rule script (TOML)")
	root.PersistentFlags().StringVarP(&opts.page, "html", "i", "", "HTML page to style (optional)")
	_ = root.MarkPersistentFlagRequired("rules")

	root.AddCommand(newBuildCmd(opts))
	root.AddCommand(newBlocksCmd(opts))
	root.AddCommand(newTreeCmd(opts))
	root.AddCommand(newDotCmd(opts))
	return root
}

// setupTracing routes tracing of all packages to a Go standard logger.
func setupTracing(verbose bool) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	level := "Info"
	if verbose {
		level = "Debug"
	}
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"tracelevel.root": level,
	}
	for _, key := range traceKeys {
		conf["tracelevel."+key] = level
	}
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
