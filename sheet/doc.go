/*
Package sheet lets clients define CSS rules programmatically and export
them as a static stylesheet.

Overview

During development, styling rules are defined in code, right next to the
code creating the elements and class names they are meant for:

    doc := dom.NewDocument()
    st, err := sheet.New(doc)
    if err != nil {
        …                          // no document to render into
    }
    st.AddRule("div a", "padding: 0; color: green;")
    st.AddRule("div a", "color: red")   // merges, color is now red

Every change re-renders the complete stylesheet into a <style> element in
the <head> of the document. When styling is done, the stylesheet may be
written to a file for production (Store.WriteTo) or offered as a download
link in the document (Store.Download).

Why

Sharing names between code and stylesheets is easier if both live in the
same place. Moreover, a stylesheet generated by code does not suffer from
rules declared several times or properties declared several times within a
rule.

Style text passed to AddRule is not parsed as CSS. It is split into
declarations at ';' and into property and value at ':', and incomplete
declarations are silently dropped. Selectors are not validated.

A Store is not safe for concurrent use.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sheet

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stylesheet.sheet'.
func tracer() tracing.Trace {
	return tracing.Select("stylesheet.sheet")
}
