/*
Package dom provides the host document for stylesheets built at runtime.

Status

Early draft—API may change frequently. Please stay patient.

Overview

Rules of a stylesheet are rendered into a <style> element in the <head>
of an HTML document, and are derived from, displayed in, or offered for
download by elements of the document's <body>. Package dom wraps an HTML
parse tree (golang.org/x/net/html) and offers exactly these operations:
creating and appending elements, setting text content, walking up the
ancestor chain of an element, counting siblings, and querying elements by
CSS selectors (github.com/andybalholm/cascadia).

A Document is not safe for concurrent modification. Clients are expected to
operate on a document from a single goroutine, one call at a time.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'stylesheet.dom'
func tracer() tracing.Trace {
	return tracing.Select("stylesheet.dom")
}

// ErrHostUnavailable is flagged if an operation needs a document (or a part
// of it, like <head> or <body>) which is not present.
var ErrHostUnavailable = errors.New("host document unavailable")

// ErrDetachedElement is flagged if an element is not attached to the
// document root it is expected to live under.
var ErrDetachedElement = errors.New("element is not attached under document root")

// ErrNotAnElement is flagged if an operation expects an element node and is
// handed a text, comment or document node.
var ErrNotAnElement = errors.New("node is not an element")
