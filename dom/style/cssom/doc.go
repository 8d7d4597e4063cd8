/*
Package cssom provides functionality for CSS styling.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
For our purposes, a stylesheet is an ordered list of qualified rules, each
consisting of a selector (the prelude) and a list of declarations.
Nested rules, media queries and other at-rules are out of scope.

Stylesheets are created in different ways: built rule by rule at runtime
(see package sheet), or parsed from CSS text found in a document (see
package douceuradapter). In order to mix the two, CSS handling is
de-coupled by introducing appropriate interfaces StyleSheet and Rule.
Concrete implementations may be found in other packages.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'stylesheet.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("stylesheet.cssom")
}
