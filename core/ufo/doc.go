/*
Package ufo implements an object model and disk codec for Unified Font
Object (UFO) packages.

A UFO package is a directory of property lists and GLIF files describing
a font source: font info, groups, kerning, a lib dictionary, and one or
more glyph layers. This package owns the data model which the production
tools in build/, metrics/ and cmap/ operate on. It reads UFO 2 and UFO 3
packages and writes UFO 3.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package ufo

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'strata.ufo'
func tracer() tracing.Trace {
	return tracing.Select("strata.ufo")
}
