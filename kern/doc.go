/*
Package kern propagates kerning and kerning groups between font masters.

Kerning is drawn once, on the drawing master, and copied onto every
build target. The copy replaces the target's kerning wholesale and
reports pairs that reference groups or glyphs the target does not carry.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package kern

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'strata.kern'
func tracer() tracing.Trace {
	return tracing.Select("strata.kern")
}
