/*
Package compose derives single-style fonts from a multi-layer master.

A layered master keeps inline, outline and shade drawings as alternate
glyph layers of one UFO. Compose flattens a selection of those layers
into the foreground of a standalone font copy, replacing contours while
leaving components untouched.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package compose

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'strata.build'
func tracer() tracing.Trace {
	return tracing.Select("strata.build")
}
