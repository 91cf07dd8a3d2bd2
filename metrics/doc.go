/*
Package metrics derives vertical-metrics data for vertical-setting fonts.

Vertical placement lives in a "metrics" glyph layer: a rectangle spanning
the area a glyph occupies when set top-to-bottom. From the deltas between
that rectangle and the glyph's outline box, the package emits OpenType
feature-syntax position statements (vpal), draws metrics layers, and
converts kerning to its vertical form.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package metrics

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'strata.metrics'
func tracer() tracing.Trace {
	return tracing.Select("strata.metrics")
}
