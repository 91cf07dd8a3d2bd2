/*
Package proof checks compiled OpenType binaries against their UFO sources.

A built font is parsed with x/image/font/sfnt and shaped top-to-bottom
through HarfBuzz. The report puts the shaper's vertical advances and
offsets next to the values the vertical-metrics derivation predicts, so
a bad feature build shows up as a column of mismatches.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package proof

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'strata.proof'
func tracer() tracing.Trace {
	return tracing.Select("strata.proof")
}
