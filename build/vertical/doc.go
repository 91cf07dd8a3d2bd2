/*
Package vertical derives a vertical-setting font from a horizontal
master.

Vertical forms live in the master as glyphs carrying a "v" suffix
element ("A.v", "A.salt_v"). Derivation promotes each vertical form into
its horizontal slot, recenters advances on the em, and rebuilds the
lowercase as components of the uppercase forms.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package vertical

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'strata.build'
func tracer() tracing.Trace {
	return tracing.Select("strata.build")
}
