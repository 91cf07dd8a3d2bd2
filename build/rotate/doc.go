/*
Package rotate turns glyphs a quarter turn for rotated vertical setting.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package rotate

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'strata.build'
func tracer() tracing.Trace {
	return tracing.Select("strata.build")
}
