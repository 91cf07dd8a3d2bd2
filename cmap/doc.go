/*
Package cmap maintains the character mapping of a font master.

Display faces carry many glyphs OpenType layout reaches only through
substitution: stylistic alternates, vertical forms, layer composites.
For plain-text environments these get Private Use Area code points, and
the substitution structure is exported as a code-point map for web use.
The package assigns PUA codes, expands glyphs carrying several code
points into component-referencing singletons, and derives stylistic-set
substitution maps from glyph-name suffixes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package cmap

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'strata.cmap'
func tracer() tracing.Trace {
	return tracing.Select("strata.cmap")
}
