package cmap

import "github.com/glyphworks/strata/core/ufo"

// DefaultPUAStart is the first Private Use Area code point handed out.
const DefaultPUAStart rune = 0xE100

// DefaultExceptions are glyphs that stay unencoded: control glyphs,
// ligatures reached through liga, combining marks used only as
// composition parts.
var DefaultExceptions = []string{
	".notdef",
	"nbspace",
	"Tcedilla",
	"tcedilla",
	"macroncmb",
	"commaaccentcmb",
	"fi",
	"fl",
	"one.sups",
	"two.sups",
	"three.sups",
	"four.sups",
	"acute.vert",
	"grave.vert",
	"brevehookabove",
	"circumflexacute",
	"circumflexhookabove",
	"breveacute",
	"circumflextilde",
	"brevegrave",
	"brevetilde",
	"circumflexgrave",
}

// Assignment records one glyph receiving a code point.
type Assignment struct {
	Glyph string
	Code  rune
}

// AssignPUA gives every unencoded glyph of f a consecutive Private Use
// Area code point, walking the glyph order from start. Glyphs encoded
// exactly at start are taken as leftovers of an earlier run and are
// cleared first. Exception glyphs keep their empty encoding.
func AssignPUA(f *ufo.Font, start rune, exceptions []string) []Assignment {
	skip := make(map[string]bool, len(exceptions))
	for _, name := range exceptions {
		skip[name] = true
	}
	for _, name := range f.Default().Names() {
		g := f.Glyph(name)
		if len(g.Unicodes) == 1 && g.Unicodes[0] == start {
			g.Unicodes = nil
		}
	}
	var assigned []Assignment
	code := start
	for _, name := range f.GlyphOrder() {
		g := f.Glyph(name)
		if g == nil || len(g.Unicodes) > 0 || skip[name] {
			continue
		}
		g.Unicodes = []rune{code}
		assigned = append(assigned, Assignment{Glyph: name, Code: code})
		tracer().Debugf("%s = U+%04X", name, code)
		code++
	}
	tracer().Infof("assigned %d private-use code points", len(assigned))
	return assigned
}
