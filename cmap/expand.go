package cmap

import (
	"fmt"

	"github.com/glyphworks/strata/core/ufo"
)

// ExpandDoubleEncodings splits glyphs carrying several code points. The
// glyph keeps its first code point; every further one gets a fresh
// uniXXXX glyph referencing the original as a component, with the same
// advance, marked red. Code points the character map already covers
// elsewhere are returned as overlaps and left alone.
func ExpandDoubleEncodings(f *ufo.Font) (created []string, overlaps []Assignment) {
	// coverage by first code points only: a glyph's own extra code
	// points are exactly the ones up for expansion
	covered := make(map[rune]string)
	for _, name := range f.Default().Names() {
		if u := f.Glyph(name).Unicodes; len(u) > 0 {
			covered[u[0]] = name
		}
	}
	for _, name := range f.Default().Names() {
		g := f.Glyph(name)
		if len(g.Unicodes) < 2 {
			continue
		}
		extra := g.Unicodes[1:]
		g.Unicodes = g.Unicodes[:1]
		for _, u := range extra {
			if owner, ok := covered[u]; ok {
				tracer().Infof("overlap: U+%04X already mapped to %s, kept on %s", u, owner, name)
				overlaps = append(overlaps, Assignment{Glyph: name, Code: u})
				continue
			}
			newName := fmt.Sprintf("uni%04X", u)
			ng := f.NewGlyph(newName)
			ng.AppendComponent(name, 0, 0)
			ng.Width = g.Width
			ng.Unicodes = []rune{u}
			ng.Mark = &ufo.Color{R: 1, A: 1} // red, flags generated glyphs for review
			covered[u] = newName
			created = append(created, newName)
			tracer().Debugf("expanded U+%04X off %s into %s", u, name, newName)
		}
	}
	return created, overlaps
}
