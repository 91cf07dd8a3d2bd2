package rotate

import (
	"github.com/glyphworks/strata/core/ufo"
)

// Font rotates every glyph of the font, on the foreground and on all
// alternate layers, 90 degrees counter-clockwise about the center of its
// advance box. Composites are decomposed first.
func Font(f *ufo.Font) error {
	for _, name := range f.Default().Names() {
		if err := f.Glyph(name).Decompose(); err != nil {
			return err
		}
	}
	for _, name := range f.Default().Names() {
		for _, layer := range f.Layers() {
			g := layer.Glyph(name)
			if g == nil {
				continue
			}
			if err := Glyph(g, f.Info.Ascender, f.Info.Descender); err != nil {
				return err
			}
		}
	}
	return nil
}

// Glyph rotates one glyph 90 degrees counter-clockwise about the center
// of its advance box, the box spanning the advance width horizontally
// and descender..ascender vertically.
//
// A temporary sidebearing box is drawn around the glyph before rotating
// so that the glyph's placement travels with its advance box; the box is
// removed afterwards. While the box is still present, the right margin
// is set equal to the left margin, which keeps the rotated form centered
// on its advance.
func Glyph(g *ufo.Glyph, ascender, descender int) error {
	asc, desc := float64(ascender), float64(descender)

	pen := g.GetPen()
	ufo.DrawRect(pen, 0, desc, g.Width, asc)

	cx := g.Width / 2
	cy := (asc-desc)/2 + desc
	g.Rotate90(cx, cy)
	g.SetRightMargin(g.LeftMargin())

	if n := len(g.Contours); n >= 1 {
		tracer().Debugf("%s: removing sidebearing box contour", g.Name)
		g.Contours = g.Contours[:n-1]
	}
	return nil
}
