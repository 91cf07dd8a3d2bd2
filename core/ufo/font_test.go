package ufo

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

// testFont builds a small font: a square 'A', a composite 'Aacute', and
// an inline layer variant of 'A'.
func testFont() *Font {
	f := NewFont("Test", "Regular")
	a := f.NewGlyph("A")
	a.Width = 600
	a.Unicodes = []rune{'A'}
	DrawRect(a.GetPen(), 50, 0, 550, 700)

	acute := f.NewGlyph("acute")
	acute.Width = 300
	DrawRect(acute.GetPen(), 100, 720, 200, 800)

	aacute := f.NewGlyph("Aacute")
	aacute.Width = 600
	aacute.Unicodes = []rune{0xC1}
	aacute.AppendComponent("A", 0, 0)
	aacute.AppendComponent("acute", 150, 0)

	inline := f.NewLayer("inline")
	ia := inline.NewGlyph("A")
	ia.Width = 600
	DrawRect(ia.GetPen(), 100, 50, 500, 650)

	f.Groups["public.kern1.A"] = []string{"A", "Aacute"}
	f.Kerning[Pair{"public.kern1.A", "V"}] = -80
	f.Kerning[Pair{"A", "T"}] = -60
	return f
}

func TestGlyphBBox(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.ufo")
	defer teardown()
	//
	f := testFont()
	box := f.Glyph("A").BBox()
	require.False(t, box.Empty)
	require.Equal(t, 50.0, box.XMin)
	require.Equal(t, 700.0, box.YMax)
	require.Equal(t, 700.0, box.Height())
}

func TestCompositeBBoxFollowsComponents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.ufo")
	defer teardown()
	//
	f := testFont()
	box := f.Glyph("Aacute").BBox()
	require.False(t, box.Empty)
	require.Equal(t, 800.0, box.YMax, "accent at 720..800 shifted by 0 must extend the box")
	require.Equal(t, 50.0, box.XMin)
}

func TestEmptyGlyphMargins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.ufo")
	defer teardown()
	//
	f := testFont()
	g := f.NewGlyph("space")
	g.Width = 500
	require.True(t, g.BBox().Empty)
	require.Equal(t, 0.0, g.LeftMargin())
	g.SetRightMargin(10) // no-op on empty glyphs
	require.Equal(t, 500.0, g.Width)
}

func TestDecompose(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.ufo")
	defer teardown()
	//
	f := testFont()
	g := f.Glyph("Aacute")
	require.NoError(t, g.Decompose())
	require.Empty(t, g.Components, spew.Sdump(g.Components))
	require.Len(t, g.Contours, 2)
	// the acute contour moved by its component offset
	acuteBox := g.Contours[1]
	minX := acuteBox.Points[0].X
	for _, p := range acuteBox.Points {
		if p.X < minX {
			minX = p.X
		}
	}
	require.Equal(t, 250.0, minX, "acute at 100 + offset 150")
}

func TestRenameGlyphAndReferences(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.ufo")
	defer teardown()
	//
	f := testFont()
	require.NoError(t, f.RenameGlyph("A", "A.old"))
	require.False(t, f.Has("A"))
	require.True(t, f.Has("A.old"))
	require.Equal(t, "A.old", f.Glyph("Aacute").Components[0].Base)
	require.Equal(t, []string{"A.old", "Aacute"}, f.Groups["public.kern1.A"])
	_, stillThere := f.Kerning[Pair{"A", "T"}]
	require.False(t, stillThere)
	require.Equal(t, -60, f.Kerning[Pair{"A.old", "T"}])
	// inline layer renamed too
	require.True(t, f.Layer("inline").Has("A.old"))
}

func TestRenameGroup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.ufo")
	defer teardown()
	//
	f := testFont()
	require.NoError(t, f.RenameGroup("public.kern1.A", "public.kern1.A_vkrn"))
	require.NotContains(t, f.Groups, "public.kern1.A")
	require.Equal(t, -80, f.Kerning[Pair{"public.kern1.A_vkrn", "V"}])
}

func TestFontCopyIsDeep(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.ufo")
	defer teardown()
	//
	f := testFont()
	c := f.Copy()
	c.Glyph("A").Move(10, 0)
	c.Kerning[Pair{"A", "T"}] = 0
	require.Equal(t, 50.0, f.Glyph("A").BBox().XMin, "copy must not share outlines")
	require.Equal(t, -60, f.Kerning[Pair{"A", "T"}])
	require.NotNil(t, c.Layer("inline"))
}

func TestCharacterMapping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.ufo")
	defer teardown()
	//
	f := testFont()
	cmap := f.CharacterMapping()
	require.Equal(t, "A", cmap['A'])
	require.Equal(t, "Aacute", cmap[0xC1])
}

func TestGlyphOrderFromLib(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.ufo")
	defer teardown()
	//
	f := testFont()
	require.Equal(t, []string{"A", "Aacute", "acute"}, f.GlyphOrder(), "sorted fallback")
	f.SetGlyphOrder([]string{"acute", "A", "Aacute"})
	require.Equal(t, []string{"acute", "A", "Aacute"}, f.GlyphOrder())
}
