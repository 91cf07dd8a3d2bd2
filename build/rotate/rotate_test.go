package rotate

import (
	"testing"

	"github.com/glyphworks/strata/core/ufo"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func rotationMaster() *ufo.Font {
	f := ufo.NewFont("Master", "Regular")
	f.Info.Ascender = 800
	f.Info.Descender = -200

	i := f.NewGlyph("I")
	i.Width = 500
	ufo.DrawRect(i.GetPen(), 100, 0, 400, 700)

	iacute := f.NewGlyph("Iacute")
	iacute.Width = 500
	iacute.AppendComponent("I", 0, 0)
	return f
}

func TestRotateGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.build")
	defer teardown()
	//
	f := rotationMaster()
	g := f.Glyph("I")
	require.NoError(t, Glyph(g, f.Info.Ascender, f.Info.Descender))
	require.Len(t, g.Contours, 1, "sidebearing box must be removed again")

	// advance box [0,500]x[-200,800] rotated about (250,300):
	// old outline 100..400 x 0..700 lands at -150..550 x 150..450
	box := g.BBox()
	require.Equal(t, -150.0, box.XMin)
	require.Equal(t, 550.0, box.XMax)
	require.Equal(t, 150.0, box.YMin)
	require.Equal(t, 450.0, box.YMax)
	require.Equal(t, 500.0, g.Width, "advance survives the quarter turn")
}

func TestRotateFontDecomposesComposites(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.build")
	defer teardown()
	//
	f := rotationMaster()
	require.NoError(t, Font(f))
	iacute := f.Glyph("Iacute")
	require.Empty(t, iacute.Components)
	require.Len(t, iacute.Contours, 1)
}
