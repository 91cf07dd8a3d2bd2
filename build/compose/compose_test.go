package compose

import (
	"testing"

	"github.com/glyphworks/strata/core/ufo"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func layeredMaster() *ufo.Font {
	f := ufo.NewFont("Master", "Regular")
	a := f.NewGlyph("A")
	a.Width = 600
	ufo.DrawRect(a.GetPen(), 50, 0, 550, 700)

	comp := f.NewGlyph("Aacute")
	comp.Width = 600
	comp.AppendComponent("A", 0, 0)

	scrap := f.NewGlyph("A.scrap")
	scrap.Width = 600

	inline := f.NewLayer("inline")
	ia := inline.NewGlyph("A")
	ufo.DrawRect(ia.GetPen(), 100, 50, 500, 650)

	f.NewLayer("shade").NewGlyph("A")
	return f
}

func TestComposeSingleLayer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.build")
	defer teardown()
	//
	src := layeredMaster()
	f, err := Compose(src, Style{
		FamilyName: "Master Basic",
		StyleName:  "Hairline",
		Layers:     []string{"inline"},
	})
	require.NoError(t, err)
	require.Equal(t, "Master Basic", f.Info.FamilyName)
	require.Empty(t, f.LayerOrder(), "alternate layers must be dropped")
	require.False(t, f.Has("A.scrap"), "scrap glyphs must be dropped")

	a := f.Glyph("A")
	require.Len(t, a.Contours, 1)
	require.Equal(t, 100.0, a.BBox().XMin, "contours must come from the inline layer")
	require.False(t, a.Contours[0].IsClockwise(), "single layer is wound upright")
}

func TestComposeLeavesComponentsAlone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.build")
	defer teardown()
	//
	src := layeredMaster()
	f, err := Compose(src, Style{
		FamilyName: "Master Basic", StyleName: "Regular",
		Layers: []string{"foreground"},
	})
	require.NoError(t, err)
	aacute := f.Glyph("Aacute")
	require.Len(t, aacute.Components, 1)
	require.Equal(t, "A", aacute.Components[0].Base)
}

func TestComposeStackAlternatesWinding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.build")
	defer teardown()
	//
	src := layeredMaster()
	f, err := Compose(src, Style{
		FamilyName: "Master Basic", StyleName: "Inline",
		Layers: []string{"foreground", "inline"},
	})
	require.NoError(t, err)
	a := f.Glyph("A")
	require.Len(t, a.Contours, 2)
	require.False(t, a.Contours[0].IsClockwise(), "layer 0 upright")
	require.True(t, a.Contours[1].IsClockwise(), "layer 1 inverted, knocks out")
}

func TestComposeTracking(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.build")
	defer teardown()
	//
	src := layeredMaster()
	f, err := Compose(src, Style{
		FamilyName: "Master Basic", StyleName: "Shade",
		Layers:   []string{"foreground"},
		Tracking: 150,
	})
	require.NoError(t, err)
	a := f.Glyph("A")
	require.Equal(t, 750.0, a.Width)
	require.Equal(t, 125.0, a.BBox().XMin, "outline recentered by tracking/2")
}

func TestComposeMissingLayer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.build")
	defer teardown()
	//
	src := layeredMaster()
	_, err := Compose(src, Style{FamilyName: "X", StyleName: "Y", Layers: []string{"outline"}})
	require.Error(t, err)
}

func TestSwapLayerInPlace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.build")
	defer teardown()
	//
	f := layeredMaster()
	require.NoError(t, SwapLayer(f, []string{"A"}, []string{"inline"}))
	require.Equal(t, 100.0, f.Glyph("A").BBox().XMin)
	require.NotNil(t, f.Layer("inline"), "in-place swap keeps layers")
}

func TestSwapLayerStacksOntoForeground(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.build")
	defer teardown()
	//
	f := layeredMaster()
	require.NoError(t, SwapLayer(f, []string{"A"}, []string{"foreground", "inline"}))
	a := f.Glyph("A")
	require.Len(t, a.Contours, 2, "foreground contour must survive the swap")
	require.Equal(t, 50.0, a.BBox().XMin, "layer 0 is the old foreground drawing")
	require.True(t, a.Contours[1].IsClockwise(), "layer 1 knocks out")
}
