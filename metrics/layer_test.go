package metrics

import (
	"testing"

	"github.com/glyphworks/strata/core/ufo"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestDrawLayer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.metrics")
	defer teardown()
	//
	src := ufo.NewFont("Master", "Regular")
	a := src.NewGlyph("A")
	a.Width = 600
	ufo.DrawRect(a.GetPen(), 50, 0, 550, 700) // margins 50 left, 50 right
	src.NewGlyph("orphan").Width = 400

	dst := ufo.NewFont("Master Vertical", "Regular")
	av := dst.NewGlyph("A.v")
	av.Width = 1000
	ufo.DrawRect(av.GetPen(), 250, 100, 750, 600)

	missing := DrawLayer(src, dst)
	require.Equal(t, []string{"orphan.v"}, missing)

	layer := dst.Layer(MetricsLayerName)
	require.NotNil(t, layer)
	m := layer.Glyph("A.v")
	require.NotNil(t, m)
	box := m.BBox()
	require.Equal(t, 650.0, box.YMax, "outline top + left margin")
	require.Equal(t, 50.0, box.YMin, "outline bottom - right margin")
	require.Equal(t, 1000.0, box.XMax)
}

func TestAlignLayers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.metrics")
	defer teardown()
	//
	f := ufo.NewFont("Master", "Regular")
	g := f.NewGlyph("A")
	g.Width = 600
	ufo.DrawRect(g.GetPen(), 100, 0, 500, 700)
	inline := f.NewLayer("inline").NewGlyph("A")
	ufo.DrawRect(inline.GetPen(), 300, 100, 700, 800)

	require.NoError(t, AlignLayers(f, "A", "inline"))
	box := f.Layer("inline").Glyph("A").BBox()
	// top-left of the reference layer lands at the foreground's,
	// nudged by (-10, +10)
	require.Equal(t, 100.0-layerNudge, box.XMin)
	require.Equal(t, 700.0+layerNudge, box.YMax)
}

func TestAlignLayersMissingReference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.metrics")
	defer teardown()
	//
	f := ufo.NewFont("Master", "Regular")
	f.NewGlyph("A")
	require.Error(t, AlignLayers(f, "A", "inline"))
	require.Error(t, AlignLayers(f, "B", "inline"))
}

func TestConvertToVkrn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.metrics")
	defer teardown()
	//
	src := ufo.NewFont("Master", "Regular")
	src.NewGlyph("A")
	src.NewGlyph("T")
	src.Groups["public.kern1.A"] = []string{"A"}
	src.Kerning[ufo.Pair{Left: "public.kern1.A", Right: "T"}] = -60

	dst := ufo.NewFont("Master Vertical", "Regular")
	dst.NewGlyph("A.v")
	dst.Groups["public.kern2.round"] = []string{"O.v"}
	dst.Kerning[ufo.Pair{Left: "O.v", Right: "O.v"}] = -20

	require.NoError(t, ConvertToVkrn(src, dst))

	require.True(t, src.Has("A.v"), "glyph renamed to its vertical form")
	require.False(t, src.Has("A"))
	require.True(t, src.Has("T"), "no vertical form in dst, name kept")
	require.Contains(t, src.Groups, "public.kern1.A_vkrn")
	require.Equal(t, []string{"A.v"}, src.Groups["public.kern1.A_vkrn"])
	require.Equal(t, -60,
		src.Kerning[ufo.Pair{Left: "public.kern1.A_vkrn", Right: "T"}])

	pairs, ok := dst.Lib[VerticalKerningLibKey].([][]interface{})
	require.True(t, ok)
	require.Equal(t, [][]interface{}{{[]interface{}{"O.v", "O.v"}, -20}}, pairs)
	groups, ok := dst.Lib[VerticalGroupsLibKey].(map[string][]string)
	require.True(t, ok)
	require.Equal(t, []string{"O.v"}, groups["public.kern2.round"])
}
