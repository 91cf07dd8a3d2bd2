package metrics

import (
	"strings"
	"testing"

	"github.com/glyphworks/strata/core/ufo"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

// metricsFixture builds a drawing master with a metrics layer and the
// vertical font the adjustments are derived for.
func metricsFixture() (f, src *ufo.Font) {
	src = ufo.NewFont("Master", "Regular")
	src.Info.Ascender = 800
	a := src.NewGlyph("A")
	a.Width = 600
	m := src.NewLayer(MetricsLayerName).NewGlyph("A")
	// metrics box 1200 units tall, top at 750
	ufo.DrawRect(m.GetPen(), 0, -450, 600, 750)
	src.NewGlyph("space").Width = 500 // no metrics drawing

	f = ufo.NewFont("Master Vertical", "Regular")
	f.Info.Ascender = 800
	fa := f.NewGlyph("A")
	fa.Width = 600
	fa.Unicodes = []rune{'A'}
	ufo.DrawRect(fa.GetPen(), 50, 0, 550, 700) // outline top at 700
	f.NewGlyph("space").Width = 500
	f.SetGlyphOrder([]string{"A", "space"})
	return f, src
}

func TestDeriveAdjustments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.metrics")
	defer teardown()
	//
	f, src := metricsFixture()
	adjustments := Derive(f, src)
	require.Len(t, adjustments, 1, "glyphs without metrics box are skipped")
	adj := adjustments[0]
	require.Equal(t, "A", adj.Glyph)
	// yadvance = 1200 - 1000
	require.Equal(t, 200, adj.YAdvance)
	// topMargin = 800-750 = 50, topSidebearing = 750-700 = 50
	require.Equal(t, 0, adj.YPlacement)
	require.Equal(t, 50.0, adj.TopMargin)
	require.Equal(t, 50.0, adj.TopSidebearing)
}

func TestDeriveEmptyOutlineZeroesMargins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.metrics")
	defer teardown()
	//
	f, src := metricsFixture()
	f.Glyph("A").ClearContours()
	adjustments := Derive(f, src)
	require.Len(t, adjustments, 1)
	require.Equal(t, 0, adjustments[0].YPlacement)
	require.Equal(t, 0.0, adjustments[0].TopMargin)
}

func TestEmitVpal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.metrics")
	defer teardown()
	//
	f, src := metricsFixture()
	var buf strings.Builder
	require.NoError(t, EmitVpal(&buf, Derive(f, src)))
	want := "feature vpal {\n" +
		"\tpos A <0 0 0 200>; # 50 50\n" +
		"} vpal;\n"
	require.Equal(t, want, buf.String())
}

func TestDeriveWithoutMetricsLayer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.metrics")
	defer teardown()
	//
	f, _ := metricsFixture()
	bare := ufo.NewFont("Bare", "Regular")
	require.Empty(t, Derive(f, bare))
}
