package ufo

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

const glifA = `<?xml version="1.0" encoding="UTF-8"?>
<glyph name="A" format="2">
  <advance width="600"/>
  <unicode hex="0041"/>
  <outline>
    <component base="acute" xOffset="120" yOffset="340"/>
    <contour>
      <point x="0" y="0" type="line"/>
      <point x="0" y="700" type="line"/>
      <point x="600" y="700" type="line"/>
      <point x="600" y="0" type="line"/>
    </contour>
  </outline>
  <anchor x="300" y="700" name="top"/>
</glyph>
`

func TestParseGlif(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.ufo")
	defer teardown()
	//
	g, err := ParseGlif([]byte(glifA))
	require.NoError(t, err)
	require.Equal(t, "A", g.Name)
	require.Equal(t, 600.0, g.Width)
	require.Equal(t, []rune{'A'}, g.Unicodes)
	require.Len(t, g.Contours, 1)
	require.Len(t, g.Contours[0].Points, 4)
	require.Len(t, g.Components, 1)
	require.Equal(t, "acute", g.Components[0].Base)
	require.Equal(t, 120.0, g.Components[0].XOffset)
	require.Equal(t, 1.0, g.Components[0].XScale, "component without scale attrs is identity")
	require.Len(t, g.Anchors, 1)
	require.Equal(t, "top", g.Anchors[0].Name)
}

func TestGlifRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.ufo")
	defer teardown()
	//
	g, err := ParseGlif([]byte(glifA))
	require.NoError(t, err)
	data, err := WriteGlif(g)
	require.NoError(t, err)
	g2, err := ParseGlif(data)
	require.NoError(t, err)
	require.Equal(t, g.Name, g2.Name)
	require.Equal(t, g.Width, g2.Width)
	require.Equal(t, g.Unicodes, g2.Unicodes)
	require.Equal(t, g.Contours, g2.Contours)
	require.Equal(t, g.Components, g2.Components)
}

func TestParseGlifBadUnicode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.ufo")
	defer teardown()
	//
	_, err := ParseGlif([]byte(`<glyph name="x" format="2"><unicode hex="zz"/></glyph>`))
	require.Error(t, err)
}

func TestWriteGlifMarkColor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.ufo")
	defer teardown()
	//
	g := &Glyph{Name: "uniE101", Width: 500, Mark: &Color{R: 1, A: 1}}
	data, err := WriteGlif(g)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), "public.markColor"))
	g2, err := ParseGlif(data)
	require.NoError(t, err)
	require.NotNil(t, g2.Mark)
	require.Equal(t, 1.0, g2.Mark.R)
	require.Equal(t, 0.0, g2.Mark.G)
}

func TestGlifFileName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.ufo")
	defer teardown()
	//
	cases := map[string]string{
		"a":        "a.glif",
		"A":        "A_.glif",
		"Aacute":   "A_acute.glif",
		".notdef":  "_notdef.glif",
		"A.salt_v": "A_.salt_v.glif",
		"T_h":      "T__h.glif",
	}
	for in, want := range cases {
		if got := glifFileName(in); got != want {
			t.Errorf("glifFileName(%q) = %q, want %q", in, got, want)
		}
	}
}
