package cmap

import (
	"strings"
	"testing"

	"github.com/glyphworks/strata/core/ufo"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestAssignPUA(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.cmap")
	defer teardown()
	//
	f := ufo.NewFont("Master", "Regular")
	f.NewGlyph("A").Unicodes = []rune{'A'}
	f.NewGlyph("A.salt")
	f.NewGlyph("A.v")
	f.NewGlyph(".notdef")
	stale := f.NewGlyph("old")
	stale.Unicodes = []rune{0xE100}
	f.SetGlyphOrder([]string{".notdef", "A", "A.salt", "A.v", "old"})

	assigned := AssignPUA(f, DefaultPUAStart, DefaultExceptions)
	require.Equal(t, []Assignment{
		{Glyph: "A.salt", Code: 0xE100},
		{Glyph: "A.v", Code: 0xE101},
		{Glyph: "old", Code: 0xE102},
	}, assigned)
	require.Empty(t, f.Glyph(".notdef").Unicodes)
	require.Equal(t, []rune{'A'}, f.Glyph("A").Unicodes)
}

func TestExpandDoubleEncodings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.cmap")
	defer teardown()
	//
	f := ufo.NewFont("Master", "Regular")
	f.NewGlyph("A").Unicodes = []rune{'A'}
	g := f.NewGlyph("space")
	g.Width = 500
	g.Unicodes = []rune{0x0020, 0x00A0}

	created, overlaps := ExpandDoubleEncodings(f)
	require.Equal(t, []rune{'A'}, f.Glyph("A").Unicodes)
	require.Equal(t, []string{"uni00A0"}, created)
	require.Empty(t, overlaps)
	require.Equal(t, []rune{0x0020}, g.Unicodes)
	ng := f.Glyph("uni00A0")
	require.NotNil(t, ng)
	require.Equal(t, 500.0, ng.Width)
	require.Equal(t, []rune{0x00A0}, ng.Unicodes)
	require.Len(t, ng.Components, 1)
	require.Equal(t, "space", ng.Components[0].Base)
	require.NotNil(t, ng.Mark)
	require.Equal(t, 1.0, ng.Mark.R)
}

func TestExpandDoubleEncodingsOverlap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.cmap")
	defer teardown()
	//
	f := ufo.NewFont("Master", "Regular")
	f.NewGlyph("hyphen").Unicodes = []rune{0x002D, 0x2010}
	f.NewGlyph("hyphentwo").Unicodes = []rune{0x2010}

	created, overlaps := ExpandDoubleEncodings(f)
	require.Empty(t, created)
	require.Equal(t, []Assignment{{Glyph: "hyphen", Code: 0x2010}}, overlaps)
	require.Equal(t, []rune{0x002D}, f.Glyph("hyphen").Unicodes)
}

func substFixture() *ufo.Font {
	f := ufo.NewFont("Master", "Regular")
	add := func(name string, code rune) {
		f.NewGlyph(name).Unicodes = []rune{code}
	}
	add("A", 'A')
	add("A.v", 0xE200)
	add("A.salt", 0xE201)
	add("A.salt_v", 0xE202)
	add("E", 'E')
	add("E.salt", 0xE203)
	add("IJ", 0x0132)
	add("IJ.stack", 0xE204)
	f.NewGlyph("B.v") // unencoded, skipped
	add("B", 'B')
	return f
}

func TestSubstitutionMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.cmap")
	defer teardown()
	//
	m := SubstitutionMap(substFixture(), DefaultRules)
	require.Equal(t, map[rune]rune{'A': 0xE200, 0xE201: 0xE202}, m["ss01"])
	require.Equal(t, map[rune]rune{'A': 0xE201}, m["ss02"])
	require.Equal(t, map[rune]rune{'E': 0xE203}, m["ss03"])
	require.Equal(t, map[rune]rune{0x0132: 0xE204}, m["ss08"])
	require.NotContains(t, m, "ss05")
}

func TestWriteJSONDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.cmap")
	defer teardown()
	//
	features := map[string]map[rune]rune{
		"ss02": {'A': 0xE201},
		"ss01": {0xE201: 0xE202, 'A': 0xE200},
	}
	var sb strings.Builder
	require.NoError(t, WriteJSON(&sb, features))
	want := `{"ss01": {"65": 57856, "57857": 57858}, "ss02": {"65": 57857}}`
	require.Equal(t, want, sb.String())
}
