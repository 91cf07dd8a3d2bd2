package ufo

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func rect(left, bottom, right, top float64) *Contour {
	g := &Glyph{}
	DrawRect(g.GetPen(), left, bottom, right, top)
	return g.Contours[0]
}

func TestSignedArea(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.ufo")
	defer teardown()
	//
	c := rect(0, 0, 100, 100)
	require.True(t, c.IsClockwise(), "DrawRect draws clockwise")
	c.Reverse()
	require.False(t, c.IsClockwise())
	require.Len(t, c.Points, 4)
}

func TestReverseKeepsSegments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.ufo")
	defer teardown()
	//
	// one curve segment and two lines
	c := &Contour{Points: []Point{
		{X: 0, Y: 0, Type: Line},
		{X: 30, Y: 100},
		{X: 70, Y: 100},
		{X: 100, Y: 0, Type: Curve},
		{X: 50, Y: -50, Type: Line},
	}}
	area := c.SignedArea()
	c.Reverse()
	require.InDelta(t, -area, c.SignedArea(), 0.001)
	curves := 0
	offs := 0
	for _, p := range c.Points {
		switch p.Type {
		case Curve:
			curves++
		case OffCurve:
			offs++
		}
	}
	require.Equal(t, 1, curves)
	require.Equal(t, 2, offs)
	require.Len(t, c.Points, 5)
}

func TestCorrectDirectionNestedContours(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.ufo")
	defer teardown()
	//
	g := &Glyph{}
	DrawRect(g.GetPen(), 0, 0, 400, 400)   // outer
	DrawRect(g.GetPen(), 100, 100, 300, 300) // hole
	g.CorrectDirection(false)
	require.False(t, g.Contours[0].IsClockwise(), "outer contour must be counter-clockwise")
	require.True(t, g.Contours[1].IsClockwise(), "hole must be clockwise")
	//
	g.CorrectDirection(true)
	require.True(t, g.Contours[0].IsClockwise())
	require.False(t, g.Contours[1].IsClockwise())
}

func TestRotate90(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.ufo")
	defer teardown()
	//
	g := &Glyph{Width: 1000}
	DrawRect(g.GetPen(), 100, 0, 900, 500)
	g.Rotate90(500, 250)
	box := g.BBox()
	require.Equal(t, 250.0, box.XMin)
	require.Equal(t, 750.0, box.XMax)
	require.Equal(t, -150.0, box.YMin)
	require.Equal(t, 650.0, box.YMax)
}
