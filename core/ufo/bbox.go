package ufo

// BBox is a glyph bounding box in font units. Empty boxes (no outline)
// are reported through the Empty flag, mirroring a null box in the
// editor APIs these tools descend from.
type BBox struct {
	XMin, YMin float64
	XMax, YMax float64
	Empty      bool
}

// EmptyBBox returns the box of a glyph without outline.
func EmptyBBox() BBox {
	return BBox{Empty: true}
}

// Width returns XMax - XMin, 0 for empty boxes.
func (b BBox) Width() float64 {
	if b.Empty {
		return 0
	}
	return b.XMax - b.XMin
}

// Height returns YMax - YMin, 0 for empty boxes.
func (b BBox) Height() float64 {
	if b.Empty {
		return 0
	}
	return b.YMax - b.YMin
}

func (b BBox) extend(x, y float64) BBox {
	if b.Empty {
		return BBox{XMin: x, YMin: y, XMax: x, YMax: y}
	}
	if x < b.XMin {
		b.XMin = x
	}
	if x > b.XMax {
		b.XMax = x
	}
	if y < b.YMin {
		b.YMin = y
	}
	if y > b.YMax {
		b.YMax = y
	}
	return b
}

func (b BBox) union(other BBox) BBox {
	if other.Empty {
		return b
	}
	b = b.extend(other.XMin, other.YMin)
	return b.extend(other.XMax, other.YMax)
}

// BBox returns the control-point bounding box of the glyph, following
// component references through the glyph's layer.
func (g *Glyph) BBox() BBox {
	return g.bbox(0)
}

func (g *Glyph) bbox(depth int) BBox {
	box := EmptyBBox()
	for _, contour := range g.Contours {
		for _, p := range contour.Points {
			box = box.extend(p.X, p.Y)
		}
	}
	if depth > maxComponentDepth || g.layer == nil {
		return box
	}
	for _, comp := range g.Components {
		base := g.layer.Glyph(comp.Base)
		if base == nil {
			continue
		}
		box = box.union(transformBBox(base.bbox(depth+1), comp))
	}
	return box
}

func transformBBox(box BBox, comp *Component) BBox {
	if box.Empty {
		return box
	}
	xx, xy, yx, yy := comp.matrix()
	out := EmptyBBox()
	for _, corner := range [4][2]float64{
		{box.XMin, box.YMin}, {box.XMin, box.YMax},
		{box.XMax, box.YMin}, {box.XMax, box.YMax},
	} {
		x := xx*corner[0] + yx*corner[1] + comp.XOffset
		y := xy*corner[0] + yy*corner[1] + comp.YOffset
		out = out.extend(x, y)
	}
	return out
}

// --- Margins ---------------------------------------------------------------

// LeftMargin returns the distance from x=0 to the left edge of the
// outline, 0 for empty glyphs.
func (g *Glyph) LeftMargin() float64 {
	box := g.BBox()
	if box.Empty {
		return 0
	}
	return box.XMin
}

// RightMargin returns the distance from the right edge of the outline to
// the advance width, 0 for empty glyphs.
func (g *Glyph) RightMargin() float64 {
	box := g.BBox()
	if box.Empty {
		return 0
	}
	return g.Width - box.XMax
}

// SetLeftMargin shifts the outline so that the left margin becomes m and
// adjusts the advance to keep the right margin. No-op for empty glyphs.
func (g *Glyph) SetLeftMargin(m float64) {
	box := g.BBox()
	if box.Empty {
		return
	}
	delta := m - box.XMin
	g.Move(delta, 0)
	g.Width += delta
}

// SetRightMargin resizes the advance so that the right margin becomes m.
// No-op for empty glyphs.
func (g *Glyph) SetRightMargin(m float64) {
	box := g.BBox()
	if box.Empty {
		return
	}
	g.Width = box.XMax + m
}
