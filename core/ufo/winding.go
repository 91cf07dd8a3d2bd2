package ufo

// Contour winding helpers. The production tools need two things from an
// outline: a consistent fill direction (outer contours counter-clockwise,
// holes clockwise, per the PostScript convention) and the ability to
// invert that scheme wholesale, so that contours stacked from different
// layers punch out of each other under nonzero filling.

// SignedArea returns twice the signed area of the contour's control
// polygon. Positive means counter-clockwise in y-up font coordinates.
func (c *Contour) SignedArea() float64 {
	var area float64
	n := len(c.Points)
	for i := 0; i < n; i++ {
		p := c.Points[i]
		q := c.Points[(i+1)%n]
		area += p.X*q.Y - q.X*p.Y
	}
	return area
}

// IsClockwise reports the winding of the contour.
func (c *Contour) IsClockwise() bool {
	return c.SignedArea() < 0
}

// Reverse flips the contour's direction in place. Segment types travel
// with their segments: a curve stays a curve with its off-curve points
// reversed, and each on-curve point keeps its own smooth flag.
func (c *Contour) Reverse() {
	n := len(c.Points)
	if n < 2 {
		return
	}
	c.normalizeStart()
	pts := c.Points
	if pts[0].Type == OffCurve {
		// TrueType all-off-curve contour, plain reversal is enough
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
		return
	}

	// split the cyclic point list into segments: seg k runs from anchor
	// a[k] over offs[k] to a[k+1 mod m] and has type types[k]; the
	// trailing off-curves together with a[0]'s type form the last segment
	anchors := []Point{pts[0]}
	var offs [][]Point
	var types []PointType
	var cur []Point
	for _, p := range pts[1:] {
		if p.Type == OffCurve {
			cur = append(cur, p)
			continue
		}
		offs = append(offs, cur)
		cur = nil
		types = append(types, p.Type)
		anchors = append(anchors, p)
	}
	offs = append(offs, cur)
	types = append(types, pts[0].Type)
	m := len(types)

	// walk the segments backwards, starting from a[0]
	out := make([]Point, 0, n)
	first := anchors[0]
	first.Type = types[0]
	out = append(out, first)
	for k := m - 1; k >= 1; k-- {
		for i := len(offs[k]) - 1; i >= 0; i-- {
			off := offs[k][i]
			out = append(out, off)
		}
		a := anchors[k]
		a.Type = types[k]
		out = append(out, a)
	}
	for i := len(offs[0]) - 1; i >= 0; i-- {
		out = append(out, offs[0][i])
	}
	c.Points = out
}

// normalizeStart rotates a closed contour so that it begins with an
// on-curve point. Closed GLIF contours may start anywhere, so this keeps
// the representation canonical. All-off-curve contours are left alone.
func (c *Contour) normalizeStart() {
	for i, p := range c.Points {
		if p.Type != OffCurve {
			if i > 0 {
				c.Points = append(c.Points[i:], c.Points[:i]...)
			}
			return
		}
	}
}

// depth reports how many of the other contours enclose c's first point.
func (c *Contour) depth(others []*Contour) int {
	if len(c.Points) == 0 {
		return 0
	}
	p := c.Points[0]
	d := 0
	for _, other := range others {
		if other == c {
			continue
		}
		if other.contains(p.X, p.Y) {
			d++
		}
	}
	return d
}

// contains tests point-in-polygon over the control polygon (even-odd ray
// cast).
func (c *Contour) contains(x, y float64) bool {
	inside := false
	n := len(c.Points)
	for i := 0; i < n; i++ {
		p := c.Points[i]
		q := c.Points[(i+1)%n]
		if (p.Y > y) != (q.Y > y) {
			xi := p.X + (y-p.Y)/(q.Y-p.Y)*(q.X-p.X)
			if x < xi {
				inside = !inside
			}
		}
	}
	return inside
}

// CorrectDirection normalizes contour windings: outer contours (even
// nesting depth) turn counter-clockwise and holes clockwise. With invert
// set, the scheme flips, which is what alternating composited layers use
// to knock out of one another.
func (g *Glyph) CorrectDirection(invert bool) {
	for _, contour := range g.Contours {
		outer := contour.depth(g.Contours)%2 == 0
		wantCCW := outer != invert
		if contour.IsClockwise() == wantCCW {
			contour.Reverse()
		}
	}
}

// NormalizeWinding is the overlap treatment applied before compositing:
// with every contour wound for nonzero filling, overlapping same-layer
// contours render as their union. A full boolean outline engine is out
// of scope here.
func (g *Glyph) NormalizeWinding() {
	g.CorrectDirection(false)
}
