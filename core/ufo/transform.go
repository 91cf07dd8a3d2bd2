package ufo

// Rotate90 rotates the glyph a quarter turn counter-clockwise about
// (cx, cy). Contour points, component placements and anchors are all
// rotated; component transformations pick up the rotation matrix.
func (g *Glyph) Rotate90(cx, cy float64) {
	for _, contour := range g.Contours {
		for i := range contour.Points {
			contour.Points[i].X, contour.Points[i].Y =
				rotate90(contour.Points[i].X, contour.Points[i].Y, cx, cy)
		}
	}
	for _, comp := range g.Components {
		xx, xy, yx, yy := comp.matrix()
		// left-multiply by the quarter-turn matrix [[0,-1],[1,0]]
		comp.XScale, comp.XYScale = -xy, xx
		comp.YXScale, comp.YScale = -yy, yx
		comp.XOffset, comp.YOffset = rotate90(comp.XOffset, comp.YOffset, cx, cy)
	}
	for _, a := range g.Anchors {
		a.X, a.Y = rotate90(a.X, a.Y, cx, cy)
	}
}

func rotate90(x, y, cx, cy float64) (float64, float64) {
	return cx - (y - cy), cy + (x - cx)
}
