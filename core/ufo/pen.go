package ufo

// Pen is the contour-construction interface the production tools draw
// with, e.g. for temporary sidebearing boxes and metrics rectangles.
type Pen interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64)
	QCurveTo(cpx, cpy, x, y float64)
	ClosePath()
}

// glyphPen appends drawn contours to a glyph.
type glyphPen struct {
	glyph   *Glyph
	current *Contour
}

// GetPen returns a pen that draws into the glyph.
func (g *Glyph) GetPen() Pen {
	return &glyphPen{glyph: g}
}

func (p *glyphPen) MoveTo(x, y float64) {
	p.flush()
	p.current = &Contour{Points: []Point{{X: x, Y: y, Type: Move}}}
}

func (p *glyphPen) LineTo(x, y float64) {
	if p.current == nil {
		p.MoveTo(x, y)
		return
	}
	p.current.Points = append(p.current.Points, Point{X: x, Y: y, Type: Line})
}

func (p *glyphPen) CurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	if p.current == nil {
		p.MoveTo(x, y)
		return
	}
	p.current.Points = append(p.current.Points,
		Point{X: cp1x, Y: cp1y},
		Point{X: cp2x, Y: cp2y},
		Point{X: x, Y: y, Type: Curve})
}

func (p *glyphPen) QCurveTo(cpx, cpy, x, y float64) {
	if p.current == nil {
		p.MoveTo(x, y)
		return
	}
	p.current.Points = append(p.current.Points,
		Point{X: cpx, Y: cpy},
		Point{X: x, Y: y, Type: QCurve})
}

// ClosePath closes the current contour. The initial move point becomes a
// line point, as closed GLIF contours carry no move.
func (p *glyphPen) ClosePath() {
	if p.current == nil {
		return
	}
	if len(p.current.Points) > 0 && p.current.Points[0].Type == Move {
		p.current.Points[0].Type = Line
	}
	p.glyph.Contours = append(p.glyph.Contours, p.current)
	p.current = nil
}

// flush ends an open (unclosed) contour, keeping its move point.
func (p *glyphPen) flush() {
	if p.current != nil {
		p.glyph.Contours = append(p.glyph.Contours, p.current)
		p.current = nil
	}
}

// DrawRect draws a closed rectangle, the way the scripts drew
// sidebearing boxes: up the left edge, across the top, down the right.
func DrawRect(pen Pen, left, bottom, right, top float64) {
	pen.MoveTo(left, bottom)
	pen.LineTo(left, top)
	pen.LineTo(right, top)
	pen.LineTo(right, bottom)
	pen.ClosePath()
}
