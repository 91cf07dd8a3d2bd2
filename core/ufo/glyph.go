package ufo

import (
	"github.com/glyphworks/strata/core"
)

// PointType classifies a contour point.
type PointType int

// Point types as defined by the GLIF format. OffCurve points carry no
// type attribute on disk.
const (
	OffCurve PointType = iota
	Move
	Line
	Curve
	QCurve
)

func (pt PointType) String() string {
	switch pt {
	case Move:
		return "move"
	case Line:
		return "line"
	case Curve:
		return "curve"
	case QCurve:
		return "qcurve"
	}
	return "offcurve"
}

// Point is a contour point in font units.
type Point struct {
	X, Y   float64
	Type   PointType
	Smooth bool
	Name   string
}

// Contour is a closed sequence of points.
type Contour struct {
	Points []Point
}

// Component is a reference to another glyph, placed with an affine
// transformation. The zero transformation is the identity.
type Component struct {
	Base             string
	XScale, XYScale  float64
	YXScale, YScale  float64
	XOffset, YOffset float64
}

// NewComponent returns an identity-transform reference to base at the
// given offset.
func NewComponent(base string, dx, dy float64) *Component {
	return &Component{Base: base, XScale: 1, YScale: 1, XOffset: dx, YOffset: dy}
}

// Anchor is a named attachment point.
type Anchor struct {
	X, Y float64
	Name string
}

// Color is a mark color in the 0..1 range per channel.
type Color struct {
	R, G, B, A float64
}

// Glyph is a single glyph of a layer: advance, code points, outline and
// attachment data.
type Glyph struct {
	Name       string
	Width      float64
	Height     float64
	Unicodes   []rune
	Contours   []*Contour
	Components []*Component
	Anchors    []*Anchor
	Mark       *Color
	Lib        []byte // raw GLIF <lib> contents, preserved verbatim

	layer *Layer
}

// Layer returns the layer the glyph belongs to, nil for detached glyphs.
func (g *Glyph) Layer() *Layer {
	return g.layer
}

// Font returns the font the glyph belongs to, nil for detached glyphs.
func (g *Glyph) Font() *Font {
	if g.layer == nil {
		return nil
	}
	return g.layer.font
}

// Copy makes a deep, detached copy of the glyph.
func (g *Glyph) Copy() *Glyph {
	c := &Glyph{
		Name:     g.Name,
		Width:    g.Width,
		Height:   g.Height,
		Unicodes: append([]rune(nil), g.Unicodes...),
	}
	for _, contour := range g.Contours {
		c.Contours = append(c.Contours, &Contour{Points: append([]Point(nil), contour.Points...)})
	}
	for _, comp := range g.Components {
		cc := *comp
		c.Components = append(c.Components, &cc)
	}
	for _, a := range g.Anchors {
		ca := *a
		c.Anchors = append(c.Anchors, &ca)
	}
	if g.Mark != nil {
		m := *g.Mark
		c.Mark = &m
	}
	if g.Lib != nil {
		c.Lib = append([]byte(nil), g.Lib...)
	}
	return c
}

// Clear drops contours, components and anchors.
func (g *Glyph) Clear() {
	g.Contours = nil
	g.Components = nil
	g.Anchors = nil
}

// ClearContours drops the contours, leaving components alone.
func (g *Glyph) ClearContours() {
	g.Contours = nil
}

// AppendContour adds a copy of the contour to the glyph.
func (g *Glyph) AppendContour(c *Contour) {
	g.Contours = append(g.Contours, &Contour{Points: append([]Point(nil), c.Points...)})
}

// AppendComponent adds an identity-transform component reference.
func (g *Glyph) AppendComponent(base string, dx, dy float64) {
	g.Components = append(g.Components, NewComponent(base, dx, dy))
}

// RemoveComponent drops the first component referencing base.
func (g *Glyph) RemoveComponent(base string) {
	for i, comp := range g.Components {
		if comp.Base == base {
			g.Components = append(g.Components[:i], g.Components[i+1:]...)
			return
		}
	}
}

// AppendGlyph merges another glyph's contours and components into g,
// the way a font editor's appendGlyph does. The advance is untouched.
func (g *Glyph) AppendGlyph(other *Glyph) {
	for _, c := range other.Contours {
		g.AppendContour(c)
	}
	for _, comp := range other.Components {
		cc := *comp
		g.Components = append(g.Components, &cc)
	}
}

// Move shifts all contours, components and anchors by (dx, dy).
func (g *Glyph) Move(dx, dy float64) {
	for _, contour := range g.Contours {
		contour.Move(dx, dy)
	}
	for _, comp := range g.Components {
		comp.XOffset += dx
		comp.YOffset += dy
	}
	for _, a := range g.Anchors {
		a.X += dx
		a.Y += dy
	}
}

// Move shifts every point of the contour by (dx, dy).
func (c *Contour) Move(dx, dy float64) {
	for i := range c.Points {
		c.Points[i].X += dx
		c.Points[i].Y += dy
	}
}

// --- Decomposition ---------------------------------------------------------

// Decompose replaces all component references with the contours of their
// base glyphs, recursively. Base glyphs are resolved in the glyph's own
// layer; references to missing glyphs are dropped with a trace message.
func (g *Glyph) Decompose() error {
	if g.layer == nil {
		return core.Error(core.EINVALID, "cannot decompose detached glyph %q", g.Name)
	}
	comps := g.Components
	g.Components = nil
	for _, comp := range comps {
		if err := g.appendDecomposed(comp, 0); err != nil {
			return err
		}
	}
	return nil
}

// DecomposeBase decomposes only those components that reference base,
// leaving other component references intact.
func (g *Glyph) DecomposeBase(base string) error {
	if g.layer == nil {
		return core.Error(core.EINVALID, "cannot decompose detached glyph %q", g.Name)
	}
	comps := g.Components
	g.Components = nil
	for _, comp := range comps {
		if comp.Base != base {
			g.Components = append(g.Components, comp)
			continue
		}
		if err := g.appendDecomposed(comp, 0); err != nil {
			return err
		}
	}
	return nil
}

const maxComponentDepth = 32

func (g *Glyph) appendDecomposed(comp *Component, depth int) error {
	if depth > maxComponentDepth {
		return core.Error(core.EINVALID, "component cycle through glyph %q", comp.Base)
	}
	base := g.layer.Glyph(comp.Base)
	if base == nil {
		tracer().Infof("glyph %s references missing glyph %s, dropped", g.Name, comp.Base)
		return nil
	}
	for _, contour := range base.Contours {
		transformed := &Contour{Points: append([]Point(nil), contour.Points...)}
		transformed.transform(comp)
		g.Contours = append(g.Contours, transformed)
	}
	for _, nested := range base.Components {
		if err := g.appendDecomposed(nested.compose(comp), depth+1); err != nil {
			return err
		}
	}
	return nil
}

// transform applies a component's affine transformation to the contour.
func (c *Contour) transform(comp *Component) {
	xx, xy, yx, yy := comp.matrix()
	for i := range c.Points {
		x, y := c.Points[i].X, c.Points[i].Y
		c.Points[i].X = xx*x + yx*y + comp.XOffset
		c.Points[i].Y = xy*x + yy*y + comp.YOffset
	}
}

// matrix returns the 2x2 part, mapping the zero value to the identity.
func (comp *Component) matrix() (xx, xy, yx, yy float64) {
	xx, xy, yx, yy = comp.XScale, comp.XYScale, comp.YXScale, comp.YScale
	if xx == 0 && xy == 0 && yx == 0 && yy == 0 {
		xx, yy = 1, 1
	}
	return
}

// compose returns the component resulting from placing comp's base
// through outer (outer ∘ comp).
func (comp *Component) compose(outer *Component) *Component {
	axx, axy, ayx, ayy := outer.matrix()
	bxx, bxy, byx, byy := comp.matrix()
	return &Component{
		Base:    comp.Base,
		XScale:  axx*bxx + ayx*bxy,
		XYScale: axy*bxx + ayy*bxy,
		YXScale: axx*byx + ayx*byy,
		YScale:  axy*byx + ayy*byy,
		XOffset: axx*comp.XOffset + ayx*comp.YOffset + outer.XOffset,
		YOffset: axy*comp.XOffset + ayy*comp.YOffset + outer.YOffset,
	}
}
