package metrics

import (
	"github.com/glyphworks/strata/build/vertical"
	"github.com/glyphworks/strata/core"
	"github.com/glyphworks/strata/core/ufo"
)

func missingGlyph(name string) error {
	return core.Error(core.EMISSING, "no glyph %q", name)
}

// DrawLayer rebuilds the metrics layer of the vertical font dst: for
// every glyph of the horizontal font src with a vertical counterpart in
// dst, the counterpart's metrics rectangle spans the vertical outline
// extended by the horizontal glyph's side margins (left margin above,
// right margin below). Missing counterparts are reported and skipped.
func DrawLayer(src *ufo.Font, dst *ufo.Font) []string {
	layer := dst.NewLayer(MetricsLayerName)
	var missing []string
	for _, name := range src.Default().Names() {
		g := src.Glyph(name)
		vname := vertical.VerticalName(name)
		vg := dst.Glyph(vname)
		if vg == nil {
			missing = append(missing, vname)
			continue
		}
		vbox := vg.BBox()
		if vbox.Empty {
			continue
		}
		top := vbox.YMax + g.LeftMargin()
		bottom := vbox.YMin - g.RightMargin()

		m := layer.NewGlyph(vname)
		m.Width = vg.Width
		ufo.DrawRect(m.GetPen(), 0, bottom, vg.Width, top)
		tracer().Debugf("metrics box for %s: %g..%g", vname, bottom, top)
	}
	if len(missing) > 0 {
		tracer().Infof("%d glyphs without vertical counterpart", len(missing))
	}
	return missing
}

// layerNudge is the fixed correction the realignment applies so that
// decorative layers sit offset from the foreground.
const layerNudge = 10

// AlignLayers shifts every non-foreground drawing of the glyph so that
// its reference layer lines up with the foreground, up to the fixed
// nudge: x by -10, y by +10 relative to the exact top-left alignment.
func AlignLayers(f *ufo.Font, glyphName, referenceLayer string) error {
	g := f.Glyph(glyphName)
	if g == nil {
		return missingGlyph(glyphName)
	}
	ref := f.Layer(referenceLayer)
	if ref == nil || ref.Glyph(glyphName) == nil {
		return missingGlyph(glyphName + "@" + referenceLayer)
	}
	gbox := g.BBox()
	rbox := ref.Glyph(glyphName).BBox()
	if gbox.Empty || rbox.Empty {
		return nil
	}
	xoffset := gbox.XMin - rbox.XMin - layerNudge
	yoffset := gbox.YMax - rbox.YMax + layerNudge
	tracer().Infof("aligning layers of %s by (%g, %g)", glyphName, xoffset, yoffset)
	for _, layer := range f.Layers()[1:] {
		if lg := layer.Glyph(glyphName); lg != nil {
			lg.Move(xoffset, yoffset)
		}
	}
	return nil
}
