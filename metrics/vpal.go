package metrics

import (
	"fmt"
	"io"

	"github.com/glyphworks/strata/core/ufo"
)

// MetricsLayerName is the layer holding per-glyph vertical advance boxes.
const MetricsLayerName = "metrics"

// Adjustment is one glyph's vertical positioning record.
type Adjustment struct {
	Glyph      string
	YPlacement int
	YAdvance   int
	// intermediate values, kept for the emitted comment
	TopMargin      float64
	TopSidebearing float64
}

// Derive computes the vertical positioning adjustments for every glyph
// of f, in glyph order. The metrics layer is read from src, which holds
// the drawing master; glyphs without a metrics box yield no record.
func Derive(f *ufo.Font, src *ufo.Font) []Adjustment {
	upm := f.Info.UnitsPerEm
	if upm == 0 {
		upm = 1000
	}
	metricsLayer := src.Layer(MetricsLayerName)
	if metricsLayer == nil {
		tracer().Errorf("source font has no %q layer", MetricsLayerName)
		return nil
	}
	var adjustments []Adjustment
	for _, name := range f.GlyphOrder() {
		g := f.Glyph(name)
		if g == nil {
			continue
		}
		m := metricsLayer.Glyph(name)
		if m == nil {
			tracer().Debugf("glyph %s has no metrics drawing", name)
			continue
		}
		mbox := m.BBox()
		if mbox.Empty {
			continue
		}
		var topMargin, topSidebearing float64
		if gbox := g.BBox(); !gbox.Empty {
			topMargin = float64(f.Info.Ascender) - mbox.YMax
			topSidebearing = mbox.YMax - gbox.YMax
		}
		adjustments = append(adjustments, Adjustment{
			Glyph:          name,
			YPlacement:     int(topMargin - topSidebearing),
			YAdvance:       int(mbox.Height()) - upm,
			TopMargin:      topMargin,
			TopSidebearing: topSidebearing,
		})
	}
	tracer().Infof("derived %d vertical adjustments", len(adjustments))
	return adjustments
}

// EmitVpal writes the adjustments as an OpenType feature-syntax vpal
// block, one four-value position statement per glyph, ready to paste
// into a feature source.
func EmitVpal(w io.Writer, adjustments []Adjustment) error {
	if _, err := fmt.Fprintln(w, "feature vpal {"); err != nil {
		return err
	}
	for _, adj := range adjustments {
		_, err := fmt.Fprintf(w, "\tpos %s <%d %d %d %d>; # %g %g\n",
			adj.Glyph, 0, adj.YPlacement, 0, adj.YAdvance,
			adj.TopMargin, adj.TopSidebearing)
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "} vpal;")
	return err
}
