package compose

import (
	"strings"

	"github.com/glyphworks/strata/core"
	"github.com/glyphworks/strata/core/ufo"
)

// Style describes one font to flatten out of a layered master.
type Style struct {
	FamilyName string
	StyleName  string
	// Layers are stacked in order: "foreground", a named alternate
	// layer, or the pseudo-layer "cameo".
	Layers []string
	// Tracking widens every advance and recenters the outline.
	Tracking float64
}

// The cameo pseudo-layer substitutes a filled disc behind every glyph.
const cameoLayer = "cameo"
const cameoGlyph = "uni2B24.salt"
const cameoShift = -140

// scrapMarker tags working glyphs that never ship.
const scrapMarker = "scrap"

// Compose flattens the style's layer stack into a standalone copy of
// src. Glyph components survive untouched; contours are replaced by the
// stacked layer contours, wound alternately so stacked layers knock out
// of each other.
func Compose(src *ufo.Font, style Style) (*ufo.Font, error) {
	tracer().Infof("composing %s %s from layers %v", style.FamilyName, style.StyleName, style.Layers)
	f := src.Copy()
	f.Info.FamilyName = style.FamilyName
	f.Info.StyleName = style.StyleName
	f.Path = ""
	for _, layerName := range f.LayerOrder() {
		f.RemoveLayer(layerName)
	}
	for _, name := range f.Default().Names() {
		if strings.Contains(name, scrapMarker) {
			f.RemoveGlyph(name)
			continue
		}
		g := f.Glyph(name)
		if err := composeGlyph(g, src, style); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// SwapLayer replaces the foreground contours of the named glyphs in
// place, keeping the font's layers. An empty name list means all glyphs.
func SwapLayer(f *ufo.Font, names []string, layers []string) error {
	if len(names) == 0 {
		names = f.Default().Names()
	}
	style := Style{Layers: layers}
	for _, name := range names {
		g := f.Glyph(name)
		if g == nil {
			return core.Error(core.EMISSING, "no glyph %q", name)
		}
		if err := composeGlyph(g, f, style); err != nil {
			return err
		}
	}
	return nil
}

func composeGlyph(g *ufo.Glyph, src *ufo.Font, style Style) error {
	// the stack may name the foreground itself; snapshot before clearing
	foreground := g.Copy()
	g.ClearContours()
	for i, layerName := range style.Layers {
		l, err := layerGlyph(src, foreground, layerName)
		if err != nil {
			return err
		}
		l.Move(style.Tracking/2, 0)
		// winding doubles as overlap treatment, alternating per layer
		l.CorrectDirection(i%2 == 1)
		for _, contour := range l.Contours {
			g.AppendContour(contour)
		}
	}
	g.Width += style.Tracking
	return nil
}

// layerGlyph resolves a layer name to a detached copy of the source
// drawing for the glyph. The foreground is served from the snapshot
// taken in composeGlyph, never from the font, which may already hold
// the cleared glyph.
func layerGlyph(src *ufo.Font, foreground *ufo.Glyph, layerName string) (*ufo.Glyph, error) {
	glyphName := foreground.Name
	switch layerName {
	case ufo.DefaultLayerName:
		return foreground.Copy(), nil
	case cameoLayer:
		g := src.Glyph(cameoGlyph)
		if g == nil {
			return nil, core.Error(core.EMISSING, "cameo glyph %q missing from source", cameoGlyph)
		}
		c := g.Copy()
		c.Move(cameoShift, 0)
		return c, nil
	default:
		layer := src.Layer(layerName)
		if layer == nil {
			return nil, core.Error(core.EMISSING, "source has no layer %q", layerName)
		}
		g := layer.Glyph(glyphName)
		if g == nil {
			// glyphs without a drawing on this layer compose empty
			tracer().Debugf("glyph %s has no %s drawing", glyphName, layerName)
			return &ufo.Glyph{Name: glyphName}, nil
		}
		return g.Copy(), nil
	}
}
