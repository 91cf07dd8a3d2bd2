package proof

import (
	"bytes"
	"math"

	hbtt "github.com/benoitkugler/textlayout/fonts/truetype"
	hb "github.com/benoitkugler/textlayout/harfbuzz"
	"github.com/glyphworks/strata/core"
)

// ShapedGlyph is one glyph of a shaped run, positions in font units.
type ShapedGlyph struct {
	GID      uint32
	Cluster  int
	XAdvance int32
	YAdvance int32
	XOffset  int32
	YOffset  int32
}

// ShapeVertical shapes text top-to-bottom with the given OpenType
// features switched on.
func ShapeVertical(bin *Binary, text string, featureTags []string) ([]ShapedGlyph, error) {
	face, err := hbtt.Parse(bytes.NewReader(bin.Data), true)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "HarfBuzz cannot parse %s", bin.Name)
	}
	font := hb.NewFont(face)
	features := make([]hb.Feature, 0, len(featureTags))
	for _, tag := range featureTags {
		features = append(features, hb.Feature{
			Tag:   hbtt.MustNewTag(tag),
			Value: 1,
			Start: 0,
			End:   math.MaxInt32,
		})
	}
	buf := hb.NewBuffer()
	buf.Props.Direction = hb.TopToBottom
	runes := []rune(text)
	buf.AddRunes(runes, 0, len(runes))
	buf.Shape(font, features)

	glyphs := make([]ShapedGlyph, len(buf.Info))
	for i, info := range buf.Info {
		pos := &buf.Pos[i]
		glyphs[i] = ShapedGlyph{
			GID:      uint32(info.Glyph),
			Cluster:  info.Cluster,
			XAdvance: pos.XAdvance,
			YAdvance: pos.YAdvance,
			XOffset:  pos.XOffset,
			YOffset:  pos.YOffset,
		}
	}
	tracer().Debugf("shaped %d runes into %d glyphs", len(runes), len(glyphs))
	return glyphs, nil
}
