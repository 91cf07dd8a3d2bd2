package proof

import (
	"os"

	"github.com/flopp/go-findfont"
	"github.com/glyphworks/strata/core"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Binary is a compiled OpenType font.
type Binary struct {
	Name     string
	Filepath string
	Data     []byte
	SFNT     *sfnt.Font
}

// Load reads an OpenType font from a file path. A bare font name is
// resolved through the system font directories.
func Load(pathOrName string) (*Binary, error) {
	path := pathOrName
	if _, err := os.Stat(path); err != nil {
		found, ferr := findfont.Find(pathOrName)
		if ferr != nil {
			return nil, core.WrapError(err, core.EMISSING, "font %q not found", pathOrName)
		}
		tracer().Infof("resolved %q to %s", pathOrName, found)
		path = found
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.WrapError(err, core.EIO, "cannot read font file %s", path)
	}
	bin, err := Parse(data)
	if err != nil {
		return nil, err
	}
	bin.Filepath = path
	return bin, nil
}

// Parse wraps raw OpenType data.
func Parse(data []byte) (*Binary, error) {
	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "not an OpenType font")
	}
	bin := &Binary{Data: data, SFNT: sf}
	bin.Name, _ = sf.Name(nil, sfnt.NameIDFull)
	return bin, nil
}

// UnitsPerEm returns the design grid size.
func (b *Binary) UnitsPerEm() int {
	return int(b.SFNT.UnitsPerEm())
}

// Box is a glyph bounding box in font units.
type Box struct {
	MinX, MinY, MaxX, MaxY int
	Advance                int
}

// GlyphBounds reads the outline box and horizontal advance of a glyph,
// unhinted, at the font's own design size.
func (b *Binary) GlyphBounds(gid uint16) (Box, error) {
	var buf sfnt.Buffer
	bounds, adv, err := b.SFNT.GlyphBounds(&buf, sfnt.GlyphIndex(gid),
		fixed.Int26_6(b.SFNT.UnitsPerEm()), font.HintingNone)
	if err != nil {
		return Box{}, core.WrapError(err, core.EMISSING, "no bounds for glyph %d", gid)
	}
	return Box{
		MinX:    int(bounds.Min.X),
		MinY:    int(bounds.Min.Y),
		MaxX:    int(bounds.Max.X),
		MaxY:    int(bounds.Max.Y),
		Advance: int(adv),
	}, nil
}
