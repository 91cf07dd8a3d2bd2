package ufo

import (
	"sort"

	"github.com/glyphworks/strata/core"
)

// DefaultLayerName is the name RoboFont-style tools use for the default
// (foreground) glyph layer. UFO 3 stores it as "public.default".
const DefaultLayerName = "foreground"

// Pair is a kerning pair. Either side may be a glyph name or a kerning
// group name ("public.kern1."/"public.kern2." or legacy "@"-prefixed).
type Pair struct {
	Left, Right string
}

// Info carries the subset of fontinfo.plist that the production tools
// read and adjust. Unknown keys survive a round-trip in rest.
type Info struct {
	FamilyName string
	StyleName  string
	UnitsPerEm int
	Ascender   int
	Descender  int
	CapHeight  int
	XHeight    int

	rest map[string]interface{}
}

// Font is an in-memory UFO package.
type Font struct {
	Path    string // package directory, empty for fonts built in memory
	Info    Info
	Lib     map[string]interface{}
	Groups  map[string][]string
	Kerning map[Pair]int

	layers []*Layer
}

// Layer is a named set of glyphs.
type Layer struct {
	Name    string
	dirName string
	glyphs  map[string]*Glyph
	font    *Font
}

// NewFont creates an empty font with a default layer and 1000 units per em.
func NewFont(family, style string) *Font {
	f := &Font{
		Info: Info{
			FamilyName: family,
			StyleName:  style,
			UnitsPerEm: 1000,
			Ascender:   800,
			Descender:  -200,
		},
		Lib:     make(map[string]interface{}),
		Groups:  make(map[string][]string),
		Kerning: make(map[Pair]int),
	}
	f.layers = []*Layer{newLayer(f, DefaultLayerName, "glyphs")}
	return f
}

func newLayer(f *Font, name, dirName string) *Layer {
	return &Layer{
		Name:    name,
		dirName: dirName,
		glyphs:  make(map[string]*Glyph),
		font:    f,
	}
}

// Default returns the foreground layer.
func (f *Font) Default() *Layer {
	return f.layers[0]
}

// Layer returns the layer with the given name, or nil. The default layer
// answers to both "foreground" and "public.default".
func (f *Font) Layer(name string) *Layer {
	if name == "public.default" {
		return f.layers[0]
	}
	for _, l := range f.layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// Layers returns the layer list, default layer first.
func (f *Font) Layers() []*Layer {
	return f.layers
}

// LayerOrder returns the names of all layers except the default one,
// mirroring the layer list a font editor shows next to the foreground.
func (f *Font) LayerOrder() []string {
	names := make([]string, 0, len(f.layers)-1)
	for _, l := range f.layers[1:] {
		names = append(names, l.Name)
	}
	return names
}

// NewLayer adds an empty layer. Adding a layer that already exists
// returns the existing one.
func (f *Font) NewLayer(name string) *Layer {
	if l := f.Layer(name); l != nil {
		return l
	}
	l := newLayer(f, name, "glyphs."+name)
	f.layers = append(f.layers, l)
	return l
}

// RemoveLayer drops a non-default layer. Removing the default layer or
// an unknown layer is a no-op.
func (f *Font) RemoveLayer(name string) {
	for i, l := range f.layers[1:] {
		if l.Name == name {
			f.layers = append(f.layers[:i+1], f.layers[i+2:]...)
			return
		}
	}
}

// Glyph returns the named glyph from the default layer, or nil.
func (f *Font) Glyph(name string) *Glyph {
	return f.layers[0].Glyph(name)
}

// Has reports whether the default layer contains a glyph with this name.
func (f *Font) Has(name string) bool {
	return f.layers[0].Has(name)
}

// NewGlyph creates an empty glyph in the default layer, replacing any
// existing glyph of that name.
func (f *Font) NewGlyph(name string) *Glyph {
	return f.layers[0].NewGlyph(name)
}

// RemoveGlyph drops a glyph from every layer.
func (f *Font) RemoveGlyph(name string) {
	for _, l := range f.layers {
		delete(l.glyphs, name)
	}
}

// GlyphOrder returns the font's glyph order: the public.glyphOrder lib
// entry where present, otherwise the default layer's names sorted.
func (f *Font) GlyphOrder() []string {
	if order, ok := f.Lib["public.glyphOrder"]; ok {
		switch names := order.(type) {
		case []string:
			return names
		case []interface{}:
			sorted := make([]string, 0, len(names))
			for _, n := range names {
				if s, ok := n.(string); ok {
					sorted = append(sorted, s)
				}
			}
			return sorted
		}
	}
	names := make([]string, 0, len(f.layers[0].glyphs))
	for name := range f.layers[0].glyphs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetGlyphOrder stores a glyph order in the font lib.
func (f *Font) SetGlyphOrder(names []string) {
	f.Lib["public.glyphOrder"] = names
}

// CharacterMapping returns a map of code points to the names of glyphs
// carrying them. The first glyph in glyph order wins; doubly mapped code
// points are ignored.
func (f *Font) CharacterMapping() map[rune]string {
	cmap := make(map[rune]string)
	for _, name := range f.GlyphOrder() {
		g := f.Glyph(name)
		if g == nil {
			continue
		}
		for _, u := range g.Unicodes {
			if _, ok := cmap[u]; !ok {
				cmap[u] = name
			}
		}
	}
	return cmap
}

// Copy makes a deep copy of the font, layers and glyphs included.
func (f *Font) Copy() *Font {
	c := &Font{
		Path:    f.Path,
		Info:    f.Info,
		Lib:     make(map[string]interface{}, len(f.Lib)),
		Groups:  make(map[string][]string, len(f.Groups)),
		Kerning: make(map[Pair]int, len(f.Kerning)),
	}
	if f.Info.rest != nil {
		c.Info.rest = make(map[string]interface{}, len(f.Info.rest))
		for k, v := range f.Info.rest {
			c.Info.rest[k] = v
		}
	}
	for k, v := range f.Lib {
		c.Lib[k] = v
	}
	for name, glyphs := range f.Groups {
		c.Groups[name] = append([]string(nil), glyphs...)
	}
	for pair, value := range f.Kerning {
		c.Kerning[pair] = value
	}
	c.layers = make([]*Layer, len(f.layers))
	for i, l := range f.layers {
		cl := newLayer(c, l.Name, l.dirName)
		for name, g := range l.glyphs {
			cg := g.Copy()
			cg.layer = cl
			cl.glyphs[name] = cg
		}
		c.layers[i] = cl
	}
	return c
}

// --- Layer accessors -------------------------------------------------------

// Glyph returns the named glyph, or nil.
func (l *Layer) Glyph(name string) *Glyph {
	return l.glyphs[name]
}

// Has reports whether the layer contains a glyph with this name.
func (l *Layer) Has(name string) bool {
	_, ok := l.glyphs[name]
	return ok
}

// Len returns the number of glyphs in the layer.
func (l *Layer) Len() int {
	return len(l.glyphs)
}

// Names returns the glyph names in the layer, sorted.
func (l *Layer) Names() []string {
	names := make([]string, 0, len(l.glyphs))
	for name := range l.glyphs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Font returns the font the layer belongs to.
func (l *Layer) Font() *Font {
	return l.font
}

// NewGlyph creates an empty glyph, replacing any existing glyph of that
// name.
func (l *Layer) NewGlyph(name string) *Glyph {
	g := &Glyph{Name: name, layer: l}
	l.glyphs[name] = g
	return g
}

// Insert puts a glyph into the layer under g.Name, adopting it.
func (l *Layer) Insert(g *Glyph) {
	g.layer = l
	l.glyphs[g.Name] = g
}

// Remove drops a glyph from the layer.
func (l *Layer) Remove(name string) {
	delete(l.glyphs, name)
}

// rename moves a glyph to a new name within the layer.
func (l *Layer) rename(from, to string) error {
	g, ok := l.glyphs[from]
	if !ok {
		return core.Error(core.EMISSING, "no glyph %q in layer %q", from, l.Name)
	}
	delete(l.glyphs, from)
	g.Name = to
	l.glyphs[to] = g
	return nil
}
