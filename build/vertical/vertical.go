package vertical

import (
	"sort"
	"strings"
	"unicode"

	"github.com/glyphworks/strata/core"
	"github.com/glyphworks/strata/core/ufo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// irregular lowercase-to-uppercase glyph names
var titleExceptions = map[string]string{
	"oe":       "OE",
	"ae":       "AE",
	"dotlessi": "I",
	"ij":       "IJ",
}

const scrapMarker = "scrap"

// placeholder suffix for horizontal glyphs about to be displaced
const displaced = "_____"

// Derive builds a vertical-setting font from a horizontal master:
// every glyph with a "v"-suffixed counterpart is replaced by it, advances
// are recentered on the em, and lowercase letters become components of
// their uppercase forms.
func Derive(src *ufo.Font, familyName string) (*ufo.Font, error) {
	f := src.Copy()
	f.Info.FamilyName = familyName
	f.Path = ""

	replace := make(map[string]string) // vertical name -> horizontal name
	for _, name := range f.Default().Names() {
		if strings.Contains(name, scrapMarker) {
			f.RemoveGlyph(name)
			continue
		}
		vName := VerticalName(name)
		if name == HorizontalName(name) && f.Has(vName) {
			replace[vName] = name
		}
	}
	tracer().Infof("promoting %d vertical forms", len(replace))

	vNames := make([]string, 0, len(replace))
	for vName := range replace {
		vNames = append(vNames, vName)
	}
	sort.Strings(vNames)

	// break down the vertical forms' components first, so they no longer
	// reference glyphs about to be displaced
	for _, vName := range vNames {
		if err := breakdownComponents(f.Glyph(vName)); err != nil {
			return nil, err
		}
	}
	for _, vName := range vNames {
		hName := replace[vName]
		unicodes := append(append([]rune(nil), f.Glyph(vName).Unicodes...), f.Glyph(hName).Unicodes...)
		if err := f.RenameGlyph(hName, hName+displaced); err != nil {
			return nil, err
		}
		if err := f.RenameGlyph(vName, hName); err != nil {
			return nil, err
		}
		f.Glyph(hName).Unicodes = unicodes
	}
	for _, vName := range vNames {
		if err := f.RemoveGlyphDecompose(replace[vName] + displaced); err != nil {
			return nil, err
		}
	}

	recenterAdvances(f)
	if err := RebuildLowercase(f); err != nil {
		return nil, err
	}
	return f, nil
}

// recenterAdvances moves every glyph whose advance is neither a full nor
// a half em onto a centered full-em advance. Only contours move; the
// original sorts keep component placements.
func recenterAdvances(f *ufo.Font) {
	upm := float64(f.Info.UnitsPerEm)
	for _, name := range f.Default().Names() {
		g := f.Glyph(name)
		if g.Width == upm || g.Width == upm/2 {
			continue
		}
		shift := float64(int((upm - g.Width) / 2))
		for _, contour := range g.Contours {
			contour.Move(shift, 0)
		}
		g.Width = upm
	}
}

// RebuildLowercase clears each lowercase letter and rebuilds it as a
// single component referencing its uppercase form. Vertical fonts set
// lowercase input in caps.
func RebuildLowercase(f *ufo.Font) error {
	titler := cases.Title(language.Und)
	for _, name := range f.Default().Names() {
		if !isLowercaseName(name) {
			continue
		}
		upper, ok := titleExceptions[name]
		if !ok {
			upper = titler.String(name)
		}
		if upper == name || !f.Has(upper) {
			continue
		}
		g := f.Glyph(name)
		base := f.Glyph(upper)
		g.Clear()
		g.AppendComponent(upper, 0, 0)
		g.Width = base.Width
	}
	return nil
}

func isLowercaseName(name string) bool {
	if name == "" || strings.ContainsRune(name, '.') {
		return false
	}
	for _, r := range name {
		if !unicode.IsLower(r) {
			return false
		}
	}
	return true
}

// breakdownComponents flattens one level of component nesting: contours
// of the base glyphs are copied in, nested components re-referenced with
// combined offsets.
func breakdownComponents(g *ufo.Glyph) error {
	layer := g.Layer()
	if layer == nil {
		return core.Error(core.EINVALID, "cannot break down detached glyph %q", g.Name)
	}
	comps := g.Components
	g.Components = nil
	for _, comp := range comps {
		base := layer.Glyph(comp.Base)
		if base == nil {
			tracer().Infof("glyph %s references missing glyph %s, dropped", g.Name, comp.Base)
			continue
		}
		for _, contour := range base.Contours {
			moved := &ufo.Contour{Points: append([]ufo.Point(nil), contour.Points...)}
			moved.Move(comp.XOffset, comp.YOffset)
			g.Contours = append(g.Contours, moved)
		}
		for _, nested := range base.Components {
			g.AppendComponent(nested.Base, nested.XOffset+comp.XOffset, nested.YOffset+comp.YOffset)
		}
	}
	return nil
}
