package kern

import (
	"sort"
	"strings"

	"github.com/glyphworks/strata/core/ufo"
)

// leftoverAlternate is kerned on the drawing master but never built;
// copying kerning onto a target is the moment it gets cleaned up.
const leftoverAlternate = "K.salt2"

// groupPrefix marks kerning-group names in pair references.
const groupPrefix = "public.kern"

// Copy replaces the kerning and kerning groups of every target font
// with those of src. Pairs that reference a group or glyph the target
// does not carry are dropped; Copy returns the dropped pairs per
// target, keyed by the target's style name.
func Copy(src *ufo.Font, targets ...*ufo.Font) map[string][]ufo.Pair {
	dropped := make(map[string][]ufo.Pair)
	for _, f := range targets {
		f.Groups = make(map[string][]string, len(src.Groups))
		for groupName, members := range src.Groups {
			f.Groups[groupName] = append([]string(nil), members...)
		}
		f.Kerning = make(map[ufo.Pair]int, len(src.Kerning))
		for pair, value := range src.Kerning {
			f.Kerning[pair] = value
		}
		if unresolved := Prune(f); len(unresolved) > 0 {
			dropped[f.Info.StyleName] = unresolved
		}
		if f.Has(leftoverAlternate) {
			f.RemoveGlyph(leftoverAlternate)
			tracer().Debugf("removed leftover glyph %s from %s",
				leftoverAlternate, f.Info.StyleName)
		}
		tracer().Infof("copied %d kerning pairs, %d groups onto %s",
			len(f.Kerning), len(f.Groups), f.Info.StyleName)
	}
	return dropped
}

// Prune drops kerning pairs of f that reference a missing group or
// glyph and returns them, sorted.
func Prune(f *ufo.Font) []ufo.Pair {
	var unresolved []ufo.Pair
	for pair := range f.Kerning {
		if resolves(f, pair.Left) && resolves(f, pair.Right) {
			continue
		}
		unresolved = append(unresolved, pair)
		delete(f.Kerning, pair)
	}
	sort.Slice(unresolved, func(i, j int) bool {
		if unresolved[i].Left != unresolved[j].Left {
			return unresolved[i].Left < unresolved[j].Left
		}
		return unresolved[i].Right < unresolved[j].Right
	})
	for _, pair := range unresolved {
		tracer().Infof("dropping kerning pair (%s, %s)", pair.Left, pair.Right)
	}
	return unresolved
}

func resolves(f *ufo.Font, ref string) bool {
	if strings.HasPrefix(ref, groupPrefix) {
		_, ok := f.Groups[ref]
		return ok
	}
	return f.Has(ref)
}
