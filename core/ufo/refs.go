package ufo

import "github.com/glyphworks/strata/core"

// Reference-safe mutations: renames and removals that keep components,
// groups and kerning pairs pointing at existing glyphs.

// RenameGlyph renames a glyph in every layer and updates all references
// to it: component base names, group members, and both sides of kerning
// pairs.
func (f *Font) RenameGlyph(from, to string) error {
	if !f.Has(from) {
		return core.Error(core.EMISSING, "no glyph %q to rename", from)
	}
	if f.Has(to) {
		return core.Error(core.EINVALID, "glyph %q already exists", to)
	}
	for _, layer := range f.layers {
		if layer.Has(from) {
			layer.rename(from, to) //nolint:errcheck // checked above
		}
		for _, g := range layer.glyphs {
			for _, comp := range g.Components {
				if comp.Base == from {
					comp.Base = to
				}
			}
		}
	}
	for groupName, members := range f.Groups {
		for i, member := range members {
			if member == from {
				f.Groups[groupName][i] = to
			}
		}
	}
	renamePairs(f.Kerning, from, to)
	if order, ok := f.Lib["public.glyphOrder"].([]string); ok {
		for i, name := range order {
			if name == from {
				order[i] = to
			}
		}
	}
	tracer().Debugf("renamed glyph %s to %s", from, to)
	return nil
}

// RemoveGlyphDecompose removes a glyph after decomposing every component
// that references it, so no outline data is lost.
func (f *Font) RemoveGlyphDecompose(name string) error {
	for _, layer := range f.layers {
		for _, g := range layer.glyphs {
			if g.Name == name {
				continue
			}
			if err := g.DecomposeBase(name); err != nil {
				return err
			}
		}
	}
	f.RemoveGlyph(name)
	return nil
}

// RenameGroup renames a kerning group and follows the rename through
// every kerning pair referencing it.
func (f *Font) RenameGroup(from, to string) error {
	members, ok := f.Groups[from]
	if !ok {
		return core.Error(core.EMISSING, "no group %q to rename", from)
	}
	if _, exists := f.Groups[to]; exists {
		return core.Error(core.EINVALID, "group %q already exists", to)
	}
	f.Groups[to] = members
	delete(f.Groups, from)
	renamePairs(f.Kerning, from, to)
	return nil
}

func renamePairs(kerning map[Pair]int, from, to string) {
	for pair, value := range kerning {
		if pair.Left != from && pair.Right != from {
			continue
		}
		delete(kerning, pair)
		if pair.Left == from {
			pair.Left = to
		}
		if pair.Right == from {
			pair.Right = to
		}
		kerning[pair] = value
	}
}
