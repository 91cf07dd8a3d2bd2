package metrics

import (
	"sort"

	"github.com/glyphworks/strata/build/vertical"
	"github.com/glyphworks/strata/core/ufo"
)

// Lib keys under which a font carries its vertical kerning data until
// feature compilation picks it up.
const (
	VerticalKerningLibKey = "com.fontbureau.verticalKerning"
	VerticalGroupsLibKey  = "com.fontbureau.verticalGroups"
)

// groupSuffix marks kerning groups converted for vertical use.
const groupSuffix = "_vkrn"

// ConvertToVkrn turns the source font's kerning into vertical kerning
// for dst: source glyphs are renamed to their "v"-suffixed forms where
// dst carries one, every kerning group gets the vkrn suffix (kerning
// pairs follow), and dst's kerning and groups are stashed into its lib
// for the feature build.
func ConvertToVkrn(src *ufo.Font, dst *ufo.Font) error {
	for _, name := range src.Default().Names() {
		vname := vertical.VerticalName(name)
		if vname == name || !dst.Has(vname) {
			continue
		}
		if err := src.RenameGlyph(name, vname); err != nil {
			return err
		}
	}
	groupNames := make([]string, 0, len(src.Groups))
	for groupName := range src.Groups {
		groupNames = append(groupNames, groupName)
	}
	sort.Strings(groupNames)
	for _, groupName := range groupNames {
		if err := src.RenameGroup(groupName, groupName+groupSuffix); err != nil {
			return err
		}
	}
	tracer().Infof("suffixed %d kerning groups with %s", len(groupNames), groupSuffix)

	pairs := make([][]interface{}, 0, len(dst.Kerning))
	sorted := make([]ufo.Pair, 0, len(dst.Kerning))
	for pair := range dst.Kerning {
		sorted = append(sorted, pair)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Left != sorted[j].Left {
			return sorted[i].Left < sorted[j].Left
		}
		return sorted[i].Right < sorted[j].Right
	})
	// entries keep the ((left, right), value) shape the feature build expects
	for _, pair := range sorted {
		pairs = append(pairs, []interface{}{
			[]interface{}{pair.Left, pair.Right}, dst.Kerning[pair],
		})
	}
	dst.Lib[VerticalKerningLibKey] = pairs

	groups := make(map[string][]string, len(dst.Groups))
	for groupName, members := range dst.Groups {
		groups[groupName] = append([]string(nil), members...)
	}
	dst.Lib[VerticalGroupsLibKey] = groups
	return nil
}
