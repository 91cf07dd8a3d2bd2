package cmap

import (
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/glyphworks/strata/build/vertical"
	"github.com/glyphworks/strata/core/ufo"
)

// A Rule selects the variant glyphs of one stylistic set by glyph-name
// suffix. A glyph belongs to the rule when its last suffix element
// equals Suffix and, if Bases is set, its base name (the name with that
// element stripped) starts with one of the Bases entries. The first
// matching rule wins.
type Rule struct {
	Feature string
	Suffix  string
	Bases   []string
}

// DefaultRules is the stylistic-set layout of the vertical/alternate
// glyph repertoire: ss01 switches to vertical forms, ss02 through ss07
// partition the salt alternates by letter, ss08 switches stacked forms.
var DefaultRules = []Rule{
	{Feature: "ss01", Suffix: "v"},
	{Feature: "ss03", Suffix: "salt", Bases: []string{"E"}},
	{Feature: "ss04", Suffix: "salt", Bases: []string{"I"}},
	{Feature: "ss05", Suffix: "salt", Bases: []string{"L"}},
	{Feature: "ss06", Suffix: "salt", Bases: []string{"ampersand"}},
	{Feature: "ss07", Suffix: "salt", Bases: []string{"quoteleft", "quoteright"}},
	{Feature: "ss02", Suffix: "salt", Bases: []string{"A", "M", "N", "W", "X", "Y"}},
	{Feature: "ss08", Suffix: "stack"},
}

// SubstitutionMap derives, per stylistic set, the map from a base
// glyph's code point to its variant's. Variants are found by the suffix
// rules; pairs where either glyph is unencoded are skipped.
func SubstitutionMap(f *ufo.Font, rules []Rule) map[string]map[rune]rune {
	features := make(map[string]map[rune]rune)
	for _, name := range f.Default().Names() {
		rule, base := match(rules, name)
		if rule == nil || !f.Has(base) {
			continue
		}
		variant := f.Glyph(name)
		baseGlyph := f.Glyph(base)
		if len(variant.Unicodes) == 0 || len(baseGlyph.Unicodes) == 0 {
			tracer().Debugf("unencoded pair %s / %s skipped", base, name)
			continue
		}
		m := features[rule.Feature]
		if m == nil {
			m = make(map[rune]rune)
			features[rule.Feature] = m
		}
		m[baseGlyph.Unicodes[0]] = variant.Unicodes[0]
	}
	return features
}

// match finds the first rule covering the glyph name and returns it
// together with the base name the variant substitutes.
func match(rules []Rule, name string) (*Rule, string) {
	suffix := vertical.SuffixElements(name)
	if len(suffix) == 0 {
		return nil, ""
	}
	last := suffix[len(suffix)-1]
	base := vertical.WithSuffixElements(name, suffix[:len(suffix)-1])
	for i := range rules {
		rule := &rules[i]
		if rule.Suffix != last {
			continue
		}
		if len(rule.Bases) == 0 {
			return rule, base
		}
		for _, b := range rule.Bases {
			if strings.HasPrefix(base, b) {
				return rule, base
			}
		}
	}
	return nil, ""
}

// WriteJSON emits the substitution map as deterministic JSON: features
// sorted by name, code points sorted numerically, keys in decimal.
func WriteJSON(w io.Writer, features map[string]map[rune]rune) error {
	outer := treemap.NewWith(utils.StringComparator)
	for feature, m := range features {
		inner := treemap.NewWith(utils.IntComparator)
		for from, to := range m {
			inner.Put(int(from), int(to))
		}
		outer.Put(feature, inner)
	}
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	outer.Each(func(key, value interface{}) {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%q: {", key)
		innerFirst := true
		value.(*treemap.Map).Each(func(from, to interface{}) {
			if !innerFirst {
				sb.WriteString(", ")
			}
			innerFirst = false
			fmt.Fprintf(&sb, "\"%d\": %d", from, to)
		})
		sb.WriteByte('}')
	})
	sb.WriteByte('}')
	_, err := io.WriteString(w, sb.String())
	return err
}
