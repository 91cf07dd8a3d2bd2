package proof

import (
	"fmt"
	"io"

	"github.com/glyphworks/strata/core/ufo"
	"github.com/glyphworks/strata/metrics"
)

// Report shapes the sample text top-to-bottom through the built binary
// with vpal enabled and writes one line per glyph: the shaper's
// vertical advance and offset next to the adjustment the metrics
// derivation predicts for the same glyph. Glyphs the derivation has no
// record for show a dash.
func Report(w io.Writer, bin *Binary, f *ufo.Font, src *ufo.Font, sample string) error {
	predicted := make(map[string]metrics.Adjustment)
	for _, adj := range metrics.Derive(f, src) {
		predicted[adj.Glyph] = adj
	}
	glyphs, err := ShapeVertical(bin, sample, []string{"vert", "vpal"})
	if err != nil {
		return err
	}
	cmap := f.CharacterMapping()
	runes := []rune(sample)
	upm := bin.UnitsPerEm()
	fmt.Fprintf(w, "%-8s %-24s %8s %8s %10s %10s\n",
		"char", "glyph", "yadvance", "yoffset", "predicted", "delta")
	for _, sg := range glyphs {
		r := runes[sg.Cluster]
		name := cmap[r]
		if name == "" {
			name = fmt.Sprintf("gid%d", sg.GID)
		}
		pred, delta := "-", "-"
		if adj, ok := predicted[name]; ok {
			want := -(upm + adj.YAdvance)
			pred = fmt.Sprintf("%d", want)
			delta = fmt.Sprintf("%+d", int(sg.YAdvance)-want)
		}
		fmt.Fprintf(w, "U+%04X   %-24s %8d %8d %10s %10s\n",
			r, name, sg.YAdvance, sg.YOffset, pred, delta)
	}
	return nil
}
