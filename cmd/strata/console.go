package main

import (
	"flag"
	"strings"

	"github.com/chzyer/readline"
	"github.com/glyphworks/strata/core/ufo"
	"github.com/pterm/pterm"
)

func consoleCmd(args []string) error {
	fs := flag.NewFlagSet("console", flag.ExitOnError)
	in := fs.String("ufo", "", "UFO package to browse")
	fs.Parse(args)

	f, err := openUFO(*in)
	if err != nil {
		return err
	}
	repl, err := readline.New("ufo > ")
	if err != nil {
		return err
	}
	pterm.Info.Printfln("browsing %s %s, quit with <ctrl>D", f.Info.FamilyName, f.Info.StyleName)
	browser := &browser{font: f, repl: repl}
	browser.run()
	return nil
}

type browser struct {
	font *ufo.Font
	repl *readline.Instance
}

func (b *browser) run() {
	for {
		line, err := b.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		fields := strings.Fields(line)
		if quit := b.execute(fields[0], fields[1:]); quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (b *browser) execute(cmd string, args []string) bool {
	arg := func(i int) string {
		if i < len(args) {
			return args[i]
		}
		return ""
	}
	switch cmd {
	case "quit":
		return true
	case "info":
		info := b.font.Info
		pterm.Printfln("%s %s", info.FamilyName, info.StyleName)
		pterm.Printfln("upm %d, ascender %d, descender %d, cap height %d, x-height %d",
			info.UnitsPerEm, info.Ascender, info.Descender, info.CapHeight, info.XHeight)
		pterm.Printfln("%d glyphs, %d kerning pairs, %d groups",
			b.font.Default().Len(), len(b.font.Kerning), len(b.font.Groups))
	case "layers":
		for _, layer := range b.font.Layers() {
			pterm.Printfln("%-24s %d glyphs", layer.Name, layer.Len())
		}
	case "order":
		pterm.Printfln("%v", b.font.GlyphOrder())
	case "glyph":
		b.showGlyph(arg(0))
	case "box":
		b.showBox(arg(0))
	case "kern":
		b.showKern(arg(0), arg(1))
	default:
		pterm.Println(`
	info               font metrics summary
	layers             layer names and sizes
	order              the glyph order
	glyph <name>       advance, unicodes, contours, components
	box <name>         bounding box and margins
	kern <left> <right>  kerning value, groups resolved
	quit`)
	}
	return false
}

func (b *browser) showGlyph(name string) {
	g := b.font.Glyph(name)
	if g == nil {
		pterm.Error.Printfln("no glyph %q", name)
		return
	}
	pterm.Printfln("%s: width %g", g.Name, g.Width)
	for _, u := range g.Unicodes {
		pterm.Printfln("  U+%04X", u)
	}
	pterm.Printfln("  %d contours, %d components, %d anchors",
		len(g.Contours), len(g.Components), len(g.Anchors))
	for _, c := range g.Components {
		pterm.Printfln("  component %s @ (%g, %g)", c.Base, c.XOffset, c.YOffset)
	}
	for _, layerName := range b.font.LayerOrder() {
		if b.font.Layer(layerName).Has(name) {
			pterm.Printfln("  also on layer %s", layerName)
		}
	}
}

func (b *browser) showBox(name string) {
	g := b.font.Glyph(name)
	if g == nil {
		pterm.Error.Printfln("no glyph %q", name)
		return
	}
	box := g.BBox()
	if box.Empty {
		pterm.Printfln("%s: empty", name)
		return
	}
	pterm.Printfln("%s: (%g, %g) .. (%g, %g)", name, box.XMin, box.YMin, box.XMax, box.YMax)
	pterm.Printfln("  left margin %g, right margin %g", g.LeftMargin(), g.RightMargin())
}

func (b *browser) showKern(left, right string) {
	if left == "" || right == "" {
		pterm.Error.Println("usage: kern <left> <right>")
		return
	}
	// direct pair, then group pairs
	refs := func(name, prefix string) []string {
		r := []string{name}
		for groupName, members := range b.font.Groups {
			if !strings.HasPrefix(groupName, prefix) {
				continue
			}
			for _, member := range members {
				if member == name {
					r = append(r, groupName)
				}
			}
		}
		return r
	}
	found := false
	for _, l := range refs(left, "public.kern1.") {
		for _, r := range refs(right, "public.kern2.") {
			if value, ok := b.font.Kerning[ufo.Pair{Left: l, Right: r}]; ok {
				pterm.Printfln("(%s, %s) = %d", l, r, value)
				found = true
			}
		}
	}
	if !found {
		pterm.Printfln("no kerning for (%s, %s)", left, right)
	}
}
