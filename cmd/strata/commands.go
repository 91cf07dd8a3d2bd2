package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/glyphworks/strata/build/compose"
	"github.com/glyphworks/strata/build/rotate"
	"github.com/glyphworks/strata/build/vertical"
	"github.com/glyphworks/strata/cmap"
	"github.com/glyphworks/strata/core"
	"github.com/glyphworks/strata/core/ufo"
	"github.com/glyphworks/strata/kern"
	"github.com/glyphworks/strata/metrics"
	"github.com/glyphworks/strata/proof"
	"github.com/pterm/pterm"
)

func openUFO(path string) (*ufo.Font, error) {
	if path == "" {
		return nil, core.Error(core.EINVALID, "no UFO package given")
	}
	return ufo.Open(path)
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func composeCmd(args []string) error {
	fs := flag.NewFlagSet("compose", flag.ExitOnError)
	in := fs.String("ufo", "", "layered master UFO")
	out := fs.String("out", "", "target UFO path")
	family := fs.String("family", "", "family name of the target")
	style := fs.String("style", "Regular", "style name of the target")
	layers := fs.String("layers", "foreground", "comma-separated layer stack")
	tracking := fs.Float64("tracking", 0, "tracking in font units")
	fs.Parse(args)

	src, err := openUFO(*in)
	if err != nil {
		return err
	}
	f, err := compose.Compose(src, compose.Style{
		FamilyName: *family,
		StyleName:  *style,
		Layers:     splitList(*layers),
		Tracking:   *tracking,
	})
	if err != nil {
		return err
	}
	if err := f.Save(*out); err != nil {
		return err
	}
	pterm.Info.Printfln("composed %s %s -> %s", *family, *style, *out)
	return nil
}

func verticalCmd(args []string) error {
	fs := flag.NewFlagSet("vertical", flag.ExitOnError)
	in := fs.String("ufo", "", "master UFO")
	out := fs.String("out", "", "derived vertical UFO path")
	family := fs.String("family", "", "family name of the vertical font")
	fs.Parse(args)

	src, err := openUFO(*in)
	if err != nil {
		return err
	}
	f, err := vertical.Derive(src, *family)
	if err != nil {
		return err
	}
	if err := f.Save(*out); err != nil {
		return err
	}
	pterm.Info.Printfln("derived vertical family -> %s", *out)
	return nil
}

func rotateCmd(args []string) error {
	fs := flag.NewFlagSet("rotate", flag.ExitOnError)
	in := fs.String("ufo", "", "UFO to rotate")
	out := fs.String("out", "", "rotated UFO path (defaults to in-place)")
	fs.Parse(args)

	f, err := openUFO(*in)
	if err != nil {
		return err
	}
	if err := rotate.Font(f); err != nil {
		return err
	}
	target := *out
	if target == "" {
		target = *in
	}
	if err := f.Save(target); err != nil {
		return err
	}
	pterm.Info.Printfln("rotated %s -> %s", *in, target)
	return nil
}

func vpalCmd(args []string) error {
	fs := flag.NewFlagSet("vpal", flag.ExitOnError)
	in := fs.String("ufo", "", "vertical UFO")
	srcPath := fs.String("src", "", "drawing master carrying the metrics layer")
	watch := fs.Bool("watch", false, "re-emit whenever the packages change")
	fs.Parse(args)

	emit := func() error {
		f, err := openUFO(*in)
		if err != nil {
			return err
		}
		src, err := openUFO(*srcPath)
		if err != nil {
			return err
		}
		return metrics.EmitVpal(os.Stdout, metrics.Derive(f, src))
	}
	if err := emit(); err != nil {
		return err
	}
	if !*watch {
		return nil
	}
	return watchPackages([]string{*in, *srcPath}, emit)
}

// watchPackages re-runs emit whenever a watched UFO changes on disk,
// debounced: saves touch many glif files in a burst.
func watchPackages(paths []string, emit func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot watch for changes")
	}
	defer watcher.Close()
	for _, root := range paths {
		err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			return core.WrapError(err, core.EIO, "cannot watch %s", root)
		}
	}
	pterm.Info.Println("watching for changes, quit with <ctrl>C")
	var pending <-chan time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove) != 0 {
				pending = time.After(500 * time.Millisecond)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			tracer().Errorf(err.Error())
		case <-pending:
			pending = nil
			if err := emit(); err != nil {
				tracer().Errorf(err.Error())
			}
		}
	}
}

func vkrnCmd(args []string) error {
	fs := flag.NewFlagSet("vkrn", flag.ExitOnError)
	kernPath := fs.String("kern", "", "UFO carrying the horizontal kerning")
	in := fs.String("ufo", "", "vertical UFO receiving the converted kerning")
	fs.Parse(args)

	src, err := openUFO(*kernPath)
	if err != nil {
		return err
	}
	dst, err := openUFO(*in)
	if err != nil {
		return err
	}
	if err := metrics.ConvertToVkrn(src, dst); err != nil {
		return err
	}
	if err := src.Save(src.Path); err != nil {
		return err
	}
	if err := dst.Save(dst.Path); err != nil {
		return err
	}
	pterm.Info.Printfln("converted kerning of %s for %s", *kernPath, *in)
	return nil
}

func drawMetricsCmd(args []string) error {
	fs := flag.NewFlagSet("draw-metrics", flag.ExitOnError)
	srcPath := fs.String("src", "", "horizontal master UFO")
	in := fs.String("ufo", "", "vertical UFO receiving the metrics layer")
	fs.Parse(args)

	src, err := openUFO(*srcPath)
	if err != nil {
		return err
	}
	dst, err := openUFO(*in)
	if err != nil {
		return err
	}
	missing := metrics.DrawLayer(src, dst)
	for _, name := range missing {
		pterm.Printfln("no vertical counterpart: %s", name)
	}
	if err := dst.Save(dst.Path); err != nil {
		return err
	}
	pterm.Info.Printfln("drew metrics layer of %s", *in)
	return nil
}

func alignLayersCmd(args []string) error {
	fs := flag.NewFlagSet("align-layers", flag.ExitOnError)
	in := fs.String("ufo", "", "layered UFO")
	glyph := fs.String("glyph", "", "glyph to realign")
	layer := fs.String("layer", "", "reference layer")
	fs.Parse(args)

	f, err := openUFO(*in)
	if err != nil {
		return err
	}
	if err := metrics.AlignLayers(f, *glyph, *layer); err != nil {
		return err
	}
	return f.Save(f.Path)
}

func copyKerningCmd(args []string) error {
	fs := flag.NewFlagSet("copy-kerning", flag.ExitOnError)
	srcPath := fs.String("src", "", "UFO the kerning is drawn in")
	targets := fs.String("targets", "", "comma-separated target UFO paths")
	fs.Parse(args)

	src, err := openUFO(*srcPath)
	if err != nil {
		return err
	}
	for _, path := range splitList(*targets) {
		dst, err := openUFO(path)
		if err != nil {
			return err
		}
		dropped := kern.Copy(src, dst)
		for _, pair := range dropped[dst.Info.StyleName] {
			pterm.Printfln("dropped pair (%s, %s)", pair.Left, pair.Right)
		}
		if err := dst.Save(dst.Path); err != nil {
			return err
		}
		pterm.Info.Printfln("copied kerning onto %s", path)
	}
	return nil
}

func setPUACmd(args []string) error {
	fs := flag.NewFlagSet("set-pua", flag.ExitOnError)
	in := fs.String("ufo", "", "UFO to encode")
	start := fs.Uint("start", uint(cmap.DefaultPUAStart), "first code point to assign")
	fs.Parse(args)

	f, err := openUFO(*in)
	if err != nil {
		return err
	}
	assigned := cmap.AssignPUA(f, rune(*start), cmap.DefaultExceptions)
	for _, a := range assigned {
		pterm.Printfln("%s = U+%04X", a.Glyph, a.Code)
	}
	return f.Save(f.Path)
}

func expandUnicodesCmd(args []string) error {
	fs := flag.NewFlagSet("expand-unicodes", flag.ExitOnError)
	in := fs.String("ufo", "", "UFO to expand")
	fs.Parse(args)

	f, err := openUFO(*in)
	if err != nil {
		return err
	}
	created, overlaps := cmap.ExpandDoubleEncodings(f)
	for _, o := range overlaps {
		pterm.Printfln("overlap: U+%04X stays on %s", o.Code, o.Glyph)
	}
	pterm.Info.Printfln("created %d glyphs", len(created))
	return f.Save(f.Path)
}

func gsubMapCmd(args []string) error {
	fs := flag.NewFlagSet("gsub-map", flag.ExitOnError)
	in := fs.String("ufo", "", "encoded master UFO")
	out := fs.String("out", "", "JSON output path (default stdout)")
	fs.Parse(args)

	f, err := openUFO(*in)
	if err != nil {
		return err
	}
	m := cmap.SubstitutionMap(f, cmap.DefaultRules)
	if *out == "" {
		return cmap.WriteJSON(os.Stdout, m)
	}
	file, err := os.Create(*out)
	if err != nil {
		return core.WrapError(err, core.EIO, "cannot write %s", *out)
	}
	defer file.Close()
	return cmap.WriteJSON(file, m)
}

func proofCmd(args []string) error {
	fs := flag.NewFlagSet("proof", flag.ExitOnError)
	fontPath := fs.String("font", "", "built OpenType binary (path or installed name)")
	in := fs.String("ufo", "", "vertical UFO the binary was built from")
	srcPath := fs.String("src", "", "drawing master carrying the metrics layer")
	text := fs.String("text", "HAMBURG", "sample text to shape")
	fs.Parse(args)

	bin, err := proof.Load(*fontPath)
	if err != nil {
		return err
	}
	f, err := openUFO(*in)
	if err != nil {
		return err
	}
	src, err := openUFO(*srcPath)
	if err != nil {
		return err
	}
	pterm.Info.Printfln("proofing %s", bin.Name)
	return proof.Report(os.Stdout, bin, f, src, *text)
}
