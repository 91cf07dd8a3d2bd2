/*
Strata is a command-line front end for the glyph-production toolkit.

Usage:

	strata <command> [flags]

Commands operate on UFO packages: layer composition, vertical family
derivation, quarter-turn rotation, vertical-metrics emission, kerning
propagation, encoding maintenance, and proofing of built binaries. Run

	strata help

for the command list.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'strata.cli'
func tracer() tracing.Trace {
	return tracing.Select("strata.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":      "go",
		"trace.strata.cli":     "Info",
		"trace.strata.ufo":     "Info",
		"trace.strata.build":   "Info",
		"trace.strata.metrics": "Info",
		"trace.strata.kern":    "Info",
		"trace.strata.cmap":    "Info",
		"trace.strata.proof":   "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Println("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	cmd, args := os.Args[1], os.Args[2:]
	run, ok := commands[cmd]
	if !ok {
		if cmd == "help" || cmd == "-h" || cmd == "--help" {
			usage()
			return
		}
		pterm.Error.Printfln("unknown command %q", cmd)
		usage()
		os.Exit(2)
	}
	if err := run(args); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

var commands = map[string]func([]string) error{
	"compose":         composeCmd,
	"vertical":        verticalCmd,
	"rotate":          rotateCmd,
	"vpal":            vpalCmd,
	"vkrn":            vkrnCmd,
	"draw-metrics":    drawMetricsCmd,
	"align-layers":    alignLayersCmd,
	"copy-kerning":    copyKerningCmd,
	"set-pua":         setPUACmd,
	"expand-unicodes": expandUnicodesCmd,
	"gsub-map":        gsubMapCmd,
	"proof":           proofCmd,
	"console":         consoleCmd,
}

func usage() {
	pterm.Info.Println("Strata glyph-production toolkit")
	pterm.Println(`
	compose          assemble a layered style into a target UFO
	vertical         derive the vertical family from a master UFO
	rotate           quarter-turn every glyph of a UFO
	vpal             emit the vpal feature block (add -watch to follow edits)
	vkrn             convert horizontal kerning to vertical kerning
	draw-metrics     rebuild the metrics layer of a vertical UFO
	align-layers     realign decorative layers of a glyph
	copy-kerning     copy kerning and groups onto build targets
	set-pua          assign Private Use Area code points
	expand-unicodes  split multiply-encoded glyphs
	gsub-map         export the stylistic-set substitution map as JSON
	proof            shape a built binary and compare vertical metrics
	console          interactive UFO browser

	Every command prints its flags with -h.`)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
