package cli

import (
	"errors"
	"flag"
	"fmt"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCopy = "copy"
)

// Options holds the parsed command line. RefreshRate and PixelClock are nil
// when their flags were not given.
type Options struct {
	HActive     int
	VActive     int
	RefreshRate *float64
	PixelClock  *float64
	Reduced     bool
	Preset      string
	ListPresets bool

	Format string
	Lang   string
	Copy   bool

	RTLDir       string
	Module       string
	Frames       int
	Diagram      string
	DiagramWidth int

	Quiet   bool
	Version bool
}

// ParseArgs registers and parses all flags on fs.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	var refresh, clock float64

	// Timing input
	fs.IntVar(&opt.HActive, "h-active", 0, "horizontal active pixels, 640..7680")
	fs.IntVar(&opt.VActive, "v-active", 0, "vertical active lines, 480..4320")
	fs.Float64Var(&refresh, "refresh", 0, "refresh rate in Hz, 24..240")
	fs.Float64Var(&clock, "clock", 0, "pixel clock in MHz")
	fs.BoolVar(&opt.Reduced, "rb", false, "use reduced blanking")
	fs.StringVar(&opt.Preset, "preset", "", "preset name such as 1920x1080 or 2560x1440@144")
	fs.BoolVar(&opt.ListPresets, "list-presets", false, "list presets and exit")

	// Output
	fs.StringVar(&opt.Format, "format", FormatText, "output format: text | json | copy")
	fs.StringVar(&opt.Lang, "lang", "", "label language, e.g. en or zh-Hans (default from $LANG)")
	fs.BoolVar(&opt.Copy, "copy", false, "also copy the results to the system clipboard")

	// Artifacts
	fs.StringVar(&opt.RTLDir, "rtl-dir", "", "write the Verilog generator and testbench into this directory")
	fs.StringVar(&opt.Module, "module", "", "Verilog module name (default vesa_timing_<h>x<v>_<r>hz[_rb])")
	fs.IntVar(&opt.Frames, "frames", 3, "frames simulated by the testbench")
	fs.StringVar(&opt.Diagram, "diagram", "", "write a PNG frame diagram to this file")
	fs.IntVar(&opt.DiagramWidth, "diagram-width", 800, "diagram width in pixels")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress WARN and INFO lines")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&help, "h", false, "show this help message")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if fs.NArg() > 0 {
		return opt, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["refresh"] {
		opt.RefreshRate = &refresh
	}
	if set["clock"] {
		opt.PixelClock = &clock
	}

	if opt.Version || opt.ListPresets {
		return opt, nil
	}

	switch opt.Format {
	case FormatText, FormatJSON, FormatCopy:
	default:
		return opt, fmt.Errorf("-format must be text, json or copy, got %q", opt.Format)
	}
	if opt.Frames < 1 {
		return opt, errors.New("-frames must be at least 1")
	}
	if opt.DiagramWidth < 1 {
		return opt, errors.New("-diagram-width must be at least 1")
	}
	if opt.Module != "" && opt.RTLDir == "" {
		return opt, errors.New("-module requires -rtl-dir")
	}

	explicitRes := set["h-active"] || set["v-active"]
	switch {
	case opt.Preset != "" && explicitRes:
		return opt, errors.New("-preset conflicts with -h-active/-v-active")
	case opt.Preset == "" && !(set["h-active"] && set["v-active"]):
		return opt, errors.New("provide -preset or both -h-active and -v-active")
	}
	return opt, nil
}
