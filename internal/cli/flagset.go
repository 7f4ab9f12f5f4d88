package cli

import (
	"flag"
	"fmt"

	"github.com/katalvlaran/vesatiming/internal/version"
)

// NewFlagSet returns a FlagSet with ContinueOnError and the tool's usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: VESA CVT video timing calculator

Version: %s

Supply a resolution (or -preset) and a refresh rate, a pixel clock, or both:
  refresh only  -> forward (timing from refresh rate)
  clock only    -> reverse (refresh rate derived from the clock)
  both          -> dual (blanking sized to fit both)

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}
