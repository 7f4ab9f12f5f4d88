// SPDX-License-Identifier: MIT

package rtl

import (
	"fmt"
	"math/bits"
	"regexp"
	"strconv"
	"strings"
	"text/template"

	"github.com/katalvlaran/vesatiming/timing"
)

var identRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_$]*$`)

// reserved holds the Verilog-2001 keywords a generated module name would
// realistically collide with.
var reserved = map[string]struct{}{
	"always": {}, "assign": {}, "begin": {}, "case": {}, "else": {}, "end": {},
	"endmodule": {}, "if": {}, "initial": {}, "input": {}, "integer": {},
	"localparam": {}, "module": {}, "output": {}, "parameter": {}, "reg": {},
	"wire": {},
}

// ValidModuleName reports whether name can be used as a module name.
func ValidModuleName(name string) bool {
	if !identRE.MatchString(name) {
		return false
	}
	_, kw := reserved[name]
	return !kw
}

// DefaultModuleName names the generator after its timing, for example
// "vesa_timing_1920x1080_60hz" or "vesa_timing_3840x2160_60hz_rb". The
// refresh rate is truncated to an integer.
func DefaultModuleName(res timing.Result) string {
	name := fmt.Sprintf("vesa_timing_%dx%d_%dhz", res.HActive, res.VActive, int(res.RefreshRate))
	if res.Blanking == timing.Reduced {
		name += "_rb"
	}
	return name
}

// CounterWidth is the register width that holds counts 0..total-1.
func CounterWidth(total int) int {
	if total <= 1 {
		return 1
	}
	return bits.Len(uint(total - 1))
}

// ClockPeriod formats the pixel period in nanoseconds with three decimals.
func ClockPeriod(pixelClockMHz float64) string {
	return strconv.FormatFloat(1000/pixelClockMHz, 'f', 3, 64)
}

// params is the template view of a result.
type params struct {
	timing.Result
	Name      string
	Generator string
	Timestamp string
	HWidth    int
	VWidth    int
	Period    string
	Frames    int
	Timeout   int
}

func newParams(res timing.Result, opts []Option) (params, error) {
	if res.HTotal <= 0 || res.VTotal <= 0 || !(res.PixelClock > 0) {
		return params{}, ErrEmptyTiming
	}
	c := newConfig(opts)
	name := c.moduleName
	if name == "" {
		name = DefaultModuleName(res)
	}
	if !ValidModuleName(name) {
		return params{}, fmt.Errorf("%w: %q", ErrBadModuleName, name)
	}

	p := params{
		Result:    res,
		Name:      name,
		Generator: c.generator,
		HWidth:    CounterWidth(res.HTotal),
		VWidth:    CounterWidth(res.VTotal),
		Period:    ClockPeriod(res.PixelClock),
		Frames:    c.frames,
		Timeout:   c.frames + 2,
	}
	if !c.timestamp.IsZero() {
		p.Timestamp = c.timestamp.Format("2006-01-02 15:04:05")
	}
	return p, nil
}

func render(t *template.Template, p params) (string, error) {
	var sb strings.Builder
	if err := t.Execute(&sb, p); err != nil {
		return "", fmt.Errorf("rtl: render %s: %w", t.Name(), err)
	}
	return sb.String(), nil
}

// Module returns the Verilog source of the timing generator for res.
func Module(res timing.Result, opts ...Option) (string, error) {
	p, err := newParams(res, opts)
	if err != nil {
		return "", err
	}
	return render(moduleTmpl, p)
}

// Testbench returns the Verilog testbench that drives the module Module
// generates with the same options.
func Testbench(res timing.Result, opts ...Option) (string, error) {
	p, err := newParams(res, opts)
	if err != nil {
		return "", err
	}
	return render(testbenchTmpl, p)
}
