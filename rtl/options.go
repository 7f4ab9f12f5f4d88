// SPDX-License-Identifier: MIT

package rtl

import (
	"fmt"
	"time"
)

// DefaultFrames is the number of frames the testbench simulates.
const DefaultFrames = 3

// DefaultGenerator is the tool name written into the file headers.
const DefaultGenerator = "vesatiming"

// Option customizes generation. Constructors panic on meaningless values;
// Module and Testbench never panic.
type Option func(*config)

type config struct {
	moduleName string // empty means DefaultModuleName(res)
	timestamp  time.Time
	frames     int
	generator  string
}

func newConfig(opts []Option) config {
	c := config{frames: DefaultFrames, generator: DefaultGenerator}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// WithModuleName sets the generator module name. The testbench is named
// "tb_" + name. Names that are not Verilog identifiers are reported by
// Module and Testbench as ErrBadModuleName. Panics on "".
func WithModuleName(name string) Option {
	if name == "" {
		panic("rtl: WithModuleName(\"\")")
	}
	return func(c *config) { c.moduleName = name }
}

// WithTimestamp stamps the file headers with t. The zero time omits the line.
func WithTimestamp(t time.Time) Option {
	return func(c *config) { c.timestamp = t }
}

// WithFrames sets how many frames the testbench simulates before it stops.
// Panics if n < 1.
func WithFrames(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("rtl: WithFrames(%d): need at least one frame", n))
	}
	return func(c *config) { c.frames = n }
}

// WithGenerator sets the tool name in the file headers. Panics on "".
func WithGenerator(name string) Option {
	if name == "" {
		panic("rtl: WithGenerator(\"\")")
	}
	return func(c *config) { c.generator = name }
}
