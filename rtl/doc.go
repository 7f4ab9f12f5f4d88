// SPDX-License-Identifier: MIT

// Package rtl emits a Verilog timing generator and a matching testbench from
// a computed timing.Result.
//
// The generator module counts pixels and lines, drives active-low hsync and
// vsync, and raises de inside the active area and frame_valid on active lines.
// The testbench runs it for a few frames, dumps a VCD trace and guards against
// a hung simulation.
//
// Output is a pure function of the result and the options: with no
// WithTimestamp option the generation-time line is left out, so two calls
// return identical text.
//
//	res, _ := timing.Forward(1920, 1080, 60, timing.Standard)
//	src, err := rtl.Module(res, rtl.WithModuleName("tg1080p"))
package rtl
