// SPDX-License-Identifier: MIT

package rtl_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vesatiming/rtl"
	"github.com/katalvlaran/vesatiming/timing"
)

// hd is a hand-made 1080p timing with the classic 148.5 MHz totals.
var hd = timing.Result{
	Mode: timing.ModeForward, Blanking: timing.Standard,
	HActive: 1920, VActive: 1080, PixelClock: 148.5, RefreshRate: 60,
	HTotal: 2200, HBlanking: 280, HFrontPorch: 88, HSyncPulse: 44, HBackPorch: 148,
	VTotal: 1125, VBlanking: 45, VFrontPorch: 4, VSyncPulse: 5, VBackPorch: 36,
}

func TestCounterWidth(t *testing.T) {
	cases := []struct{ total, want int }{
		{2200, 12}, {1125, 11}, {2048, 11}, {2049, 12}, {1, 1}, {2, 1}, {3, 2},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, rtl.CounterWidth(tc.total), "total=%d", tc.total)
	}
}

func TestClockPeriod(t *testing.T) {
	assert.Equal(t, "6.734", rtl.ClockPeriod(148.5))
	assert.Equal(t, "6.764", rtl.ClockPeriod(147.84))
	assert.Equal(t, "10.000", rtl.ClockPeriod(100))
}

func TestDefaultModuleName(t *testing.T) {
	assert.Equal(t, "vesa_timing_1920x1080_60hz", rtl.DefaultModuleName(hd))

	rb := hd
	rb.Blanking = timing.Reduced
	rb.RefreshRate = 59.94
	assert.Equal(t, "vesa_timing_1920x1080_59hz_rb", rtl.DefaultModuleName(rb))
}

func TestValidModuleName(t *testing.T) {
	for _, ok := range []string{"tg", "_x", "vesa_timing_1920x1080_60hz", "a$b"} {
		assert.True(t, rtl.ValidModuleName(ok), ok)
	}
	for _, bad := range []string{"", "1abc", "has space", "dash-name", "module", "wire"} {
		assert.False(t, rtl.ValidModuleName(bad), bad)
	}
}

func TestModule_Content(t *testing.T) {
	src, err := rtl.Module(hd, rtl.WithModuleName("tg1080"))
	require.NoError(t, err)

	for _, want := range []string{
		"module tg1080 (",
		"output reg  [11:0]  h_count,",
		"output reg  [10:0]  v_count",
		"localparam H_TOTAL       = 2200;",
		"localparam H_FRONT_PORCH = 88;",
		"localparam V_TOTAL       = 1125;",
		"localparam V_SYNC_PULSE  = 5;",
		"localparam H_SYNC_START  = H_ACTIVE + H_FRONT_PORCH;",
		"h_count <= 12'd0;",
		"v_count <= 11'd0;",
		"//   Pixel clock: 148.50 MHz",
		"//   Refresh:     60.00 Hz",
		"//   Blanking:    standard",
		"// Generator: vesatiming",
		"endmodule",
	} {
		assert.Contains(t, src, want)
	}
	assert.NotContains(t, src, "Generated:")
}

func TestModule_DefaultNameAndTimestamp(t *testing.T) {
	ts := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	src, err := rtl.Module(hd, rtl.WithTimestamp(ts), rtl.WithGenerator("unit"))
	require.NoError(t, err)
	assert.Contains(t, src, "module vesa_timing_1920x1080_60hz (")
	assert.Contains(t, src, "//\n// Generated: 2024-05-06 07:08:09\n// Generator: unit\n")
}

func TestModule_Deterministic(t *testing.T) {
	a, err := rtl.Module(hd)
	require.NoError(t, err)
	b, err := rtl.Module(hd)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestTestbench_Content(t *testing.T) {
	src, err := rtl.Testbench(hd, rtl.WithModuleName("tg1080"), rtl.WithFrames(4))
	require.NoError(t, err)

	for _, want := range []string{
		"`timescale 1ns / 1ps",
		"module tb_tg1080;",
		"localparam CLK_PERIOD = 6.734;",
		"localparam FRAMES     = 4;",
		"wire [11:0] h_count;",
		"wire [10:0] v_count;",
		"tg1080 u_tg1080 (",
		"#(CLK_PERIOD * 10);",
		"#(CLK_PERIOD * H_TOTAL * 10);",
		`$dumpfile("tb_tg1080.vcd");`,
		"#(CLK_PERIOD * H_TOTAL * V_TOTAL * 6);",
	} {
		assert.Contains(t, src, want)
	}
}

func TestTestbench_DefaultFrames(t *testing.T) {
	src, err := rtl.Testbench(hd)
	require.NoError(t, err)
	assert.Contains(t, src, "localparam FRAMES     = 3;")
	assert.Contains(t, src, "#(CLK_PERIOD * H_TOTAL * V_TOTAL * 5);")
}

func TestComputedTiming(t *testing.T) {
	res, err := timing.Forward(1920, 1080, 60, timing.Reduced)
	require.NoError(t, err)

	src, err := rtl.Module(res)
	require.NoError(t, err)
	assert.Contains(t, src, "module vesa_timing_1920x1080_60hz_rb (")
	assert.Contains(t, src, "localparam H_SYNC_PULSE  = 32;")
	assert.Contains(t, src, "localparam H_BACK_PORCH  = 80;")
	assert.Equal(t, 1, strings.Count(src, "endmodule"))
}

func TestErrors(t *testing.T) {
	_, err := rtl.Module(timing.Result{})
	assert.ErrorIs(t, err, rtl.ErrEmptyTiming)

	_, err = rtl.Testbench(hd, rtl.WithModuleName("bad name"))
	assert.ErrorIs(t, err, rtl.ErrBadModuleName)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { rtl.WithModuleName("") })
	assert.Panics(t, func() { rtl.WithFrames(0) })
	assert.Panics(t, func() { rtl.WithGenerator("") })
	assert.NotPanics(t, func() { rtl.WithTimestamp(time.Time{}) })
}
