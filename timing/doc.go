// Package timing computes VESA Coordinated Video Timing (CVT) parameters.
//
// Given an active resolution and a refresh rate, a pixel clock, or both, the
// package derives the complete horizontal and vertical timing: totals,
// blanking, front porch, sync pulse and back porch.
//
// Two blanking models are supported:
//
//   - Standard: the general-purpose CVT blanking model. Horizontal blanking is
//     chosen by active-width bracket; the vertical back porch honors a 550 µs
//     sync+back-porch budget.
//   - Reduced:  CVT Reduced Blanking (CVT-RB) for digital interfaces. Fixed
//     160-pixel horizontal blanking; the vertical blanking honors a 460 µs budget.
//
// Three calculation modes are selected from which constraints are supplied:
//
//   - Forward: refresh rate → pixel clock.
//   - Reverse: pixel clock → refresh rate (bounded 5-round fixed point).
//   - Dual:    refresh rate and pixel clock both fixed → the integer-line timing
//     closest to both (bounded 10-round refinement).
//
// Usage:
//
//	res, err := timing.Solve(timing.Request{
//	    HActive:     1920,
//	    VActive:     1080,
//	    RefreshRate: timing.Value(60),
//	})
//	if err != nil {
//	    // *RangeError, *ModeError or *InternalComputationError
//	}
//	fmt.Println(res.PixelClock) // 147.84
//
// Every function is pure: the package owns only constants, so concurrent
// calls need no locking.
package timing
