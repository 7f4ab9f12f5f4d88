// Package vesatiming computes VESA Coordinated Video Timing (CVT) modes and
// turns them into artifacts a display pipeline can use.
//
// What is in the box?
//
//	timing/  the engine: validation, mode selection, standard and
//	         reduced-blanking forward calculators, the reverse
//	         (clock to refresh) calculator and the dual-constraint solver
//	preset/  a read-only catalog of common display modes
//	report/  aligned tables, clipboard text and JSON, in English or
//	         Simplified Chinese
//	rtl/     a Verilog timing generator and testbench for any result
//	diagram/ a PNG map of the frame: active area, porches and sync bands
//	cmd/vesatiming the command-line front end
//
// Quick start:
//
//	res, err := timing.Forward(1920, 1080, 60, timing.Standard)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.PixelClock) // 147.84
//
// The engine is pure: no I/O, no logging, no globals that change after
// start-up. Every call is independent and safe to make concurrently.
package vesatiming
