// Package timing - unified entry points.
//
// Control flow for every call:
//
//	Validate → SelectMode → one calculator → Result.Check
//
// Any failure short-circuits and returns a zero Result.
package timing

import "fmt"

// Solve validates req, selects the mode and runs the matching calculator.
//
// Errors: *RangeError, *ModeError (see Validate) or *InternalComputationError
// when a calculator hits a degenerate intermediate or panics.
func Solve(req Request) (res Result, err error) {
	// Stage 1: validation.
	if err = Validate(req); err != nil {
		return Result{}, err
	}

	// Stage 2: dispatch.
	mode, err := SelectMode(req)
	if err != nil {
		return Result{}, err
	}
	calc := calculatorFor(mode, req.Blanking)
	if calc == nil {
		return Result{}, &ModeError{Reason: fmt.Sprintf("no calculator for %s/%s", mode, req.Blanking)}
	}

	// Stage 3: compute. A panic inside a calculator is reported, never propagated.
	defer func() {
		if p := recover(); p != nil {
			res = Result{}
			err = &InternalComputationError{Detail: fmt.Sprint(p)}
		}
	}()
	res, err = calc(req)
	if err != nil {
		return Result{}, err
	}

	// Stage 4: invariants.
	if err = res.Check(); err != nil {
		return Result{}, err
	}

	return res, nil
}

// SolveSingle is the two-mode API: exactly one of RefreshRate or PixelClock
// must be supplied. Supplying both yields a *ModeError instead of dual mode.
func SolveSingle(req Request) (Result, error) {
	if err := validateResolution(req); err != nil {
		return Result{}, err
	}
	if req.RefreshRate != nil && req.PixelClock != nil {
		return Result{}, &ModeError{Reason: ReasonBothPresent}
	}

	return Solve(req)
}

// Compute is Solve in scalar form: nil refreshRate or pixelClock means absent.
func Compute(hActive, vActive int, refreshRate, pixelClock *float64, reducedBlanking bool) (Result, error) {
	req := Request{
		HActive:     hActive,
		VActive:     vActive,
		RefreshRate: refreshRate,
		PixelClock:  pixelClock,
		Blanking:    Standard,
	}
	if reducedBlanking {
		req.Blanking = Reduced
	}

	return Solve(req)
}

// Forward computes the pixel clock and timing for a refresh rate in Hz.
func Forward(hActive, vActive int, refreshRate float64, b Blanking) (Result, error) {
	return Solve(Request{HActive: hActive, VActive: vActive, RefreshRate: Value(refreshRate), Blanking: b})
}

// Reverse computes the refresh rate and timing for a pixel clock in MHz.
func Reverse(hActive, vActive int, pixelClock float64, b Blanking) (Result, error) {
	return Solve(Request{HActive: hActive, VActive: vActive, PixelClock: Value(pixelClock), Blanking: b})
}

// Dual fits the timing to both a refresh rate (Hz) and a pixel clock (MHz).
func Dual(hActive, vActive int, refreshRate, pixelClock float64, b Blanking) (Result, error) {
	return Solve(Request{
		HActive:     hActive,
		VActive:     vActive,
		RefreshRate: Value(refreshRate),
		PixelClock:  Value(pixelClock),
		Blanking:    b,
	})
}
