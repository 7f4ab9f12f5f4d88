// Package timing - input validation.
//
// Validate runs before any calculator and checks, in order:
//  1. h_active in [640, 7680];
//  2. v_active in [480, 4320];
//  3. at least one of refresh_rate / pixel_clock is supplied;
//  4. refresh_rate (if supplied) in [24, 240];
//  5. pixel_clock (if supplied) finite and > 0;
//  6. the blanking model is known.
//
// The first failing stage wins. NaN never passes a range check.
package timing

import "math"

// Validate reports whether req may be dispatched. It returns nil, a
// *RangeError or a *ModeError.
//
// Complexity: O(1).
func Validate(req Request) error {
	// Stage 1: resolution.
	if err := validateResolution(req); err != nil {
		return err
	}

	// Stage 2: constraint presence.
	if req.RefreshRate == nil && req.PixelClock == nil {
		return &ModeError{Reason: ReasonMissingBoth}
	}

	// Stage 3: constraint values.
	if req.RefreshRate != nil {
		r := *req.RefreshRate
		if !(r >= RefreshRateMin && r <= RefreshRateMax) {
			return &RangeError{Field: FieldRefreshRate, Value: r, Min: RefreshRateMin, Max: RefreshRateMax}
		}
	}
	if req.PixelClock != nil {
		pc := *req.PixelClock
		if !(pc > 0) || math.IsInf(pc, 0) {
			return &RangeError{Field: FieldPixelClock, Value: pc, Min: 0, Max: math.Inf(1), MinExclusive: true}
		}
	}

	// Stage 4: blanking model.
	if req.Blanking != Standard && req.Blanking != Reduced {
		return &ModeError{Reason: ReasonUnknownBlanking}
	}

	return nil
}

// validateResolution checks the active pixel and line counts.
func validateResolution(req Request) error {
	if req.HActive < HActiveMin || req.HActive > HActiveMax {
		return &RangeError{Field: FieldHActive, Value: float64(req.HActive), Min: HActiveMin, Max: HActiveMax}
	}
	if req.VActive < VActiveMin || req.VActive > VActiveMax {
		return &RangeError{Field: FieldVActive, Value: float64(req.VActive), Min: VActiveMin, Max: VActiveMax}
	}

	return nil
}
