package timing

// SelectMode inspects which constraints req carries:
//
//	refresh_rate and pixel_clock → Dual
//	refresh_rate only            → Forward
//	pixel_clock only             → Reverse
//
// With neither it returns a *ModeError. SelectMode does not look at values;
// Validate does.
func SelectMode(req Request) (Mode, error) {
	switch {
	case req.RefreshRate != nil && req.PixelClock != nil:
		return ModeDual, nil
	case req.RefreshRate != nil:
		return ModeForward, nil
	case req.PixelClock != nil:
		return ModeReverse, nil
	default:
		return ModeForward, &ModeError{Reason: ReasonMissingBoth}
	}
}

// calculator is one (Mode, Blanking) variant. Calculators receive validated
// requests only.
type calculator func(req Request) (Result, error)

// calculatorFor returns the calculator for the variant. Both Reverse and Dual
// resolve the blanking model internally.
func calculatorFor(mode Mode, b Blanking) calculator {
	switch mode {
	case ModeForward:
		if b == Reduced {
			return forwardReduced
		}
		return forwardStandard
	case ModeReverse:
		if b == Reduced {
			return reverseReduced
		}
		return reverseStandard
	case ModeDual:
		return dualConstraint
	default:
		return nil
	}
}
