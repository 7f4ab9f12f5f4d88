package timing

// Reverse calculators: resolution + pixel clock → refresh rate.
//
// The horizontal set is the same as in forward mode. The vertical blanking
// and refresh rate are solved together by fixed-point iteration, at most
// ReverseMaxRounds rounds, stopping early once the iterated quantity repeats:
//
//	v_total → refresh = pc*1e6 / (h_total*v_total)
//	        → h_period = 1e6 / (refresh*v_total)
//	        → new blanking (RB) or new back porch (standard)
//
// After the loop the refresh rate is recomputed once from the final v_total.

// reverseReduced iterates the total vertical blanking against the 460 µs
// CVT-RB budget, clamped to the 17-line floor.
func reverseReduced(req Request) (Result, error) {
	pc := *req.PixelClock
	m := reducedModel
	h := m.horizontal(req.HActive)

	blanking := m.minBlanking()
	for round := 0; round < ReverseMaxRounds; round++ {
		hPeriod, err := reverseLinePeriod(pc, h.total, req.VActive+blanking)
		if err != nil {
			return Result{}, err
		}
		lines, err := ceilLines("vertical blanking lines", RBVBlankTime/hPeriod)
		if err != nil {
			return Result{}, err
		}
		next := max(lines, m.minBlanking())
		if next == blanking {
			break
		}
		blanking = next
	}

	return reverseResult(req, h, m.fromBlanking(req.VActive, blanking))
}

// reverseStandard iterates the back porch against the 550 µs sync+back porch
// budget, seeded at 10 lines.
func reverseStandard(req Request) (Result, error) {
	pc := *req.PixelClock
	m := standardModel
	h := m.horizontal(req.HActive)

	back := m.seedBackPorch
	for round := 0; round < ReverseMaxRounds; round++ {
		v := m.vertical(req.VActive, back)
		hPeriod, err := reverseLinePeriod(pc, h.total, v.total)
		if err != nil {
			return Result{}, err
		}
		minLines, err := ceilLines("sync+back porch lines", MinVSyncBackPorch/hPeriod)
		if err != nil {
			return Result{}, err
		}
		next := max(minLines-m.vSyncPulse, m.minBackPorch)
		if next == back {
			break
		}
		back = next
	}

	return reverseResult(req, h, m.vertical(req.VActive, back))
}

// reverseLinePeriod derives the line period in µs for one iteration.
func reverseLinePeriod(pc float64, hTotal, vTotal int) (float64, error) {
	refresh := (pc * 1000000.0) / float64(hTotal*vTotal)
	hFreq := refresh * float64(vTotal)
	hPeriod := 1000000.0 / hFreq
	if err := finite("line period", hPeriod); err != nil {
		return 0, err
	}

	return hPeriod, nil
}

// reverseResult recomputes the refresh rate from the final vertical set.
func reverseResult(req Request, h horizontal, v vertical) (Result, error) {
	pc := *req.PixelClock
	refresh := (pc * 1000000.0) / float64(h.total*v.total)
	if err := finite("refresh rate", refresh); err != nil {
		return Result{}, err
	}

	res := assemble(req, ModeReverse, h, v)
	res.PixelClock = round2(pc)
	res.RefreshRate = round2(refresh)
	res.RefreshReported = true

	return res, nil
}
