package timing

// forwardStandard implements standard CVT: resolution + refresh rate →
// pixel clock.
//
// Algorithm:
//  1. Horizontal set from the active-width bracket (standardHorizontal).
//  2. Estimate the line time from a seed back porch of 10 lines:
//     v_total_seed = v_active + 3 + 4 + 10
//     h_period_est = 1000 / (refresh * v_total_seed / 1000)   µs
//  3. min_lines = ceil(550 / h_period_est);
//     v_back_porch = max(min_lines − 4, 1).
//  4. pixel_clock = h_total * v_total * refresh / 1e6, two decimals.
//
// The seed is not re-iterated, so the 550 µs budget holds approximately.
// Reverse and Dual depend on this exact single-pass behavior.
func forwardStandard(req Request) (Result, error) {
	r := *req.RefreshRate
	m := standardModel
	h := m.horizontal(req.HActive)

	// Single-pass line-time estimate.
	seedTotal := req.VActive + m.vFrontPorch + m.vSyncPulse + m.seedBackPorch
	hFreqEst := r * float64(seedTotal) / 1000.0 // kHz
	hPeriodEst := 1000.0 / hFreqEst             // µs
	if err := finite("estimated line period", hPeriodEst); err != nil {
		return Result{}, err
	}

	minLines, err := ceilLines("sync+back porch lines", MinVSyncBackPorch/hPeriodEst)
	if err != nil {
		return Result{}, err
	}
	back := max(minLines-m.vSyncPulse, m.minBackPorch)
	v := m.vertical(req.VActive, back)

	pc := float64(h.total*v.total) * r / 1000000.0
	if err = finite("pixel clock", pc); err != nil {
		return Result{}, err
	}

	res := assemble(req, ModeForward, h, v)
	res.PixelClock = round2(pc)
	res.RefreshRate = r

	return res, nil
}
