package timing

// forwardReduced implements CVT-RB: resolution + refresh rate → pixel clock.
//
// The horizontal set is fixed (160 = 48 + 32 + 80). The vertical blanking is
// sized to a 460 µs time budget in one pass against the seed estimate:
//
//	v_total_est = v_active + 3 + 8 + 6
//	h_period    = 1e6 / (refresh * v_total_est)      µs
//	v_blanking  = max(ceil(460 / h_period), 17)
//	v_back      = v_blanking − 3 − 8
func forwardReduced(req Request) (Result, error) {
	r := *req.RefreshRate
	m := reducedModel
	h := m.horizontal(req.HActive)

	totalEst := req.VActive + m.minBlanking()
	hFreq := r * float64(totalEst) // Hz
	hPeriod := 1000000.0 / hFreq   // µs
	if err := finite("line period", hPeriod); err != nil {
		return Result{}, err
	}

	lines, err := ceilLines("vertical blanking lines", RBVBlankTime/hPeriod)
	if err != nil {
		return Result{}, err
	}
	v := m.fromBlanking(req.VActive, max(lines, m.minBlanking()))

	pc := float64(h.total*v.total) * r / 1000000.0
	if err = finite("pixel clock", pc); err != nil {
		return Result{}, err
	}

	res := assemble(req, ModeForward, h, v)
	res.PixelClock = round2(pc)
	res.RefreshRate = r

	return res, nil
}
