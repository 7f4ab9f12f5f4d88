package timing

import "math"

// dualConstraint fits the timing to a fixed refresh rate and pixel clock.
//
// Target: h_total * v_total = T = pc*1e6 / refresh. The horizontal set is
// independent of T. Starting from the model's seed back porch, each of at most
// DualMaxRounds rounds:
//  1. computes the pixel clock implied by (h_total, v_total);
//  2. stops if it is within DualTolerance MHz of the requested one;
//  3. otherwise sets v_total = round(T / h_total), clamps the blanking to the
//     model minimum and derives the back porch from it.
//
// The returned PixelClock and RefreshRate are the caller's values verbatim.
// When T / h_total is not an integer, or falls below the blanking floor, the
// timing is the nearest integer-line approximation.
func dualConstraint(req Request) (Result, error) {
	r := *req.RefreshRate
	pc := *req.PixelClock
	m := modelFor(req.Blanking)
	h := m.horizontal(req.HActive)

	target := pc * 1000000.0 / r
	if err := finite("pixels per frame", target); err != nil {
		return Result{}, err
	}

	v := m.vertical(req.VActive, m.seedBackPorch)
	for round := 0; round < DualMaxRounds; round++ {
		implied := float64(h.total*v.total) * r / 1000000.0
		if math.Abs(implied-pc) < DualTolerance {
			break
		}

		total := math.RoundToEven(target / float64(h.total))
		if total > maxLines {
			return Result{}, internalf("vertical total overflows line count (%g)", total)
		}
		blanking := max(int(total)-req.VActive, m.minBlanking())
		v = m.fromBlanking(req.VActive, blanking)
	}

	res := assemble(req, ModeDual, h, v)
	res.PixelClock = pc
	res.RefreshRate = r
	res.RefreshReported = true

	return res, nil
}
