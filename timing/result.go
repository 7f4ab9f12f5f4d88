package timing

// Parameter names, in presentation order.
const (
	ParamPixelClock  = "pixel_clock"
	ParamRefreshRate = "refresh_rate"
	ParamHTotal      = "h_total"
	ParamHBlanking   = "h_blanking"
	ParamHFrontPorch = "h_front_porch"
	ParamHSyncPulse  = "h_sync_pulse"
	ParamHBackPorch  = "h_back_porch"
	ParamVTotal      = "v_total"
	ParamVBlanking   = "v_blanking"
	ParamVFrontPorch = "v_front_porch"
	ParamVSyncPulse  = "v_sync_pulse"
	ParamVBackPorch  = "v_back_porch"
)

// Units.
const (
	UnitMHz    = "MHz"
	UnitHz     = "Hz"
	UnitPixels = "pixels"
	UnitLines  = "lines"
)

// Params returns the named values of r: pixel_clock, refresh_rate (only in
// Reverse and Dual mode), then the ten horizontal and vertical counts.
func (r Result) Params() []Param {
	out := make([]Param, 0, 12)
	out = append(out, Param{Name: ParamPixelClock, Value: r.PixelClock, Unit: UnitMHz})
	if r.RefreshReported {
		out = append(out, Param{Name: ParamRefreshRate, Value: r.RefreshRate, Unit: UnitHz})
	}

	px := func(name string, v int) Param {
		return Param{Name: name, Value: float64(v), Unit: UnitPixels, Integer: true}
	}
	ln := func(name string, v int) Param {
		return Param{Name: name, Value: float64(v), Unit: UnitLines, Integer: true}
	}

	return append(out,
		px(ParamHTotal, r.HTotal),
		px(ParamHBlanking, r.HBlanking),
		px(ParamHFrontPorch, r.HFrontPorch),
		px(ParamHSyncPulse, r.HSyncPulse),
		px(ParamHBackPorch, r.HBackPorch),
		ln(ParamVTotal, r.VTotal),
		ln(ParamVBlanking, r.VBlanking),
		ln(ParamVFrontPorch, r.VFrontPorch),
		ln(ParamVSyncPulse, r.VSyncPulse),
		ln(ParamVBackPorch, r.VBackPorch),
	)
}

// Check verifies the structural invariants of r:
//
//	h_blanking = h_front + h_sync + h_back,  h_total = round8(h_active) + h_blanking
//	v_blanking = v_front + v_sync + v_back,  v_total = v_active + v_blanking
//
// plus cell-aligned sync/back porch (standard) or the fixed 32/80 (reduced),
// and non-negative porches. A violation is an *InternalComputationError.
func (r Result) Check() error {
	if r.HBlanking != r.HFrontPorch+r.HSyncPulse+r.HBackPorch {
		return internalf("h_blanking %d != %d+%d+%d", r.HBlanking, r.HFrontPorch, r.HSyncPulse, r.HBackPorch)
	}
	if r.HTotal != round8(r.HActive)+r.HBlanking {
		return internalf("h_total %d != round8(%d)+%d", r.HTotal, r.HActive, r.HBlanking)
	}
	if r.VBlanking != r.VFrontPorch+r.VSyncPulse+r.VBackPorch {
		return internalf("v_blanking %d != %d+%d+%d", r.VBlanking, r.VFrontPorch, r.VSyncPulse, r.VBackPorch)
	}
	if r.VTotal != r.VActive+r.VBlanking {
		return internalf("v_total %d != %d+%d", r.VTotal, r.VActive, r.VBlanking)
	}
	if r.HFrontPorch < 0 || r.VBackPorch < 0 {
		return internalf("negative porch (h_front %d, v_back %d)", r.HFrontPorch, r.VBackPorch)
	}

	switch r.Blanking {
	case Standard:
		if r.HSyncPulse%CellGranularity != 0 || r.HBackPorch%CellGranularity != 0 {
			return internalf("h_sync %d / h_back %d not cell aligned", r.HSyncPulse, r.HBackPorch)
		}
	case Reduced:
		if r.HSyncPulse != RBHSyncPulse || r.HBackPorch != RBHBackPorch {
			return internalf("reduced h_sync %d / h_back %d not fixed", r.HSyncPulse, r.HBackPorch)
		}
	}

	return nil
}
