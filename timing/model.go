package timing

import (
	"math"
	"strconv"
)

// horizontal is a horizontal timing set in pixels. It does not depend on the
// refresh rate or pixel clock.
type horizontal struct {
	total, blanking, front, sync, back int
}

// vertical is a vertical timing set in lines.
type vertical struct {
	total, blanking, front, sync, back int
}

// blankingModel holds the per-model constants that the reverse and dual
// calculators iterate against.
type blankingModel struct {
	vFrontPorch   int
	vSyncPulse    int
	seedBackPorch int
	minBackPorch  int
	horizontal    func(hActive int) horizontal
}

var (
	standardModel = blankingModel{
		vFrontPorch:   MinVFrontPorch,
		vSyncPulse:    StdVSyncPulse,
		seedBackPorch: StdVBackPorchSeed,
		minBackPorch:  StdMinVBackPorch,
		horizontal:    standardHorizontal,
	}
	reducedModel = blankingModel{
		vFrontPorch:   MinVFrontPorch,
		vSyncPulse:    RBVSyncPulse,
		seedBackPorch: RBMinVBackPorch,
		minBackPorch:  RBMinVBackPorch,
		horizontal:    reducedHorizontal,
	}
)

func modelFor(b Blanking) blankingModel {
	if b == Reduced {
		return reducedModel
	}
	return standardModel
}

// minBlanking is front + sync + the minimum back porch.
func (m blankingModel) minBlanking() int {
	return m.vFrontPorch + m.vSyncPulse + m.minBackPorch
}

// vertical assembles the vertical set for a back porch.
func (m blankingModel) vertical(vActive, backPorch int) vertical {
	blanking := m.vFrontPorch + m.vSyncPulse + backPorch
	return vertical{
		total:    vActive + blanking,
		blanking: blanking,
		front:    m.vFrontPorch,
		sync:     m.vSyncPulse,
		back:     backPorch,
	}
}

// fromBlanking assembles the vertical set for a total blanking line count.
func (m blankingModel) fromBlanking(vActive, blanking int) vertical {
	return m.vertical(vActive, blanking-m.vFrontPorch-m.vSyncPulse)
}

// standardHorizontal selects blanking by active-width bracket, then derives
// an 8 % sync pulse (rounded up to a cell) and a centered back porch (rounded
// down to a cell). The front porch takes the remainder.
func standardHorizontal(hActive int) horizontal {
	act := round8(hActive)

	var blankPixels int
	switch {
	case act <= stdBracketNarrowMax:
		blankPixels = stdHBlankNarrow
	case act <= stdBracketHDMax:
		blankPixels = stdHBlankHD
	case act <= stdBracketFullHDMax:
		blankPixels = stdHBlankFullHD
	default:
		blankPixels = stdHBlankWide
	}
	blanking := ceil8(blankPixels)

	sync := int(math.RoundToEven(float64(blanking) * HSyncPercent / 100.0))
	sync = ceil8(sync)

	back := round8(blanking/2 - sync/2)
	front := blanking - sync - back

	return horizontal{total: act + blanking, blanking: blanking, front: front, sync: sync, back: back}
}

// reducedHorizontal returns the fixed CVT-RB horizontal set.
func reducedHorizontal(hActive int) horizontal {
	return horizontal{
		total:    round8(hActive) + RBHBlank,
		blanking: RBHBlank,
		front:    RBHFrontPorch,
		sync:     RBHSyncPulse,
		back:     RBHBackPorch,
	}
}

// round8 truncates x to a multiple of CellGranularity.
func round8(x int) int { return (x / CellGranularity) * CellGranularity }

// ceil8 rounds x up to a multiple of CellGranularity.
func ceil8(x int) int { return ((x + CellGranularity - 1) / CellGranularity) * CellGranularity }

// ceilLines converts a fractional line requirement to a whole line count.
// Non-finite or absurd values are reported as internal errors; the name
// identifies the quantity in the message.
func ceilLines(name string, x float64) (int, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, internalf("%s is not finite (%g)", name, x)
	}
	c := math.Ceil(x)
	if c > maxLines || c < -maxLines {
		return 0, internalf("%s overflows line count (%g)", name, c)
	}

	return int(c), nil
}

// finite reports a non-finite intermediate as an internal error.
func finite(name string, x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return internalf("%s is not finite (%g)", name, x)
	}
	return nil
}

// round2 rounds to two decimals using the correctly rounded decimal form of x.
func round2(x float64) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	if err != nil {
		return math.Round(x*100) / 100
	}
	return v
}

// assemble builds a Result for req from computed sets.
func assemble(req Request, mode Mode, h horizontal, v vertical) Result {
	return Result{
		Mode:        mode,
		Blanking:    req.Blanking,
		HActive:     req.HActive,
		VActive:     req.VActive,
		HTotal:      h.total,
		HBlanking:   h.blanking,
		HFrontPorch: h.front,
		HSyncPulse:  h.sync,
		HBackPorch:  h.back,
		VTotal:      v.total,
		VBlanking:   v.blanking,
		VFrontPorch: v.front,
		VSyncPulse:  v.sync,
		VBackPorch:  v.back,
	}
}
