package timing

// Blanking selects the CVT blanking model.
//
//   - Standard: general-purpose CVT blanking (CRT-era porches).
//   - Reduced:  CVT Reduced Blanking with fixed, minimal intervals.
type Blanking int

const (
	// Standard is the general CVT blanking model.
	Standard Blanking = iota

	// Reduced is CVT-RB, suited to digital display interfaces.
	Reduced
)

// String returns "standard" or "reduced".
func (b Blanking) String() string {
	switch b {
	case Standard:
		return "standard"
	case Reduced:
		return "reduced"
	default:
		return "unknown"
	}
}

// Mode is the calculation direction chosen by SelectMode.
type Mode int

const (
	// ModeForward derives the pixel clock from a refresh rate.
	ModeForward Mode = iota

	// ModeReverse derives the refresh rate from a pixel clock.
	ModeReverse

	// ModeDual fits the timing to a refresh rate and a pixel clock together.
	ModeDual
)

// String returns "forward", "reverse" or "dual".
func (m Mode) String() string {
	switch m {
	case ModeForward:
		return "forward"
	case ModeReverse:
		return "reverse"
	case ModeDual:
		return "dual"
	default:
		return "unknown"
	}
}

// Request is one timing computation. A nil RefreshRate or PixelClock means
// the caller did not supply it.
type Request struct {
	HActive     int      // pixels, 640..7680
	VActive     int      // lines, 480..4320
	RefreshRate *float64 // Hz, 24..240
	PixelClock  *float64 // MHz, > 0
	Blanking    Blanking
}

// Value returns a pointer to v, for the optional Request fields.
func Value(v float64) *float64 { return &v }

// Result is a complete timing set. Horizontal counts are pixels, vertical
// counts are lines.
type Result struct {
	Mode     Mode
	Blanking Blanking

	// Echoed inputs.
	HActive int
	VActive int

	// PixelClock in MHz, two decimals.
	PixelClock float64

	// RefreshRate in Hz. It is the requested rate in Forward and Dual mode and
	// the derived rate (two decimals) in Reverse mode.
	RefreshRate float64

	// RefreshReported reports whether RefreshRate belongs to the output:
	// derived from the clock in Reverse mode, fixed by the caller in Dual mode.
	RefreshReported bool

	HTotal      int
	HBlanking   int
	HFrontPorch int
	HSyncPulse  int
	HBackPorch  int

	VTotal      int
	VBlanking   int
	VFrontPorch int
	VSyncPulse  int
	VBackPorch  int
}

// Param is one named entry of a Result, in presentation order.
type Param struct {
	Name    string  // snake_case key, e.g. "h_front_porch"
	Value   float64 // the value; integral for pixel and line counts
	Unit    string  // "MHz", "Hz", "pixels" or "lines"
	Integer bool    // true for pixel and line counts
}
