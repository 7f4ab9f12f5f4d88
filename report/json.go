package report

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/vesatiming/timing"
)

// SchemaV1 identifies the JSON layout produced by JSON.
const SchemaV1 = "vesatiming.result.v1"

// ResultV1 is the machine-readable rendering of a timing.Result.
// RefreshRate is present in reverse mode, where it is derived from the pixel
// clock, and in dual mode, where it is one of the two constraints.
type ResultV1 struct {
	Schema      string   `json:"schema"`
	Mode        string   `json:"mode"`
	Blanking    string   `json:"blanking"`
	HActive     int      `json:"h_active"`
	VActive     int      `json:"v_active"`
	PixelClock  float64  `json:"pixel_clock"`
	RefreshRate *float64 `json:"refresh_rate,omitempty"`
	HTotal      int      `json:"h_total"`
	HBlanking   int      `json:"h_blanking"`
	HFrontPorch int      `json:"h_front_porch"`
	HSyncPulse  int      `json:"h_sync_pulse"`
	HBackPorch  int      `json:"h_back_porch"`
	VTotal      int      `json:"v_total"`
	VBlanking   int      `json:"v_blanking"`
	VFrontPorch int      `json:"v_front_porch"`
	VSyncPulse  int      `json:"v_sync_pulse"`
	VBackPorch  int      `json:"v_back_porch"`
}

// ErrorV1 is the JSON body written for a failed computation.
type ErrorV1 struct {
	Schema string `json:"schema"`
	Error  string `json:"error"`
}

// NewResultV1 converts res to its JSON schema.
func NewResultV1(res timing.Result) ResultV1 {
	out := ResultV1{
		Schema:      SchemaV1,
		Mode:        res.Mode.String(),
		Blanking:    res.Blanking.String(),
		HActive:     res.HActive,
		VActive:     res.VActive,
		PixelClock:  res.PixelClock,
		HTotal:      res.HTotal,
		HBlanking:   res.HBlanking,
		HFrontPorch: res.HFrontPorch,
		HSyncPulse:  res.HSyncPulse,
		HBackPorch:  res.HBackPorch,
		VTotal:      res.VTotal,
		VBlanking:   res.VBlanking,
		VFrontPorch: res.VFrontPorch,
		VSyncPulse:  res.VSyncPulse,
		VBackPorch:  res.VBackPorch,
	}
	if res.RefreshReported {
		r := res.RefreshRate
		out.RefreshRate = &r
	}
	return out
}

// JSON writes res as indented ResultV1 JSON followed by a newline.
func JSON(w io.Writer, res timing.Result) error {
	return encodePretty(w, NewResultV1(res))
}

// JSONError writes err as an indented ErrorV1 body.
func JSONError(w io.Writer, err error) error {
	return encodePretty(w, ErrorV1{Schema: SchemaV1, Error: err.Error()})
}

func encodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
