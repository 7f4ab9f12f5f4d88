package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/width"

	"github.com/katalvlaran/vesatiming/timing"
)

// row is one rendered parameter.
type row struct {
	label string
	value string
	unit  string
}

func rows(res timing.Result, tag language.Tag) []row {
	params := res.Params()
	out := make([]row, len(params))
	for i, p := range params {
		out[i] = row{label: Label(p.Name, tag), value: FormatValue(p), unit: p.Unit}
	}
	return out
}

// blankRows lists every parameter label with empty values, as shown after a
// failed computation.
func blankRows(tag language.Tag) []row {
	names := []string{
		timing.ParamPixelClock, timing.ParamRefreshRate,
		timing.ParamHTotal, timing.ParamHBlanking, timing.ParamHFrontPorch,
		timing.ParamHSyncPulse, timing.ParamHBackPorch,
		timing.ParamVTotal, timing.ParamVBlanking, timing.ParamVFrontPorch,
		timing.ParamVSyncPulse, timing.ParamVBackPorch,
	}
	out := make([]row, len(names))
	for i, n := range names {
		out[i] = row{label: Label(n, tag)}
	}
	return out
}

// FormatValue renders a parameter value: integers plainly, clock and refresh
// with two decimals.
func FormatValue(p timing.Param) string {
	if p.Integer {
		return strconv.Itoa(int(p.Value))
	}
	return strconv.FormatFloat(p.Value, 'f', 2, 64)
}

// DisplayWidth is the terminal column width of s. East Asian wide and
// fullwidth runes count as two columns.
func DisplayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

func pad(s string, w int) string {
	if d := w - DisplayWidth(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}

func writeRows(w io.Writer, rs []row) error {
	labelW, valueW := 0, 0
	for _, r := range rs {
		labelW = max(labelW, DisplayWidth(r.label))
		valueW = max(valueW, len(r.value))
	}
	for _, r := range rs {
		line := pad(r.label, labelW) + "  " + strings.Repeat(" ", valueW-len(r.value)) + r.value
		if r.unit != "" && r.value != "" {
			line += " " + r.unit
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

// Table writes res as an aligned table with labels in tag's language.
// Refresh Rate appears in reverse and dual mode only.
func Table(w io.Writer, res timing.Result, tag language.Tag) error {
	return writeRows(w, rows(res, tag))
}

// ErrorTable writes the localized error line followed by the parameter labels
// with their values blanked.
func ErrorTable(w io.Writer, err error, tag language.Tag) error {
	if _, werr := fmt.Fprintln(w, ErrorText(err, tag)); werr != nil {
		return werr
	}
	return writeRows(w, blankRows(tag))
}

// CopyText renders res as "Label: value unit" lines, one per parameter and
// newline-separated, without a trailing newline.
func CopyText(res timing.Result, tag language.Tag) string {
	rs := rows(res, tag)
	lines := make([]string, len(rs))
	for i, r := range rs {
		lines[i] = r.label + ": " + r.value + " " + r.unit
	}
	return strings.Join(lines, "\n")
}

// ErrorText renders err as a single localized line, for example
// "Error: timing: h_active must be in [640, 7680], got 100".
func ErrorText(err error, tag language.Tag) string {
	if err == nil {
		return ""
	}
	return printer(tag).Sprintf(keyError, err.Error())
}
