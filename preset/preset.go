// Package preset is the catalog of named display modes offered as shortcuts
// for timing requests, plus a parser for the "WxH@R" shorthand.
//
// The catalog is read-only; All returns a copy so callers cannot edit it.
package preset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/vesatiming/timing"
)

var (
	// ErrUnknownPreset is returned by Lookup for names not in the catalog.
	ErrUnknownPreset = errors.New("preset: unknown preset")

	// ErrBadFormat is returned by Parse when the text is not "WxH@R" or "WxH".
	ErrBadFormat = errors.New("preset: expected WIDTHxHEIGHT[@REFRESH]")
)

// DefaultRefreshRate is used by Parse when the "@R" part is omitted.
const DefaultRefreshRate = 60.0

// Preset is one display mode.
type Preset struct {
	Name        string
	HActive     int
	VActive     int
	RefreshRate float64
	Note        string
}

// Request builds a forward timing request for the preset.
func (p Preset) Request(b timing.Blanking) timing.Request {
	return timing.Request{
		HActive:     p.HActive,
		VActive:     p.VActive,
		RefreshRate: timing.Value(p.RefreshRate),
		Blanking:    b,
	}
}

func (p Preset) String() string { return p.Name }

// the first five entries are the quick picks shown first in preset menus,
// kept in menu order.
var catalog = []Preset{
	mk(1280, 720, 60, "HD"),
	mk(1920, 1080, 60, "Full HD"),
	mk(2560, 1440, 60, "QHD"),
	mk(3840, 2160, 60, "4K UHD"),
	mk(1920, 1200, 60, "WUXGA"),
	mk(640, 480, 60, "VGA"),
	mk(800, 600, 60, "SVGA"),
	mk(1024, 768, 60, "XGA"),
	mk(1280, 1024, 60, "SXGA"),
	mk(1366, 768, 60, "WXGA"),
	mk(1600, 900, 60, "HD+"),
	mk(1680, 1050, 60, "WSXGA+"),
	mk(1920, 1080, 144, "Full HD gaming"),
	mk(2560, 1440, 144, "QHD gaming"),
	mk(3440, 1440, 60, "UWQHD"),
	mk(3840, 2160, 30, "4K UHD"),
	mk(5120, 2880, 60, "5K"),
	mk(7680, 4320, 60, "8K UHD"),
}

func mk(h, v int, r float64, note string) Preset {
	return Preset{Name: Name(h, v, r), HActive: h, VActive: v, RefreshRate: r, Note: note}
}

// Name formats the canonical preset name, e.g. "1920x1080@60".
func Name(h, v int, r float64) string {
	return fmt.Sprintf("%dx%d@%s", h, v, strconv.FormatFloat(r, 'f', -1, 64))
}

// All returns the catalog in display order.
func All() []Preset {
	out := make([]Preset, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a preset by name. Matching ignores case and surrounding
// space, and "1920x1080" finds the 60 Hz entry.
func Lookup(name string) (Preset, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if !strings.Contains(key, "@") {
		key += "@" + strconv.FormatFloat(DefaultRefreshRate, 'f', -1, 64)
	}
	for _, p := range catalog {
		if strings.ToLower(p.Name) == key {
			return p, nil
		}
	}

	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Parse reads "WxH@R" or "WxH" (refresh defaults to 60 Hz) into an ad-hoc
// Preset. It checks syntax only; ranges are left to timing.Validate.
func Parse(s string) (Preset, error) {
	text := strings.ToLower(strings.TrimSpace(s))
	res, rate, hasRate := strings.Cut(text, "@")
	ws, hs, ok := strings.Cut(res, "x")
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrBadFormat, s)
	}

	h, err := strconv.Atoi(strings.TrimSpace(ws))
	if err != nil {
		return Preset{}, fmt.Errorf("%w: %q", ErrBadFormat, s)
	}
	v, err := strconv.Atoi(strings.TrimSpace(hs))
	if err != nil {
		return Preset{}, fmt.Errorf("%w: %q", ErrBadFormat, s)
	}

	r := DefaultRefreshRate
	if hasRate {
		rate = strings.TrimSuffix(strings.TrimSpace(rate), "hz")
		if r, err = strconv.ParseFloat(rate, 64); err != nil {
			return Preset{}, fmt.Errorf("%w: %q", ErrBadFormat, s)
		}
	}

	return Preset{Name: Name(h, v, r), HActive: h, VActive: v, RefreshRate: r}, nil
}

// Resolve returns the catalog entry for s when there is one, and otherwise
// parses s as "WxH@R".
func Resolve(s string) (Preset, error) {
	if p, err := Lookup(s); err == nil {
		return p, nil
	}
	return Parse(s)
}
