// Package diagram draws a timing.Result as a frame map: the active picture
// with the porch and sync bands of both axes around it, scaled to a chosen
// width and labelled with the Go regular font.
package diagram

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/katalvlaran/vesatiming/timing"
)

const (
	// DefaultWidth is the image width used when Options.Width is zero.
	DefaultWidth = 800
	// MaxWidth bounds Options.Width.
	MaxWidth = 8192
	// DefaultFontSize is the label size in points at 72 DPI.
	DefaultFontSize = 12
)

var (
	// ErrEmptyTiming indicates a result with zero totals.
	ErrEmptyTiming = errors.New("diagram: timing has no pixels or lines")
	// ErrBadWidth indicates a width outside [1, MaxWidth].
	ErrBadWidth = errors.New("diagram: width out of range")
)

// Band colors.
var (
	ActiveColor     = color.RGBA{R: 0x3c, G: 0x8d, B: 0x5a, A: 0xff}
	FrontPorchColor = color.RGBA{R: 0x9a, G: 0xa5, B: 0xb1, A: 0xff}
	BackPorchColor  = color.RGBA{R: 0x5f, G: 0x6b, B: 0x78, A: 0xff}
	SyncColor       = color.RGBA{R: 0xb8, G: 0x3b, B: 0x3b, A: 0xff}
	LabelColor      = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Options control rendering. The zero value is usable.
type Options struct {
	Width    int     // output width in pixels; 0 means DefaultWidth
	FontSize float64 // label size; 0 means DefaultFontSize, negative hides labels
}

// band is the kind of a column or row of the frame.
type band uint8

const (
	bandActive band = iota
	bandFront
	bandSync
	bandBack
)

func colorOf(col, row band) color.RGBA {
	switch {
	case col == bandActive && row == bandActive:
		return ActiveColor
	case col == bandSync || row == bandSync:
		return SyncColor
	case col == bandFront || row == bandFront:
		return FrontPorchColor
	default:
		return BackPorchColor
	}
}

// edges scales the band boundaries of one axis onto [0, size].
func edges(active, front, sync, total, size int) [5]int {
	scale := func(v int) int {
		return int(math.Round(float64(v) * float64(size) / float64(total)))
	}
	return [5]int{0, scale(active), scale(active + front), scale(active + front + sync), size}
}

// Size returns the image dimensions Render produces for res.
func Size(res timing.Result, opts Options) (image.Point, error) {
	if res.HTotal <= 0 || res.VTotal <= 0 {
		return image.Point{}, ErrEmptyTiming
	}
	w := opts.Width
	if w == 0 {
		w = DefaultWidth
	}
	if w < 1 || w > MaxWidth {
		return image.Point{}, fmt.Errorf("%w: %d", ErrBadWidth, opts.Width)
	}
	h := max(int(math.Round(float64(w)*float64(res.VTotal)/float64(res.HTotal))), 1)
	return image.Pt(w, h), nil
}

// Render draws res. The width defaults to DefaultWidth and the height keeps
// the h_total:v_total aspect.
func Render(res timing.Result, opts Options) (*image.RGBA, error) {
	size, err := Size(res, opts)
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))

	// The horizontal active band is the cell-aligned width that h_total is
	// built from, which can be a few pixels short of HActive.
	xs := edges(res.HTotal-res.HBlanking, res.HFrontPorch, res.HSyncPulse, res.HTotal, size.X)
	ys := edges(res.VActive, res.VFrontPorch, res.VSyncPulse, res.VTotal, size.Y)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r := image.Rect(xs[col], ys[row], xs[col+1], ys[row+1])
			if r.Empty() {
				continue
			}
			c := colorOf(band(col), band(row))
			draw.Draw(img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
		}
	}

	if opts.FontSize >= 0 {
		if err := label(img, res, image.Rect(0, 0, xs[1], ys[1]), opts.FontSize); err != nil {
			return nil, err
		}
	}
	return img, nil
}

// WritePNG renders res and encodes it as PNG to w.
func WritePNG(w io.Writer, res timing.Result, opts Options) error {
	img, err := Render(res, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("diagram: encode png: %w", err)
	}
	return nil
}

var goRegular = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// label writes the mode summary lines into the top-left of the active area,
// dropping lines that do not fit.
func label(dst draw.Image, res timing.Result, area image.Rectangle, size float64) error {
	if size == 0 {
		size = DefaultFontSize
	}
	f, err := goRegular()
	if err != nil {
		return fmt.Errorf("diagram: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return fmt.Errorf("diagram: font face: %w", err)
	}
	defer func() { _ = face.Close() }()

	lines := []string{
		fmt.Sprintf("%dx%d @ %.2f Hz  %.2f MHz", res.HActive, res.VActive, res.RefreshRate, res.PixelClock),
		fmt.Sprintf("%s %s", res.Blanking, res.Mode),
		fmt.Sprintf("H %d = %d + %d + %d + %d", res.HTotal, res.HTotal-res.HBlanking, res.HFrontPorch, res.HSyncPulse, res.HBackPorch),
		fmt.Sprintf("V %d = %d + %d + %d + %d", res.VTotal, res.VActive, res.VFrontPorch, res.VSyncPulse, res.VBackPorch),
	}

	m := face.Metrics()
	lineH := (m.Ascent + m.Descent).Ceil()
	margin := fixed.I(lineH / 2)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(LabelColor), Face: face}
	y := fixed.I(area.Min.Y) + margin + m.Ascent
	for _, s := range lines {
		if (y + m.Descent).Ceil() > area.Max.Y {
			break
		}
		if fixed.I(area.Min.X)+margin+d.MeasureString(s) > fixed.I(area.Max.X) {
			continue
		}
		d.Dot = fixed.Point26_6{X: fixed.I(area.Min.X) + margin, Y: y}
		d.DrawString(s)
		y += fixed.I(lineH)
	}
	return nil
}
