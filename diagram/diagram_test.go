package diagram_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vesatiming/diagram"
	"github.com/katalvlaran/vesatiming/timing"
)

func forward1080(t *testing.T) timing.Result {
	t.Helper()
	res, err := timing.Forward(1920, 1080, 60, timing.Standard)
	require.NoError(t, err)
	return res
}

func TestRender_SizeKeepsAspect(t *testing.T) {
	res := forward1080(t) // 2200 x 1120

	img, err := diagram.Render(res, diagram.Options{})
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 407, img.Bounds().Dy())

	img, err = diagram.Render(res, diagram.Options{Width: 1100})
	require.NoError(t, err)
	assert.Equal(t, 1100, img.Bounds().Dx())
	assert.Equal(t, 560, img.Bounds().Dy())
}

func TestRender_Bands(t *testing.T) {
	img, err := diagram.Render(forward1080(t), diagram.Options{FontSize: -1})
	require.NoError(t, err)

	cases := []struct {
		name string
		x, y int
		want any
	}{
		{"active", 100, 100, diagram.ActiveColor},
		{"h front porch", 720, 100, diagram.FrontPorchColor},
		{"h sync", 749, 100, diagram.SyncColor},
		{"h back porch", 770, 100, diagram.BackPorchColor},
		{"v front porch", 100, 393, diagram.FrontPorchColor},
		{"v sync", 100, 394, diagram.SyncColor},
		{"v back porch", 100, 400, diagram.BackPorchColor},
		{"corner front", 770, 393, diagram.FrontPorchColor},
		{"corner sync", 749, 400, diagram.SyncColor},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, img.RGBAAt(tc.x, tc.y), tc.name)
	}
}

func TestRender_ActiveBandIsCellAligned(t *testing.T) {
	// 1366 active pixels round to 1360 cells; h_total is 1360 + 280.
	res, err := timing.Forward(1366, 768, 60, timing.Standard)
	require.NoError(t, err)
	require.Equal(t, 1640, res.HTotal)

	img, err := diagram.Render(res, diagram.Options{Width: res.HTotal, FontSize: -1})
	require.NoError(t, err)
	assert.Equal(t, diagram.ActiveColor, img.RGBAAt(1359, 10))
	assert.Equal(t, diagram.FrontPorchColor, img.RGBAAt(1360, 10))
	assert.Equal(t, diagram.FrontPorchColor, img.RGBAAt(1365, 10))
	assert.Equal(t, diagram.SyncColor, img.RGBAAt(1360+res.HFrontPorch, 10))
}

func TestRender_LabelsDrawInsideActive(t *testing.T) {
	res := forward1080(t)
	plain, err := diagram.Render(res, diagram.Options{FontSize: -1})
	require.NoError(t, err)
	labelled, err := diagram.Render(res, diagram.Options{})
	require.NoError(t, err)

	assert.NotEqual(t, plain.Pix, labelled.Pix)
	// the blanking bands are untouched by text
	assert.Equal(t, plain.RGBAAt(749, 100), labelled.RGBAAt(749, 100))
	assert.Equal(t, plain.RGBAAt(100, 400), labelled.RGBAAt(100, 400))
}

func TestRender_Errors(t *testing.T) {
	_, err := diagram.Render(timing.Result{}, diagram.Options{})
	assert.ErrorIs(t, err, diagram.ErrEmptyTiming)

	res := forward1080(t)
	for _, w := range []int{-1, diagram.MaxWidth + 1} {
		_, err = diagram.Render(res, diagram.Options{Width: w})
		assert.ErrorIs(t, err, diagram.ErrBadWidth, "width=%d", w)
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, diagram.WritePNG(&buf, forward1080(t), diagram.Options{Width: 400}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 204, img.Bounds().Dy())
}
