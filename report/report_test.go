package report_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/katalvlaran/vesatiming/report"
	"github.com/katalvlaran/vesatiming/timing"
)

func forward1080(t *testing.T) timing.Result {
	t.Helper()
	res, err := timing.Forward(1920, 1080, 60, timing.Standard)
	require.NoError(t, err)
	return res
}

func TestCopyText_Forward(t *testing.T) {
	got := report.CopyText(forward1080(t), language.English)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "Pixel Clock: 147.84 MHz", lines[0])
	assert.Equal(t, "H Total: 2200 pixels", lines[1])
	assert.Equal(t, "V Back Porch: 33 lines", lines[10])
	assert.NotContains(t, got, "Refresh Rate")
	assert.False(t, strings.HasSuffix(got, "\n"))
}

func TestCopyText_ReverseIncludesRefresh(t *testing.T) {
	res, err := timing.Reverse(1920, 1080, 148.5, timing.Standard)
	require.NoError(t, err)

	lines := strings.Split(report.CopyText(res, language.English), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "Refresh Rate: 60.21 Hz", lines[1])
}

func TestCopyText_Chinese(t *testing.T) {
	got := report.CopyText(forward1080(t), language.SimplifiedChinese)
	assert.True(t, strings.HasPrefix(got, "像素时钟: 147.84 MHz"))
	assert.Contains(t, got, "垂直后廊: 33 lines")
}

func TestTable_Alignment(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Table(&buf, forward1080(t), language.English))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "Pixel Clock    147.84 MHz", lines[0])
	assert.Equal(t, "H Total          2200 pixels", lines[1])
	// every value column ends at the same offset before the unit
	end := strings.Index(lines[0], " MHz")
	for _, l := range lines[1:] {
		assert.Equal(t, end, strings.LastIndex(l, " "), l)
	}
}

func TestTable_ChineseWidth(t *testing.T) {
	assert.Equal(t, 8, report.DisplayWidth("像素时钟"))
	assert.Equal(t, 5, report.DisplayWidth("H Tot"))

	var buf bytes.Buffer
	require.NoError(t, report.Table(&buf, forward1080(t), language.SimplifiedChinese))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	end := report.DisplayWidth(lines[0][:strings.Index(lines[0], " MHz")])
	for _, l := range lines[1:] {
		assert.Equal(t, end, report.DisplayWidth(l[:strings.LastIndex(l, " ")]), l)
	}
}

func TestErrorTable(t *testing.T) {
	_, err := timing.Forward(100, 1080, 60, timing.Standard)
	require.Error(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.ErrorTable(&buf, err, language.English))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 13)
	assert.Equal(t, "Error: timing: h_active must be in [640, 7680], got 100", lines[0])
	assert.Equal(t, "Pixel Clock", lines[1])
	assert.Equal(t, "V Back Porch", lines[12])
}

func TestErrorText(t *testing.T) {
	err := errors.New("boom")
	assert.Equal(t, "Error: boom", report.ErrorText(err, language.English))
	assert.Equal(t, "错误: boom", report.ErrorText(err, language.SimplifiedChinese))
	assert.Equal(t, "", report.ErrorText(nil, language.English))
}

func TestMatchLanguage(t *testing.T) {
	cases := map[string]language.Tag{
		"":            language.English,
		"C":           language.English,
		"POSIX":       language.English,
		"en_US.UTF-8": language.English,
		"en-GB":       language.English,
		"zh_CN.UTF-8": language.SimplifiedChinese,
		"zh-Hans":     language.SimplifiedChinese,
		"zh_SG":       language.SimplifiedChinese,
		"fr_FR.UTF-8": language.English,
		"!!garbage":   language.English,
	}
	for in, want := range cases {
		assert.Equal(t, want, report.MatchLanguage(in), in)
	}
}

func TestLabel_UnknownFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, "Pixel Clock", report.Label(timing.ParamPixelClock, language.German))
	assert.Equal(t, "像素时钟", report.Label(timing.ParamPixelClock, language.Chinese))
}

func TestJSON_Forward(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.JSON(&buf, forward1080(t)))
	assert.Contains(t, buf.String(), "\n  \"pixel_clock\": 147.84,\n")
	assert.NotContains(t, buf.String(), "refresh_rate")

	var got report.ResultV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, report.SchemaV1, got.Schema)
	assert.Equal(t, "forward", got.Mode)
	assert.Equal(t, "standard", got.Blanking)
	assert.Equal(t, 2200, got.HTotal)
	assert.Equal(t, 1120, got.VTotal)
	assert.Nil(t, got.RefreshRate)
}

func TestJSON_ReverseCarriesRefresh(t *testing.T) {
	res, err := timing.Reverse(1920, 1080, 148.5, timing.Reduced)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.JSON(&buf, res))

	var got report.ResultV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.NotNil(t, got.RefreshRate)
	assert.Equal(t, 64.15, *got.RefreshRate)
	assert.Equal(t, "reverse", got.Mode)
	assert.Equal(t, "reduced", got.Blanking)
}

func TestJSON_DualCarriesRefresh(t *testing.T) {
	res, err := timing.Dual(1920, 1080, 60, 148.5, timing.Standard)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.JSON(&buf, res))

	var got report.ResultV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.NotNil(t, got.RefreshRate)
	assert.Equal(t, 60.0, *got.RefreshRate)
	assert.Equal(t, "dual", got.Mode)

	lines := strings.Split(report.CopyText(res, language.English), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "Refresh Rate: 60.00 Hz", lines[1])
}

func TestJSONError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.JSONError(&buf, errors.New("timing: bad")))
	assert.JSONEq(t, `{"schema":"vesatiming.result.v1","error":"timing: bad"}`, buf.String())
}
