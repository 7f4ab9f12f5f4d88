// SPDX-License-Identifier: MIT

package timing

// Input domains.
const (
	HActiveMin     = 640
	HActiveMax     = 7680
	VActiveMin     = 480
	VActiveMax     = 4320
	RefreshRateMin = 24.0
	RefreshRateMax = 240.0
)

// CellGranularity is the multiple to which horizontal pixel counts are aligned.
const CellGranularity = 8

// Shared vertical constant.
const MinVFrontPorch = 3 // lines, both blanking models

// Standard CVT constants.
const (
	HSyncPercent        = 8.0   // horizontal sync as a percentage of blanking
	MinVSyncBackPorch   = 550.0 // µs, minimum vertical sync + back porch
	StdVSyncPulse       = 4     // lines
	StdVBackPorchSeed   = 10    // lines, seed for the line-time estimate
	StdMinVBackPorch    = 1     // lines
	stdHBlankNarrow     = 256   // h_act <= 1024
	stdHBlankHD         = 320   // h_act <= 1280
	stdHBlankFullHD     = 280   // h_act <= 1920
	stdHBlankWide       = 288   // everything wider
	stdBracketNarrowMax = 1024
	stdBracketHDMax     = 1280
	stdBracketFullHDMax = 1920
)

// Reduced blanking (CVT-RB) constants.
const (
	RBHBlank        = 160   // pixels
	RBHSyncPulse    = 32    // pixels
	RBHBackPorch    = 80    // pixels
	RBHFrontPorch   = RBHBlank - RBHSyncPulse - RBHBackPorch
	RBVBlankTime    = 460.0 // µs, minimum vertical blanking
	RBVSyncPulse    = 8     // lines
	RBMinVBackPorch = 6     // lines
)

// Refinement bounds. Changing any of these changes observable output.
const (
	ReverseMaxRounds = 5
	DualMaxRounds    = 10
	DualTolerance    = 0.01 // MHz
)

// maxLines caps any derived line count; anything beyond is treated as an
// arithmetic failure rather than a timing.
const maxLines = 1 << 30
