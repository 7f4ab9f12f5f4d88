// SPDX-License-Identifier: MIT

package rtl

import "errors"

var (
	// ErrBadModuleName indicates a module name that is not a plain Verilog
	// identifier, or that collides with a reserved word.
	ErrBadModuleName = errors.New("rtl: module name is not a Verilog identifier")

	// ErrEmptyTiming indicates a result with zero totals, such as the zero
	// value of timing.Result.
	ErrEmptyTiming = errors.New("rtl: timing has no pixels or lines")
)
