// SPDX-License-Identifier: MIT
// Package timing: error set.
//
// Every failure is one of three kinds, each with a sentinel for errors.Is and
// a struct carrying detail for errors.As:
//
//	ErrOutOfRange ← *RangeError               (an input outside its domain)
//	ErrMode       ← *ModeError                (an unusable constraint combination)
//	ErrInternal   ← *InternalComputationError (arithmetic failure inside a calculator)
//
// An error never comes with a partially filled Result.

package timing

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrOutOfRange indicates that an input lies outside its documented domain.
	ErrOutOfRange = errors.New("timing: value out of range")

	// ErrMode indicates that the supplied refresh rate / pixel clock
	// combination cannot be dispatched.
	ErrMode = errors.New("timing: invalid calculation mode")

	// ErrInternal indicates that a calculator hit a degenerate intermediate
	// (non-finite frequency, overflowing line count).
	ErrInternal = errors.New("timing: internal computation error")
)

// Field names used in RangeError.Field.
const (
	FieldHActive     = "h_active"
	FieldVActive     = "v_active"
	FieldRefreshRate = "refresh_rate"
	FieldPixelClock  = "pixel_clock"
)

// Reasons used in ModeError.Reason.
const (
	ReasonMissingBoth     = "need at least one of refresh_rate or pixel_clock"
	ReasonBothPresent     = "supply only one of refresh_rate or pixel_clock"
	ReasonUnknownBlanking = "unknown blanking model"
)

// RangeError names the offending field, its value and the accepted bounds.
// Max is +Inf for fields without an upper bound; MinExclusive marks a
// strict lower bound (pixel_clock > 0).
type RangeError struct {
	Field        string
	Value        float64
	Min, Max     float64
	MinExclusive bool
}

func (e *RangeError) Error() string {
	if math.IsInf(e.Max, 1) {
		if e.MinExclusive {
			return fmt.Sprintf("timing: %s must be > %g, got %g", e.Field, e.Min, e.Value)
		}
		return fmt.Sprintf("timing: %s must be >= %g, got %g", e.Field, e.Min, e.Value)
	}
	return fmt.Sprintf("timing: %s must be in [%g, %g], got %g", e.Field, e.Min, e.Max, e.Value)
}

// Is reports target == ErrOutOfRange.
func (e *RangeError) Is(target error) bool { return target == ErrOutOfRange }

// ModeError explains why no calculator could be selected.
type ModeError struct {
	Reason string
}

func (e *ModeError) Error() string { return "timing: " + e.Reason }

// Is reports target == ErrMode.
func (e *ModeError) Is(target error) bool { return target == ErrMode }

// InternalComputationError carries the message of an arithmetic failure.
type InternalComputationError struct {
	Detail string
}

func (e *InternalComputationError) Error() string {
	return "timing: internal computation error: " + e.Detail
}

// Is reports target == ErrInternal.
func (e *InternalComputationError) Is(target error) bool { return target == ErrInternal }

// internalf builds an InternalComputationError from a formatted detail.
func internalf(format string, args ...interface{}) error {
	return &InternalComputationError{Detail: fmt.Sprintf(format, args...)}
}
