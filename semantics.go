// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package filex

import (
	"errors"
)

// Status classifies an operation result based on filex's extended semantics.
//
// StatusOK:          success, including a short transfer at end-of-stream.
// StatusRetry:       transient; re-invoke the same call.
// StatusUnsupported: capability absent; use a fallback where one exists.
// StatusStop:        intentional early stop requested by a callback.
// StatusFatal:       failure and the stream position is untrustworthy.
// StatusFailed:      any other error.
//
// Status is a classification of error values, never an ordering: use the
// named predicates (IsFailure, IsFatal, ...) rather than comparing Status
// values numerically.
type Status uint8

const (
	StatusFailed Status = iota
	StatusOK
	StatusRetry
	StatusUnsupported
	StatusStop
	StatusFatal
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusRetry:
		return "Retry"
	case StatusUnsupported:
		return "Unsupported"
	case StatusStop:
		return "Stop"
	case StatusFatal:
		return "Fatal"
	default:
		return "Failed"
	}
}

// IsRetry reports whether err carries the transient-retry semantic.
// It returns true for ErrRetry and wrappers (via errors.Is).
func IsRetry(err error) bool { return errors.Is(err, ErrRetry) }

// IsUnsupported reports whether err signals an absent capability. It
// returns true for ErrUnsupported, the standard errors.ErrUnsupported,
// and wrappers of either.
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupported) || errors.Is(err, errors.ErrUnsupported)
}

// IsStop reports whether err carries the early-stop semantic returned by
// a SearchFunc (including wrapped forms).
func IsStop(err error) bool { return errors.Is(err, ErrStop) }

// IsFatal reports whether err was marked with Fatal, meaning the stream
// position is no longer trustworthy.
func IsFatal(err error) bool {
	var fe *fatalError
	return errors.As(err, &fe)
}

// IsFailure reports whether err is a true failure: non-nil and not one of
// the semantic signals (ErrRetry, ErrUnsupported, ErrStop). Fatal errors
// are failures.
func IsFailure(err error) bool {
	return err != nil && !IsRetry(err) && !IsUnsupported(err) && !IsStop(err)
}

// IsNonFailure reports whether err should be treated as a non-failure in
// handle control flow: nil or one of the semantic signals.
//
// Typical usage: decide whether a handle is still usable without logging
// an error or tearing the operation down.
func IsNonFailure(err error) bool { return !IsFailure(err) }

// Classify maps err to a Status. Use when a compact switch is preferred.
//
// Note: This does not attempt to reinterpret standard library sentinels
// like io.EOF; the helpers in this package already absorb end-of-stream
// into their short-transfer success contract.
func Classify(err error) Status {
	if err == nil {
		return StatusOK
	}
	if IsFatal(err) {
		return StatusFatal
	}
	if IsRetry(err) {
		return StatusRetry
	}
	if IsUnsupported(err) {
		return StatusUnsupported
	}
	if IsStop(err) {
		return StatusStop
	}
	return StatusFailed
}
