// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package filex

import "errors"

// filex introduces three semantic errors for handle-based stream operations.
//
// Mental model:
//   - ErrRetry: transient; re-invoke the same call immediately.
//   - ErrUnsupported: capability gap; switch to a fallback, do not fail.
//   - ErrStop: intentional early stop from a callback; overall success.
//
// Notes:
//   - None of the three is a failure. Classify them before any generic
//     error handling: each requires different compensating logic.
//   - Counts first, semantics second: helpers report exact progress even
//     when they return one of these errors.

// ErrRetry means "no terminal outcome yet; the same call must be
// re-invoked". Full-transfer helpers absorb it transparently: with a nil
// RetryPolicy they re-invoke without bound, trusting the handle to make
// progress or eventually report a terminal status.
var ErrRetry = errors.New("filex: transient, retry")

// ErrUnsupported means the handle does not provide the requested
// capability at all (e.g. seek on a pipe-like stream).
// IsUnsupported also recognizes the standard errors.ErrUnsupported, so
// handles built on the standard library classify correctly.
var ErrUnsupported = errors.New("filex: operation unsupported")

// ErrStop is returned by a SearchFunc to stop the search early.
// Search treats it as an intentional stop and reports overall success.
var ErrStop = errors.New("filex: stop")

// Fatal marks err as fatal: the operation failed and the stream position
// is now unknown, so the caller must not blindly retry against the same
// handle without repositioning. The original error remains reachable via
// errors.Is / errors.As.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &fatalError{err: err}
}

type fatalError struct {
	err error
}

func (e *fatalError) Error() string { return "fatal: " + e.err.Error() }

func (e *fatalError) Unwrap() error { return e.err }
