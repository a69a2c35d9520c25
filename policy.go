// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package filex

import "runtime"

// Op identifies where a transient signal (ErrRetry) came from.
//
// This is intentionally coarse-grained: it lets a RetryPolicy distinguish
// reader-side from writer-side transients, or treat positioning reads
// differently from payload reads.
type Op uint8

const (
	OpRead Op = iota
	OpWrite

	OpDiscard
	OpSearchFill

	OpMoveRead
	OpMoveWrite
)

func (op Op) String() string {
	switch op {
	case OpRead:
		return "Read"
	case OpWrite:
		return "Write"
	case OpDiscard:
		return "Discard"
	case OpSearchFill:
		return "SearchFill"
	case OpMoveRead:
		return "MoveRead"
	case OpMoveWrite:
		return "MoveWrite"
	default:
		return "Op(unknown)"
	}
}

// PolicyAction tells a full-transfer loop whether it should surface the
// transient error to the caller or attempt the operation again.
type PolicyAction uint8

const (
	// PolicyReturn means: stop retrying and return ErrRetry to the caller
	// together with the progress made so far.
	PolicyReturn PolicyAction = iota

	// PolicyRetry means: do not return; retry after waiting/yielding.
	PolicyRetry
)

// RetryPolicy customizes how the full-transfer loops react to ErrRetry.
//
// A nil RetryPolicy everywhere in this package means the original
// contract: unbounded immediate same-goroutine re-invocation, trusting
// the handle to make progress or eventually report a terminal status.
//
// Contract expectations:
//   - OnRetry is only consulted for ErrRetry outcomes.
//   - If PolicyRetry is returned, the loop calls Yield(op) and retries.
//   - If Yield(op) does not actually wait for the transient condition to
//     clear, the loop may spin.
//
// A policy may carry per-call state (see LimitPolicy); do not share one
// instance between concurrent operations.
type RetryPolicy interface {
	Yield(op Op)
	OnRetry(op Op) PolicyAction
}

// PolicyFunc is a convenience implementation for callers that want to
// inject behavior without defining a struct type.
//
// Default behaviors when fields are nil:
//   - YieldFunc: calls runtime.Gosched() to yield the processor
//   - RetryFunc: returns PolicyReturn (caller handles ErrRetry)
type PolicyFunc struct {
	YieldFunc func(op Op)
	RetryFunc func(op Op) PolicyAction
}

func (p PolicyFunc) Yield(op Op) {
	if p.YieldFunc != nil {
		p.YieldFunc(op)
		return
	}
	runtime.Gosched()
}

func (p PolicyFunc) OnRetry(op Op) PolicyAction {
	if p.RetryFunc != nil {
		return p.RetryFunc(op)
	}
	return PolicyReturn
}

// ReturnPolicy is the simplest policy: never waits and never retries.
// Every ErrRetry surfaces immediately to the caller with exact progress.
type ReturnPolicy struct{}

func (ReturnPolicy) Yield(Op) {}

func (ReturnPolicy) OnRetry(Op) PolicyAction { return PolicyReturn }

// YieldPolicy retries every transient outcome, yielding the processor
// between attempts. It is the explicit spelling of the nil-policy
// behavior, with a hook for a custom wait strategy.
//
// Default Yield behavior: runtime.Gosched().
type YieldPolicy struct {
	// YieldFunc is invoked before each retry. It may spin, park, poll,
	// run an event-loop tick, etc.
	YieldFunc func(op Op)
}

func (p YieldPolicy) Yield(op Op) {
	if p.YieldFunc != nil {
		p.YieldFunc(op)
		return
	}
	runtime.Gosched()
}

func (YieldPolicy) OnRetry(Op) PolicyAction { return PolicyRetry }

// LimitPolicy retries at most N times across one operation, then lets
// ErrRetry surface to the caller. It bounds the otherwise unbounded
// retry contract without changing it silently.
//
// LimitPolicy carries per-call state: use a fresh instance (or Reset)
// for each operation.
type LimitPolicy struct {
	// N is the maximum number of retries. N <= 0 never retries.
	N int

	// YieldFunc is invoked before each retry. Defaults to runtime.Gosched().
	YieldFunc func(op Op)

	used int
}

func (p *LimitPolicy) Yield(op Op) {
	if p.YieldFunc != nil {
		p.YieldFunc(op)
		return
	}
	runtime.Gosched()
}

func (p *LimitPolicy) OnRetry(Op) PolicyAction {
	if p.used >= p.N {
		return PolicyReturn
	}
	p.used++
	return PolicyRetry
}

// Used returns the number of retries consumed so far.
func (p *LimitPolicy) Used() int { return p.used }

// Reset makes the policy reusable for a new operation.
func (p *LimitPolicy) Reset() { p.used = 0 }
