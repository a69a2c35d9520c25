// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package filex

// Package filex provides byte-stream utilities that operate on borrowed
// standard io capabilities: full-transfer read/write, discard-based
// positioning for non-seekable streams, bounded-memory binary pattern
// search, and an overlap-safe range move.
//
// Extended result semantics
//   - ErrRetry: the handle hit a transient condition; re-invoke the same
//     call. Full-transfer helpers absorb it and never surface it unless a
//     RetryPolicy says otherwise.
//   - ErrUnsupported: the handle lacks a capability (typically seek).
//     Helpers fall back to a slower but correct strategy where one exists;
//     otherwise the error propagates unchanged.
//   - ErrStop: returned by a SearchFunc to stop a search early without
//     failing it. Search translates it to a nil result.
//   - Fatal(err): the stream position is no longer trustworthy. Callers
//     must reposition before reusing the handle.
//
// A handle must not be shared by more than one in-flight operation; the
// helpers perform no locking of their own. After a failed or aborted
// Search or Move, the stream position is undefined.
