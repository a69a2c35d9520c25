// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package filex

import (
	"bytes"
	"io"
	"math"

	"github.com/pkg/errors"
)

// DefaultSearchBufferSize is the window size Search uses when the caller
// does not supply a buffer (8 MiB). The effective size is never smaller
// than twice the pattern length.
const DefaultSearchBufferSize = 8 << 20

// SearchFunc is invoked for each match with the absolute stream offset of
// the match's first byte.
//
// The return value steers the search:
//   - nil: continue searching
//   - ErrStop: stop searching; the search reports overall success
//   - any other error: abort the search; the error propagates unchanged
//
// The stream position during the callback is unspecified and is unlikely
// to equal offset. A callback that needs position-stable access to the
// handle must save the position before touching it and restore it before
// returning.
type SearchFunc func(offset int64) error

// Search streams r through a bounded window and reports every
// non-overlapping occurrence of pattern via fn. It is shorthand for
// SearchRange over the whole stream with an unlimited match budget.
func Search(r Reader, pattern []byte, fn SearchFunc) error {
	return search(r, -1, -1, nil, pattern, -1, fn, nil)
}

// SearchRange is like Search restricted to the byte window [start, end).
//
// A negative start means the beginning of the stream; a negative end
// means the end of the stream. A match is reported only if it fits
// entirely below end. maxMatches bounds the number of reported matches;
// negative means unlimited, zero is a trivial success with no I/O.
//
// The stream is positioned at start by seeking when r supports it, and by
// reading and discarding start bytes otherwise. In the fallback case the
// stream must already be at the beginning, and a stream shorter than
// start is a fatal error: the required position cannot be reached and the
// resulting position is undefined.
//
// Matches never overlap: after a match at offset o of length len(pattern)
// the search resumes at o + len(pattern).
//
// The stream position after SearchRange returns is undefined. Seek to a
// known location before further reads or writes.
func SearchRange(r Reader, start, end int64, pattern []byte, maxMatches int64, fn SearchFunc) error {
	return search(r, start, end, nil, pattern, maxMatches, fn, nil)
}

// SearchBuffer is like SearchRange but stages the stream through buf.
//
// A nil buf means automatic sizing: the larger of DefaultSearchBufferSize
// and twice the pattern length, clamped to the maximum representable
// size. A non-nil buf smaller than the pattern cannot hold a single match
// and is a configuration error.
//
// Memory use is bounded by the buffer alone regardless of stream or
// pattern size: up to len(pattern)-1 trailing bytes are carried over
// between refills so a match split across two reads is still found, at
// the cost of re-scanning at most that many bytes per window.
func SearchBuffer(r Reader, start, end int64, buf []byte, pattern []byte, maxMatches int64, fn SearchFunc) error {
	return search(r, start, end, buf, pattern, maxMatches, fn, nil)
}

// SearchBufferPolicy is like SearchBuffer but consults policy whenever an
// underlying read reports ErrRetry.
//
//   - nil policy: identical to SearchBuffer
//   - non-nil: PolicyReturn makes the search return ErrRetry; the stream
//     position is then undefined like on any other search error.
func SearchBufferPolicy(r Reader, start, end int64, buf []byte, pattern []byte, maxMatches int64, fn SearchFunc, policy RetryPolicy) error {
	return search(r, start, end, buf, pattern, maxMatches, fn, policy)
}

func search(r Reader, start, end int64, buf, pattern []byte, maxMatches int64, fn SearchFunc, policy RetryPolicy) error {
	if start >= 0 && end >= 0 && end < start {
		return errors.Errorf("filex: search: end offset %d precedes start offset %d", end, start)
	}

	// Trivial cases: nothing can ever be reported.
	if maxMatches == 0 || len(pattern) == 0 {
		return nil
	}

	if buf == nil {
		size := DefaultSearchBufferSize
		if len(pattern) > math.MaxInt/2 {
			size = math.MaxInt
		} else if 2*len(pattern) > size {
			size = 2 * len(pattern)
		}
		buf = make([]byte, size)
	} else if len(buf) < len(pattern) {
		return errors.Errorf("filex: search: buffer size %d is smaller than pattern size %d", len(buf), len(pattern))
	}

	var offset int64
	if start > 0 {
		offset = start
	}
	if err := position(r, offset, policy); err != nil {
		return err
	}

	// fill is the count of bytes already held at the front of buf: the
	// retained suffix of the previous window that may prefix a match.
	fill := 0
	for {
		n, err := readFully(r, buf[fill:], policy, OpSearchFill)
		if err != nil {
			return err
		}
		n += fill

		if n < len(pattern) {
			// End of stream: too few bytes left to hold a match.
			return nil
		}
		if end >= 0 && offset >= end {
			// The bounded window is fully consumed.
			return nil
		}
		if offset > math.MaxInt64-int64(n) {
			return errors.Errorf("filex: search: window at offset %d with %d buffered bytes overflows int64", offset, n)
		}

		from := 0
		for {
			i := bytes.Index(buf[from:n], pattern)
			if i < 0 {
				break
			}
			at := from + i

			// A match extending past end is suppressed, not reported.
			if end >= 0 && offset+int64(at)+int64(len(pattern)) > end {
				return nil
			}

			if err := fn(offset + int64(at)); err != nil {
				if IsStop(err) {
					// Intentional early stop, not a failure.
					return nil
				}
				return err
			}

			if maxMatches > 0 {
				maxMatches--
				if maxMatches == 0 {
					return nil
				}
			}

			// No overlapping matches: resume after this one.
			from = at + len(pattern)
			if from >= n {
				break
			}
		}

		// Up to len(pattern)-1 trailing bytes may prefix a match split
		// across the window boundary; carry them to the front. Fewer are
		// carried when a match ended close to the window's tail.
		keep := n - from
		if keep > len(pattern)-1 {
			keep = len(pattern) - 1
		}
		copy(buf, buf[n-keep:n])
		fill = keep
		offset += int64(n - keep)
	}
}

// position places r at offset, seeking when the handle supports it and
// reading-and-discarding otherwise.
func position(r Reader, offset int64, policy RetryPolicy) error {
	if s, ok := r.(Seeker); ok {
		_, err := s.Seek(offset, io.SeekStart)
		if err == nil {
			return nil
		}
		if !IsUnsupported(err) {
			return err
		}
		// Seek capability absent despite the interface: fall through to
		// the discard-based fallback.
	}
	discarded, err := discard(r, offset, policy)
	if err != nil {
		return err
	}
	if discarded != offset {
		return Fatal(errors.Errorf("filex: search: stream ended after %d bytes, before start offset %d", discarded, offset))
	}
	return nil
}
