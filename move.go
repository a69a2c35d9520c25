// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package filex

import (
	"io"
	"math"

	"github.com/pkg/errors"
)

// Move relocates size bytes within f from offset src to offset dest,
// with memmove semantics: the two ranges may overlap arbitrarily. The
// move is performed purely through seek, read, and write against a fixed
// 10 KiB scratch buffer; no native block-move support is assumed.
//
// The copy direction is chosen by comparing dest against src, and that
// branch is the load-bearing correctness condition, exactly as for an
// in-memory memmove: copying in the direction away from the overlap
// guarantees no source byte is clobbered by a write to an overlapping
// destination before it has been read.
//
//   - dest < src: forward copy, low offsets first.
//   - dest > src: backward copy, the tail of the remaining range first.
//
// Degenerate calls (src == dest or size == 0) succeed with moved == size
// and perform no I/O. An offset range that would overflow int64 is a
// configuration error detected before any I/O, leaving the stream
// untouched.
//
// moved is exact even on partial failure: when moved < size, the first
// moved bytes of the range were copied from src to dest (true for the
// backward direction too), so a caller can resume or bound data loss.
// A short read or short write ends the move at the edge of the handle's
// reachable region and is reported as a successful partial move.
//
// Move is seek-heavy: two seeks per chunk. The stream position after
// Move returns is undefined.
func Move(f ReadWriteSeeker, src, dest, size int64) (moved int64, err error) {
	return move(f, src, dest, size, nil)
}

// MovePolicy is like Move but consults policy whenever an underlying
// read or write reports ErrRetry.
//
//   - nil policy: identical to Move
//   - non-nil: PolicyReturn makes the move return ErrRetry; moved still
//     reports the exact progress.
func MovePolicy(f ReadWriteSeeker, src, dest, size int64, policy RetryPolicy) (moved int64, err error) {
	return move(f, src, dest, size, policy)
}

func move(f ReadWriteSeeker, src, dest, size int64, policy RetryPolicy) (int64, error) {
	if src < 0 || dest < 0 || size < 0 {
		return 0, errors.Errorf("filex: move: negative offset or size (src=%d dest=%d size=%d)", src, dest, size)
	}
	if src == dest || size == 0 {
		return size, nil
	}
	if src > math.MaxInt64-size || dest > math.MaxInt64-size {
		return 0, errors.Errorf("filex: move: offset plus size %d overflows int64", size)
	}

	var buf [discardChunk]byte
	var moved int64

	if dest < src {
		// Forward copy. Writes land strictly below the not-yet-read part
		// of the source range.
		for moved < size {
			chunk := size - moved
			if chunk > int64(len(buf)) {
				chunk = int64(len(buf))
			}

			if _, err := f.Seek(src+moved, io.SeekStart); err != nil {
				return moved, err
			}
			nr, err := readFully(f, buf[:chunk], policy, OpMoveRead)
			if err != nil {
				return moved, err
			}
			if nr == 0 {
				// Source range ends here.
				break
			}

			if _, err := f.Seek(dest+moved, io.SeekStart); err != nil {
				return moved, err
			}
			nw, err := writeFully(f, buf[:nr], policy, OpMoveWrite)
			moved += int64(nw)
			if err != nil {
				return moved, err
			}
			if nw < nr {
				// Destination range ends here.
				break
			}
		}
		return moved, nil
	}

	// Backward copy. The tail of the remaining range is processed first,
	// so an overlapping destination is written only after its source
	// bytes were read.
	for moved < size {
		chunk := size - moved
		if chunk > int64(len(buf)) {
			chunk = int64(len(buf))
		}

		if _, err := f.Seek(src+size-moved-chunk, io.SeekStart); err != nil {
			return moved, err
		}
		nr, err := readFully(f, buf[:chunk], policy, OpMoveRead)
		if err != nil {
			return moved, err
		}
		if nr == 0 {
			break
		}

		if _, err := f.Seek(dest+size-moved-int64(nr), io.SeekStart); err != nil {
			return moved, err
		}
		nw, err := writeFully(f, buf[:nr], policy, OpMoveWrite)
		moved += int64(nw)
		if err != nil {
			return moved, err
		}
		if nw < nr {
			// The destination ends before the tail chunk fits. The bytes
			// beyond it can never be moved; shrink the range so the loop
			// keeps a consistent relationship between read and written
			// counts instead of retrying the same tail.
			size -= int64(nr - nw)
		}
	}
	return moved, nil
}
