// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package filex

// discardChunk is the scratch size used by Discard and Move. It affects
// only performance, never correctness.
const discardChunk = 10 * 1024

// ReadFully reads from r until p is full or the stream ends.
//
// It differs from a single r.Read in that it re-invokes r.Read until the
// buffer is filled, end-of-stream is observed, or an error occurs.
// ErrRetry outcomes are absorbed and re-invoked without bound; ReadFully
// never returns ErrRetry.
//
// End-of-stream is either io.EOF or a read that transfers zero bytes.
// A short count with a nil error therefore means end-of-stream, not a
// failure; a caller seeing n < len(p) can rely on a subsequent read
// transferring nothing.
//
// n reflects actual progress even when an error is returned, so a caller
// can inspect exactly how far the transfer got before reattempting.
func ReadFully(r Reader, p []byte) (n int, err error) {
	return readFully(r, p, nil, OpRead)
}

// ReadFullyPolicy is like ReadFully but consults policy on ErrRetry.
//
//   - nil policy: identical to ReadFully (unbounded immediate retry)
//   - non-nil: PolicyRetry triggers policy.Yield(op) and a retry;
//     PolicyReturn surfaces ErrRetry together with the progress so far.
func ReadFullyPolicy(r Reader, p []byte, policy RetryPolicy) (n int, err error) {
	return readFully(r, p, policy, OpRead)
}

// WriteFully writes p to w until the buffer is drained or the writable
// region of the handle ends.
//
// ErrRetry outcomes are absorbed and re-invoked without bound; WriteFully
// never returns ErrRetry. A write call that accepts zero bytes with no
// error ends the transfer: the result is a successful short write, the
// handle's spelling of "no room beyond this point".
//
// n reflects actual progress even when an error is returned.
func WriteFully(w Writer, p []byte) (n int, err error) {
	return writeFully(w, p, nil, OpWrite)
}

// WriteFullyPolicy is like WriteFully but consults policy on ErrRetry.
//
//   - nil policy: identical to WriteFully
//   - non-nil: PolicyRetry yields and retries; PolicyReturn surfaces
//     ErrRetry together with the progress so far.
func WriteFullyPolicy(w Writer, p []byte, policy RetryPolicy) (n int, err error) {
	return writeFully(w, p, policy, OpWrite)
}

// Discard reads and throws away size bytes from r, or fewer if the
// stream ends first. It is the positioning fallback for handles that do
// not support seeking: the stream advances by exactly the returned count.
//
// Built on ReadFully through a fixed 10 KiB scratch buffer, so ErrRetry
// is absorbed the same way. A short result means end-of-stream, not an
// error. discarded reflects actual progress even when an error is
// returned.
func Discard(r Reader, size int64) (discarded int64, err error) {
	return discard(r, size, nil)
}

// DiscardPolicy is like Discard but consults policy on ErrRetry.
func DiscardPolicy(r Reader, size int64, policy RetryPolicy) (discarded int64, err error) {
	return discard(r, size, policy)
}

func readFully(r Reader, p []byte, policy RetryPolicy, op Op) (int, error) {
	read := 0
	for read < len(p) {
		n, err := r.Read(p[read:])
		if n > 0 {
			read += n
		}
		switch {
		case err == nil:
			if n == 0 {
				// Zero bytes with no error: end of stream.
				return read, nil
			}
		case err == EOF:
			return read, nil
		case IsRetry(err):
			if policy != nil {
				if policy.OnRetry(op) == PolicyReturn {
					return read, err
				}
				policy.Yield(op)
			}
		default:
			return read, err
		}
	}
	return read, nil
}

func writeFully(w Writer, p []byte, policy RetryPolicy, op Op) (int, error) {
	written := 0
	for written < len(p) {
		n, err := w.Write(p[written:])
		if n > 0 {
			written += n
		}
		switch {
		case err == nil:
			if n == 0 {
				// The handle accepted nothing: end of the writable region.
				return written, nil
			}
		case IsRetry(err):
			if policy != nil {
				if policy.OnRetry(op) == PolicyReturn {
					return written, err
				}
				policy.Yield(op)
			}
		default:
			return written, err
		}
	}
	return written, nil
}

func discard(r Reader, size int64, policy RetryPolicy) (int64, error) {
	var scratch [discardChunk]byte
	var discarded int64
	for discarded < size {
		chunk := size - discarded
		if chunk > discardChunk {
			chunk = discardChunk
		}
		n, err := readFully(r, scratch[:chunk], policy, OpDiscard)
		discarded += int64(n)
		if err != nil {
			return discarded, err
		}
		if int64(n) < chunk {
			// End of stream before the requested count.
			break
		}
	}
	return discarded, nil
}
