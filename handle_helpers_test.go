// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package filex_test

import (
	"errors"
	"io"

	"code.hybscloud.com/filex"
)

// Shared handle fakes for the operation tests.

// memFile is a growable in-memory ReadWriteSeeker. It clones the initial
// content so tests can compare against the original.
type memFile struct {
	data []byte
	pos  int64
}

func newMemFile(b []byte) *memFile {
	return &memFile{data: append([]byte(nil), b...)}
}

func (f *memFile) Read(p []byte) (int, error) {
	if f.pos >= int64(len(f.data)) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.pos:])
	f.pos += int64(n)
	return n, nil
}

func (f *memFile) Write(p []byte) (int, error) {
	if need := f.pos + int64(len(p)); need > int64(len(f.data)) {
		grown := make([]byte, need)
		copy(grown, f.data)
		f.data = grown
	}
	n := copy(f.data[f.pos:], p)
	f.pos += int64(n)
	return n, nil
}

func (f *memFile) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = f.pos
	case io.SeekEnd:
		base = int64(len(f.data))
	default:
		return 0, errors.New("memFile: invalid whence")
	}
	if base+offset < 0 {
		return 0, errors.New("memFile: negative position")
	}
	f.pos = base + offset
	return f.pos, nil
}

// regionFile is a fixed-capacity ReadWriteSeeker over a caller-owned
// slice (no clone; writes mutate the slice in place, e.g. an mmap
// region). Writes past the end are truncated and reported as a short
// count with a nil error, the handle spelling of "no room beyond this
// point". A write at the very end accepts zero bytes.
type regionFile struct {
	data []byte
	pos  int64
}

func newRegionFile(b []byte) *regionFile { return &regionFile{data: b} }

func (f *regionFile) Read(p []byte) (int, error) {
	if f.pos >= int64(len(f.data)) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.pos:])
	f.pos += int64(n)
	return n, nil
}

func (f *regionFile) Write(p []byte) (int, error) {
	if f.pos >= int64(len(f.data)) {
		return 0, nil
	}
	n := copy(f.data[f.pos:], p)
	f.pos += int64(n)
	return n, nil
}

func (f *regionFile) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = f.pos
	case io.SeekEnd:
		base = int64(len(f.data))
	default:
		return 0, errors.New("regionFile: invalid whence")
	}
	if base+offset < 0 {
		return 0, errors.New("regionFile: negative position")
	}
	f.pos = base + offset
	return f.pos, nil
}

// countingFile wraps a ReadWriteSeeker and counts the calls that reach
// the backend.
type countingFile struct {
	f                    io.ReadWriteSeeker
	reads, writes, seeks int
}

func (c *countingFile) Read(p []byte) (int, error) {
	c.reads++
	return c.f.Read(p)
}

func (c *countingFile) Write(p []byte) (int, error) {
	c.writes++
	return c.f.Write(p)
}

func (c *countingFile) Seek(offset int64, whence int) (int64, error) {
	c.seeks++
	return c.f.Seek(offset, whence)
}

func (c *countingFile) ops() int { return c.reads + c.writes + c.seeks }

// countingReader counts reads on a plain (non-seekable) reader.
type countingReader struct {
	r     io.Reader
	reads int
}

func (c *countingReader) Read(p []byte) (int, error) {
	c.reads++
	return c.r.Read(p)
}

// streamReader hides everything but Read, modeling a handle with no seek
// capability at all.
type streamReader struct{ r io.Reader }

func (s *streamReader) Read(p []byte) (int, error) { return s.r.Read(p) }

// unsupportedSeeker implements Seeker but reports the capability as
// absent, modeling a handle that only discovers the gap at call time.
type unsupportedSeeker struct{ r io.Reader }

func (s *unsupportedSeeker) Read(p []byte) (int, error) { return s.r.Read(p) }

func (s *unsupportedSeeker) Seek(int64, int) (int64, error) {
	return 0, filex.ErrUnsupported
}

// chunkReader delivers at most limit bytes per call, forcing the
// full-transfer loop to iterate.
type chunkReader struct {
	r     io.Reader
	limit int
}

func (c *chunkReader) Read(p []byte) (int, error) {
	if len(p) > c.limit {
		p = p[:c.limit]
	}
	return c.r.Read(p)
}

// flakyReader injects ErrRetry on every other call.
type flakyReader struct {
	r     io.Reader
	calls int
}

func (f *flakyReader) Read(p []byte) (int, error) {
	f.calls++
	if f.calls%2 == 1 {
		return 0, filex.ErrRetry
	}
	return f.r.Read(p)
}

// retryThenReader fails with ErrRetry a fixed number of times before
// every productive call.
type retryThenReader struct {
	r       io.Reader
	retries int
	left    int
}

func (f *retryThenReader) Read(p []byte) (int, error) {
	if f.left > 0 {
		f.left--
		return 0, filex.ErrRetry
	}
	f.left = f.retries
	return f.r.Read(p)
}

// retryForever never makes progress.
type retryForever struct{}

func (retryForever) Read([]byte) (int, error)  { return 0, filex.ErrRetry }
func (retryForever) Write([]byte) (int, error) { return 0, filex.ErrRetry }

// flakyWriter injects ErrRetry on every other call.
type flakyWriter struct {
	w     io.Writer
	calls int
}

func (f *flakyWriter) Write(p []byte) (int, error) {
	f.calls++
	if f.calls%2 == 1 {
		return 0, filex.ErrRetry
	}
	return f.w.Write(p)
}

// scriptedReader plays back a fixed sequence of read results.
type scriptedReader struct {
	steps []struct {
		b   []byte
		err error
	}
	i int
}

func (s *scriptedReader) Read(p []byte) (int, error) {
	if s.i >= len(s.steps) {
		return 0, io.EOF
	}
	st := s.steps[s.i]
	s.i++
	if len(st.b) > 0 {
		n := copy(p, st.b)
		return n, st.err
	}
	return 0, st.err
}

// errSeeker wraps a ReadWriteSeeker and fails every seek with err.
type errSeeker struct {
	f   io.ReadWriteSeeker
	err error
}

func (s *errSeeker) Read(p []byte) (int, error)  { return s.f.Read(p) }
func (s *errSeeker) Write(p []byte) (int, error) { return s.f.Write(p) }
func (s *errSeeker) Seek(int64, int) (int64, error) {
	return 0, s.err
}
