// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package filex provides byte-stream utilities over borrowed standard io
// capabilities, with explicit non-failure control-flow errors (see
// ErrRetry, ErrUnsupported, ErrStop) while remaining compatible with
// standard library interfaces.
//
// IDE note: filex re-exports (aliases) the io interfaces its operations
// accept so that users can stay in the "filex" namespace while reading
// documentation and navigating types. The contracts below mirror the
// standard io expectations, with filex-specific behavior documented at
// the call sites (ReadFully, Search, Move, ...).
package filex

import (
	"io"
)

// Reader is implemented by handles that can read bytes into p.
//
// Read must return the number of bytes read (0 <= n <= len(p)) and any
// error encountered. filex helpers additionally accept two end-of-stream
// spellings from a handle: io.EOF, and a (0, nil) return when re-invoked
// at the end of the stream.
//
// Reader is an alias of io.Reader.
type Reader = io.Reader

// Writer is implemented by handles that can write bytes from p.
//
// Write must return the number of bytes written (0 <= n <= len(p)) and
// any error encountered. Unlike the strict io.Writer contract, filex
// helpers tolerate a short count with a nil error: it means the writable
// region of the handle ended, which WriteFully reports as a successful
// short transfer.
//
// Writer is an alias of io.Writer.
type Writer = io.Writer

// Closer is implemented by handles that can release resources.
//
// Closer is an alias of io.Closer.
type Closer = io.Closer

// Seeker is implemented by handles that can set the offset for the next
// Read or Write.
//
// Helpers in this package discover seek support by type assertion to
// Seeker and by Unsupported classification of a returned seek error;
// where a fallback exists (discard-based positioning) it is used instead
// of failing.
//
// Seeker is an alias of io.Seeker.
type Seeker = io.Seeker

// ReadWriter groups the basic Read and Write methods.
//
// ReadWriter is an alias of io.ReadWriter.
type ReadWriter = io.ReadWriter

// ReadCloser groups Read and Close.
//
// ReadCloser is an alias of io.ReadCloser.
type ReadCloser = io.ReadCloser

// WriteCloser groups Write and Close.
//
// WriteCloser is an alias of io.WriteCloser.
type WriteCloser = io.WriteCloser

// ReadSeeker groups Read and Seek.
//
// ReadSeeker is an alias of io.ReadSeeker.
type ReadSeeker = io.ReadSeeker

// WriteSeeker groups Write and Seek.
//
// WriteSeeker is an alias of io.WriteSeeker.
type WriteSeeker = io.WriteSeeker

// ReadWriteSeeker groups Read, Write, and Seek. It is the capability
// Move requires: the range move is implemented purely through these
// three calls, with no native block-move primitive assumed.
//
// ReadWriteSeeker is an alias of io.ReadWriteSeeker.
type ReadWriteSeeker = io.ReadWriteSeeker

// ReadWriteCloser groups Read, Write, and Close.
//
// ReadWriteCloser is an alias of io.ReadWriteCloser.
type ReadWriteCloser = io.ReadWriteCloser

// Common sentinel errors re-exported for convenience.
//
// Note: filex also defines semantic non-failure errors (ErrRetry,
// ErrUnsupported, ErrStop) used by its helpers; those are not part of
// the standard io set.
var (
	// EOF is returned by Read when no more input is available.
	// filex helpers absorb it into the short-transfer success contract.
	EOF = io.EOF

	// ErrClosedPipe is returned on I/O against a closed pipe-like handle.
	ErrClosedPipe = io.ErrClosedPipe

	// ErrNoProgress reports that a Reader returned no data and no error
	// after multiple Read calls, i.e. lack of forward progress.
	ErrNoProgress = io.ErrNoProgress

	// ErrShortBuffer means a provided buffer was too small to complete
	// the operation. Callers typically retry with a larger buffer.
	ErrShortBuffer = io.ErrShortBuffer

	// ErrShortWrite means a write accepted fewer bytes than requested and
	// returned no explicit error.
	ErrShortWrite = io.ErrShortWrite

	// ErrUnexpectedEOF means EOF was encountered earlier than expected.
	ErrUnexpectedEOF = io.ErrUnexpectedEOF
)
