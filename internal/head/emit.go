// Package head implements copying the beginning of a byte stream: the first
// lines or the first bytes of a file or of the standard input.
package head

import (
	"bufio"
	"io"

	"github.com/stealthrocket/head/internal/buffer"
)

// ReadError is returned by an Emitter when reading the input fails before the
// stop condition fires. Whatever was copied before the failure has already
// been written to the output.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string { return "read: " + e.Err.Error() }
func (e *ReadError) Unwrap() error { return e.Err }

var defaultPool buffer.Pool

// Emitter copies the beginning of an input to an output, until a stop
// condition fires or the input is exhausted.
//
// The zero value is ready to use and splits lines on '\n', reading at most
// buffer.DefaultSize bytes at a time.
type Emitter struct {
	// Split lines on NUL bytes instead of '\n'.
	ZeroTerminated bool

	// Upper bound on the size of reads from the input.
	BufferSize int

	// Pool used to allocate the buffer in byte mode.
	Pool *buffer.Pool
}

// Copy copies r to w until stop fires, returning the number of bytes written.
//
// Running out of input before the stop condition is not an error. Read
// failures are returned as *ReadError, write failures are returned as is.
func Copy(w io.Writer, r io.Reader, stop Stop) (int64, error) {
	return new(Emitter).Copy(w, r, stop)
}

// Copy copies r to w until stop fires, returning the number of bytes written.
func (e *Emitter) Copy(w io.Writer, r io.Reader, stop Stop) (int64, error) {
	if err := stop.Validate(); err != nil {
		return 0, err
	}
	if stop.Unit == Lines {
		return e.copyLines(w, r, stop.Count)
	}
	return e.copyBytes(w, r, stop.Count)
}

func (e *Emitter) delimiter() byte {
	if e.ZeroTerminated {
		return 0
	}
	return '\n'
}

func (e *Emitter) bufferSize() int {
	if e.BufferSize > 0 {
		return e.BufferSize
	}
	return buffer.DefaultSize
}

func (e *Emitter) pool() *buffer.Pool {
	if e.Pool != nil {
		return e.Pool
	}
	return &defaultPool
}

func (e *Emitter) copyLines(w io.Writer, r io.Reader, lines uint64) (written int64, err error) {
	delim := e.delimiter()
	br := bufio.NewReaderSize(r, e.bufferSize())
	// Set while the bytes of an unterminated line have been written.
	partial := false

	for lines > 0 {
		// Lines longer than the buffer come back in fragments with
		// ErrBufferFull; only the fragment ending with the delimiter
		// completes a line.
		line, rerr := br.ReadSlice(delim)
		if rerr == nil {
			lines--
		}

		n, werr := w.Write(line)
		written += int64(n)
		if werr != nil {
			return written, werr
		}
		if len(line) > 0 {
			partial = line[len(line)-1] != delim || rerr != nil
		}

		switch rerr {
		case nil, bufio.ErrBufferFull:
		case io.EOF:
			if !partial {
				return written, nil
			}
			// The last line of the input has no delimiter.
			n, werr = w.Write([]byte{delim})
			written += int64(n)
			return written, werr
		default:
			return written, &ReadError{Err: rerr}
		}
	}

	return written, nil
}

func (e *Emitter) copyBytes(w io.Writer, r io.Reader, limit uint64) (written int64, err error) {
	size := e.bufferSize()
	if uint64(size) > limit {
		size = int(limit)
	}

	pool := e.pool()
	buf := pool.Get(size)
	defer buffer.Release(&buf, pool)

	for remain := limit; remain > 0; {
		chunk := buf.Data
		if uint64(len(chunk)) > remain {
			chunk = chunk[:remain]
		}

		n, rerr := r.Read(chunk)
		if n > 0 {
			wn, werr := w.Write(chunk[:n])
			written += int64(wn)
			remain -= uint64(wn)
			if werr != nil {
				return written, werr
			}
			if wn != n {
				return written, io.ErrShortWrite
			}
		}

		switch {
		case rerr == io.EOF:
			return written, nil
		case rerr != nil:
			return written, &ReadError{Err: rerr}
		case n == 0:
			// An empty read marks the end of the stream.
			return written, nil
		}
	}

	return written, nil
}
