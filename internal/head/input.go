package head

import (
	"errors"
	"io"
	"os"
)

// StdinName is the name given to the standard input.
const StdinName = "standard input"

// Input is a byte stream opened from a file or the standard input, after
// decompression.
//
// An Input is read once from start to finish, then closed.
type Input struct {
	// Name of the input, either the path it was opened from or StdinName.
	Name string

	reader  io.Reader
	closers []io.Closer
}

// Open opens the file at path, or the standard input if path is empty or "-",
// and decodes it from the given compression format.
//
// Errors occurring while opening the file are returned unchanged, so callers
// can test them with errors.Is(err, fs.ErrNotExist) for example.
func Open(path string, compression Compression) (*Input, error) {
	in := new(Input)

	if path == "" || path == "-" {
		in.Name = StdinName
		in.reader = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		adviseSequential(f)
		in.Name = path
		in.reader = f
		in.closers = append(in.closers, f)
	}

	if err := in.decode(compression); err != nil {
		return nil, err
	}
	return in, nil
}

// NewInput constructs an Input reading r, decoded from the given compression
// format. Closing the Input does not close r.
func NewInput(name string, r io.Reader, compression Compression) (*Input, error) {
	in := &Input{Name: name, reader: r}
	if err := in.decode(compression); err != nil {
		return nil, err
	}
	return in, nil
}

func (in *Input) decode(compression Compression) error {
	r, c, err := decoder(in.reader, compression)
	if err != nil {
		in.Close()
		return err
	}
	in.reader = r
	if c != nil {
		in.closers = append(in.closers, c)
	}
	return nil
}

func (in *Input) Read(b []byte) (int, error) {
	return in.reader.Read(b)
}

// Close releases the decoder and the file held by in, in the reverse order
// of their creation.
func (in *Input) Close() error {
	var errs []error
	for i := len(in.closers) - 1; i >= 0; i-- {
		if err := in.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	in.closers = nil
	return errors.Join(errs...)
}
