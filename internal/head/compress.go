package head

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/exp/slices"
)

// Compression is the compression format that the input is decoded from before
// being emitted.
type Compression string

const (
	Uncompressed Compression = "none"
	Auto         Compression = "auto"
	Gzip         Compression = "gzip"
	Zstd         Compression = "zstd"
	Snappy       Compression = "snappy"
)

var compressions = []Compression{Uncompressed, Auto, Gzip, Zstd, Snappy}

var (
	gzipMagic   = []byte{0x1f, 0x8b}
	zstdMagic   = []byte{0x28, 0xb5, 0x2f, 0xfd}
	snappyMagic = []byte("\xff\x06\x00\x00sNaPpY")
)

// ParseCompression parses s as one of the supported compression formats. The
// empty string is the same as "none".
func ParseCompression(s string) (Compression, error) {
	if s == "" {
		return Uncompressed, nil
	}
	c := Compression(strings.ToLower(s))
	if !slices.Contains(compressions, c) {
		names := make([]string, len(compressions))
		for i, c := range compressions {
			names[i] = string(c)
		}
		return "", fmt.Errorf("unsupported compression format: %q (not one of %s)", s, strings.Join(names, ", "))
	}
	return c, nil
}

func (c Compression) String() string {
	return string(c)
}

func (c *Compression) Set(s string) error {
	p, err := ParseCompression(s)
	if err != nil {
		return err
	}
	*c = p
	return nil
}

func (c *Compression) UnmarshalText(b []byte) error {
	return c.Set(string(b))
}

// decoder wraps r in a reader decoding the compression format c. The returned
// closer releases the decoder, it does not close r.
func decoder(r io.Reader, c Compression) (io.Reader, io.Closer, error) {
	if c == Auto {
		br := bufio.NewReader(r)
		c = sniff(br)
		r = br
	}

	switch c {
	case Uncompressed, "":
		return r, nil, nil
	case Gzip:
		z, err := gzip.NewReader(r)
		if err != nil {
			if errors.Is(err, io.EOF) {
				// An empty input has no header, there is nothing to emit.
				return eofReader{}, nil, nil
			}
			return nil, nil, &ReadError{Err: fmt.Errorf("gzip: %w", err)}
		}
		return z, z, nil
	case Zstd:
		z, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, nil, &ReadError{Err: fmt.Errorf("zstd: %w", err)}
		}
		return z, closerFunc(func() error { z.Close(); return nil }), nil
	case Snappy:
		return snappy.NewReader(r), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown compression format: %q", c)
	}
}

// sniff looks at the first bytes of r to guess their compression format.
// Inputs which do not start with a known magic number are uncompressed, this
// includes inputs too short to hold one and inputs failing to read; the
// error surfaces again on the next read.
func sniff(r *bufio.Reader) Compression {
	b, _ := r.Peek(len(snappyMagic))
	switch {
	case bytes.HasPrefix(b, gzipMagic):
		return Gzip
	case bytes.HasPrefix(b, zstdMagic):
		return Zstd
	case bytes.HasPrefix(b, snappyMagic):
		return Snappy
	default:
		return Uncompressed
	}
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
