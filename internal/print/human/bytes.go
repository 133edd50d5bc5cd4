package human

import (
	"encoding"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"

	yaml "gopkg.in/yaml.v3"
)

// Bytes represents a number of bytes.
//
// Parsing accepts factors of 1000 (KB, MB, GB...) and factors of 1024 (KiB,
// MiB, GiB...), with the unit optionally separated by spaces:
//
//	4096
//	4 KiB
//	1.5MB
//
// Formatting always uses factors of 1024.
type Bytes uint64

const (
	B Bytes = 1

	KB Bytes = 1000 * B
	MB Bytes = 1000 * KB
	GB Bytes = 1000 * MB
	TB Bytes = 1000 * GB

	KiB Bytes = 1024 * B
	MiB Bytes = 1024 * KiB
	GiB Bytes = 1024 * MiB
	TiB Bytes = 1024 * GiB
)

type byteUnit struct {
	name  string
	scale Bytes
}

// Units are listed by increasing scale, the decimal ones first so that a bare
// "K" parses as KB.
var parseUnits = [...]byteUnit{
	{"B", B},
	{"KB", KB},
	{"MB", MB},
	{"GB", GB},
	{"TB", TB},
	{"KiB", KiB},
	{"MiB", MiB},
	{"GiB", GiB},
	{"TiB", TiB},
}

var formatUnits = [...]byteUnit{
	{"TiB", TiB},
	{"GiB", GiB},
	{"MiB", MiB},
	{"KiB", KiB},
}

// ParseBytes parses s as a byte count. Fractional values are rounded down to
// the nearest byte.
func ParseBytes(s string) (Bytes, error) {
	value, unit := splitUnit(s)

	scale := Bytes(0)
	if unit == "" {
		scale = B
	} else {
		for _, u := range parseUnits {
			if matchUnit(unit, u.name) {
				scale = u.scale
				break
			}
		}
	}
	if scale == 0 {
		return 0, fmt.Errorf("malformed bytes representation: %q", s)
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed bytes representation: %q: %w", s, err)
	}
	if f < 0 {
		return 0, fmt.Errorf("invalid negative byte count: %q", s)
	}
	return Bytes(math.Floor(f * float64(scale))), nil
}

func (b Bytes) String() string {
	for _, u := range formatUnits {
		if b >= u.scale {
			return ftoa(float64(b), float64(u.scale)) + " " + u.name
		}
	}
	return strconv.FormatUint(uint64(b), 10)
}

func (b Bytes) GoString() string {
	return fmt.Sprintf("human.Bytes(%d)", uint64(b))
}

// Format satisfies the fmt.Formatter interface.
//
// The method supports the following formatting verbs:
//
//	d	base 10, unit-less
//	s	base 10, with unit (same as calling String)
//	v	same as the 's' format, unless '#' is set to print the go value
func (b Bytes) Format(w fmt.State, v rune) {
	var s string
	switch v {
	case 'd':
		s = strconv.FormatUint(uint64(b), 10)
	case 's':
		s = b.String()
	case 'v':
		if w.Flag('#') {
			s = b.GoString()
		} else {
			s = b.String()
		}
	default:
		s = badVerb(v, b, uint64(b))
	}
	_, _ = io.WriteString(w, s)
}

func (b *Bytes) Set(s string) error {
	p, err := ParseBytes(s)
	if err != nil {
		return err
	}
	*b = p
	return nil
}

func (b Bytes) MarshalYAML() (any, error) {
	return b.String(), nil
}

func (b *Bytes) UnmarshalYAML(y *yaml.Node) error {
	var s string
	if err := y.Decode(&s); err != nil {
		return err
	}
	return b.Set(s)
}

func (b Bytes) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Bytes) UnmarshalText(t []byte) error {
	return b.Set(string(t))
}

var (
	_ fmt.Formatter  = Bytes(0)
	_ fmt.GoStringer = Bytes(0)
	_ fmt.Stringer   = Bytes(0)
	_ flag.Value     = (*Bytes)(nil)

	_ yaml.Marshaler   = Bytes(0)
	_ yaml.Unmarshaler = (*Bytes)(nil)

	_ encoding.TextMarshaler   = Bytes(0)
	_ encoding.TextUnmarshaler = (*Bytes)(nil)
)
