package head

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrZeroCount is returned when a stop condition counts zero lines or bytes.
var ErrZeroCount = errors.New("count must be greater than zero")

// Unit is the unit in which a stop condition counts the input.
type Unit uint8

const (
	// Lines counts records terminated by the line delimiter.
	Lines Unit = iota
	// Bytes counts raw bytes, ignoring any structure of the input.
	Bytes
)

func (u Unit) String() string {
	switch u {
	case Lines:
		return "lines"
	case Bytes:
		return "bytes"
	default:
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
}

// Stop is the condition which ends the emission of an input: the number of
// lines or bytes after which the emitter stops copying.
//
// The zero value is invalid, stop conditions are constructed with LineLimit
// or ByteLimit.
type Stop struct {
	Unit  Unit
	Count uint64
}

// LineLimit returns a stop condition firing after n lines.
func LineLimit(n uint64) Stop { return Stop{Unit: Lines, Count: n} }

// ByteLimit returns a stop condition firing after n bytes.
func ByteLimit(n uint64) Stop { return Stop{Unit: Bytes, Count: n} }

// Validate returns an error if s cannot be used to drive an emitter.
func (s Stop) Validate() error {
	switch s.Unit {
	case Lines, Bytes:
	default:
		return fmt.Errorf("invalid stop condition unit: %s", s.Unit)
	}
	if s.Count == 0 {
		return ErrZeroCount
	}
	return nil
}

func (s Stop) String() string {
	unit := s.Unit.String()
	if s.Count == 1 {
		unit = strings.TrimSuffix(unit, "s")
	}
	return strconv.FormatUint(s.Count, 10) + " " + unit
}

// ParseCount parses s as a positive base 10 count of lines or bytes.
func ParseCount(s string) (uint64, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("count out of range: %q", s)
		}
		return 0, fmt.Errorf("malformed count: %q", s)
	}
	if n == 0 {
		return 0, ErrZeroCount
	}
	return n, nil
}
