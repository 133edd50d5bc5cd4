// Package human provides types that parse and format human-friendly
// representations of values used in head's configuration and diagnostics.
//
// Values such as buffer sizes can be written with units in the configuration
// file:
//
//	buffer-size: 16 KiB
//
// and paths may start with "~/" to refer to the home directory of the user
// running the program.
package human

import (
	"fmt"
	"strings"
	"unicode"
)

// splitUnit separates the numeric head of s from its trailing unit letters,
// for example "1.5 KiB" splits into "1.5" and "KiB".
func splitUnit(s string) (head, unit string) {
	s = strings.TrimSpace(s)
	i := strings.LastIndexFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	if i < 0 {
		return s, ""
	}
	return strings.TrimRightFunc(s[:i+1], unicode.IsSpace), s[i+1:]
}

// matchUnit reports whether unit is a case-insensitive prefix of name, which
// lets "K", "Ki" and "KiB" all match "KiB".
func matchUnit(unit, name string) bool {
	return len(unit) <= len(name) && strings.EqualFold(unit, name[:len(unit)])
}

// ftoa formats value/scale with a precision that shrinks as the magnitude
// grows, trimming trailing zeros.
func ftoa(value, scale float64) string {
	if value == 0 {
		return "0"
	}
	if value < 0 {
		return "-" + ftoa(-value, scale)
	}

	var format string
	switch v := value / scale; {
	case v >= 100:
		format = "%.0f"
	case v >= 10:
		format = "%.1f"
	case scale > 1:
		format = "%.2f"
	default:
		format = "%.3f"
	}

	s := fmt.Sprintf(format, value/scale)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

func badVerb(verb rune, typ, val any) string {
	return fmt.Sprintf("%%!%c(%T=%v)", verb, typ, val)
}
