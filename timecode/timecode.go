// Package timecode converts between human clock strings and whole seconds.
package timecode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTimeFormat indicates a time spec that is not H:MM:SS, MM:SS or bare seconds.
var ErrInvalidTimeFormat = errors.New("invalid time format")

// Parse resolves a clock-style spec into whole seconds.
//
// Accepted shapes: "H:MM:SS", "MM:SS" and bare seconds ("90"). Each part is
// parsed as a base-10 integer, so leading zeros ("08") are never read as octal.
func Parse(spec string) (int, error) {
	parts := strings.Split(spec, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q has more than 3 components", ErrInvalidTimeFormat, spec)
	}

	values := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.ParseInt(part, 10, 64)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, spec)
		}
		values = append(values, int(n))
	}

	switch len(values) {
	case 3:
		return values[0]*3600 + values[1]*60 + values[2], nil
	case 2:
		return values[0]*60 + values[1], nil
	default:
		return values[0], nil
	}
}

// Format renders non-negative whole seconds as a zero-padded "HH:MM:SS" string.
// The hours field widens as needed and carries no upper bound.
func Format(seconds int) string {
	h := seconds / 3600
	m := seconds % 3600 / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
