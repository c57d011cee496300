// Package duration parses and formats clock-style durations such as
// "25:00" or "01:30:00".
package duration

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidFormat is wrapped by every Parse failure.
var ErrInvalidFormat = errors.New("invalid duration format")

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	maxFields        = 3
)

// Parse converts "SS", "MM:SS" or "HH:MM:SS" into whole seconds. Fields are
// read right to left and are not range checked, so "90" and "0:75" are valid.
// Each field must be an unsigned base-10 literal of at most 32 bits; signs,
// blanks and empty fields are rejected.
func Parse(input string) (int, error) {
	fields := strings.Split(input, ":")
	if len(fields) > maxFields {
		return 0, invalid(input)
	}

	multipliers := [maxFields]uint64{1, secondsPerMinute, secondsPerHour}
	var total uint64
	for i := range fields {
		// walk from the rightmost field (seconds) outward
		field := fields[len(fields)-1-i]
		n, err := strconv.ParseUint(field, 10, 32)
		if err != nil {
			return 0, invalid(input)
		}
		total += n * multipliers[i]
	}
	// Three 32-bit fields cannot overflow uint64, but the sum may not fit int
	// on 32-bit platforms.
	if total > math.MaxInt {
		return 0, invalid(input)
	}
	return int(total), nil
}

func invalid(input string) error {
	return fmt.Errorf("%w: %q (want [[HH:]MM:]SS)", ErrInvalidFormat, input)
}

// Format renders seconds as MM:SS below one hour and HH:MM:SS otherwise.
// Negative input is treated as zero.
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / secondsPerHour
	m := seconds % secondsPerHour / secondsPerMinute
	s := seconds % secondsPerMinute
	if h == 0 {
		return fmt.Sprintf("%02d:%02d", m, s)
	}
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
