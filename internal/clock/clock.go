// Package clock converts between "HH:MM" wall-clock strings and minutes
// since midnight. The string form crosses the API boundary, so both
// directions are strict: no coercion, no day rollover.
package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidFormat = errors.New("invalid time format")

const MinutesPerDay = 24 * 60

// TimeToMinutes parses a 24-hour "HH:MM" string (a single-digit hour is
// accepted) into minutes since midnight.
func TimeToMinutes(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	if len(hh) < 1 || len(hh) > 2 || len(mm) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	hours, err := parseDigits(hh)
	if err != nil || hours > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	minutes, err := parseDigits(mm)
	if err != nil || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return hours*60 + minutes, nil
}

// MinutesToTime renders minutes since midnight as a zero-padded "HH:MM"
// string. Values outside [0, 1439] are a caller error, never wrapped.
func MinutesToTime(m int) (string, error) {
	if m < 0 || m >= MinutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrInvalidFormat, m)
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60), nil
}

func parseDigits(s string) (int, error) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrInvalidFormat
		}
	}
	return strconv.Atoi(s)
}
