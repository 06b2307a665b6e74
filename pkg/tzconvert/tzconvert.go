// Package tzconvert converts between fractional-hour UTC offsets and durations.
// Offsets are hours east of UTC: negative for the Americas, positive for Asia.
// Fractional values are allowed, e.g. 5.75 for Nepal or 2.25 for test zones.
package tzconvert

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidOffset is returned when an offset string cannot be parsed.
var ErrInvalidOffset = errors.New("invalid UTC offset")

var (
	nanosPerHour   = decimal.NewFromInt(int64(time.Hour))
	secondsPerHour = decimal.NewFromInt(3600)
)

// HoursToDuration converts a fractional hour count into a duration.
// Example: HoursToDuration(2.25) == 2h15m, HoursToDuration(-7.5) == -7h30m.
func HoursToDuration(hours float64) time.Duration {
	return time.Duration(decimal.NewFromFloat(hours).Mul(nanosPerHour).Round(0).IntPart())
}

// DurationToHours converts a duration into fractional hours.
func DurationToHours(d time.Duration) float64 {
	return d.Hours()
}

// SplitHours breaks a fractional hour count into whole hours, minutes and
// seconds. Each component is truncated toward zero and carries the sign of
// the input, so SplitHours(-7.5) returns (-7, -30, 0).
func SplitHours(value float64) (hours, minutes, seconds int) {
	total := decimal.NewFromFloat(value).Mul(secondsPerHour).Truncate(0).IntPart()
	return int(total / 3600), int(total % 3600 / 60), int(total % 60)
}

// ParseOffset extracts a fractional hour offset from a display string.
// Examples:
//   - "UTC" and "GMT" return 0
//   - "UTC-4" returns -4
//   - "GMT-07:00" returns -7
//   - "+05:30" returns 5.5
//   - "-7.5" returns -7.5
func ParseOffset(text string) (float64, error) {
	s := strings.TrimSpace(text)
	upper := strings.ToUpper(s)
	if strings.HasPrefix(upper, "UTC") || strings.HasPrefix(upper, "GMT") {
		s = s[3:]
	}
	if s == "" {
		return 0, nil
	}

	sign := 1.0
	switch s[0] {
	case '-':
		sign = -1
		s = s[1:]
	case '+':
		s = s[1:]
	default:
		// No sign means positive offset
	}
	if s == "" {
		return 0, fmt.Errorf("%q: %w", text, ErrInvalidOffset)
	}

	if !strings.Contains(s, ":") {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("%q: %w", text, ErrInvalidOffset)
		}
		return sign * v, nil
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("%q: %w", text, ErrInvalidOffset)
	}
	total := 0.0
	scale := 1.0
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || (i > 0 && n >= 60) {
			return 0, fmt.Errorf("%q: %w", text, ErrInvalidOffset)
		}
		total += float64(n) / scale
		scale *= 60
	}
	return sign * total, nil
}
