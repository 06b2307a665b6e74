// Package timezone holds the catalog of supported display timezones and the
// lookups that resolve a Zone by name, by offset, or from the host platform.
package timezone

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"github.com/codeGROOVE-dev/userdate/pkg/hostclock"
	"github.com/codeGROOVE-dev/userdate/pkg/tzconvert"
)

// ErrNotFound is returned when no catalog entry matches a lookup.
var ErrNotFound = errors.New("timezone not found")

// FromName returns the first catalog zone whose name equals name.
func FromName(name string) (Zone, error) {
	if z, ok := lo.Find(catalog, func(z Zone) bool { return z.Name == name }); ok {
		return z, nil
	}
	return Zone{}, fmt.Errorf("name %q: %w", name, ErrNotFound)
}

// FromOffset returns the first catalog zone with the given standard offset
// and DST flag. Catalog order decides between duplicates: (-6, true) is
// Central Time, not Experiment Time.
func FromOffset(offsetHours float64, useDST bool) (Zone, error) {
	z, ok := lo.Find(catalog, func(z Zone) bool {
		return z.UseDST == useDST && z.OffsetHours == offsetHours
	})
	if ok {
		return z, nil
	}
	return Zone{}, fmt.Errorf("offset %v dst=%t: %w", offsetHours, useDST, ErrNotFound)
}

// FromHost derives the catalog zone matching the host's timezone.
func FromHost(clock hostclock.Clock) (Zone, error) {
	return FromHostWithLogger(clock, slog.New(slog.DiscardHandler))
}

// FromHostWithLogger is FromHost with diagnostic logging.
//
// The host offset is sampled on January 1 and July 1 of the current year.
// Equal samples mean the host does not observe DST. Otherwise the standard
// offset is the winter one for the host's hemisphere: January in the north,
// July in the south.
func FromHostWithLogger(clock hostclock.Clock, logger *slog.Logger) (Zone, error) {
	loc := clock.Location()
	year := clock.Now().In(loc).Year()
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	july1 := time.Date(year, time.July, 1, 0, 0, 0, 0, loc)

	std := tzconvert.DurationToHours(hostclock.OffsetAt(clock, jan1))
	daylight := tzconvert.DurationToHours(hostclock.OffsetAt(clock, july1))

	dst := false
	if std != daylight {
		// positive is southern, negative is northern hemisphere
		hemisphere := std - daylight
		if hemisphere >= 0 {
			std = daylight
		}
		dst = true
	}

	logger.Debug("sampled host timezone",
		"location", loc.String(), "year", year, "standard_offset", std, "dst", dst)

	z, err := FromOffset(std, dst)
	if err != nil {
		return Zone{}, fmt.Errorf("host timezone %s: %w", loc, err)
	}
	return z, nil
}
