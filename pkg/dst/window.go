// Package dst computes daylight-saving windows for the rules a timezone.Zone
// can carry.
//
// Window boundaries are expressed the same way zoned values are: a wall
// clock reading stored in UTC fields. With a UTC host the US window starts at
// exactly 02:00 on the second Sunday of March and ends at 02:00 on the first
// Sunday of November. The transition hour is anchored to the host's own
// offset on March 1, so a host that observes DST itself sees the November
// boundary one hour early.
package dst

import (
	"math"
	"time"

	"github.com/maypok86/otter/v2"

	"github.com/codeGROOVE-dev/userdate/pkg/constants"
	"github.com/codeGROOVE-dev/userdate/pkg/hostclock"
	"github.com/codeGROOVE-dev/userdate/pkg/timezone"
	"github.com/codeGROOVE-dev/userdate/pkg/tzconvert"
)

// Window is the half-open interval [Start, End) during which DST applies.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether Start <= t < End.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

type windowKey struct {
	loc  *time.Location
	year int
}

// Calculator resolves DST windows against a host clock and memoises them per
// year and host location. It is safe for concurrent use.
type Calculator struct {
	clock hostclock.Clock
	cache *otter.Cache[windowKey, Window]
}

// NewCalculator returns a Calculator anchored to clock's location.
func NewCalculator(clock hostclock.Clock) *Calculator {
	return &Calculator{
		clock: clock,
		cache: otter.Must(&otter.Options[windowKey, Window]{
			MaximumSize:     1024,
			InitialCapacity: 16,
		}),
	}
}

// Clock returns the host clock the calculator anchors windows to.
func (c *Calculator) Clock() hostclock.Clock {
	return c.clock
}

// Window returns the DST window of the given UTC year. The boolean is false
// when the rule has no computable window.
func (c *Calculator) Window(year int, rule timezone.DSTRule) (Window, bool) {
	if rule != timezone.RuleUS {
		return Window{}, false
	}

	key := windowKey{year: year, loc: c.clock.Location()}
	if w, ok := c.cache.GetIfPresent(key); ok {
		return w, true
	}
	w := USWindow(year, key.loc)
	c.cache.Set(key, w)
	return w, true
}

// Size returns the number of memoised windows.
func (c *Calculator) Size() int {
	return c.cache.EstimatedSize()
}

// USWindow computes the simplified US window for year as seen from a host
// in loc.
func USWindow(year int, loc *time.Location) Window {
	day1 := time.Date(year, constants.SpringMonth, 1, 12, 0, 0, 0, loc)
	_, secs := day1.Zone()
	hostHours := tzconvert.DurationToHours(time.Duration(secs) * time.Second)
	// hour may be negative; time.Date rolls it into the previous day.
	hour := int(math.Trunc(constants.TransitionHour + hostHours))

	// March 1 and November 1 are 245 days apart, so they share a weekday.
	startDay, endDay := 8, 1
	if wd := int(day1.Weekday()); wd != 0 {
		startDay = 15 - wd
		endDay = 8 - wd
	}

	return Window{
		Start: time.Date(year, constants.SpringMonth, startDay, hour, 0, 0, 0, loc).UTC(),
		End:   time.Date(year, constants.FallMonth, endDay, hour, 0, 0, 0, loc).UTC(),
	}
}
