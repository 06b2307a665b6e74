// Package hostclock exposes the host platform's notion of "now" and of its
// own local timezone. Everything that depends on the machine's locale goes
// through a Clock so tests can pin both.
package hostclock

import "time"

// Clock provides the current instant and the host's local timezone.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

// Local returns a Clock backed by time.Now and time.Local.
func Local() Clock {
	return systemClock{}
}

// In returns a Clock backed by time.Now that reports loc as the host zone.
func In(loc *time.Location) Clock {
	return systemClock{loc: loc}
}

// Fixed returns a Clock that always reports now, in loc.
func Fixed(now time.Time, loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return fixedClock{now: now.In(loc), loc: loc}
}

// OffsetAt returns the host's local offset from UTC at t (local minus UTC,
// so -5h for US Eastern in winter).
func OffsetAt(c Clock, t time.Time) time.Duration {
	_, secs := t.In(c.Location()).Zone()
	return time.Duration(secs) * time.Second
}

type systemClock struct {
	loc *time.Location
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.Location())
}

func (c systemClock) Location() *time.Location {
	if c.loc == nil {
		return time.Local
	}
	return c.loc
}

type fixedClock struct {
	now time.Time
	loc *time.Location
}

func (c fixedClock) Now() time.Time           { return c.now }
func (c fixedClock) Location() *time.Location { return c.loc }
