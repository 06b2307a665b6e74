package userdate

import (
	"time"

	"github.com/codeGROOVE-dev/userdate/pkg/timezone"
	"github.com/codeGROOVE-dev/userdate/pkg/tzconvert"
)

// Adjust returns the zoned view of raw: raw plus the zone's offset, plus
// the DST shift when the shifted value falls inside the window of raw's UTC
// year. The result carries the zoned wall clock in UTC fields.
func Adjust(raw time.Time, z timezone.Zone, windows WindowSource) time.Time {
	t := raw.UTC().Add(tzconvert.HoursToDuration(z.OffsetHours))
	if inWindow(t, raw.UTC().Year(), z, windows) {
		t = t.Add(tzconvert.HoursToDuration(z.DSTShiftHours))
	}
	return t
}

// Reverse maps a zoned wall clock back to the raw instant. DST applies when
// the standard-time reading (zoned minus the shift) lies in the window.
//
// Reverse(Adjust(x)) == x except during the repeated hour after the window
// ends: readings in [End, End+shift) exist twice, and Reverse picks the
// daylight one.
func Reverse(zoned time.Time, z timezone.Zone, windows WindowSource) time.Time {
	zoned = zoned.UTC()
	raw := zoned.Add(-tzconvert.HoursToDuration(z.OffsetHours))
	shift := tzconvert.HoursToDuration(z.DSTShiftHours)
	if inWindow(zoned.Add(-shift), raw.Year(), z, windows) {
		raw = raw.Add(-shift)
	}
	return raw
}

func inWindow(t time.Time, year int, z timezone.Zone, windows WindowSource) bool {
	if !z.UseDST {
		return false
	}
	w, ok := windows.Window(year, z.Rule)
	return ok && w.Contains(t)
}

// Adjusted returns the zoned view of d.
func (d *UserDate) Adjusted() time.Time {
	return Adjust(d.raw, d.zone.Load(), d.windows)
}

// IsDST reports whether the DST shift is currently applied to d.
func (d *UserDate) IsDST() bool {
	z := d.zone.Load()
	return inWindow(d.raw.Add(tzconvert.HoursToDuration(z.OffsetHours)), d.raw.Year(), z, d.windows)
}

// ZoneOffset returns the total offset applied to d, DST included.
func (d *UserDate) ZoneOffset() time.Duration {
	return d.Adjusted().Sub(d.raw)
}
