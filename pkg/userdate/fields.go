package userdate

import (
	"time"

	"github.com/codeGROOVE-dev/userdate/pkg/datefmt"
)

// Year returns the zoned year.
func (d *UserDate) Year() int { return d.Adjusted().Year() }

// Month returns the zoned month.
func (d *UserDate) Month() time.Month { return d.Adjusted().Month() }

// Day returns the zoned day of the month.
func (d *UserDate) Day() int { return d.Adjusted().Day() }

// Weekday returns the zoned day of the week.
func (d *UserDate) Weekday() time.Weekday { return d.Adjusted().Weekday() }

// YearDay returns the zoned day of the year.
func (d *UserDate) YearDay() int { return d.Adjusted().YearDay() }

// Hour returns the zoned hour.
func (d *UserDate) Hour() int { return d.Adjusted().Hour() }

// Minute returns the zoned minute.
func (d *UserDate) Minute() int { return d.Adjusted().Minute() }

// Second returns the raw second. It is not zoned.
func (d *UserDate) Second() int { return d.raw.Second() }

// Millisecond returns the raw millisecond. It is not zoned.
func (d *UserDate) Millisecond() int { return d.raw.Nanosecond() / int(time.Millisecond) }

// The UTC accessors read the raw instant with no adjustment.
func (d *UserDate) UTCYear() int             { return d.raw.Year() }
func (d *UserDate) UTCMonth() time.Month     { return d.raw.Month() }
func (d *UserDate) UTCDay() int              { return d.raw.Day() }
func (d *UserDate) UTCWeekday() time.Weekday { return d.raw.Weekday() }
func (d *UserDate) UTCHour() int             { return d.raw.Hour() }
func (d *UserDate) UTCMinute() int           { return d.raw.Minute() }
func (d *UserDate) UTCSecond() int           { return d.raw.Second() }
func (d *UserDate) UTCMillisecond() int      { return d.raw.Nanosecond() / int(time.Millisecond) }

// Time returns the raw instant.
func (d *UserDate) Time() time.Time { return d.raw }

// UnixMilli returns the raw instant in milliseconds since the Unix epoch.
func (d *UserDate) UnixMilli() int64 { return d.raw.UnixMilli() }

// CivilTime returns the zoned calendar reading as a UTC time: zoned date,
// hour and minute, raw second and sub-second.
func (d *UserDate) CivilTime() time.Time {
	adj := d.Adjusted()
	return time.Date(adj.Year(), adj.Month(), adj.Day(), adj.Hour(), adj.Minute(),
		d.raw.Second(), d.raw.Nanosecond(), time.UTC)
}

// Fields returns the zoned reading handed to formatters.
func (d *UserDate) Fields() datefmt.Fields {
	return datefmt.FieldsOf(d.CivilTime())
}
