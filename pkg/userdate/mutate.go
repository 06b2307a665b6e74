package userdate

import "time"

// The setters below write raw UTC fields with no zone adjustment.
// Out-of-range values roll over: SetHour(25) moves to 01:00 the next day.

// SetYear sets the raw year.
func (d *UserDate) SetYear(year int) {
	r := d.raw
	d.raw = time.Date(year, r.Month(), r.Day(), r.Hour(), r.Minute(), r.Second(), r.Nanosecond(), time.UTC)
}

// SetMonth sets the raw month.
func (d *UserDate) SetMonth(month time.Month) {
	r := d.raw
	d.raw = time.Date(r.Year(), month, r.Day(), r.Hour(), r.Minute(), r.Second(), r.Nanosecond(), time.UTC)
}

// SetDay sets the raw day of the month.
func (d *UserDate) SetDay(day int) {
	r := d.raw
	d.raw = time.Date(r.Year(), r.Month(), day, r.Hour(), r.Minute(), r.Second(), r.Nanosecond(), time.UTC)
}

// SetHour sets the raw hour.
func (d *UserDate) SetHour(hour int) {
	r := d.raw
	d.raw = time.Date(r.Year(), r.Month(), r.Day(), hour, r.Minute(), r.Second(), r.Nanosecond(), time.UTC)
}

// SetMinute sets the raw minute.
func (d *UserDate) SetMinute(minute int) {
	r := d.raw
	d.raw = time.Date(r.Year(), r.Month(), r.Day(), r.Hour(), minute, r.Second(), r.Nanosecond(), time.UTC)
}

// SetSecond sets the raw second.
func (d *UserDate) SetSecond(sec int) {
	r := d.raw
	d.raw = time.Date(r.Year(), r.Month(), r.Day(), r.Hour(), r.Minute(), sec, r.Nanosecond(), time.UTC)
}

// SetMillisecond sets the raw millisecond. Sub-millisecond precision is
// dropped.
func (d *UserDate) SetMillisecond(ms int) {
	r := d.raw
	d.raw = time.Date(r.Year(), r.Month(), r.Day(), r.Hour(), r.Minute(), r.Second(), ms*int(time.Millisecond), time.UTC)
}

// SetTime replaces the raw instant.
func (d *UserDate) SetTime(t time.Time) {
	d.raw = t.UTC()
}
