// Package datefmt renders already-zoned calendar fields as text: pattern
// formatting compatible with the jQuery UI datepicker, and short locale
// forms in the style of Date.prototype.toLocaleString.
package datefmt

import "time"

// Fields is a zoned calendar reading handed to formatters. Nothing in it is
// adjusted further.
type Fields struct {
	Year        int
	Month       time.Month
	Day         int
	Weekday     time.Weekday
	YearDay     int
	Hour        int
	Minute      int
	Second      int
	Millisecond int
	// UnixMilli is the civil instant: the fields above read as UTC.
	UnixMilli int64
}

// Time returns the fields as a UTC time.Time.
func (f Fields) Time() time.Time {
	return time.Date(f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second, f.Millisecond*int(time.Millisecond), time.UTC)
}

// FieldsOf reads Fields off t in its own location.
func FieldsOf(t time.Time) Fields {
	return Fields{
		Year:        t.Year(),
		Month:       t.Month(),
		Day:         t.Day(),
		Weekday:     t.Weekday(),
		YearDay:     t.YearDay(),
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Millisecond: t.Nanosecond() / int(time.Millisecond),
		UnixMilli:   time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC).UnixMilli(),
	}
}
