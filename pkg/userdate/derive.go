package userdate

import "time"

const (
	day           = 24 * time.Hour
	minutesPerDay = 24 * 60
)

// AddDays returns a new UserDate n days after d, sharing d's zone.
func (d *UserDate) AddDays(n int) *UserDate {
	return d.derive(d.raw.AddDate(0, 0, n))
}

// AddMinutes returns a new UserDate n minutes after d, sharing d's zone.
func (d *UserDate) AddMinutes(n int) *UserDate {
	// Whole days go through AddDate so large n cannot overflow a Duration.
	days, rest := n/minutesPerDay, n%minutesPerDay
	return d.derive(d.raw.AddDate(0, 0, days).Add(time.Duration(rest) * time.Minute))
}

// FirstDayOfWeek returns the Sunday of d's zoned week, at d's time of day.
func (d *UserDate) FirstDayOfWeek() *UserDate {
	return d.AddDays(-int(d.Weekday()))
}

// LastDayOfWeek returns the Saturday of d's zoned week, at d's time of day.
func (d *UserDate) LastDayOfWeek() *UserDate {
	return d.AddDays(6 - int(d.Weekday()))
}

// timeOfDay is the zoned hour and minute plus the raw second.
func (d *UserDate) timeOfDay() time.Duration {
	return time.Duration(d.Hour())*time.Hour +
		time.Duration(d.Minute())*time.Minute +
		time.Duration(d.Second())*time.Second
}

// StartOfDay moves d to 00:00:00.000 of its zoned day and returns d.
func (d *UserDate) StartOfDay() *UserDate {
	d.SetMillisecond(0)
	d.raw = d.raw.Add(-d.timeOfDay())
	return d
}

// EndOfDay moves d to 23:59:59.000 of its zoned day and returns d.
func (d *UserDate) EndOfDay() *UserDate {
	d.SetMillisecond(0)
	d.raw = d.raw.Add(day - d.timeOfDay() - time.Second)
	return d
}

// StartOfWeek returns the start of d's zoned Sunday as a new UserDate.
func (d *UserDate) StartOfWeek() *UserDate {
	return d.FirstDayOfWeek().StartOfDay()
}

// EndOfWeek returns the end of d's zoned Saturday as a new UserDate.
func (d *UserDate) EndOfWeek() *UserDate {
	return d.LastDayOfWeek().EndOfDay()
}

// IsSameDate reports whether d and other share a UTC calendar date. Zones
// are ignored.
func (d *UserDate) IsSameDate(other *UserDate) bool {
	return d.raw.Year() == other.raw.Year() &&
		d.raw.Month() == other.raw.Month() &&
		d.raw.Day() == other.raw.Day()
}

// HoursDifference returns the hours between the civil readings of d and
// other, each taken in its own zone. Two dates at the same instant in
// different zones differ by the zones' offset gap.
func (d *UserDate) HoursDifference(other *UserDate) float64 {
	ms := d.CivilTime().UnixMilli() - other.CivilTime().UnixMilli()
	return float64(ms) / float64(time.Hour/time.Millisecond)
}
