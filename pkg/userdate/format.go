package userdate

import (
	"encoding/json"

	"github.com/codeGROOVE-dev/userdate/pkg/constants"
)

// ToUTCISO returns the raw instant as YYYY-MM-DDThh:mm:ss.
func (d *UserDate) ToUTCISO() string {
	return d.raw.Format(constants.ISOLayout)
}

// MarshalJSON encodes d as its quoted ToUTCISO form.
func (d *UserDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.ToUTCISO())
}

// String returns the zoned view, e.g. "Sun, 10 Mar 2024 03:30:00 GMT".
func (d *UserDate) String() string {
	return d.Adjusted().Format(constants.GMTLayout)
}

// UTCString returns the raw instant in the same layout as String.
func (d *UserDate) UTCString() string {
	return d.raw.Format(constants.GMTLayout)
}

// DateString returns the zoned date, e.g. "Sun Mar 10 2024".
func (d *UserDate) DateString() string {
	return d.Adjusted().Format(constants.DateLayout)
}

// TimeString returns the zoned time of day, e.g. "03:30:00 GMT".
func (d *UserDate) TimeString() string {
	return d.Adjusted().Format(constants.TimeLayout)
}

// Format renders the zoned fields with the configured Formatter.
func (d *UserDate) Format(pattern string) string {
	return d.formatter.FormatDate(pattern, d.Fields())
}

// FormatWeekRange renders d's zoned week as "start - end". The start uses
// first unless the week spans two years, in which case both use second.
func (d *UserDate) FormatWeekRange(first, second string) string {
	start, end := d.FirstDayOfWeek(), d.LastDayOfWeek()
	startText := start.Format(first)
	if start.Year() != end.Year() {
		startText = start.Format(second)
	}
	return startText + " - " + end.Format(second)
}

// LocaleString renders the zoned date and time with the LocaleFormatter.
func (d *UserDate) LocaleString() string {
	return d.locale.LocaleString(d.Fields())
}

// LocaleDateString renders the zoned date with the LocaleFormatter.
func (d *UserDate) LocaleDateString() string {
	return d.locale.LocaleDateString(d.Fields())
}

// LocaleTimeString renders the zoned time with the LocaleFormatter.
func (d *UserDate) LocaleTimeString() string {
	return d.locale.LocaleTimeString(d.Fields())
}
