// Package constants defines shared constants for the userdate packages.
package constants

import "time"

// TransitionHour is the wall-clock hour at which the US DST rule switches.
const TransitionHour = 2

// SpringMonth and FallMonth bound the US DST window.
const (
	SpringMonth = time.March
	FallMonth   = time.November
)

// ISOLayout is the zone-less ISO-8601 form used for raw UTC fields.
const ISOLayout = "2006-01-02T15:04:05"

// GMTLayout renders a value the way a browser's toUTCString does.
// The zoned view uses it too, since zoned values are stored as UTC fields.
const GMTLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

// DateLayout matches Date.prototype.toDateString.
const DateLayout = "Mon Jan 02 2006"

// TimeLayout is the time-of-day counterpart of GMTLayout.
const TimeLayout = "15:04:05 GMT"
