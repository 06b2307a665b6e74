package datefmt

import (
	"strconv"
	"strings"
)

// ticksAtEpoch is the number of 100ns ticks between 0001-01-01 and 1970-01-01.
const ticksAtEpoch = 621355968000000000

// Pattern formats Fields with datepicker codes:
//
//	d  day of month (no leading zero)   dd day of month (two digit)
//	o  day of year (no leading zeros)   oo day of year (three digit)
//	D  day name short                   DD day name long
//	m  month of year (no leading zero)  mm month of year (two digit)
//	M  month name short                 MM month name long
//	y  year (two digit)                 yy year (four digit)
//	@  Unix timestamp (ms since 01/01/1970)
//	!  Windows ticks (100ns since 01/01/0001)
//	'...' literal text                  '' single quote
//
// Anything else is copied through.
type Pattern struct {
	DayNames        []string
	DayNamesShort   []string
	MonthNames      []string
	MonthNamesShort []string
}

var english = Pattern{
	DayNames:        []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	DayNamesShort:   []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	MonthNames:      []string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	MonthNamesShort: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
}

// English returns a Pattern with English day and month names.
func English() Pattern {
	return english
}

// FormatDate renders f according to pattern.
func (p Pattern) FormatDate(pattern string, f Fields) string {
	if len(p.DayNames) != 7 || len(p.DayNamesShort) != 7 || len(p.MonthNames) != 12 || len(p.MonthNamesShort) != 12 {
		p = english
	}

	var b strings.Builder
	literal := false
	n := len(pattern)
	for i := 0; i < n; i++ {
		c := pattern[i]
		// lookAhead consumes the next byte when it repeats match.
		lookAhead := func(match byte) bool {
			if i+1 < n && pattern[i+1] == match {
				i++
				return true
			}
			return false
		}

		if literal {
			if c == '\'' && !lookAhead('\'') {
				literal = false
			} else {
				b.WriteByte(c)
			}
			continue
		}

		switch c {
		case 'd':
			b.WriteString(pad(f.Day, lookAhead('d'), 2))
		case 'o':
			b.WriteString(pad(f.YearDay, lookAhead('o'), 3))
		case 'D':
			if lookAhead('D') {
				b.WriteString(p.DayNames[f.Weekday])
			} else {
				b.WriteString(p.DayNamesShort[f.Weekday])
			}
		case 'm':
			b.WriteString(pad(int(f.Month), lookAhead('m'), 2))
		case 'M':
			if lookAhead('M') {
				b.WriteString(p.MonthNames[f.Month-1])
			} else {
				b.WriteString(p.MonthNamesShort[f.Month-1])
			}
		case 'y':
			if lookAhead('y') {
				b.WriteString(strconv.Itoa(f.Year))
			} else {
				b.WriteString(pad(f.Year%100, true, 2))
			}
		case '@':
			b.WriteString(strconv.FormatInt(f.UnixMilli, 10))
		case '!':
			b.WriteString(strconv.FormatInt(f.UnixMilli*10000+ticksAtEpoch, 10))
		case '\'':
			if lookAhead('\'') {
				b.WriteByte('\'')
			} else {
				literal = true
			}
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func pad(v int, padded bool, width int) string {
	s := strconv.Itoa(v)
	if !padded {
		return s
	}
	for len(s) < width {
		s = "0" + s
	}
	return s
}
