package timezone

import (
	"fmt"

	"github.com/codeGROOVE-dev/userdate/pkg/tzconvert"
)

// DisplayString returns e.g. "(GMT-05:00)Eastern Time, dst=1".
func (z Zone) DisplayString() string {
	return "(" + z.OffsetText + ")" + z.Name + ", dst=" + z.DSTString()
}

func (z Zone) String() string {
	return z.DisplayString()
}

// DSTString returns "1" when the zone observes DST and "0" otherwise.
func (z Zone) DSTString() string {
	if z.UseDST {
		return "1"
	}
	return "0"
}

// OffsetString formats the standard offset as H:MM. Zero prints as "00:00",
// other hours get an explicit sign and are zero-padded to two digits.
// Components are truncated toward zero, so -7.5 prints as "-07:30".
func (z Zone) OffsetString() string {
	hours, mins, _ := tzconvert.SplitHours(z.OffsetHours)
	if mins < 0 {
		mins = -mins
	}

	var h string
	switch {
	case hours == 0:
		h = "00"
	case hours > 0:
		h = fmt.Sprintf("+%02d", hours)
	default:
		h = fmt.Sprintf("-%02d", -hours)
	}
	return fmt.Sprintf("%s:%02d", h, mins)
}
