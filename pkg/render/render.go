// Package render formats UserDates and the zone catalog for a terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/codeGROOVE-dev/userdate/pkg/timezone"
	"github.com/codeGROOVE-dev/userdate/pkg/tzconvert"
	"github.com/codeGROOVE-dev/userdate/pkg/userdate"
)

const rule = 50

var (
	dstColor   = color.New(color.FgYellow)
	nowColor   = color.New(color.FgGreen)
	greyColor  = color.New(color.FgHiBlack)
	titleColor = color.New(color.Bold)
)

// offsetText formats a total zone offset the way catalog offsets print.
func offsetText(d *userdate.UserDate) string {
	return timezone.Zone{OffsetHours: tzconvert.DurationToHours(d.ZoneOffset())}.OffsetString()
}

// Summary describes d: its zone, zoned and UTC readings, and the offset in
// effect.
func Summary(d *userdate.UserDate) string {
	var out strings.Builder
	z := d.Zone().Load()

	out.WriteString(titleColor.Sprintf("🕒 %s", z.Name))
	if z.Continent != "" {
		out.WriteString(greyColor.Sprintf(" (%s/%s)", z.Continent, z.Region))
	}
	out.WriteString("\n" + strings.Repeat("─", rule) + "\n")

	fmt.Fprintf(&out, "Zoned:    %s\n", d.String())
	fmt.Fprintf(&out, "UTC:      %s\n", d.UTCString())
	fmt.Fprintf(&out, "ISO:      %s\n", d.ToUTCISO())
	fmt.Fprintf(&out, "Locale:   %s\n", d.LocaleString())

	offset := offsetText(d)
	if d.IsDST() {
		offset += " " + dstColor.Sprint("DST")
	}
	fmt.Fprintf(&out, "Offset:   %s (standard %s)\n", offset, z.OffsetText)
	fmt.Fprintf(&out, "Week:     %s\n", d.FormatWeekRange("M d", "M d, yy"))
	return out.String()
}

// DayStrip lists the 24 hours that follow the start of d's zoned day. Each
// line shows the zoned reading, a D marker while the DST shift applies, and
// the matching UTC time. The hour containing d is flagged.
func DayStrip(d *userdate.UserDate) string {
	var out strings.Builder
	start := d.Clone().StartOfDay()

	out.WriteString(fmt.Sprintf("📅 %s\n", d.DateString()))
	out.WriteString(strings.Repeat("─", rule) + "\n")

	at := d.Time()
	for i := range 24 {
		h := start.AddMinutes(60 * i)
		line := fmt.Sprintf("%02d:%02d ", h.Hour(), h.Minute())

		if h.IsDST() {
			line += dstColor.Sprint("D") + " "
		} else {
			line += "  "
		}

		line += greyColor.Sprintf("UTC %02d:%02d", h.UTCHour(), h.UTCMinute())

		next := h.AddMinutes(60).Time()
		if !at.Before(h.Time()) && at.Before(next) {
			line += " " + nowColor.Sprint("◀")
		}
		out.WriteString(line + "\n")
	}
	return out.String()
}

// Catalog lists zones one per line with their display string and rule.
func Catalog(zones []timezone.Zone) string {
	var out strings.Builder
	out.WriteString("🌍 Zones\n")
	out.WriteString(strings.Repeat("─", rule) + "\n")

	for _, z := range zones {
		line := fmt.Sprintf("%-28s %s", z.Name, z.OffsetString())
		switch {
		case z.UseDST && z.Rule == timezone.RuleUS:
			line += " " + dstColor.Sprintf("dst=%s rule=%s", z.DSTString(), z.Rule)
		case z.UseDST:
			line += " " + greyColor.Sprintf("dst=%s rule=%s", z.DSTString(), z.Rule)
		default:
			line += " dst=0"
		}
		out.WriteString(line + "\n")
	}
	return out.String()
}
