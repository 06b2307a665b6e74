package userdate

import (
	"testing"
	"time"

	"github.com/codeGROOVE-dev/userdate/pkg/dst"
	"github.com/codeGROOVE-dev/userdate/pkg/timezone"
	"github.com/codeGROOVE-dev/userdate/pkg/tzconvert"
)

var instants = []time.Time{
	utc(2024, time.January, 15, 12, 0, 0),
	utc(2024, time.March, 10, 7, 30, 0),
	utc(2024, time.July, 4, 12, 0, 0),
	utc(2024, time.November, 3, 6, 30, 0),
	utc(2024, time.December, 31, 23, 59, 59),
}

func TestAdjustWithoutDST(t *testing.T) {
	windows := dst.NewCalculator(utcHost)
	zones := []timezone.Zone{
		{Name: "Half Hour", OffsetHours: -7.5},
		{Name: "Quarter Hour", OffsetHours: 2.25},
	}
	for _, z := range timezone.Catalog() {
		if !z.UseDST {
			zones = append(zones, z)
		}
	}

	for _, z := range zones {
		for _, x := range instants {
			want := x.Add(tzconvert.HoursToDuration(z.OffsetHours))
			if got := Adjust(x, z, windows); !got.Equal(want) {
				t.Errorf("Adjust(%v, %s) = %v, want %v", x, z.Name, got, want)
			}
		}
	}
}

func TestAdjustUSRule(t *testing.T) {
	windows := dst.NewCalculator(utcHost)
	w := dst.USWindow(2024, time.UTC)

	for _, z := range timezone.Catalog() {
		if z.Rule != timezone.RuleUS {
			continue
		}
		offset := tzconvert.HoursToDuration(z.OffsetHours)
		shift := tzconvert.HoursToDuration(z.DSTShiftHours)

		tests := []struct {
			name    string
			raw     time.Time
			wantDST bool
		}{
			{"inside", utc(2024, time.July, 1, 12, 0, 0), true},
			{"outside", utc(2024, time.January, 15, 12, 0, 0), false},
			{"at start", w.Start.Add(-offset), true},
			{"before start", w.Start.Add(-offset - time.Millisecond), false},
			{"before end", w.End.Add(-offset - time.Millisecond), true},
			{"at end", w.End.Add(-offset), false},
		}

		for _, tt := range tests {
			want := tt.raw.Add(offset)
			if tt.wantDST {
				want = want.Add(shift)
			}
			if got := Adjust(tt.raw, z, windows); !got.Equal(want) {
				t.Errorf("%s %s: Adjust() = %v, want %v", z.Name, tt.name, got, want)
			}
		}
	}
}

func TestAdjustWithoutWindowRule(t *testing.T) {
	windows := dst.NewCalculator(utcHost)
	experiment := mustZone(t, "Experiment Time")
	unruled := mustZone(t, "Eastern Time")
	unruled.Rule = timezone.RuleNone

	for _, z := range []timezone.Zone{experiment, unruled} {
		for _, x := range instants {
			want := x.Add(tzconvert.HoursToDuration(z.OffsetHours))
			if got := Adjust(x, z, windows); !got.Equal(want) {
				t.Errorf("Adjust(%v, %s/%v) = %v, want %v", x, z.Name, z.Rule, got, want)
			}
		}
	}
}

func TestReverseRoundTrip(t *testing.T) {
	windows := dst.NewCalculator(utcHost)
	zones := append(timezone.Catalog(), timezone.Zone{
		Name:          "Wide Shift",
		OffsetHours:   2.25,
		DSTShiftHours: 2.25,
		UseDST:        true,
		Rule:          timezone.RuleUS,
	})

	start := utc(2024, time.January, 1, 0, 0, 0)
	end := utc(2025, time.January, 1, 0, 0, 0)

	for _, z := range zones {
		offset := tzconvert.HoursToDuration(z.OffsetHours)
		shift := tzconvert.HoursToDuration(z.DSTShiftHours)
		w, ruled := windows.Window(2024, z.Rule)
		repeated := 0

		for x := start; x.Before(end); x = x.Add(37 * time.Minute) {
			want := x
			// Readings in the hour after the window ends map to daylight time.
			if z.UseDST && ruled {
				std := x.Add(offset)
				if !std.Before(w.End) && std.Before(w.End.Add(shift)) {
					want = x.Add(-shift)
					repeated++
				}
			}
			if got := Reverse(Adjust(x, z, windows), z, windows); !got.Equal(want) {
				t.Fatalf("%s: Reverse(Adjust(%v)) = %v, want %v", z.Name, x, got, want)
			}
		}

		if z.UseDST && ruled && repeated == 0 {
			t.Errorf("%s: no samples fell in the repeated hour", z.Name)
		}
	}
}

func TestZoneOffset(t *testing.T) {
	tests := []struct {
		zone string
		raw  time.Time
		want time.Duration
	}{
		{"Eastern Time", utc(2024, time.July, 4, 16, 0, 0), -4 * time.Hour},
		{"Eastern Time", utc(2024, time.January, 15, 17, 0, 0), -5 * time.Hour},
		{"Mountain Time - Arizona", utc(2024, time.July, 4, 16, 0, 0), -7 * time.Hour},
		{"Experiment Time", utc(2024, time.July, 4, 16, 0, 0), -6 * time.Hour},
	}

	for _, tt := range tests {
		d := newAt(t, tt.raw, timezone.NewRef(mustZone(t, tt.zone)))
		if got := d.ZoneOffset(); got != tt.want {
			t.Errorf("%s at %v: ZoneOffset() = %v, want %v", tt.zone, tt.raw, got, tt.want)
		}
	}
}

type alwaysWindow struct{}

func (alwaysWindow) Window(int, timezone.DSTRule) (dst.Window, bool) {
	return dst.Window{
		Start: utc(1900, time.January, 1, 0, 0, 0),
		End:   utc(2100, time.January, 1, 0, 0, 0),
	}, true
}

func TestWithWindows(t *testing.T) {
	ref := timezone.NewRef(mustZone(t, "Experiment Time"))
	d := newAt(t, utc(2024, time.July, 4, 16, 0, 0), ref, WithWindows(alwaysWindow{}))

	if !d.IsDST() {
		t.Error("IsDST() = false with an always-open window source")
	}
	if want := -3*time.Hour - 45*time.Minute; d.ZoneOffset() != want {
		t.Errorf("ZoneOffset() = %v, want %v", d.ZoneOffset(), want)
	}
}
