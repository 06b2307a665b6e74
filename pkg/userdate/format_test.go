package userdate

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/codeGROOVE-dev/userdate/pkg/datefmt"
	"github.com/codeGROOVE-dev/userdate/pkg/timezone"
)

func TestFormatting(t *testing.T) {
	d := newAt(t, utc(2024, time.March, 10, 7, 30, 0), timezone.NewRef(mustZone(t, "Eastern Time")))

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"ToUTCISO", d.ToUTCISO(), "2024-03-10T07:30:00"},
		{"String", d.String(), "Sun, 10 Mar 2024 03:30:00 GMT"},
		{"UTCString", d.UTCString(), "Sun, 10 Mar 2024 07:30:00 GMT"},
		{"DateString", d.DateString(), "Sun Mar 10 2024"},
		{"TimeString", d.TimeString(), "03:30:00 GMT"},
		{"Format long", d.Format("DD, MM d, yy"), "Sunday, March 10, 2024"},
		{"Format numeric", d.Format("yy-mm-dd"), "2024-03-10"},
		{"LocaleString", d.LocaleString(), "3/10/2024, 3:30:00 AM"},
		{"LocaleDateString", d.LocaleDateString(), "3/10/2024"},
		{"LocaleTimeString", d.LocaleTimeString(), "3:30:00 AM"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	d := newAt(t, utc(2024, time.March, 10, 7, 30, 0), timezone.NewRef(mustZone(t, "Eastern Time")))

	b, err := json.Marshal(struct {
		At *UserDate `json:"at"`
	}{d})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if want := `{"at":"2024-03-10T07:30:00"}`; string(b) != want {
		t.Errorf("json.Marshal() = %s, want %s", b, want)
	}
}

func TestLocaleFormatterOption(t *testing.T) {
	gb, err := datefmt.ParseLocale("en-GB")
	if err != nil {
		t.Fatalf("ParseLocale() error = %v", err)
	}
	d := newAt(t, utc(2024, time.March, 10, 7, 30, 0), timezone.NewRef(mustZone(t, "Eastern Time")), WithLocaleFormatter(gb))

	if got, want := d.LocaleString(), "10/03/2024, 03:30:00"; got != want {
		t.Errorf("LocaleString() = %q, want %q", got, want)
	}
}

type recordingFormatter struct {
	pattern string
	fields  datefmt.Fields
}

func (r *recordingFormatter) FormatDate(pattern string, f datefmt.Fields) string {
	r.pattern = pattern
	r.fields = f
	return "formatted"
}

func TestFormatterOption(t *testing.T) {
	rec := &recordingFormatter{}
	d := newAt(t, utc(2024, time.March, 10, 7, 30, 45), timezone.NewRef(mustZone(t, "Eastern Time")), WithFormatter(rec))

	if got := d.Format("custom"); got != "formatted" {
		t.Errorf("Format() = %q, want formatted", got)
	}
	if rec.pattern != "custom" {
		t.Errorf("pattern = %q, want custom", rec.pattern)
	}
	if rec.fields.Hour != 3 || rec.fields.Minute != 30 || rec.fields.Second != 45 || rec.fields.Day != 10 {
		t.Errorf("fields = %+v, want zoned 2024-03-10 03:30:45", rec.fields)
	}
}

func TestFormatWeekRange(t *testing.T) {
	ref := timezone.NewRef(mustZone(t, "Eastern Time"))

	tests := []struct {
		name string
		raw  time.Time
		want string
	}{
		{"within a year", utc(2024, time.July, 4, 16, 0, 0), "Jun 30 - Jul 6, 2024"},
		{"across years", utc(2024, time.December, 31, 17, 0, 0), "Dec 29, 2024 - Jan 4, 2025"},
	}

	for _, tt := range tests {
		d := newAt(t, tt.raw, ref)
		if got := d.FormatWeekRange("M d", "M d, yy"); got != tt.want {
			t.Errorf("%s: FormatWeekRange() = %q, want %q", tt.name, got, tt.want)
		}
	}
}
