package timezone

import (
	"testing"

	"github.com/codeGROOVE-dev/userdate/pkg/tzconvert"
)

func TestOffsetString(t *testing.T) {
	tests := []struct {
		offset float64
		want   string
	}{
		{0, "00:00"},
		{-7, "-07:00"},
		{-7.5, "-07:30"},
		{2.25, "+02:15"},
		{-10, "-10:00"},
		{5.75, "+05:45"},
		{12, "+12:00"},
		{9, "+09:00"},
	}

	for _, tt := range tests {
		z := Zone{OffsetHours: tt.offset}
		if got := z.OffsetString(); got != tt.want {
			t.Errorf("OffsetString(%v) = %q, want %q", tt.offset, got, tt.want)
		}
	}
}

func TestDisplayString(t *testing.T) {
	eastern, err := FromName("Eastern Time")
	if err != nil {
		t.Fatalf("FromName() error = %v", err)
	}
	if got, want := eastern.DisplayString(), "(GMT-05:00)Eastern Time, dst=1"; got != want {
		t.Errorf("DisplayString() = %q, want %q", got, want)
	}

	hawaii, err := FromName("Hawaii Time")
	if err != nil {
		t.Fatalf("FromName() error = %v", err)
	}
	if got, want := hawaii.String(), "(GMT-10:00)Hawaii Time, dst=0"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if hawaii.DSTString() != "0" || eastern.DSTString() != "1" {
		t.Errorf("DSTString() = %q/%q, want 0/1", hawaii.DSTString(), eastern.DSTString())
	}
}

func TestCatalogOffsetTextMatchesHours(t *testing.T) {
	for _, z := range Catalog() {
		got, err := tzconvert.ParseOffset(z.OffsetText)
		if err != nil {
			t.Errorf("%s: ParseOffset(%q) error = %v", z.Name, z.OffsetText, err)
			continue
		}
		if got != z.OffsetHours {
			t.Errorf("%s: OffsetText %q parses to %v, OffsetHours is %v", z.Name, z.OffsetText, got, z.OffsetHours)
		}
		if "GMT"+z.OffsetString() != z.OffsetText {
			t.Errorf("%s: OffsetString() = %q, OffsetText = %q", z.Name, z.OffsetString(), z.OffsetText)
		}
	}
}
