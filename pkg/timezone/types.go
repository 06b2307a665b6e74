package timezone

import (
	"encoding/json"
	"fmt"
)

// DSTRule identifies which daylight-saving calendar rule a zone follows.
type DSTRule int

const (
	// RuleNone means no DST window can be computed, even if UseDST is set.
	RuleNone DSTRule = iota
	// RuleUS is the simplified US rule: second Sunday of March to first
	// Sunday of November, switching at 02:00 wall clock.
	RuleUS
)

func (r DSTRule) String() string {
	switch r {
	case RuleUS:
		return "us"
	default:
		return "none"
	}
}

// UnmarshalJSON accepts the rule names produced by String.
func (r *DSTRule) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("decoding dst rule: %w", err)
	}
	switch s {
	case "us":
		*r = RuleUS
	case "", "none":
		*r = RuleNone
	default:
		return fmt.Errorf("unknown dst rule %q", s)
	}
	return nil
}

// Zone describes a named timezone with a fixed UTC offset and an optional
// DST shift. DSTShiftHours is only meaningful when UseDST is true.
type Zone struct {
	Continent     string  `json:"Continent"`
	Region        string  `json:"Region"`
	Name          string  `json:"Name"`
	OffsetText    string  `json:"GmtOffsetText"`
	OffsetHours   float64 `json:"GmtOffsetHours"`
	DSTShiftHours float64 `json:"DSTOffset,omitempty"`
	UseDST        bool    `json:"UseDST"`
	Rule          DSTRule `json:"DSTRule"`
}
