package datefmt

import (
	"fmt"

	"golang.org/x/text/language"
)

type layoutSet struct {
	date     string
	time     string
	dateTime string
}

var (
	supportedTags = []language.Tag{
		language.AmericanEnglish, // first entry is the fallback
		language.BritishEnglish,
		language.German,
		language.French,
		language.Japanese,
	}
	supportedLayouts = []layoutSet{
		{date: "1/2/2006", time: "3:04:05 PM", dateTime: "1/2/2006, 3:04:05 PM"},
		{date: "02/01/2006", time: "15:04:05", dateTime: "02/01/2006, 15:04:05"},
		{date: "2.1.2006", time: "15:04:05", dateTime: "2.1.2006, 15:04:05"},
		{date: "02/01/2006", time: "15:04:05", dateTime: "02/01/2006 15:04:05"},
		{date: "2006/1/2", time: "15:04:05", dateTime: "2006/1/2 15:04:05"},
	}
	matcher = language.NewMatcher(supportedTags)
)

// Locale renders Fields in a short locale-specific form.
type Locale struct {
	tag     language.Tag
	layouts layoutSet
}

// DefaultLocale returns the en-US locale.
func DefaultLocale() Locale {
	return Locale{tag: supportedTags[0], layouts: supportedLayouts[0]}
}

// ParseLocale resolves a BCP 47 tag such as "en-GB" or "de-AT" to the
// closest supported locale. Tags with no reasonable match fall back to en-US.
func ParseLocale(tag string) (Locale, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return Locale{}, fmt.Errorf("parsing locale %q: %w", tag, err)
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		idx = 0
	}
	return Locale{tag: supportedTags[idx], layouts: supportedLayouts[idx]}, nil
}

// Tag returns the supported tag the locale resolved to.
func (l Locale) Tag() language.Tag {
	if l.layouts.date == "" {
		return supportedTags[0]
	}
	return l.tag
}

func (l Locale) set() layoutSet {
	if l.layouts.date == "" {
		return supportedLayouts[0]
	}
	return l.layouts
}

// LocaleString renders date and time, e.g. "3/10/2024, 3:30:00 AM".
func (l Locale) LocaleString(f Fields) string {
	return f.Time().Format(l.set().dateTime)
}

// LocaleDateString renders the date, e.g. "3/10/2024".
func (l Locale) LocaleDateString(f Fields) string {
	return f.Time().Format(l.set().date)
}

// LocaleTimeString renders the time, e.g. "3:30:00 AM".
func (l Locale) LocaleTimeString(f Fields) string {
	return f.Time().Format(l.set().time)
}
