// Package userdate holds a moment in time together with a display timezone
// and reads that moment's calendar fields as they appear in the zone.
//
// A UserDate stores its instant UTC-normalized (the raw instant) and derives
// every zoned reading from it through Adjust: the zone's standard offset is
// added and, when the zone's DST window contains the shifted value, the DST
// shift is added on top. The result is itself a UTC time.Time whose fields
// are the zoned wall clock.
//
// Two families of accessors exist. Year, Month, Day, Weekday, YearDay, Hour
// and Minute are zoned. Second and Millisecond always come from the raw
// instant, as do the UTC* accessors. Setters write raw UTC fields directly.
//
// The zone is held through a *timezone.Ref, so re-pointing one Ref re-zones
// every UserDate that shares it. A UserDate itself is not safe for
// concurrent mutation.
package userdate

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/maypok86/otter/v2"

	"github.com/codeGROOVE-dev/userdate/pkg/datefmt"
	"github.com/codeGROOVE-dev/userdate/pkg/dst"
	"github.com/codeGROOVE-dev/userdate/pkg/hostclock"
	"github.com/codeGROOVE-dev/userdate/pkg/timezone"
)

// WindowSource supplies DST windows for a UTC year and rule.
type WindowSource interface {
	Window(year int, rule timezone.DSTRule) (dst.Window, bool)
}

// Formatter renders zoned fields with a pattern string.
type Formatter interface {
	FormatDate(pattern string, f datefmt.Fields) string
}

// LocaleFormatter renders zoned fields in a locale's short forms.
type LocaleFormatter interface {
	LocaleString(f datefmt.Fields) string
	LocaleDateString(f datefmt.Fields) string
	LocaleTimeString(f datefmt.Fields) string
}

// UserDate is an instant plus the zone it is displayed in.
type UserDate struct {
	raw       time.Time
	zone      *timezone.Ref
	windows   WindowSource
	formatter Formatter
	locale    LocaleFormatter
	logger    *slog.Logger
}

// Option configures New.
type Option func(*options)

type options struct {
	at        time.Time
	zone      *timezone.Ref
	clock     hostclock.Clock
	windows   WindowSource
	formatter Formatter
	locale    LocaleFormatter
	logger    *slog.Logger
	hasTime   bool
	wallClock bool
}

// WithTime sets the instant. The default is the clock's current time.
func WithTime(t time.Time) Option {
	return func(o *options) {
		o.at = t
		o.hasTime = true
		o.wallClock = false
	}
}

// WithWallClock sets the instant from a wall-clock reading in the date's
// zone: t's calendar fields are taken as-is, its location is ignored, and
// Reverse maps them back to the raw instant.
func WithWallClock(t time.Time) Option {
	return func(o *options) {
		o.at = t
		o.hasTime = true
		o.wallClock = true
	}
}

// WithZone attaches a shared zone handle. The default is the zone detected
// from the host clock.
func WithZone(ref *timezone.Ref) Option {
	return func(o *options) {
		o.zone = ref
	}
}

// WithClock sets the host clock used for "now", host zone detection and
// the DST window anchor.
func WithClock(c hostclock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// WithWindows overrides the DST window source.
func WithWindows(w WindowSource) Option {
	return func(o *options) {
		o.windows = w
	}
}

// WithFormatter sets the pattern formatter used by Format.
func WithFormatter(f Formatter) Option {
	return func(o *options) {
		o.formatter = f
	}
}

// WithLocaleFormatter sets the formatter used by the Locale* methods.
func WithLocaleFormatter(l LocaleFormatter) Option {
	return func(o *options) {
		o.locale = l
	}
}

// WithLogger sets the logger for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// calculators shares one window calculator per host location, so dates
// built against the same clock reuse memoised windows.
var calculators = otter.Must(&otter.Options[*time.Location, *dst.Calculator]{
	MaximumSize:     64,
	InitialCapacity: 4,
})

func windowsFor(clock hostclock.Clock) *dst.Calculator {
	loc := clock.Location()
	if c, ok := calculators.GetIfPresent(loc); ok {
		return c
	}
	c := dst.NewCalculator(hostclock.In(loc))
	calculators.Set(loc, c)
	return c
}

// New creates a UserDate. Without WithZone the zone is detected from the
// host; detection that matches no catalog entry is returned as an error
// wrapping timezone.ErrNotFound.
func New(opts ...Option) (*UserDate, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.clock == nil {
		o.clock = hostclock.Local()
	}
	if o.windows == nil {
		o.windows = windowsFor(o.clock)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	if o.formatter == nil {
		o.formatter = datefmt.English()
	}
	if o.locale == nil {
		o.locale = datefmt.DefaultLocale()
	}

	if o.zone == nil {
		z, err := timezone.FromHostWithLogger(o.clock, o.logger)
		if err != nil {
			return nil, fmt.Errorf("detecting host timezone: %w", err)
		}
		o.logger.Debug("zone detected from host", "zone", z.Name)
		o.zone = timezone.NewRef(z)
	}

	at := o.at
	if !o.hasTime {
		at = o.clock.Now()
	}

	d := &UserDate{
		zone:      o.zone,
		windows:   o.windows,
		formatter: o.formatter,
		locale:    o.locale,
		logger:    o.logger,
	}

	z := o.zone.Load()
	if o.wallClock {
		wall := time.Date(at.Year(), at.Month(), at.Day(), at.Hour(), at.Minute(), at.Second(), at.Nanosecond(), time.UTC)
		d.raw = Reverse(wall, z, o.windows)
	} else {
		d.raw = at.UTC()
	}

	if z.UseDST {
		if _, ok := o.windows.Window(d.raw.Year(), z.Rule); !ok {
			o.logger.Debug("zone observes DST but has no window rule; shift is never applied",
				"zone", z.Name, "shift_hours", z.DSTShiftHours)
		}
	}
	return d, nil
}

// derive returns a copy of d at raw, sharing d's zone handle.
func (d *UserDate) derive(raw time.Time) *UserDate {
	c := *d
	c.raw = raw.UTC()
	return &c
}

// Clone returns an independent copy that shares d's zone handle.
func (d *UserDate) Clone() *UserDate {
	return d.derive(d.raw)
}

// Zone returns the shared zone handle.
func (d *UserDate) Zone() *timezone.Ref {
	return d.zone
}

// ChangeZone attaches ref. The instant is unchanged; only its zoned view
// moves.
func (d *UserDate) ChangeZone(ref *timezone.Ref) {
	d.logger.Debug("zone changed", "from", d.zone.Load().Name, "to", ref.Load().Name, "raw", d.raw)
	d.zone = ref
}
