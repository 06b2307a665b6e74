// Package main implements the userdate CLI for reading an instant in a catalog timezone.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/codeGROOVE-dev/userdate/pkg/constants"
	"github.com/codeGROOVE-dev/userdate/pkg/datefmt"
	"github.com/codeGROOVE-dev/userdate/pkg/hostclock"
	"github.com/codeGROOVE-dev/userdate/pkg/render"
	"github.com/codeGROOVE-dev/userdate/pkg/timezone"
	"github.com/codeGROOVE-dev/userdate/pkg/tzconvert"
	"github.com/codeGROOVE-dev/userdate/pkg/userdate"
)

var (
	zoneName = flag.String("zone", "", "Catalog zone name, e.g. \"Eastern Time\" (or set USERDATE_ZONE)")
	offset   = flag.String("offset", "", "Select the zone by standard offset, e.g. -5 or GMT-05:00")
	useDST   = flag.Bool("dst", false, "With -offset, select a zone that observes DST")
	at       = flag.String("at", "", "Instant as RFC 3339 or YYYY-MM-DDThh:mm:ss UTC (default now)")
	wall     = flag.Bool("wall", false, "Read -at as a wall clock in the selected zone")
	hostTZ   = flag.String("host-tz", "", "IANA zone for the host clock (or set USERDATE_HOST_TZ)")
	addDays  = flag.Int("add-days", 0, "Shift the instant by whole days")
	pattern  = flag.String("pattern", "", "Also print the date with a datepicker pattern, e.g. \"DD, MM d, yy\"")
	locale   = flag.String("locale", "", "Locale for short forms, e.g. en-GB (or set USERDATE_LOCALE)")
	day      = flag.Bool("day", false, "Show an hour-by-hour strip of the zoned day")
	list     = flag.Bool("list", false, "List catalog zones and exit")
	verbose  = flag.Bool("verbose", false, "Enable verbose logging")
	version  = flag.Bool("version", false, "Show version")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Println("userdate CLI v1.0.0")
		return
	}

	// Configure logging
	level := slog.LevelError
	if *verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	if *list {
		fmt.Print(render.Catalog(timezone.Catalog()))
		return
	}

	// Get settings from environment if not provided as flags
	if *zoneName == "" {
		*zoneName = os.Getenv("USERDATE_ZONE")
	}
	if *hostTZ == "" {
		*hostTZ = os.Getenv("USERDATE_HOST_TZ")
	}
	if *locale == "" {
		*locale = os.Getenv("USERDATE_LOCALE")
	}

	opts, err := buildOptions(logger)
	if err != nil {
		logger.Error("Invalid arguments", "error", err)
		os.Exit(2)
	}

	d, err := userdate.New(opts...)
	if err != nil {
		logger.Error("Failed to create date", "error", err)
		if errors.Is(err, timezone.ErrNotFound) {
			fmt.Fprintln(os.Stderr, "Host timezone is not in the catalog; pass -zone or -offset (see -list).")
		}
		os.Exit(1)
	}

	if *addDays != 0 {
		d = d.AddDays(*addDays)
	}

	fmt.Print(render.Summary(d))
	if *pattern != "" {
		fmt.Printf("Pattern:  %s\n", d.Format(*pattern))
	}
	if *day {
		fmt.Println()
		fmt.Print(render.DayStrip(d))
	}
}

func buildOptions(logger *slog.Logger) ([]userdate.Option, error) {
	opts := []userdate.Option{userdate.WithLogger(logger)}

	if *hostTZ != "" {
		loc, err := time.LoadLocation(*hostTZ)
		if err != nil {
			return nil, fmt.Errorf("loading host timezone %q: %w", *hostTZ, err)
		}
		logger.Debug("using host timezone override", "location", loc.String())
		opts = append(opts, userdate.WithClock(hostclock.In(loc)))
	}

	z, ok, err := selectZone(*zoneName, *offset, *useDST)
	if err != nil {
		return nil, err
	}
	if ok {
		logger.Debug("zone selected", "zone", z.DisplayString())
		opts = append(opts, userdate.WithZone(timezone.NewRef(z)))
	}

	if *at != "" {
		t, err := parseInstant(*at)
		if err != nil {
			return nil, err
		}
		if *wall {
			opts = append(opts, userdate.WithWallClock(t))
		} else {
			opts = append(opts, userdate.WithTime(t))
		}
	}

	if *locale != "" {
		l, err := datefmt.ParseLocale(*locale)
		if err != nil {
			return nil, fmt.Errorf("parsing locale: %w", err)
		}
		opts = append(opts, userdate.WithLocaleFormatter(l))
	}
	return opts, nil
}

// selectZone resolves -zone or -offset. ok is false when neither was given,
// leaving detection to the host clock.
func selectZone(name, offsetText string, dst bool) (z timezone.Zone, ok bool, err error) {
	switch {
	case name != "":
		z, err = timezone.FromName(name)
	case offsetText != "":
		var hours float64
		hours, err = tzconvert.ParseOffset(offsetText)
		if err != nil {
			return timezone.Zone{}, false, err
		}
		z, err = timezone.FromOffset(hours, dst)
	default:
		return timezone.Zone{}, false, nil
	}
	if err != nil {
		return timezone.Zone{}, false, err
	}
	return z, true, nil
}

// parseInstant accepts RFC 3339 or the bare ISO layout, read as UTC.
func parseInstant(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(constants.ISOLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing instant %q: %w", s, err)
	}
	return t, nil
}
