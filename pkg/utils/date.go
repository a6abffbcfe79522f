package utils

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// DateLayout is the wire format of a calendar day in query strings and JSON.
const DateLayout = "2006-01-02"

// LoadLocation resolves a time zone name, treating "" as UTC.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "UTC" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load location %q: %w", name, err)
	}
	return loc, nil
}

// Today returns the current calendar day in loc.
func Today(loc *time.Location) civil.Date {
	return civil.DateOf(time.Now().In(loc))
}

// DayOf returns the calendar day t falls on in loc.
func DayOf(t time.Time, loc *time.Location) civil.Date {
	return civil.DateOf(t.In(loc))
}

// ParseDate parses a YYYY-MM-DD string. An empty string returns the zero date and ok=false.
func ParseDate(s string) (civil.Date, bool, error) {
	if s == "" {
		return civil.Date{}, false, nil
	}
	d, err := civil.ParseDate(s)
	if err != nil {
		return civil.Date{}, false, fmt.Errorf("invalid date %q, expected %s", s, DateLayout)
	}
	return d, true, nil
}

// StartOfDayUnix returns the unix second at 00:00 of d in UTC.
func StartOfDayUnix(d civil.Date) int64 {
	return d.In(time.UTC).Unix()
}

// WithinRange reports whether from <= d <= to.
func WithinRange(d, from, to civil.Date) bool {
	return !d.Before(from) && !d.After(to)
}
