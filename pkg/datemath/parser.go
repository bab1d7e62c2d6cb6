package datemath

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// Parser turns form-style date and clock strings into time.Time values
// in a fixed location.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone string.
// An empty name or "Local" selects the host's local zone.
func NewParser(timezone string) (*Parser, error) {
	switch timezone {
	case "", "Local":
		return &Parser{location: time.Local}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidTimezone, timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's location.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseDate parses a YYYY-MM-DD calendar date.
func (p *Parser) ParseDate(s string) (civil.Date, error) {
	d, err := civil.ParseDate(strings.TrimSpace(s))
	if err != nil || !d.IsValid() {
		return civil.Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// ParseClock parses HH:MM or HH:MM:SS. An empty string is midnight.
func (p *Parser) ParseClock(s string) (civil.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return civil.Time{}, nil
	}
	if strings.Count(s, ":") == 1 {
		s += ":00"
	}
	t, err := civil.ParseTime(s)
	if err != nil || !t.IsValid() {
		return civil.Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return t, nil
}

// ParseDateTime combines a calendar date and an optional clock time into
// a point in time in the parser's location.
func (p *Parser) ParseDateTime(date, clock string) (time.Time, error) {
	d, err := p.ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	c, err := p.ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return civil.DateTime{Date: d, Time: c}.In(p.location), nil
}
