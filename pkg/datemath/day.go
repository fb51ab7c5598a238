package datemath

import (
	"fmt"
	"time"
)

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Today formats the current day of now in the parser's timezone.
func (p *Parser) Today(now time.Time) string {
	return now.In(p.location).Format(DateLayout)
}

// ParseDay accepts either a YYYY-MM-DD date or one of the relative forms
// understood by Parse, and returns the start of that day.
func (p *Parser) ParseDay(s string, now time.Time) (time.Time, error) {
	if t, err := time.ParseInLocation(DateLayout, s, p.location); err == nil {
		return t, nil
	}
	return p.Parse(s, now)
}

// DayBounds returns [start, end) of a YYYY-MM-DD date.
func (p *Parser) DayBounds(date string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(DateLayout, date, p.location)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return start, start.AddDate(0, 0, 1), nil
}

// At combines a date with an HH:MM clock. An empty clock means defaultHour:00.
func (p *Parser) At(date, clock string, defaultHour int) (time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, date, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	if clock == "" {
		return day.Add(time.Duration(defaultHour) * time.Hour), nil
	}

	c, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", clock, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour(), c.Minute(), 0, 0, p.location), nil
}
