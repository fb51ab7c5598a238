package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnknownDate is returned for input that is neither a date nor a known
// relative form.
var ErrUnknownDate = errors.New("unrecognised date")

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

	weekdays = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}
)

// Parser resolves note dates and relative day expressions in one timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Berlin"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse resolves "today", "tomorrow", "yesterday", "in N days|weeks|months"
// and "next <weekday>" against baseTime. The result is the start of the day.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.Join(strings.Fields(strings.ToLower(relative)), " ")

	switch relative {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	switch {
	case strings.HasPrefix(relative, "in "):
		return p.parseInDuration(relative, baseTime)
	case strings.HasPrefix(relative, "next "):
		return p.parseNextWeekday(relative, baseTime)
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownDate, relative)
}

func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	m := inDurationRe.FindStringSubmatch(relative)
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: invalid duration %q", ErrUnknownDate, relative)
	}

	amount, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownDate, relative)
	}

	switch unit := m[2]; {
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	default:
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	}
}

// parseNextWeekday always moves forward: "next monday" on a Monday is a week out.
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	name := strings.TrimPrefix(relative, "next ")
	target, ok := weekdays[name]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown weekday %q", ErrUnknownDate, name)
	}

	local := baseTime.In(p.location)
	days := int(target - local.Weekday())
	if days <= 0 {
		days += 7
	}
	return p.startOfDay(local.AddDate(0, 0, days)), nil
}

func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
