package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser converts relative date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "UTC", "Europe/Warsaw"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

var inDurationRe = regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months)`)

// Parse converts a relative or absolute date string to a start-of-day
// time.Time in the parser's timezone. Accepted forms: "today", "tomorrow",
// "in N days/weeks/months", "next <weekday>", a bare weekday name, and
// "YYYY-MM-DD".
func (p *Parser) Parse(expr string, baseTime time.Time) (time.Time, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))

	if t, err := time.ParseInLocation("2006-01-02", expr, p.location); err == nil {
		return t, nil
	}

	switch expr {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(expr, "in ") {
		return p.parseInDuration(expr, baseTime)
	}

	if strings.HasPrefix(expr, "next ") {
		return p.nextWeekday(strings.TrimPrefix(expr, "next "), baseTime)
	}

	// A bare weekday name means the next occurrence of that day.
	if _, ok := weekdays[expr]; ok {
		return p.nextWeekday(expr, baseTime)
	}

	return time.Time{}, fmt.Errorf("unrecognized date expression: %q", expr)
}

func (p *Parser) parseInDuration(expr string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(expr)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", expr)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

func (p *Parser) nextWeekday(dayName string, baseTime time.Time) (time.Time, error) {
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	currentWeekday := baseTime.In(p.location).Weekday()
	daysUntil := int(targetWeekday - currentWeekday)
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// At returns the given start-of-day shifted to a wall-clock time.
func (p *Parser) At(day time.Time, hour, minute int) time.Time {
	day = day.In(p.location)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, p.location)
}

// ParseClock parses a "HH:MM" wall-clock string.
func ParseClock(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return t.Hour(), t.Minute(), nil
}
