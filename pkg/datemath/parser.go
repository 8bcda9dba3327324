package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser converts relative date phrases to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string,
// e.g. "Europe/Berlin".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

var inDurationRe = regexp.MustCompile(`in (\d+) (day|days|week|weeks)`)

// Parse converts a relative date phrase to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
// Supported phrases: today, tomorrow, yesterday, next week,
// next <weekday>, <weekday>, in N days, in N weeks.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	case "next week":
		return p.InDays(baseTime, 7), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	// "next monday" and bare "monday" both mean the next occurrence.
	name := strings.TrimPrefix(relative, "next ")
	if wd, ok := Weekday(name); ok {
		return p.NextWeekday(baseTime, wd), nil
	}

	return baseTime, fmt.Errorf("unknown date phrase: %q", relative)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	if strings.HasPrefix(matches[2], "week") {
		amount *= 7
	}
	return p.InDays(baseTime, amount), nil
}

// NextWeekday returns the next occurrence of the target weekday strictly
// after baseTime's day; the same weekday rolls over a full week.
func (p *Parser) NextWeekday(baseTime time.Time, target time.Weekday) time.Time {
	daysUntil := int(target - baseTime.In(p.location).Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.StartOfDay(baseTime.AddDate(0, 0, daysUntil))
}

// InDays returns midnight n days after baseTime.
func (p *Parser) InDays(baseTime time.Time, n int) time.Time {
	return p.StartOfDay(baseTime.AddDate(0, 0, n))
}

// Literal builds a calendar date from numeric month/day/year components.
// year 0 means the base year; a 2-digit year is windowed as 2000+YY.
// Returns false when the components do not form a valid calendar date
// (time.Date normalizes overflow, so a round-trip check catches it).
func (p *Parser) Literal(baseTime time.Time, month, day, year int) (time.Time, bool) {
	switch {
	case year == 0:
		year = baseTime.In(p.location).Year()
	case year < 100:
		year += 2000
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
