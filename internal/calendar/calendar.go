// Package calendar provides the working-day predicate used for float
// arithmetic. Dates are whole calendar days in UTC.
package calendar

import (
	"strings"
	"time"

	"github.com/alexanderramin/floatsync/internal/domain"
)

// DateLayout is the canonical YYYY-MM-DD representation.
const DateLayout = "2006-01-02"

var weekdayNames = map[string]time.Weekday{
	"SUNDAY":    time.Sunday,
	"MONDAY":    time.Monday,
	"TUESDAY":   time.Tuesday,
	"WEDNESDAY": time.Wednesday,
	"THURSDAY":  time.Thursday,
	"FRIDAY":    time.Friday,
	"SATURDAY":  time.Saturday,
}

// Calendar is a weekday set plus exception dates. Exceptions always win.
type Calendar struct {
	workingDays    map[time.Weekday]bool
	nonWorkingDays map[string]bool
}

// New builds a Calendar from weekday names (case-insensitive) and
// YYYY-MM-DD exception dates. Unrecognised weekday names are ignored.
func New(workingDays, nonWorkingDays []string) Calendar {
	c := Calendar{
		workingDays:    make(map[time.Weekday]bool, len(workingDays)),
		nonWorkingDays: make(map[string]bool, len(nonWorkingDays)),
	}
	for _, name := range workingDays {
		if wd, ok := weekdayNames[strings.ToUpper(strings.TrimSpace(name))]; ok {
			c.workingDays[wd] = true
		}
	}
	for _, d := range nonWorkingDays {
		c.nonWorkingDays[strings.TrimSpace(d)] = true
	}
	return c
}

// FromSettings builds a Calendar from a sheet's project settings.
func FromSettings(s domain.ProjectSettings) Calendar {
	return New(s.WorkingDays, s.NonWorkingDays)
}

// IsWorkingDay reports whether d's weekday is a working day and d is not
// listed as a non-working exception.
func (c Calendar) IsWorkingDay(d time.Time) bool {
	return c.workingDays[d.Weekday()] && !c.nonWorkingDays[Format(d)]
}

// Format returns d as YYYY-MM-DD.
func Format(d time.Time) string {
	return d.Format(DateLayout)
}

var parseLayouts = []string{
	DateLayout,
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
}

// ParseDate reads an ISO date or date-time cell value and returns the UTC
// midnight of its calendar day. ok is false for missing or malformed values.
func ParseDate(v any) (t time.Time, ok bool) {
	switch val := v.(type) {
	case time.Time:
		return Day(val), true
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range parseLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return Day(parsed), true
			}
		}
	}
	return time.Time{}, false
}

// Day truncates t to midnight UTC of the same calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
