package calendar

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// errors
	ErrInvalidTimeOfDay = errors.New("invalid time of day")

	timeOfDayRegex = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*([AaPp][Mm])$`)
)

// ParseTimeOfDay parses a 12-hour "H:MM AM/PM" string into a 24-hour hour and minute.
func ParseTimeOfDay(s string) (hour, minute int, err error) {
	m := timeOfDayRegex.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	if hour < 1 || hour > 12 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}

	pm := strings.EqualFold(m[3], "PM")
	switch {
	case pm && hour != 12:
		hour += 12
	case !pm && hour == 12:
		hour = 0
	}
	return hour, minute, nil
}

// FormatTimeOfDay formats t as "H:MM AM/PM".
func FormatTimeOfDay(t time.Time) string {
	return t.Format("3:04 PM")
}

// EventVerticalOffset returns the top of an event starting at timeOfDay in the time-slot layout,
// one unit per minute from DayStartHour. Minutes are not taken into account.
// Events before DayStartHour get a negative offset.
func EventVerticalOffset(timeOfDay string) (int, error) {
	hour, _, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return 0, err
	}
	return (hour - DayStartHour) * 60, nil
}

// EventHeight returns the layout height of an event lasting durationMinutes.
func EventHeight(durationMinutes int) int {
	return durationMinutes
}

// StartTime returns the instant e starts; ok is false when e has no parsable time of day.
func (e Event) StartTime() (time.Time, bool) {
	hour, minute, err := ParseTimeOfDay(e.Time)
	if err != nil {
		return time.Time{}, false
	}
	y, m, d := e.Date.Date()
	return time.Date(y, m, d, hour, minute, 0, 0, e.Date.Location()), true
}
