package calendar

import (
	"strings"
	"time"
)

type Category string

// Event categories
const (
	CategoryClass      Category = "class"
	CategoryAssignment Category = "assignment"
	CategoryExam       Category = "exam"
	CategoryMeeting    Category = "meeting"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryClass, CategoryAssignment, CategoryExam, CategoryMeeting:
		return true
	default:
		return false
	}
}

// Event is a calendar entry. Only the calendar day of Date is meaningful; Time holds the time of day.
type Event struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Date     time.Time `json:"date"`
	Time     string    `json:"time"`     // "H:MM AM/PM"
	Duration int       `json:"duration"` // minutes
	CourseID string    `json:"course_id,omitempty"`
	Color    string    `json:"color"`
	Category Category  `json:"type"`
}

type Day struct {
	Date           time.Time `json:"date"`
	IsCurrentMonth bool      `json:"is_current_month"`
	IsToday        bool      `json:"is_today"`
	IsSelected     bool      `json:"is_selected"`
	Events         []Event   `json:"events"`
}

type (
	Week      [7]Day
	MonthGrid [6]Week
)

// Days returns the 42 days of the grid in order.
func (g MonthGrid) Days() []Day {
	days := make([]Day, 0, len(g)*7)
	for _, w := range g {
		days = append(days, w[:]...)
	}
	return days
}

type ViewMode string

// View modes
const (
	ViewMonth ViewMode = "month"
	ViewWeek  ViewMode = "week"
	ViewDay   ViewMode = "day"
)

// ParseViewMode returns the view mode named s; empty means month.
func ParseViewMode(s string) (ViewMode, bool) {
	switch m := ViewMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ViewMonth, true
	case ViewMonth, ViewWeek, ViewDay:
		return m, true
	default:
		return "", false
	}
}

type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

const (
	// DayStartHour is the hour at the top of the time-slot layout.
	DayStartHour = 8

	DefaultUpcomingLimit = 5
	// MaxUpcomingLimit caps the limit accepted from callers.
	MaxUpcomingLimit = 50

	// SeriesWindowDays is how far ahead RepeatClasses expands a series.
	SeriesWindowDays = 90
)

var (
	WeekDayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

	TimeSlots = []string{
		"8:00 AM", "9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
		"1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM", "6:00 PM", "7:00 PM",
	}
)
