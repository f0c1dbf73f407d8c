package calendar

import (
	"time"

	"github.com/prachishaw/ClassCapsule/core/dateutil"
)

// BuildMonthGrid lays out anchor's month as 6 weeks starting on the Sunday on or before the 1st.
// Each day holds the events falling on it, in input order.
func BuildMonthGrid(anchor time.Time, events []Event, now time.Time) MonthGrid {
	first := dateutil.StartOfMonth(anchor)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	var grid MonthGrid
	for i := 0; i < 42; i++ {
		date := start.AddDate(0, 0, i)
		grid[i/7][i%7] = Day{
			Date:           date,
			IsCurrentMonth: date.Month() == anchor.Month(),
			IsToday:        dateutil.SameDay(date, now),
			Events:         eventsOn(date, events),
		}
	}
	return grid
}

// WeekDays returns the Sunday-to-Saturday week around anchor.
func WeekDays(anchor time.Time, events []Event, now time.Time) Week {
	start := dateutil.StartOfWeek(anchor)

	var week Week
	for i := range week {
		date := start.AddDate(0, 0, i)
		week[i] = Day{
			Date:           date,
			IsCurrentMonth: date.Month() == anchor.Month(),
			IsToday:        dateutil.SameDay(date, now),
			Events:         eventsOn(date, events),
		}
	}
	return week
}

// Select marks the day matching date as selected.
func (g *MonthGrid) Select(date time.Time) {
	for w := range g {
		g[w].Select(date)
	}
}

// Select marks the day matching date as selected.
func (w *Week) Select(date time.Time) {
	for d := range w {
		w[d].IsSelected = dateutil.SameDay(w[d].Date, date)
	}
}

func eventsOn(date time.Time, events []Event) []Event {
	found := make([]Event, 0)
	for _, e := range events {
		if dateutil.SameDay(e.Date, date) {
			found = append(found, e)
		}
	}
	return found
}
