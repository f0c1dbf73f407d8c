package calendar

import (
	"sort"
	"time"

	"github.com/prachishaw/ClassCapsule/core/dateutil"
)

// UpcomingEvents returns up to limit events on or after from's day, earliest first.
// Events on the same day keep their input order.
func UpcomingEvents(events []Event, from time.Time, limit int) []Event {
	if limit <= 0 {
		return []Event{}
	}
	upcoming := make([]Event, 0, len(events))
	for _, e := range events {
		if !dateutil.Before(e.Date, from) {
			upcoming = append(upcoming, e)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return dateutil.Before(upcoming[i].Date, upcoming[j].Date)
	})
	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// Filter returns the events of course courseID; an empty courseID keeps every event.
func Filter(events []Event, courseID string) []Event {
	if courseID == "" {
		return events
	}
	found := make([]Event, 0, len(events))
	for _, e := range events {
		if e.CourseID == courseID {
			found = append(found, e)
		}
	}
	return found
}
