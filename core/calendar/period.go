package calendar

import (
	"time"

	"github.com/prachishaw/ClassCapsule/core/dateutil"
)

// PeriodTitle labels the period shown around anchor:
// "January 2025" (month), "Jan 19 - Jan 25" (week) or "Monday, January 20, 2025" (day).
func PeriodTitle(anchor time.Time, mode ViewMode) string {
	switch mode {
	case ViewWeek:
		return dateutil.StartOfWeek(anchor).Format("Jan 2") + " - " + dateutil.EndOfWeek(anchor).Format("Jan 2")
	case ViewDay:
		return anchor.Format("Monday, January 2, 2006")
	default:
		return anchor.Format("January 2006")
	}
}

// AdvancePeriod moves anchor one period in dir: a calendar month, 7 days or a day.
func AdvancePeriod(anchor time.Time, mode ViewMode, dir Direction) time.Time {
	switch mode {
	case ViewWeek:
		return dateutil.AddDays(anchor, 7*int(dir))
	case ViewDay:
		return dateutil.AddDays(anchor, int(dir))
	default:
		return dateutil.AddMonths(anchor, int(dir))
	}
}
