package calendar

import (
	"fmt"
	"time"

	"github.com/prachishaw/ClassCapsule/core/dateutil"
)

// FormatEventDate describes date relative to now: "Today", "Tomorrow", "In 3 days" or "Jan 2".
func FormatEventDate(date, now time.Time) string {
	days := dateutil.DaysUntil(date, now)
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days < 7 && days > 0:
		return fmt.Sprintf("In %d days", days)
	default:
		return date.Format("Jan 2")
	}
}
