package course

import (
	"fmt"
	"strings"
	"time"

	"github.com/prachishaw/ClassCapsule/core/dateutil"
)

// FormatDueDate describes how far due is from now: "Due in 3 days", "Due today", "2 days overdue"...
func FormatDueDate(due, now time.Time) string {
	days := dateutil.DaysUntil(due, now)
	switch {
	case days < 0:
		return fmt.Sprintf("%d days overdue", -days)
	case days == 0:
		return "Due today"
	case days == 1:
		return "Due tomorrow"
	default:
		return fmt.Sprintf("Due in %d days", days)
	}
}

// IsOverdue reports whether due is before now.
func IsOverdue(due, now time.Time) bool {
	return due.Before(now)
}

var subjectIcons = []struct {
	keywords []string
	icon     string
}{
	{keywords: []string{"math"}, icon: "📐"},
	{keywords: []string{"computer", "programming"}, icon: "💻"},
	{keywords: []string{"design"}, icon: "🎨"},
	{keywords: []string{"business"}, icon: "💼"},
}

// SubjectIcon picks an icon from keywords in the course title.
func SubjectIcon(title string) string {
	title = strings.ToLower(title)
	for _, si := range subjectIcons {
		for _, kw := range si.keywords {
			if strings.Contains(title, kw) {
				return si.icon
			}
		}
	}
	return "📚"
}
