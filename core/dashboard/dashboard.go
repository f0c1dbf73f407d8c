// Package dashboard derives the dashboard figures and headings from the current role.
package dashboard

import (
	"fmt"
	"math"
	"time"

	"github.com/prachishaw/ClassCapsule/core/course"
	"github.com/prachishaw/ClassCapsule/core/dateutil"
	"github.com/prachishaw/ClassCapsule/core/user"
)

// RecentAssignmentsLimit is how many assignments the dashboard lists.
const RecentAssignmentsLimit = 5

type (
	Summary struct {
		CourseCount            int `json:"total_courses"`
		StudentCount           int `json:"total_students"`
		PendingAssignmentCount int `json:"pending_assignments"`
	}

	Labels struct {
		Title    string `json:"title"`
		Subtitle string `json:"subtitle"`
	}

	// Stats holds the figures computed from the course and assignment lists.
	Stats struct {
		Summary
		AverageProgress   int                 `json:"average_progress"`
		RecentAssignments []course.Assignment `json:"recent_assignments"`
	}
)

// DeriveSummary returns the figures shown to role. Roles without fixed figures see fetched.
func DeriveSummary(role user.Role, fetched Summary) Summary {
	switch role {
	case user.RoleStudent:
		return Summary{CourseCount: 4, StudentCount: 0, PendingAssignmentCount: 3}
	case user.RoleAdministrator:
		return Summary{CourseCount: 25, StudentCount: 450, PendingAssignmentCount: 89}
	case user.RoleAlumni:
		return Summary{}
	case user.RoleTeacher:
		return fetched
	default:
		return fetched
	}
}

func DeriveLabels(role user.Role) Labels {
	switch role {
	case user.RoleStudent:
		return Labels{Title: "Student Dashboard", Subtitle: "Track your courses, assignments, and academic progress."}
	case user.RoleTeacher:
		return Labels{Title: "Teacher Dashboard", Subtitle: "Manage your classes, students, and course materials."}
	case user.RoleAdministrator:
		return Labels{Title: "Admin Dashboard", Subtitle: "Oversee system operations and user management."}
	case user.RoleAlumni:
		return Labels{Title: "Alumni Dashboard", Subtitle: "Stay connected with your alma mater and fellow graduates."}
	default:
		return Labels{Title: "Dashboard", Subtitle: "Welcome back!"}
	}
}

// Overview computes the dashboard figures from the data source.
// AverageProgress is 0 without courses.
func Overview(courses []course.Course, assignments []course.Assignment) Stats {
	var stats Stats
	stats.CourseCount = len(courses)

	var progress int
	for _, c := range courses {
		stats.StudentCount += c.Students
		progress += c.Progress
	}
	if len(courses) > 0 {
		stats.AverageProgress = int(math.Round(float64(progress) / float64(len(courses))))
	}

	for _, a := range assignments {
		if a.Status == course.StatusPending {
			stats.PendingAssignmentCount++
		}
	}
	n := len(assignments)
	if n > RecentAssignmentsLimit {
		n = RecentAssignmentsLimit
	}
	stats.RecentAssignments = append(make([]course.Assignment, 0, n), assignments[:n]...)
	return stats
}

// RoleDisplayName names role for headings; "Guest" when there is none.
func RoleDisplayName(role user.Role) string {
	if role == "" {
		return "Guest"
	}
	return role.DisplayName()
}

// FormatNextClass describes when the next class starts: "Today", "Tomorrow" or "3 days".
func FormatNextClass(next, now time.Time) string {
	switch days := dateutil.DaysUntil(next, now); days {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return fmt.Sprintf("%d days", days)
	}
}

// FormatShortDate formats t as "Jan 2".
func FormatShortDate(t time.Time) string {
	return t.Format("Jan 2")
}
