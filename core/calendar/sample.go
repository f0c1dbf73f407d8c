package calendar

import (
	"time"

	"github.com/prachishaw/ClassCapsule/core/dateutil"
)

// SampleEvents returns the demo schedule for the days following today.
func SampleEvents(today time.Time) []Event {
	day := dateutil.StartOfDay(today)
	return []Event{
		{ID: "1", Title: "Advanced Mathematics", Date: day.AddDate(0, 0, 1), Time: "10:00 AM", Duration: 90, CourseID: "1", Color: "#3B82F6", Category: CategoryClass},
		{ID: "2", Title: "CS Fundamentals Lab", Date: day.AddDate(0, 0, 2), Time: "2:00 PM", Duration: 120, CourseID: "2", Color: "#10B981", Category: CategoryClass},
		{ID: "3", Title: "Design Review", Date: day.AddDate(0, 0, 3), Time: "11:00 AM", Duration: 60, CourseID: "3", Color: "#6366F1", Category: CategoryMeeting},
		{ID: "4", Title: "Midterm Exam", Date: day.AddDate(0, 0, 5), Time: "9:00 AM", Duration: 180, CourseID: "1", Color: "#EF4444", Category: CategoryExam},
		{ID: "5", Title: "Project Submission", Date: day.AddDate(0, 0, 7), Time: "11:59 PM", Duration: 0, CourseID: "2", Color: "#F59E0B", Category: CategoryAssignment},
	}
}
