package dashboard

type (
	// ReportTotals are the headline figures of the reports page.
	ReportTotals struct {
		TotalStudents        int `json:"total_students"`
		ActiveCourses        int `json:"active_courses"`
		CompletedAssignments int `json:"completed_assignments"`
		PendingAssignments   int `json:"pending_assignments"`
		AverageGrade         int `json:"average_grade"`
	}

	CourseProgress struct {
		Name       string `json:"name"`
		Completion int    `json:"completion"`
		Color      string `json:"color"`
	}

	StudentPerformance struct {
		Name     string `json:"name"`
		Course   string `json:"course"`
		Grade    int    `json:"grade"`
		Progress int    `json:"progress"`
		Avatar   string `json:"avatar"`
	}

	Activity struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Time        string `json:"time"`
		Type        string `json:"type"`
		Status      string `json:"status"`
	}

	Report struct {
		Totals         ReportTotals         `json:"totals"`
		CourseProgress []CourseProgress     `json:"course_progress"`
		TopStudents    []StudentPerformance `json:"top_students"`
		RecentActivity []Activity           `json:"recent_activity"`
	}
)

// Grade classes
const (
	GradeExcellent = "excellent"
	GradeGood      = "good"
	GradeAverage   = "average"
)

func GradeClass(grade int) string {
	switch {
	case grade >= 90:
		return GradeExcellent
	case grade >= 80:
		return GradeGood
	default:
		return GradeAverage
	}
}

// ActivityIcon names the icon of an activity type.
func ActivityIcon(activityType string) string {
	switch activityType {
	case "submission":
		return "upload"
	case "grade":
		return "grade"
	case "assignment":
		return "assignment"
	default:
		return "info"
	}
}
