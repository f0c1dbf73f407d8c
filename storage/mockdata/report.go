package mockdata

import "github.com/prachishaw/ClassCapsule/core/dashboard"

const pexels = "https://images.pexels.com/photos/"

// Report returns the reports page fixtures.
func Report() dashboard.Report {
	return dashboard.Report{
		Totals: dashboard.ReportTotals{
			TotalStudents:        156,
			ActiveCourses:        8,
			CompletedAssignments: 342,
			PendingAssignments:   28,
			AverageGrade:         87,
		},
		CourseProgress: []dashboard.CourseProgress{
			{Name: "Advanced Mathematics", Completion: 78, Color: "#3B82F6"},
			{Name: "Computer Science", Completion: 65, Color: "#10B981"},
			{Name: "Digital Design", Completion: 92, Color: "#6366F1"},
			{Name: "Business Strategy", Completion: 45, Color: "#F59E0B"},
		},
		TopStudents: []dashboard.StudentPerformance{
			{Name: "Jessica Rodriguez", Course: "Digital Design", Grade: 96, Progress: 92, Avatar: pexels + "1239291/pexels-photo-1239291.jpeg" + avatarQuery},
			{Name: "Alex Thompson", Course: "Computer Science", Grade: 94, Progress: 85, Avatar: pexels + "1222271/pexels-photo-1222271.jpeg" + avatarQuery},
			{Name: "David Kim", Course: "Mathematics", Grade: 91, Progress: 78, Avatar: pexels + "1043471/pexels-photo-1043471.jpeg" + avatarQuery},
			{Name: "Sarah Johnson", Course: "Business Strategy", Grade: 89, Progress: 82, Avatar: pexels + "1181690/pexels-photo-1181690.jpeg" + avatarQuery},
		},
		RecentActivity: []dashboard.Activity{
			{Title: "Assignment Submitted", Description: `Jessica Rodriguez submitted "Design Portfolio Review"`, Time: "2 hours ago", Type: "submission", Status: "completed"},
			{Title: "Grade Posted", Description: "Calculus Problem Set #5 has been graded", Time: "4 hours ago", Type: "grade", Status: "graded"},
			{Title: "New Assignment", Description: "Algorithm Implementation project assigned", Time: "1 day ago", Type: "assignment", Status: "pending"},
			{Title: "Assignment Submitted", Description: `Alex Thompson submitted "Market Research Report"`, Time: "2 days ago", Type: "submission", Status: "completed"},
		},
	}
}
