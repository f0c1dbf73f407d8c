// Package mockdata holds the seed data of the mock data source.
package mockdata

import (
	"time"

	"github.com/prachishaw/ClassCapsule/core/course"
)

const avatarQuery = "?w=100&h=100&fit=crop&crop=face"

func at(layout, value string) time.Time {
	t, err := time.ParseInLocation(layout, value, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func classAt(value string) *time.Time {
	t := at("2006-01-02T15:04", value)
	return &t
}

func dueOn(value string) time.Time {
	return at("2006-01-02", value)
}

func grade(g int) *int { return &g }

// Catalog returns a fresh copy of the seed courses, assignments and students.
func Catalog() course.Catalog {
	return course.Catalog{
		Courses: []course.Course{
			{
				ID:          "1",
				Title:       "Advanced Mathematics",
				Description: "Calculus, Linear Algebra, and Statistics",
				Instructor:  "Dr. Sarah Johnson",
				Students:    24,
				Progress:    78,
				Color:       "#3B82F6",
				Assignments: 8,
				NextClass:   classAt("2025-01-20T10:00"),
			},
			{
				ID:          "2",
				Title:       "Computer Science Fundamentals",
				Description: "Programming, Algorithms, and Data Structures",
				Instructor:  "Prof. Michael Chen",
				Students:    32,
				Progress:    65,
				Color:       "#10B981",
				Assignments: 12,
				NextClass:   classAt("2025-01-21T14:00"),
			},
			{
				ID:          "3",
				Title:       "Digital Design",
				Description: "UI/UX Design Principles and Tools",
				Instructor:  "Ms. Emma Davis",
				Students:    18,
				Progress:    92,
				Color:       "#6366F1",
				Assignments: 6,
				NextClass:   classAt("2025-01-22T09:00"),
			},
			{
				ID:          "4",
				Title:       "Business Strategy",
				Description: "Strategic Planning and Market Analysis",
				Instructor:  "Dr. Robert Wilson",
				Students:    28,
				Progress:    45,
				Color:       "#F59E0B",
				Assignments: 10,
			},
		},
		Assignments: []course.Assignment{
			{ID: "1", Title: "Calculus Problem Set #5", CourseID: "1", DueDate: dueOn("2025-01-25"), Status: course.StatusPending},
			{ID: "2", Title: "Algorithm Implementation", CourseID: "2", DueDate: dueOn("2025-01-23"), Status: course.StatusSubmitted},
			{ID: "3", Title: "Design Portfolio Review", CourseID: "3", DueDate: dueOn("2025-01-28"), Status: course.StatusGraded, Grade: grade(95)},
			{ID: "4", Title: "Market Research Report", CourseID: "4", DueDate: dueOn("2025-01-30"), Status: course.StatusPending},
		},
		Students: []course.Student{
			{
				ID:       "1",
				Name:     "Alex Thompson",
				Email:    "alex@example.com",
				Avatar:   "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg" + avatarQuery,
				Courses:  []string{"1", "2"},
				Progress: 85,
			},
			{
				ID:       "2",
				Name:     "Jessica Rodriguez",
				Email:    "jessica@example.com",
				Avatar:   "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg" + avatarQuery,
				Courses:  []string{"2", "3"},
				Progress: 92,
			},
			{
				ID:       "3",
				Name:     "David Kim",
				Email:    "david@example.com",
				Avatar:   "https://images.pexels.com/photos/1043471/pexels-photo-1043471.jpeg" + avatarQuery,
				Courses:  []string{"1", "3", "4"},
				Progress: 78,
			},
		},
	}
}
