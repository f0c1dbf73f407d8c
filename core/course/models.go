package course

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type AssignmentStatus string

// Assignment statuses
const (
	StatusPending   AssignmentStatus = "pending"
	StatusSubmitted AssignmentStatus = "submitted"
	StatusGraded    AssignmentStatus = "graded"
)

// Valid reports whether s is one of the known statuses.
func (s AssignmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusSubmitted, StatusGraded:
		return true
	default:
		return false
	}
}

type Course struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Instructor  string     `json:"instructor"`
	Students    int        `json:"students_count"`
	Progress    int        `json:"progress"` // percent completed
	Color       string     `json:"color"`
	Assignments int        `json:"assignments"`
	NextClass   *time.Time `json:"next_class,omitempty"`
}

type Assignment struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	CourseID string           `json:"course_id"`
	DueDate  time.Time        `json:"due_date"`
	Status   AssignmentStatus `json:"status"`
	Grade    *int             `json:"grade,omitempty"`
}

type Student struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Avatar   string   `json:"avatar"`
	Courses  []string `json:"courses"`
	Progress int      `json:"overall_progress"`
}

// Catalog is the data a Service is seeded with.
type Catalog struct {
	Courses     []Course
	Assignments []Assignment
	Students    []Student
}

// StatusUpdate defines what information may be provided to change an Assignment status.
type StatusUpdate struct {
	Status AssignmentStatus `json:"status" validate:"required,assignmentstatus"`
}

func (su *StatusUpdate) Validate(validate *validator.Validate) error {
	return validate.Struct(su)
}
