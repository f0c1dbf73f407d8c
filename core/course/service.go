package course

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/prachishaw/ClassCapsule/core"
	"github.com/prachishaw/ClassCapsule/core/reactive"
)

const (
	UnknownCourseTitle = "Unknown Course"
	DefaultCourseColor = "#6B7280"
)

var (
	// errors
	ErrNotFound           = errors.New("course not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
)

// Service is the mock data source: every collection is published through a cell.
// Updates never mutate a published slice; a new slice is published instead.
type Service struct {
	validate    *validator.Validate
	logger      core.Logger
	courses     *reactive.Cell[[]Course]
	assignments *reactive.Cell[[]Assignment]
	students    *reactive.Cell[[]Student]
}

func NewService(catalog Catalog, validate *validator.Validate, logger core.Logger) *Service {
	return &Service{
		validate:    validate,
		logger:      logger,
		courses:     reactive.New(catalog.Courses),
		assignments: reactive.New(catalog.Assignments),
		students:    reactive.New(catalog.Students),
	}
}

func (svc *Service) Courses() *reactive.Cell[[]Course] { return svc.courses }

func (svc *Service) Assignments() *reactive.Cell[[]Assignment] { return svc.assignments }

func (svc *Service) Students() *reactive.Cell[[]Student] { return svc.students }

func (svc *Service) CourseByID(id string) (Course, error) {
	for _, c := range svc.courses.Value() {
		if c.ID == id {
			return c, nil
		}
	}
	return Course{}, ErrNotFound
}

// CourseTitle returns the title of course id, or UnknownCourseTitle.
func (svc *Service) CourseTitle(id string) string {
	if c, err := svc.CourseByID(id); err == nil {
		return c.Title
	}
	return UnknownCourseTitle
}

// CourseColor returns the color of course id, or DefaultCourseColor.
func (svc *Service) CourseColor(id string) string {
	if c, err := svc.CourseByID(id); err == nil {
		return c.Color
	}
	return DefaultCourseColor
}

func (svc *Service) AssignmentsByCourse(courseID string) []Assignment {
	all := svc.assignments.Value()
	found := make([]Assignment, 0, len(all))
	for _, a := range all {
		if a.CourseID == courseID {
			found = append(found, a)
		}
	}
	return found
}

func (svc *Service) AssignmentByID(id string) (Assignment, error) {
	for _, a := range svc.assignments.Value() {
		if a.ID == id {
			return a, nil
		}
	}
	return Assignment{}, ErrAssignmentNotFound
}

// UpdateAssignmentStatus publishes a new assignment slice where only assignment id has the new status.
// Nothing is published when id is unknown.
func (svc *Service) UpdateAssignmentStatus(id string, status AssignmentStatus) (Assignment, error) {
	su := StatusUpdate{Status: status}
	if err := su.Validate(svc.validate); err != nil {
		return Assignment{}, err
	}

	var updated Assignment
	found := svc.assignments.Update(func(cur []Assignment) ([]Assignment, bool) {
		idx := -1
		for i, a := range cur {
			if a.ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil, false
		}
		next := make([]Assignment, len(cur))
		copy(next, cur)
		next[idx].Status = status
		updated = next[idx]
		return next, true
	})
	if !found {
		return Assignment{}, ErrAssignmentNotFound
	}
	svc.logger.Info("assignment status updated", map[string]interface{}{"id": id, "status": status})
	return updated, nil
}

// Submit marks assignment id as submitted.
func (svc *Service) Submit(id string) (Assignment, error) {
	return svc.UpdateAssignmentStatus(id, StatusSubmitted)
}
