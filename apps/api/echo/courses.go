package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/prachishaw/ClassCapsule/core/course"
	"github.com/prachishaw/ClassCapsule/core/dashboard"
)

type courseApi struct {
	svc      *course.Service
	validate *validator.Validate
	board    *dashboard.Board
	report   dashboard.Report
}

func registerCourseAPI(
	g *echo.Group,
	guard echo.MiddlewareFunc,
	svc *course.Service,
	validate *validator.Validate,
	board *dashboard.Board,
	report dashboard.Report,
) {
	api := courseApi{
		svc:      svc,
		validate: validate,
		board:    board,
		report:   report,
	}

	ag := g.Group("", guard)
	ag.GET("/dashboard", api.dashboard)
	ag.GET("/reports", api.reports)
	ag.GET("/students", api.students)

	cg := ag.Group("/courses")
	cg.GET("", api.courses)
	cg.GET("/:id", api.retrieveCourse)
	cg.GET("/:id/assignments", api.courseAssignments)

	asg := ag.Group("/assignments")
	asg.GET("", api.assignments)
	asg.PATCH("/:id", api.updateAssignment)
}

// AssignmentView is an Assignment with its display helpers resolved.
type AssignmentView struct {
	course.Assignment
	CourseTitle string `json:"course_title"`
	CourseColor string `json:"course_color"`
	DueLabel    string `json:"due_label"`
	Overdue     bool   `json:"overdue"`
}

// CourseView is a Course with its display helpers resolved.
type CourseView struct {
	course.Course
	Icon      string `json:"icon"`
	NextLabel string `json:"next_class_label,omitempty"`
}

// Handlers

func (api *courseApi) dashboard(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.board.Snapshot())
}

func (api *courseApi) reports(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.report)
}

func (api *courseApi) students(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Students().Value())
}

func (api *courseApi) courses(ctx echo.Context) error {
	courses := api.svc.Courses().Value()
	views := make([]CourseView, 0, len(courses))
	for _, c := range courses {
		views = append(views, api.courseView(c))
	}
	return ctx.JSON(http.StatusOK, views)
}

func (api *courseApi) retrieveCourse(ctx echo.Context) error {
	c, err := api.svc.CourseByID(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "retrieving course")
	}
	return ctx.JSON(http.StatusOK, api.courseView(c))
}

func (api *courseApi) courseAssignments(ctx echo.Context) error {
	c, err := api.svc.CourseByID(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "retrieving course")
	}
	return ctx.JSON(http.StatusOK, api.assignmentViews(api.svc.AssignmentsByCourse(c.ID)))
}

func (api *courseApi) assignments(ctx echo.Context) error {
	var list []course.Assignment
	if courseID := ctx.QueryParam("course"); courseID != "" {
		list = api.svc.AssignmentsByCourse(courseID)
	} else {
		list = api.svc.Assignments().Value()
	}
	return ctx.JSON(http.StatusOK, api.assignmentViews(list))
}

func (api *courseApi) updateAssignment(ctx echo.Context) error {
	var data course.StatusUpdate
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to StatusUpdate")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	a, err := api.svc.UpdateAssignmentStatus(ctx.Param("id"), data.Status)
	if err != nil {
		return errors.Wrap(err, "updating assignment status")
	}
	return ctx.JSON(http.StatusOK, api.assignmentView(a))
}

func (api *courseApi) courseView(c course.Course) CourseView {
	v := CourseView{Course: c, Icon: course.SubjectIcon(c.Title)}
	if c.NextClass != nil {
		v.NextLabel = dashboard.FormatNextClass(*c.NextClass, nowFunc())
	}
	return v
}

func (api *courseApi) assignmentView(a course.Assignment) AssignmentView {
	now := nowFunc()
	return AssignmentView{
		Assignment:  a,
		CourseTitle: api.svc.CourseTitle(a.CourseID),
		CourseColor: api.svc.CourseColor(a.CourseID),
		DueLabel:    course.FormatDueDate(a.DueDate, now),
		Overdue:     course.IsOverdue(a.DueDate, now),
	}
}

func (api *courseApi) assignmentViews(list []course.Assignment) []AssignmentView {
	views := make([]AssignmentView, 0, len(list))
	for _, a := range list {
		views = append(views, api.assignmentView(a))
	}
	return views
}
