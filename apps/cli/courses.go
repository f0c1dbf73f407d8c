package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/prachishaw/ClassCapsule/core/course"
	"github.com/prachishaw/ClassCapsule/core/dashboard"
	"github.com/prachishaw/ClassCapsule/core/user"
)

var statusColors = map[course.AssignmentStatus]*color.Color{
	course.StatusPending:   color.New(color.FgYellow),
	course.StatusSubmitted: color.New(color.FgBlue),
	course.StatusGraded:    color.New(color.FgGreen),
}

func (cli *commandLine) addCourseCommands(topLevel *cobra.Command) {
	dashboardCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Print the dashboard of the current identity",
		Args:  cobra.NoArgs,
		RunE: cli.protected(func(cmd *cobra.Command, args []string, id user.Identity) error {
			board := dashboard.NewBoard(cli.gate, cli.courses)
			defer board.Close()
			cli.printDashboard(board.Snapshot())
			return nil
		}),
	}

	coursesCmd := &cobra.Command{
		Use:   "courses",
		Short: "List the courses",
		Args:  cobra.NoArgs,
		RunE: cli.protected(func(cmd *cobra.Command, args []string, id user.Identity) error {
			now := nowFunc()
			tbl := uitable.New()
			tbl.AddRow(header("ID", "", "COURSE", "INSTRUCTOR", "STUDENTS", "PROGRESS", "NEXT CLASS")...)
			for _, c := range cli.courses.Courses().Value() {
				next := "-"
				if c.NextClass != nil {
					next = dashboard.FormatNextClass(*c.NextClass, now)
				}
				tbl.AddRow(c.ID, course.SubjectIcon(c.Title), c.Title, c.Instructor, c.Students, fmt.Sprintf("%d%%", c.Progress), next)
			}
			cli.println(tbl)
			return nil
		}),
	}

	var courseID string
	assignmentsCmd := &cobra.Command{
		Use:   "assignments",
		Short: "List the assignments, optionally of one course",
		Args:  cobra.NoArgs,
		RunE: cli.protected(func(cmd *cobra.Command, args []string, id user.Identity) error {
			var as []course.Assignment
			if courseID == "" {
				as = cli.courses.Assignments().Value()
			} else {
				if _, err := cli.courses.CourseByID(courseID); err != nil {
					return errors.Wrapf(err, "course %q", courseID)
				}
				as = cli.courses.AssignmentsByCourse(courseID)
			}
			cli.printAssignments(as, nowFunc())
			return nil
		}),
	}
	assignmentsCmd.Flags().StringVar(&courseID, "course", "", "Only list the assignments of this course ID.")

	statusCmd := &cobra.Command{
		Use:     "assignment-status ID STATUS",
		Short:   "Change the status of an assignment",
		Example: "classcapsule assignment-status 3 graded",
		Args:    cobra.ExactArgs(2),
		RunE: cli.protected(func(cmd *cobra.Command, args []string, id user.Identity) error {
			su := course.StatusUpdate{Status: course.AssignmentStatus(args[1])}
			if err := su.Validate(cli.validate); err != nil {
				return cli.validationError(err)
			}
			return cli.changeStatus(cli.courses.UpdateAssignmentStatus(args[0], su.Status))
		}),
	}

	submitCmd := &cobra.Command{
		Use:   "submit ID",
		Short: "Mark an assignment as submitted",
		Args:  cobra.ExactArgs(1),
		RunE: cli.protected(func(cmd *cobra.Command, args []string, id user.Identity) error {
			return cli.changeStatus(cli.courses.Submit(args[0]))
		}),
	}

	studentsCmd := &cobra.Command{
		Use:   "students",
		Short: "List the students",
		Args:  cobra.NoArgs,
		RunE: cli.protected(func(cmd *cobra.Command, args []string, id user.Identity) error {
			tbl := uitable.New()
			tbl.AddRow(header("ID", "NAME", "EMAIL", "COURSES", "PROGRESS")...)
			for _, s := range cli.courses.Students().Value() {
				tbl.AddRow(s.ID, s.Name, s.Email, len(s.Courses), fmt.Sprintf("%d%%", s.Progress))
			}
			cli.println(tbl)
			return nil
		}),
	}

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Print the school report",
		Args:  cobra.NoArgs,
		RunE: cli.protected(func(cmd *cobra.Command, args []string, id user.Identity) error {
			cli.printReport(cli.report)
			return nil
		}),
	}

	topLevel.AddCommand(dashboardCmd, coursesCmd, assignmentsCmd, statusCmd, submitCmd, studentsCmd, reportCmd)
}

func (cli *commandLine) changeStatus(a course.Assignment, err error) error {
	if err != nil {
		if errors.Is(err, course.ErrAssignmentNotFound) {
			return err
		}
		return cli.validationError(err)
	}
	cli.printf("%s is now %s\n", a.Title, statusLabel(a.Status))
	return nil
}

func (cli *commandLine) printDashboard(st dashboard.State) {
	bold := color.New(color.Bold)
	cli.println(bold.Sprint(st.Labels.Title))
	cli.println(st.Labels.Subtitle)
	cli.println()

	tbl := uitable.New()
	tbl.AddRow("Courses:", st.Summary.CourseCount)
	tbl.AddRow("Students:", st.Summary.StudentCount)
	tbl.AddRow("Pending assignments:", st.Summary.PendingAssignmentCount)
	tbl.AddRow("Average progress:", fmt.Sprintf("%d%%", st.Stats.AverageProgress))
	cli.println(tbl)
	cli.println()

	cli.println(bold.Sprint("Recent assignments"))
	cli.printAssignments(st.Stats.RecentAssignments, nowFunc())
}

func (cli *commandLine) printAssignments(as []course.Assignment, now time.Time) {
	tbl := uitable.New()
	tbl.AddRow(header("ID", "ASSIGNMENT", "COURSE", "DUE", "STATUS")...)
	for _, a := range as {
		due := course.FormatDueDate(a.DueDate, now)
		if a.Status == course.StatusPending && course.IsOverdue(a.DueDate, now) {
			due = color.New(color.FgRed).Sprint(due)
		}
		tbl.AddRow(a.ID, a.Title, cli.courses.CourseTitle(a.CourseID), due, statusLabel(a.Status))
	}
	cli.println(tbl)
}

func (cli *commandLine) printReport(r dashboard.Report) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.AddRow("Students:", r.Totals.TotalStudents)
	tbl.AddRow("Active courses:", r.Totals.ActiveCourses)
	tbl.AddRow("Completed assignments:", r.Totals.CompletedAssignments)
	tbl.AddRow("Pending assignments:", r.Totals.PendingAssignments)
	tbl.AddRow("Average grade:", fmt.Sprintf("%d%%", r.Totals.AverageGrade))
	cli.println(tbl)
	cli.println()

	cli.println(bold.Sprint("Course progress"))
	tbl = uitable.New()
	tbl.AddRow(header("COURSE", "COMPLETION")...)
	for _, cp := range r.CourseProgress {
		tbl.AddRow(cp.Name, fmt.Sprintf("%d%%", cp.Completion))
	}
	cli.println(tbl)
	cli.println()

	cli.println(bold.Sprint("Top students"))
	tbl = uitable.New()
	tbl.AddRow(header("NAME", "COURSE", "GRADE", "PROGRESS")...)
	for _, s := range r.TopStudents {
		tbl.AddRow(s.Name, s.Course, fmt.Sprintf("%d%% (%s)", s.Grade, dashboard.GradeClass(s.Grade)), fmt.Sprintf("%d%%", s.Progress))
	}
	cli.println(tbl)
	cli.println()

	cli.println(bold.Sprint("Recent activity"))
	tbl = uitable.New()
	for _, a := range r.RecentActivity {
		tbl.AddRow("["+dashboard.ActivityIcon(a.Type)+"]", a.Title, a.Description, a.Time)
	}
	cli.println(tbl)
}

func statusLabel(s course.AssignmentStatus) string {
	if c, ok := statusColors[s]; ok {
		return c.Sprint(string(s))
	}
	return string(s)
}

func header(cols ...string) []interface{} {
	bold := color.New(color.Bold)
	row := make([]interface{}, 0, len(cols))
	for _, col := range cols {
		row = append(row, bold.Sprint(col))
	}
	return row
}
