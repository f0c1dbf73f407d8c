package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/prachishaw/ClassCapsule/apps"
	"github.com/prachishaw/ClassCapsule/core/calendar"
	"github.com/prachishaw/ClassCapsule/core/dateutil"
	"github.com/prachishaw/ClassCapsule/core/user"
)

const dateLayout = "2006-01-02"

type calendarOptions struct {
	view     string
	date     string
	courseID string
	shift    int
}

func (cli *commandLine) addCalendarCommands(topLevel *cobra.Command) {
	var co calendarOptions
	calendarCmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print the calendar of a month, week or day",
		Example: `
classcapsule calendar
classcapsule calendar --view week --date 2025-01-21
classcapsule calendar --view day --shift -1
`,
		Args: cobra.NoArgs,
		RunE: cli.protected(func(cmd *cobra.Command, args []string, id user.Identity) error {
			snap, err := cli.calendarSnapshot(co)
			if err != nil {
				return err
			}
			cli.printCalendar(snap)
			return nil
		}),
	}
	calendarCmd.Flags().StringVar(&co.view, "view", string(calendar.ViewMonth), "One of: month, week, day.")
	calendarCmd.Flags().StringVar(&co.date, "date", "", "Day to show and select, example: --date=2025-01-21.")
	calendarCmd.Flags().StringVar(&co.courseID, "course", "", "Only show the events of this course ID.")
	calendarCmd.Flags().IntVar(&co.shift, "shift", 0, "Periods to move forward (or backward when negative).")

	var (
		limit    int
		from     string
		courseID string
		repeat   string
	)
	upcomingCmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List the next events",
		Args:  cobra.NoArgs,
		RunE: cli.protected(func(cmd *cobra.Command, args []string, id user.Identity) error {
			now := nowFunc()
			start, ok, err := parseDate(from, now.Location())
			if err != nil {
				return apps.NewArgumentErrorf("invalid --from %q, expected YYYY-MM-DD", from)
			}
			if !ok {
				start = now
			}
			if limit < 0 || limit > calendar.MaxUpcomingLimit {
				return apps.NewArgumentErrorf("invalid --limit %d, expected 0 to %d", limit, calendar.MaxUpcomingLimit)
			}
			all, err := sampleEvents(now, repeat)
			if err != nil {
				return err
			}
			events := calendar.UpcomingEvents(calendar.Filter(all, courseID), start, limit)
			cli.printEvents(events, now)
			return nil
		}),
	}
	upcomingCmd.Flags().IntVar(&limit, "limit", cli.upcomingLimit, "How many events to list.")
	upcomingCmd.Flags().StringVar(&from, "from", "", "List events from this day on (default today).")
	upcomingCmd.Flags().StringVar(&courseID, "course", "", "Only list the events of this course ID.")
	upcomingCmd.Flags().StringVar(&repeat, "repeat", "", "Repeat classes by this RRULE, example: --repeat='FREQ=WEEKLY;COUNT=4'.")

	var output, exportCourseID, exportRepeat string
	exportCmd := &cobra.Command{
		Use:   "export-ics",
		Short: "Export the calendar as iCalendar",
		Args:  cobra.NoArgs,
		RunE: cli.protected(func(cmd *cobra.Command, args []string, id user.Identity) error {
			now := nowFunc()
			events, err := sampleEvents(now, exportRepeat)
			if err != nil {
				return err
			}
			var w io.Writer = cli.out
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return errors.Wrap(err, "creating export file")
				}
				defer f.Close()
				w = f
			}
			if err := calendar.WriteICS(w, calendar.Filter(events, exportCourseID), now); err != nil {
				return errors.Wrap(err, "exporting calendar")
			}
			if output != "" {
				cli.logger.Info("calendar exported", map[string]interface{}{"file": output}, id)
			}
			return nil
		}),
	}
	exportCmd.Flags().StringVarP(&output, "output", "o", "", "File to write (default stdout).")
	exportCmd.Flags().StringVar(&exportCourseID, "course", "", "Only export the events of this course ID.")
	exportCmd.Flags().StringVar(&exportRepeat, "repeat", "", "Repeat classes by this RRULE.")

	importCmd := &cobra.Command{
		Use:   "import-ics FILE",
		Short: "List the events of an iCalendar file",
		Args:  cobra.ExactArgs(1),
		RunE: cli.protected(func(cmd *cobra.Command, args []string, id user.Identity) error {
			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "opening import file")
			}
			defer f.Close()

			now := nowFunc()
			events, err := calendar.ImportICS(f, now.Location())
			if err != nil {
				return err
			}
			cli.printEvents(events, now)
			return nil
		}),
	}

	topLevel.AddCommand(calendarCmd, upcomingCmd, exportCmd, importCmd)
}

func (cli *commandLine) calendarSnapshot(co calendarOptions) (calendar.Snapshot, error) {
	mode, ok := calendar.ParseViewMode(co.view)
	if !ok {
		return calendar.Snapshot{}, apps.NewArgumentErrorf("invalid --view %q, expected month, week or day", co.view)
	}

	view := calendar.NewView(calendar.ViewDeps{
		Courses:       cli.courses,
		Now:           nowFunc,
		UpcomingLimit: cli.upcomingLimit,
	})
	defer view.Close()

	snap := view.SetMode(mode)
	if date, ok, err := parseDate(co.date, nowFunc().Location()); err != nil {
		return calendar.Snapshot{}, apps.NewArgumentErrorf("invalid --date %q, expected YYYY-MM-DD", co.date)
	} else if ok {
		view.GoTo(date)
		snap = view.Select(date)
	}
	if co.courseID != "" {
		snap = view.FilterCourse(co.courseID)
	}
	for i := co.shift; i > 0; i-- {
		snap = view.Next()
	}
	for i := co.shift; i < 0; i++ {
		snap = view.Previous()
	}
	return snap, nil
}

func (cli *commandLine) printCalendar(snap calendar.Snapshot) {
	bold := color.New(color.Bold)
	cli.println(bold.Sprint(snap.Title))
	cli.println()

	switch snap.Mode {
	case calendar.ViewMonth:
		cli.printMonth(snap.Weeks)
	case calendar.ViewWeek:
		for _, d := range snap.Week {
			cli.printDay(d, d.Date.Format("Mon Jan 2"))
		}
	case calendar.ViewDay:
		day := calendar.Day{Date: snap.Anchor}
		for _, d := range snap.Weeks.Days() {
			if dateutil.SameDay(d.Date, snap.Anchor) {
				day = d
				break
			}
		}
		cli.printSlots(day)
	default:
		cli.printMonth(snap.Weeks)
	}

	cli.println()
	cli.println(bold.Sprint("Upcoming"))
	cli.printEvents(snap.Upcoming, nowFunc())
}

func (cli *commandLine) printMonth(grid calendar.MonthGrid) {
	tbl := uitable.New()
	tbl.Separator = "  "
	names := make([]string, 0, len(calendar.WeekDayNames))
	names = append(names, calendar.WeekDayNames[:]...)
	tbl.AddRow(header(names...)...)

	faint := color.New(color.Faint)
	today := color.New(color.Bold, color.Underline)
	for _, w := range grid {
		row := make([]interface{}, 0, len(w))
		for _, d := range w {
			cell := strconv.Itoa(d.Date.Day())
			if len(d.Events) > 0 {
				cell += "*"
			}
			if d.IsSelected {
				cell = "[" + cell + "]"
			}
			switch {
			case d.IsToday:
				cell = today.Sprint(cell)
			case !d.IsCurrentMonth:
				cell = faint.Sprint(cell)
			}
			row = append(row, cell)
		}
		tbl.AddRow(row...)
	}
	for i := 0; i < 7; i++ {
		tbl.RightAlign(i)
	}
	cli.println(tbl)
}

func (cli *commandLine) printDay(d calendar.Day, label string) {
	if d.IsToday {
		label = color.New(color.Bold).Sprint(label + " (today)")
	}
	cli.println(label)
	if len(d.Events) == 0 {
		cli.println("  -")
		return
	}
	for _, e := range d.Events {
		cli.printf("  %-8s  %s\n", e.Time, cli.eventTitle(e))
	}
}

// printSlots lays the events of d out on the hourly time slots.
func (cli *commandLine) printSlots(d calendar.Day) {
	tbl := uitable.New()
	for _, slot := range calendar.TimeSlots {
		offset, _ := calendar.EventVerticalOffset(slot)
		var titles []string
		for _, e := range d.Events {
			if start, err := calendar.EventVerticalOffset(e.Time); err == nil && start == offset {
				titles = append(titles, fmt.Sprintf("%s (%d min)", cli.eventTitle(e), calendar.EventHeight(e.Duration)))
			}
		}
		if len(titles) == 0 {
			tbl.AddRow(slot, "")
			continue
		}
		for _, title := range titles {
			tbl.AddRow(slot, title)
		}
	}
	cli.println(tbl)

	// events outside of the slots
	for _, e := range d.Events {
		if start, err := calendar.EventVerticalOffset(e.Time); err != nil || start < 0 || start > (len(calendar.TimeSlots)-1)*60 {
			cli.printf("%s  %s\n", e.Time, cli.eventTitle(e))
		}
	}
}

func (cli *commandLine) printEvents(events []calendar.Event, now time.Time) {
	tbl := uitable.New()
	tbl.AddRow(header("DATE", "TIME", "EVENT", "TYPE", "COURSE")...)
	for _, e := range events {
		courseTitle := ""
		if e.CourseID != "" {
			courseTitle = cli.courses.CourseTitle(e.CourseID)
		}
		tbl.AddRow(calendar.FormatEventDate(e.Date, now), e.Time, e.Title, string(e.Category), courseTitle)
	}
	cli.println(tbl)
}

func (cli *commandLine) eventTitle(e calendar.Event) string {
	return e.Title + " [" + string(e.Category) + "]"
}

// parseDate parses a YYYY-MM-DD flag value; ok is false when s is empty.
func parseDate(s string, loc *time.Location) (date time.Time, ok bool, err error) {
	if s == "" {
		return time.Time{}, false, nil
	}
	date, err = time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return time.Time{}, false, err
	}
	return date, true, nil
}

// sampleEvents returns the demo events, classes repeated by rule when it is set.
func sampleEvents(now time.Time, rule string) ([]calendar.Event, error) {
	events, err := calendar.RepeatClasses(calendar.SampleEvents(now), rule, now)
	if err != nil {
		return nil, apps.NewArgumentErrorf("invalid --repeat %q, expected an RRULE such as FREQ=WEEKLY;COUNT=4", rule)
	}
	return events, nil
}
