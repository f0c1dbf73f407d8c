package echoapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/prachishaw/ClassCapsule/core"
	"github.com/prachishaw/ClassCapsule/core/calendar"
	"github.com/prachishaw/ClassCapsule/core/course"
)

const (
	dateLayout     = "2006-01-02"
	icsContentType = "text/calendar; charset=utf-8"

	invalidDateText   = "invalid date, expected YYYY-MM-DD"
	invalidRepeatText = "invalid repeat, expected an RRULE such as FREQ=WEEKLY;COUNT=4"
)

type calendarApi struct {
	courses       *course.Service
	upcomingLimit int
}

func registerCalendarAPI(g *echo.Group, guard echo.MiddlewareFunc, courses *course.Service, upcomingLimit int) {
	if upcomingLimit <= 0 {
		upcomingLimit = calendar.DefaultUpcomingLimit
	}
	api := calendarApi{courses: courses, upcomingLimit: upcomingLimit}

	cg := g.Group("/calendar", guard)
	cg.GET("", api.period)
	cg.GET("/upcoming", api.upcoming)
	g.GET("/calendar.ics", api.exportICS, guard)
}

// UpcomingEvent is an Event with its display helpers resolved.
type UpcomingEvent struct {
	calendar.Event
	CourseTitle string `json:"course_title"`
	DateLabel   string `json:"date_label"`
}

// Handlers

func (api *calendarApi) period(ctx echo.Context) error {
	now := nowFunc()
	q := calendar.Query{Anchor: now, CourseID: ctx.QueryParam("course")}

	var fldErrs []core.FieldError
	if date, ok, err := parseDate(ctx.QueryParam("date"), now.Location()); err != nil {
		fldErrs = append(fldErrs, core.FieldError{Field: "date", Error: invalidDateText})
	} else if ok {
		q.Anchor = date
		q.Selected = &date
	}
	mode, ok := calendar.ParseViewMode(ctx.QueryParam("view"))
	if !ok {
		fldErrs = append(fldErrs, core.FieldError{Field: "view", Error: "invalid view, expected month, week or day"})
	}
	if fldErrs != nil {
		return core.NewValidationError(nil, fldErrs...)
	}
	q.Mode = mode

	return ctx.JSON(http.StatusOK, calendar.Compose(q, api.events(now), now, api.upcomingLimit))
}

func (api *calendarApi) upcoming(ctx echo.Context) error {
	now := nowFunc()
	from, limit := now, api.upcomingLimit

	var fldErrs []core.FieldError
	if date, ok, err := parseDate(ctx.QueryParam("from"), now.Location()); err != nil {
		fldErrs = append(fldErrs, core.FieldError{Field: "from", Error: invalidDateText})
	} else if ok {
		from = date
	}
	if raw := ctx.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > calendar.MaxUpcomingLimit {
			fldErrs = append(fldErrs, core.FieldError{Field: "limit", Error: "invalid limit"})
		}
		limit = n
	}
	all, err := api.repeatedEvents(ctx, now)
	if err != nil {
		fldErrs = append(fldErrs, core.FieldError{Field: "repeat", Error: invalidRepeatText})
	}
	if fldErrs != nil {
		return core.NewValidationError(nil, fldErrs...)
	}

	events := calendar.UpcomingEvents(calendar.Filter(all, ctx.QueryParam("course")), from, limit)
	views := make([]UpcomingEvent, 0, len(events))
	for _, e := range events {
		views = append(views, UpcomingEvent{
			Event:       e,
			CourseTitle: api.courses.CourseTitle(e.CourseID),
			DateLabel:   calendar.FormatEventDate(e.Date, now),
		})
	}
	return ctx.JSON(http.StatusOK, views)
}

func (api *calendarApi) exportICS(ctx echo.Context) error {
	now := nowFunc()
	events, err := api.repeatedEvents(ctx, now)
	if err != nil {
		return core.NewValidationError(nil, core.FieldError{Field: "repeat", Error: invalidRepeatText})
	}
	feed, err := calendar.ExportICS(calendar.Filter(events, ctx.QueryParam("course")), now)
	if err != nil {
		return errors.Wrap(err, "exporting calendar")
	}
	return ctx.Blob(http.StatusOK, icsContentType, []byte(feed))
}

func (api *calendarApi) events(now time.Time) []calendar.Event {
	return calendar.SampleEvents(now)
}

// repeatedEvents returns the events with classes repeated by the "repeat" RRULE query value.
func (api *calendarApi) repeatedEvents(ctx echo.Context, now time.Time) ([]calendar.Event, error) {
	return calendar.RepeatClasses(api.events(now), ctx.QueryParam("repeat"), now)
}

// parseDate parses a YYYY-MM-DD query value; ok is false when s is empty.
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
