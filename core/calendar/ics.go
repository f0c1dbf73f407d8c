package calendar

import (
	"bytes"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/pkg/errors"

	"github.com/prachishaw/ClassCapsule/core/dateutil"
)

const (
	icsProductID = "-//ClassCapsule//Calendar//EN"
	icsUIDSuffix = "@classcapsule"

	// AllDay is the time of day of events without a start time.
	AllDay = "All Day"
)

var (
	icsPropColor  = ics.ComponentProperty("COLOR")
	icsPropCourse = ics.ComponentProperty("X-CLASSCAPSULE-COURSE")
)

// WriteICS writes events as an iCalendar feed; stamp is used as DTSTAMP.
// Events without a parsable time of day are written as all-day events.
func WriteICS(w io.Writer, events []Event, stamp time.Time) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)

	for _, e := range events {
		ev := cal.AddEvent(e.ID + icsUIDSuffix)
		ev.SetDtStampTime(stamp.UTC())
		ev.SetSummary(e.Title)
		if start, ok := e.StartTime(); ok {
			ev.SetStartAt(start)
			ev.SetEndAt(start.Add(time.Duration(e.Duration) * time.Minute))
		} else {
			day := dateutil.StartOfDay(e.Date)
			ev.SetAllDayStartAt(day)
			ev.SetAllDayEndAt(day.AddDate(0, 0, 1))
		}
		if e.Category != "" {
			ev.SetProperty(ics.ComponentPropertyCategories, string(e.Category))
		}
		if e.Color != "" {
			ev.SetProperty(icsPropColor, e.Color)
		}
		if e.CourseID != "" {
			ev.SetProperty(icsPropCourse, e.CourseID)
		}
	}
	return errors.Wrap(cal.SerializeTo(w), "serializing calendar")
}

// ExportICS returns events as an iCalendar feed.
func ExportICS(events []Event, stamp time.Time) (string, error) {
	var buf bytes.Buffer
	if err := WriteICS(&buf, events, stamp); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ImportICS reads the VEVENTs of an iCalendar feed, with dates read in loc.
// Events without a known category are imported as meetings.
func ImportICS(r io.Reader, loc *time.Location) ([]Event, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing calendar")
	}

	events := make([]Event, 0, len(cal.Events()))
	for _, ev := range cal.Events() {
		e, err := fromVEvent(ev, loc)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

func fromVEvent(ev *ics.VEvent, loc *time.Location) (Event, error) {
	e := Event{
		ID:       strings.TrimSuffix(propertyValue(ev, ics.ComponentPropertyUniqueId), icsUIDSuffix),
		Title:    propertyValue(ev, ics.ComponentPropertySummary),
		Color:    propertyValue(ev, icsPropColor),
		CourseID: propertyValue(ev, icsPropCourse),
		Category: Category(strings.ToLower(propertyValue(ev, ics.ComponentPropertyCategories))),
	}
	if !e.Category.Valid() {
		e.Category = CategoryMeeting
	}

	if isAllDay(ev) {
		start, err := ev.GetAllDayStartAt()
		if err != nil {
			return Event{}, errors.Wrapf(err, "reading start of %q", e.ID)
		}
		e.Date = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
		e.Time = AllDay
		return e, nil
	}

	start, err := ev.GetStartAt()
	if err != nil {
		return Event{}, errors.Wrapf(err, "reading start of %q", e.ID)
	}
	start = start.In(loc)
	e.Date = dateutil.StartOfDay(start)
	e.Time = FormatTimeOfDay(start)
	if end, err := ev.GetEndAt(); err == nil && end.After(start) {
		e.Duration = int(end.Sub(start) / time.Minute)
	}
	return e, nil
}

func propertyValue(ev *ics.VEvent, prop ics.ComponentProperty) string {
	if p := ev.GetProperty(prop); p != nil {
		return strings.TrimSpace(p.Value)
	}
	return ""
}

func isAllDay(ev *ics.VEvent) bool {
	p := ev.GetProperty(ics.ComponentPropertyDtStart)
	if p == nil {
		return false
	}
	for _, v := range p.ICalParameters["VALUE"] {
		if strings.EqualFold(v, "DATE") {
			return true
		}
	}
	return len(p.Value) == len("20060102")
}
