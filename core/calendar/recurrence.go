package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/teambition/rrule-go"

	"github.com/prachishaw/ClassCapsule/core/dateutil"
)

// Expand returns the occurrences of e between from and to (inclusive) following the RRULE rule,
// e.g. "FREQ=WEEKLY;BYDAY=MO,WE;COUNT=10". The series starts at e.
// Occurrences get the ID "<e.ID>-<n>", n counting from 1 within the window.
func Expand(e Event, rule string, from, to time.Time) ([]Event, error) {
	opt, err := rrule.StrToROption(rule)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing rule %q", rule)
	}
	start, ok := e.StartTime()
	if !ok {
		start = dateutil.StartOfDay(e.Date)
	}
	opt.Dtstart = start

	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, errors.Wrapf(err, "building rule %q", rule)
	}

	times := r.Between(from, to, true)
	occurrences := make([]Event, 0, len(times))
	for i, t := range times {
		occ := e
		occ.ID = fmt.Sprintf("%s-%d", e.ID, i+1)
		occ.Date = dateutil.StartOfDay(t)
		occurrences = append(occurrences, occ)
	}
	return occurrences, nil
}

// RepeatClasses expands every class in events into its occurrences following rule, from's day
// through SeriesWindowDays later. Other events are kept as they are. The result is sorted by day.
// An empty rule returns events unchanged.
func RepeatClasses(events []Event, rule string, from time.Time) ([]Event, error) {
	if rule == "" {
		return events, nil
	}
	start := dateutil.StartOfDay(from)
	end := start.AddDate(0, 0, SeriesWindowDays)

	out := make([]Event, 0, len(events))
	for _, e := range events {
		if e.Category != CategoryClass {
			out = append(out, e)
			continue
		}
		occurrences, err := Expand(e, rule, start, end)
		if err != nil {
			return nil, err
		}
		out = append(out, occurrences...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return dateutil.Before(out[i].Date, out[j].Date)
	})
	return out, nil
}
