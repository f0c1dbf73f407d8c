package calendar

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prachishaw/ClassCapsule/core/course"
	"github.com/prachishaw/ClassCapsule/tests"
)

func newTestView(t *testing.T) (*View, *course.Service) {
	t.Helper()
	courses := testutil.NewCourseService(t)
	v := NewView(ViewDeps{Courses: courses, Now: testutil.Clock(testutil.Today)})
	t.Cleanup(v.Close)
	return v, courses
}

func TestNewView(t *testing.T) {
	v, _ := newTestView(t)
	snap := v.Snapshot()

	assert.Equal(t, "January 2025", snap.Title)
	assert.Equal(t, ViewMonth, snap.Mode)
	assert.Equal(t, testutil.Today, snap.Anchor)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(snap.Upcoming))
	assert.Len(t, v.Events(), 5)
}

func TestView_Navigation(t *testing.T) {
	v, _ := newTestView(t)

	tests := []struct {
		name string
		op   func() Snapshot
		want string
	}{
		{name: "next month", op: v.Next, want: "February 2025"},
		{name: "back", op: v.Previous, want: "January 2025"},
		{name: "previous month", op: v.Previous, want: "December 2024"},
		{name: "today", op: v.Today, want: "January 2025"},
		{name: "week mode", op: func() Snapshot { return v.SetMode(ViewWeek) }, want: "Jan 19 - Jan 25"},
		{name: "next week", op: v.Next, want: "Jan 26 - Feb 1"},
		{name: "day mode", op: func() Snapshot { return v.SetMode(ViewDay) }, want: "Monday, January 27, 2025"},
		{name: "go to", op: func() Snapshot { return v.GoTo(testutil.Date(2025, 3, 14)) }, want: "Friday, March 14, 2025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := tt.op()
			assert.Equal(t, tt.want, snap.Title)
			assert.Equal(t, snap, v.Snapshot())
		})
	}
}

func TestView_FilterCourse(t *testing.T) {
	v, _ := newTestView(t)

	snap := v.FilterCourse("1")
	assert.Equal(t, "1", snap.CourseID)
	assert.Equal(t, []string{"1", "4"}, ids(snap.Upcoming))
	var inGrid int
	for _, d := range snap.Weeks.Days() {
		for _, e := range d.Events {
			assert.Equal(t, "1", e.CourseID)
			inGrid++
		}
	}
	assert.Equal(t, 2, inGrid)
	assert.Len(t, v.Events(), 5, "filtering keeps every event")

	snap = v.FilterCourse("")
	assert.Len(t, snap.Upcoming, 5)
}

func TestView_Select(t *testing.T) {
	v, _ := newTestView(t)
	snap := v.Select(testutil.Date(2025, time.January, 22))

	var selected int
	for _, d := range snap.Weeks.Days() {
		if d.IsSelected {
			selected++
			assert.Equal(t, testutil.Date(2025, time.January, 22), d.Date)
		}
	}
	assert.Equal(t, 1, selected)
	assert.True(t, snap.Week[3].IsSelected)
}

func TestView_Publishes(t *testing.T) {
	v, _ := newTestView(t)

	var got []string
	sub := v.State().Subscribe(func(s Snapshot) { got = append(got, s.Title) })
	v.Next()
	v.SetMode(ViewDay)
	sub.Unsubscribe()
	v.Next()

	assert.Equal(t, []string{"January 2025", "February 2025", "Thursday, February 20, 2025"}, got)
}

func TestView_ConcurrentNavigation(t *testing.T) {
	v, _ := newTestView(t)

	ops := []func() Snapshot{
		v.Next,
		v.Previous,
		v.Today,
		func() Snapshot { return v.SetMode(ViewWeek) },
		func() Snapshot { return v.SetMode(ViewDay) },
		func() Snapshot { return v.FilterCourse("2") },
	}
	var wg sync.WaitGroup
	for _, op := range ops {
		wg.Add(1)
		go func(op func() Snapshot) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				op()
			}
		}(op)
	}
	wg.Wait()

	v.mu.Lock()
	want := v.snapshot()
	v.mu.Unlock()
	assert.Equal(t, want, v.Snapshot())
}

func TestView_RegeneratesOnCourseChange(t *testing.T) {
	courses := testutil.NewCourseService(t)
	var calls int
	v := NewView(ViewDeps{
		Courses: courses,
		Now:     testutil.Clock(testutil.Today),
		Events: func(today time.Time) []Event {
			calls++
			return SampleEvents(today)[:calls]
		},
	})
	defer v.Close()

	require.Equal(t, 2, calls, "generated on creation and on the replayed course list")
	assert.Len(t, v.Snapshot().Upcoming, 2)

	courses.Courses().Set(courses.Courses().Value())
	assert.Equal(t, 3, calls)
	assert.Len(t, v.Snapshot().Upcoming, 3)

	v.Close()
	courses.Courses().Set(nil)
	assert.Equal(t, 3, calls)
}

func TestView_CourseTitle(t *testing.T) {
	v, courses := newTestView(t)
	events := v.Events()

	assert.Equal(t, courses.CourseTitle("1"), v.CourseTitle(events[0]))
	assert.Equal(t, course.UnknownCourseTitle, v.CourseTitle(Event{CourseID: "99"}))
	assert.Equal(t, course.UnknownCourseTitle, NewView(ViewDeps{Now: testutil.Clock(testutil.Today)}).CourseTitle(events[0]))
}

func TestCompose(t *testing.T) {
	selected := testutil.Date(2025, time.January, 23)
	snap := Compose(Query{Anchor: testutil.Date(2025, 1, 22), Mode: ViewWeek, CourseID: "3", Selected: &selected},
		SampleEvents(testutil.Today), testutil.Today, 5)

	assert.Equal(t, "Jan 19 - Jan 25", snap.Title)
	assert.Equal(t, []string{"3"}, ids(snap.Upcoming))
	assert.True(t, snap.Week[4].IsSelected)
	assert.Len(t, snap.Week[4].Events, 1)

	assert.Equal(t, ViewMonth, Compose(Query{Anchor: testutil.Today}, nil, testutil.Today, 5).Mode)
}
