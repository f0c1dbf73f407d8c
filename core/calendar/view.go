package calendar

import (
	"sync"
	"time"

	"github.com/prachishaw/ClassCapsule/core/course"
	"github.com/prachishaw/ClassCapsule/core/reactive"
)

// Snapshot is the calendar as displayed: period, grid and upcoming events.
type Snapshot struct {
	Title    string    `json:"title"`
	Mode     ViewMode  `json:"view"`
	Anchor   time.Time `json:"anchor"`
	CourseID string    `json:"course_id,omitempty"`
	Weeks    MonthGrid `json:"weeks"`
	Week     Week      `json:"week"`
	Upcoming []Event   `json:"upcoming"`
}

type ViewDeps struct {
	Courses *course.Service
	Now     func() time.Time
	// Events generates the events shown for today; SampleEvents when nil.
	Events        func(today time.Time) []Event
	UpcomingLimit int
}

// View holds the calendar navigation state and publishes a Snapshot on every change.
// Events are regenerated whenever the course list is published.
type View struct {
	mu       sync.Mutex
	deps     ViewDeps
	anchor   time.Time
	mode     ViewMode
	selected *time.Time
	courseID string
	events   []Event

	state *reactive.Cell[Snapshot]
	sub   *reactive.Subscription
}

func NewView(deps ViewDeps) *View {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Events == nil {
		deps.Events = SampleEvents
	}
	if deps.UpcomingLimit <= 0 {
		deps.UpcomingLimit = DefaultUpcomingLimit
	}

	v := &View{
		deps:   deps,
		anchor: deps.Now(),
		mode:   ViewMonth,
	}
	v.events = deps.Events(v.anchor)
	v.state = reactive.New(v.snapshot())
	if deps.Courses != nil {
		v.sub = deps.Courses.Courses().Subscribe(func([]course.Course) {
			v.mu.Lock()
			v.events = v.deps.Events(v.deps.Now())
			v.mu.Unlock()
			v.publish()
		})
	}
	return v
}

// State returns the cell publishing the current Snapshot.
func (v *View) State() *reactive.Cell[Snapshot] { return v.state }

func (v *View) Snapshot() Snapshot { return v.state.Value() }

// Close detaches the view from the course list.
func (v *View) Close() { v.sub.Unsubscribe() }

func (v *View) Next() Snapshot { return v.advance(Forward) }

func (v *View) Previous() Snapshot { return v.advance(Backward) }

func (v *View) advance(dir Direction) Snapshot {
	return v.change(func() { v.anchor = AdvancePeriod(v.anchor, v.mode, dir) })
}

func (v *View) SetMode(mode ViewMode) Snapshot {
	return v.change(func() { v.mode = mode })
}

// GoTo centers the view on date.
func (v *View) GoTo(date time.Time) Snapshot {
	return v.change(func() { v.anchor = date })
}

// Today centers the view on the current date.
func (v *View) Today() Snapshot {
	return v.change(func() { v.anchor = v.deps.Now() })
}

// Select marks date as the selected day.
func (v *View) Select(date time.Time) Snapshot {
	return v.change(func() { v.selected = &date })
}

// FilterCourse limits the shown events to courseID; empty shows all.
func (v *View) FilterCourse(courseID string) Snapshot {
	return v.change(func() { v.courseID = courseID })
}

// CourseTitle returns the title of the course owning e.
func (v *View) CourseTitle(e Event) string {
	if v.deps.Courses == nil {
		return course.UnknownCourseTitle
	}
	return v.deps.Courses.CourseTitle(e.CourseID)
}

// Events returns every event, unfiltered.
func (v *View) Events() []Event {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]Event(nil), v.events...)
}

func (v *View) change(fn func()) Snapshot {
	v.mu.Lock()
	fn()
	v.mu.Unlock()
	return v.publish()
}

// publish reads the Snapshot under the cell's lock so publishers cannot reorder.
func (v *View) publish() Snapshot {
	var snap Snapshot
	v.state.Update(func(Snapshot) (Snapshot, bool) {
		v.mu.Lock()
		defer v.mu.Unlock()
		snap = v.snapshot()
		return snap, true
	})
	return snap
}

// snapshot expects v.mu to be held.
func (v *View) snapshot() Snapshot {
	q := Query{Anchor: v.anchor, Mode: v.mode, CourseID: v.courseID, Selected: v.selected}
	return Compose(q, v.events, v.deps.Now(), v.deps.UpcomingLimit)
}

// Query selects the period, course and day a Snapshot shows.
type Query struct {
	Anchor   time.Time
	Mode     ViewMode
	CourseID string
	Selected *time.Time
}

// Compose lays out events for q as seen at now.
func Compose(q Query, events []Event, now time.Time, upcomingLimit int) Snapshot {
	if q.Mode == "" {
		q.Mode = ViewMonth
	}
	events = Filter(events, q.CourseID)

	grid := BuildMonthGrid(q.Anchor, events, now)
	week := WeekDays(q.Anchor, events, now)
	if q.Selected != nil {
		grid.Select(*q.Selected)
		week.Select(*q.Selected)
	}
	return Snapshot{
		Title:    PeriodTitle(q.Anchor, q.Mode),
		Mode:     q.Mode,
		Anchor:   q.Anchor,
		CourseID: q.CourseID,
		Weeks:    grid,
		Week:     week,
		Upcoming: UpcomingEvents(events, now, upcomingLimit),
	}
}
