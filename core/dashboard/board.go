package dashboard

import (
	"sync"

	"github.com/prachishaw/ClassCapsule/core/course"
	"github.com/prachishaw/ClassCapsule/core/reactive"
	"github.com/prachishaw/ClassCapsule/core/user"
)

// State is the dashboard as displayed for the current identity.
type State struct {
	Identity *user.Identity  `json:"user"`
	Role     string          `json:"role"`
	Labels   Labels          `json:"labels"`
	Summary  Summary         `json:"summary"`
	Stats    Stats           `json:"stats"`
	Courses  []course.Course `json:"courses"`
}

// Board recomputes the dashboard State whenever the identity, courses or assignments change.
type Board struct {
	mu          sync.Mutex
	viewer      viewer
	courses     []course.Course
	assignments []course.Assignment

	state *reactive.Cell[State]
	subs  []*reactive.Subscription
}

func NewBoard(gate *user.Gate, courses *course.Service) *Board {
	b := &Board{state: reactive.New(State{Labels: DeriveLabels("")})}

	viewers, viewersSub := reactive.Derive(gate.Identity(), newViewer)
	b.subs = append(b.subs,
		viewersSub,
		viewers.Subscribe(func(v viewer) {
			b.change(func() { b.viewer = v })
		}),
		courses.Courses().Subscribe(func(cs []course.Course) {
			b.change(func() { b.courses = cs })
		}),
		courses.Assignments().Subscribe(func(as []course.Assignment) {
			b.change(func() { b.assignments = as })
		}),
	)
	return b
}

// State returns the cell publishing the dashboard State.
func (b *Board) State() *reactive.Cell[State] { return b.state }

func (b *Board) Snapshot() State { return b.state.Value() }

// Close detaches the board from its sources.
func (b *Board) Close() {
	for _, sub := range b.subs {
		sub.Unsubscribe()
	}
}

// change applies fn, then publishes a State read back under the cell's lock
// so a slower publisher cannot overwrite a newer State.
func (b *Board) change(fn func()) {
	b.mu.Lock()
	fn()
	b.mu.Unlock()

	b.state.Update(func(State) (State, bool) {
		b.mu.Lock()
		defer b.mu.Unlock()
		return b.compute(), true
	})
}

// compute expects b.mu to be held.
func (b *Board) compute() State {
	stats := Overview(b.courses, b.assignments)
	return State{
		Identity: b.viewer.identity,
		Role:     RoleDisplayName(b.viewer.role),
		Labels:   b.viewer.labels,
		Summary:  DeriveSummary(b.viewer.role, stats.Summary),
		Stats:    stats,
		Courses:  b.courses,
	}
}

// viewer is the role-derived part of the State.
type viewer struct {
	identity *user.Identity
	role     user.Role
	labels   Labels
}

func newViewer(id *user.Identity) viewer {
	v := viewer{identity: id}
	if id != nil {
		v.role = id.Role
	}
	v.labels = DeriveLabels(v.role)
	return v
}
