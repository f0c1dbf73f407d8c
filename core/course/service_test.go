package course_test

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prachishaw/ClassCapsule/core/course"
	"github.com/prachishaw/ClassCapsule/tests"
)

func TestService_CourseByID(t *testing.T) {
	svc := testutil.NewCourseService(t)

	c, err := svc.CourseByID("3")
	require.NoError(t, err)
	assert.Equal(t, "Digital Design", c.Title)

	_, err = svc.CourseByID("42")
	assert.Equal(t, course.ErrNotFound, err)
}

func TestService_CourseTitleAndColor(t *testing.T) {
	svc := testutil.NewCourseService(t)
	tests := []struct {
		name      string
		id        string
		wantTitle string
		wantColor string
	}{
		{name: "known", id: "1", wantTitle: "Advanced Mathematics", wantColor: "#3B82F6"},
		{name: "unknown", id: "42", wantTitle: course.UnknownCourseTitle, wantColor: course.DefaultCourseColor},
		{name: "empty", id: "", wantTitle: "Unknown Course", wantColor: "#6B7280"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantTitle, svc.CourseTitle(tt.id))
			assert.Equal(t, tt.wantColor, svc.CourseColor(tt.id))
		})
	}
}

func TestService_AssignmentsByCourse(t *testing.T) {
	svc := testutil.NewCourseService(t)

	got := svc.AssignmentsByCourse("2")
	require.Len(t, got, 1)
	assert.Equal(t, "Algorithm Implementation", got[0].Title)
	assert.Empty(t, svc.AssignmentsByCourse("42"))
}

func TestService_UpdateAssignmentStatus(t *testing.T) {
	svc := testutil.NewCourseService(t)

	var published [][]course.Assignment
	svc.Assignments().Subscribe(func(as []course.Assignment) { published = append(published, as) })
	before := svc.Assignments().Value()

	updated, err := svc.UpdateAssignmentStatus("2", course.StatusGraded)
	require.NoError(t, err)
	assert.Equal(t, course.StatusGraded, updated.Status)

	require.Len(t, published, 2)
	after := published[1]
	require.Len(t, after, len(before))
	for i := range after {
		if after[i].ID == "2" {
			assert.Equal(t, course.StatusGraded, after[i].Status)
			continue
		}
		assert.Equal(t, before[i], after[i], "other assignments are unchanged")
	}

	// copy-on-write: the previously published slice is untouched
	assert.Equal(t, course.StatusSubmitted, before[1].Status)
	assert.NotSame(t, &before[0], &after[0])
}

func TestService_UpdateAssignmentStatus_Errors(t *testing.T) {
	svc := testutil.NewCourseService(t)
	var publishes int
	svc.Assignments().Subscribe(func([]course.Assignment) { publishes++ })

	_, err := svc.UpdateAssignmentStatus("42", course.StatusGraded)
	assert.Equal(t, course.ErrAssignmentNotFound, err)

	_, err = svc.UpdateAssignmentStatus("1", "lost")
	require.Error(t, err)
	_, ok := err.(validator.ValidationErrors)
	assert.True(t, ok)

	assert.Equal(t, 1, publishes, "failed updates publish nothing")
}

func TestService_Submit(t *testing.T) {
	svc := testutil.NewCourseService(t)
	a, err := svc.Submit("1")
	require.NoError(t, err)
	assert.Equal(t, course.StatusSubmitted, a.Status)

	got, err := svc.AssignmentByID("1")
	require.NoError(t, err)
	assert.Equal(t, course.StatusSubmitted, got.Status)
}

func TestFormatDueDate(t *testing.T) {
	now := testutil.Today
	tests := []struct {
		name string
		due  time.Time
		want string
	}{
		{name: "overdue", due: testutil.Date(2025, 1, 18), want: "2 days overdue"},
		{name: "earlier today", due: testutil.Date(2025, 1, 20), want: "Due today"},
		{name: "tomorrow", due: testutil.Date(2025, 1, 21), want: "Due tomorrow"},
		{name: "later", due: testutil.Date(2025, 1, 25), want: "Due in 5 days"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, course.FormatDueDate(tt.due, now))
		})
	}
}

func TestIsOverdue(t *testing.T) {
	assert.True(t, course.IsOverdue(testutil.Date(2025, 1, 20), testutil.Today))
	assert.False(t, course.IsOverdue(testutil.Date(2025, 1, 21), testutil.Today))
}

func TestSubjectIcon(t *testing.T) {
	tests := map[string]string{
		"Advanced Mathematics":          "📐",
		"Computer Science Fundamentals": "💻",
		"Intro to Programming":          "💻",
		"Digital Design":                "🎨",
		"Business Strategy":             "💼",
		"Ancient History":               "📚",
	}
	for title, want := range tests {
		t.Run(title, func(t *testing.T) {
			assert.Equal(t, want, course.SubjectIcon(title))
		})
	}
}
