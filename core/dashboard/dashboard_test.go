package dashboard_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/prachishaw/ClassCapsule/core/course"
	"github.com/prachishaw/ClassCapsule/core/dashboard"
	"github.com/prachishaw/ClassCapsule/core/user"
	"github.com/prachishaw/ClassCapsule/storage/mockdata"
	"github.com/prachishaw/ClassCapsule/tests"
)

func TestDeriveSummary(t *testing.T) {
	fetched := dashboard.Summary{CourseCount: 4, StudentCount: 102, PendingAssignmentCount: 2}
	tests := []struct {
		role user.Role
		want dashboard.Summary
	}{
		{role: user.RoleStudent, want: dashboard.Summary{CourseCount: 4, StudentCount: 0, PendingAssignmentCount: 3}},
		{role: user.RoleAdministrator, want: dashboard.Summary{CourseCount: 25, StudentCount: 450, PendingAssignmentCount: 89}},
		{role: user.RoleAlumni, want: dashboard.Summary{}},
		{role: user.RoleTeacher, want: fetched},
		{role: "", want: fetched},
		{role: "janitor", want: fetched},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, dashboard.DeriveSummary(tt.role, fetched))
		})
	}
}

func TestDeriveLabels(t *testing.T) {
	tests := []struct {
		role      user.Role
		wantTitle string
		wantSub   string
	}{
		{role: user.RoleStudent, wantTitle: "Student Dashboard", wantSub: "Track your courses, assignments, and academic progress."},
		{role: user.RoleTeacher, wantTitle: "Teacher Dashboard", wantSub: "Manage your classes, students, and course materials."},
		{role: user.RoleAdministrator, wantTitle: "Admin Dashboard", wantSub: "Oversee system operations and user management."},
		{role: user.RoleAlumni, wantTitle: "Alumni Dashboard", wantSub: "Stay connected with your alma mater and fellow graduates."},
		{role: "", wantTitle: "Dashboard", wantSub: "Welcome back!"},
		{role: "janitor", wantTitle: "Dashboard", wantSub: "Welcome back!"},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			got := dashboard.DeriveLabels(tt.role)
			assert.Equal(t, tt.wantTitle, got.Title)
			assert.Equal(t, tt.wantSub, got.Subtitle)
		})
	}
}

func TestOverview(t *testing.T) {
	catalog := mockdata.Catalog()
	stats := dashboard.Overview(catalog.Courses, catalog.Assignments)

	assert.Equal(t, 4, stats.CourseCount)
	assert.Equal(t, 102, stats.StudentCount)
	assert.Equal(t, 70, stats.AverageProgress)
	assert.Equal(t, 2, stats.PendingAssignmentCount)
	assert.Equal(t, catalog.Assignments, stats.RecentAssignments)

	t.Run("empty", func(t *testing.T) {
		stats := dashboard.Overview(nil, nil)
		assert.Equal(t, dashboard.Stats{RecentAssignments: []course.Assignment{}}, stats)
	})

	t.Run("recent are the first 5", func(t *testing.T) {
		var many []course.Assignment
		for i := 0; i < 8; i++ {
			many = append(many, catalog.Assignments...)
		}
		stats := dashboard.Overview(catalog.Courses[:3], many)
		assert.Equal(t, many[:5], stats.RecentAssignments)
		assert.Equal(t, 16, stats.PendingAssignmentCount)
		assert.Equal(t, 78, stats.AverageProgress) // (78+65+92)/3 = 78.33
	})
}

func TestFormatNextClass(t *testing.T) {
	now := testutil.Today // 09:00
	tests := []struct {
		next time.Time
		want string
	}{
		{next: now.Add(-2 * time.Hour), want: "Today"},
		{next: now.Add(3 * time.Hour), want: "Tomorrow"}, // fractional days round up
		{next: now.Add(24 * time.Hour), want: "Tomorrow"},
		{next: now.AddDate(0, 0, 2), want: "2 days"},
		{next: now.Add(50 * time.Hour), want: "3 days"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, dashboard.FormatNextClass(tt.next, now))
		})
	}
	assert.Equal(t, "Jan 20", dashboard.FormatShortDate(now))
}

func TestRoleDisplayName(t *testing.T) {
	assert.Equal(t, "Administrator", dashboard.RoleDisplayName(user.RoleAdministrator))
	assert.Equal(t, "Guest", dashboard.RoleDisplayName(""))
}

func TestGradeClass(t *testing.T) {
	for grade, want := range map[int]string{100: "excellent", 90: "excellent", 89: "good", 80: "good", 79: "average", 0: "average"} {
		assert.Equal(t, want, dashboard.GradeClass(grade), grade)
	}
	assert.Equal(t, "upload", dashboard.ActivityIcon("submission"))
	assert.Equal(t, "info", dashboard.ActivityIcon("party"))
}
