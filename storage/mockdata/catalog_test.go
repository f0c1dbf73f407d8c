package mockdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog(t *testing.T) {
	c := Catalog()
	assert.Len(t, c.Courses, 4)
	assert.Len(t, c.Assignments, 4)
	assert.Len(t, c.Students, 3)
	assert.Nil(t, c.Courses[3].NextClass)

	courseIDs := make(map[string]bool, len(c.Courses))
	for _, crs := range c.Courses {
		courseIDs[crs.ID] = true
	}
	for _, a := range c.Assignments {
		assert.True(t, courseIDs[a.CourseID], "assignment %s references unknown course %s", a.ID, a.CourseID)
	}

	// every call returns fresh slices
	c.Courses[0].Title = "changed"
	assert.Equal(t, "Advanced Mathematics", Catalog().Courses[0].Title)
}

func TestReport(t *testing.T) {
	r := Report()
	assert.Equal(t, 156, r.Totals.TotalStudents)
	assert.Len(t, r.CourseProgress, 4)
	assert.Len(t, r.RecentActivity, 4)
	if assert.Len(t, r.TopStudents, 4) {
		for i := 1; i < len(r.TopStudents); i++ {
			assert.Greater(t, r.TopStudents[i-1].Grade, r.TopStudents[i].Grade, "ranked by grade")
		}
	}
}
