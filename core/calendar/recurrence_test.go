package calendar

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prachishaw/ClassCapsule/tests"
)

func TestExpand(t *testing.T) {
	lecture := SampleEvents(testutil.Today)[0] // Tue Jan 21, 10:00 AM
	far := testutil.Date(2025, time.December, 31)

	tests := []struct {
		name      string
		rule      string
		from, to  time.Time
		wantDates []time.Time
	}{
		{
			name:      "weekly count",
			rule:      "FREQ=WEEKLY;COUNT=3",
			from:      testutil.Today,
			to:        far,
			wantDates: []time.Time{testutil.Date(2025, 1, 21), testutil.Date(2025, 1, 28), testutil.Date(2025, 2, 4)},
		},
		{
			name:      "two days a week within window",
			rule:      "FREQ=WEEKLY;BYDAY=TU,TH",
			from:      testutil.Today,
			to:        testutil.Date(2025, 1, 31),
			wantDates: []time.Time{testutil.Date(2025, 1, 21), testutil.Date(2025, 1, 23), testutil.Date(2025, 1, 28), testutil.Date(2025, 1, 30)},
		},
		{
			name:      "window before series",
			rule:      "FREQ=DAILY;COUNT=5",
			from:      testutil.Date(2024, 1, 1),
			to:        testutil.Date(2024, 12, 31),
			wantDates: []time.Time{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(lecture, tt.rule, tt.from, tt.to)
			require.NoError(t, err)

			dates := make([]time.Time, 0, len(got))
			for i, occ := range got {
				dates = append(dates, occ.Date)
				assert.Equal(t, fmt.Sprintf("1-%d", i+1), occ.ID)
				assert.Equal(t, lecture.Title, occ.Title)
				assert.Equal(t, lecture.Time, occ.Time)
				assert.Equal(t, lecture.Duration, occ.Duration)
			}
			assert.Equal(t, tt.wantDates, dates)
		})
	}
}

func TestExpand_InvalidRule(t *testing.T) {
	_, err := Expand(SampleEvents(testutil.Today)[0], "FREQ=SOMETIMES", testutil.Today, testutil.Date(2025, 12, 31))
	assert.Error(t, err)
}

func TestRepeatClasses(t *testing.T) {
	events := SampleEvents(testutil.Today)

	t.Run("empty rule", func(t *testing.T) {
		got, err := RepeatClasses(events, "", testutil.Today)
		require.NoError(t, err)
		assert.Equal(t, events, got)
	})

	t.Run("weekly count", func(t *testing.T) {
		got, err := RepeatClasses(events, "FREQ=WEEKLY;COUNT=2", testutil.Today)
		require.NoError(t, err)
		assert.Equal(t, []string{"1-1", "2-1", "3", "4", "5", "1-2", "2-2"}, ids(got))
		assert.Equal(t, testutil.Date(2025, time.January, 28), got[5].Date)
		assert.Equal(t, testutil.Date(2025, time.January, 29), got[6].Date)
	})

	t.Run("open rule stays in window", func(t *testing.T) {
		got, err := RepeatClasses(events, "FREQ=DAILY", testutil.Today)
		require.NoError(t, err)
		last := testutil.Today.AddDate(0, 0, SeriesWindowDays)
		classes := 0
		for _, e := range got {
			assert.False(t, e.Date.After(last), e.ID)
			if e.Category == CategoryClass {
				classes++
			}
		}
		// daily from Jan 21 and Jan 22 through Apr 19
		assert.Equal(t, 89+88, classes)
	})

	t.Run("invalid rule", func(t *testing.T) {
		_, err := RepeatClasses(events, "FREQ=SOMETIMES", testutil.Today)
		assert.Error(t, err)
	})
}
