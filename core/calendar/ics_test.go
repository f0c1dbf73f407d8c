package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prachishaw/ClassCapsule/tests"
)

func TestExportICS(t *testing.T) {
	feed, err := ExportICS(SampleEvents(testutil.Today), testutil.Today)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(feed, "BEGIN:VCALENDAR"))
	assert.Contains(t, feed, "PRODID:"+icsProductID)
	assert.Equal(t, 5, strings.Count(feed, "BEGIN:VEVENT"))
	assert.Contains(t, feed, "UID:1@classcapsule")
	assert.Contains(t, feed, "SUMMARY:Advanced Mathematics")
	assert.Contains(t, feed, "DTSTART:20250121T100000Z")
	assert.Contains(t, feed, "DTEND:20250121T113000Z")
	assert.Contains(t, feed, "CATEGORIES:exam")
	assert.Contains(t, feed, "COLOR:#EF4444")
	assert.Contains(t, feed, "X-CLASSCAPSULE-COURSE:2")
}

func TestICSRoundTrip(t *testing.T) {
	events := append(SampleEvents(testutil.Today), Event{
		ID:       "6",
		Title:    "Campus Open Day",
		Date:     testutil.Date(2025, time.January, 31),
		Time:     AllDay,
		Category: CategoryMeeting,
	})

	feed, err := ExportICS(events, testutil.Today)
	require.NoError(t, err)

	got, err := ImportICS(strings.NewReader(feed), time.UTC)
	require.NoError(t, err)
	assert.Equal(t, events, got)
}

func TestImportICS(t *testing.T) {
	feed := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Example//EN",
		"BEGIN:VEVENT",
		"UID:abc",
		"SUMMARY:Office Hours",
		"DTSTAMP:20250101T000000Z",
		"DTSTART:20250122T150000Z",
		"DTEND:20250122T154500Z",
		"CATEGORIES:Party",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:def",
		"SUMMARY:Holiday",
		"DTSTAMP:20250101T000000Z",
		"DTSTART;VALUE=DATE:20250127",
		"CATEGORIES:EXAM",
		"END:VEVENT",
		"END:VCALENDAR",
	}, "\r\n") + "\r\n"

	got, err := ImportICS(strings.NewReader(feed), time.UTC)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, Event{
		ID:       "abc",
		Title:    "Office Hours",
		Date:     testutil.Date(2025, time.January, 22),
		Time:     "3:00 PM",
		Duration: 45,
		Category: CategoryMeeting,
	}, got[0])
	assert.Equal(t, Event{
		ID:       "def",
		Title:    "Holiday",
		Date:     testutil.Date(2025, time.January, 27),
		Time:     AllDay,
		Category: CategoryExam,
	}, got[1])
}

func TestImportICS_Invalid(t *testing.T) {
	_, err := ImportICS(strings.NewReader("not a calendar"), time.UTC)
	assert.Error(t, err)
}
