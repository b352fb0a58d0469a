package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectConflicts(t *testing.T) {
	items := []AgendaItem{
		{ID: "b", Day: testDay, Start: Clock(13, 0), End: Clock(14, 0), Title: "lunch review"},
		{ID: "a", Day: testDay, Start: Clock(10, 0), End: Clock(12, 0), Title: "planning"},
		{ID: "c", Day: testDay, Start: Clock(12, 0), End: Clock(13, 0), Title: "lunch"},
		{ID: "d", Day: testDay.AddDays(1), Start: Clock(11, 0), End: Clock(12, 0), Title: "tomorrow"},
	}

	conflicts := DetectConflicts(items, testDay, Clock(11, 0), Clock(13, 30))
	require.Len(t, conflicts, 3)

	assert.Equal(t, "a", conflicts[0].With.ID)
	assert.Equal(t, "11:00-12:00", conflicts[0].Overlap.String())
	assert.Equal(t, "c", conflicts[1].With.ID)
	assert.Equal(t, "12:00-13:00", conflicts[1].Overlap.String())
	assert.Equal(t, "b", conflicts[2].With.ID)
	assert.Equal(t, "13:00-13:30", conflicts[2].Overlap.String())
}

func TestDetectConflictsIgnoresTouchingItems(t *testing.T) {
	items := []AgendaItem{
		{ID: "a", Day: testDay, Start: Clock(9, 0), End: Clock(10, 0)},
		{ID: "b", Day: testDay, Start: Clock(11, 0), End: Clock(12, 0)},
	}
	assert.Empty(t, DetectConflicts(items, testDay, Clock(10, 0), Clock(11, 0)))
}

func TestCalendarConflicts(t *testing.T) {
	cal := newTestCalendar(t)
	item := mustBook(t, cal, testDay, Clock(10, 0), Clock(11, 0), "standup")

	conflicts := cal.Conflicts(testDay, Clock(10, 30), Clock(12, 0))
	require.Len(t, conflicts, 1)
	assert.Equal(t, item, conflicts[0].With)
	assert.Empty(t, cal.Conflicts(testDay, Clock(11, 0), Clock(12, 0)))
}
