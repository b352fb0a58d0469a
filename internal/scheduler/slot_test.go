package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlotRejectsInvalidIntervals(t *testing.T) {
	tests := map[string]struct {
		start, end TimeOfDay
	}{
		"zero length":    {start: Clock(10, 0), end: Clock(10, 0)},
		"inverted":       {start: Clock(11, 0), end: Clock(10, 0)},
		"past midnight":  {start: Clock(23, 0), end: EndOfDay + 30},
		"negative start": {start: -1, end: Clock(1, 0)},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewSlot(tt.start, tt.end)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInterval))

			var intervalErr *InvalidIntervalError
			require.ErrorAs(t, err, &intervalErr)
			assert.Equal(t, tt.start, intervalErr.Start)
		})
	}
}

func TestSlotFrom(t *testing.T) {
	slot, err := SlotFrom(Clock(9, 0), 90*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "09:00-10:30", slot.String())
	assert.Equal(t, 90*time.Minute, slot.Duration())

	_, err = SlotFrom(Clock(9, 0), 0)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = SlotFrom(Clock(23, 30), time.Hour)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestSlotOverlaps(t *testing.T) {
	slot := Slot{Start: Clock(10, 0), End: Clock(11, 0)}

	assert.True(t, slot.Overlaps(Clock(10, 30), Clock(11, 30)))
	assert.True(t, slot.Overlaps(Clock(9, 0), Clock(12, 0)))
	assert.True(t, slot.Overlaps(Clock(10, 15), Clock(10, 45)))
	assert.False(t, slot.Overlaps(Clock(11, 0), Clock(12, 0)), "touching end")
	assert.False(t, slot.Overlaps(Clock(9, 0), Clock(10, 0)), "touching start")

	assert.True(t, slot.Contains(Clock(10, 0), Clock(11, 0)))
	assert.False(t, slot.Contains(Clock(9, 59), Clock(10, 30)))
}

func TestWorkingHours(t *testing.T) {
	assert.Equal(t, "09:00-17:00", DefaultWorkingHours.String())

	_, err := NewWorkingHours(Clock(17, 0), Clock(9, 0))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	start, end, ok := DefaultWorkingHours.clamp(Clock(8, 0), Clock(10, 0))
	require.True(t, ok)
	assert.Equal(t, Clock(9, 0), start)
	assert.Equal(t, Clock(10, 0), end)

	_, _, ok = DefaultWorkingHours.clamp(Clock(17, 0), Clock(18, 0))
	assert.False(t, ok)
}

func TestSlotStrings(t *testing.T) {
	assert.Nil(t, SlotStrings(nil))
	assert.Equal(t, []string{"09:00-10:00", "13:00-17:00"}, SlotStrings([]Slot{
		{Start: Clock(9, 0), End: Clock(10, 0)},
		{Start: Clock(13, 0), End: Clock(17, 0)},
	}))
}
