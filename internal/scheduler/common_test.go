package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resource struct {
	id  string
	cal *Calendar
}

func (r resource) ResourceID() string  { return r.id }
func (r resource) Calendar() *Calendar { return r.cal }

func TestFindCommonSlots(t *testing.T) {
	free := newTestCalendar(t)
	busy := newTestCalendar(t)
	mustBook(t, busy, testDay, Clock(10, 0), Clock(11, 0), "1:1")

	got := FindCommonSlots([]*Calendar{free, busy}, testDay, 30*time.Minute)
	assert.Equal(t, []string{"09:00-10:00", "11:00-17:00"}, SlotStrings(got))
}

func TestFindCommonSlotsDropsShortWindows(t *testing.T) {
	a := newTestCalendar(t)
	mustBook(t, a, testDay, Clock(9, 20), Clock(12, 0), "")
	b := newTestCalendar(t)
	mustBook(t, b, testDay, Clock(13, 0), Clock(16, 15), "")
	c := newTestCalendar(t)
	mustBook(t, c, testDay, Clock(12, 30), Clock(12, 45), "")

	got := FindCommonSlots([]*Calendar{a, b, c}, testDay, 30*time.Minute)
	assert.Equal(t, []string{"12:00-12:30", "16:15-17:00"}, SlotStrings(got))

	got = FindCommonSlots([]*Calendar{a, b, c}, testDay, 0)
	assert.Equal(t, []string{"09:00-09:20", "12:00-12:30", "12:45-13:00", "16:15-17:00"}, SlotStrings(got))
}

func TestFindCommonSlotsNoOverlap(t *testing.T) {
	morning := newTestCalendar(t)
	mustBook(t, morning, testDay, Clock(9, 0), Clock(13, 0), "")
	afternoon := newTestCalendar(t)
	mustBook(t, afternoon, testDay, Clock(13, 0), Clock(17, 0), "")

	assert.Empty(t, FindCommonSlots([]*Calendar{morning, afternoon}, testDay, time.Minute))
}

func TestFindCommonSlotsEdgeCases(t *testing.T) {
	t.Run("no calendars", func(t *testing.T) {
		assert.Equal(t, []string{"09:00-17:00"}, SlotStrings(FindCommonSlots(nil, testDay, time.Hour)))
		assert.Empty(t, FindCommonSlots(nil, testDay, 9*time.Hour))

		long := WorkingHours{Start: Clock(8, 0), End: Clock(18, 0)}
		assert.Equal(t, []string{"08:00-18:00"}, SlotStrings(FindCommonSlotsWithin(long, nil, testDay, 9*time.Hour)))
	})

	t.Run("single calendar", func(t *testing.T) {
		cal := newTestCalendar(t)
		mustBook(t, cal, testDay, Clock(9, 15), Clock(16, 0), "")
		got := FindCommonSlots([]*Calendar{cal}, testDay, 30*time.Minute)
		assert.Equal(t, []string{"16:00-17:00"}, SlotStrings(got))
	})

	t.Run("fully booked member", func(t *testing.T) {
		full := newTestCalendar(t)
		mustBook(t, full, testDay, Clock(9, 0), Clock(17, 0), "")
		assert.Empty(t, FindCommonSlots([]*Calendar{newTestCalendar(t), full, newTestCalendar(t)}, testDay, 0))
	})
}

func TestFindCommonSlotsFor(t *testing.T) {
	a := resource{id: "a", cal: newTestCalendar(t)}
	b := resource{id: "b", cal: newTestCalendar(t)}
	mustBook(t, a.cal, testDay, Clock(9, 0), Clock(12, 0), "")
	mustBook(t, b.cal, testDay, Clock(14, 0), Clock(17, 0), "")

	got := FindCommonSlotsFor([]resource{a, b}, testDay, time.Hour)
	assert.Equal(t, []string{"12:00-14:00"}, SlotStrings(got))
}

func TestIntersectSlots(t *testing.T) {
	a := []Slot{{Clock(9, 0), Clock(11, 0)}, {Clock(12, 0), Clock(15, 0)}}
	b := []Slot{{Clock(10, 0), Clock(13, 0)}, {Clock(14, 0), Clock(17, 0)}}

	got := IntersectSlots(a, b, 0)
	assert.Equal(t, []string{"10:00-11:00", "12:00-13:00", "14:00-15:00"}, SlotStrings(got))
	assert.Equal(t, got, IntersectSlots(b, a, 0), "commutative")

	assert.Empty(t, IntersectSlots(a, nil, 0))
	assert.Empty(t, IntersectSlots(a, b, 2*time.Hour))
}

func TestBookingPolicies(t *testing.T) {
	assert.Equal(t, "enforced", Enforced.String())
	assert.Equal(t, "informative", Informative.String())
	assert.Equal(t, "unknown", BookingPolicy(9).String())

	cal := newTestCalendar(t)
	_, booked, err := Enforced.Book(cal, testDay, Clock(10, 0), Clock(11, 0), "room")
	require.NoError(t, err)
	require.True(t, booked)

	_, booked, err = Enforced.Book(cal, testDay, Clock(10, 0), Clock(11, 0), "room again")
	require.NoError(t, err)
	assert.False(t, booked)

	_, booked, err = Informative.Book(cal, testDay, Clock(10, 0), Clock(11, 0), "person")
	require.NoError(t, err)
	assert.True(t, booked)
	assert.Equal(t, 2, cal.Len())

	_, _, err = Informative.Book(cal, testDay, Clock(11, 0), Clock(10, 0), "bad")
	assert.ErrorIs(t, err, ErrInvalidInterval)
}
