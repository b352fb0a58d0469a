package application

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/example/meeting-planner/internal/catalog"
	"github.com/example/meeting-planner/internal/scheduler"
)

var monday = scheduler.NewDate(2024, time.March, 18)

func newTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.LocationSpec{
		{
			ID: "luminis", Name: "Luminis", Description: "Business rooms",
			Rooms: []catalog.RoomSpec{{ID: "room-c", Capacity: 12}, {ID: "room-a", Capacity: 4}, {ID: "room-b", Capacity: 8}},
		},
		{
			ID: "harbor", Name: "Harbor", Description: "Water views",
			Rooms: []catalog.RoomSpec{{ID: "pier", Capacity: 8}, {ID: "cabin", Capacity: 8}, {ID: "dock", Capacity: 6}},
		},
	}, catalog.WithCalendarOptions(scheduler.WithIDGenerator(sequence("booking"))))
	if err != nil {
		t.Fatalf("catalog.New returned error: %v", err)
	}
	return c
}

func newTestRegistry(t *testing.T, people ...string) *catalog.PersonRegistry {
	t.Helper()
	registry := catalog.NewPersonRegistry()
	for _, email := range people {
		p, err := catalog.NewPerson(email, nameOf(email), scheduler.WithIDGenerator(sequence(email)))
		if err != nil {
			t.Fatalf("NewPerson(%q) returned error: %v", email, err)
		}
		registry.AddPerson(p)
	}
	return registry
}

func nameOf(email string) string {
	for i, r := range email {
		if r == '@' {
			return email[:i]
		}
	}
	return email
}

func sequence(prefix string) func() string {
	var (
		mu sync.Mutex
		n  int
	)
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func book(t *testing.T, cal *scheduler.Calendar, day scheduler.Date, start, end scheduler.TimeOfDay) {
	t.Helper()
	if _, err := cal.BookMeeting(day, start, end, "busy"); err != nil {
		t.Fatalf("BookMeeting returned error: %v", err)
	}
}

type recorderStub struct {
	mu            sync.Mutex
	searches      []bool
	bookings      []string
	partyBookings []int
	slotQueries   []bool
}

func (r *recorderStub) RecordRoomSearch(_ context.Context, found bool) {
	r.mu.Lock()
	r.searches = append(r.searches, found)
	r.mu.Unlock()
}

func (r *recorderStub) RecordRoomBooking(_ context.Context, status string) {
	r.mu.Lock()
	r.bookings = append(r.bookings, status)
	r.mu.Unlock()
}

func (r *recorderStub) RecordPartyBooking(_ context.Context, participants int) {
	r.mu.Lock()
	r.partyBookings = append(r.partyBookings, participants)
	r.mu.Unlock()
}

func (r *recorderStub) RecordCommonSlotQuery(_ context.Context, cacheHit bool) {
	r.mu.Lock()
	r.slotQueries = append(r.slotQueries, cacheHit)
	r.mu.Unlock()
}
