package application

import (
	"errors"
	"testing"

	"github.com/example/meeting-planner/internal/catalog"
	"github.com/example/meeting-planner/internal/scheduler"
)

func partyOf(t *testing.T, emails ...string) []*catalog.Person {
	t.Helper()
	registry := newTestRegistry(t, emails...)
	persons := make([]*catalog.Person, len(emails))
	for i, email := range emails {
		persons[i], _ = registry.FindByEmail(email)
	}
	return persons
}

func TestCheckAvailabilityFor(t *testing.T) {
	t.Parallel()

	persons := partyOf(t, "ann@example.com", "bob@example.com", "cat@example.com")
	book(t, persons[0].Calendar(), monday, scheduler.Clock(10, 0), scheduler.Clock(11, 0))
	book(t, persons[2].Calendar(), monday, scheduler.Clock(10, 30), scheduler.Clock(12, 0))

	got := CheckAvailabilityFor(persons, monday, scheduler.Clock(10, 0), scheduler.Clock(11, 0))
	if len(got) != 3 {
		t.Fatalf("expected every member to be evaluated, got %d", len(got))
	}
	want := []bool{false, true, false}
	for i, entry := range got {
		if entry.Email != persons[i].Email() {
			t.Fatalf("expected input order, got %s at %d", entry.Email, i)
		}
		if entry.Available != want[i] {
			t.Fatalf("%s: expected available=%v", entry.Email, want[i])
		}
	}
	if len(got[0].Conflicts) != 1 || got[0].Conflicts[0].Title != "busy" {
		t.Fatalf("expected conflict details, got %+v", got[0].Conflicts)
	}
	if got[1].Conflicts != nil {
		t.Fatalf("expected no conflicts for bob")
	}
}

func TestBookMeetingForAll(t *testing.T) {
	t.Parallel()

	persons := partyOf(t, "ann@example.com", "bob@example.com")
	book(t, persons[0].Calendar(), monday, scheduler.Clock(10, 0), scheduler.Clock(11, 0))

	confirmations, err := BookMeetingForAll(persons, monday, scheduler.Clock(10, 0), scheduler.Clock(11, 0), "Planning")
	if err != nil {
		t.Fatalf("BookMeetingForAll returned error: %v", err)
	}
	want := []string{
		"Meeting booked for ann on 2024-03-18 from 10:00 to 11:00 titled 'Planning'",
		"Meeting booked for bob on 2024-03-18 from 10:00 to 11:00 titled 'Planning'",
	}
	if len(confirmations) != len(want) {
		t.Fatalf("expected one confirmation per person, got %v", confirmations)
	}
	for i := range want {
		if confirmations[i] != want[i] {
			t.Fatalf("expected %q, got %q", want[i], confirmations[i])
		}
	}
	if n := persons[0].Calendar().Len(); n != 2 {
		t.Fatalf("expected double booking to be recorded, got %d items", n)
	}
}

func TestBookMeetingForAllValidatesBeforeBooking(t *testing.T) {
	t.Parallel()

	persons := partyOf(t, "ann@example.com", "bob@example.com")
	_, err := BookMeetingForAll(persons, monday, scheduler.Clock(11, 0), scheduler.Clock(10, 0), "Backwards")
	if !errors.Is(err, scheduler.ErrInvalidInterval) {
		t.Fatalf("expected ErrInvalidInterval, got %v", err)
	}
	for _, p := range persons {
		if p.Calendar().Len() != 0 {
			t.Fatalf("expected nobody to be booked")
		}
	}
}

func TestAvailabilityForDay(t *testing.T) {
	t.Parallel()

	persons := partyOf(t, "ann@example.com", "bob@example.com")
	book(t, persons[0].Calendar(), monday, scheduler.Clock(10, 0), scheduler.Clock(11, 0))
	book(t, persons[1].Calendar(), monday, scheduler.Clock(9, 0), scheduler.Clock(17, 0))

	got := AvailabilityForDay(persons, monday)
	if slots := scheduler.SlotStrings(got[0].Slots); len(slots) != 2 || slots[0] != "09:00-10:00" || slots[1] != "11:00-17:00" {
		t.Fatalf("unexpected slots for ann: %v", slots)
	}
	if got[1].Slots == nil || len(got[1].Slots) != 0 {
		t.Fatalf("expected empty non-nil slots for a fully booked day, got %v", got[1].Slots)
	}
}
