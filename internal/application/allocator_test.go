package application

import (
	"errors"
	"testing"
	"time"

	"github.com/example/meeting-planner/internal/catalog"
	"github.com/example/meeting-planner/internal/scheduler"
)

func TestAllocator_FindRoom(t *testing.T) {
	t.Parallel()

	ten := scheduler.Clock(10, 0)

	t.Run("picks the smallest room that fits", func(t *testing.T) {
		allocator := NewAllocator(newTestCatalog(t))
		ref, found, err := allocator.FindRoom("luminis", monday, ten, time.Hour, 4)
		if err != nil {
			t.Fatalf("FindRoom returned error: %v", err)
		}
		if !found || ref != (catalog.RoomRef{LocationID: "luminis", RoomID: "room-a"}) {
			t.Fatalf("expected room-a, got %v (found=%v)", ref, found)
		}

		ref, _, _ = allocator.FindRoom("luminis", monday, ten, time.Hour, 5)
		if ref.RoomID != "room-b" {
			t.Fatalf("expected room-b for five people, got %s", ref.RoomID)
		}
	})

	t.Run("skips rooms that are booked", func(t *testing.T) {
		c := newTestCatalog(t)
		room, _ := c.Room("luminis", "room-a")
		book(t, room.Calendar(), monday, scheduler.Clock(9, 30), scheduler.Clock(10, 30))

		ref, found, err := NewAllocator(c).FindRoom("luminis", monday, ten, time.Hour, 4)
		if err != nil || !found {
			t.Fatalf("expected a room, got found=%v err=%v", found, err)
		}
		if ref.RoomID != "room-b" {
			t.Fatalf("expected room-b when room-a is busy, got %s", ref.RoomID)
		}
	})

	t.Run("boundary touching booking does not block", func(t *testing.T) {
		c := newTestCatalog(t)
		room, _ := c.Room("luminis", "room-a")
		book(t, room.Calendar(), monday, scheduler.Clock(9, 0), ten)

		ref, _, _ := NewAllocator(c).FindRoom("luminis", monday, ten, time.Hour, 4)
		if ref.RoomID != "room-a" {
			t.Fatalf("expected room-a, got %s", ref.RoomID)
		}
	})

	t.Run("ties are broken by room id", func(t *testing.T) {
		ref, found, err := NewAllocator(newTestCatalog(t)).FindRoom("harbor", monday, ten, time.Hour, 7)
		if err != nil || !found {
			t.Fatalf("expected a room, got found=%v err=%v", found, err)
		}
		if ref.RoomID != "cabin" {
			t.Fatalf("expected cabin before pier, got %s", ref.RoomID)
		}
	})

	t.Run("no room large enough is not an error", func(t *testing.T) {
		_, found, err := NewAllocator(newTestCatalog(t)).FindRoom("luminis", monday, ten, time.Hour, 13)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if found {
			t.Fatalf("expected no room")
		}
	})

	t.Run("unknown location", func(t *testing.T) {
		_, _, err := NewAllocator(newTestCatalog(t)).FindRoom("moon", monday, ten, time.Hour, 2)
		var locErr *UnknownLocationError
		if !errors.As(err, &locErr) || locErr.LocationID != "moon" {
			t.Fatalf("expected UnknownLocationError, got %v", err)
		}
	})

	t.Run("invalid duration", func(t *testing.T) {
		_, _, err := NewAllocator(newTestCatalog(t)).FindRoom("luminis", monday, ten, 0, 2)
		if !errors.Is(err, scheduler.ErrInvalidInterval) {
			t.Fatalf("expected ErrInvalidInterval, got %v", err)
		}
	})

	t.Run("nil allocator", func(t *testing.T) {
		var allocator *Allocator
		if _, _, err := allocator.FindRoom("luminis", monday, ten, time.Hour, 2); err == nil {
			t.Fatalf("expected error from nil allocator")
		}
	})
}
