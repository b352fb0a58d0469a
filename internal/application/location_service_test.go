package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/meeting-planner/internal/scheduler"
)

func TestLocationService_AllLocations(t *testing.T) {
	t.Parallel()

	svc := NewLocationService(newTestCatalog(t), nil)
	locations := svc.AllLocations(context.Background())
	if len(locations) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(locations))
	}
	if locations[0].ID != "harbor" || locations[1].ID != "luminis" {
		t.Fatalf("expected locations ordered by id, got %s, %s", locations[0].ID, locations[1].ID)
	}
	rooms := locations[1].Rooms
	if len(rooms) != 3 || rooms[0] != (RoomSummary{ID: "room-a", Capacity: 4}) {
		t.Fatalf("unexpected rooms %+v", rooms)
	}
}

func TestLocationService_FindRoom(t *testing.T) {
	t.Parallel()

	t.Run("returns the best fit", func(t *testing.T) {
		recorder := &recorderStub{}
		svc := NewLocationService(newTestCatalog(t), recorder)

		result, err := svc.FindRoom(context.Background(), RoomSearchRequest{
			LocationID:   "luminis",
			Participants: 6,
			Day:          monday,
			Start:        scheduler.Clock(14, 0),
			Duration:     45 * time.Minute,
		})
		if err != nil {
			t.Fatalf("FindRoom returned error: %v", err)
		}
		if !result.Available || result.RoomID != "room-b" {
			t.Fatalf("expected room-b, got %+v", result)
		}
		if result.Start == nil || *result.Start != scheduler.Clock(14, 0) || result.DurationMinutes != 45 || result.Day != monday {
			t.Fatalf("expected request echo, got %+v", result)
		}
		if len(recorder.searches) != 1 || !recorder.searches[0] {
			t.Fatalf("expected a successful search to be recorded, got %v", recorder.searches)
		}
	})

	t.Run("no room leaves only the location", func(t *testing.T) {
		recorder := &recorderStub{}
		svc := NewLocationService(newTestCatalog(t), recorder)
		result, err := svc.FindRoom(context.Background(), RoomSearchRequest{
			LocationID: "luminis", Participants: 40, Day: monday, Start: scheduler.Clock(9, 0), Duration: time.Hour,
		})
		if err != nil {
			t.Fatalf("FindRoom returned error: %v", err)
		}
		if result.Available || result.RoomID != "" || result.Start != nil || result.LocationID != "luminis" {
			t.Fatalf("expected empty negative result, got %+v", result)
		}
		if len(recorder.searches) != 1 || recorder.searches[0] {
			t.Fatalf("expected a miss to be recorded, got %v", recorder.searches)
		}
	})

	t.Run("validates participants", func(t *testing.T) {
		svc := NewLocationService(newTestCatalog(t), nil)
		_, err := svc.FindRoom(context.Background(), RoomSearchRequest{LocationID: "luminis", Day: monday, Duration: time.Hour})
		var vErr *ValidationError
		if !errors.As(err, &vErr) || vErr.FieldErrors["participants"] == "" {
			t.Fatalf("expected participants validation error, got %v", err)
		}
	})

	t.Run("unknown location", func(t *testing.T) {
		svc := NewLocationService(newTestCatalog(t), nil)
		_, err := svc.FindRoom(context.Background(), RoomSearchRequest{
			LocationID: "moon", Participants: 2, Day: monday, Start: scheduler.Clock(9, 0), Duration: time.Hour,
		})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}

func TestLocationService_BookRoomRecordsStatus(t *testing.T) {
	t.Parallel()

	recorder := &recorderStub{}
	svc := NewLocationService(newTestCatalog(t), recorder)
	ctx := context.Background()

	if _, err := svc.BookRoom(ctx, roomRequest("room-a")); err != nil {
		t.Fatalf("BookRoom returned error: %v", err)
	}
	if _, err := svc.BookRoom(ctx, roomRequest("room-a")); err != nil {
		t.Fatalf("BookRoom returned error: %v", err)
	}
	if _, err := svc.BookRoom(ctx, roomRequest("attic")); err != nil {
		t.Fatalf("BookRoom returned error: %v", err)
	}

	want := []string{"confirmed", "rejected_no_capacity", "rejected_unknown_room"}
	if len(recorder.bookings) != len(want) {
		t.Fatalf("expected %v, got %v", want, recorder.bookings)
	}
	for i := range want {
		if recorder.bookings[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, recorder.bookings)
		}
	}

	var svcNil *LocationService
	if _, err := svcNil.BookRoom(ctx, roomRequest("room-a")); err == nil {
		t.Fatalf("expected error from nil service")
	}
}

func TestLocationService_ListBookings(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)
	roomA, _ := c.Room("luminis", "room-a")
	roomB, _ := c.Room("luminis", "room-b")
	dock, _ := c.Room("harbor", "dock")
	book(t, roomA.Calendar(), monday.AddDays(1), scheduler.Clock(9, 0), scheduler.Clock(10, 0))
	book(t, roomB.Calendar(), monday, scheduler.Clock(11, 0), scheduler.Clock(12, 0))
	book(t, dock.Calendar(), monday, scheduler.Clock(11, 0), scheduler.Clock(12, 0))
	book(t, roomA.Calendar(), monday.AddDays(14), scheduler.Clock(9, 0), scheduler.Clock(10, 0))

	svc := NewLocationService(c, nil)
	ctx := context.Background()

	all, err := svc.ListBookings(ctx, BookingFilter{})
	if err != nil {
		t.Fatalf("ListBookings returned error: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 bookings, got %d", len(all))
	}
	order := []string{"harbor/dock", "luminis/room-b", "luminis/room-a", "luminis/room-a"}
	for i, b := range all {
		if got := b.LocationID + "/" + b.RoomID; got != order[i] {
			t.Fatalf("position %d: expected %s, got %s", i, order[i], got)
		}
	}
	if all[0].LocationName != "Harbor" {
		t.Fatalf("expected location name, got %q", all[0].LocationName)
	}

	from, to := WeekOf(monday.AddDays(3))
	week, err := svc.ListBookings(ctx, BookingFilter{LocationID: "luminis", From: from, To: to})
	if err != nil {
		t.Fatalf("ListBookings returned error: %v", err)
	}
	if len(week) != 2 {
		t.Fatalf("expected 2 luminis bookings this week, got %d", len(week))
	}

	if _, err := svc.ListBookings(ctx, BookingFilter{LocationID: "moon"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found for unknown location, got %v", err)
	}

	_, err = svc.ListBookings(ctx, BookingFilter{From: monday, To: monday.AddDays(-1)})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error for inverted range, got %v", err)
	}

	empty, err := svc.ListBookings(ctx, BookingFilter{From: monday.AddDays(100)})
	if err != nil || empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil list, got %v err=%v", empty, err)
	}
}

func TestLocationService_BookingStats(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)
	roomA, _ := c.Room("luminis", "room-a")
	book(t, roomA.Calendar(), monday, scheduler.Clock(9, 0), scheduler.Clock(10, 0))
	book(t, roomA.Calendar(), monday, scheduler.Clock(13, 0), scheduler.Clock(14, 0))

	stats := NewLocationService(c, nil).BookingStats(context.Background())
	if stats.TotalBookings != 2 || stats.TotalRooms != 6 {
		t.Fatalf("unexpected totals %+v", stats)
	}
	if len(stats.Locations) != 2 {
		t.Fatalf("expected stats per location, got %d", len(stats.Locations))
	}
	luminis := stats.Locations[1]
	if luminis.LocationID != "luminis" || luminis.TotalBookings != 2 || luminis.TotalRooms != 3 || luminis.Description != "Business rooms" {
		t.Fatalf("unexpected luminis stats %+v", luminis)
	}
	if stats.Locations[0].TotalBookings != 0 {
		t.Fatalf("expected no harbor bookings")
	}
}

func TestLocationService_NilService(t *testing.T) {
	t.Parallel()

	var svc *LocationService
	ctx := context.Background()

	if got := svc.AllLocations(ctx); got != nil {
		t.Fatalf("expected no locations from nil service, got %v", got)
	}
	if got := svc.BookingStats(ctx); got.TotalRooms != 0 || len(got.Locations) != 0 {
		t.Fatalf("expected empty stats from nil service, got %+v", got)
	}
	if _, err := svc.ListBookings(ctx, BookingFilter{}); err == nil {
		t.Fatalf("expected error from nil service")
	}
	if _, err := svc.FindRoom(ctx, RoomSearchRequest{Participants: 1}); err == nil {
		t.Fatalf("expected error from nil service")
	}
	if _, err := svc.BookRoom(ctx, BookRoomRequest{}); err == nil {
		t.Fatalf("expected error from nil service")
	}
}

func TestWeekAndMonthBounds(t *testing.T) {
	t.Parallel()

	sunday := monday.AddDays(6)
	from, to := WeekOf(sunday)
	if from != monday || to != sunday {
		t.Fatalf("expected %s..%s, got %s..%s", monday, sunday, from, to)
	}

	from, to = MonthOf(scheduler.NewDate(2024, time.February, 10))
	if from != scheduler.NewDate(2024, time.February, 1) || to != scheduler.NewDate(2024, time.February, 29) {
		t.Fatalf("unexpected February bounds %s..%s", from, to)
	}
	_, to = MonthOf(scheduler.NewDate(2024, time.December, 31))
	if to != scheduler.NewDate(2024, time.December, 31) {
		t.Fatalf("unexpected December end %s", to)
	}
}
