package application

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/example/meeting-planner/internal/catalog"
	"github.com/example/meeting-planner/internal/scheduler"
)

// LocationService exposes the room catalog: listing, best-fit search,
// booking and booking reports.
type LocationService struct {
	catalog     *catalog.Catalog
	allocator   *Allocator
	coordinator *BookingCoordinator
	recorder    Recorder
	logger      *slog.Logger
}

// NewLocationService constructs a location service over c.
func NewLocationService(c *catalog.Catalog, recorder Recorder) *LocationService {
	return NewLocationServiceWithLogger(c, recorder, nil)
}

// NewLocationServiceWithLogger constructs a location service with a specified logger.
func NewLocationServiceWithLogger(c *catalog.Catalog, recorder Recorder, logger *slog.Logger) *LocationService {
	return &LocationService{
		catalog:     c,
		allocator:   NewAllocator(c),
		coordinator: NewBookingCoordinator(c),
		recorder:    defaultRecorder(recorder),
		logger:      defaultLogger(logger),
	}
}

func (s *LocationService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "LocationService", operation, attrs...)
}

// AllLocations lists every location with its rooms, ordered by id.
func (s *LocationService) AllLocations(ctx context.Context) []LocationSummary {
	if s == nil {
		return nil
	}
	locations := s.catalog.AllLocations()
	out := make([]LocationSummary, len(locations))
	for i, loc := range locations {
		out[i] = summarizeLocation(loc)
	}
	s.loggerWith(ctx, "AllLocations").DebugContext(ctx, "listed locations", "count", len(out))
	return out
}

// FindRoom searches req.LocationID for the best-fit room seating
// req.Participants. A search without a match is not an error.
func (s *LocationService) FindRoom(ctx context.Context, req RoomSearchRequest) (result RoomAvailabilityResult, err error) {
	if s == nil {
		err = fmt.Errorf("LocationService is nil")
		return
	}

	logger := s.loggerWith(ctx, "FindRoom",
		"location_id", req.LocationID,
		"participants", req.Participants,
		"date", req.Day.String(),
		"start", req.Start.String(),
	)
	defer func() {
		if err != nil {
			logger.WarnContext(ctx, "room search failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		s.recorder.RecordRoomSearch(ctx, result.Available)
		logger.InfoContext(ctx, "room search completed", "available", result.Available, "room_id", result.RoomID)
	}()

	if req.Participants <= 0 {
		vErr := &ValidationError{}
		vErr.add("participants", "must be at least 1")
		err = vErr
		return
	}

	result.LocationID = req.LocationID
	ref, found, err := s.allocator.FindRoom(req.LocationID, req.Day, req.Start, req.Duration, req.Participants)
	if err != nil || !found {
		return
	}
	start := req.Start
	result.Available = true
	result.RoomID = ref.RoomID
	result.Day = req.Day
	result.Start = &start
	result.DurationMinutes = int(req.Duration / time.Minute)
	return
}

// BookRoom books a specific room. Rejections are returned in the result.
func (s *LocationService) BookRoom(ctx context.Context, req BookRoomRequest) (result BookingResult, err error) {
	if s == nil {
		err = fmt.Errorf("LocationService is nil")
		return
	}

	logger := s.loggerWith(ctx, "BookRoom",
		"location_id", req.LocationID,
		"room_id", req.RoomID,
		"date", req.Day.String(),
		"start", req.Start.String(),
		"reference", req.Reference,
	)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to book room", "error", err, "error_kind", ErrorKind(err))
			return
		}
		s.recorder.RecordRoomBooking(ctx, string(result.Status))
		if !result.Success {
			logger.InfoContext(ctx, "room booking rejected", "status", result.Status, "reason", ErrorKind(result.Reason))
			return
		}
		logger.InfoContext(ctx, "room booked", "booking_id", result.Booking.ID)
	}()

	result, err = s.coordinator.BookRoom(req)
	return
}

// ListBookings flattens the room calendars into a report ordered by day,
// start, location and room.
func (s *LocationService) ListBookings(ctx context.Context, filter BookingFilter) (bookings []BookingInfo, err error) {
	if s == nil {
		err = fmt.Errorf("LocationService is nil")
		return
	}

	logger := s.loggerWith(ctx, "ListBookings",
		"location_id", filter.LocationID,
		"from", filter.From.String(),
		"to", filter.To.String(),
	)
	defer func() {
		if err != nil {
			logger.WarnContext(ctx, "failed to list bookings", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.DebugContext(ctx, "listed bookings", "count", len(bookings))
	}()

	if !filter.From.IsZero() && !filter.To.IsZero() && filter.To.Before(filter.From) {
		vErr := &ValidationError{}
		vErr.add("to", "must not be before from")
		err = vErr
		return
	}

	locations := s.catalog.AllLocations()
	if filter.LocationID != "" {
		loc, ok := s.catalog.Location(filter.LocationID)
		if !ok {
			err = &UnknownLocationError{LocationID: filter.LocationID}
			return
		}
		locations = []*catalog.Location{loc}
	}

	bookings = []BookingInfo{}
	for _, loc := range locations {
		for _, room := range loc.Rooms() {
			for _, item := range room.Calendar().Meetings() {
				if !filter.includes(item.Day) {
					continue
				}
				bookings = append(bookings, BookingInfo{
					LocationID:   loc.ID(),
					LocationName: loc.Name(),
					RoomID:       room.ID(),
					Day:          item.Day,
					Start:        item.Start,
					End:          item.End,
					Title:        item.Title,
				})
			}
		}
	}
	slices.SortStableFunc(bookings, func(a, b BookingInfo) int {
		return cmp.Or(
			a.Day.Compare(b.Day),
			cmp.Compare(a.Start, b.Start),
			cmp.Compare(a.LocationID, b.LocationID),
			cmp.Compare(a.RoomID, b.RoomID),
		)
	})
	return
}

func (f BookingFilter) includes(day scheduler.Date) bool {
	if !f.From.IsZero() && day.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && day.After(f.To) {
		return false
	}
	return true
}

// BookingStats counts bookings and rooms per location.
func (s *LocationService) BookingStats(ctx context.Context) BookingStats {
	var stats BookingStats
	if s == nil {
		return stats
	}
	for _, loc := range s.catalog.AllLocations() {
		rooms := loc.Rooms()
		entry := LocationBookingStats{
			LocationID:   loc.ID(),
			LocationName: loc.Name(),
			Description:  loc.Description(),
			TotalRooms:   len(rooms),
		}
		for _, room := range rooms {
			entry.TotalBookings += room.Calendar().Len()
		}
		stats.Locations = append(stats.Locations, entry)
		stats.TotalBookings += entry.TotalBookings
		stats.TotalRooms += entry.TotalRooms
	}
	s.loggerWith(ctx, "BookingStats").DebugContext(ctx, "computed booking stats",
		"locations", len(stats.Locations), "bookings", stats.TotalBookings)
	return stats
}

// WeekOf returns the filter bounds of the Monday-to-Sunday week containing day.
func WeekOf(day scheduler.Date) (from, to scheduler.Date) {
	from = catalog.MondayOf(day)
	return from, from.AddDays(6)
}

// MonthOf returns the filter bounds of the month containing day.
func MonthOf(day scheduler.Date) (from, to scheduler.Date) {
	from = scheduler.NewDate(day.Year, day.Month, 1)
	return from, scheduler.NewDate(day.Year, day.Month+1, 0)
}
