package application

import (
	"errors"
	"fmt"

	"github.com/example/meeting-planner/internal/catalog"
	"github.com/example/meeting-planner/internal/scheduler"
)

const (
	msgUnknownLocation = "You requested an unknown location"
	msgUnknownRoom     = "You requested an unknown room"
	msgNoCapacity      = "No capacity at the requested time"
)

// BookingCoordinator books rooms with the Enforced policy: the availability
// check and the write happen under the room calendar's lock.
type BookingCoordinator struct {
	catalog *catalog.Catalog
	policy  scheduler.BookingPolicy
}

// NewBookingCoordinator returns a coordinator over c.
func NewBookingCoordinator(c *catalog.Catalog) *BookingCoordinator {
	return &BookingCoordinator{catalog: c, policy: scheduler.Enforced}
}

// BookRoom moves a request from BookingRequested to one terminal state.
// Unknown ids and taken slots end in a rejected result; the returned error is
// reserved for malformed requests.
func (b *BookingCoordinator) BookRoom(req BookRoomRequest) (BookingResult, error) {
	result := BookingResult{
		LocationID: req.LocationID,
		RoomID:     req.RoomID,
		Status:     BookingRequested,
	}
	if b == nil || b.catalog == nil {
		return result, errors.New("booking coordinator is not configured")
	}
	slot, err := scheduler.SlotFrom(req.Start, req.Duration)
	if err != nil {
		return result, err
	}

	loc, ok := b.catalog.Location(req.LocationID)
	if !ok {
		return result.reject(BookingRejectedUnknownLocation, msgUnknownLocation,
			&UnknownLocationError{LocationID: req.LocationID}), nil
	}
	room, ok := loc.Room(req.RoomID)
	if !ok {
		return result.reject(BookingRejectedUnknownRoom, msgUnknownRoom,
			&UnknownRoomError{LocationID: req.LocationID, RoomID: req.RoomID}), nil
	}

	item, booked, err := b.policy.Book(room.Calendar(), req.Day, slot.Start, slot.End, bookingTitle(req))
	if err != nil {
		return result, err
	}
	if !booked {
		return result.reject(BookingRejectedNoCapacity, msgNoCapacity, nil), nil
	}

	result.Success = true
	result.Status = BookingConfirmed
	result.Message = fmt.Sprintf("Booking confirmed for %s", req.Reference)
	result.Booking = &item
	return result, nil
}

func (r BookingResult) reject(status BookingStatus, message string, reason error) BookingResult {
	r.Success = false
	r.Status = status
	r.Message = message
	r.Reason = reason
	return r
}

func bookingTitle(req BookRoomRequest) string {
	return fmt.Sprintf("Reference %s - Description %s", req.Reference, req.Description)
}
