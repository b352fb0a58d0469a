package application

import (
	"time"

	"github.com/example/meeting-planner/internal/catalog"
	"github.com/example/meeting-planner/internal/scheduler"
)

// RoomSummary describes a room without its calendar.
type RoomSummary struct {
	ID       string `json:"id"`
	Capacity int    `json:"capacity"`
}

// LocationSummary describes a location and its rooms.
type LocationSummary struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Rooms       []RoomSummary `json:"rooms"`
}

// RoomSearchRequest asks for the best room for a group at a location.
type RoomSearchRequest struct {
	LocationID   string
	Participants int
	Day          scheduler.Date
	Start        scheduler.TimeOfDay
	Duration     time.Duration
}

// RoomAvailabilityResult is the outcome of a room search. When Available is
// false only LocationID is set.
type RoomAvailabilityResult struct {
	LocationID      string               `json:"location_id"`
	Available       bool                 `json:"available"`
	RoomID          string               `json:"room_id,omitempty"`
	Day             scheduler.Date       `json:"date,omitzero"`
	Start           *scheduler.TimeOfDay `json:"start,omitempty"`
	DurationMinutes int                  `json:"duration_minutes,omitempty"`
}

// BookRoomRequest asks to book a specific room.
type BookRoomRequest struct {
	LocationID  string
	RoomID      string
	Day         scheduler.Date
	Start       scheduler.TimeOfDay
	Duration    time.Duration
	Reference   string
	Description string
}

// BookingStatus is the terminal state of a room booking.
type BookingStatus string

const (
	BookingRequested               BookingStatus = "requested"
	BookingConfirmed               BookingStatus = "confirmed"
	BookingRejectedUnknownLocation BookingStatus = "rejected_unknown_location"
	BookingRejectedUnknownRoom     BookingStatus = "rejected_unknown_room"
	BookingRejectedNoCapacity      BookingStatus = "rejected_no_capacity"
)

// Rejected reports whether the status is one of the rejection states.
func (s BookingStatus) Rejected() bool {
	switch s {
	case BookingRejectedUnknownLocation, BookingRejectedUnknownRoom, BookingRejectedNoCapacity:
		return true
	}
	return false
}

// BookingResult is the outcome of a room booking. Business rejections are
// reported here and never as errors; Reason carries the typed cause.
type BookingResult struct {
	LocationID string                `json:"location_id"`
	RoomID     string                `json:"room_id"`
	Success    bool                  `json:"success"`
	Status     BookingStatus         `json:"status"`
	Message    string                `json:"message"`
	Booking    *scheduler.AgendaItem `json:"booking,omitempty"`
	Reason     error                 `json:"-"`
}

// BookingFilter narrows ListBookings. Zero values match everything; From and
// To are inclusive.
type BookingFilter struct {
	LocationID string
	From       scheduler.Date
	To         scheduler.Date
}

// BookingInfo is one room booking in a report.
type BookingInfo struct {
	LocationID   string              `json:"location_id"`
	LocationName string              `json:"location_name"`
	RoomID       string              `json:"room_id"`
	Day          scheduler.Date      `json:"date"`
	Start        scheduler.TimeOfDay `json:"start"`
	End          scheduler.TimeOfDay `json:"end"`
	Title        string              `json:"title"`
}

// LocationBookingStats counts bookings at one location.
type LocationBookingStats struct {
	LocationID    string `json:"location_id"`
	LocationName  string `json:"location_name"`
	Description   string `json:"description"`
	TotalBookings int    `json:"total_bookings"`
	TotalRooms    int    `json:"total_rooms"`
}

// BookingStats aggregates LocationBookingStats.
type BookingStats struct {
	Locations     []LocationBookingStats `json:"locations"`
	TotalBookings int                    `json:"total_bookings"`
	TotalRooms    int                    `json:"total_rooms"`
}

// PersonSummary describes a registered person.
type PersonSummary struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// RegisterPersonParams carries the fields needed to register a person.
type RegisterPersonParams struct {
	Email string
	Name  string
}

// PersonAvailability reports whether one party member is free for a slot.
type PersonAvailability struct {
	Email     string                 `json:"email"`
	Name      string                 `json:"name"`
	Available bool                   `json:"available"`
	Conflicts []scheduler.AgendaItem `json:"conflicts,omitempty"`
}

// PersonSlots lists one party member's free windows for a day.
type PersonSlots struct {
	Email string           `json:"email"`
	Name  string           `json:"name"`
	Slots []scheduler.Slot `json:"slots"`
}

func summarizeLocation(loc *catalog.Location) LocationSummary {
	rooms := loc.Rooms()
	summary := LocationSummary{
		ID:          loc.ID(),
		Name:        loc.Name(),
		Description: loc.Description(),
		Rooms:       make([]RoomSummary, len(rooms)),
	}
	for i, room := range rooms {
		summary.Rooms[i] = RoomSummary{ID: room.ID(), Capacity: room.Capacity()}
	}
	return summary
}

func summarizePerson(p *catalog.Person) PersonSummary {
	return PersonSummary{Email: p.Email(), Name: p.Name()}
}
