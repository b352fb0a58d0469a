package catalog

import (
	"fmt"
	"strings"

	"github.com/example/meeting-planner/internal/scheduler"
)

// RoomRef identifies a room within a location.
type RoomRef struct {
	LocationID string `json:"location_id"`
	RoomID     string `json:"room_id"`
}

func (r RoomRef) String() string {
	return r.LocationID + "/" + r.RoomID
}

// IsZero reports whether the reference points at nothing.
func (r RoomRef) IsZero() bool {
	return r == RoomRef{}
}

// Room is a bookable space. Only its calendar changes after construction.
type Room struct {
	ref      RoomRef
	capacity int
	calendar *scheduler.Calendar
}

// NewRoom validates the identifiers and capacity and returns a room with an
// empty calendar.
func NewRoom(locationID, roomID string, capacity int, opts ...scheduler.CalendarOption) (*Room, error) {
	locationID = strings.TrimSpace(locationID)
	roomID = strings.TrimSpace(roomID)
	switch {
	case locationID == "":
		return nil, fmt.Errorf("%w: location id is required", ErrInvalidRoom)
	case roomID == "":
		return nil, fmt.Errorf("%w: room id is required", ErrInvalidRoom)
	case capacity <= 0:
		return nil, fmt.Errorf("%w: capacity of %s/%s must be positive, got %d", ErrInvalidRoom, locationID, roomID, capacity)
	}
	return &Room{
		ref:      RoomRef{LocationID: locationID, RoomID: roomID},
		capacity: capacity,
		calendar: scheduler.NewCalendar(opts...),
	}, nil
}

// Ref returns the room's identity.
func (r *Room) Ref() RoomRef { return r.ref }

// ID returns the room id, unique within its location.
func (r *Room) ID() string { return r.ref.RoomID }

// LocationID returns the id of the owning location.
func (r *Room) LocationID() string { return r.ref.LocationID }

// Capacity returns the number of people the room seats.
func (r *Room) Capacity() int { return r.capacity }

// ResourceID implements scheduler.HasCalendar.
func (r *Room) ResourceID() string { return r.ref.String() }

// Calendar implements scheduler.HasCalendar.
func (r *Room) Calendar() *scheduler.Calendar { return r.calendar }
