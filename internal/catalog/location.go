package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/example/meeting-planner/internal/scheduler"
)

// RoomSpec describes a room to create.
type RoomSpec struct {
	ID       string
	Capacity int
}

// LocationSpec describes a location and its rooms.
type LocationSpec struct {
	ID          string
	Name        string
	Description string
	Rooms       []RoomSpec
}

// Location is a venue with one or more rooms. It is read-only after
// construction.
type Location struct {
	id          string
	name        string
	description string
	rooms       []*Room
	byID        map[string]*Room
}

// NewLocation builds a location from spec. Room ids must be unique.
func NewLocation(spec LocationSpec, opts ...scheduler.CalendarOption) (*Location, error) {
	id := strings.TrimSpace(spec.ID)
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidLocation)
	}
	if len(spec.Rooms) == 0 {
		return nil, fmt.Errorf("%w: %s has no rooms", ErrInvalidLocation, id)
	}

	loc := &Location{
		id:          id,
		name:        strings.TrimSpace(spec.Name),
		description: strings.TrimSpace(spec.Description),
		byID:        make(map[string]*Room, len(spec.Rooms)),
	}
	for _, rs := range spec.Rooms {
		room, err := NewRoom(id, rs.ID, rs.Capacity, opts...)
		if err != nil {
			return nil, err
		}
		if _, dup := loc.byID[room.ID()]; dup {
			return nil, fmt.Errorf("%w: %s has duplicate room %q", ErrInvalidLocation, id, room.ID())
		}
		loc.byID[room.ID()] = room
		loc.rooms = append(loc.rooms, room)
	}
	slices.SortFunc(loc.rooms, func(a, b *Room) int {
		return strings.Compare(a.ID(), b.ID())
	})
	return loc, nil
}

func (l *Location) ID() string          { return l.id }
func (l *Location) Name() string        { return l.name }
func (l *Location) Description() string { return l.description }

// Rooms returns the rooms ordered by room id. The slice is a copy.
func (l *Location) Rooms() []*Room {
	return slices.Clone(l.rooms)
}

// Room looks up a room by id.
func (l *Location) Room(roomID string) (*Room, bool) {
	room, ok := l.byID[roomID]
	return room, ok
}
