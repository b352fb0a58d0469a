package application

import (
	"errors"
	"strings"
	"time"

	"github.com/example/meeting-planner/internal/catalog"
	"github.com/example/meeting-planner/internal/scheduler"
)

// Allocator picks rooms by best fit: the smallest free room that still seats
// the group.
type Allocator struct {
	catalog *catalog.Catalog
}

// NewAllocator returns an allocator over c.
func NewAllocator(c *catalog.Catalog) *Allocator {
	return &Allocator{catalog: c}
}

// FindRoom returns the best-fit room at locationID that seats minCapacity and
// is free for [start, start+duration) on day. found is false, with a nil
// error, when no room qualifies.
func (a *Allocator) FindRoom(locationID string, day scheduler.Date, start scheduler.TimeOfDay, duration time.Duration, minCapacity int) (ref catalog.RoomRef, found bool, err error) {
	if a == nil || a.catalog == nil {
		return catalog.RoomRef{}, false, errors.New("allocator is not configured")
	}
	slot, err := scheduler.SlotFrom(start, duration)
	if err != nil {
		return catalog.RoomRef{}, false, err
	}
	loc, ok := a.catalog.Location(locationID)
	if !ok {
		return catalog.RoomRef{}, false, &UnknownLocationError{LocationID: locationID}
	}

	var best *catalog.Room
	for _, room := range loc.Rooms() {
		if room.Capacity() < minCapacity {
			continue
		}
		if best != nil && !fitsBetter(room, best) {
			continue
		}
		if !room.Calendar().CheckAvailability(day, slot.Start, slot.End) {
			continue
		}
		best = room
	}
	if best == nil {
		return catalog.RoomRef{}, false, nil
	}
	return best.Ref(), true, nil
}

// fitsBetter orders rooms by capacity, then room id.
func fitsBetter(candidate, current *catalog.Room) bool {
	if candidate.Capacity() != current.Capacity() {
		return candidate.Capacity() < current.Capacity()
	}
	return strings.Compare(candidate.ID(), current.ID()) < 0
}
