package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/example/meeting-planner/internal/scheduler"
)

// Catalog is the fixed set of locations known to the process.
type Catalog struct {
	locations []*Location
	byID      map[string]*Location
}

// Option configures a Catalog.
type Option func(*options)

type options struct {
	calendar []scheduler.CalendarOption
}

// WithCalendarOptions applies opts to every room calendar.
func WithCalendarOptions(opts ...scheduler.CalendarOption) Option {
	return func(o *options) {
		o.calendar = append(o.calendar, opts...)
	}
}

// New builds a catalog from specs. Location ids must be unique.
func New(specs []LocationSpec, opts ...Option) (*Catalog, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	c := &Catalog{byID: make(map[string]*Location, len(specs))}
	for _, spec := range specs {
		loc, err := NewLocation(spec, o.calendar...)
		if err != nil {
			return nil, err
		}
		if _, dup := c.byID[loc.ID()]; dup {
			return nil, fmt.Errorf("%w: duplicate location %q", ErrInvalidLocation, loc.ID())
		}
		c.byID[loc.ID()] = loc
		c.locations = append(c.locations, loc)
	}
	slices.SortFunc(c.locations, func(a, b *Location) int {
		return strings.Compare(a.ID(), b.ID())
	})
	return c, nil
}

// AllLocations returns every location ordered by id.
func (c *Catalog) AllLocations() []*Location {
	return slices.Clone(c.locations)
}

// Location looks up a location by id.
func (c *Catalog) Location(id string) (*Location, bool) {
	loc, ok := c.byID[id]
	return loc, ok
}

// Room looks up a room. It reports false when either id is unknown.
func (c *Catalog) Room(locationID, roomID string) (*Room, bool) {
	loc, ok := c.byID[locationID]
	if !ok {
		return nil, false
	}
	return loc.Room(roomID)
}

// RoomCount returns the number of rooms across all locations.
func (c *Catalog) RoomCount() int {
	n := 0
	for _, loc := range c.locations {
		n += len(loc.rooms)
	}
	return n
}
