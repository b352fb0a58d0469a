package testfixtures

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/example/meeting-planner/internal/catalog"
	"github.com/example/meeting-planner/internal/scheduler"
)

var (
	personCounter   uint64
	locationCounter uint64
)

// referenceTime is a Monday morning.
var referenceTime = time.Date(2024, time.March, 18, 8, 30, 0, 0, time.UTC)

// ReferenceTime returns the canonical baseline timestamp used by fixtures.
func ReferenceTime() time.Time {
	return referenceTime
}

// ReferenceDay returns the calendar day of ReferenceTime.
func ReferenceDay() scheduler.Date {
	return scheduler.DateOf(referenceTime)
}

// ----------------------------- Person fixtures -----------------------------

// PersonFixture describes a person to register.
type PersonFixture struct {
	Email string
	Name  string
}

// PersonOption configures the generated person fixture.
type PersonOption func(*PersonFixture)

// NewPersonFixture returns a deterministic person fixture with optional overrides.
func NewPersonFixture(opts ...PersonOption) PersonFixture {
	idx := atomic.AddUint64(&personCounter, 1)
	fixture := PersonFixture{
		Email: fmt.Sprintf("person-%03d@example.com", idx),
		Name:  fmt.Sprintf("Person %03d", idx),
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithPersonEmail overrides the generated email address.
func WithPersonEmail(email string) PersonOption {
	return func(f *PersonFixture) {
		f.Email = email
	}
}

// WithPersonName overrides the generated name.
func WithPersonName(name string) PersonOption {
	return func(f *PersonFixture) {
		f.Name = name
	}
}

// Person materialises the fixture.
func (f PersonFixture) Person(opts ...scheduler.CalendarOption) (*catalog.Person, error) {
	return catalog.NewPerson(f.Email, f.Name, opts...)
}

// NewRegistry builds a registry holding the given fixtures.
func NewRegistry(fixtures []PersonFixture, opts ...scheduler.CalendarOption) (*catalog.PersonRegistry, error) {
	registry := catalog.NewPersonRegistry()
	for _, f := range fixtures {
		p, err := f.Person(opts...)
		if err != nil {
			return nil, err
		}
		registry.AddPerson(p)
	}
	return registry, nil
}

// ---------------------------- Location fixtures ----------------------------

// LocationOption configures the generated location spec.
type LocationOption func(*catalog.LocationSpec)

// NewLocationSpec returns a deterministic location with rooms of capacity 4,
// 8 and 12, named small, medium and large.
func NewLocationSpec(opts ...LocationOption) catalog.LocationSpec {
	idx := atomic.AddUint64(&locationCounter, 1)
	spec := catalog.LocationSpec{
		ID:          fmt.Sprintf("location-%03d", idx),
		Name:        fmt.Sprintf("Location %03d", idx),
		Description: "Fixture location",
		Rooms: []catalog.RoomSpec{
			{ID: "small", Capacity: 4},
			{ID: "medium", Capacity: 8},
			{ID: "large", Capacity: 12},
		},
	}
	for _, opt := range opts {
		opt(&spec)
	}
	return spec
}

// WithLocationID overrides the generated location ID.
func WithLocationID(id string) LocationOption {
	return func(s *catalog.LocationSpec) {
		s.ID = id
	}
}

// WithRooms replaces the generated rooms.
func WithRooms(rooms ...catalog.RoomSpec) LocationOption {
	return func(s *catalog.LocationSpec) {
		s.Rooms = rooms
	}
}
