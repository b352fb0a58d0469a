package testfixtures

import (
	"log/slog"
	"time"

	"github.com/example/meeting-planner/internal/application"
	"github.com/example/meeting-planner/internal/catalog"
	"github.com/example/meeting-planner/internal/scheduler"
)

// ServiceFactory assists tests with constructing application services using
// deterministic identifiers and clocks.
type ServiceFactory struct {
	Clock       *Clock
	IDGenerator *IDGenerator
}

// ServiceFactoryOption configures a ServiceFactory instance.
type ServiceFactoryOption func(*ServiceFactory)

// NewServiceFactory constructs a ServiceFactory with defaults.
func NewServiceFactory(opts ...ServiceFactoryOption) *ServiceFactory {
	factory := &ServiceFactory{
		Clock:       NewClock(time.Time{}),
		IDGenerator: NewIDGenerator("item"),
	}
	for _, opt := range opts {
		opt(factory)
	}
	if factory.Clock == nil {
		factory.Clock = NewClock(time.Time{})
	}
	if factory.IDGenerator == nil {
		factory.IDGenerator = NewIDGenerator("item")
	}
	return factory
}

// WithClock overrides the clock used by the factory.
func WithClock(clock *Clock) ServiceFactoryOption {
	return func(factory *ServiceFactory) {
		factory.Clock = clock
	}
}

// WithIDGenerator overrides the identifier generator used by the factory.
func WithIDGenerator(generator *IDGenerator) ServiceFactoryOption {
	return func(factory *ServiceFactory) {
		factory.IDGenerator = generator
	}
}

// Services bundles everything a transport needs.
type Services struct {
	Catalog   *catalog.Catalog
	Registry  *catalog.PersonRegistry
	Locations *application.LocationService
	Persons   *application.PersonService
	Party     *application.PartyService
}

// ServicesDeps captures the inputs for NewServices. Nil or empty fields fall
// back to one fixture location, an empty registry and the factory defaults.
type ServicesDeps struct {
	Locations []catalog.LocationSpec
	Registry  *catalog.PersonRegistry
	Recorder  application.Recorder
	CacheTTL  time.Duration
	Logger    *slog.Logger
}

// NewServices builds the catalog and services with calendars that draw IDs
// from the factory generator.
func (f *ServiceFactory) NewServices(deps ServicesDeps) (*Services, error) {
	calendarOpts := []scheduler.CalendarOption{f.IDGenerator.CalendarOption()}

	specs := deps.Locations
	if len(specs) == 0 {
		specs = []catalog.LocationSpec{NewLocationSpec()}
	}
	cat, err := catalog.New(specs, catalog.WithCalendarOptions(calendarOpts...))
	if err != nil {
		return nil, err
	}
	registry := deps.Registry
	if registry == nil {
		registry = catalog.NewPersonRegistry()
	}

	return &Services{
		Catalog:   cat,
		Registry:  registry,
		Locations: application.NewLocationServiceWithLogger(cat, deps.Recorder, deps.Logger),
		Persons:   application.NewPersonServiceWithLogger(registry, deps.Logger, calendarOpts...),
		Party: application.NewPartyServiceWithLogger(registry, deps.Recorder, application.PartyServiceConfig{
			CacheTTL: deps.CacheTTL,
			Now:      f.Clock.NowFunc(),
		}, deps.Logger),
	}, nil
}
