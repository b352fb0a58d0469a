package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/example/meeting-planner/internal/application"
	"github.com/example/meeting-planner/internal/catalog"
	"github.com/example/meeting-planner/internal/config"
	httptransport "github.com/example/meeting-planner/internal/http"
	"github.com/example/meeting-planner/internal/scheduler"
)

// app holds the registries and services built at startup.
type app struct {
	catalog   *catalog.Catalog
	registry  *catalog.PersonRegistry
	locations *application.LocationService
	persons   *application.PersonService
	party     *application.PartyService
	seeded    int
}

func newApp(cfg config.Config, logger *slog.Logger, recorder application.Recorder, today scheduler.Date) (*app, error) {
	calendarOpts := []scheduler.CalendarOption{scheduler.WithWorkingHours(cfg.WorkingHours)}

	cat, err := catalog.New(catalog.DefaultLocations(), catalog.WithCalendarOptions(calendarOpts...))
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	registry := catalog.NewPersonRegistry()
	if err := catalog.SeedPersons(registry, calendarOpts...); err != nil {
		return nil, fmt.Errorf("seed persons: %w", err)
	}

	a := &app{
		catalog:   cat,
		registry:  registry,
		locations: application.NewLocationServiceWithLogger(cat, recorder, logger),
		persons:   application.NewPersonServiceWithLogger(registry, logger, calendarOpts...),
		party: application.NewPartyServiceWithLogger(registry, recorder, application.PartyServiceConfig{
			CacheTTL: cfg.SlotCacheTTL,
		}, logger),
	}

	if cfg.SeedSampleBookings {
		a.seeded, err = catalog.SeedSampleBookings(cat, today)
		if err != nil {
			return nil, fmt.Errorf("seed sample bookings: %w", err)
		}
	}
	return a, nil
}

func (a *app) handler(logger *slog.Logger, metrics httptransport.RequestMetrics) http.Handler {
	return httptransport.NewRouter(httptransport.RouterConfig{
		Locations:  httptransport.NewLocationHandler(a.locations, logger),
		Persons:    httptransport.NewPersonHandler(a.persons, logger),
		Party:      httptransport.NewPartyHandler(a.party, logger),
		Metrics:    metrics,
		Middleware: []func(http.Handler) http.Handler{httptransport.RequestLogger(logger)},
	})
}
