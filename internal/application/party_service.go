package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/example/meeting-planner/internal/catalog"
	"github.com/example/meeting-planner/internal/scheduler"
)

// PartyService runs the party operations against people identified by
// email. Unknown emails fail the whole call with *UnknownPersonsError; nobody
// is skipped silently.
type PartyService struct {
	registry *catalog.PersonRegistry
	cache    *slotCache
	recorder Recorder
	logger   *slog.Logger
}

// PartyServiceConfig tunes the common-slot cache.
type PartyServiceConfig struct {
	CacheTTL        time.Duration
	CacheMaxEntries int
	Now             func() time.Time
}

// NewPartyService constructs a party service over registry.
func NewPartyService(registry *catalog.PersonRegistry, recorder Recorder, cfg PartyServiceConfig) *PartyService {
	return NewPartyServiceWithLogger(registry, recorder, cfg, nil)
}

// NewPartyServiceWithLogger constructs a party service with a specified logger.
func NewPartyServiceWithLogger(registry *catalog.PersonRegistry, recorder Recorder, cfg PartyServiceConfig, logger *slog.Logger) *PartyService {
	return &PartyService{
		registry: registry,
		cache:    newSlotCache(cfg.CacheTTL, cfg.CacheMaxEntries, cfg.Now),
		recorder: defaultRecorder(recorder),
		logger:   defaultLogger(logger),
	}
}

func (s *PartyService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "PartyService", operation, attrs...)
}

// resolve maps emails to people. Duplicates, known or unknown, collapse onto
// their first occurrence.
func (s *PartyService) resolve(emails []string) ([]*catalog.Person, error) {
	if len(emails) == 0 {
		vErr := &ValidationError{}
		vErr.add("emails", "at least one participant is required")
		return nil, vErr
	}

	seen := make(map[string]struct{}, len(emails))
	persons := make([]*catalog.Person, 0, len(emails))
	var missing []string
	reported := make(map[string]struct{})
	for _, email := range emails {
		p, ok := s.registry.FindByEmail(email)
		if !ok {
			normalized := strings.ToLower(strings.TrimSpace(email))
			if _, dup := reported[normalized]; !dup {
				reported[normalized] = struct{}{}
				missing = append(missing, email)
			}
			continue
		}
		if _, dup := seen[p.Email()]; dup {
			continue
		}
		seen[p.Email()] = struct{}{}
		persons = append(persons, p)
	}
	if len(missing) > 0 {
		return nil, &UnknownPersonsError{Emails: missing}
	}
	return persons, nil
}

// CheckAvailability reports, per person, whether [start, end) on day is free.
func (s *PartyService) CheckAvailability(ctx context.Context, emails []string, day scheduler.Date, start, end scheduler.TimeOfDay) (result []PersonAvailability, err error) {
	if s == nil {
		err = fmt.Errorf("PartyService is nil")
		return
	}

	logger := s.loggerWith(ctx, "CheckAvailability",
		"participants", len(emails),
		"date", day.String(),
		"start", start.String(),
		"end", end.String(),
	)
	defer func() {
		if err != nil {
			logger.WarnContext(ctx, "availability check failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.DebugContext(ctx, "availability checked", "results", len(result))
	}()

	if _, err = scheduler.NewSlot(start, end); err != nil {
		return
	}
	persons, err := s.resolve(emails)
	if err != nil {
		return
	}
	result = CheckAvailabilityFor(persons, day, start, end)
	return
}

// BookForAll books the meeting for every person without checking conflicts
// and returns one confirmation per person.
func (s *PartyService) BookForAll(ctx context.Context, emails []string, day scheduler.Date, start, end scheduler.TimeOfDay, title string) (confirmations []string, err error) {
	if s == nil {
		err = fmt.Errorf("PartyService is nil")
		return
	}

	logger := s.loggerWith(ctx, "BookForAll",
		"participants", len(emails),
		"date", day.String(),
		"start", start.String(),
		"end", end.String(),
	)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to book party meeting", "error", err, "error_kind", ErrorKind(err))
			return
		}
		s.recorder.RecordPartyBooking(ctx, len(confirmations))
		logger.InfoContext(ctx, "party meeting booked", "confirmations", len(confirmations))
	}()

	persons, err := s.resolve(emails)
	if err != nil {
		return
	}
	confirmations, err = BookMeetingForAll(persons, day, start, end, title)
	return
}

// AvailabilityForDay lists the free windows of every person on day.
func (s *PartyService) AvailabilityForDay(ctx context.Context, emails []string, day scheduler.Date) (result []PersonSlots, err error) {
	if s == nil {
		err = fmt.Errorf("PartyService is nil")
		return
	}

	logger := s.loggerWith(ctx, "AvailabilityForDay", "participants", len(emails), "date", day.String())
	defer func() {
		if err != nil {
			logger.WarnContext(ctx, "day availability failed", "error", err, "error_kind", ErrorKind(err))
		}
	}()

	persons, err := s.resolve(emails)
	if err != nil {
		return
	}
	result = AvailabilityForDay(persons, day)
	return
}

// FindCommonSlots returns the windows on day in which every person is free
// for at least minDuration.
func (s *PartyService) FindCommonSlots(ctx context.Context, emails []string, day scheduler.Date, minDuration time.Duration) (slots []scheduler.Slot, err error) {
	if s == nil {
		err = fmt.Errorf("PartyService is nil")
		return
	}

	logger := s.loggerWith(ctx, "FindCommonSlots",
		"participants", len(emails),
		"date", day.String(),
		"min_duration", minDuration.String(),
	)
	cacheHit := false
	defer func() {
		if err != nil {
			logger.WarnContext(ctx, "common slot search failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		s.recorder.RecordCommonSlotQuery(ctx, cacheHit)
		logger.DebugContext(ctx, "common slots computed", "slots", len(slots), "cache_hit", cacheHit)
	}()

	persons, err := s.resolve(emails)
	if err != nil {
		return
	}

	key := slotCacheKey(persons, day, minDuration)
	if cached, ok := s.cache.Lookup(key); ok {
		cacheHit = true
		slots = cached
		return
	}
	versions := calendarVersions(persons)
	slots = scheduler.FindCommonSlotsFor(persons, day, minDuration)
	s.cache.Remember(key, persons, versions, slots)
	return
}
