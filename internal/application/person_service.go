package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/example/meeting-planner/internal/catalog"
	"github.com/example/meeting-planner/internal/scheduler"
)

// PersonService registers and looks up people.
type PersonService struct {
	registry     *catalog.PersonRegistry
	calendarOpts []scheduler.CalendarOption
	logger       *slog.Logger
}

// NewPersonService constructs a person service over registry. calendarOpts
// apply to the calendars of newly registered people.
func NewPersonService(registry *catalog.PersonRegistry, calendarOpts ...scheduler.CalendarOption) *PersonService {
	return NewPersonServiceWithLogger(registry, nil, calendarOpts...)
}

// NewPersonServiceWithLogger constructs a person service with a specified logger.
func NewPersonServiceWithLogger(registry *catalog.PersonRegistry, logger *slog.Logger, calendarOpts ...scheduler.CalendarOption) *PersonService {
	return &PersonService{
		registry:     registry,
		calendarOpts: calendarOpts,
		logger:       defaultLogger(logger),
	}
}

func (s *PersonService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "PersonService", operation, attrs...)
}

// Register validates params and adds a new person. An email that is already
// registered yields ErrAlreadyExists.
func (s *PersonService) Register(ctx context.Context, params RegisterPersonParams) (person PersonSummary, err error) {
	if s == nil {
		err = fmt.Errorf("PersonService is nil")
		return
	}

	logger := s.loggerWith(ctx, "Register", "email", strings.TrimSpace(params.Email))
	defer func() {
		if err != nil {
			logger.WarnContext(ctx, "failed to register person", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "person registered")
	}()

	vErr := validatePersonInput(params)
	if vErr.HasErrors() {
		err = vErr
		return
	}

	p, err := catalog.NewPerson(params.Email, params.Name, s.calendarOpts...)
	if err != nil {
		vErr.add("email", err.Error())
		err = vErr
		return
	}
	if !s.registry.AddIfAbsent(p) {
		err = fmt.Errorf("person %s: %w", p.Email(), ErrAlreadyExists)
		return
	}
	person = summarizePerson(p)
	return
}

func validatePersonInput(params RegisterPersonParams) *ValidationError {
	vErr := &ValidationError{}
	if _, err := catalog.NormalizeEmail(params.Email); err != nil {
		if strings.TrimSpace(params.Email) == "" {
			vErr.add("email", "email is required")
		} else {
			vErr.add("email", "email must be a valid address")
		}
	}
	if strings.TrimSpace(params.Name) == "" {
		vErr.add("name", "name is required")
	}
	return vErr
}

// FindByEmail returns the registered person or ErrNotFound.
func (s *PersonService) FindByEmail(ctx context.Context, email string) (person PersonSummary, err error) {
	if s == nil {
		err = fmt.Errorf("PersonService is nil")
		return
	}

	logger := s.loggerWith(ctx, "FindByEmail", "email", email)
	defer func() {
		if err != nil && !errors.Is(err, ErrNotFound) {
			logger.ErrorContext(ctx, "failed to find person", "error", err, "error_kind", ErrorKind(err))
		}
	}()

	p, ok := s.registry.FindByEmail(email)
	if !ok {
		err = fmt.Errorf("person %s: %w", email, ErrNotFound)
		return
	}
	person = summarizePerson(p)
	return
}

// ListPersons returns everyone ordered by email.
func (s *PersonService) ListPersons(ctx context.Context) []PersonSummary {
	if s == nil {
		return nil
	}
	persons := s.registry.AllPersons()
	out := make([]PersonSummary, len(persons))
	for i, p := range persons {
		out[i] = summarizePerson(p)
	}
	s.loggerWith(ctx, "ListPersons").DebugContext(ctx, "listed persons", "count", len(out))
	return out
}
