package catalog

import (
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"sync"

	"github.com/example/meeting-planner/internal/scheduler"
)

// Person is someone who can attend meetings. The email is the identity.
type Person struct {
	email    string
	name     string
	calendar *scheduler.Calendar
}

// NewPerson validates the email and name and returns a person with an empty
// calendar. The email is stored lower-cased.
func NewPerson(email, name string, opts ...scheduler.CalendarOption) (*Person, error) {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidPerson)
	}
	return &Person{
		email:    normalized,
		name:     name,
		calendar: scheduler.NewCalendar(opts...),
	}, nil
}

// NormalizeEmail trims and lower-cases email and checks that it is a bare
// address.
func NormalizeEmail(email string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(email))
	if trimmed == "" {
		return "", fmt.Errorf("%w: email is required", ErrInvalidPerson)
	}
	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return "", fmt.Errorf("%w: %q is not a valid email address", ErrInvalidPerson, email)
	}
	return trimmed, nil
}

func (p *Person) Email() string { return p.email }
func (p *Person) Name() string  { return p.name }

// ResourceID implements scheduler.HasCalendar.
func (p *Person) ResourceID() string { return p.email }

// Calendar implements scheduler.HasCalendar.
func (p *Person) Calendar() *scheduler.Calendar { return p.calendar }

// PersonRegistry stores people by email. It is safe for concurrent use.
type PersonRegistry struct {
	mu      sync.RWMutex
	persons map[string]*Person
}

// NewPersonRegistry returns an empty registry.
func NewPersonRegistry() *PersonRegistry {
	return &PersonRegistry{persons: make(map[string]*Person)}
}

// AddPerson stores p, replacing any person with the same email.
func (r *PersonRegistry) AddPerson(p *Person) {
	if p == nil {
		return
	}
	r.mu.Lock()
	r.persons[p.email] = p
	r.mu.Unlock()
}

// AddIfAbsent stores p unless the email is taken. It reports whether p was
// stored.
func (r *PersonRegistry) AddIfAbsent(p *Person) bool {
	if p == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.persons[p.email]; exists {
		return false
	}
	r.persons[p.email] = p
	return true
}

// FindByEmail looks a person up. The email is matched case-insensitively.
func (r *PersonRegistry) FindByEmail(email string) (*Person, bool) {
	key := strings.ToLower(strings.TrimSpace(email))
	r.mu.RLock()
	p, ok := r.persons[key]
	r.mu.RUnlock()
	return p, ok
}

// AllPersons returns everyone ordered by email.
func (r *PersonRegistry) AllPersons() []*Person {
	r.mu.RLock()
	out := make([]*Person, 0, len(r.persons))
	for _, p := range r.persons {
		out = append(out, p)
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b *Person) int {
		return strings.Compare(a.email, b.email)
	})
	return out
}

// Len returns the number of registered people.
func (r *PersonRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.persons)
}
