package scheduler

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Calendar holds the booked intervals of one resource. Overlapping items are
// allowed; whether a booking must first be free is decided by the caller
// (see BookingPolicy). All methods are safe for concurrent use.
type Calendar struct {
	mu          sync.RWMutex
	hours       WorkingHours
	items       []AgendaItem
	version     uint64
	idGenerator func() string
}

// CalendarOption configures a Calendar.
type CalendarOption func(*Calendar)

// WithWorkingHours overrides the window used by AvailabilityForDay.
func WithWorkingHours(hours WorkingHours) CalendarOption {
	return func(c *Calendar) {
		c.hours = hours
	}
}

// WithIDGenerator overrides the generator used for agenda item IDs.
func WithIDGenerator(generator func() string) CalendarOption {
	return func(c *Calendar) {
		if generator != nil {
			c.idGenerator = generator
		}
	}
}

// NewCalendar returns an empty calendar using DefaultWorkingHours.
func NewCalendar(opts ...CalendarOption) *Calendar {
	c := &Calendar{
		hours:       DefaultWorkingHours,
		idGenerator: uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WorkingHours returns the window used for free-slot derivation.
func (c *Calendar) WorkingHours() WorkingHours {
	return c.hours
}

// CheckAvailability reports whether [start, end) on day is free of bookings.
func (c *Calendar) CheckAvailability(day Date, start, end TimeOfDay) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.availableLocked(day, start, end)
}

func (c *Calendar) availableLocked(day Date, start, end TimeOfDay) bool {
	for _, item := range c.items {
		if item.Overlaps(day, start, end) {
			return false
		}
	}
	return true
}

// BookMeeting appends a booking without looking at existing items. The only
// failure is an invalid interval.
func (c *Calendar) BookMeeting(day Date, start, end TimeOfDay, title string) (AgendaItem, error) {
	item, err := NewAgendaItem(c.idGenerator(), day, start, end, title)
	if err != nil {
		return AgendaItem{}, err
	}

	c.mu.Lock()
	c.appendLocked(item)
	c.mu.Unlock()
	return item, nil
}

// BookIfAvailable checks availability and books under one critical section.
// booked is false, with a nil error, when the interval is already taken.
func (c *Calendar) BookIfAvailable(day Date, start, end TimeOfDay, title string) (item AgendaItem, booked bool, err error) {
	item, err = NewAgendaItem(c.idGenerator(), day, start, end, title)
	if err != nil {
		return AgendaItem{}, false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.availableLocked(day, start, end) {
		return AgendaItem{}, false, nil
	}
	c.appendLocked(item)
	return item, true, nil
}

func (c *Calendar) appendLocked(item AgendaItem) {
	c.items = append(c.items, item)
	c.version++
}

// AvailabilityForDay returns the free windows of day inside the calendar's
// working hours, in ascending order. An empty result means fully booked.
func (c *Calendar) AvailabilityForDay(day Date) []Slot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return freeSlots(c.items, day, c.hours)
}

// freeSlots walks the day's bookings, clamped to hours and sorted by start,
// emitting the gap in front of each one. The cursor only moves forward, so
// adjacent and overlapping bookings merge.
func freeSlots(items []AgendaItem, day Date, hours WorkingHours) []Slot {
	busy := make([]Slot, 0, len(items))
	for _, item := range items {
		if item.Day != day {
			continue
		}
		start, end, ok := hours.clamp(item.Start, item.End)
		if !ok {
			continue
		}
		busy = append(busy, Slot{Start: start, End: end})
	}
	slices.SortFunc(busy, func(a, b Slot) int {
		return int(a.Start - b.Start)
	})

	var free []Slot
	cursor := hours.Start
	for _, slot := range busy {
		if cursor < slot.Start {
			free = append(free, Slot{Start: cursor, End: slot.Start})
		}
		cursor = maxTime(cursor, slot.End)
	}
	if cursor < hours.End {
		free = append(free, Slot{Start: cursor, End: hours.End})
	}
	return free
}

// Conflicts returns the bookings that overlap [start, end) on day.
func (c *Calendar) Conflicts(day Date, start, end TimeOfDay) []Conflict {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return DetectConflicts(c.items, day, start, end)
}

// Meetings returns a copy of every booking ordered by day and start time.
func (c *Calendar) Meetings() []AgendaItem {
	c.mu.RLock()
	out := slices.Clone(c.items)
	c.mu.RUnlock()

	slices.SortFunc(out, compareAgendaItems)
	return out
}

// MeetingsOn returns a copy of the bookings on day ordered by start time.
func (c *Calendar) MeetingsOn(day Date) []AgendaItem {
	c.mu.RLock()
	var out []AgendaItem
	for _, item := range c.items {
		if item.Day == day {
			out = append(out, item)
		}
	}
	c.mu.RUnlock()

	slices.SortFunc(out, compareAgendaItems)
	return out
}

// Len returns the number of bookings.
func (c *Calendar) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Version changes every time the calendar is written to.
func (c *Calendar) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Clear removes every booking. It is not reachable from normal operation.
func (c *Calendar) Clear() {
	c.mu.Lock()
	c.items = nil
	c.version++
	c.mu.Unlock()
}
