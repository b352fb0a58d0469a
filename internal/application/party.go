package application

import (
	"fmt"

	"github.com/example/meeting-planner/internal/catalog"
	"github.com/example/meeting-planner/internal/scheduler"
)

// CheckAvailabilityFor evaluates every person for [start, end) on day,
// keeping input order. A conflict for one member never stops evaluation of
// the others.
func CheckAvailabilityFor(persons []*catalog.Person, day scheduler.Date, start, end scheduler.TimeOfDay) []PersonAvailability {
	out := make([]PersonAvailability, len(persons))
	for i, p := range persons {
		var conflicts []scheduler.AgendaItem
		for _, c := range p.Calendar().Conflicts(day, start, end) {
			conflicts = append(conflicts, c.With)
		}
		out[i] = PersonAvailability{
			Email:     p.Email(),
			Name:      p.Name(),
			Available: len(conflicts) == 0,
			Conflicts: conflicts,
		}
	}
	return out
}

// BookMeetingForAll books [start, end) on day for every person with the
// Informative policy, so existing conflicts do not block anyone. It returns
// one confirmation per person in input order. The interval is validated
// before anybody is booked.
func BookMeetingForAll(persons []*catalog.Person, day scheduler.Date, start, end scheduler.TimeOfDay, title string) ([]string, error) {
	if _, err := scheduler.NewSlot(start, end); err != nil {
		return nil, err
	}
	confirmations := make([]string, 0, len(persons))
	for _, p := range persons {
		item, _, err := scheduler.Informative.Book(p.Calendar(), day, start, end, title)
		if err != nil {
			return confirmations, fmt.Errorf("book meeting for %s: %w", p.Email(), err)
		}
		confirmations = append(confirmations, confirmationMessage(p, item))
	}
	return confirmations, nil
}

// AvailabilityForDay lists every person's free windows on day, keeping input
// order.
func AvailabilityForDay(persons []*catalog.Person, day scheduler.Date) []PersonSlots {
	out := make([]PersonSlots, len(persons))
	for i, p := range persons {
		slots := p.Calendar().AvailabilityForDay(day)
		if slots == nil {
			slots = []scheduler.Slot{}
		}
		out[i] = PersonSlots{Email: p.Email(), Name: p.Name(), Slots: slots}
	}
	return out
}

func confirmationMessage(p *catalog.Person, item scheduler.AgendaItem) string {
	return fmt.Sprintf("Meeting booked for %s on %s from %s to %s titled '%s'",
		p.Name(), item.Day, item.Start, item.End, item.Title)
}
