package scheduler

import "strings"

// AgendaItem is one booked interval on a calendar. Items are immutable once
// created.
type AgendaItem struct {
	ID    string    `json:"id"`
	Day   Date      `json:"day"`
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
	Title string    `json:"title"`
}

// NewAgendaItem validates the interval and returns the item.
func NewAgendaItem(id string, day Date, start, end TimeOfDay, title string) (AgendaItem, error) {
	if err := validateInterval(start, end); err != nil {
		return AgendaItem{}, err
	}
	return AgendaItem{
		ID:    id,
		Day:   day,
		Start: start,
		End:   end,
		Title: strings.TrimSpace(title),
	}, nil
}

// Slot returns the item's interval.
func (i AgendaItem) Slot() Slot {
	return Slot{Start: i.Start, End: i.End}
}

// Overlaps reports whether the item collides with [start, end) on day.
func (i AgendaItem) Overlaps(day Date, start, end TimeOfDay) bool {
	return i.Day == day && i.Slot().Overlaps(start, end)
}

func compareAgendaItems(a, b AgendaItem) int {
	if c := a.Day.Compare(b.Day); c != 0 {
		return c
	}
	if a.Start != b.Start {
		return int(a.Start - b.Start)
	}
	if a.End != b.End {
		return int(a.End - b.End)
	}
	return strings.Compare(a.ID, b.ID)
}
