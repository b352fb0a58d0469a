package scheduler

// HasCalendar is implemented by everything that owns a calendar: people and
// rooms.
type HasCalendar interface {
	ResourceID() string
	Calendar() *Calendar
}

// BookingPolicy decides whether a booking must be free at commit time.
type BookingPolicy int

const (
	// Informative bookings are always written. Availability may be checked
	// beforehand, but the commit never re-validates, so double bookings are
	// possible. People are booked this way.
	Informative BookingPolicy = iota
	// Enforced bookings are rejected when the interval is taken at commit
	// time. The check and the write share one lock. Rooms are booked this way.
	Enforced
)

func (p BookingPolicy) String() string {
	switch p {
	case Informative:
		return "informative"
	case Enforced:
		return "enforced"
	default:
		return "unknown"
	}
}

// Book writes the interval to cal according to the policy. booked is false
// only for an Enforced booking that found the interval taken.
func (p BookingPolicy) Book(cal *Calendar, day Date, start, end TimeOfDay, title string) (AgendaItem, bool, error) {
	if p == Enforced {
		return cal.BookIfAvailable(day, start, end, title)
	}
	item, err := cal.BookMeeting(day, start, end, title)
	if err != nil {
		return AgendaItem{}, false, err
	}
	return item, true, nil
}
