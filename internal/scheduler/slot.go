package scheduler

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInterval is matched by every *InvalidIntervalError.
var ErrInvalidInterval = errors.New("scheduler: invalid interval")

// InvalidIntervalError reports an interval whose end does not lie strictly
// after its start, or whose bounds fall outside a single day.
type InvalidIntervalError struct {
	Start  TimeOfDay
	End    TimeOfDay
	Reason string
}

func (e *InvalidIntervalError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid interval %s-%s: %s", e.Start, e.End, e.Reason)
}

// Is lets errors.Is match ErrInvalidInterval.
func (e *InvalidIntervalError) Is(target error) bool {
	return target == ErrInvalidInterval
}

// Slot is a half-open window [Start, End) within one day.
type Slot struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// NewSlot validates and returns the window [start, end).
func NewSlot(start, end TimeOfDay) (Slot, error) {
	if err := validateInterval(start, end); err != nil {
		return Slot{}, err
	}
	return Slot{Start: start, End: end}, nil
}

// SlotFrom returns the window that starts at start and lasts d.
func SlotFrom(start TimeOfDay, d time.Duration) (Slot, error) {
	if d <= 0 {
		return Slot{}, &InvalidIntervalError{Start: start, End: start, Reason: "duration must be positive"}
	}
	return NewSlot(start, start.Add(d))
}

func validateInterval(start, end TimeOfDay) error {
	switch {
	case !start.Valid() || !end.Valid():
		return &InvalidIntervalError{Start: start, End: end, Reason: "bounds must lie within 00:00 and 24:00"}
	case end <= start:
		return &InvalidIntervalError{Start: start, End: end, Reason: "end must be after start"}
	}
	return nil
}

// Duration returns the length of the slot.
func (s Slot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Overlaps reports whether [start, end) shares any instant with s. Touching
// boundaries do not overlap.
func (s Slot) Overlaps(start, end TimeOfDay) bool {
	return start < s.End && end > s.Start
}

// Contains reports whether [start, end) lies completely within s.
func (s Slot) Contains(start, end TimeOfDay) bool {
	return start >= s.Start && end <= s.End
}

// String renders the slot as HH:MM-HH:MM.
func (s Slot) String() string {
	return s.Start.String() + "-" + s.End.String()
}

// SlotStrings renders slots with Slot.String, keeping order.
func SlotStrings(slots []Slot) []string {
	if len(slots) == 0 {
		return nil
	}
	out := make([]string, len(slots))
	for i, slot := range slots {
		out[i] = slot.String()
	}
	return out
}

// WorkingHours bounds the part of a day in which free slots are reported.
type WorkingHours struct {
	Start TimeOfDay
	End   TimeOfDay
}

// DefaultWorkingHours is the 09:00-17:00 working day.
var DefaultWorkingHours = WorkingHours{Start: Clock(9, 0), End: Clock(17, 0)}

// NewWorkingHours validates and returns the working window [start, end).
func NewWorkingHours(start, end TimeOfDay) (WorkingHours, error) {
	if err := validateInterval(start, end); err != nil {
		return WorkingHours{}, err
	}
	return WorkingHours{Start: start, End: end}, nil
}

// Window returns the working hours as a Slot.
func (w WorkingHours) Window() Slot {
	return Slot{Start: w.Start, End: w.End}
}

// clamp restricts [start, end) to the working window. ok is false when nothing
// of the interval remains inside the window.
func (w WorkingHours) clamp(start, end TimeOfDay) (TimeOfDay, TimeOfDay, bool) {
	start = maxTime(start, w.Start)
	end = minTime(end, w.End)
	return start, end, end > start
}

func (w WorkingHours) String() string {
	return w.Window().String()
}
