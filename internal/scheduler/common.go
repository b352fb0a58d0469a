package scheduler

import "time"

// FindCommonSlots returns the windows of day in which every calendar is free
// and which last at least minDuration, in ascending order.
//
// With no calendars the whole DefaultWorkingHours window is returned, provided
// it is long enough. Use FindCommonSlotsWithin when the process runs on other
// hours.
func FindCommonSlots(calendars []*Calendar, day Date, minDuration time.Duration) []Slot {
	return FindCommonSlotsWithin(DefaultWorkingHours, calendars, day, minDuration)
}

// FindCommonSlotsWithin is FindCommonSlots with hours as the window of an
// empty party. Non-empty parties use the hours of their own calendars.
func FindCommonSlotsWithin(hours WorkingHours, calendars []*Calendar, day Date, minDuration time.Duration) []Slot {
	if len(calendars) == 0 {
		return filterShort([]Slot{hours.Window()}, minDuration)
	}

	common := filterShort(calendars[0].AvailabilityForDay(day), minDuration)
	for _, cal := range calendars[1:] {
		if len(common) == 0 {
			return nil
		}
		common = IntersectSlots(common, cal.AvailabilityForDay(day), minDuration)
	}
	return common
}

// FindCommonSlotsFor is FindCommonSlots over resources.
func FindCommonSlotsFor[R HasCalendar](resources []R, day Date, minDuration time.Duration) []Slot {
	calendars := make([]*Calendar, len(resources))
	for i, r := range resources {
		calendars[i] = r.Calendar()
	}
	return FindCommonSlots(calendars, day, minDuration)
}

// IntersectSlots intersects two ascending, non-overlapping slot lists and
// drops every window shorter than minDuration.
func IntersectSlots(a, b []Slot, minDuration time.Duration) []Slot {
	var out []Slot
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		start := maxTime(a[i].Start, b[j].Start)
		end := minTime(a[i].End, b[j].End)
		if end > start && end.Sub(start) >= minDuration {
			out = append(out, Slot{Start: start, End: end})
		}
		// Advance whichever window finishes first; the other may still
		// overlap the next one.
		if a[i].End < b[j].End {
			i++
		} else {
			j++
		}
	}
	return out
}

func filterShort(slots []Slot, minDuration time.Duration) []Slot {
	var out []Slot
	for _, slot := range slots {
		if slot.End > slot.Start && slot.Duration() >= minDuration {
			out = append(out, slot)
		}
	}
	return out
}
