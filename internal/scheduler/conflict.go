package scheduler

import "slices"

// Conflict describes an existing agenda item that collides with a candidate
// interval, together with the overlapping part.
type Conflict struct {
	With    AgendaItem `json:"with"`
	Overlap Slot       `json:"overlap"`
}

// DetectConflicts returns the items of existing that overlap [start, end) on
// day, ordered by start time. Touching boundaries are not conflicts.
func DetectConflicts(existing []AgendaItem, day Date, start, end TimeOfDay) []Conflict {
	var conflicts []Conflict
	for _, item := range existing {
		if !item.Overlaps(day, start, end) {
			continue
		}
		conflicts = append(conflicts, Conflict{
			With: item,
			Overlap: Slot{
				Start: maxTime(start, item.Start),
				End:   minTime(end, item.End),
			},
		})
	}
	slices.SortFunc(conflicts, func(a, b Conflict) int {
		return compareAgendaItems(a.With, b.With)
	})
	return conflicts
}
