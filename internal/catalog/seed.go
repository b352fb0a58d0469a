package catalog

import (
	"fmt"

	"github.com/example/meeting-planner/internal/scheduler"
)

// DefaultLocations returns the built-in venues.
func DefaultLocations() []LocationSpec {
	return []LocationSpec{
		{
			ID: "luminis", Name: "Luminis",
			Description: "Business meeting rooms across different locations in the Netherlands.",
			Rooms:       []RoomSpec{{"room-a", 4}, {"room-b", 8}, {"room-c", 12}},
		},
		{
			ID: "like-home", Name: "Meeting like Home",
			Description: "Homely settings for a relaxing meeting.",
			Rooms:       []RoomSpec{{"living", 6}, {"kitchen", 10}, {"garden", 5}},
		},
		{
			ID: "meet-nature", Name: "Meeting in Nature",
			Description: "Combine meetings with outdoor activities.",
			Rooms:       []RoomSpec{{"forest", 8}, {"lake", 14}, {"meadow", 6}},
		},
		{
			ID: "techhub", Name: "TechHub",
			Description: "Modern tech-focused meeting spaces.",
			Rooms:       []RoomSpec{{"alpha", 5}, {"beta", 9}, {"gamma", 15}},
		},
		{
			ID: "cityview", Name: "CityView",
			Description: "Panoramic city views for inspiring meetings.",
			Rooms:       []RoomSpec{{"sky", 7}, {"cloud", 12}, {"sun", 20}},
		},
		{
			ID: "greenspace", Name: "GreenSpace",
			Description: "Eco-friendly meeting rooms surrounded by plants.",
			Rooms:       []RoomSpec{{"ivy", 4}, {"fern", 8}, {"moss", 10}},
		},
		{
			ID: "harbor", Name: "Harbor",
			Description: "Meetings with a view of the water and ships.",
			Rooms:       []RoomSpec{{"dock", 6}, {"pier", 11}, {"cabin", 8}},
		},
		{
			ID: "library", Name: "Library",
			Description: "Quiet spaces for focused meetings.",
			Rooms:       []RoomSpec{{"study", 3}, {"archive", 7}, {"reading", 10}},
		},
		{
			ID: "loft", Name: "Loft",
			Description: "Trendy loft-style meeting rooms.",
			Rooms:       []RoomSpec{{"brick", 5}, {"beam", 9}, {"glass", 13}},
		},
		{
			ID: "villa", Name: "Villa",
			Description: "Luxurious villa for exclusive meetings.",
			Rooms:       []RoomSpec{{"salon", 8}, {"terrace", 16}, {"suite", 6}},
		},
		{
			ID: "campus", Name: "Campus",
			Description: "Academic-style meeting rooms for workshops and seminars.",
			Rooms:       []RoomSpec{{"lab", 10}, {"hall", 18}, {"class", 7}},
		},
	}
}

// SeedPersons registers the sample people. Existing entries are kept.
func SeedPersons(registry *PersonRegistry, opts ...scheduler.CalendarOption) error {
	samples := []struct{ email, name string }{
		{"jettro@rag4j.org", "Jettro Coenradie"},
		{"daniel@rag4j.org", "Daniël Spee"},
		{"joey@rag4j.org", "Joey"},
	}
	for _, s := range samples {
		p, err := NewPerson(s.email, s.name, opts...)
		if err != nil {
			return err
		}
		registry.AddIfAbsent(p)
	}
	return nil
}

type sampleBooking struct {
	location, room string
	day            scheduler.Date
	start, end     scheduler.TimeOfDay
	title          string
}

// MondayOf returns the Monday of the ISO week containing day.
func MondayOf(day scheduler.Date) scheduler.Date {
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDays(-offset)
}

func sampleBookings(today scheduler.Date) []sampleBooking {
	at := scheduler.Clock
	monday := MondayOf(today)
	nextWeek := today.AddDays(7)
	return []sampleBooking{
		{"luminis", "room-a", monday, at(9, 0), at(10, 30), "Monday Team Stand-up"},
		{"techhub", "alpha", monday, at(14, 0), at(15, 30), "Code Review Monday"},
		{"luminis", "room-b", monday.AddDays(1), at(10, 0), at(11, 30), "Sprint Planning"},
		{"like-home", "living", monday.AddDays(1), at(15, 0), at(16, 0), "Casual Coffee Meeting"},
		{"cityview", "sky", monday.AddDays(2), at(9, 30), at(11, 0), "Midweek Strategy"},
		{"greenspace", "ivy", monday.AddDays(2), at(13, 0), at(14, 0), "Green Meeting"},
		{"techhub", "beta", monday.AddDays(3), at(11, 0), at(12, 30), "Architecture Discussion"},
		{"harbor", "dock", monday.AddDays(3), at(14, 30), at(16, 0), "Waterfront Meeting"},
		{"luminis", "room-c", monday.AddDays(4), at(10, 0), at(11, 30), "Friday Client Presentation"},
		{"villa", "salon", monday.AddDays(4), at(15, 0), at(17, 0), "End of Week VIP Meeting"},
		{"cityview", "cloud", today, at(16, 0), at(17, 0), "Today's Executive Briefing"},
		{"library", "study", today.AddDays(-1), at(10, 0), at(11, 0), "Yesterday's Focus Session"},
		{"loft", "brick", today.AddDays(1), at(14, 0), at(15, 30), "Tomorrow's Brainstorm"},
		{"campus", "lab", nextWeek, at(9, 30), at(11, 30), "Next Week Research Workshop"},
		{"like-home", "kitchen", nextWeek.AddDays(1), at(13, 0), at(15, 0), "Team Lunch & Learn"},
		{"techhub", "gamma", nextWeek.AddDays(2), at(10, 0), at(12, 0), "All Hands Meeting"},
	}
}

// SeedSampleBookings books the demonstration meetings around today into the
// catalog's rooms and returns how many were added. A meeting already present
// with the same day, times and title is skipped, so seeding twice is a no-op.
func SeedSampleBookings(c *Catalog, today scheduler.Date) (int, error) {
	added := 0
	for _, b := range sampleBookings(today) {
		room, ok := c.Room(b.location, b.room)
		if !ok {
			return added, fmt.Errorf("seed booking %q: room %s/%s not in catalog", b.title, b.location, b.room)
		}
		if hasMeeting(room.Calendar(), b) {
			continue
		}
		if _, err := room.Calendar().BookMeeting(b.day, b.start, b.end, b.title); err != nil {
			return added, fmt.Errorf("seed booking %q: %w", b.title, err)
		}
		added++
	}
	return added, nil
}

func hasMeeting(cal *scheduler.Calendar, b sampleBooking) bool {
	for _, item := range cal.MeetingsOn(b.day) {
		if item.Start == b.start && item.End == b.end && item.Title == b.title {
			return true
		}
	}
	return false
}
