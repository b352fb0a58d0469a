package testfixtures

import (
	"testing"

	"github.com/example/meeting-planner/internal/scheduler"
)

func TestIDGeneratorProducesSequentialIDs(t *testing.T) {
	gen := NewIDGenerator("entity")

	first := gen.Next()
	second := gen.Next()

	if first != "entity-1" || second != "entity-2" {
		t.Fatalf("unexpected identifiers: %q, %q", first, second)
	}
}

func TestIDGeneratorDefaultPrefix(t *testing.T) {
	gen := NewIDGenerator("")
	if next := gen.Next(); next != "id-1" {
		t.Fatalf("expected id-1, got %q", next)
	}

	var missing *IDGenerator
	if id := missing.NextFunc()(); id != "" {
		t.Fatalf("expected empty id from nil generator, got %q", id)
	}
}

func TestIDGeneratorCalendarOption(t *testing.T) {
	gen := NewIDGenerator("item")
	cal := scheduler.NewCalendar(gen.CalendarOption())

	item, err := cal.BookMeeting(ReferenceDay(), scheduler.Clock(9, 0), scheduler.Clock(10, 0), "standup")
	if err != nil {
		t.Fatalf("BookMeeting returned error: %v", err)
	}
	if item.ID != "item-1" {
		t.Fatalf("expected item-1, got %q", item.ID)
	}
}
