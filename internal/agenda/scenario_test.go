package agenda

import (
	"testing"
	"time"

	"github.com/GURROLAG/appAgenda/internal/store"
)

// Full pass through the stack: session submit, snapshot delivery, day
// filter, and the projected span — no TUI involved.
func TestDentistScenario(t *testing.T) {
	s, err := store.NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	var snapshot []store.Event
	unsub := s.Subscribe(func(events []store.Event) { snapshot = events })
	defer unsub()

	// Create through a session, as the form would.
	var sess Session
	sess.Open(nil)
	sess.Title = "Dentist"
	sess.Day = "2024-06-10"
	sess.Clock = &Clock{Hour: 9, Minute: 0}
	if err := sess.Submit(s, "u1"); err != nil {
		t.Fatal(err)
	}

	if len(snapshot) != 1 || snapshot[0].Title != "Dentist" {
		t.Fatalf("subscription should deliver the new event: %+v", snapshot)
	}
	id := snapshot[0].ID

	// The day list sees it.
	var view ViewState
	view.SelectDay("2024-06-10")
	day := view.EventsForSelectedDay(snapshot)
	if len(day) != 1 || day[0].ID != id {
		t.Fatalf("day filter should match the event: %+v", day)
	}

	// The calendar projects a one-hour span at 9 AM.
	spans := Project(snapshot)
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	wantStart := time.Date(2024, time.June, 10, 9, 0, 0, 0, time.Local)
	if !spans[0].Start.Equal(wantStart) || !spans[0].End.Equal(wantStart.Add(time.Hour)) {
		t.Fatalf("expected 09:00-10:00 span, got %v-%v", spans[0].Start, spans[0].End)
	}

	// Edit just the time.
	var edit Session
	edit.Open(&snapshot[0])
	edit.Clock = &Clock{Hour: 14, Minute: 0}
	if err := edit.Submit(s, "u1"); err != nil {
		t.Fatal(err)
	}

	if len(snapshot) != 1 {
		t.Fatalf("edit must not add a record: %+v", snapshot)
	}
	got := snapshot[0]
	if got.ID != id || got.Title != "Dentist" || got.Date != "2024-06-10" {
		t.Fatalf("edit changed identity fields: %+v", got)
	}
	if got.Time != "02:00 PM" {
		t.Fatalf("expected 02:00 PM, got %q", got.Time)
	}
	if h, m, _ := ParseClock(got.Time); h != 14 || m != 0 {
		t.Fatalf("stored time should decode to 14:00, got %d:%02d", h, m)
	}

	// Delete; the snapshot empties.
	if err := s.DeleteEvent(id); err != nil {
		t.Fatal(err)
	}
	if len(snapshot) != 0 {
		t.Fatalf("expected empty snapshot after delete: %+v", snapshot)
	}
}
