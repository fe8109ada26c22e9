package agenda

import (
	"errors"
	"testing"
	"time"

	"github.com/GURROLAG/appAgenda/internal/store"
)

// fakeMutator records session writes without a database.
type fakeMutator struct {
	created   []store.EventFields
	createdBy []string
	updated   map[string]store.EventFields
	err       error
}

func newFakeMutator() *fakeMutator {
	return &fakeMutator{updated: make(map[string]store.EventFields)}
}

func (f *fakeMutator) CreateEvent(fields store.EventFields, createdBy string) (*store.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, fields)
	f.createdBy = append(f.createdBy, createdBy)
	return &store.Event{ID: "new"}, nil
}

func (f *fakeMutator) UpdateEvent(id string, fields store.EventFields) error {
	if f.err != nil {
		return f.err
	}
	f.updated[id] = fields
	return nil
}

// runOut advances the session until the animation settles.
func runOut(s *Session) {
	for i := 0; i < 100 && s.Animating(); i++ {
		s.Advance(33 * time.Millisecond)
	}
}

// ============================================================
// Lifecycle
// ============================================================

func TestSessionOpenCreateMode(t *testing.T) {
	var s Session
	s.Open(nil)

	if s.State() != SessionOpening {
		t.Fatalf("expected Opening, got %v", s.State())
	}
	if s.Editing() {
		t.Fatal("create mode should not be editing")
	}
	if s.Title != "" || s.Day != "" || s.Clock != nil {
		t.Fatal("create mode should start with blank buffers")
	}
}

func TestSessionOpenEditMode(t *testing.T) {
	var s Session
	s.Open(&store.Event{
		ID:          "e1",
		Title:       "Dentist",
		Description: "bring card",
		Date:        "2024-06-05",
		Time:        "02:30 PM",
		Color:       "#ff6347",
	})

	if !s.Editing() || s.TargetID() != "e1" {
		t.Fatal("expected edit mode targeting e1")
	}
	if s.Title != "Dentist" || s.Day != "2024-06-05" || s.Color != "#ff6347" {
		t.Fatalf("fields not copied: %+v", s)
	}
	if s.Clock == nil || s.Clock.Hour != 14 || s.Clock.Minute != 30 {
		t.Fatalf("expected clock 14:30, got %+v", s.Clock)
	}
}

func TestSessionOpenAbsentTimeStaysUnset(t *testing.T) {
	var s Session
	s.Open(&store.Event{ID: "e1", Date: "2024-06-05"})
	if s.Clock != nil {
		t.Fatal("absent time should leave clock unset")
	}
}

func TestSessionOpenMalformedTimeFallsBackToNow(t *testing.T) {
	var s Session
	s.Open(&store.Event{ID: "e1", Date: "2024-06-05", Time: "bogus"})
	if s.Clock == nil {
		t.Fatal("malformed time should fall back to a set clock")
	}
}

func TestSessionReopenResets(t *testing.T) {
	var s Session
	s.Open(&store.Event{ID: "e1", Title: "Old", Date: "2024-06-05", Time: "09:00 AM"})
	runOut(&s)
	s.Title = "half-edited"
	s.DayPickerOpen = true

	s.Open(nil)
	if s.Editing() || s.Title != "" || s.DayPickerOpen {
		t.Fatalf("reopen should reset onto new target: %+v", s)
	}
	if s.State() != SessionOpening {
		t.Fatalf("expected Opening, got %v", s.State())
	}
}

// ============================================================
// Animation
// ============================================================

func TestSessionSlideIn(t *testing.T) {
	var s Session
	s.Open(nil)

	if s.Phase() != 0 {
		t.Fatalf("expected phase 0, got %v", s.Phase())
	}
	crossed := false
	for i := 0; i < 100 && !crossed; i++ {
		crossed = s.Advance(33 * time.Millisecond)
	}
	if !crossed {
		t.Fatal("slide-in never completed")
	}
	if s.State() != SessionOpen || s.Phase() != 1 {
		t.Fatalf("expected Open at phase 1, got %v at %v", s.State(), s.Phase())
	}
}

func TestSessionCancelReversesMidFlight(t *testing.T) {
	var s Session
	s.Open(nil)
	s.Advance(100 * time.Millisecond)

	mid := s.Phase()
	if mid <= 0 || mid >= 1 {
		t.Fatalf("expected phase strictly inside (0,1), got %v", mid)
	}

	s.Cancel()
	if s.State() != SessionClosing {
		t.Fatalf("expected Closing, got %v", s.State())
	}
	s.Advance(33 * time.Millisecond)
	if s.Phase() >= mid {
		t.Fatal("phase should move back down after cancel")
	}
}

func TestSessionCloseClearsBuffers(t *testing.T) {
	var s Session
	s.Open(&store.Event{ID: "e1", Title: "Dentist", Date: "2024-06-05", Time: "09:00 AM"})
	runOut(&s)
	s.Cancel()
	runOut(&s)

	if s.State() != SessionClosed || s.Visible() {
		t.Fatalf("expected Closed, got %v", s.State())
	}
	if s.Title != "" || s.Day != "" || s.Clock != nil || s.TargetID() != "" {
		t.Fatalf("buffers should be cleared after close: %+v", s)
	}
}

func TestSessionAdvanceClamps(t *testing.T) {
	var s Session
	s.Open(nil)
	s.Advance(10 * time.Second)
	if s.Phase() != 1 {
		t.Fatalf("expected phase clamped to 1, got %v", s.Phase())
	}
}

// ============================================================
// Submit
// ============================================================

func TestSubmitValidationOrder(t *testing.T) {
	m := newFakeMutator()

	// Everything missing: title reported first.
	var s Session
	s.Open(nil)
	err := s.Submit(m, "u1")
	var v *ValidationError
	if !errors.As(err, &v) || v.Field != "title" {
		t.Fatalf("expected title error, got %v", err)
	}

	s.Title = "Dentist"
	err = s.Submit(m, "u1")
	if !errors.As(err, &v) || v.Field != "date" {
		t.Fatalf("expected date error, got %v", err)
	}

	s.Day = "2024-06-05"
	err = s.Submit(m, "u1")
	if !errors.As(err, &v) || v.Field != "time" {
		t.Fatalf("expected time error, got %v", err)
	}

	if len(m.created) != 0 || len(m.updated) != 0 {
		t.Fatal("validation failures must not reach the store")
	}
}

func TestSubmitCreate(t *testing.T) {
	m := newFakeMutator()
	var s Session
	s.Open(nil)
	runOut(&s)
	s.Title = "Dentist"
	s.Description = "bring card"
	s.Day = "2024-06-05"
	s.Clock = &Clock{Hour: 14, Minute: 30}
	s.Color = "#ff6347"

	if err := s.Submit(m, "u1"); err != nil {
		t.Fatal(err)
	}
	if len(m.created) != 1 {
		t.Fatalf("expected 1 create, got %d", len(m.created))
	}
	f := m.created[0]
	if f.Title != "Dentist" || f.Date != "2024-06-05" || f.Time != "02:30 PM" || f.Color != "#ff6347" {
		t.Fatalf("unexpected fields: %+v", f)
	}
	if m.createdBy[0] != "u1" {
		t.Fatalf("expected owner u1, got %s", m.createdBy[0])
	}
	if s.State() != SessionClosing {
		t.Fatalf("successful submit should start slide-out, got %v", s.State())
	}
}

func TestSubmitUpdate(t *testing.T) {
	m := newFakeMutator()
	var s Session
	s.Open(&store.Event{ID: "e1", Title: "Old", Date: "2024-06-05", Time: "09:00 AM"})
	runOut(&s)
	s.Title = "New"

	if err := s.Submit(m, "u1"); err != nil {
		t.Fatal(err)
	}
	if len(m.created) != 0 {
		t.Fatal("edit mode must not create")
	}
	f, ok := m.updated["e1"]
	if !ok {
		t.Fatal("expected update on e1")
	}
	if f.Title != "New" || f.Time != "09:00 AM" {
		t.Fatalf("unexpected fields: %+v", f)
	}
}

func TestSubmitNormalizesColor(t *testing.T) {
	m := newFakeMutator()
	var s Session
	s.Open(nil)
	s.Title = "x"
	s.Day = "2024-06-05"
	s.Clock = &Clock{Hour: 9}
	s.Color = "#bogus"

	if err := s.Submit(m, "u1"); err != nil {
		t.Fatal(err)
	}
	if m.created[0].Color != Palette[0] {
		t.Fatalf("expected normalized color, got %s", m.created[0].Color)
	}
}

func TestSubmitStoreErrorLeavesSessionOpen(t *testing.T) {
	m := newFakeMutator()
	m.err = errors.New("disk full")
	var s Session
	s.Open(nil)
	runOut(&s)
	s.Title = "x"
	s.Day = "2024-06-05"
	s.Clock = &Clock{Hour: 9}

	if err := s.Submit(m, "u1"); err == nil {
		t.Fatal("expected store error")
	}
	if s.State() != SessionOpen {
		t.Fatalf("store error must leave the session open, got %v", s.State())
	}
}

func TestCancelDoesNotWrite(t *testing.T) {
	m := newFakeMutator()
	var s Session
	s.Open(nil)
	s.Title = "x"
	s.Cancel()
	runOut(&s)

	if len(m.created) != 0 || len(m.updated) != 0 {
		t.Fatal("cancel must not touch the store")
	}
}
