package agenda

import (
	"strings"
	"time"

	"github.com/GURROLAG/appAgenda/internal/store"
)

// SessionState is the lifecycle phase of the event form.
type SessionState int

const (
	SessionClosed SessionState = iota
	SessionOpening
	SessionOpen
	SessionClosing
)

// SlideDuration is how long the open/close slide takes end to end.
const SlideDuration = 300 * time.Millisecond

// Mutator is the write half of the event store the session submits
// through. Tests substitute a fake.
type Mutator interface {
	CreateEvent(f store.EventFields, createdBy string) (*store.Event, error)
	UpdateEvent(id string, f store.EventFields) error
}

// ValidationError names the first required form field that was missing.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "missing required field: " + e.Field
}

// Session holds the transient state of the create/edit event form: field
// buffers, picker flags, and the slide animation phase. At most one
// session exists; opening while visible resets it onto the new target.
type Session struct {
	state    SessionState
	phase    float64 // slide progress in [0,1]
	targetID string  // id of the event being edited; empty in create mode

	Title       string
	Description string
	Day         string // calendar-day key
	Clock       *Clock // nil until a time is picked
	Color       string

	DayPickerOpen   bool
	ClockPickerOpen bool
}

func (s *Session) State() SessionState { return s.state }
func (s *Session) Phase() float64      { return s.phase }
func (s *Session) TargetID() string    { return s.targetID }

// Editing reports whether the session targets an existing event.
func (s *Session) Editing() bool { return s.targetID != "" }

// Visible reports whether the form should be rendered at all.
func (s *Session) Visible() bool { return s.state != SessionClosed }

// Animating reports whether a slide transition is in flight.
func (s *Session) Animating() bool {
	return s.state == SessionOpening || s.state == SessionClosing
}

// Open starts the session. With an event it enters edit mode, copying
// the stored fields; a time that fails to decode falls back to now
// rather than leaving the field unset, while an absent time stays unset.
// Without an event it enters create mode with blank buffers. A session
// already visible is reset onto the new target and the slide-in resumes
// from the current phase.
func (s *Session) Open(ev *store.Event) {
	if ev != nil {
		s.targetID = ev.ID
		s.Title = ev.Title
		s.Description = ev.Description
		s.Day = ev.Date
		s.Color = ev.Color
		switch h, m, err := ParseClock(ev.Time); {
		case ev.Time == "":
			s.Clock = nil
		case err != nil:
			now := time.Now()
			s.Clock = &Clock{Hour: now.Hour(), Minute: now.Minute()}
		default:
			s.Clock = &Clock{Hour: h, Minute: m}
		}
	} else {
		s.targetID = ""
		s.Title = ""
		s.Description = ""
		s.Day = ""
		s.Color = ""
		s.Clock = nil
	}
	s.DayPickerOpen = false
	s.ClockPickerOpen = false
	s.state = SessionOpening
}

// Cancel starts the slide-out without touching the store.
func (s *Session) Cancel() {
	if s.state == SessionOpening || s.state == SessionOpen {
		s.state = SessionClosing
	}
}

// Advance moves the slide phase by the elapsed duration and reports
// whether a state edge was crossed. Opening and Closing are mutually
// cancelling: whichever state is current owns the phase, so starting a
// new transition replaces the old one mid-flight. Reaching Closed clears
// every buffer.
func (s *Session) Advance(d time.Duration) bool {
	step := float64(d) / float64(SlideDuration)
	switch s.state {
	case SessionOpening:
		s.phase += step
		if s.phase >= 1 {
			s.phase = 1
			s.state = SessionOpen
			return true
		}
	case SessionClosing:
		s.phase -= step
		if s.phase <= 0 {
			s.phase = 0
			s.state = SessionClosed
			s.clear()
			return true
		}
	}
	return false
}

// Submit validates the buffers in order (title, date, time), aborting on
// the first missing field with no store call. On success it writes
// through the mutator — update in edit mode, create otherwise — and
// starts the slide-out. A store error leaves the session open.
func (s *Session) Submit(m Mutator, owner string) error {
	if strings.TrimSpace(s.Title) == "" {
		return &ValidationError{Field: "title"}
	}
	if s.Day == "" {
		return &ValidationError{Field: "date"}
	}
	if s.Clock == nil {
		return &ValidationError{Field: "time"}
	}

	fields := store.EventFields{
		Title:       s.Title,
		Description: s.Description,
		Date:        s.Day,
		Time:        s.Clock.Label(),
		Color:       NormalizeColor(s.Color),
	}

	var err error
	if s.targetID != "" {
		err = m.UpdateEvent(s.targetID, fields)
	} else {
		_, err = m.CreateEvent(fields, owner)
	}
	if err != nil {
		return err
	}

	s.state = SessionClosing
	return nil
}

func (s *Session) clear() {
	s.targetID = ""
	s.Title = ""
	s.Description = ""
	s.Day = ""
	s.Clock = nil
	s.Color = ""
	s.DayPickerOpen = false
	s.ClockPickerOpen = false
}
