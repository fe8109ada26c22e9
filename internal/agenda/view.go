package agenda

import (
	"time"

	"github.com/GURROLAG/appAgenda/internal/store"
)

// ViewState holds the calendar's visible month and selected day. Month
// arithmetic always works on the first of the month, so shifting is
// reversible for any delta and wraps year boundaries correctly.
type ViewState struct {
	VisibleMonth time.Time // local first-of-month
	SelectedDay  string    // calendar-day key, empty when nothing selected
}

// NewViewState starts on the month containing now with no day selected.
func NewViewState(now time.Time) ViewState {
	return ViewState{
		VisibleMonth: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
	}
}

// ChangeMonth shifts the visible month by delta whole months.
func (v *ViewState) ChangeMonth(delta int) {
	v.VisibleMonth = v.VisibleMonth.AddDate(0, delta, 0)
}

// SelectDay sets the selected day. Selecting the same day again is a
// no-op.
func (v *ViewState) SelectDay(key string) {
	v.SelectedDay = key
}

// EventsForSelectedDay filters the raw snapshot by exact day-key
// equality. Returns nil when no day is selected. Order follows the
// snapshot.
func (v *ViewState) EventsForSelectedDay(snapshot []store.Event) []store.Event {
	if v.SelectedDay == "" {
		return nil
	}
	var out []store.Event
	for _, ev := range snapshot {
		if ev.Date == v.SelectedDay {
			out = append(out, ev)
		}
	}
	return out
}
