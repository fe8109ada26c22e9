package export

import (
	"fmt"
	"os"

	ics "github.com/arran4/golang-ical"

	"github.com/GURROLAG/appAgenda/internal/agenda"
	"github.com/GURROLAG/appAgenda/internal/store"
)

// ToICS writes the event collection as an iCalendar file. Records that
// fail to decode into calendar spans are skipped, matching what the
// calendar itself displays.
func ToICS(events []store.Event, path string) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//appagenda//EN")

	for _, sp := range agenda.Project(events) {
		ve := cal.AddEvent(sp.ID)
		ve.SetSummary(sp.Title)
		ve.SetStartAt(sp.Start)
		ve.SetEndAt(sp.End)
	}

	// Descriptions live on the raw records, not the spans.
	byID := make(map[string]store.Event, len(events))
	for _, ev := range events {
		byID[ev.ID] = ev
	}
	for _, ve := range cal.Events() {
		if ev, ok := byID[ve.Id()]; ok && ev.Description != "" {
			ve.SetDescription(ev.Description)
		}
	}

	if err := os.WriteFile(path, []byte(cal.Serialize()), 0o644); err != nil {
		return fmt.Errorf("write ics file: %w", err)
	}
	return nil
}
