package agenda

import (
	"errors"
	"time"

	"github.com/GURROLAG/appAgenda/internal/store"
)

// Palette is the fixed set of event colors. The first entry is the
// default for records stored without one.
var Palette = []string{"#1e90ff", "#ff6347", "#32cd32", "#ffa500", "#800080"}

// DefaultTitle labels events stored without a title.
const DefaultTitle = "Evento"

// SpanDuration is the fixed length of every calendar span. Events store
// no end time; one hour is the data model, not a placeholder.
const SpanDuration = time.Hour

// Span is the display-ready form of a stored event: concrete start/end
// instants plus the label and color the calendar renders.
type Span struct {
	ID    string
	Title string
	Start time.Time
	End   time.Time
	Color string
}

var errNoDate = errors.New("event has no date")

// DecodeSpan is the single validating decode step between stored records
// and the calendar. It fails only when the date is missing or
// unparseable; a bad time string degrades to local midnight.
func DecodeSpan(ev store.Event) (Span, error) {
	if ev.Date == "" {
		return Span{}, errNoDate
	}
	start, err := ParseDayKey(ev.Date)
	if err != nil {
		return Span{}, err
	}

	if ev.Time != "" {
		if h, m, err := ParseClock(ev.Time); err == nil {
			start = time.Date(start.Year(), start.Month(), start.Day(), h, m, 0, 0, start.Location())
		}
	}

	title := ev.Title
	if title == "" {
		title = DefaultTitle
	}

	return Span{
		ID:    ev.ID,
		Title: title,
		Start: start,
		End:   start.Add(SpanDuration),
		Color: NormalizeColor(ev.Color),
	}, nil
}

// Project derives calendar spans from a full snapshot, dropping records
// that fail to decode. Output order follows the snapshot; callers that
// need a stable order sort themselves.
func Project(events []store.Event) []Span {
	spans := make([]Span, 0, len(events))
	for _, ev := range events {
		sp, err := DecodeSpan(ev)
		if err != nil {
			continue
		}
		spans = append(spans, sp)
	}
	return spans
}

// NormalizeColor maps anything outside the palette to the default entry.
func NormalizeColor(c string) string {
	for _, p := range Palette {
		if c == p {
			return c
		}
	}
	return Palette[0]
}
