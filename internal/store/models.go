package store

import "time"

// Event is a stored calendar event. Date and Time keep their stored
// string forms; decoding them into instants belongs to the agenda
// package. ID, CreatedBy, and CreatedAt are set once at creation and
// never mutated; CreatedAt exists only for ordering.
type Event struct {
	ID          string
	Title       string
	Description string
	Date        string // calendar-day key, YYYY-MM-DD
	Time        string // 12-hour label, e.g. "09:00 AM"
	Color       string
	CreatedBy   string
	CreatedAt   time.Time
}

// EventFields carries the mutable fields of an event for create and
// update calls.
type EventFields struct {
	Title       string
	Description string
	Date        string
	Time        string
	Color       string
}

type Account struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
