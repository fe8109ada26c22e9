package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// CreateEvent inserts a new event. The store assigns the id and the
// creation timestamp; createdBy is the owning user and is never changed
// afterwards. Subscribers receive a fresh snapshot on success.
func (s *Store) CreateEvent(f EventFields, createdBy string) (*Event, error) {
	id := uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`INSERT INTO events (id, title, description, date, time, color, created_by, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, f.Title, f.Description, f.Date, f.Time, f.Color, createdBy, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	ev, err := s.GetEvent(id)
	if err != nil {
		return nil, err
	}
	s.publish()
	return ev, nil
}

// UpdateEvent replaces the mutable fields of an existing event, leaving
// id, created_by, and created_at untouched.
func (s *Store) UpdateEvent(id string, f EventFields) error {
	res, err := s.db.Exec(
		`UPDATE events SET title = ?, description = ?, date = ?, time = ?, color = ? WHERE id = ?`,
		f.Title, f.Description, f.Date, f.Time, f.Color, id,
	)
	if err != nil {
		return fmt.Errorf("update event %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("update event %s: not found", id)
	}
	s.publish()
	return nil
}

// DeleteEvent removes an event. Deleting an id that no longer exists is
// not an error; no snapshot is published in that case.
func (s *Store) DeleteEvent(id string) error {
	res, err := s.db.Exec(`DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete event %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		s.publish()
	}
	return nil
}

func (s *Store) GetEvent(id string) (*Event, error) {
	e := &Event{}
	var createdAt string
	err := s.db.QueryRow(
		`SELECT id, title, description, date, time, color, created_by, created_at
		 FROM events WHERE id = ?`, id,
	).Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Time, &e.Color, &e.CreatedBy, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("get event %s: %w", id, err)
	}
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return e, nil
}

// ListEvents returns the complete collection ordered by creation time,
// newest first. rowid breaks ties between events created within the
// same second.
func (s *Store) ListEvents() ([]Event, error) {
	rows, err := s.db.Query(
		`SELECT id, title, description, date, time, color, created_by, created_at
		 FROM events ORDER BY created_at DESC, rowid DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Time, &e.Color, &e.CreatedBy, &createdAt); err != nil {
			return nil, err
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		events = append(events, e)
	}
	return events, rows.Err()
}

// Subscribe registers fn with the snapshot hub. fn is invoked
// immediately with the current collection, then after every successful
// mutation, always with the complete current set of records — never a
// diff. The returned function stops further callbacks and is safe to
// call more than once.
func (s *Store) Subscribe(fn func([]Event)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	if events, err := s.ListEvents(); err == nil {
		fn(events)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

func (s *Store) publish() {
	events, err := s.ListEvents()
	if err != nil {
		return
	}
	s.mu.Lock()
	fns := make([]func([]Event), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(events)
	}
}
