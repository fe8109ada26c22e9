package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

func (s *Store) CreateAccount(email, passwordHash string) (*Account, error) {
	id := uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`INSERT INTO accounts (id, email, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		id, email, passwordHash, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert account: %w", err)
	}
	return s.GetAccount(id)
}

func (s *Store) GetAccount(id string) (*Account, error) {
	a := &Account{}
	var createdAt string
	err := s.db.QueryRow(
		`SELECT id, email, password_hash, created_at FROM accounts WHERE id = ?`, id,
	).Scan(&a.ID, &a.Email, &a.PasswordHash, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("get account %s: %w", id, err)
	}
	a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return a, nil
}

// GetAccountByEmail returns (nil, nil) when no account has that email.
func (s *Store) GetAccountByEmail(email string) (*Account, error) {
	a := &Account{}
	var createdAt string
	err := s.db.QueryRow(
		`SELECT id, email, password_hash, created_at FROM accounts WHERE email = ?`, email,
	).Scan(&a.ID, &a.Email, &a.PasswordHash, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get account by email: %w", err)
	}
	a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return a, nil
}
