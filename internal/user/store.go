package user

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// ErrNotFound is returned when no user matches the lookup.
var ErrNotFound = errors.New("user not found")

// New creates a new user Store.
func New(db *sql.DB) Store {
	return &store{db: db}
}

func (s *store) Create(u *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO users (id, name, email, role, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, u.ID, u.Name, u.Email, u.Role, u.PasswordHash, u.CreatedAt)
	if err != nil {
		log.Error("Failed to insert user", "error", err, "email", u.Email)
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (s *store) Get(id string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scanUser(s.db.QueryRow(`
		SELECT id, name, email, role, password_hash, created_at FROM users WHERE id = ?
	`, id))
}

func (s *store) GetByEmail(email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scanUser(s.db.QueryRow(`
		SELECT id, name, email, role, password_hash, created_at FROM users WHERE email = ?
	`, email))
}

func (s *store) scanUser(row *sql.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &u, nil
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.Exec("DELETE FROM users"); err != nil {
		log.Error("Failed to clear users table", "error", err)
	}
}
