package player

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// ErrNotFound is returned when no profile matches the lookup.
var ErrNotFound = errors.New("player profile not found")

// New creates a new player Store.
func New(db *sql.DB) Store {
	return &store{db: db}
}

const profileColumns = `
	id, user_id, full_name, dob, nationality, city, phone, email, gender,
	primary_position, secondary_position, height, weight, current_club,
	experience, jersey_number, upi_link, youtube_url, investment_purpose,
	profile_photo, created_at`

// Upsert inserts the profile or, when the owner already registered one,
// replaces every field except the creation timestamp.
func (s *store) Upsert(p *Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO players (`+profileColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			full_name = excluded.full_name,
			dob = excluded.dob,
			nationality = excluded.nationality,
			city = excluded.city,
			phone = excluded.phone,
			email = excluded.email,
			gender = excluded.gender,
			primary_position = excluded.primary_position,
			secondary_position = excluded.secondary_position,
			height = excluded.height,
			weight = excluded.weight,
			current_club = excluded.current_club,
			experience = excluded.experience,
			jersey_number = excluded.jersey_number,
			upi_link = excluded.upi_link,
			youtube_url = excluded.youtube_url,
			investment_purpose = excluded.investment_purpose,
			profile_photo = excluded.profile_photo;
	`,
		p.ID, p.UserID, p.FullName, p.DOB, p.Nationality, p.City, p.Phone, p.Email, p.Gender,
		p.PrimaryPosition, p.SecondaryPosition, p.Height, p.Weight, p.CurrentClub,
		p.Experience, p.JerseyNumber, p.UPILink, p.YouTubeURL, p.InvestmentPurpose,
		p.ProfilePhoto, p.CreatedAt,
	)
	if err != nil {
		log.Error("Failed to upsert player profile", "error", err, "userID", p.UserID)
		return fmt.Errorf("failed to upsert player profile: %w", err)
	}
	return nil
}

func (s *store) Get(id string) (*Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return scanProfile(s.db.QueryRow(`SELECT `+profileColumns+` FROM players WHERE id = ?`, id))
}

func (s *store) GetByOwner(userID string) (*Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return scanProfile(s.db.QueryRow(`SELECT `+profileColumns+` FROM players WHERE user_id = ?`, userID))
}

func (s *store) List() ([]Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`SELECT ` + profileColumns + ` FROM players ORDER BY full_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

func (s *store) SetPhoto(userID, photoURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("UPDATE players SET profile_photo = ? WHERE user_id = ?", photoURL, userID)
	if err != nil {
		return fmt.Errorf("failed to set profile photo: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.Exec("DELETE FROM players"); err != nil {
		log.Error("Failed to clear players table", "error", err)
	}
}

func scanProfile(scanner interface{ Scan(...any) error }) (*Profile, error) {
	var p Profile
	err := scanner.Scan(
		&p.ID, &p.UserID, &p.FullName, &p.DOB, &p.Nationality, &p.City, &p.Phone, &p.Email, &p.Gender,
		&p.PrimaryPosition, &p.SecondaryPosition, &p.Height, &p.Weight, &p.CurrentClub,
		&p.Experience, &p.JerseyNumber, &p.UPILink, &p.YouTubeURL, &p.InvestmentPurpose,
		&p.ProfilePhoto, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan player profile: %w", err)
	}
	return &p, nil
}
