package investment

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
)

// New creates a new investment Store.
func New(db *sql.DB) Store {
	return &store{db: db}
}

func (s *store) Create(rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO investments (id, investor_id, player_id, player_name, amount, invested_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.InvestorID, rec.PlayerID, rec.PlayerName, rec.Amount, rec.InvestedAt)
	if err != nil {
		log.Error("Failed to insert investment", "error", err, "investorID", rec.InvestorID, "playerID", rec.PlayerID)
		return fmt.Errorf("failed to insert investment: %w", err)
	}
	return nil
}

func (s *store) ListByInvestor(investorID string) ([]Record, error) {
	return s.list("WHERE investor_id = ?", investorID)
}

func (s *store) ListByPlayer(playerID string) ([]Record, error) {
	return s.list("WHERE player_id = ?", playerID)
}

func (s *store) ListAll() ([]Record, error) {
	return s.list("")
}

func (s *store) list(where string, args ...any) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, investor_id, player_id, player_name, amount, invested_at
		FROM investments `+where+` ORDER BY invested_at DESC
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query investments: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var amount sql.NullFloat64
		if err := rows.Scan(&rec.ID, &rec.InvestorID, &rec.PlayerID, &rec.PlayerName, &amount, &rec.InvestedAt); err != nil {
			log.Error("Failed to scan investment row", "error", err)
			continue
		}
		if amount.Valid {
			v := amount.Float64
			rec.Amount = &v
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *store) HasInvested(investorID, playerID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var exists bool
	err := s.db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM investments WHERE investor_id = ? AND player_id = ?)",
		investorID, playerID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check investment: %w", err)
	}
	return exists, nil
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.Exec("DELETE FROM investments"); err != nil {
		log.Error("Failed to clear investments table", "error", err)
	}
}
