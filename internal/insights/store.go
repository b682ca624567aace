package insights

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
)

// NewStore creates a new SnapshotStore.
func NewStore(db *sql.DB) SnapshotStore {
	return &store{db: db}
}

const snapshotColumns = `
	id, user_id, season_year, club_team, league_tournament,
	matches_played, minutes_played, goals_scored, assists,
	shots_on_target_percent, pass_accuracy_percent, key_passes,
	dribbles_completed, tackles_won, interceptions, duels_won_percent,
	cross_accuracy_percent, clean_sheets, saves_made, save_percent,
	yellow_cards, red_cards, changes_json, created_at, updated_at`

func (s *store) Save(snap *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var changesJSON any
	if len(snap.Changes) > 0 {
		data, err := json.Marshal(snap.Changes)
		if err != nil {
			return fmt.Errorf("failed to marshal changes: %w", err)
		}
		changesJSON = string(data)
	}

	_, err := s.db.Exec(`
		INSERT INTO performance_insights (`+snapshotColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		snap.ID, snap.UserID, snap.SeasonYear, snap.ClubTeam, snap.LeagueTournament,
		snap.MatchesPlayed, snap.MinutesPlayed, snap.GoalsScored, snap.Assists,
		snap.ShotsOnTargetPercent, snap.PassAccuracyPercent, snap.KeyPasses,
		snap.DribblesCompleted, snap.TacklesWon, snap.Interceptions, snap.DuelsWonPercent,
		snap.CrossAccuracyPercent, snap.CleanSheets, snap.SavesMade, snap.SavePercent,
		snap.YellowCards, snap.RedCards, changesJSON, nullableMillis(snap.CreatedAt), nullableMillis(snap.UpdatedAt),
	)
	if err != nil {
		log.Error("Failed to insert snapshot", "error", err, "userID", snap.UserID)
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}
	return nil
}

func (s *store) Latest(userID string) (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Ties on the effective timestamp resolve to the last inserted row.
	row := s.db.QueryRow(`
		SELECT `+snapshotColumns+`
		FROM performance_insights
		WHERE user_id = ?
		ORDER BY COALESCE(created_at, updated_at, 0) DESC, rowid DESC
		LIMIT 1
	`, userID)

	snap, err := scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return snap, nil
}

func (s *store) History(userID string) ([]*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT `+snapshotColumns+`
		FROM performance_insights
		WHERE user_id = ?
		ORDER BY COALESCE(created_at, updated_at, 0) ASC, rowid ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot history: %w", err)
	}
	defer rows.Close()

	var history []*Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			log.Error("Failed to scan snapshot row", "error", err)
			continue
		}
		history = append(history, snap)
	}
	return history, rows.Err()
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.Exec("DELETE FROM performance_insights"); err != nil {
		log.Error("Failed to clear performance_insights table", "error", err)
	}
}

// scanSnapshot reads one snapshot row from a row or rows scanner.
func scanSnapshot(scanner interface{ Scan(...any) error }) (*Snapshot, error) {
	var snap Snapshot
	var stats [17]sql.NullFloat64
	var changesJSON sql.NullString
	var createdAt, updatedAt sql.NullInt64

	err := scanner.Scan(
		&snap.ID, &snap.UserID, &snap.SeasonYear, &snap.ClubTeam, &snap.LeagueTournament,
		&stats[0], &stats[1], &stats[2], &stats[3], &stats[4], &stats[5], &stats[6],
		&stats[7], &stats[8], &stats[9], &stats[10], &stats[11], &stats[12], &stats[13],
		&stats[14], &stats[15], &stats[16],
		&changesJSON, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	for i, field := range StatFields {
		if stats[i].Valid {
			v := stats[i].Float64
			snap.Set(field, &v)
		}
	}
	if changesJSON.Valid && changesJSON.String != "" {
		if err := json.Unmarshal([]byte(changesJSON.String), &snap.Changes); err != nil {
			log.Error("Failed to unmarshal changes_json", "error", err, "snapshotID", snap.ID)
		}
	}
	snap.CreatedAt = createdAt.Int64
	snap.UpdatedAt = updatedAt.Int64

	return &snap, nil
}

// nullableMillis stores zero timestamps as NULL so the fallback resolution
// in Latest/History treats them as epoch zero.
func nullableMillis(ms int64) any {
	if ms == 0 {
		return nil
	}
	return ms
}
