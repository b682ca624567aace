package insights

import (
	"database/sql"
	"encoding/json"
	"strconv"
	"strings"
	"sync"
)

// StatLine holds the tracked numeric statistics of one season submission.
// A nil field means "not provided"; zero is a valid recorded value.
type StatLine struct {
	MatchesPlayed        *float64 `json:"matchesPlayed,omitempty"`
	MinutesPlayed        *float64 `json:"minutesPlayed,omitempty"`
	GoalsScored          *float64 `json:"goalsScored,omitempty"`
	Assists              *float64 `json:"assists,omitempty"`
	ShotsOnTargetPercent *float64 `json:"shotsOnTargetPercent,omitempty"`
	PassAccuracyPercent  *float64 `json:"passAccuracyPercent,omitempty"`
	KeyPasses            *float64 `json:"keyPasses,omitempty"`
	DribblesCompleted    *float64 `json:"dribblesCompleted,omitempty"`
	TacklesWon           *float64 `json:"tacklesWon,omitempty"`
	Interceptions        *float64 `json:"interceptions,omitempty"`
	DuelsWonPercent      *float64 `json:"duelsWonPercent,omitempty"`
	CrossAccuracyPercent *float64 `json:"crossAccuracyPercent,omitempty"`
	CleanSheets          *float64 `json:"cleanSheets,omitempty"`
	SavesMade            *float64 `json:"savesMade,omitempty"`
	SavePercent          *float64 `json:"savePercent,omitempty"`
	YellowCards          *float64 `json:"yellowCards,omitempty"`
	RedCards             *float64 `json:"redCards,omitempty"`
}

// StatFields is the closed set of tracked statistic names, in display order.
// The names double as document field names for backend compatibility.
var StatFields = []string{
	"matchesPlayed",
	"minutesPlayed",
	"goalsScored",
	"assists",
	"shotsOnTargetPercent",
	"passAccuracyPercent",
	"keyPasses",
	"dribblesCompleted",
	"tacklesWon",
	"interceptions",
	"duelsWonPercent",
	"crossAccuracyPercent",
	"cleanSheets",
	"savesMade",
	"savePercent",
	"yellowCards",
	"redCards",
}

// Value returns the named statistic, or nil for an unknown field name.
func (l *StatLine) Value(field string) *float64 {
	switch field {
	case "matchesPlayed":
		return l.MatchesPlayed
	case "minutesPlayed":
		return l.MinutesPlayed
	case "goalsScored":
		return l.GoalsScored
	case "assists":
		return l.Assists
	case "shotsOnTargetPercent":
		return l.ShotsOnTargetPercent
	case "passAccuracyPercent":
		return l.PassAccuracyPercent
	case "keyPasses":
		return l.KeyPasses
	case "dribblesCompleted":
		return l.DribblesCompleted
	case "tacklesWon":
		return l.TacklesWon
	case "interceptions":
		return l.Interceptions
	case "duelsWonPercent":
		return l.DuelsWonPercent
	case "crossAccuracyPercent":
		return l.CrossAccuracyPercent
	case "cleanSheets":
		return l.CleanSheets
	case "savesMade":
		return l.SavesMade
	case "savePercent":
		return l.SavePercent
	case "yellowCards":
		return l.YellowCards
	case "redCards":
		return l.RedCards
	}
	return nil
}

// Set assigns the named statistic. Unknown field names are ignored.
func (l *StatLine) Set(field string, v *float64) {
	switch field {
	case "matchesPlayed":
		l.MatchesPlayed = v
	case "minutesPlayed":
		l.MinutesPlayed = v
	case "goalsScored":
		l.GoalsScored = v
	case "assists":
		l.Assists = v
	case "shotsOnTargetPercent":
		l.ShotsOnTargetPercent = v
	case "passAccuracyPercent":
		l.PassAccuracyPercent = v
	case "keyPasses":
		l.KeyPasses = v
	case "dribblesCompleted":
		l.DribblesCompleted = v
	case "tacklesWon":
		l.TacklesWon = v
	case "interceptions":
		l.Interceptions = v
	case "duelsWonPercent":
		l.DuelsWonPercent = v
	case "crossAccuracyPercent":
		l.CrossAccuracyPercent = v
	case "cleanSheets":
		l.CleanSheets = v
	case "savesMade":
		l.SavesMade = v
	case "savePercent":
		l.SavePercent = v
	case "yellowCards":
		l.YellowCards = v
	case "redCards":
		l.RedCards = v
	}
}

// FieldChange records a tracked statistic's old vs new value between
// consecutive snapshots for the same owner.
type FieldChange struct {
	Old       float64 `json:"old" msgpack:"old"`
	New       float64 `json:"new" msgpack:"new"`
	Timestamp int64   `json:"timestamp" msgpack:"timestamp"`
}

// Snapshot is one submitted set of a player's season statistics. Snapshots are
// append-only: every save produces a new document, never an update.
type Snapshot struct {
	ID               string `json:"id"`
	UserID           string `json:"userId"`
	SeasonYear       string `json:"seasonYear"`
	ClubTeam         string `json:"clubTeam"`
	LeagueTournament string `json:"leagueTournament"`
	StatLine
	Changes   map[string]FieldChange `json:"changes,omitempty"`
	CreatedAt int64                  `json:"createdAt"`
	UpdatedAt int64                  `json:"updatedAt"`
}

// Timestamp is the snapshot's effective point in time: creation time when
// recorded, falling back to the update time, then to epoch zero.
func (s *Snapshot) Timestamp() int64 {
	if s.CreatedAt != 0 {
		return s.CreatedAt
	}
	return s.UpdatedAt
}

// Submission is a statistics form as entered by a player. String inputs are
// converted to numbers at the HTTP boundary; unparseable numbers arrive nil.
type Submission struct {
	SeasonYear       string `json:"seasonYear"`
	ClubTeam         string `json:"clubTeam"`
	LeagueTournament string `json:"leagueTournament"`
	StatLine
}

// UnmarshalJSON decodes a form submission leniently: each tracked statistic
// accepts a number or a numeric string, and anything that does not parse as a
// number is treated as not provided rather than rejecting the whole form.
func (s *Submission) UnmarshalJSON(data []byte) error {
	var ident struct {
		SeasonYear       string `json:"seasonYear"`
		ClubTeam         string `json:"clubTeam"`
		LeagueTournament string `json:"leagueTournament"`
	}
	if err := json.Unmarshal(data, &ident); err != nil {
		return err
	}
	s.SeasonYear = ident.SeasonYear
	s.ClubTeam = ident.ClubTeam
	s.LeagueTournament = ident.LeagueTournament

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, field := range StatFields {
		s.Set(field, parseStat(raw[field]))
	}
	return nil
}

// parseStat converts one raw statistic value to a number, or nil when the
// value is missing, null, or not parseable as a number.
func parseStat(raw json.RawMessage) *float64 {
	if len(raw) == 0 {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return &f
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil {
			return &parsed
		}
	}
	return nil
}

// store handles all database operations for performance snapshots.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}
