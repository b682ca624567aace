package investment

import (
	"database/sql"
	"sync"
)

// Record links an investor to a player. Records are append-only and
// immutable; there is no cancellation or refund path.
type Record struct {
	ID         string   `json:"id" msgpack:"id"`
	InvestorID string   `json:"investorId" msgpack:"investor_id"`
	PlayerID   string   `json:"playerId" msgpack:"player_id"`
	// PlayerName is denormalized from the player profile at investment time.
	PlayerName string   `json:"playerName" msgpack:"player_name"`
	Amount     *float64 `json:"investmentAmount,omitempty" msgpack:"amount"`
	InvestedAt int64    `json:"investedAt" msgpack:"invested_at"`
}

// Backer is an investor of a player, hydrated with account details for the
// player's "your investors" view.
type Backer struct {
	InvestorID string   `json:"investorId"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Amount     *float64 `json:"amount,omitempty"`
	InvestedAt int64    `json:"investedAt"`
}

// AggregateStats are the platform-wide investment counts shown to admins.
type AggregateStats struct {
	Total           int `json:"total"`
	UniqueInvestors int `json:"uniqueInvestors"`
	UniquePlayers   int `json:"uniquePlayers"`
}

// store handles all database operations for investment records.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}
