package player

import (
	"database/sql"
	"sync"
)

// Profile is a player's registration document. One profile per player-role
// user, keyed by the owning account.
type Profile struct {
	ID                string `json:"id"`
	UserID            string `json:"userId"`
	FullName          string `json:"fullName"`
	DOB               string `json:"dob,omitempty"`
	Nationality       string `json:"nationality,omitempty"`
	City              string `json:"city,omitempty"`
	Phone             string `json:"phone,omitempty"`
	Email             string `json:"email,omitempty"`
	Gender            string `json:"gender,omitempty"`
	PrimaryPosition   string `json:"primaryPosition,omitempty"`
	SecondaryPosition string `json:"secondaryPosition,omitempty"`
	Height            string `json:"height,omitempty"`
	Weight            string `json:"weight,omitempty"`
	CurrentClub       string `json:"currentClub,omitempty"`
	Experience        string `json:"experience,omitempty"`
	JerseyNumber      string `json:"jerseyNumber,omitempty"`
	UPILink           string `json:"upiLink,omitempty"`
	YouTubeURL        string `json:"youtubeUrl,omitempty"`
	InvestmentPurpose string `json:"investmentPurpose,omitempty"`
	ProfilePhoto      string `json:"profilePhoto,omitempty"`
	CreatedAt         int64  `json:"createdAt"`
}

// store handles all database operations for player profiles.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}
