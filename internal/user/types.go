package user

import (
	"database/sql"
	"sync"
)

// Role controls which parts of the platform a user can touch.
type Role string

const (
	RolePlayer   Role = "player"
	RoleInvestor Role = "investor"
	RoleAdmin    Role = "admin"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RolePlayer, RoleInvestor, RoleAdmin:
		return true
	}
	return false
}

// User is an authenticated account on the platform.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	PasswordHash string `json:"-"`
	CreatedAt    int64  `json:"created_at"`
}

// store handles all database operations for users.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}
