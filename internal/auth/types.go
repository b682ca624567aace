package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/altplay/altplay/internal/user"
)

// Claims is the payload carried by a session token.
type Claims struct {
	Role user.Role `json:"role"`
	jwt.RegisteredClaims
}

// Service issues and verifies session tokens for platform users.
type Service struct {
	users    user.Store
	secret   []byte
	tokenTTL time.Duration
}
