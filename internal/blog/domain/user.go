package domain

import (
	"time"

	"github.com/aussiebroadwan/scribe/pkg/idx"
)

// User is created on registration and never mutated afterwards.
type User struct {
	ID           idx.ID
	Username     string
	Email        string
	PasswordHash string // argon2id PHC encoded, never leaves the service layer
	CreatedAt    time.Time
}
