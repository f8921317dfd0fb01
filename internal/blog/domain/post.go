package domain

import (
	"time"

	"github.com/aussiebroadwan/scribe/pkg/idx"
)

type Post struct {
	ID        idx.ID
	Title     string
	Content   string
	AuthorID  idx.ID // Foreign key to users table
	CreatedAt time.Time
	UpdatedAt time.Time
}
