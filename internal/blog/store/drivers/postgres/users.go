package postgres

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/scribe/internal/blog/domain"
)

type usersRepo struct {
	db *sql.DB
}

const createUser = `
INSERT INTO users (id, username, email, password_hash, created_at)
VALUES ($1, $2, $3, $4, $5)`

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, createUser,
		u.ID,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.CreatedAt.UTC(),
	)
	return mapConstraint(err)
}

const getUserByEmail = `
SELECT id, username, email, password_hash, created_at
FROM users
WHERE email = $1`

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	var u domain.User
	err := r.db.QueryRowContext(ctx, getUserByEmail, email).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return u, nil
}
