package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/scribe/internal/blog/domain"
	"github.com/aussiebroadwan/scribe/pkg/idx"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this and expose sub-repositories to keep concerns tidy and
// testable. Every method issues a single statement, so no transactions are
// exposed.
type Store interface {
	Users() Users
	Posts() Posts

	ApplyMigrations() error

	// Close releases the underlying connection pool.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the username or email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByEmail is used during login.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
}

// UpdatePostParams are the fields an author may change. UpdatedAt is a
// lower bound; drivers always move updated_at strictly forward.
type UpdatePostParams struct {
	ID        idx.ID
	AuthorID  idx.ID
	Title     string
	Content   string
	UpdatedAt time.Time
}

type Posts interface {
	// CreatePost inserts a post. Returns ErrNotFound if the author does not exist.
	CreatePost(ctx context.Context, p domain.Post) error

	// GetPost returns any post by id regardless of author.
	GetPost(ctx context.Context, id idx.ID) (domain.Post, error)

	// ListPostsByAuthor returns the author's posts, newest created first.
	ListPostsByAuthor(ctx context.Context, authorID idx.ID) ([]domain.Post, error)

	// UpdatePost rewrites a post matching both id and author in one
	// statement. Returns ErrNotFound when nothing matched, whether the post
	// is missing or owned by someone else.
	UpdatePost(ctx context.Context, arg UpdatePostParams) (domain.Post, error)

	// DeletePost removes a post matching both id and author in one
	// statement, with the same ErrNotFound semantics as UpdatePost.
	DeletePost(ctx context.Context, id, authorID idx.ID) error
}
