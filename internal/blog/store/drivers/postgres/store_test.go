package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aussiebroadwan/scribe/internal/blog/domain"
	"github.com/aussiebroadwan/scribe/internal/blog/store"
	"github.com/aussiebroadwan/scribe/pkg/idx"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return New(db), mock
}

var postRowColumns = []string{"id", "title", "content", "author_id", "created_at", "updated_at"}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	u := domain.User{
		ID:           idx.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		CreatedAt:    now,
	}

	t.Run("inserts", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectExec(regexp.QuoteMeta(createUser)).
			WithArgs(u.ID.String(), "alice", "alice@example.com", "hash", now).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.Users().CreateUser(ctx, u))
	})

	t.Run("unique violation", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectExec(regexp.QuoteMeta(createUser)).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		err := s.Users().CreateUser(ctx, u)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		s, mock := newMockStore(t)
		boom := errors.New("db down")
		mock.ExpectExec(regexp.QuoteMeta(createUser)).WillReturnError(boom)

		err := s.Users().CreateUser(ctx, u)
		require.ErrorIs(t, err, boom)
		require.NotErrorIs(t, err, store.ErrAlreadyExists)
	})
}

func TestGetUserByEmail(t *testing.T) {
	ctx := context.Background()
	id := idx.New()
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		s, mock := newMockStore(t)
		rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}).
			AddRow(id.String(), "alice", "alice@example.com", "hash", created)
		mock.ExpectQuery(regexp.QuoteMeta(getUserByEmail)).
			WithArgs("alice@example.com").
			WillReturnRows(rows)

		u, err := s.Users().GetUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, id, u.ID)
		require.Equal(t, "alice", u.Username)
		require.Equal(t, created, u.CreatedAt)
	})

	t.Run("missing", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(getUserByEmail)).
			WithArgs("nobody@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}))

		_, err := s.Users().GetUserByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestCreatePost(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	p := domain.Post{
		ID:        idx.New(),
		Title:     "hello",
		Content:   "world",
		AuthorID:  idx.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	t.Run("inserts", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectExec(regexp.QuoteMeta(createPost)).
			WithArgs(p.ID.String(), "hello", "world", p.AuthorID.String(), now, now).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.Posts().CreatePost(ctx, p))
	})

	t.Run("unknown author", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectExec(regexp.QuoteMeta(createPost)).
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "posts_author_id_fkey"})

		err := s.Posts().CreatePost(ctx, p)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestGetPost(t *testing.T) {
	ctx := context.Background()
	id, author := idx.New(), idx.New()
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(getPost)).
			WithArgs(id.String()).
			WillReturnRows(sqlmock.NewRows(postRowColumns).
				AddRow(id.String(), "t", "c", author.String(), at, at))

		p, err := s.Posts().GetPost(ctx, id)
		require.NoError(t, err)
		require.Equal(t, domain.Post{
			ID: id, Title: "t", Content: "c", AuthorID: author, CreatedAt: at, UpdatedAt: at,
		}, p)
	})

	t.Run("missing", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(getPost)).
			WithArgs(id.String()).
			WillReturnRows(sqlmock.NewRows(postRowColumns))

		_, err := s.Posts().GetPost(ctx, id)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestListPostsByAuthor(t *testing.T) {
	ctx := context.Background()
	author := idx.New()
	older := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)
	a, b := idx.NewAt(older), idx.NewAt(newer)

	t.Run("returns rows in query order", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(listPostsByAuthor)).
			WithArgs(author.String()).
			WillReturnRows(sqlmock.NewRows(postRowColumns).
				AddRow(b.String(), "b", "", author.String(), newer, newer).
				AddRow(a.String(), "a", "", author.String(), older, older))

		posts, err := s.Posts().ListPostsByAuthor(ctx, author)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		require.Equal(t, b, posts[0].ID)
		require.Equal(t, a, posts[1].ID)
	})

	t.Run("empty is a non-nil slice", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(listPostsByAuthor)).
			WithArgs(author.String()).
			WillReturnRows(sqlmock.NewRows(postRowColumns))

		posts, err := s.Posts().ListPostsByAuthor(ctx, author)
		require.NoError(t, err)
		require.NotNil(t, posts)
		require.Empty(t, posts)
	})
}

func TestUpdatePost(t *testing.T) {
	ctx := context.Background()
	id, author := idx.New(), idx.New()
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	updated := created.Add(time.Minute)

	arg := store.UpdatePostParams{
		ID:        id,
		AuthorID:  author,
		Title:     "new",
		Content:   "body",
		UpdatedAt: updated,
	}

	t.Run("matches id and author", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(updatePost)).
			WithArgs("new", "body", updated, id.String(), author.String()).
			WillReturnRows(sqlmock.NewRows(postRowColumns).
				AddRow(id.String(), "new", "body", author.String(), created, updated))

		p, err := s.Posts().UpdatePost(ctx, arg)
		require.NoError(t, err)
		require.Equal(t, "new", p.Title)
		require.Equal(t, updated, p.UpdatedAt)
		require.Equal(t, created, p.CreatedAt)
	})

	t.Run("no match is not found", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(updatePost)).
			WillReturnRows(sqlmock.NewRows(postRowColumns))

		_, err := s.Posts().UpdatePost(ctx, arg)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestDeletePost(t *testing.T) {
	ctx := context.Background()
	id, author := idx.New(), idx.New()

	t.Run("deletes", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectExec(regexp.QuoteMeta(deletePost)).
			WithArgs(id.String(), author.String()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.Posts().DeletePost(ctx, id, author))
	})

	t.Run("nothing deleted", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectExec(regexp.QuoteMeta(deletePost)).
			WithArgs(id.String(), author.String()).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := s.Posts().DeletePost(ctx, id, author)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestPing(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing()
	require.NoError(t, New(db).Ping(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
