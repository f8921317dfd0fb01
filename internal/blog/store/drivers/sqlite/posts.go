package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/scribe/internal/blog/domain"
	"github.com/aussiebroadwan/scribe/internal/blog/store"
	"github.com/aussiebroadwan/scribe/pkg/idx"
)

type postsRepo struct {
	db *sql.DB
}

const postColumns = `id, title, content, author_id, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (domain.Post, error) {
	var (
		p                domain.Post
		created, updated int64
	)
	if err := row.Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID, &created, &updated); err != nil {
		return domain.Post{}, err
	}
	p.CreatedAt = fromMicros(created)
	p.UpdatedAt = fromMicros(updated)
	return p, nil
}

const createPost = `
INSERT INTO posts (` + postColumns + `)
VALUES (?, ?, ?, ?, ?, ?)`

func (r *postsRepo) CreatePost(ctx context.Context, p domain.Post) error {
	_, err := r.db.ExecContext(ctx, createPost,
		p.ID,
		p.Title,
		p.Content,
		p.AuthorID,
		toMicros(p.CreatedAt),
		toMicros(p.UpdatedAt),
	)
	return mapConstraint(err)
}

const getPost = `SELECT ` + postColumns + ` FROM posts WHERE id = ?`

func (r *postsRepo) GetPost(ctx context.Context, id idx.ID) (domain.Post, error) {
	p, err := scanPost(r.db.QueryRowContext(ctx, getPost, id))
	if err != nil {
		return domain.Post{}, mapNotFound(err)
	}
	return p, nil
}

const listPostsByAuthor = `
SELECT ` + postColumns + `
FROM posts
WHERE author_id = ?
ORDER BY created_at DESC, id DESC`

func (r *postsRepo) ListPostsByAuthor(ctx context.Context, authorID idx.ID) ([]domain.Post, error) {
	rows, err := r.db.QueryContext(ctx, listPostsByAuthor, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]domain.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// updated_at moves to the given time, or one microsecond past its current
// value if the clock has not advanced far enough.
const updatePost = `
UPDATE posts
SET title = ?, content = ?, updated_at = MAX(?, updated_at + 1)
WHERE id = ? AND author_id = ?
RETURNING ` + postColumns

func (r *postsRepo) UpdatePost(ctx context.Context, arg store.UpdatePostParams) (domain.Post, error) {
	row := r.db.QueryRowContext(ctx, updatePost,
		arg.Title,
		arg.Content,
		toMicros(arg.UpdatedAt),
		arg.ID,
		arg.AuthorID,
	)
	p, err := scanPost(row)
	if err != nil {
		return domain.Post{}, mapNotFound(err)
	}
	return p, nil
}

const deletePost = `DELETE FROM posts WHERE id = ? AND author_id = ?`

func (r *postsRepo) DeletePost(ctx context.Context, id, authorID idx.ID) error {
	res, err := r.db.ExecContext(ctx, deletePost, id, authorID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
