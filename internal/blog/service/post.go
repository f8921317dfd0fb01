package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/scribe/internal/blog/domain"
	"github.com/aussiebroadwan/scribe/internal/blog/store"
	"github.com/aussiebroadwan/scribe/pkg/idx"
	"github.com/aussiebroadwan/scribe/pkg/slogx"
)

// PostService owns blog posts. Every mutating call is scoped to the caller,
// who is always the author.
type PostService struct {
	Store store.Store

	// Now overrides the clock, mostly for tests.
	Now func() time.Time
}

func (s *PostService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC().Truncate(time.Microsecond)
	}
	return time.Now().UTC().Truncate(time.Microsecond)
}

func parseCaller(callerID string) (idx.ID, error) {
	id, err := idx.Parse(callerID)
	if err != nil {
		return idx.Zero, ErrInvalidUserID
	}
	return id, nil
}

func parsePostID(postID string) (idx.ID, error) {
	id, err := idx.Parse(postID)
	if err != nil {
		return idx.Zero, ErrInvalidPostID
	}
	return id, nil
}

// Create stores a new post authored by the caller.
func (s *PostService) Create(ctx context.Context, callerID, title, content string) (domain.Post, error) {
	author, err := parseCaller(callerID)
	if err != nil {
		return domain.Post{}, err
	}

	now := s.now()
	post := domain.Post{
		ID:        idx.NewAt(now),
		Title:     title,
		Content:   content,
		AuthorID:  author,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Store.Posts().CreatePost(ctx, post); err != nil {
		// The token outlived its user.
		if errors.Is(err, store.ErrNotFound) {
			return domain.Post{}, ErrUnauthorized
		}
		return domain.Post{}, storageError("create post", err)
	}

	slogx.FromContext(ctx).Info("post created",
		slog.String("post_id", post.ID.String()),
		slog.String("author_id", author.String()),
	)
	return post, nil
}

// Get returns any post by id. Reads are public.
func (s *PostService) Get(ctx context.Context, postID string) (domain.Post, error) {
	id, err := parsePostID(postID)
	if err != nil {
		return domain.Post{}, err
	}

	post, err := s.Store.Posts().GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Post{}, ErrNotFound
		}
		return domain.Post{}, storageError("get post", err)
	}
	return post, nil
}

// ListMine returns the caller's posts, newest first.
func (s *PostService) ListMine(ctx context.Context, callerID string) ([]domain.Post, error) {
	author, err := parseCaller(callerID)
	if err != nil {
		return nil, err
	}

	posts, err := s.Store.Posts().ListPostsByAuthor(ctx, author)
	if err != nil {
		return nil, storageError("list posts", err)
	}
	return posts, nil
}

// Update rewrites title and content of a post the caller owns. A post owned
// by someone else reports ErrNotFound, same as a missing one.
func (s *PostService) Update(ctx context.Context, callerID, postID, title, content string) (domain.Post, error) {
	author, err := parseCaller(callerID)
	if err != nil {
		return domain.Post{}, err
	}
	id, err := parsePostID(postID)
	if err != nil {
		return domain.Post{}, err
	}

	post, err := s.Store.Posts().UpdatePost(ctx, store.UpdatePostParams{
		ID:        id,
		AuthorID:  author,
		Title:     title,
		Content:   content,
		UpdatedAt: s.now(),
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Post{}, ErrNotFound
		}
		return domain.Post{}, storageError("update post", err)
	}

	slogx.FromContext(ctx).Info("post updated", slog.String("post_id", id.String()))
	return post, nil
}

// Delete removes a post the caller owns, with the same ownership rules as
// Update.
func (s *PostService) Delete(ctx context.Context, callerID, postID string) error {
	author, err := parseCaller(callerID)
	if err != nil {
		return err
	}
	id, err := parsePostID(postID)
	if err != nil {
		return err
	}

	if err := s.Store.Posts().DeletePost(ctx, id, author); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return storageError("delete post", err)
	}

	slogx.FromContext(ctx).Info("post deleted", slog.String("post_id", id.String()))
	return nil
}
