package blog_test

import (
	"testing"

	"github.com/aussiebroadwan/scribe/pkg/blogsdk"
	"github.com/stretchr/testify/require"
)

// TestPostLifecycle drives create, read, list, update and delete against Postgres.
func TestPostLifecycle(t *testing.T) {
	client := setupBlogService(t)
	session, _ := loginUser(t, client)

	first, err := session.CreateBlog(t.Context(), "First", "one")
	require.NoError(t, err)
	require.Equal(t, first.CreatedAt, first.UpdatedAt)

	second, err := session.CreateBlog(t.Context(), "Second", "")
	require.NoError(t, err)

	got, err := client.GetBlog(t.Context(), first.ID)
	require.NoError(t, err)
	require.Equal(t, first.ID, got.ID)
	require.Equal(t, "one", got.Content)
	require.True(t, first.CreatedAt.Equal(got.CreatedAt))

	mine, err := session.ListMyBlogs(t.Context())
	require.NoError(t, err)
	require.Len(t, mine, 2)
	require.Equal(t, second.ID, mine[0].ID)
	require.Equal(t, first.ID, mine[1].ID)

	updated, err := session.UpdateBlog(t.Context(), first.ID, "First, edited", "uno")
	require.NoError(t, err)
	require.Equal(t, "First, edited", updated.Title)
	require.True(t, updated.UpdatedAt.After(first.UpdatedAt))
	require.True(t, updated.CreatedAt.Equal(first.CreatedAt))

	require.NoError(t, session.DeleteBlog(t.Context(), first.ID))

	_, err = client.GetBlog(t.Context(), first.ID)
	require.True(t, blogsdk.IsNotFound(err), "deleted post: %v", err)

	mine, err = session.ListMyBlogs(t.Context())
	require.NoError(t, err)
	require.Len(t, mine, 1)
}

// TestPostsAreAuthorScoped verifies a user cannot see, edit or delete another user's posts
// through the authenticated routes.
func TestPostsAreAuthorScoped(t *testing.T) {
	client := setupBlogService(t)
	alice, _ := loginUser(t, client)
	bob, _ := loginUser(t, client)

	post, err := alice.CreateBlog(t.Context(), "Alice's", "private-ish")
	require.NoError(t, err)

	bobs, err := bob.ListMyBlogs(t.Context())
	require.NoError(t, err)
	require.Empty(t, bobs)

	_, err = bob.UpdateBlog(t.Context(), post.ID, "hijacked", "")
	require.True(t, blogsdk.IsNotFound(err), "foreign update: %v", err)

	err = bob.DeleteBlog(t.Context(), post.ID)
	require.True(t, blogsdk.IsNotFound(err), "foreign delete: %v", err)

	got, err := client.GetBlog(t.Context(), post.ID)
	require.NoError(t, err)
	require.Equal(t, "Alice's", got.Title)
}

// TestPostValidation verifies malformed ids and missing titles are rejected.
func TestPostValidation(t *testing.T) {
	client := setupBlogService(t)
	session, _ := loginUser(t, client)

	_, err := session.CreateBlog(t.Context(), "", "no title")
	require.True(t, blogsdk.IsBadRequest(err), "missing title: %v", err)

	_, err = client.GetBlog(t.Context(), "not-a-ulid")
	require.True(t, blogsdk.IsBadRequest(err), "bad id: %v", err)

	_, err = session.UpdateBlog(t.Context(), "not-a-ulid", "t", "c")
	require.True(t, blogsdk.IsBadRequest(err), "bad id on update: %v", err)
}
