package blog_test

import (
	"testing"

	"github.com/aussiebroadwan/scribe/pkg/blogsdk"
	"github.com/stretchr/testify/require"
)

// TestRegisterDuplicates verifies username and email are each unique.
func TestRegisterDuplicates(t *testing.T) {
	client := setupBlogService(t)
	u := registerUser(t, client)

	_, err := client.Register(t.Context(), blogsdk.RegisterRequest{
		Username: u.Username,
		Email:    "other-" + u.Email,
		Password: testPassword,
	})
	require.True(t, blogsdk.IsConflict(err), "duplicate username: %v", err)

	_, err = client.Register(t.Context(), blogsdk.RegisterRequest{
		Username: "other-" + u.Username,
		Email:    u.Email,
		Password: testPassword,
	})
	require.True(t, blogsdk.IsConflict(err), "duplicate email: %v", err)
}

// TestLoginFailures verifies unknown accounts and wrong passwords are distinguished.
func TestLoginFailures(t *testing.T) {
	client := setupBlogService(t)
	u := registerUser(t, client)

	_, err := client.Login(t.Context(), "nobody-"+u.Email, testPassword)
	require.True(t, blogsdk.IsNotFound(err), "unknown email: %v", err)

	_, err = client.Login(t.Context(), u.Email, "wrong password")
	require.True(t, blogsdk.IsUnauthorized(err), "wrong password: %v", err)

	var apiErr *blogsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, blogsdk.ErrorCodeInvalidCredentials, apiErr.Code)
}

// TestTokenFromAnotherSecretRejected verifies tokens are bound to the signing secret.
func TestTokenFromAnotherSecretRejected(t *testing.T) {
	client := setupBlogService(t)

	forged := client.NewSession("eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
		"eyJzdWIiOiIwMUhaWDNHMkI3QzRENUU2RjdHOEg5SjBLTSIsImV4cCI6NDEwMjQ0NDgwMH0." +
		"c2lnbmF0dXJlLW5vdC12YWxpZA")

	_, err := forged.ListMyBlogs(t.Context())
	require.True(t, blogsdk.IsUnauthorized(err), "forged token: %v", err)
}
