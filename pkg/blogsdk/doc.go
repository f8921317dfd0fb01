/*
Package blogsdk provides a Go client for the scribe blogging service.

# SDKClient vs Session

  - SDKClient: public endpoints (health, register, login, reading a post)
  - Session: bearer-authenticated endpoints under /api/blogs

Create an SDKClient and log in to obtain a Session:

	client := blogsdk.NewSDKClient("http://localhost:3000")

	_, err := client.Register(ctx, blogsdk.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct horse battery staple",
	})

	session, err := client.Login(ctx, "alice@example.com", "correct horse battery staple")

	post, err := session.CreateBlog(ctx, "Hello", "First post")
	mine, err := session.ListMyBlogs(ctx)
	post, err = session.UpdateBlog(ctx, post.ID, "Hello again", "Edited")
	err = session.DeleteBlog(ctx, post.ID)

Reading a post needs no session:

	post, err := client.GetBlog(ctx, id)

# Errors

Every non-2xx response is returned as an *APIError carrying the HTTP status,
the machine readable code and its description. Helpers cover the common
cases:

	if blogsdk.IsNotFound(err) {
		// missing, or owned by someone else
	}

Sessions do not refresh tokens. Once a token expires, calls fail with
IsUnauthorized and the caller should log in again.
*/
package blogsdk
