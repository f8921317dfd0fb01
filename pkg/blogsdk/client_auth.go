package blogsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Register creates an account. It does not log in.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*MessageResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/register", "", req)
	if err != nil {
		return nil, err
	}

	var out MessageResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *SDKClient) login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/login", "", req)
	if err != nil {
		return nil, err
	}

	var out LoginResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// GetBlog fetches any post by id. No authentication is needed.
func (c *SDKClient) GetBlog(ctx context.Context, id string) (*Blog, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/blogs/"+url.PathEscape(id), "", nil)
	if err != nil {
		return nil, err
	}

	var out BlogResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out.Blog, nil
}
