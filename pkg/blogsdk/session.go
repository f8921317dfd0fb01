package blogsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Session is an authenticated client. Tokens are not refreshed; log in
// again once the token expires.
type Session struct {
	client *SDKClient
	token  string
}

// Token returns the bearer token of this session.
func (s *Session) Token() string { return s.token }

// CreateBlog publishes a new post authored by the session's user.
func (s *Session) CreateBlog(ctx context.Context, title, content string) (*Blog, error) {
	resp, err := s.client.doRequest(ctx, http.MethodPost, "/api/blogs", s.token,
		BlogRequest{Title: title, Content: content})
	if err != nil {
		return nil, err
	}

	var out BlogResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}

	return &out.Blog, nil
}

// ListMyBlogs returns the session user's posts, newest first.
func (s *Session) ListMyBlogs(ctx context.Context) ([]Blog, error) {
	resp, err := s.client.doRequest(ctx, http.MethodGet, "/api/blogs", s.token, nil)
	if err != nil {
		return nil, err
	}

	var out BlogListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return out.Blogs, nil
}

// UpdateBlog rewrites a post owned by the session's user.
func (s *Session) UpdateBlog(ctx context.Context, id, title, content string) (*Blog, error) {
	resp, err := s.client.doRequest(ctx, http.MethodPut, "/api/blogs/"+url.PathEscape(id), s.token,
		BlogRequest{Title: title, Content: content})
	if err != nil {
		return nil, err
	}

	var out BlogResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out.Blog, nil
}

// DeleteBlog removes a post owned by the session's user.
func (s *Session) DeleteBlog(ctx context.Context, id string) error {
	resp, err := s.client.doRequest(ctx, http.MethodDelete, "/api/blogs/"+url.PathEscape(id), s.token, nil)
	if err != nil {
		return err
	}

	var out MessageResponse
	return decodeJSON(resp, &out, http.StatusOK)
}
