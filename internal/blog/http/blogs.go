package http

import (
	"net/http"

	"github.com/aussiebroadwan/scribe/internal/blog/domain"
	"github.com/aussiebroadwan/scribe/internal/blog/service"
	"github.com/aussiebroadwan/scribe/pkg/blogsdk"
	"github.com/aussiebroadwan/scribe/pkg/httpx"
)

const (
	msgBlogNotFound = "Blog not found"
	msgBlogNotOwned = "Blog not found or not authorized"
)

type BlogsHandler struct {
	PostService *service.PostService
}

func toBlog(p domain.Post) blogsdk.Blog {
	return blogsdk.Blog{
		ID:        p.ID.String(),
		Title:     p.Title,
		Content:   p.Content,
		AuthorID:  p.AuthorID.String(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// callerID returns the authenticated subject, answering 401 when the authn
// middleware did not run.
func callerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	uid, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, blogsdk.ErrorCodeUnauthorized, "Unauthorized")
		return "", false
	}
	return uid, true
}

// HandleCreate godoc
//
//	@Summary		Create a post
//	@Description	Creates a post authored by the caller. created_at and updated_at are set by the server and equal.
//	@Tags			Blogs
//	@Accept			json
//	@Produce		json
//	@Param			request	body		blogsdk.BlogRequest		true	"Post"
//	@Success		201		{object}	blogsdk.BlogResponse	"Created post"
//	@Failure		400		{object}	blogsdk.ErrorResponse	"Invalid request"
//	@Failure		401		{object}	blogsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		500		{object}	blogsdk.ErrorResponse	"Storage error"
//	@Security		BearerAuth
//	@Router			/api/blogs [post].
func (h *BlogsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	uid, ok := callerID(w, r)
	if !ok {
		return
	}

	var req blogsdk.BlogRequest
	if err := httpx.DecodeAndValidate(r, &req); err != nil {
		writeInvalidRequest(w, err)
		return
	}

	post, err := h.PostService.Create(r.Context(), uid, req.Title, req.Content)
	if err != nil {
		writeServiceError(w, r, err, msgBlogNotFound)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, blogsdk.BlogResponse{Blog: toBlog(post)})
}

// HandleListMine godoc
//
//	@Summary		List my posts
//	@Description	Returns the caller's posts ordered by creation time, newest first.
//	@Tags			Blogs
//	@Produce		json
//	@Success		200	{object}	blogsdk.BlogListResponse	"Posts"
//	@Failure		400	{object}	blogsdk.ErrorResponse		"Invalid user ID"
//	@Failure		401	{object}	blogsdk.ErrorResponse		"Missing or invalid token"
//	@Failure		500	{object}	blogsdk.ErrorResponse		"Storage error"
//	@Security		BearerAuth
//	@Router			/api/blogs [get].
func (h *BlogsHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	uid, ok := callerID(w, r)
	if !ok {
		return
	}

	posts, err := h.PostService.ListMine(r.Context(), uid)
	if err != nil {
		writeServiceError(w, r, err, msgBlogNotFound)
		return
	}

	response := blogsdk.BlogListResponse{Blogs: make([]blogsdk.Blog, len(posts))}
	for i, p := range posts {
		response.Blogs[i] = toBlog(p)
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}

// HandleGet godoc
//
//	@Summary		Get a post
//	@Description	Returns any post by id. No authentication required.
//	@Tags			Blogs
//	@Produce		json
//	@Param			id	path		string					true	"Post ID (ULID)"
//	@Success		200	{object}	blogsdk.BlogResponse	"Post"
//	@Failure		400	{object}	blogsdk.ErrorResponse	"Invalid blog ID"
//	@Failure		404	{object}	blogsdk.ErrorResponse	"Blog not found"
//	@Failure		500	{object}	blogsdk.ErrorResponse	"Storage error"
//	@Router			/api/blogs/{id} [get].
func (h *BlogsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	post, err := h.PostService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, msgBlogNotFound)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, blogsdk.BlogResponse{Blog: toBlog(post)})
}

// HandleUpdate godoc
//
//	@Summary		Update a post
//	@Description	Rewrites title and content of a post the caller owns. Posts owned by others are reported as not found.
//	@Tags			Blogs
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Post ID (ULID)"
//	@Param			request	body		blogsdk.BlogRequest		true	"Post"
//	@Success		200		{object}	blogsdk.BlogResponse	"Updated post"
//	@Failure		400		{object}	blogsdk.ErrorResponse	"Invalid request"
//	@Failure		401		{object}	blogsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		404		{object}	blogsdk.ErrorResponse	"Blog not found or not authorized"
//	@Failure		500		{object}	blogsdk.ErrorResponse	"Storage error"
//	@Security		BearerAuth
//	@Router			/api/blogs/{id} [put].
func (h *BlogsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	uid, ok := callerID(w, r)
	if !ok {
		return
	}

	var req blogsdk.BlogRequest
	if err := httpx.DecodeAndValidate(r, &req); err != nil {
		writeInvalidRequest(w, err)
		return
	}

	post, err := h.PostService.Update(r.Context(), uid, r.PathValue("id"), req.Title, req.Content)
	if err != nil {
		writeServiceError(w, r, err, msgBlogNotOwned)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, blogsdk.BlogResponse{Blog: toBlog(post)})
}

// HandleDelete godoc
//
//	@Summary		Delete a post
//	@Description	Deletes a post the caller owns. Posts owned by others are reported as not found.
//	@Tags			Blogs
//	@Produce		json
//	@Param			id	path		string					true	"Post ID (ULID)"
//	@Success		200	{object}	blogsdk.MessageResponse	"Deleted"
//	@Failure		400	{object}	blogsdk.ErrorResponse	"Invalid blog ID"
//	@Failure		401	{object}	blogsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		404	{object}	blogsdk.ErrorResponse	"Blog not found or not authorized"
//	@Failure		500	{object}	blogsdk.ErrorResponse	"Storage error"
//	@Security		BearerAuth
//	@Router			/api/blogs/{id} [delete].
func (h *BlogsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	uid, ok := callerID(w, r)
	if !ok {
		return
	}

	if err := h.PostService.Delete(r.Context(), uid, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, msgBlogNotOwned)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, blogsdk.MessageResponse{Message: "Blog deleted successfully"})
}
