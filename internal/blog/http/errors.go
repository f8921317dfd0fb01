package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/scribe/internal/blog/service"
	"github.com/aussiebroadwan/scribe/pkg/blogsdk"
	"github.com/aussiebroadwan/scribe/pkg/httpx"
	"github.com/aussiebroadwan/scribe/pkg/slogx"
)

// writeServiceError maps a service error onto its HTTP response. notFound is
// the description used for ErrNotFound, which differs per route.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, service.ErrInvalidUserID):
		httpx.WriteError(w, http.StatusBadRequest, blogsdk.ErrorCodeBadRequest, "Invalid user ID")
	case errors.Is(err, service.ErrInvalidPostID):
		httpx.WriteError(w, http.StatusBadRequest, blogsdk.ErrorCodeBadRequest, "Invalid blog ID")
	case errors.Is(err, service.ErrBadRequest):
		httpx.WriteError(w, http.StatusBadRequest, blogsdk.ErrorCodeBadRequest, "Bad request")
	case errors.Is(err, service.ErrUnauthorized):
		httpx.WriteError(w, http.StatusUnauthorized, blogsdk.ErrorCodeUnauthorized, "Unauthorized")
	case errors.Is(err, service.ErrInvalidCredential):
		httpx.WriteError(w, http.StatusUnauthorized, blogsdk.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, service.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, blogsdk.ErrorCodeNotFound, notFound)
	case errors.Is(err, service.ErrConflict):
		httpx.WriteError(w, http.StatusConflict, blogsdk.ErrorCodeConflict, "Username or email already registered")
	case errors.Is(err, service.ErrStorage):
		slogx.FromContext(r.Context()).Error("storage failure", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, blogsdk.ErrorCodeStorageError, "Database error")
	default:
		slogx.FromContext(r.Context()).Error("unhandled error", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, blogsdk.ErrorCodeServerError, "Internal server error")
	}
}

func writeInvalidRequest(w http.ResponseWriter, err error) {
	httpx.WriteError(w, http.StatusBadRequest, blogsdk.ErrorCodeInvalidRequest, err.Error())
}
