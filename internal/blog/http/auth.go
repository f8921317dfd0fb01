package http

import (
	"net/http"

	"github.com/aussiebroadwan/scribe/internal/blog/service"
	"github.com/aussiebroadwan/scribe/pkg/blogsdk"
	"github.com/aussiebroadwan/scribe/pkg/httpx"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleRegister godoc
//
//	@Summary		Register
//	@Description	Creates an account. Username and email must both be unused.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		blogsdk.RegisterRequest	true	"Account"
//	@Success		200		{object}	blogsdk.MessageResponse	"User registered"
//	@Failure		400		{object}	blogsdk.ErrorResponse	"Invalid request"
//	@Failure		409		{object}	blogsdk.ErrorResponse	"Username or email taken"
//	@Failure		500		{object}	blogsdk.ErrorResponse	"Storage error"
//	@Router			/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req blogsdk.RegisterRequest
	if err := httpx.DecodeAndValidate(r, &req); err != nil {
		writeInvalidRequest(w, err)
		return
	}

	if _, err := h.AuthService.Register(r.Context(), req.Username, req.Email, req.Password); err != nil {
		writeServiceError(w, r, err, "User not found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, blogsdk.MessageResponse{Message: "User registered"})
}

// HandleLogin godoc
//
//	@Summary		Log in
//	@Description	Verifies the password for email and returns an HS256 bearer token valid for 24h.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		blogsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	blogsdk.LoginResponse	"Token"
//	@Failure		400		{object}	blogsdk.ErrorResponse	"Invalid request"
//	@Failure		401		{object}	blogsdk.ErrorResponse	"Invalid credentials"
//	@Failure		404		{object}	blogsdk.ErrorResponse	"User not found"
//	@Failure		500		{object}	blogsdk.ErrorResponse	"Storage error"
//	@Router			/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req blogsdk.LoginRequest
	if err := httpx.DecodeAndValidate(r, &req); err != nil {
		writeInvalidRequest(w, err)
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err, "User not found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, blogsdk.LoginResponse{
		Message: "Login successful",
		Token:   token,
	})
}
