package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/credhaus/credhaus/internal/auth/service"
	"github.com/credhaus/credhaus/pkg/authsdk"
	"github.com/credhaus/credhaus/pkg/httpx"
	"github.com/credhaus/credhaus/pkg/slogx"
)

// SignupHandler serves POST /signup. Accepts a JSON body.
type SignupHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Register Account
//	@Description	Creates a new account keyed by email. Only the Argon2id hash of the password is stored.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			body	body		authsdk.SignupRequest	true	"email and password"
//	@Success		200		{object}	authsdk.UserResponse	"email, id"
//	@Failure		400		{object}	authsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	authsdk.ErrorResponse	"error, error_description"
//	@Router			/signup [post].
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "application/json") {
		authsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	var req authsdk.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		authsdk.ErrInvalidJSONBody.WriteError(w)
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		authsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	u, err := h.AuthService.Signup(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyExists) {
			authsdk.ErrAlreadyExists.WriteError(w)
			return
		}
		log.Error("signup failed", "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.UserResponse{
		Email: u.Email,
		ID:    u.ID,
	})
}
