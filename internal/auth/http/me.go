package http

import (
	"errors"
	"net/http"

	"github.com/credhaus/credhaus/internal/auth/service"
	"github.com/credhaus/credhaus/pkg/authsdk"
	"github.com/credhaus/credhaus/pkg/httpx"
	"github.com/credhaus/credhaus/pkg/slogx"
)

// MeHandler serves GET /me, resolving the bearer of an access token.
type MeHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Who Am I
//	@Description	Resolves the access token in the Authorization header to its account.
//	@Description	An expired token yields 401; a missing, malformed, tampered or
//	@Description	wrong-class token yields 403.
//	@Tags			Accounts
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	authsdk.UserResponse	"email, id"
//	@Failure		401	{object}	authsdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	authsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	authsdk.ErrorResponse	"error, error_description"
//	@Router			/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	token := httpx.BearerToken(r)
	if token == "" {
		authsdk.ErrInvalidToken.WriteError(w)
		return
	}

	u, err := h.AuthService.WhoAmI(ctx, token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTokenExpired):
			authsdk.ErrTokenExpired.WriteError(w)
		case errors.Is(err, service.ErrTokenInvalid):
			authsdk.ErrInvalidToken.WriteError(w)
		case errors.Is(err, service.ErrUserNotFound):
			authsdk.ErrUserNotFound.WriteError(w)
		default:
			log.Error("whoami failed", "err", err)
			authsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.UserResponse{
		Email: u.Email,
		ID:    u.ID,
	})
}
