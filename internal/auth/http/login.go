package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/credhaus/credhaus/internal/auth/service"
	"github.com/credhaus/credhaus/pkg/authsdk"
	"github.com/credhaus/credhaus/pkg/httpx"
	"github.com/credhaus/credhaus/pkg/slogx"
)

// LoginHandler serves POST /login.
// Accepts application/x-www-form-urlencoded with username and password fields.
type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Login
//	@Description	Exchanges an email and password for an access/refresh JWT pair.
//	@Description	Unknown email and wrong password fail identically.
//	@Tags			Accounts
//	@Accept			application/x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string					true	"account email"
//	@Param			password	formData	string					true	"account password"
//	@Success		200			{object}	authsdk.TokenResponse	"access_token, refresh_token"
//	@Failure		400			{object}	authsdk.ErrorResponse	"error, error_description"
//	@Failure		500			{object}	authsdk.ErrorResponse	"error, error_description"
//	@Header			200			{string}	Cache-Control			"no-store"
//	@Router			/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if ct := r.Header.Get("Content-Type"); ct != "" &&
		!strings.HasPrefix(ct, "application/x-www-form-urlencoded") {
		authsdk.ErrInvalidContentType.WriteError(w)
		return
	}

	if err := r.ParseForm(); err != nil {
		authsdk.ErrInvalidFormBody.WriteError(w)
		return
	}

	email := strings.TrimSpace(r.Form.Get("username"))
	password := r.Form.Get("password")
	if email == "" || password == "" {
		authsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	pair, err := h.AuthService.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			authsdk.ErrInvalidCredentials.WriteError(w)
			return
		}
		log.Error("login failed", "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}
