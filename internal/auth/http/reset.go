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

// ResetHandler serves POST /reset_email.
// Re-authenticates with the current credentials and atomically replaces both
// the email and the password.
type ResetHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Reset Credentials
//	@Description	Authenticates with the current email and password, then moves the
//	@Description	account to the new email with the new password. The account id is
//	@Description	preserved. Moving onto another account's email is refused.
//	@Tags			Accounts
//	@Accept			application/x-www-form-urlencoded
//	@Produce		json
//	@Param			email			formData	string					true	"current email"
//	@Param			new_email		formData	string					true	"new email (may equal current)"
//	@Param			password		formData	string					true	"current password"
//	@Param			new_password	formData	string					true	"new password"
//	@Success		200				{object}	authsdk.UserResponse	"email, id"
//	@Failure		400				{object}	authsdk.ErrorResponse	"error, error_description"
//	@Failure		500				{object}	authsdk.ErrorResponse	"error, error_description"
//	@Router			/reset_email [post].
func (h *ResetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	email := strings.TrimSpace(r.Form.Get("email"))
	newEmail := strings.TrimSpace(r.Form.Get("new_email"))
	password := r.Form.Get("password")
	newPassword := r.Form.Get("new_password")
	if email == "" || newEmail == "" || password == "" || newPassword == "" {
		authsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	u, err := h.AuthService.ResetCredentials(ctx, email, newEmail, password, newPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			authsdk.ErrInvalidCredentials.WriteError(w)
		case errors.Is(err, service.ErrAlreadyExists):
			authsdk.ErrAlreadyExists.WriteError(w)
		default:
			log.Error("credential reset failed", "err", err)
			authsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.UserResponse{
		Email: u.Email,
		ID:    u.ID,
	})
}
