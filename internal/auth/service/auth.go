package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/credhaus/credhaus/internal/auth/domain"
	"github.com/credhaus/credhaus/internal/auth/store"
	"github.com/credhaus/credhaus/pkg/cryptox"
	"github.com/credhaus/credhaus/pkg/slogx"
	"github.com/google/uuid"
)

var (
	// ErrAlreadyExists means the email is already registered.
	ErrAlreadyExists = errors.New("already_exists")

	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password. Callers must not be able to tell which one it was.
	ErrInvalidCredentials = errors.New("invalid_credentials")

	// ErrUserNotFound means a valid token's subject no longer resolves.
	ErrUserNotFound = errors.New("user_not_found")
)

// AuthService implements the account lifecycle: signup, login, whoami and
// credential reset. It owns email normalization and the error taxonomy; the
// store below it only knows about records and keys.
type AuthService struct {
	Store  store.Store
	Tokens *TokenService
}

// NormalizeEmail canonicalizes an email for use as a store key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup registers a new account and returns its record.
func (s *AuthService) Signup(ctx context.Context, email, password string) (domain.User, error) {
	email = NormalizeEmail(email)

	_, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err == nil {
		return domain.User{}, ErrAlreadyExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, fmt.Errorf("signup lookup: %w", err)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("signup hash: %w", err)
	}

	u := domain.User{
		Email:        email,
		PasswordHash: hash,
		ID:           uuid.NewString(),
	}
	if err := s.Store.Users().PutUser(ctx, u); err != nil {
		return domain.User{}, fmt.Errorf("signup store: %w", err)
	}

	slogx.FromContext(ctx).Info("user_signed_up", "user_id", u.ID)
	return u, nil
}

// Login verifies credentials and mints an access/refresh token pair.
// It never mutates state.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.TokenPair, error) {
	u, err := s.authenticate(ctx, email, password)
	if err != nil {
		return domain.TokenPair{}, err
	}

	pair, err := s.Tokens.MintPair(u.Email)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("login mint: %w", err)
	}

	slogx.FromContext(ctx).Info("user_logged_in", "user_id", u.ID)
	return pair, nil
}

// WhoAmI resolves an access token to the record of its subject.
// Token defects propagate unchanged (ErrTokenExpired / ErrTokenInvalid); a
// refresh token presented here is treated as invalid.
func (s *AuthService) WhoAmI(ctx context.Context, token string) (domain.User, error) {
	payload, err := s.Tokens.Validate(token)
	if err != nil {
		return domain.User{}, err
	}
	if payload.Class != domain.TokenClassAccess {
		return domain.User{}, ErrTokenInvalid
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, NormalizeEmail(payload.Subject))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("whoami lookup: %w", err)
	}

	return u, nil
}

// ResetCredentials re-authenticates with the current email and password, then
// replaces both email and password in one atomic move. The account id is
// preserved so the caller's identity survives the rekey.
//
// Moving onto an email that belongs to a different account fails with
// ErrAlreadyExists rather than silently overwriting that account.
func (s *AuthService) ResetCredentials(ctx context.Context, email, newEmail, password, newPassword string) (domain.User, error) {
	email = NormalizeEmail(email)
	newEmail = NormalizeEmail(newEmail)

	u, err := s.authenticate(ctx, email, password)
	if err != nil {
		return domain.User{}, err
	}

	if newEmail != email {
		_, err := s.Store.Users().GetUserByEmail(ctx, newEmail)
		if err == nil {
			return domain.User{}, ErrAlreadyExists
		}
		if !errors.Is(err, store.ErrNotFound) {
			return domain.User{}, fmt.Errorf("reset conflict lookup: %w", err)
		}
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return domain.User{}, fmt.Errorf("reset hash: %w", err)
	}

	moved := domain.User{
		Email:        newEmail,
		PasswordHash: hash,
		ID:           u.ID,
	}

	// Delete+insert under one transaction so the rekey commits atomically;
	// when newEmail == email this degenerates to an in-place overwrite.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().DeleteUser(ctx, email); err != nil {
			return err
		}
		return tx.Users().PutUser(ctx, moved)
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("reset store: %w", err)
	}

	slogx.FromContext(ctx).Info("user_credentials_reset", "user_id", u.ID)
	return moved, nil
}

// authenticate looks up the normalized email and verifies the password.
// Unknown email and wrong password both come back as ErrInvalidCredentials.
func (s *AuthService) authenticate(ctx context.Context, email, password string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("auth lookup: %w", err)
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("auth verify: %w", err)
	}

	return u, nil
}
