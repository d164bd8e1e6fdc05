package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/credhaus/credhaus/internal/auth/domain"
	"github.com/credhaus/credhaus/pkg/jwtx"
)

var (
	// ErrTokenExpired means the token was well-signed but is past its expiry.
	ErrTokenExpired = errors.New("token_expired")

	// ErrTokenInvalid covers everything else: bad signature, malformed,
	// missing claims, wrong issuer, wrong token class.
	ErrTokenInvalid = errors.New("invalid_token")
)

// TokenService mints and validates the service's access and refresh tokens.
// Both classes are HMAC-signed JWTs under the same process-wide key; they
// differ only in lifetime and the `use` claim.
type TokenService struct {
	Signer     jwtx.Signer
	Verifier   jwtx.Verifier
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Mint issues a single token of the given class for the subject.
func (s *TokenService) Mint(subject string, class domain.TokenClass) (string, error) {
	ttl := s.AccessTTL
	use := jwtx.TokenUseAccess
	if class == domain.TokenClassRefresh {
		ttl = s.RefreshTTL
		use = jwtx.TokenUseRefresh
	}

	token, err := s.Signer.Sign(jwtx.NewClaims(subject, use, ttl, s.Issuer, time.Now()))
	if err != nil {
		return "", fmt.Errorf("mint %s token: %w", use, err)
	}
	return token, nil
}

// MintPair issues the access/refresh pair returned by a successful login.
func (s *TokenService) MintPair(subject string) (domain.TokenPair, error) {
	access, err := s.Mint(subject, domain.TokenClassAccess)
	if err != nil {
		return domain.TokenPair{}, err
	}

	refresh, err := s.Mint(subject, domain.TokenClassRefresh)
	if err != nil {
		return domain.TokenPair{}, err
	}

	return domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Validate verifies a token and returns its payload.
//
// The error split matters to callers: a token that is well-signed but expired
// yields ErrTokenExpired; any other defect, including a tampered payload on an
// expired token, yields ErrTokenInvalid. The verifier checks signatures before
// claims, so tampering can never masquerade as mere expiry.
func (s *TokenService) Validate(token string) (domain.TokenPayload, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		if errors.Is(err, jwtx.ErrExpired) {
			return domain.TokenPayload{}, ErrTokenExpired
		}
		return domain.TokenPayload{}, ErrTokenInvalid
	}

	var class domain.TokenClass
	switch claims.TokenUse {
	case jwtx.TokenUseAccess:
		class = domain.TokenClassAccess
	case jwtx.TokenUseRefresh:
		class = domain.TokenClassRefresh
	default:
		return domain.TokenPayload{}, ErrTokenInvalid
	}

	return domain.TokenPayload{
		Subject:   claims.Subject,
		Class:     class,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
