package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretBytes is the smallest signing secret we accept. HMAC secrets
// shorter than the hash output weaken the construction, so we refuse them
// outright rather than booting an insecure service.
const MinSecretBytes = 32

// hmacMethod resolves an algorithm name to its jwt signing method.
func hmacMethod(alg string) (*jwt.SigningMethodHMAC, error) {
	switch alg {
	case jwt.SigningMethodHS256.Alg():
		return jwt.SigningMethodHS256, nil
	case jwt.SigningMethodHS384.Alg():
		return jwt.SigningMethodHS384, nil
	case jwt.SigningMethodHS512.Alg():
		return jwt.SigningMethodHS512, nil
	default:
		return nil, unsupportedAlg(alg)
	}
}

// HMACSigner implements Signer using a shared-secret HMAC method.
// The secret is immutable for the lifetime of the process; key rotation is
// deliberately out of scope.
type HMACSigner struct {
	method *jwt.SigningMethodHMAC
	secret []byte
}

func newHMACSigner(method *jwt.SigningMethodHMAC, secret []byte) (*HMACSigner, error) {
	if len(secret) < MinSecretBytes {
		return nil, fmt.Errorf("%w: got %d bytes, want at least %d", ErrShortSecret, len(secret), MinSecretBytes)
	}
	return &HMACSigner{method: method, secret: secret}, nil
}

func (s *HMACSigner) Alg() string { return s.method.Alg() }

// Sign takes your claims and turns them into a signed JWT string.
func (s *HMACSigner) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(s.method, claims)
	return t.SignedString(s.secret)
}

// Validate does a quick sanity check to make sure we actually have a key.
func (s *HMACSigner) Validate() error {
	if len(s.secret) < MinSecretBytes {
		return ErrShortSecret
	}
	return nil
}

// HMACVerifier validates JWTs signed with the matching HMAC method and
// secret. Signature checking happens before any claim inspection, so a
// tampered token always reads as invalid, never as merely expired.
type HMACVerifier struct {
	method *jwt.SigningMethodHMAC
	secret []byte
	issuer string
}

func newHMACVerifier(method *jwt.SigningMethodHMAC, secret []byte, issuer string) (*HMACVerifier, error) {
	if len(secret) < MinSecretBytes {
		return nil, fmt.Errorf("%w: got %d bytes, want at least %d", ErrShortSecret, len(secret), MinSecretBytes)
	}
	return &HMACVerifier{method: method, secret: secret, issuer: issuer}, nil
}

// Verify validates the JWT string and returns its parsed Claims.
func (v *HMACVerifier) Verify(tokenStr string) (Claims, error) {
	// Claims validation is done by hand afterwards so expiry failures can
	// be told apart from signature failures.
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{v.method.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, ErrMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		case errors.Is(err, jwt.ErrTokenUnverifiable):
			return Claims{}, ErrAlgMismatch
		default:
			return Claims{}, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrInvalidClaim
	}

	// Required claims must be present before expiry is even considered.
	if claims.Subject == "" || claims.ExpiresAt == nil {
		return Claims{}, ErrInvalidClaim
	}

	if err := claims.ValidateIssuer(v.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiry(); err != nil {
		return Claims{}, err
	}

	return *claims, nil
}
