package jwtx

import "errors"

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrShortSecret = errors.New("jwtx: signing secret too short")

	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// NewVerifier creates a verifier for the named HMAC algorithm, sharing the
// signer's secret. Issuer is enforced when non-empty.
func NewVerifier(alg string, secret []byte, issuer string) (Verifier, error) {
	method, err := hmacMethod(alg)
	if err != nil {
		return nil, err
	}
	return newHMACVerifier(method, secret, issuer)
}
