package jwtx

import "fmt"

// Signer is our interface for anything that can sign JWTs.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
	Validate() error
}

// NewSigner creates a signer for the named HMAC algorithm. The secret is
// the process-wide signing key loaded once from configuration.
func NewSigner(alg string, secret []byte) (Signer, error) {
	method, err := hmacMethod(alg)
	if err != nil {
		return nil, err
	}
	return newHMACSigner(method, secret)
}

// NewSignerHS256 creates an HS256 signer from a raw secret.
func NewSignerHS256(secret []byte) (Signer, error) {
	return NewSigner("HS256", secret)
}

// NewSignerHS384 creates an HS384 signer from a raw secret.
func NewSignerHS384(secret []byte) (Signer, error) {
	return NewSigner("HS384", secret)
}

// NewSignerHS512 creates an HS512 signer from a raw secret.
func NewSignerHS512(secret []byte) (Signer, error) {
	return NewSigner("HS512", secret)
}

// SupportedAlgorithms lists the HMAC algorithm names this package accepts.
func SupportedAlgorithms() []string {
	return []string{"HS256", "HS384", "HS512"}
}

// IsSupportedAlgorithm reports whether alg names a supported HMAC method.
func IsSupportedAlgorithm(alg string) bool {
	_, err := hmacMethod(alg)
	return err == nil
}

func unsupportedAlg(alg string) error {
	return fmt.Errorf("jwtx: unsupported algorithm %q (want HS256, HS384 or HS512)", alg)
}
