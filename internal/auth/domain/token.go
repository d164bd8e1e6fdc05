package domain

import "time"

// TokenClass distinguishes the two kinds of bearer token the service mints.
// Both are self-contained signed JWTs; they differ only in lifetime and the
// "use" claim embedded in the payload.
type TokenClass string

const (
	// TokenClassAccess is the short-lived token presented on routine
	// authenticated calls.
	TokenClassAccess TokenClass = "access"

	// TokenClassRefresh is the long-lived token intended for obtaining new
	// access tokens. The exchange endpoint itself is not part of this
	// service yet; refresh tokens are minted so clients can hold one.
	TokenClassRefresh TokenClass = "refresh"
)

// TokenPair is what a successful login returns.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// TokenPayload is the decoded, validated content of a token. It exists only
// in memory; nothing token-related is persisted server-side.
type TokenPayload struct {
	// Subject is the email of the user the token was minted for.
	Subject string

	// Class is the token's declared use (access or refresh).
	Class TokenClass

	// ExpiresAt is the absolute expiry instant embedded in the token.
	ExpiresAt time.Time
}
