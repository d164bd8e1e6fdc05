package authsdk

// ============================================================================
// Request Types
// ============================================================================

// SignupRequest is the JSON body for POST /signup.
type SignupRequest struct {
	// Email is the address the new account is keyed by
	Email string `json:"email"`

	// Password is the plaintext password; only its hash is ever stored
	Password string `json:"password"`
}

// ResetCredentialsRequest carries the form fields for POST /reset_email.
// The current email and password authenticate the change; the new values
// replace them. NewEmail may equal Email to rotate only the password.
type ResetCredentialsRequest struct {
	Email       string
	NewEmail    string
	Password    string
	NewPassword string
}

// ============================================================================
// Response Types
// ============================================================================

// ErrorResponse is the error body shape shared by every endpoint.
// Client code should use the APIError type from errors.go instead.
type ErrorResponse struct {
	// Error is the stable error code (e.g., "invalid_credentials")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// UserResponse is the public projection of a user record.
// The password hash never appears on the wire.
type UserResponse struct {
	// Email is the account's current address
	Email string `json:"email"`

	// ID is the account's stable identifier; it survives email changes
	ID string `json:"id"`
}

// TokenResponse is returned from POST /login.
type TokenResponse struct {
	// AccessToken is the short-lived JWT presented on authenticated requests
	AccessToken string `json:"access_token"`

	// RefreshToken is the longer-lived JWT minted alongside the access token
	RefreshToken string `json:"refresh_token"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database reports the store's reachability ("ok" or an error string)
	Database string `json:"database"`

	// Signer reports whether the token signer is usable
	Signer string `json:"signer"`
}
