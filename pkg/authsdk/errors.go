package authsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/credhaus/credhaus/pkg/httpx"
)

// ============================================================================
// Error Codes
// ============================================================================

const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeAlreadyExists      = "already_exists"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeTokenExpired       = "token_expired"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeUserNotFound       = "user_not_found"
	ErrorCodeServerError        = "server_error"
)

// ============================================================================
// APIError
// ============================================================================

// APIError is the service's standard error shape. It implements the error
// interface and is used both by the server (to write HTTP responses) and by
// the SDK client (to represent errors it parsed off the wire).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the stable error code (e.g., "invalid_credentials")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
// This is used by HTTP handlers to return well-formed error responses.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

// ============================================================================
// Predefined Errors
// ============================================================================

var (
	// ErrInvalidRequest is returned when the request is missing a required
	// parameter, includes an invalid value, or is otherwise malformed.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrInvalidContentType is returned when a form endpoint receives a body
	// that is not application/x-www-form-urlencoded.
	ErrInvalidContentType = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "content-type must be application/x-www-form-urlencoded",
	}

	// ErrInvalidJSONBody is returned when a JSON body cannot be parsed.
	ErrInvalidJSONBody = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "invalid json body",
	}

	// ErrInvalidFormBody is returned when a form body cannot be parsed.
	ErrInvalidFormBody = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "invalid form body",
	}

	// ErrAlreadyExists is returned when signing up with an email that is
	// already registered, or moving credentials onto one that is.
	ErrAlreadyExists = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeAlreadyExists,
		Description: "an account with this email already exists",
	}

	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password. The description is deliberately identical for both cases.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidCredentials,
		Description: "incorrect email or password",
	}

	// ErrTokenExpired is returned when a well-signed token is past its expiry.
	ErrTokenExpired = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeTokenExpired,
		Description: "the access token has expired",
	}

	// ErrInvalidToken is returned when the token is missing, malformed,
	// carries a bad signature, or is the wrong class for the endpoint.
	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeInvalidToken,
		Description: "could not validate credentials",
	}

	// ErrUserNotFound is returned when a valid token's subject no longer
	// resolves to an account.
	ErrUserNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeUserNotFound,
		Description: "user not found",
	}

	// ErrServerError is returned when the service hit an unexpected condition.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// NewAPIError creates a new APIError with the given status code, error code,
// and description.
func NewAPIError(statusCode int, code, description string) *APIError {
	return &APIError{
		StatusCode:  statusCode,
		Code:        code,
		Description: description,
	}
}

// ============================================================================
// Error Parsing Helpers
// ============================================================================

// parseErrorResponse attempts to parse an HTTP error response into a typed
// *APIError. Returns nil if the response indicates success (2xx status code).
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	// Fallback: create generic error from status code
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
