package authsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SDKClient is a client for the credhaus credential service.
// It is stateless; tokens returned by Login are owned by the caller.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new credential service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Signup registers a new account and returns its public record.
// Fails with already_exists if the email is taken.
func (c *SDKClient) Signup(ctx context.Context, email, password string) (*UserResponse, error) {
	body, err := json.Marshal(SignupRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/signup", bytes.NewReader(body), map[string]string{
		"Content-Type": "application/json",
	})
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}

	return &user, nil
}

// Login exchanges an email and password for an access/refresh token pair.
// Fails with invalid_credentials for an unknown email or a wrong password;
// the two cases are indistinguishable.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	data := url.Values{
		"username": {email},
		"password": {password},
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/login", strings.NewReader(data.Encode()), map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
	})
	if err != nil {
		return nil, err
	}

	var tokens TokenResponse
	if err := decodeJSON(resp, &tokens, http.StatusOK); err != nil {
		return nil, err
	}

	return &tokens, nil
}

// Me resolves the bearer of an access token to their public record.
func (c *SDKClient) Me(ctx context.Context, accessToken string) (*UserResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/me", nil, map[string]string{
		"Authorization": "Bearer " + accessToken,
	})
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}

	return &user, nil
}

// ResetCredentials re-authenticates with the current email and password and
// replaces both with the new values. The account id is preserved.
func (c *SDKClient) ResetCredentials(ctx context.Context, req ResetCredentialsRequest) (*UserResponse, error) {
	data := url.Values{
		"email":        {req.Email},
		"new_email":    {req.NewEmail},
		"password":     {req.Password},
		"new_password": {req.NewPassword},
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/reset_email", strings.NewReader(data.Encode()), map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
	})
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}

	return &user, nil
}

// GetLiveness checks if the service is alive.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/livez", nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}

	return &health, nil
}

// GetReadiness checks if the service is ready.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/readyz", nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}

	return &health, nil
}
