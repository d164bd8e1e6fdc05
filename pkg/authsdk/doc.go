/*
Package authsdk provides a typed client for the credhaus credential service.

# Overview

The package has two jobs: it is the client SDK for talking to a running
credhaus instance, and it is the home of the wire types and API error values
the server itself uses to shape responses. Keeping both here means the server
and its clients can never drift apart on the JSON contract.

# Usage

Create an SDKClient and drive the account lifecycle with it:

	client := authsdk.NewSDKClient("https://auth.example.com")

	// Create an account
	user, err := client.Signup(ctx, "alice@example.com", "hunter2!")

	// Exchange credentials for a token pair
	tokens, err := client.Login(ctx, "alice@example.com", "hunter2!")

	// Resolve the bearer of an access token
	me, err := client.Me(ctx, tokens.AccessToken)

	// Rotate email and password in one authenticated move
	user, err = client.ResetCredentials(ctx, authsdk.ResetCredentialsRequest{
		Email:       "alice@example.com",
		NewEmail:    "alice@new.example.com",
		Password:    "hunter2!",
		NewPassword: "correct horse battery staple",
	})

# Error Handling

Failed requests return a typed *APIError carrying the HTTP status, the stable
error code, and the human-readable description from the response body:

	_, err := client.Login(ctx, email, password)
	var apiErr *authsdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == authsdk.ErrorCodeInvalidCredentials {
		// bad email or password; the server never says which
	}

The SDKClient holds no session state. Tokens are plain strings owned by the
caller; pass the access token to Me explicitly.
*/
package authsdk
