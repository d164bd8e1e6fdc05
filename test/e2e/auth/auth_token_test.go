package auth_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/credhaus/credhaus/pkg/authsdk"
	"github.com/stretchr/testify/require"
)

func TestMeRejectsExpiredToken(t *testing.T) {
	opts := defaultServiceOptions()
	opts.accessTTL = -time.Minute // tokens are born expired
	client := startService(t, opts)
	ctx := context.Background()

	_, err := client.Signup(ctx, "alice@example.com", "hunter2!")
	require.NoError(t, err)
	tokens, err := client.Login(ctx, "alice@example.com", "hunter2!")
	require.NoError(t, err)

	_, err = client.Me(ctx, tokens.AccessToken)
	requireAPIError(t, err, http.StatusUnauthorized, authsdk.ErrorCodeTokenExpired)
}

func TestMeRejectsTamperedToken(t *testing.T) {
	client := startService(t, defaultServiceOptions())
	ctx := context.Background()

	_, err := client.Signup(ctx, "bob@example.com", "hunter2!")
	require.NoError(t, err)
	tokens, err := client.Login(ctx, "bob@example.com", "hunter2!")
	require.NoError(t, err)

	parts := strings.Split(tokens.AccessToken, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + strings.Repeat("A", len(parts[1])) + "." + parts[2]

	_, err = client.Me(ctx, tampered)
	requireAPIError(t, err, http.StatusForbidden, authsdk.ErrorCodeInvalidToken)
}

func TestMeRejectsRefreshToken(t *testing.T) {
	client := startService(t, defaultServiceOptions())
	ctx := context.Background()

	_, err := client.Signup(ctx, "carol@example.com", "hunter2!")
	require.NoError(t, err)
	tokens, err := client.Login(ctx, "carol@example.com", "hunter2!")
	require.NoError(t, err)

	// A refresh token is well-signed but the wrong class for /me.
	_, err = client.Me(ctx, tokens.RefreshToken)
	requireAPIError(t, err, http.StatusForbidden, authsdk.ErrorCodeInvalidToken)
}

func TestMeRejectsGarbageToken(t *testing.T) {
	client := startService(t, defaultServiceOptions())
	ctx := context.Background()

	for _, tok := range []string{"garbage", "a.b.c", "x"} {
		_, err := client.Me(ctx, tok)
		requireAPIError(t, err, http.StatusForbidden, authsdk.ErrorCodeInvalidToken)
	}
}

func TestExpiredTokenWithBadSignatureIsForbidden(t *testing.T) {
	// A token that is both expired and tampered must read as invalid, not
	// expired: the signature is checked before any claims.
	opts := defaultServiceOptions()
	opts.accessTTL = -time.Minute
	client := startService(t, opts)
	ctx := context.Background()

	_, err := client.Signup(ctx, "dave@example.com", "hunter2!")
	require.NoError(t, err)
	tokens, err := client.Login(ctx, "dave@example.com", "hunter2!")
	require.NoError(t, err)

	parts := strings.Split(tokens.AccessToken, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + strings.Repeat("B", len(parts[1])) + "." + parts[2]

	_, err = client.Me(ctx, tampered)
	requireAPIError(t, err, http.StatusForbidden, authsdk.ErrorCodeInvalidToken)
}
