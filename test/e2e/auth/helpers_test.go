package auth_test

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	authhttp "github.com/credhaus/credhaus/internal/auth/http"
	"github.com/credhaus/credhaus/internal/auth/service"
	"github.com/credhaus/credhaus/internal/auth/store/drivers/sqlite"
	"github.com/credhaus/credhaus/pkg/authsdk"
	"github.com/credhaus/credhaus/pkg/cryptox"
	"github.com/credhaus/credhaus/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

/*
 * Common helpers for credential service end-to-end tests. Each test boots the
 * full router (middleware, handlers, swagger mount) over an in-memory store
 * behind an httptest server, and drives it through the SDK exactly as an
 * external client would.
 */

var e2eSecret = []byte("e2e-secret-0123456789abcdef01234")

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "credhaus-e2e-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

type serviceOptions struct {
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func defaultServiceOptions() serviceOptions {
	return serviceOptions{
		accessTTL:  15 * time.Minute,
		refreshTTL: 720 * time.Hour,
	}
}

// startService boots the full HTTP surface and returns an SDK client bound to it.
func startService(t *testing.T, opts serviceOptions) *authsdk.SDKClient {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	signer, err := jwtx.NewSignerHS256(e2eSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifier("HS256", e2eSecret, "credhaus-e2e")
	require.NoError(t, err)

	router := authhttp.NewRouter(signer, "e2e", st, slog.New(slog.NewTextHandler(io.Discard, nil)))
	router.AuthService = &service.AuthService{
		Store: st,
		Tokens: &service.TokenService{
			Signer:     signer,
			Verifier:   verifier,
			Issuer:     "credhaus-e2e",
			AccessTTL:  opts.accessTTL,
			RefreshTTL: opts.refreshTTL,
		},
	}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return authsdk.NewSDKClient(srv.URL)
}

// requireAPIError asserts err is an *APIError with the given status and code.
func requireAPIError(t *testing.T, err error, statusCode int, code string) {
	t.Helper()

	var apiErr *authsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, statusCode, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}
