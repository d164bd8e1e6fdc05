package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("AUTH_JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("AUTH_JWT_ALGORITHM", "HS256")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL", "15m")
	t.Setenv("AUTH_REFRESH_TOKEN_TTL", "720h")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "HS256", cfg.Algorithm)
	require.Equal(t, 15*time.Minute, cfg.AccessTTL)
	require.Equal(t, 720*time.Hour, cfg.RefreshTTL)

	require.Equal(t, "credhaus", cfg.Issuer)
	require.Equal(t, "auth.db", cfg.DatabaseFile)
	require.Equal(t, "pepper", cfg.PepperFile)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("AUTH_ISSUER", "my-issuer")
	t.Setenv("AUTH_DATABASE_FILE", "/var/lib/credhaus/auth.db")
	t.Setenv("PORT", "9090")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "30s")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "my-issuer", cfg.Issuer)
	require.Equal(t, "/var/lib/credhaus/auth.db", cfg.DatabaseFile)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, 30*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfigRequiredKeys(t *testing.T) {
	tests := []struct {
		name  string
		unset string
	}{
		{"missing secret", "AUTH_JWT_SECRET"},
		{"missing algorithm", "AUTH_JWT_ALGORITHM"},
		{"missing access ttl", "AUTH_ACCESS_TOKEN_TTL"},
		{"missing refresh ttl", "AUTH_REFRESH_TOKEN_TTL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.unset, "")

			_, err := LoadConfig()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.unset)
		})
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Run("short secret", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("AUTH_JWT_SECRET", "too-short")

		_, err := LoadConfig()
		require.Error(t, err)
	})

	t.Run("unsupported algorithm", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("AUTH_JWT_ALGORITHM", "RS256")

		_, err := LoadConfig()
		require.Error(t, err)
	})

	t.Run("unparseable ttl", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("AUTH_ACCESS_TOKEN_TTL", "fifteen minutes")

		_, err := LoadConfig()
		require.Error(t, err)
	})

	t.Run("negative ttl", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("AUTH_REFRESH_TOKEN_TTL", "-1h")

		_, err := LoadConfig()
		require.Error(t, err)
	})
}
