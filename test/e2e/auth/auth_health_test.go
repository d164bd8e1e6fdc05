package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLiveness(t *testing.T) {
	client := startService(t, defaultServiceOptions())

	health, err := client.GetLiveness(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "e2e", health.Version)
	require.NotEmpty(t, health.Uptime)
}

func TestReadiness(t *testing.T) {
	client := startService(t, defaultServiceOptions())

	health, err := client.GetReadiness(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
	require.Equal(t, "ok", health.Checks.Signer)
}
