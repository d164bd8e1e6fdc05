package cryptox

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/argon2"
)

func TestMain(m *testing.M) {
	// Use a throwaway pepper file so tests never touch a real one.
	pepperPath := filepath.Join(os.TempDir(), "credhaus-test-pepper")
	SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

func TestHashPasswordFormat(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 100)},
		{"empty password", ""},
		{"unicode password", "пароль密码"},
		{"whitespace password", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"), "hash should be in PHC format")

			parts := strings.Split(hash, "$")
			require.Len(t, parts, 6, "PHC hash should have 6 parts")
			require.Contains(t, parts[3], "m=")
			require.Contains(t, parts[3], "t=")
			require.Contains(t, parts[3], "p=")
			require.NotEmpty(t, parts[4], "salt should not be empty")
			require.NotEmpty(t, parts[5], "hash should not be empty")
		})
	}
}

func TestHashPasswordSaltsPerCall(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)

	second, err := HashPassword("same-password")
	require.NoError(t, err)

	require.NotEqual(t, first, second, "two hashes of the same password must differ")

	// Both still verify.
	require.NoError(t, VerifyPassword("same-password", first))
	require.NoError(t, VerifyPassword("same-password", second))
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	t.Run("correct password verifies", func(t *testing.T) {
		require.NoError(t, VerifyPassword("correct horse battery staple", hash))
	})

	t.Run("wrong password is a mismatch", func(t *testing.T) {
		err := VerifyPassword("incorrect horse", hash)
		require.ErrorIs(t, err, ErrMismatch)
	})

	t.Run("empty password is a mismatch", func(t *testing.T) {
		err := VerifyPassword("", hash)
		require.ErrorIs(t, err, ErrMismatch)
	})
}

func TestVerifyPasswordRejectsMalformedHashes(t *testing.T) {
	bad := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"not a hash", "plaintext"},
		{"wrong algorithm", "$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"wrong version", "$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"missing parts", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA"},
		{"bad parameters", "$argon2id$v=19$bogus$c2FsdA$aGFzaA"},
		{"bad salt encoding", "$argon2id$v=19$m=19456,t=2,p=1$!!!$aGFzaA"},
		{"bad hash encoding", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$!!!"},
	}

	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyPassword("anything", tt.hash)
			require.Error(t, err)
			require.NotErrorIs(t, err, ErrMismatch)
		})
	}
}

func TestVerifyPasswordHonoursEmbeddedParameters(t *testing.T) {
	// A hash produced under older, lighter parameters must still verify; the
	// parameters ride along inside the PHC string.
	salt := []byte("0123456789abcdef")
	old := argon2.IDKey([]byte("migrating-password"+GetPepper()), salt, 1, 8*1024, 1, 32)

	encoded := fmt.Sprintf(
		"$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		8*1024, 1, 1,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(old),
	)

	require.NoError(t, VerifyPassword("migrating-password", encoded))
	require.ErrorIs(t, VerifyPassword("wrong-password", encoded), ErrMismatch)
}
