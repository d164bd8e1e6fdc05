package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/credhaus/credhaus/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var (
	testSecret  = []byte("0123456789abcdef0123456789abcdef")
	otherSecret = []byte("fedcba9876543210fedcba9876543210")
)

func TestNewSignerRejectsShortSecret(t *testing.T) {
	t.Parallel()

	_, err := jwtx.NewSignerHS256([]byte("too-short"))
	require.ErrorIs(t, err, jwtx.ErrShortSecret)

	_, err = jwtx.NewVerifier("HS256", []byte("too-short"), "")
	require.ErrorIs(t, err, jwtx.ErrShortSecret)
}

func TestNewSignerRejectsUnknownAlgorithm(t *testing.T) {
	t.Parallel()

	_, err := jwtx.NewSigner("RS256", testSecret)
	require.Error(t, err)

	_, err = jwtx.NewSigner("none", testSecret)
	require.Error(t, err)
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	for _, alg := range jwtx.SupportedAlgorithms() {
		t.Run(alg, func(t *testing.T) {
			signer, err := jwtx.NewSigner(alg, testSecret)
			require.NoError(t, err)
			require.Equal(t, alg, signer.Alg())
			require.NoError(t, signer.Validate())

			verifier, err := jwtx.NewVerifier(alg, testSecret, "test-issuer")
			require.NoError(t, err)

			claims := jwtx.NewClaims("alice@example.com", jwtx.TokenUseAccess, time.Minute, "test-issuer", time.Now())
			token, err := signer.Sign(claims)
			require.NoError(t, err)
			require.NotEmpty(t, token)

			got, err := verifier.Verify(token)
			require.NoError(t, err)
			require.Equal(t, "alice@example.com", got.Subject)
			require.Equal(t, jwtx.TokenUseAccess, got.TokenUse)
			require.Equal(t, "test-issuer", got.Issuer)
			require.NotEmpty(t, got.ID)
		})
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	verifier, err := jwtx.NewVerifier("HS256", otherSecret, "")
	require.NoError(t, err)

	token, err := signer.Sign(jwtx.NewClaims("bob@example.com", jwtx.TokenUseAccess, time.Minute, "", time.Now()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestVerifyRejectsTamperedPayload(t *testing.T) {
	t.Parallel()

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifier("HS256", testSecret, "")
	require.NoError(t, err)

	token, err := signer.Sign(jwtx.NewClaims("carol@example.com", jwtx.TokenUseAccess, time.Minute, "", time.Now()))
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Flip a character in the payload segment; signature no longer matches.
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = verifier.Verify(tampered)
	require.Error(t, err)
	require.NotErrorIs(t, err, jwtx.ErrExpired)
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	t.Parallel()

	verifier, err := jwtx.NewVerifier("HS256", testSecret, "")
	require.NoError(t, err)

	for _, tok := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := verifier.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrMalformed, "token %q", tok)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	t.Parallel()

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifier("HS256", testSecret, "")
	require.NoError(t, err)

	// Issued two minutes ago with a one-minute lifetime.
	claims := jwtx.NewClaims("dave@example.com", jwtx.TokenUseAccess, time.Minute, "", time.Now().Add(-2*time.Minute))
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestVerifyExpiredTokenWithWrongKeyIsSignatureError(t *testing.T) {
	t.Parallel()

	signer, err := jwtx.NewSignerHS256(otherSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifier("HS256", testSecret, "")
	require.NoError(t, err)

	claims := jwtx.NewClaims("eve@example.com", jwtx.TokenUseAccess, time.Minute, "", time.Now().Add(-2*time.Minute))
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	// Signature is checked first, so this must never read as expired.
	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestVerifyRejectsAlgorithmSubstitution(t *testing.T) {
	t.Parallel()

	signer, err := jwtx.NewSigner("HS384", testSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifier("HS256", testSecret, "")
	require.NoError(t, err)

	token, err := signer.Sign(jwtx.NewClaims("frank@example.com", jwtx.TokenUseAccess, time.Minute, "", time.Now()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
	require.NotErrorIs(t, err, jwtx.ErrExpired)
}

func TestVerifyEnforcesIssuer(t *testing.T) {
	t.Parallel()

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifier("HS256", testSecret, "expected-issuer")
	require.NoError(t, err)

	token, err := signer.Sign(jwtx.NewClaims("grace@example.com", jwtx.TokenUseAccess, time.Minute, "another-issuer", time.Now()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestVerifyRequiresSubjectAndExpiry(t *testing.T) {
	t.Parallel()

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifier("HS256", testSecret, "")
	require.NoError(t, err)

	t.Run("missing subject", func(t *testing.T) {
		claims := jwtx.NewClaims("", jwtx.TokenUseAccess, time.Minute, "", time.Now())
		token, err := signer.Sign(claims)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
	})

	t.Run("missing expiry", func(t *testing.T) {
		claims := jwtx.Claims{}
		claims.Subject = "heidi@example.com"
		token, err := signer.Sign(claims)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
	})
}
