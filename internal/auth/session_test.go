package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionIssuerRequiresSecret(t *testing.T) {
	_, err := NewSessionIssuer("", time.Hour)
	assert.Error(t, err)
}

func TestSessionRoundTrip(t *testing.T) {
	issuer, err := NewSessionIssuer("test-secret", 720*time.Hour)
	require.NoError(t, err)

	claim := Claim{SubjectID: "user-1", Role: "secretaria"}
	token, expiresAt, err := issuer.Issue(claim)
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	decoded, err := issuer.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, claim, *decoded)
}

func TestSessionDecodeNoToken(t *testing.T) {
	issuer, err := NewSessionIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	_, err = issuer.Decode("")
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestSessionDecodeMalformed(t *testing.T) {
	issuer, err := NewSessionIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	_, err = issuer.Decode("not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestSessionDecodeWrongSecret(t *testing.T) {
	issuer, err := NewSessionIssuer("secret-a", time.Hour)
	require.NoError(t, err)
	other, err := NewSessionIssuer("secret-b", time.Hour)
	require.NoError(t, err)

	token, _, err := issuer.Issue(Claim{SubjectID: "user-1", Role: "admin"})
	require.NoError(t, err)

	_, err = other.Decode(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestSessionDecodeExpired(t *testing.T) {
	issuer, err := NewSessionIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	issuedAt := time.Unix(1700000000, 0)
	issuer.now = func() time.Time { return issuedAt }
	token, _, err := issuer.Issue(Claim{SubjectID: "user-1", Role: "admin"})
	require.NoError(t, err)

	issuer.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	_, err = issuer.Decode(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

// A token presented exactly at its expiry instant must already be expired;
// an exclusive boundary would silently extend every session by one tick.
func TestSessionDecodeAtExactExpiry(t *testing.T) {
	issuer, err := NewSessionIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	issuedAt := time.Unix(1700000000, 0)
	issuer.now = func() time.Time { return issuedAt }
	token, expiresAt, err := issuer.Issue(Claim{SubjectID: "user-1", Role: "tecnico"})
	require.NoError(t, err)

	issuer.now = func() time.Time { return expiresAt }
	_, err = issuer.Decode(token)
	assert.ErrorIs(t, err, ErrTokenExpired)

	// One tick before expiry the token is still good.
	issuer.now = func() time.Time { return expiresAt.Add(-time.Second) }
	decoded, err := issuer.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", decoded.SubjectID)
}
