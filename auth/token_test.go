package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamcraft-eng/dreamcraft-backend/errs"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	other := NewTokenIssuer("different-secret", time.Hour)

	token, err := issuer.Issue(42)
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.True(t, errs.IsCredential(err))
}

func TestExpiredTokenRejected(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.Issue(42)
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	require.Error(t, err)
	assert.True(t, errs.IsCredential(err))
}

func TestGarbageTokenRejected(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	_, err := issuer.Verify("not-a-token")
	assert.True(t, errs.IsCredential(err))

	_, err = issuer.Verify("")
	assert.True(t, errs.IsCredential(err))
}
