package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenManager("secret", 1)

	token, expiresAt, err := tokens.GenerateToken("ops", ScopeMetrics)
	require.NoError(t, err)
	require.True(t, expiresAt.After(time.Now()))

	claims, err := tokens.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, "ops", claims.Subject)
	require.Equal(t, ScopeMetrics, claims.Scope)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", 1)
	verifier := NewTokenManager("secret-b", 1)

	token, _, err := issuer.GenerateToken("ops", ScopeMetrics)
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	require.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	tokens := NewTokenManager("secret", 1)

	_, err := tokens.ParseToken("not-a-token")
	require.Error(t, err)
}
