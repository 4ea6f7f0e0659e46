package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GGmuzem/calc-api/pkg/models"
)

func TestTokenRoundTrip(t *testing.T) {
	a := New("test-secret", time.Hour)
	user := &models.User{ID: 7, Login: "alice"}

	token, expires, err := a.GenerateToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expires.After(time.Now()))

	claims, err := a.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "alice", claims.Login)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	a := New("test-secret", time.Hour)

	_, err := a.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := New("secret-one", time.Hour)
	verifier := New("secret-two", time.Hour)

	token, _, err := issuer.GenerateToken(&models.User{ID: 1, Login: "bob"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	a := New("test-secret", -time.Minute)

	token, _, err := a.GenerateToken(&models.User{ID: 1, Login: "bob"})
	require.NoError(t, err)

	_, err = a.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestClaimsContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, 0, UserIDFromContext(ctx))

	ctx = WithClaims(ctx, &Claims{UserID: 3, Login: "alice"})
	assert.Equal(t, 3, UserIDFromContext(ctx))

	claims, ok := ClaimsFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "alice", claims.Login)
}
