package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobhubapp/jobhub/pkg/kernel"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour, "jobhub")

	token, err := svc.GenerateToken(kernel.NewUserID("user-1"), kernel.RoleJobSeeker, "Ravi Kumar")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, kernel.UserID("user-1"), claims.UserID)
	assert.Equal(t, kernel.RoleJobSeeker, claims.Role)
	assert.Equal(t, "Ravi Kumar", claims.Name)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour, "jobhub")
	verifier := NewTokenService("secret-b", time.Hour, "jobhub")

	token, err := issuer.GenerateToken(kernel.NewUserID("user-1"), kernel.RoleEmployer, "Asha")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsWrongIssuer(t *testing.T) {
	issuer := NewTokenService("secret", time.Hour, "someone-else")
	verifier := NewTokenService("secret", time.Hour, "jobhub")

	token, err := issuer.GenerateToken(kernel.NewUserID("user-1"), kernel.RoleEmployer, "Asha")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := NewTokenService("secret", -time.Minute, "jobhub")

	token, err := svc.GenerateToken(kernel.NewUserID("user-1"), kernel.RoleJobSeeker, "Ravi")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, "jobhub")

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
