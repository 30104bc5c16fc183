package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/institute-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/institute-dashboard-api/pkg/errors"
)

func TestAuthServiceIssueAndValidate(t *testing.T) {
	svc := NewAuthService(zap.NewNop(), AuthConfig{AccessTokenSecret: "secret", Issuer: "institute", AccessTokenExpiry: time.Hour})

	token, expiresAt, err := svc.IssueToken("user-1", models.RoleManager, "m@example.com", "Manager")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, models.RoleManager, claims.Role)
}

func TestAuthServiceRejectsForeignSecret(t *testing.T) {
	issuer := NewAuthService(nil, AuthConfig{AccessTokenSecret: "other"})
	token, _, err := issuer.IssueToken("user-1", models.RoleAdmin, "", "")
	require.NoError(t, err)

	svc := NewAuthService(nil, AuthConfig{AccessTokenSecret: "secret"})
	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceRejectsExpiredToken(t *testing.T) {
	svc := NewAuthService(nil, AuthConfig{AccessTokenSecret: "secret", AccessTokenExpiry: time.Minute})
	issued := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }
	token, _, err := svc.IssueToken("user-1", models.RoleAdmin, "", "")
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(time.Hour) }
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
