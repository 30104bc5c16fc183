package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/institute-dashboard-api/internal/models"
	"github.com/noah-isme/institute-dashboard-api/internal/service"
)

func TestRunMintsVerifiableToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_ISSUER", "institute")

	var out bytes.Buffer
	require.NoError(t, run([]string{"--user", "ops-1", "--role", "admin", "--ttl", "2h"}, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "expires "))

	auth := service.NewAuthService(nil, service.AuthConfig{AccessTokenSecret: "s3cret", Issuer: "institute"})
	claims, err := auth.ValidateToken(lines[0])
	require.NoError(t, err)
	assert.Equal(t, "ops-1", claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestRunRejectsBadInput(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	var out bytes.Buffer
	assert.ErrorContains(t, run([]string{"--role", "ADMIN"}, &out), "--user")
	assert.ErrorContains(t, run([]string{"--user", "u", "--role", "owner"}, &out), "unknown role")
	assert.Empty(t, out.String())
}

func TestRunRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	err := run([]string{"--user", "u"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "JWT_SECRET")
}
