package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appctx "patrimonio/internal/core/context"
	"patrimonio/internal/core/entity"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))

	project := "PRY-001"
	user := &User{
		Base:        entity.NewBase(),
		Email:       "registrador@example.com",
		Role:        appctx.RoleRegistrador,
		ProjectCode: &project,
	}

	token, expiresAt, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	ctx, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), ctx.UserID)
	assert.Equal(t, user.Email, ctx.Email)
	assert.Equal(t, appctx.RoleRegistrador, ctx.Role)
	assert.Equal(t, project, ctx.ProjectID)
	assert.False(t, ctx.IsAdmin)
}

func TestJWTService_AdminFlag(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))

	user := &User{Base: entity.NewBase(), Email: "admin@example.com", Role: appctx.RoleAdministrador}
	token, _, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)

	ctx, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, ctx.IsAdmin)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService(DefaultJWTConfig("secret-a"))
	verifier := NewJWTService(DefaultJWTConfig("secret-b"))

	user := &User{Base: entity.NewBase(), Email: "x@example.com", Role: appctx.RoleCoordinador}
	token, _, err := issuer.GenerateAccessToken(user)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}
