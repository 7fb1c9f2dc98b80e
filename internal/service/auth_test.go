package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/boxpack-service/config"
	"github.com/guttosm/boxpack-service/internal/mocks"
	"github.com/guttosm/boxpack-service/internal/repository"
)

func testAuthService() (AuthService, *mocks.UserRepositoryMock, *mocks.TokenRepositoryMock) {
	userRepo := mocks.NewUserRepositoryMock()
	tokenRepo := mocks.NewTokenRepositoryMock()
	authCfg := config.AuthConfig{
		JWTSecretKey:     "unit-test-secret",
		JWTRefreshSecret: "unit-test-refresh-secret",
		AccessTokenTTL:   time.Minute,
		RefreshTokenTTL:  time.Hour,
	}
	return NewAuthService(userRepo, tokenRepo, authCfg), userRepo, tokenRepo
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc, _, _ := testAuthService()
	ctx := context.Background()

	tokens, user, err := svc.Register(ctx, "ops@example.com", "ops", "s3cret-pass", "Warehouse Ops")
	require.NoError(t, err)
	require.NotNil(t, tokens)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, "ops@example.com", user.Email)
	assert.NotEqual(t, "s3cret-pass", user.Password, "password stored hashed")

	// Registering the same email again conflicts.
	_, _, err = svc.Register(ctx, "ops@example.com", "ops2", "other-pass", "Other")
	assert.ErrorIs(t, err, ErrUserExists)

	loginTokens, loginUser, err := svc.Login(ctx, "ops@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, loginTokens.AccessToken)
	assert.Equal(t, user.ID, loginUser.ID)

	_, _, err = svc.Login(ctx, "ops@example.com", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_ValidateToken(t *testing.T) {
	svc, _, _ := testAuthService()
	ctx := context.Background()

	tokens, user, err := svc.Register(ctx, "ops@example.com", "ops", "s3cret-pass", "Warehouse Ops")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(ctx, tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "ops@example.com", claims.Email)

	_, err = svc.ValidateToken(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_RefreshRotatesToken(t *testing.T) {
	svc, _, _ := testAuthService()
	ctx := context.Background()

	tokens, _, err := svc.Register(ctx, "ops@example.com", "ops", "s3cret-pass", "Warehouse Ops")
	require.NoError(t, err)

	fresh, err := svc.RefreshToken(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)

	// The exchanged refresh token is single use.
	_, err = svc.RefreshToken(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_LogoutBlacklistsAccessToken(t *testing.T) {
	svc, _, _ := testAuthService()
	ctx := context.Background()

	tokens, _, err := svc.Register(ctx, "ops@example.com", "ops", "s3cret-pass", "Warehouse Ops")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, tokens.AccessToken, tokens.RefreshToken))

	_, err = svc.ValidateToken(ctx, tokens.AccessToken)
	assert.ErrorIs(t, err, ErrTokenBlacklisted)

	_, err = svc.RefreshToken(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestBoxSetsService_WithoutRepository(t *testing.T) {
	svc := NewBoxSetsService(nil)

	_, err := svc.GetActive(context.Background())
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
	_, err = svc.Create(context.Background(), nil, "")
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
	_, err = svc.List(context.Background(), 10)
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
}

func TestBoxSetsService_RoundTrip(t *testing.T) {
	repo := mocks.NewBoxSetsRepositoryMock()
	svc := NewBoxSetsService(repo)
	ctx := context.Background()

	quantity := 5
	entries := []repository.BoxEntry{{
		Reference:   "medium-parcel",
		InnerWidth:  350,
		InnerLength: 250,
		InnerDepth:  160,
		EmptyWeight: 340,
		MaxWeight:   10000,
		Quantity:    &quantity,
	}}
	created, err := svc.Create(ctx, entries, "tester")
	require.NoError(t, err)
	assert.True(t, created.Active)
	assert.Equal(t, 1, created.Version)

	active, err := svc.GetActive(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, created.ID, active.ID)

	boxes := BoxesFromConfig(active)
	require.Len(t, boxes, 1)
	assert.Equal(t, "medium-parcel", boxes[0].Reference)
}
