package auth

import (
	"testing"

	"yap/config"
	domainerrors "yap/internal/domain/errors"
	"yap/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTServiceForTest(t *testing.T) service.TokenService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"
	cfg.SecretKey.Onboarding = "onboarding-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestJWTService_MissingSecrets(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"

	svc, err := NewJWTService(cfg)

	require.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newJWTServiceForTest(t)
	userID := uuid.New()

	for _, kind := range []service.TokenKind{
		service.TokenKindAccess,
		service.TokenKindRefresh,
		service.TokenKindOnboarding,
	} {
		token, err := svc.Generate(kind, userID)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.Validate(kind, token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, kind, claims.Kind)
	}
}

func TestJWTService_KindsAreNotInterchangeable(t *testing.T) {
	svc := newJWTServiceForTest(t)
	userID := uuid.New()

	// An onboarding token must never pass as an access token: the kinds are
	// signed with different secrets.
	onboardingToken, err := svc.Generate(service.TokenKindOnboarding, userID)
	require.NoError(t, err)

	claims, err := svc.Validate(service.TokenKindAccess, onboardingToken)

	require.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestJWTService_GarbageToken(t *testing.T) {
	svc := newJWTServiceForTest(t)

	claims, err := svc.Validate(service.TokenKindAccess, "not-a-jwt")

	require.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestJWTService_TamperedToken(t *testing.T) {
	svc := newJWTServiceForTest(t)

	token, err := svc.Generate(service.TokenKindAccess, uuid.New())
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"

	claims, err := svc.Validate(service.TokenKindAccess, tampered)

	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RefreshTokenDuration(t *testing.T) {
	svc := newJWTServiceForTest(t)

	assert.Equal(t, refreshTokenTTL, svc.RefreshTokenDuration())
}
