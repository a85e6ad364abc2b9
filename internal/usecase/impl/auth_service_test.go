package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"yap/config"
	"yap/internal/domain/entity"
	domainerrors "yap/internal/domain/errors"
	"yap/internal/domain/repository"
	"yap/internal/domain/service"
	mockRepo "yap/internal/mocks/repository"
	mockService "yap/internal/mocks/service"
	"yap/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthServiceForTest(t *testing.T) (usecase.AuthUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockUserRepository, *mockRepo.MockRefreshTokenRepository, *mockService.MockPasswordHasher, *mockService.MockTokenService) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	svc := NewAuthService(AuthServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Config:           &config.Config{Auth: &config.AuthConfig{MaxActiveSessions: 5}},
		Logger:           discardLogger(),
	})

	return svc, txManager, userRepo, refreshRepo, hasher, tokenService
}

func ptr(s string) *string { return &s }

func TestAuthService_Signup_Success(t *testing.T) {
	svc, txManager, _, _, hasher, _ := newAuthServiceForTest(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Email:    "New.User@Example.com",
		Username: "newuser",
		Password: "Str0ngPassword",
	}

	hasher.EXPECT().ValidateStrength("Str0ngPassword").Return(nil)
	hasher.EXPECT().Hash("Str0ngPassword").Return("hashed-password", nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	out, err := svc.Signup(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, out.User)
	assert.Equal(t, "new.user@example.com", *out.User.Email)
	assert.Equal(t, "newuser", *out.User.Username)
	assert.Equal(t, "hashed-password", *out.User.PasswordHash)
	assert.NotEqual(t, uuid.Nil, out.User.ID)
}

func TestAuthService_Signup_WeakPassword(t *testing.T) {
	svc, _, _, _, hasher, _ := newAuthServiceForTest(t)

	hasher.EXPECT().ValidateStrength("short").Return(domainerrors.ErrValidationFailed)

	out, err := svc.Signup(context.Background(), &usecase.SignupInput{
		Email:    "user@example.com",
		Username: "user",
		Password: "short",
	})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	svc, txManager, _, _, hasher, _ := newAuthServiceForTest(t)

	ctx := context.Background()
	hasher.EXPECT().ValidateStrength("Str0ngPassword").Return(nil)
	hasher.EXPECT().Hash("Str0ngPassword").Return("hashed-password", nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrDuplicateEmail)

	out, err := svc.Signup(ctx, &usecase.SignupInput{
		Email:    "taken@example.com",
		Username: "someone",
		Password: "Str0ngPassword",
	})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_Signup_DuplicateUsername(t *testing.T) {
	svc, txManager, _, _, hasher, _ := newAuthServiceForTest(t)

	ctx := context.Background()
	hasher.EXPECT().ValidateStrength("Str0ngPassword").Return(nil)
	hasher.EXPECT().Hash("Str0ngPassword").Return("hashed-password", nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrDuplicateUsername)

	out, err := svc.Signup(ctx, &usecase.SignupInput{
		Email:    "someone@example.com",
		Username: "taken",
		Password: "Str0ngPassword",
	})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestAuthService_Login_WithEmail_Success(t *testing.T) {
	svc, _, userRepo, refreshRepo, hasher, tokenService := newAuthServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        ptr("user@example.com"),
		Username:     ptr("user"),
		PasswordHash: ptr("hashed-password"),
	}

	userRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(user, nil)
	hasher.EXPECT().Check("Str0ngPassword", "hashed-password").Return(nil)
	tokenService.EXPECT().Generate(service.TokenKindAccess, userID).Return("access-token", nil)
	tokenService.EXPECT().Generate(service.TokenKindRefresh, userID).Return("refresh-token", nil)
	refreshRepo.EXPECT().CountActiveByUserID(ctx, userID).Return(1, nil)
	tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)
	refreshRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.Equal(t, userID, token.UserID)
			assert.Equal(t, "refresh-token", token.Token)
			assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), token.ExpiresAt, time.Minute)
		}).
		Return(nil)

	out, err := svc.Login(ctx, &usecase.LoginInput{Identifier: "user@example.com", Password: "Str0ngPassword"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Equal(t, user, out.User)
}

func TestAuthService_Login_WithUsername_Success(t *testing.T) {
	svc, _, userRepo, refreshRepo, hasher, tokenService := newAuthServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: ptr("user"), PasswordHash: ptr("hashed-password")}

	userRepo.EXPECT().FindByUsername(ctx, "user").Return(user, nil)
	hasher.EXPECT().Check("Str0ngPassword", "hashed-password").Return(nil)
	tokenService.EXPECT().Generate(service.TokenKindAccess, userID).Return("access-token", nil)
	tokenService.EXPECT().Generate(service.TokenKindRefresh, userID).Return("refresh-token", nil)
	refreshRepo.EXPECT().CountActiveByUserID(ctx, userID).Return(0, nil)
	tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)
	refreshRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

	out, err := svc.Login(ctx, &usecase.LoginInput{Identifier: "user", Password: "Str0ngPassword"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, _, userRepo, _, _, _ := newAuthServiceForTest(t)

	ctx := context.Background()
	userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	out, err := svc.Login(ctx, &usecase.LoginInput{Identifier: "ghost@example.com", Password: "whatever"})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, userRepo, _, hasher, _ := newAuthServiceForTest(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: ptr("user@example.com"), PasswordHash: ptr("hashed-password")}

	userRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(user, nil)
	hasher.EXPECT().Check("wrong", "hashed-password").Return(domainerrors.ErrInvalidCredentials)

	out, err := svc.Login(ctx, &usecase.LoginInput{Identifier: "user@example.com", Password: "wrong"})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_OAuthOnlyUser(t *testing.T) {
	svc, _, userRepo, _, _, _ := newAuthServiceForTest(t)

	ctx := context.Background()
	// No password hash: the user signed up through OAuth.
	user := &entity.User{ID: uuid.New(), Email: ptr("oauth@example.com")}

	userRepo.EXPECT().FindByEmail(ctx, "oauth@example.com").Return(user, nil)

	out, err := svc.Login(ctx, &usecase.LoginInput{Identifier: "oauth@example.com", Password: "whatever"})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_SessionLimitExceeded(t *testing.T) {
	svc, _, userRepo, refreshRepo, hasher, tokenService := newAuthServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: ptr("user@example.com"), PasswordHash: ptr("hashed-password")}

	userRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(user, nil)
	hasher.EXPECT().Check("Str0ngPassword", "hashed-password").Return(nil)
	tokenService.EXPECT().Generate(service.TokenKindAccess, userID).Return("access-token", nil)
	tokenService.EXPECT().Generate(service.TokenKindRefresh, userID).Return("refresh-token", nil)
	refreshRepo.EXPECT().CountActiveByUserID(ctx, userID).Return(5, nil)

	out, err := svc.Login(ctx, &usecase.LoginInput{Identifier: "user@example.com", Password: "Str0ngPassword"})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestAuthService_Refresh_Success(t *testing.T) {
	svc, _, _, refreshRepo, _, tokenService := newAuthServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	claims := &service.Claims{UserID: userID, Kind: service.TokenKindRefresh}

	tokenService.EXPECT().Validate(service.TokenKindRefresh, "refresh-token").Return(claims, nil)
	refreshRepo.EXPECT().FindByToken(ctx, "refresh-token").
		Return(&entity.RefreshToken{UserID: userID, Token: "refresh-token"}, nil)
	tokenService.EXPECT().Generate(service.TokenKindAccess, userID).Return("new-access-token", nil)

	out, err := svc.Refresh(ctx, "refresh-token")

	require.NoError(t, err)
	assert.Equal(t, "new-access-token", out.AccessToken)
}

func TestAuthService_Refresh_BadSignature(t *testing.T) {
	svc, _, _, _, _, tokenService := newAuthServiceForTest(t)

	tokenService.EXPECT().Validate(service.TokenKindRefresh, "garbage").
		Return(nil, domainerrors.ErrTokenInvalid)

	out, err := svc.Refresh(context.Background(), "garbage")

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Refresh_RevokedToken(t *testing.T) {
	svc, _, _, refreshRepo, _, tokenService := newAuthServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	tokenService.EXPECT().Validate(service.TokenKindRefresh, "refresh-token").
		Return(&service.Claims{UserID: userID, Kind: service.TokenKindRefresh}, nil)
	refreshRepo.EXPECT().FindByToken(ctx, "refresh-token").
		Return(nil, repository.ErrRefreshTokenRevoked)

	out, err := svc.Refresh(ctx, "refresh-token")

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Refresh_SubjectMismatch(t *testing.T) {
	svc, _, _, refreshRepo, _, tokenService := newAuthServiceForTest(t)

	ctx := context.Background()

	tokenService.EXPECT().Validate(service.TokenKindRefresh, "refresh-token").
		Return(&service.Claims{UserID: uuid.New(), Kind: service.TokenKindRefresh}, nil)
	refreshRepo.EXPECT().FindByToken(ctx, "refresh-token").
		Return(&entity.RefreshToken{UserID: uuid.New(), Token: "refresh-token"}, nil)

	out, err := svc.Refresh(ctx, "refresh-token")

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Logout_Success(t *testing.T) {
	svc, _, _, refreshRepo, _, _ := newAuthServiceForTest(t)

	ctx := context.Background()
	refreshRepo.EXPECT().Revoke(ctx, "refresh-token").Return(nil)

	err := svc.Logout(ctx, "refresh-token")

	require.NoError(t, err)
}

func TestAuthService_Logout_UnknownToken(t *testing.T) {
	svc, _, _, refreshRepo, _, _ := newAuthServiceForTest(t)

	ctx := context.Background()
	refreshRepo.EXPECT().Revoke(ctx, "unknown").Return(repository.ErrRefreshTokenNotFound)

	err := svc.Logout(ctx, "unknown")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_GetUser_NotFound(t *testing.T) {
	svc, _, userRepo, _, _, _ := newAuthServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := svc.GetUser(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
