package impl

import (
	"context"
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

type oauthServiceFixture struct {
	svc          usecase.OAuthUsecase
	provider     *mockService.MockOAuthProvider
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	accountRepo  *mockRepo.MockAccountRepository
	refreshRepo  *mockRepo.MockRefreshTokenRepository
	tokenService *mockService.MockTokenService
}

func newOAuthServiceForTest(t *testing.T) *oauthServiceFixture {
	provider := mockService.NewMockOAuthProvider(t)
	provider.EXPECT().Provider().Return(entity.ProviderGoogle)

	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	tokenService := mockService.NewMockTokenService(t)

	svc := NewOAuthService(OAuthServiceParams{
		Providers:        []service.OAuthProvider{provider},
		TxManager:        txManager,
		UserRepo:         userRepo,
		AccountRepo:      accountRepo,
		RefreshTokenRepo: refreshRepo,
		TokenService:     tokenService,
		Config: &config.Config{
			Storage: &config.StorageConfig{DefaultAvatarURL: "https://cdn.example.com/default.png"},
		},
		Logger: discardLogger(),
	})

	return &oauthServiceFixture{
		svc:          svc,
		provider:     provider,
		txManager:    txManager,
		userRepo:     userRepo,
		accountRepo:  accountRepo,
		refreshRepo:  refreshRepo,
		tokenService: tokenService,
	}
}

// runTx makes the transaction manager run its function against per-test repo mocks.
func (f *oauthServiceFixture) runTx(t *testing.T, ctx context.Context, bind func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			bind(factory)

			return fn(factory)
		})
}

func (f *oauthServiceFixture) expectSession(ctx context.Context, userID uuid.UUID) {
	f.tokenService.EXPECT().Generate(service.TokenKindAccess, userID).Return("access-token", nil)
	f.tokenService.EXPECT().Generate(service.TokenKindRefresh, userID).Return("refresh-token", nil)
	f.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)
	f.refreshRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)
}

func TestOAuthService_AuthURL_Success(t *testing.T) {
	f := newOAuthServiceForTest(t)

	f.provider.EXPECT().AuthURL("state-123").Return("https://accounts.google.com/o/oauth2/auth?state=state-123")

	url, err := f.svc.AuthURL(entity.ProviderGoogle, "state-123")

	require.NoError(t, err)
	assert.Contains(t, url, "state-123")
}

func TestOAuthService_AuthURL_UnknownProvider(t *testing.T) {
	f := newOAuthServiceForTest(t)

	url, err := f.svc.AuthURL("myspace", "state-123")

	require.Error(t, err)
	assert.Empty(t, url)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestOAuthService_Callback_NewUser_Pending(t *testing.T) {
	f := newOAuthServiceForTest(t)
	ctx := context.Background()

	profile := &service.OAuthProfile{
		ProviderAccountID: "google-123",
		Email:             "Fresh@Example.com",
		Name:              "Fresh User",
	}
	f.provider.EXPECT().Exchange(ctx, "auth-code").Return(profile, nil)

	f.runTx(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		accountRepo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().AccountRepo().Return(accountRepo)

		userRepo.EXPECT().FindByEmail(ctx, "fresh@example.com").Return(nil, repository.ErrUserNotFound)
		userRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				require.NotNil(t, user.Email)
				assert.Equal(t, "fresh@example.com", *user.Email)
				assert.Nil(t, user.Username)
				assert.Equal(t, "https://cdn.example.com/default.png", user.AvatarURL)
				user.ID = uuid.New()
			}).
			Return(nil)
		accountRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Account")).
			Run(func(ctx context.Context, account *entity.Account) {
				assert.Equal(t, entity.ProviderGoogle, account.Provider)
				assert.Equal(t, "google-123", account.ProviderAccountID)
				assert.True(t, account.IsPending)
			}).
			Return(nil)
	})

	f.tokenService.EXPECT().
		Generate(service.TokenKindOnboarding, mock.AnythingOfType("uuid.UUID")).
		Return("onboarding-token", nil)

	out, err := f.svc.Callback(ctx, entity.ProviderGoogle, "auth-code")

	require.NoError(t, err)
	assert.True(t, out.Pending)
	assert.Equal(t, "onboarding-token", out.OnboardingToken)
	assert.Empty(t, out.AccessToken)
	assert.Empty(t, out.RefreshToken)
}

func TestOAuthService_Callback_ExistingUser_LogsIn(t *testing.T) {
	f := newOAuthServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, Email: ptr("known@example.com"), Username: ptr("known")}
	profile := &service.OAuthProfile{ProviderAccountID: "google-123", Email: "known@example.com"}

	f.provider.EXPECT().Exchange(ctx, "auth-code").Return(profile, nil)

	f.runTx(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		accountRepo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().AccountRepo().Return(accountRepo)

		userRepo.EXPECT().FindByEmail(ctx, "known@example.com").Return(user, nil)
		accountRepo.EXPECT().ListByUserID(ctx, userID).Return([]*entity.Account{
			{UserID: userID, Provider: entity.ProviderGoogle, ProviderAccountID: "google-123", IsPending: false},
		}, nil)
	})

	f.expectSession(ctx, userID)

	out, err := f.svc.Callback(ctx, entity.ProviderGoogle, "auth-code")

	require.NoError(t, err)
	assert.False(t, out.Pending)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Empty(t, out.OnboardingToken)
}

func TestOAuthService_Callback_EmailLinkedToOtherProvider(t *testing.T) {
	f := newOAuthServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, Email: ptr("known@example.com")}
	profile := &service.OAuthProfile{ProviderAccountID: "google-123", Email: "known@example.com"}

	f.provider.EXPECT().Exchange(ctx, "auth-code").Return(profile, nil)

	f.runTx(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		accountRepo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().AccountRepo().Return(accountRepo)

		userRepo.EXPECT().FindByEmail(ctx, "known@example.com").Return(user, nil)
		accountRepo.EXPECT().ListByUserID(ctx, userID).Return([]*entity.Account{
			{UserID: userID, Provider: entity.ProviderGitHub, ProviderAccountID: "gh-9"},
		}, nil)
	})

	out, err := f.svc.Callback(ctx, entity.ProviderGoogle, "auth-code")

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrEmailLinkedToOtherProvider)
}

func TestOAuthService_Callback_PasswordAccountWithSameEmail(t *testing.T) {
	f := newOAuthServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, Email: ptr("known@example.com"), PasswordHash: ptr("hash")}
	profile := &service.OAuthProfile{ProviderAccountID: "google-123", Email: "known@example.com"}

	f.provider.EXPECT().Exchange(ctx, "auth-code").Return(profile, nil)

	f.runTx(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		accountRepo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().AccountRepo().Return(accountRepo)

		userRepo.EXPECT().FindByEmail(ctx, "known@example.com").Return(user, nil)
		// No account links: this user exists through password signup only.
		accountRepo.EXPECT().ListByUserID(ctx, userID).Return([]*entity.Account{}, nil)
	})

	out, err := f.svc.Callback(ctx, entity.ProviderGoogle, "auth-code")

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrEmailNotLinkedToProvider)
}

func TestOAuthService_Callback_NoEmail_ResolvesByProviderIdentity(t *testing.T) {
	f := newOAuthServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, Username: ptr("known")}
	profile := &service.OAuthProfile{ProviderAccountID: "google-123"}

	f.provider.EXPECT().Exchange(ctx, "auth-code").Return(profile, nil)

	f.runTx(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		accountRepo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().AccountRepo().Return(accountRepo)

		accountRepo.EXPECT().FindByProviderAccountID(ctx, entity.ProviderGoogle, "google-123").
			Return(&entity.Account{UserID: userID, Provider: entity.ProviderGoogle, IsPending: false}, nil)
		userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	})

	f.expectSession(ctx, userID)

	out, err := f.svc.Callback(ctx, entity.ProviderGoogle, "auth-code")

	require.NoError(t, err)
	assert.False(t, out.Pending)
	assert.Equal(t, user, out.User)
}

func TestOAuthService_Onboard_Success(t *testing.T) {
	f := newOAuthServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, Email: ptr("fresh@example.com")}

	f.runTx(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		accountRepo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().AccountRepo().Return(accountRepo)

		userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		accountRepo.EXPECT().ListByUserID(ctx, userID).Return([]*entity.Account{
			{ID: uuid.New(), UserID: userID, Provider: entity.ProviderGoogle, IsPending: true},
		}, nil)
		userRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, updated *entity.User) {
				require.NotNil(t, updated.Username)
				assert.Equal(t, "freshuser", *updated.Username)
			}).
			Return(nil)
		accountRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Account")).
			Run(func(ctx context.Context, account *entity.Account) {
				assert.False(t, account.IsPending)
			}).
			Return(nil)
	})

	f.expectSession(ctx, userID)

	out, err := f.svc.Onboard(ctx, &usecase.OnboardInput{UserID: userID, Username: "freshuser"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, user, out.User)
}

func TestOAuthService_Onboard_EmailRequired(t *testing.T) {
	f := newOAuthServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	// The provider supplied no email, and the input carries none either.
	user := &entity.User{ID: userID}

	f.runTx(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		accountRepo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().AccountRepo().Return(accountRepo)

		userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		accountRepo.EXPECT().ListByUserID(ctx, userID).Return([]*entity.Account{
			{UserID: userID, Provider: entity.ProviderGitHub, IsPending: true},
		}, nil)
	})

	out, err := f.svc.Onboard(ctx, &usecase.OnboardInput{UserID: userID, Username: "freshuser"})

	require.Error(t, err)
	assert.Nil(t, out)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestOAuthService_Onboard_UsernameTaken(t *testing.T) {
	f := newOAuthServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, Email: ptr("fresh@example.com")}

	f.runTx(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		accountRepo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().AccountRepo().Return(accountRepo)

		userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		accountRepo.EXPECT().ListByUserID(ctx, userID).Return([]*entity.Account{
			{UserID: userID, Provider: entity.ProviderGoogle, IsPending: true},
		}, nil)
		userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).
			Return(repository.ErrDuplicateUsername)
	})

	out, err := f.svc.Onboard(ctx, &usecase.OnboardInput{UserID: userID, Username: "taken"})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestOAuthService_PendingUser_NotPending(t *testing.T) {
	f := newOAuthServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	f.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	f.accountRepo.EXPECT().ListByUserID(ctx, userID).Return([]*entity.Account{
		{UserID: userID, Provider: entity.ProviderGoogle, IsPending: false},
	}, nil)

	user, err := f.svc.PendingUser(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOAuthService_CancelOnboarding_Success(t *testing.T) {
	f := newOAuthServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()

	f.runTx(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		accountRepo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().AccountRepo().Return(accountRepo)

		accountRepo.EXPECT().ListByUserID(ctx, userID).Return([]*entity.Account{
			{UserID: userID, Provider: entity.ProviderGoogle, IsPending: true},
		}, nil)
		userRepo.EXPECT().Delete(ctx, userID).Return(nil)
	})

	err := f.svc.CancelOnboarding(ctx, userID)

	require.NoError(t, err)
}

func TestOAuthService_CancelOnboarding_CompletedAccount(t *testing.T) {
	f := newOAuthServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()

	f.runTx(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().AccountRepo().Return(accountRepo)

		accountRepo.EXPECT().ListByUserID(ctx, userID).Return([]*entity.Account{
			{UserID: userID, Provider: entity.ProviderGoogle, IsPending: false},
		}, nil)
	})

	err := f.svc.CancelOnboarding(ctx, userID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
