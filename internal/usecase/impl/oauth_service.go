package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"yap/config"
	deliverycontext "yap/internal/delivery/context"
	"yap/internal/domain/entity"
	domainerrors "yap/internal/domain/errors"
	"yap/internal/domain/repository"
	"yap/internal/domain/service"
	"yap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// oauthService implements the OAuthUsecase interface. Each supported provider
// is an explicit handler received at construction and addressed by key; there
// is no global provider registry.
type oauthService struct {
	providers        map[string]service.OAuthProvider
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	accountRepo      repository.AccountRepository
	refreshTokenRepo repository.RefreshTokenRepository
	tokenService     service.TokenService
	defaultAvatarURL string
	logger           *slog.Logger
}

// OAuthServiceParams holds dependencies for OAuthService, injected by Fx.
type OAuthServiceParams struct {
	fx.In

	Providers        []service.OAuthProvider `group:"oauth_providers"`
	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	AccountRepo      repository.AccountRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	TokenService     service.TokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewOAuthService is the constructor for oauthService.
func NewOAuthService(params OAuthServiceParams) usecase.OAuthUsecase {
	providers := make(map[string]service.OAuthProvider, len(params.Providers))
	for _, provider := range params.Providers {
		providers[provider.Provider()] = provider
	}

	defaultAvatarURL := ""
	if params.Config != nil && params.Config.Storage != nil {
		defaultAvatarURL = params.Config.Storage.DefaultAvatarURL
	}

	return &oauthService{
		providers:        providers,
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		accountRepo:      params.AccountRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		tokenService:     params.TokenService,
		defaultAvatarURL: defaultAvatarURL,
		logger:           params.Logger,
	}
}

func (srv *oauthService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AuthURL builds the consent page URL for the provider.
func (srv *oauthService) AuthURL(provider, state string) (string, error) {
	handler, ok := srv.providers[provider]
	if !ok {
		return "", domainerrors.ErrValidationFailed.WithDetails("unknown oauth provider")
	}

	return handler.AuthURL(state), nil
}

// Callback exchanges the authorization code and resolves the provider
// identity to a user, creating a pending one on first sight.
func (srv *oauthService) Callback(ctx context.Context, provider, code string) (*usecase.CallbackOutput, error) {
	handler, ok := srv.providers[provider]
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown oauth provider")
	}

	profile, err := handler.Exchange(ctx, code)
	if err != nil {
		srv.log(ctx).Warn("OAuth code exchange failed", slog.String("provider", provider), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to exchange oauth code")
	}

	var user *entity.User
	var pending bool

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, pending, err = srv.resolveIdentity(ctx, repoFactory, provider, profile)

		return err
	})
	if err != nil {
		return nil, err
	}

	out := &usecase.CallbackOutput{User: user, Pending: pending}

	if pending {
		onboardingToken, err := srv.tokenService.Generate(service.TokenKindOnboarding, user.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate onboarding token")
		}
		out.OnboardingToken = onboardingToken

		return out, nil
	}

	accessToken, refreshToken, err := srv.openSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	out.AccessToken = accessToken
	out.RefreshToken = refreshToken

	return out, nil
}

// resolveIdentity applies the callback resolution order. Email-bearing
// profiles resolve through the user's email first so a provider identity can
// attach to an existing account; email-less profiles resolve purely through
// the (provider, providerAccountID) pair.
func (srv *oauthService) resolveIdentity(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	provider string,
	profile *service.OAuthProfile,
) (*entity.User, bool, error) {
	userRepo := repoFactory.UserRepo()
	accountRepo := repoFactory.AccountRepo()

	if profile.Email != "" {
		email := strings.ToLower(profile.Email)

		existing, err := userRepo.FindByEmail(ctx, email)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return nil, false, errors.Wrap(err, "failed to find user by email")
		}
		if err == nil {
			return srv.resolveEmailMatch(ctx, accountRepo, existing, provider)
		}

		// Unseen email: brand-new pending user carrying it.
		user, err := srv.createPendingUser(ctx, userRepo, accountRepo, provider, profile, &email)
		if err != nil {
			return nil, false, err
		}

		return user, true, nil
	}

	// No email from the provider; the identity pair is all we have.
	account, err := accountRepo.FindByProviderAccountID(ctx, provider, profile.ProviderAccountID)
	if err != nil && !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, false, errors.Wrap(err, "failed to find account by provider identity")
	}
	if err == nil {
		user, findErr := userRepo.FindByID(ctx, account.UserID)
		if findErr != nil {
			return nil, false, errors.Wrap(findErr, "failed to find user for account")
		}

		return user, account.IsPending, nil
	}

	user, err := srv.createPendingUser(ctx, userRepo, accountRepo, provider, profile, nil)
	if err != nil {
		return nil, false, err
	}

	return user, true, nil
}

// resolveEmailMatch decides what an email match means: same provider logs in,
// a different provider is rejected, and a password-only account must use its
// password.
func (srv *oauthService) resolveEmailMatch(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	user *entity.User,
	provider string,
) (*entity.User, bool, error) {
	accounts, err := accountRepo.ListByUserID(ctx, user.ID)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to list user accounts")
	}

	if len(accounts) == 0 {
		return nil, false, domainerrors.ErrEmailNotLinkedToProvider
	}

	for _, account := range accounts {
		if account.Provider == provider {
			return user, account.IsPending, nil
		}
	}

	return nil, false, domainerrors.ErrEmailLinkedToOtherProvider
}

// createPendingUser creates the user row and its pending account link in the
// enclosing transaction.
func (srv *oauthService) createPendingUser(
	ctx context.Context,
	userRepo repository.UserRepository,
	accountRepo repository.AccountRepository,
	provider string,
	profile *service.OAuthProfile,
	email *string,
) (*entity.User, error) {
	avatarURL := profile.AvatarURL
	if avatarURL == "" {
		avatarURL = srv.defaultAvatarURL
	}

	newUser := &entity.User{
		Email:     email,
		AvatarURL: avatarURL,
	}
	if err := userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create oauth user")
	}

	newAccount := &entity.Account{
		UserID:            newUser.ID,
		Provider:          provider,
		ProviderAccountID: profile.ProviderAccountID,
		IsPending:         true,
	}
	if err := accountRepo.Create(ctx, newAccount); err != nil {
		return nil, errors.Wrap(err, "failed to create account link")
	}

	srv.log(ctx).Info("Created pending oauth user",
		slog.String("provider", provider),
		slog.Any("userID", newUser.ID),
	)

	return newUser, nil
}

// Onboard completes a pending OAuth signup: sets the username (and email when
// the provider supplied none), activates the account link and opens a session.
func (srv *oauthService) Onboard(ctx context.Context, input *usecase.OnboardInput) (*usecase.LoginOutput, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		accountRepo := repoFactory.AccountRepo()

		var err error
		user, err = userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find onboarding user")
		}

		account, err := firstAccount(ctx, accountRepo, input.UserID)
		if err != nil {
			return err
		}

		username := input.Username
		user.Username = &username

		if user.Email == nil {
			if input.Email == "" {
				return domainerrors.ErrValidationFailed.WithDetails("email is required")
			}
			email := strings.ToLower(strings.TrimSpace(input.Email))
			user.Email = &email
		}

		if err := userRepo.Update(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrEmailTaken
			}
			if errors.Is(err, repository.ErrDuplicateUsername) {
				return domainerrors.ErrUsernameTaken
			}

			return errors.Wrap(err, "failed to update onboarding user")
		}

		if account.IsPending {
			account.IsPending = false
			if err := accountRepo.Update(ctx, account); err != nil {
				return errors.Wrap(err, "failed to activate account link")
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	accessToken, refreshToken, err := srv.openSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Onboarding completed", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// PendingUser loads the user behind an onboarding token and verifies the
// account is still pending.
func (srv *oauthService) PendingUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find pending user")
	}

	account, err := firstAccount(ctx, srv.accountRepo, userID)
	if err != nil {
		return nil, err
	}
	if !account.IsPending {
		return nil, domainerrors.ErrForbidden
	}

	return user, nil
}

// CancelOnboarding deletes the pending user; database cascades remove the
// account link with it.
func (srv *oauthService) CancelOnboarding(ctx context.Context, userID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		account, err := firstAccount(ctx, repoFactory.AccountRepo(), userID)
		if err != nil {
			return err
		}
		if !account.IsPending {
			// A completed account is never deleted through this path.
			return domainerrors.ErrForbidden
		}

		if err := repoFactory.UserRepo().Delete(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to delete pending user")
		}

		srv.log(ctx).Info("Onboarding cancelled", slog.Any("userID", userID))

		return nil
	})
}

// openSession mints the token pair and persists the refresh row.
func (srv *oauthService) openSession(ctx context.Context, userID uuid.UUID) (accessToken, refreshToken string, err error) {
	accessToken, err = srv.tokenService.Generate(service.TokenKindAccess, userID)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate access token")
	}

	refreshToken, err = srv.tokenService.Generate(service.TokenKindRefresh, userID)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate refresh token")
	}

	row := &entity.RefreshToken{
		UserID:    userID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenDuration()),
	}
	if err := srv.refreshTokenRepo.Create(ctx, row); err != nil {
		return "", "", errors.Wrap(err, "failed to store refresh token")
	}

	return accessToken, refreshToken, nil
}

// firstAccount returns the user's oldest account link.
func firstAccount(ctx context.Context, accountRepo repository.AccountRepository, userID uuid.UUID) (*entity.Account, error) {
	accounts, err := accountRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user accounts")
	}
	if len(accounts) == 0 {
		return nil, domainerrors.ErrAccountNotFound
	}

	return accounts[0], nil
}
