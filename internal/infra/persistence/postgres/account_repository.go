package postgres

import (
	"context"

	"yap/internal/domain/entity"
	domainerrors "yap/internal/domain/errors"
	"yap/internal/domain/repository"
	"yap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// Create persists a new account link.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// The (provider, providerAccountID) pair is already linked.
			return domainerrors.ErrConflict.WrapMessage("provider identity already linked")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account link")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt

	return nil
}

// FindByProviderAccountID retrieves a link by its provider identity pair.
func (repo *accountRepository) FindByProviderAccountID(ctx context.Context, provider, providerAccountID string) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.db.WithContext(ctx).
		Where("provider = ? AND provider_account_id = ?", provider, providerAccountID).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by provider identity")
	}

	return toAccountDomain(&accountM), nil
}

// ListByUserID retrieves all links of a user, oldest first.
func (repo *accountRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error) {
	var accountModels []*model.AccountModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&accountModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list accounts by user")
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for _, accountM := range accountModels {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, nil
}

// Update modifies an existing link. Used to flip IsPending at onboarding.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", account.ID).
		Update("is_pending", account.IsPending)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update account link")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:                data.ID,
		UserID:            data.UserID,
		Provider:          data.Provider,
		ProviderAccountID: data.ProviderAccountID,
		IsPending:         data.IsPending,
		CreatedAt:         data.CreatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:                data.ID,
		UserID:            data.UserID,
		Provider:          data.Provider,
		ProviderAccountID: data.ProviderAccountID,
		IsPending:         data.IsPending,
		CreatedAt:         data.CreatedAt,
	}
}
