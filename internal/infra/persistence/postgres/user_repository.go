// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"gaspass/internal/domain/entity"
	domainerrors "gaspass/internal/domain/errors"
	"gaspass/internal/domain/repository"
	"gaspass/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user row. A uniqueness race on username, phone or
// email surfaces as the conflict error even when the pre-check passed.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByUsername retrieves a single user by their username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, "username = ?", username)
}

// FindByPhone retrieves a single user by their phone number.
func (repo *userRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	return repo.findOne(ctx, "phone = ?", phone)
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ?", email)
}

// FindByTelegramID retrieves a single user by their telegram channel ID.
func (repo *userRepository) FindByTelegramID(ctx context.Context, telegramID string) (*entity.User, error) {
	return repo.findOne(ctx, "telegram_id = ?", telegramID)
}

// FindByResetToken retrieves the user holding the given recovery token.
func (repo *userRepository) FindByResetToken(ctx context.Context, token string) (*entity.User, error) {
	return repo.findOne(ctx, "reset_token = ?", token)
}

func (repo *userRepository) findOne(ctx context.Context, cond string, value any) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).Where(cond, value).First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// ExistsByUsernameOrPhone runs the single uniqueness pre-check used by signup.
func (repo *userRepository) ExistsByUsernameOrPhone(ctx context.Context, username, phone string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("username = ? OR phone = ?", username, phone).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check username and phone uniqueness")
	}

	return count > 0, nil
}

// List returns every account, newest first.
func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var models []model.UserModel
	err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return toUserDomainList(models), nil
}

// ListPending returns accounts still waiting for validation, oldest first.
func (repo *userRepository) ListPending(ctx context.Context) ([]*entity.User, error) {
	var models []model.UserModel
	err := repo.db.WithContext(ctx).
		Where("is_validated = ? AND is_admin = ?", false, false).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending users")
	}

	return toUserDomainList(models), nil
}

// Validate flips is_validated to true, opening the login gate.
func (repo *userRepository) Validate(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("is_validated", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to validate user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateIdentity applies the fixed identity column patch.
func (repo *userRepository) UpdateIdentity(ctx context.Context, id uuid.UUID, update repository.IdentityUpdate) error {
	columns := map[string]any{}
	if update.Name != nil {
		columns["name"] = *update.Name
	}
	if update.Username != nil {
		columns["username"] = *update.Username
	}
	if update.Phone != nil {
		columns["phone"] = *update.Phone
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user identity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// SetResetGrant stores a new recovery grant, both columns in one write.
func (repo *userRepository) SetResetGrant(ctx context.Context, id uuid.UUID, token string, expires time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"reset_token":   token,
			"reset_expires": expires,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to store reset grant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// CompletePasswordReset installs the new hash, clears the grant and bumps
// token_version in a single statement.
func (repo *userRepository) CompletePasswordReset(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"password_hash": passwordHash,
			"reset_token":   nil,
			"reset_expires": nil,
			"token_version": gorm.Expr("token_version + 1"),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to complete password reset")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes the row permanently.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.UserModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mappers between persistence models and domain entities ---

func toUserDomain(data *model.UserModel) *entity.User {
	return &entity.User{
		ID:           data.ID,
		Username:     strVal(data.Username),
		Name:         data.Name,
		Phone:        strVal(data.Phone),
		Email:        strVal(data.Email),
		TelegramID:   strVal(data.TelegramID),
		PasswordHash: data.PasswordHash,
		IsValidated:  data.IsValidated,
		IsAdmin:      data.IsAdmin,
		ResetToken:   strVal(data.ResetToken),
		ResetExpires: data.ResetExpires,
		TokenVersion: data.TokenVersion,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toUserDomainList(models []model.UserModel) []*entity.User {
	users := make([]*entity.User, 0, len(models))
	for i := range models {
		users = append(users, toUserDomain(&models[i]))
	}

	return users
}

func fromUserDomain(data *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           data.ID,
		Username:     strPtr(data.Username),
		Name:         data.Name,
		Phone:        strPtr(data.Phone),
		Email:        strPtr(data.Email),
		TelegramID:   strPtr(data.TelegramID),
		PasswordHash: data.PasswordHash,
		IsValidated:  data.IsValidated,
		IsAdmin:      data.IsAdmin,
		ResetToken:   strPtr(data.ResetToken),
		ResetExpires: data.ResetExpires,
		TokenVersion: data.TokenVersion,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// strPtr maps an empty string onto NULL so partial unique indexes stay usable.
func strPtr(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}

	return *p
}
