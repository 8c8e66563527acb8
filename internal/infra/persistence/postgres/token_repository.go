package postgres

import (
	"context"
	"time"

	"cromptch/internal/domain/entity"
	domainerrors "cromptch/internal/domain/errors"
	"cromptch/internal/domain/repository"
	"cromptch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tokenRepository implements the repository.TokenRepository interface.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{db: db}
}

// tokenOwnerRow is the projection of the user_tokens ⋈ users lookup.
type tokenOwnerRow struct {
	ID        uuid.UUID
	Username  string
	Email     string
	Password  string
	IsAdmin   bool
	CreatedAt time.Time
	LastUsed  time.Time
}

func (repo *tokenRepository) Create(ctx context.Context, token *entity.Token) error {
	tokenM := &model.UserTokenModel{
		Token:     token.Token,
		UserID:    token.UserID,
		LastUsed:  token.LastUsed,
		CreatedAt: token.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicate
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrInvalidReference
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create token")
	}

	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindOwner resolves a token to its user in one query.
func (repo *tokenRepository) FindOwner(ctx context.Context, token string) (*entity.TokenOwner, error) {
	var row tokenOwnerRow

	result := repo.db.WithContext(ctx).
		Table("user_tokens").
		Select("users.id, users.username, users.email, users.password, users.is_admin, users.created_at, user_tokens.last_used").
		Joins("JOIN users ON users.id = user_tokens.user_id").
		Where("user_tokens.token = ?", token).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to find token owner")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrTokenNotFound
	}

	return &entity.TokenOwner{
		User: &entity.User{
			ID:           row.ID,
			Username:     row.Username,
			Email:        row.Email,
			PasswordHash: row.Password,
			IsAdmin:      row.IsAdmin,
			CreatedAt:    row.CreatedAt,
		},
		LastUsed: row.LastUsed,
	}, nil
}

func (repo *tokenRepository) Touch(ctx context.Context, token string, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserTokenModel{}).
		Where("token = ?", token).
		Update("last_used", at)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTokenNotFound
	}

	return nil
}

func (repo *tokenRepository) Delete(ctx context.Context, token string) error {
	result := repo.db.WithContext(ctx).
		Where("token = ?", token).
		Delete(&model.UserTokenModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTokenNotFound
	}

	return nil
}
