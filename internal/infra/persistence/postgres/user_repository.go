// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"keycard/internal/domain/entity"
	domainerrors "keycard/internal/domain/errors"
	"keycard/internal/domain/repository"
	"keycard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db:  db,
		now: time.Now,
	}
}

// FindByEmail returns every user with the exact email, oldest first.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) ([]*entity.User, error) {
	var rows []*model.UserModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at ASC").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find users by email")
	}

	users := make([]*entity.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, toUserDomain(row))
	}

	return users, nil
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var row model.UserModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by id")
	}

	return toUserDomain(&row), nil
}

// Create inserts a new user. A unique-index violation on email surfaces as ErrDuplicateEmail.
func (repo *userRepository) Create(ctx context.Context, email, passwordRecord string) (*entity.User, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate user id")
	}

	now := repo.now()
	row := &model.UserModel{
		ID:             id,
		Email:          email,
		PasswordRecord: passwordRecord,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.ErrDuplicateEmail.WrapMessage("email already exists")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	return toUserDomain(row), nil
}

// Update overwrites email and password record and bumps UpdatedAt on user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	now := repo.now()
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"email":           user.Email,
			"password_record": user.PasswordRecord,
			"updated_at":      now,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrDuplicateEmail.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = now

	return nil
}

func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:             data.ID,
		Email:          data.Email,
		PasswordRecord: data.PasswordRecord,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
