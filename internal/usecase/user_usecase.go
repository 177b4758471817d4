package usecase

import (
	"context"

	"keycard/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// UpdateUserInput carries the fields to change. Nil fields are left untouched.
type UpdateUserInput struct {
	Email    *string
	Password *string
}

// UserUsecase defines account management operations outside the credential flows.
type UserUsecase interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) ([]*entity.User, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)
	Remove(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
