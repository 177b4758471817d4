package impl

import (
	"context"
	"log/slog"

	deliverycontext "keycard/internal/delivery/context"
	"keycard/internal/domain/entity"
	domainerrors "keycard/internal/domain/errors"
	"keycard/internal/domain/repository"
	"keycard/internal/domain/service"
	"keycard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.WithStack(domainerrors.ErrUserNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

func (srv *userService) FindByEmail(ctx context.Context, email string) ([]*entity.User, error) {
	users, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users by email")
	}

	return users, nil
}

// Update applies the non-nil fields of input. A new password is hashed the same way signup does,
// and moving to an email held by another account is rejected.
func (srv *userService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	user, err := srv.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil && *input.Email != user.Email {
		holders, err := srv.userRepo.FindByEmail(ctx, *input.Email)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check email availability")
		}
		for _, holder := range holders {
			if holder.ID != user.ID {
				srv.log(ctx).Warn("Email change rejected, email already in use", slog.Any("userID", user.ID))

				return nil, errors.WithStack(domainerrors.ErrDuplicateEmail)
			}
		}
		user.Email = *input.Email
	}

	if input.Password != nil {
		record, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during update", slog.Any("userID", user.ID), slog.Any("error", err))

			return nil, domainerrors.ErrPasswordHashFailed.WithCause(err)
		}
		user.PasswordRecord = record
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.log(ctx).Info("User updated", slog.Any("userID", user.ID))

	return user, nil
}

// Remove deletes the user and returns what was removed.
func (srv *userService) Remove(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User removed", slog.Any("userID", user.ID))

	return user, nil
}
