// Package memory provides an in-process user store for development and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"keycard/internal/domain/entity"
	"keycard/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userRepository keeps users in insertion order. It enforces no uniqueness; callers do.
type userRepository struct {
	mu    sync.RWMutex
	users []*entity.User
	now   func() time.Time
}

// NewUserRepository is the constructor for the in-memory userRepository.
func NewUserRepository() repository.UserRepository {
	return &userRepository{now: time.Now}
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) ([]*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	matches := make([]*entity.User, 0, 1)
	for _, u := range repo.users {
		if u.Email == email {
			matches = append(matches, clone(u))
		}
	}

	return matches, nil
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if i := repo.indexOf(id); i >= 0 {
		return clone(repo.users[i]), nil
	}

	return nil, repository.ErrUserNotFound
}

func (repo *userRepository) Create(ctx context.Context, email, passwordRecord string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate user id")
	}

	now := repo.now()
	user := &entity.User{
		ID:             id,
		Email:          email,
		PasswordRecord: passwordRecord,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	repo.mu.Lock()
	repo.users = append(repo.users, user)
	repo.mu.Unlock()

	return clone(user), nil
}

func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	i := repo.indexOf(user.ID)
	if i < 0 {
		return repository.ErrUserNotFound
	}

	stored := repo.users[i]
	stored.Email = user.Email
	stored.PasswordRecord = user.PasswordRecord
	stored.UpdatedAt = repo.now()
	user.UpdatedAt = stored.UpdatedAt

	return nil
}

func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	i := repo.indexOf(id)
	if i < 0 {
		return repository.ErrUserNotFound
	}
	repo.users = append(repo.users[:i], repo.users[i+1:]...)

	return nil
}

// indexOf must be called with mu held.
func (repo *userRepository) indexOf(id uuid.UUID) int {
	for i, u := range repo.users {
		if u.ID == id {
			return i
		}
	}

	return -1
}

func clone(u *entity.User) *entity.User {
	c := *u

	return &c
}
