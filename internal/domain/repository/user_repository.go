// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"keycard/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the user store. It stores and retrieves accounts; business rules such as
// email uniqueness are enforced by the callers, not assumed from the store.
type UserRepository interface {
	// FindByEmail returns every user with exactly this email, oldest first. No match is an empty slice, not an error.
	FindByEmail(ctx context.Context, email string) ([]*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	// Returns ErrUserNotFound if no user has the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Create persists a new user and returns it with its generated ID and timestamps.
	Create(ctx context.Context, email, passwordRecord string) (*entity.User, error)

	// Update overwrites the email and password record of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user. Returns ErrUserNotFound if no user has the given ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
