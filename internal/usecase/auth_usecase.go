// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"keycard/internal/domain/entity"
)

// AuthUsecase is the credential lifecycle: it creates accounts and verifies credentials.
// It never touches the session; binding the returned user is the caller's job.
type AuthUsecase interface {
	// Signup registers email with a freshly hashed password.
	// Returns ErrDuplicateEmail if any user already has this email.
	Signup(ctx context.Context, email, password string) (*entity.User, error)

	// Signin returns the user whose email and password match.
	// Returns ErrUserNotFound for an unknown email and ErrInvalidCredentials for a wrong password.
	Signin(ctx context.Context, email, password string) (*entity.User, error)
}
