// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "keycard/internal/delivery/context"
	"keycard/internal/domain/entity"
	domainerrors "keycard/internal/domain/errors"
	"keycard/internal/domain/repository"
	"keycard/internal/domain/service"
	"keycard/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	metrics  service.AuthMetrics
	logger   *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Metrics  service.AuthMetrics
	Logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		metrics:  params.Metrics,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup checks that the email is free, hashes the password and creates the user, in that order.
// Nothing is written unless every earlier step succeeded.
func (srv *authService) Signup(ctx context.Context, email, password string) (*entity.User, error) {
	srv.log(ctx).Debug("Starting signup")

	existing, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		srv.metrics.RecordSignup(service.OutcomeError)

		return nil, errors.Wrap(err, "failed to look up email during signup")
	}
	if len(existing) > 0 {
		srv.log(ctx).Warn("Signup rejected, email already in use")
		srv.metrics.RecordSignup(service.OutcomeDuplicateEmail)

		return nil, errors.WithStack(domainerrors.ErrDuplicateEmail)
	}

	record, err := srv.hash(password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))
		srv.metrics.RecordSignup(service.OutcomeError)

		return nil, domainerrors.ErrPasswordHashFailed.WithCause(err)
	}

	// The KDF is slow; a caller that gave up meanwhile must not end up with an account.
	if err := ctx.Err(); err != nil {
		srv.metrics.RecordSignup(service.OutcomeError)

		return nil, errors.Wrap(err, "signup abandoned before user creation")
	}

	user, err := srv.userRepo.Create(ctx, email, record)
	if err != nil {
		outcome := service.OutcomeError
		if errors.Is(err, domainerrors.ErrDuplicateEmail) {
			outcome = service.OutcomeDuplicateEmail
		}
		srv.log(ctx).Error("Failed to create user during signup", slog.Any("error", err))
		srv.metrics.RecordSignup(outcome)

		return nil, errors.Wrap(err, "failed to create user during signup")
	}

	srv.log(ctx).Info("Signup completed", slog.Any("userID", user.ID))
	srv.metrics.RecordSignup(service.OutcomeSuccess)

	return user, nil
}

// Signin looks the email up and verifies the password against the first match.
func (srv *authService) Signin(ctx context.Context, email, password string) (*entity.User, error) {
	srv.log(ctx).Debug("Starting signin")

	matches, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		srv.metrics.RecordSignin(service.OutcomeError)

		return nil, errors.Wrap(err, "failed to look up email during signin")
	}
	if len(matches) == 0 {
		srv.log(ctx).Warn("Signin for unknown email")
		srv.metrics.RecordSignin(service.OutcomeUserNotFound)

		return nil, errors.WithStack(domainerrors.ErrUserNotFound)
	}
	if len(matches) > 1 {
		srv.log(ctx).Warn("multiple users share email", slog.Any("userID", matches[0].ID), slog.Int("count", len(matches)))
	}

	user := matches[0]
	if !srv.verify(password, user.PasswordRecord) {
		srv.log(ctx).Warn("Signin password mismatch", slog.Any("userID", user.ID))
		srv.metrics.RecordSignin(service.OutcomeInvalidCredentials)

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	srv.log(ctx).Info("Signin completed", slog.Any("userID", user.ID))
	srv.metrics.RecordSignin(service.OutcomeSuccess)

	return user, nil
}

func (srv *authService) hash(password string) (string, error) {
	start := time.Now()
	defer func() { srv.metrics.ObserveKDF(service.KDFOpHash, time.Since(start)) }()

	return srv.hasher.Hash(password)
}

func (srv *authService) verify(password, record string) bool {
	start := time.Now()
	defer func() { srv.metrics.ObserveKDF(service.KDFOpVerify, time.Since(start)) }()

	return srv.hasher.Verify(password, record)
}
