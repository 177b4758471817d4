package middleware

import (
	"log/slog"

	"keycard/internal/delivery/api/response"
	deliverycontext "keycard/internal/delivery/context"
	domainerrors "keycard/internal/domain/errors"
	"keycard/internal/infra/session"
	"keycard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CurrentUserMiddleware resolves the session's user id into the signed-in user.
type CurrentUserMiddleware struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

func NewCurrentUserMiddleware(userUC usecase.UserUsecase, logger *slog.Logger) *CurrentUserMiddleware {
	return &CurrentUserMiddleware{userUC: userUC, logger: logger}
}

// Resolve must run after the session middleware. A session pointing at a user that no
// longer exists is cleared and the request proceeds anonymously.
func (m *CurrentUserMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := session.FromContext(c)
		if !sess.IsAuthenticated() {
			return next(c)
		}

		log := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

		id, err := uuid.Parse(sess.UserID())
		if err != nil {
			log.Warn("Session carries a malformed user id, clearing it")
			sess.Clear()

			return next(c)
		}

		user, err := m.userUC.FindByID(c.Request().Context(), id)
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			log.Info("Session user no longer exists, clearing session", slog.Any("userID", id))
			sess.Clear()

			return next(c)
		}
		if err != nil {
			return errors.Wrap(err, "failed to resolve current user")
		}

		deliverycontext.SetCurrentUser(c, user)

		return next(c)
	}
}

// RequireUser rejects anonymous requests with 403.
func RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if deliverycontext.GetCurrentUser(c) == nil {
			return response.AppError(c, domainerrors.ErrForbidden)
		}

		return next(c)
	}
}
