package session

import (
	"log/slog"

	deliverycontext "keycard/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

const contextKey = "session"

// Middleware loads the session before the handler runs and writes the cookie back,
// just before the response headers go out, if the handler modified it.
func Middleware(store *CookieStore, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := store.Load(c.Request())
			c.Set(contextKey, sess)

			c.Response().Before(func() {
				if !sess.Modified() {
					return
				}
				if err := store.Save(c.Response(), sess); err != nil {
					deliverycontext.GetLoggerOrDefault(c.Request().Context(), logger).
						Error("Failed to save session cookie", slog.Any("error", err))
				}
			})

			return next(c)
		}
	}
}

// FromContext returns the request's session. Without the middleware it is a fresh anonymous
// session that is never persisted.
func FromContext(c echo.Context) *Session {
	if sess, ok := c.Get(contextKey).(*Session); ok {
		return sess
	}

	return NewSession()
}
