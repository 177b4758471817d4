package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"keycard/config"
	deliverycontext "keycard/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request.
// Outside debug mode only failed requests are logged.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := responseStatus(c, err)
		if m.debug || status >= http.StatusBadRequest {
			m.logRequest(c, start, status, err)
		}

		return err
	}
}

// responseStatus predicts the status the error handler will write for err,
// since the response is not committed yet when a handler returns an error.
func responseStatus(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}

	var statusErr interface{ HTTPCode() int }
	if errors.As(err, &statusErr) {
		return statusErr.HTTPCode()
	}

	return http.StatusInternalServerError
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, status int, err error) {
	req := c.Request()

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if user := deliverycontext.GetCurrentUser(c); user != nil {
		fields = append(fields, slog.String("user_id", user.ID.String()))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= http.StatusInternalServerError:
		level = slog.LevelError
	case status >= http.StatusBadRequest:
		level = slog.LevelWarn
	}

	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).LogAttrs(req.Context(), level, "HTTP Request", fields...)
}
