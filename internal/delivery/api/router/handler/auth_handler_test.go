package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"keycard/config"
	"keycard/internal/delivery/api/validator"
	"keycard/internal/domain/entity"
	domainerrors "keycard/internal/domain/errors"
	"keycard/internal/infra/session"
	mockusecase "keycard/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// withSession runs h behind the session middleware so the session it touches stays on c.
func withSession(t *testing.T, h echo.HandlerFunc) echo.HandlerFunc {
	t.Helper()

	store, err := session.NewCookieStore(&config.Config{
		Session: &config.SessionConfig{CookieName: "session", Keys: []string{"k1"}, Path: "/"},
	})
	require.NoError(t, err)

	return session.Middleware(store, discardLogger())(h)
}

func TestAuthHandler_Signup(t *testing.T) {
	authUC := mockusecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: discardLogger()})
	user := &entity.User{ID: uuid.New(), Email: "a@b.co", PasswordRecord: "0011223344556677.abcd"}
	authUC.EXPECT().Signup(mock.Anything, "a@b.co", "secret123").Return(user, nil).Once()

	c, rec := newContext(http.MethodPost, "/auth/signup", `{"email":"a@b.co","password":"secret123"}`)
	require.NoError(t, withSession(t, h.Signup)(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), user.ID.String())
	assert.NotContains(t, rec.Body.String(), user.PasswordRecord)
	assert.Equal(t, user.ID.String(), session.FromContext(c).UserID())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderSetCookie))
}

func TestAuthHandler_Signup_InvalidInputNeverReachesUsecase(t *testing.T) {
	authUC := mockusecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: discardLogger()})

	c, rec := newContext(http.MethodPost, "/auth/signup", `{"email":"a@b.co","password":"1234567"}`)
	require.NoError(t, withSession(t, h.Signup)(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"password"`)
	authUC.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthHandler_Signin_ErrorsRendered(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"user not found", errors.WithStack(domainerrors.ErrUserNotFound), http.StatusNotFound},
		{"invalid credentials", errors.WithStack(domainerrors.ErrInvalidCredentials), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authUC := mockusecase.NewMockAuthUsecase(t)
			h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: discardLogger()})
			authUC.EXPECT().Signin(mock.Anything, "a@b.co", "secret123").Return(nil, tt.err).Once()

			c, rec := newContext(http.MethodPost, "/auth/signin", `{"email":"a@b.co","password":"secret123"}`)
			require.NoError(t, withSession(t, h.Signin)(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, session.FromContext(c).IsAuthenticated())
		})
	}
}

func TestAuthHandler_Signin_ServerErrorPassedOn(t *testing.T) {
	authUC := mockusecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: discardLogger()})
	authUC.EXPECT().Signin(mock.Anything, "a@b.co", "secret123").
		Return(nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "boom")).Once()

	c, _ := newContext(http.MethodPost, "/auth/signin", `{"email":"a@b.co","password":"secret123"}`)
	err := withSession(t, h.Signin)(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}
