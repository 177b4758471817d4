package session

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, store *CookieStore, handler echo.HandlerFunc, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Use(Middleware(store, slog.New(slog.NewTextHandler(io.Discard, nil))))
	e.GET("/", handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestMiddleware_WritesCookieWhenModified(t *testing.T) {
	store := newTestStore(t, time.Hour, "k1")

	rec := serve(t, store, func(c echo.Context) error {
		FromContext(c).SetUserID("user-42")

		return c.NoContent(http.StatusOK)
	})

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	// The cookie carries the identity into the next request.
	var seen string
	serve(t, store, func(c echo.Context) error {
		seen = FromContext(c).UserID()

		return c.NoContent(http.StatusOK)
	}, cookies...)
	assert.Equal(t, "user-42", seen)
}

func TestMiddleware_SkipsCookieWhenUnchanged(t *testing.T) {
	store := newTestStore(t, time.Hour, "k1")

	rec := serve(t, store, func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	assert.Empty(t, rec.Header().Values("Set-Cookie"))
}

func TestMiddleware_ClearExpiresCookie(t *testing.T) {
	store := newTestStore(t, time.Hour, "k1")
	signedIn := serve(t, store, func(c echo.Context) error {
		FromContext(c).SetUserID("user-42")

		return c.NoContent(http.StatusOK)
	}).Result().Cookies()

	rec := serve(t, store, func(c echo.Context) error {
		FromContext(c).Clear()

		return c.NoContent(http.StatusOK)
	}, signedIn...)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
}

func TestFromContext_WithoutMiddleware(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	sess := FromContext(c)

	assert.NotNil(t, sess)
	assert.False(t, sess.IsAuthenticated())
}
