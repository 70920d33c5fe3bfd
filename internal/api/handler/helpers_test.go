package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/loansewa/loansewa-web/internal/api/view"
	"github.com/loansewa/loansewa-web/internal/infrastructure/session"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Renderer = view.Must()
	e.Validator = NewValidator()
	return e
}

func newTestSessions(t *testing.T) *session.Manager {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return session.NewManager(rdb, "test-secret", time.Hour, 720*time.Hour)
}

func nopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// formRequest builds a POST with an urlencoded body the way a browser submits
// a form.
func formRequest(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

func sessionCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
