package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/loansewa/loansewa-web/internal/api/view"
	"github.com/loansewa/loansewa-web/internal/core/domain"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Renderer = view.Must()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	return e
}

func TestErrorHandler_NotAuthenticatedRedirectsByRealm(t *testing.T) {
	e := newTestEcho()

	cases := []struct {
		path string
		want string
	}{
		{"/dashboard", "/login"},
		{"/analytics", "/login"},
		{"/admin/history", "/admin/login"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.path, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		e.HTTPErrorHandler(domain.ErrNotAuthenticated, c)

		if rec.Code != http.StatusSeeOther {
			t.Fatalf("%s: expected 303, got %d", tc.path, rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != tc.want {
			t.Fatalf("%s: expected redirect to %s, got %q", tc.path, tc.want, loc)
		}
	}
}

func TestErrorHandler_UpstreamErrorRendersHTMLPage(t *testing.T) {
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set(echo.HeaderAccept, echo.MIMETextHTML)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	e.HTTPErrorHandler(&domain.UpstreamError{StatusCode: 500, Message: "scoring model offline"}, c)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "scoring model offline") {
		t.Fatalf("expected the upstream message on the error page")
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.Contains(ct, echo.MIMETextHTML) {
		t.Fatalf("expected an html page, got %q", ct)
	}
}

func TestErrorHandler_JSONForAPIClients(t *testing.T) {
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	e.HTTPErrorHandler(domain.ErrUpstreamUnavailable, c)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"error"`) {
		t.Fatalf("expected the json error envelope, got %q", rec.Body.String())
	}
}

func TestErrorHandler_UnexpectedErrorHidesDetails(t *testing.T) {
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	e.HTTPErrorHandler(errors.New("pq: connection reset"), c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "connection reset") {
		t.Fatalf("internal error details must not leak to the client")
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	e.HTTPErrorHandler(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
