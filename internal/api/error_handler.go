package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/loansewa/loansewa-web/internal/core/domain"
)

// errorResponse is the JSON envelope used when the client asks for JSON.
type errorResponse struct {
	Error string `json:"error"`
}

// errorPage is the template data for the HTML error page.
type errorPage struct {
	Code    int
	Message string
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Redirects unauthenticated requests to the right login page per realm.
//   - Maps loan API failures to 502/503 with the upstream's message.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders an HTML error page for browsers, a JSON envelope otherwise.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if errors.Is(err, domain.ErrNotAuthenticated) {
			_ = c.Redirect(http.StatusSeeOther, loginPath(c))
			return
		}

		code, msg := resolveError(err, log, c)
		if wantsJSON(c) {
			_ = c.JSON(code, errorResponse{Error: msg})
			return
		}
		if renderErr := c.Render(code, "error.html", errorPage{Code: code, Message: msg}); renderErr != nil {
			_ = c.String(code, msg)
		}
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Loan API failures → gateway codes with the upstream's own message.
	var ue *domain.UpstreamError
	switch {
	case errors.As(err, &ue):
		return http.StatusBadGateway, ue.Message
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable, "the loan service is temporarily unavailable"
	case errors.Is(err, domain.ErrBadUpstreamResponse):
		return http.StatusBadGateway, "the loan service returned an unexpected response"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "something went wrong on our side"
}

// loginPath picks the login page matching the realm of the failed request.
func loginPath(c echo.Context) string {
	if strings.HasPrefix(c.Request().URL.Path, "/admin") {
		return "/admin/login"
	}
	return "/login"
}

// wantsJSON reports whether the client prefers a JSON body over an HTML page.
func wantsJSON(c echo.Context) bool {
	accept := c.Request().Header.Get(echo.HeaderAccept)
	return strings.Contains(accept, echo.MIMEApplicationJSON) &&
		!strings.Contains(accept, echo.MIMETextHTML)
}
