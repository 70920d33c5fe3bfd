package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/loansewa/loansewa-web/internal/api/metrics"
)

// render executes the named page template with a 200 and counts it.
func render(c echo.Context, page string, data any) error {
	return renderStatus(c, http.StatusOK, page, data)
}

// renderStatus executes the named page template. Pages that re-render a form
// with validation errors pass 400 or 422 here.
func renderStatus(c echo.Context, code int, page string, data any) error {
	if err := c.Render(code, page+".html", data); err != nil {
		return err
	}
	metrics.PagesRenderedTotal.WithLabelValues(page).Inc()
	return nil
}

// setSessionCookie installs the session token for the given realm cookie.
func setSessionCookie(c echo.Context, name, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the realm cookie immediately.
func clearSessionCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
