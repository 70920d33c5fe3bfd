// Package middleware holds the Echo middleware guarding protected routes.
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/loansewa/loansewa-web/internal/api/handler"
	"github.com/loansewa/loansewa-web/internal/api/metrics"
	"github.com/loansewa/loansewa-web/internal/infrastructure/session"
)

// UserSession gates borrower pages. A request without a resolvable user
// session is bounced to the login page with 303 so a POST never gets replayed
// against the login route.
func UserSession(sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.UserCookie)
			if err != nil {
				metrics.SessionRedirectsTotal.WithLabelValues(session.RealmUser).Inc()
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			user, err := sessions.LoadUser(c.Request().Context(), cookie.Value)
			if err != nil {
				metrics.SessionRedirectsTotal.WithLabelValues(session.RealmUser).Inc()
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			c.Set(handler.CtxUserKey, user)
			return next(c)
		}
	}
}

// AdminSession gates the admin panel. Same shape as UserSession but against
// the admin realm, so a borrower cookie can never open an admin page.
func AdminSession(sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.AdminCookie)
			if err != nil {
				metrics.SessionRedirectsTotal.WithLabelValues(session.RealmAdmin).Inc()
				return c.Redirect(http.StatusSeeOther, "/admin/login")
			}

			admin, err := sessions.LoadAdmin(c.Request().Context(), cookie.Value)
			if err != nil {
				metrics.SessionRedirectsTotal.WithLabelValues(session.RealmAdmin).Inc()
				return c.Redirect(http.StatusSeeOther, "/admin/login")
			}

			c.Set(handler.CtxAdminKey, admin)
			return next(c)
		}
	}
}
