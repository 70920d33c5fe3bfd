package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/loansewa/loansewa-web/internal/core/domain"
	"github.com/loansewa/loansewa-web/internal/core/ports"
	"github.com/loansewa/loansewa-web/internal/infrastructure/session"
)

// AdminAuthHandler serves the admin login/signup flows. Admin sessions never
// carry the remember-me flag: reviewer sessions stay on the short TTL.
type AdminAuthHandler struct {
	api      ports.LoanAPI
	sessions *session.Manager
	log      zerolog.Logger
}

func NewAdminAuthHandler(api ports.LoanAPI, sessions *session.Manager, log zerolog.Logger) *AdminAuthHandler {
	return &AdminAuthHandler{api: api, sessions: sessions, log: log}
}

// LoginPage serves the admin login form.
func (h *AdminAuthHandler) LoginPage(c echo.Context) error {
	return render(c, "admin_login", authPage{})
}

// Login authenticates an admin and opens an admin-realm session.
func (h *AdminAuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return renderStatus(c, http.StatusBadRequest, "admin_login", authPage{Error: "invalid form submission", Form: form})
	}
	if err := c.Validate(form); err != nil {
		return renderStatus(c, http.StatusBadRequest, "admin_login", authPage{Error: err.Error(), Form: form})
	}

	ctx := c.Request().Context()
	admin, err := h.api.AdminLogin(ctx, form.Identifier, form.Password)
	if err != nil {
		var ue *domain.UpstreamError
		if errors.As(err, &ue) {
			return renderStatus(c, http.StatusUnauthorized, "admin_login", authPage{Error: ue.Message, Form: form})
		}
		return err
	}

	token, ttl, err := h.sessions.IssueAdmin(ctx, admin)
	if err != nil {
		return err
	}
	setSessionCookie(c, session.AdminCookie, token, ttl)

	h.log.Info().Int("admin_id", admin.ID).Msg("admin logged in")
	return c.Redirect(http.StatusSeeOther, "/admin/dashboard")
}

// SignupPage serves the admin registration form.
func (h *AdminAuthHandler) SignupPage(c echo.Context) error {
	return render(c, "admin_signup", authPage{})
}

// Signup registers an admin and redirects to the admin login on success.
func (h *AdminAuthHandler) Signup(c echo.Context) error {
	var form adminSignupForm
	if err := c.Bind(&form); err != nil {
		return renderStatus(c, http.StatusBadRequest, "admin_signup", authPage{Error: "invalid form submission", Form: form})
	}
	if err := c.Validate(form); err != nil {
		return renderStatus(c, http.StatusBadRequest, "admin_signup", authPage{Error: err.Error(), Form: form})
	}

	admin, err := h.api.AdminSignup(c.Request().Context(), form.input())
	if err != nil {
		var ue *domain.UpstreamError
		if errors.As(err, &ue) {
			return renderStatus(c, http.StatusUnprocessableEntity, "admin_signup", authPage{Error: ue.Message, Form: form})
		}
		return err
	}

	h.log.Info().Int("admin_id", admin.ID).Msg("admin registered")
	return c.Redirect(http.StatusSeeOther, "/admin/login?registered=1")
}

// Logout destroys the admin session and clears the cookie.
func (h *AdminAuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(session.AdminCookie); err == nil {
		h.sessions.Destroy(c.Request().Context(), session.RealmAdmin, cookie.Value)
	}
	clearSessionCookie(c, session.AdminCookie)
	return c.Redirect(http.StatusSeeOther, "/admin/login")
}
