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

// AuthHandler serves the public pages and the borrower login/signup flows.
type AuthHandler struct {
	api      ports.LoanAPI
	sessions *session.Manager
	log      zerolog.Logger
}

func NewAuthHandler(api ports.LoanAPI, sessions *session.Manager, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{api: api, sessions: sessions, log: log}
}

// authPage is the template data shared by the login and signup pages.
type authPage struct {
	Error string
	Form  any
}

// Landing serves the marketing front page.
func (h *AuthHandler) Landing(c echo.Context) error {
	return render(c, "landing", nil)
}

// LoginPage serves the borrower login form.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return render(c, "login", authPage{})
}

// Login authenticates a borrower against the loan API and opens a session.
// Upstream rejections (wrong password, unknown user) re-render the form with
// the server's message; everything else bubbles to the error handler.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return renderStatus(c, http.StatusBadRequest, "login", authPage{Error: "invalid form submission", Form: form})
	}
	if err := c.Validate(form); err != nil {
		return renderStatus(c, http.StatusBadRequest, "login", authPage{Error: err.Error(), Form: form})
	}

	ctx := c.Request().Context()
	user, err := h.api.Login(ctx, form.Identifier, form.Password)
	if err != nil {
		var ue *domain.UpstreamError
		if errors.As(err, &ue) {
			return renderStatus(c, http.StatusUnauthorized, "login", authPage{Error: ue.Message, Form: form})
		}
		return err
	}

	token, ttl, err := h.sessions.IssueUser(ctx, user, form.Remember)
	if err != nil {
		return err
	}
	setSessionCookie(c, session.UserCookie, token, ttl)

	h.log.Info().Int("user_id", user.ID).Bool("remember", form.Remember).Msg("user logged in")
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// SignupPage serves the borrower registration form.
func (h *AuthHandler) SignupPage(c echo.Context) error {
	return render(c, "signup", authPage{})
}

// Signup registers a borrower and redirects to login on success.
func (h *AuthHandler) Signup(c echo.Context) error {
	var form signupForm
	if err := c.Bind(&form); err != nil {
		return renderStatus(c, http.StatusBadRequest, "signup", authPage{Error: "invalid form submission", Form: form})
	}
	if err := c.Validate(form); err != nil {
		return renderStatus(c, http.StatusBadRequest, "signup", authPage{Error: err.Error(), Form: form})
	}

	user, err := h.api.Signup(c.Request().Context(), form.input())
	if err != nil {
		var ue *domain.UpstreamError
		if errors.As(err, &ue) {
			return renderStatus(c, http.StatusUnprocessableEntity, "signup", authPage{Error: ue.Message, Form: form})
		}
		return err
	}

	h.log.Info().Int("user_id", user.ID).Msg("user registered")
	return c.Redirect(http.StatusSeeOther, "/login?registered=1")
}

// Logout destroys the borrower session and clears the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(session.UserCookie); err == nil {
		h.sessions.Destroy(c.Request().Context(), session.RealmUser, cookie.Value)
	}
	clearSessionCookie(c, session.UserCookie)
	return c.Redirect(http.StatusSeeOther, "/login")
}
