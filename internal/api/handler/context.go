package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/loansewa/loansewa-web/internal/core/domain"
)

// Context keys populated by the session gate middleware.
const (
	CtxUserKey  = "session_user"
	CtxAdminKey = "session_admin"
)

// currentUser extracts the borrower injected by the user session gate. A
// missing identity means the gate did not run on this route; surface it as an
// authentication failure so the error handler bounces to login.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(CtxUserKey).(*domain.User)
	if user == nil {
		return nil, domain.ErrNotAuthenticated
	}
	return user, nil
}

// currentAdmin extracts the admin injected by the admin session gate.
func currentAdmin(c echo.Context) (*domain.Admin, error) {
	admin, _ := c.Get(CtxAdminKey).(*domain.Admin)
	if admin == nil {
		return nil, domain.ErrNotAuthenticated
	}
	return admin, nil
}
