package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/loansewa/loansewa-web/internal/core/domain"
	"github.com/loansewa/loansewa-web/internal/core/ports"
)

// ImprovementHandler serves the credit improvement suggestions page.
type ImprovementHandler struct {
	api ports.LoanAPI
	log zerolog.Logger
}

func NewImprovementHandler(api ports.LoanAPI, log zerolog.Logger) *ImprovementHandler {
	return &ImprovementHandler{api: api, log: log}
}

type improvementPage struct {
	User   *domain.User
	Report *domain.ImprovementReport
	Band   domain.RiskBand
}

// Improve renders the suggestion list for the user's latest score. A report
// with Available=false is the no-application empty state, rendered as such
// rather than treated as a failure.
func (h *ImprovementHandler) Improve(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	report, err := h.api.Improvement(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	page := improvementPage{User: user, Report: report, Band: domain.NoApplicationBand}
	if report.Available {
		page.Band = domain.RiskBandForScore(report.CreditScore)
	}
	return render(c, "improve", page)
}
