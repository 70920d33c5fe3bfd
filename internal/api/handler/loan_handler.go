package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/loansewa/loansewa-web/internal/core/domain"
	"github.com/loansewa/loansewa-web/internal/core/ports"
)

// LoanHandler serves the loan application form and relays submissions to the
// scoring API.
type LoanHandler struct {
	api ports.LoanAPI
	log zerolog.Logger
}

func NewLoanHandler(api ports.LoanAPI, log zerolog.Logger) *LoanHandler {
	return &LoanHandler{api: api, log: log}
}

// applyPage is the template data for the loan application form, including the
// assessment block shown after a successful submission.
type applyPage struct {
	User  *domain.User
	Error string
	Form  any

	Result *applyResult
}

// applyResult is the instant assessment returned by the scoring model.
type applyResult struct {
	CreditScore        int
	Rating             string
	DefaultProbability float64
	Band               domain.RiskBand
	Status             domain.ApplicationStatus
}

// ApplyPage serves a blank loan application form.
func (h *LoanHandler) ApplyPage(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return render(c, "apply", applyPage{User: user})
}

// Apply submits the form for scoring and re-renders the page with the
// assessment result. The application lands in the admin review queue; the
// borrower only sees the model's verdict here.
func (h *LoanHandler) Apply(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var form applyForm
	if err := c.Bind(&form); err != nil {
		return renderStatus(c, http.StatusBadRequest, "apply", applyPage{User: user, Error: "invalid form submission", Form: form})
	}
	if err := c.Validate(form); err != nil {
		return renderStatus(c, http.StatusBadRequest, "apply", applyPage{User: user, Error: err.Error(), Form: form})
	}

	app, err := h.api.Apply(c.Request().Context(), user.ID, form.input())
	if err != nil {
		var ue *domain.UpstreamError
		if errors.As(err, &ue) {
			return renderStatus(c, http.StatusUnprocessableEntity, "apply", applyPage{User: user, Error: ue.Message, Form: form})
		}
		return err
	}

	h.log.Info().
		Int("user_id", user.ID).
		Int("application_id", app.ID).
		Int("credit_score", app.CreditScore).
		Msg("loan application scored")

	return render(c, "apply", applyPage{
		User: user,
		Result: &applyResult{
			CreditScore:        app.CreditScore,
			Rating:             app.Rating,
			DefaultProbability: app.DefaultProbability,
			Band:               domain.RiskBandForScore(app.CreditScore),
			Status:             app.Status,
		},
	})
}
