package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/loansewa/loansewa-web/internal/core/analytics"
	"github.com/loansewa/loansewa-web/internal/core/charts"
	"github.com/loansewa/loansewa-web/internal/core/domain"
	"github.com/loansewa/loansewa-web/internal/core/ports"
)

// DashboardHandler serves the borrower dashboard: credit gauge, risk band,
// profile card, and recent applications.
type DashboardHandler struct {
	api ports.LoanAPI
	log zerolog.Logger
}

func NewDashboardHandler(api ports.LoanAPI, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{api: api, log: log}
}

type dashboardPage struct {
	User *domain.User

	HasApplication bool
	CreditScore    int
	Rating         string
	GaugeOffset    float64
	GaugeLength    float64
	Band           domain.RiskBand
	BandCopy       string

	TotalApplications int
	ApprovedCount     int
	TotalBorrowed     float64
	CreditUtilization float64
	Recent            []domain.LoanApplication
}

// Dashboard renders the borrower home page from the user's full application
// history. The newest application drives the gauge and risk band.
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	apps, err := h.api.Applications(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	page := dashboardPage{
		User:              user,
		TotalApplications: len(apps),
		GaugeLength:       charts.GaugeCircumference,
		GaugeOffset:       charts.GaugeOffset(0, false),
		Band:              domain.NoApplicationBand,
		BandCopy:          "Apply for a loan to get your credit score assessed.",
		Recent:            apps,
	}
	if len(apps) > 5 {
		page.Recent = apps[:5]
	}

	for _, app := range apps {
		if app.Status == domain.StatusApproved {
			page.ApprovedCount++
		}
	}
	page.TotalBorrowed = analytics.TotalBorrowed(apps)

	if len(apps) > 0 {
		latest := apps[0]
		page.HasApplication = true
		page.CreditScore = latest.CreditScore
		page.Rating = latest.Rating
		page.GaugeOffset = charts.GaugeOffset(latest.CreditScore, true)
		page.Band = domain.RiskBandForScore(latest.CreditScore)
		page.BandCopy = bandCopy(page.Band)
		page.CreditUtilization = latest.CreditUtilizationRatio
	}

	return render(c, "dashboard", page)
}

// bandCopy is the one-line explanation shown under the risk band label.
func bandCopy(band domain.RiskBand) string {
	switch band.Label {
	case "Low Risk - High Need":
		return "Excellent credit profile. You qualify for the best loan terms."
	case "Low Risk - Moderate Need":
		return "Strong credit profile. Most loan products are available to you."
	case "Moderate Risk":
		return "Fair credit profile. Some loan products may carry higher rates."
	case "High Risk":
		return "Your credit profile needs attention. See the improvement page for suggestions."
	default:
		return "Apply for a loan to get your credit score assessed."
	}
}
