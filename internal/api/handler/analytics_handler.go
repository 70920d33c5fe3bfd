package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/loansewa/loansewa-web/internal/core/analytics"
	"github.com/loansewa/loansewa-web/internal/core/charts"
	"github.com/loansewa/loansewa-web/internal/core/domain"
	"github.com/loansewa/loansewa-web/internal/core/ports"
)

// Minimum y-axis ceiling for the loan amount chart, in rupees. A single small
// loan still renders against a 5 lakh scale.
const amountAxisFloor = 500000

// AnalyticsHandler serves the borrower's credit trend page.
type AnalyticsHandler struct {
	api ports.LoanAPI
	log zerolog.Logger
}

func NewAnalyticsHandler(api ports.LoanAPI, log zerolog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{api: api, log: log}
}

type analyticsPage struct {
	User   *domain.User
	Period string

	HasApplications bool
	Stats           analytics.ScoreStats
	TotalBorrowed   float64

	ScoreBars  []charts.Bar
	AmountBars []charts.Bar
	AmountMax  float64
	AmountMid  float64
}

// Analytics renders score statistics and the two trend charts. The period
// selector is carried through the query string for the active-button state.
//
// TODO: wire the period selector to a start-date filter once the loan API
// grows one on GET /applications.
func (h *AnalyticsHandler) Analytics(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	period := c.QueryParam("period")
	switch period {
	case "3m", "6m", "1y":
	default:
		period = "all"
	}

	apps, err := h.api.Applications(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	page := analyticsPage{
		User:            user,
		Period:          period,
		HasApplications: len(apps) > 0,
		Stats:           analytics.ComputeScoreStats(apps, time.Now()),
		TotalBorrowed:   analytics.TotalBorrowed(apps),
	}

	page.ScoreBars = charts.ScoreBars(toBarInputs(analytics.ScoreSeries(apps)))
	page.AmountBars, page.AmountMax = charts.AmountBars(toBarInputs(analytics.AmountSeries(apps)), amountAxisFloor)
	page.AmountMid = page.AmountMax / 2

	return render(c, "analytics", page)
}

func toBarInputs(points []analytics.Point) []charts.BarInput {
	inputs := make([]charts.BarInput, 0, len(points))
	for _, p := range points {
		inputs = append(inputs, charts.BarInput{Label: p.Label, Value: p.Value, Date: p.Date})
	}
	return inputs
}
