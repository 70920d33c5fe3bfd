package handler

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/loansewa/loansewa-web/internal/api/metrics"
	"github.com/loansewa/loansewa-web/internal/core/charts"
	"github.com/loansewa/loansewa-web/internal/core/domain"
	"github.com/loansewa/loansewa-web/internal/core/ports"
)

// Placeholder averages used to estimate the rupee volume sitting in rejected
// and pending applications.
//
// TODO: drop these once the insights endpoint reports actual rejected/pending
// loan amount sums instead of counts.
const (
	avgRejectedLoanAmount = 200000
	avgPendingLoanAmount  = 300000
)

// AdminHandler serves the admin panel: review queue, history, insights, and
// settings.
type AdminHandler struct {
	api ports.LoanAPI
	log zerolog.Logger
}

func NewAdminHandler(api ports.LoanAPI, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{api: api, log: log}
}

type adminDashboardPage struct {
	Admin *domain.Admin
	Flash string

	Stats   *domain.AdminStats
	Pending []domain.LoanApplication
}

// Dashboard renders the KPI block and the pending review queue.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	admin, err := currentAdmin(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	stats, err := h.api.DashboardStats(ctx)
	if err != nil {
		return err
	}
	pending, err := h.api.PendingApplications(ctx)
	if err != nil {
		return err
	}

	return render(c, "admin_dashboard", adminDashboardPage{
		Admin:   admin,
		Flash:   flashMessage(c.QueryParam("flash")),
		Stats:   stats,
		Pending: pending,
	})
}

type adminHistoryPage struct {
	Admin  *domain.Admin
	Filter ports.HistoryFilter

	Applications []domain.LoanApplication
	Statuses     []domain.ApplicationStatus
}

// History renders the filtered application listing. Empty filter fields are
// simply not forwarded upstream.
func (h *AdminHandler) History(c echo.Context) error {
	admin, err := currentAdmin(c)
	if err != nil {
		return err
	}

	filter := ports.HistoryFilter{
		Status:    c.QueryParam("status"),
		StartDate: c.QueryParam("start_date"),
		EndDate:   c.QueryParam("end_date"),
		Search:    c.QueryParam("search"),
	}

	apps, err := h.api.History(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return render(c, "admin_history", adminHistoryPage{
		Admin:        admin,
		Filter:       filter,
		Applications: apps,
		Statuses: []domain.ApplicationStatus{
			domain.StatusPending,
			domain.StatusApproved,
			domain.StatusRejected,
			domain.StatusUnderReview,
		},
	})
}

// mixBar is a static distribution bar on the insights page.
type mixBar struct {
	Label string
	Width int
	Count int
}

type scoreBucket struct {
	Range string
	Count int
	Pct   float64
}

type adminInsightsPage struct {
	Admin *domain.Admin

	RiskSlices   []charts.Slice
	MoneySlices  []charts.Slice
	ActiveSlices []charts.Slice
	ScoreBuckets []scoreBucket

	Outstanding     float64
	EstRejectedLost float64
	EstPendingValue float64

	PurposeMix []mixBar
	TypeMix    []mixBar
}

// Insights renders the portfolio analytics page: three pies, the credit score
// histogram, and the purpose/type mix bars.
func (h *AdminHandler) Insights(c echo.Context) error {
	admin, err := currentAdmin(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	insights, err := h.api.Insights(ctx)
	if err != nil {
		return err
	}
	stats, err := h.api.DashboardStats(ctx)
	if err != nil {
		return err
	}

	page := adminInsightsPage{
		Admin: admin,
		RiskSlices: charts.Pie(100, 100, 80, []charts.PieInput{
			{Category: "Low Risk", Value: float64(insights.RiskDistribution.LowRisk), Color: "#4CAF50"},
			{Category: "Medium Risk", Value: float64(insights.RiskDistribution.MediumRisk), Color: "#FF9800"},
			{Category: "High Risk", Value: float64(insights.RiskDistribution.HighRisk), Color: "#F44336"},
		}),
		MoneySlices: charts.Pie(100, 100, 80, []charts.PieInput{
			{Category: "Repaid", Value: insights.DisbursedVsRepaid.TotalRepaid, Color: "#4CAF50"},
			{Category: "Outstanding", Value: insights.DisbursedVsRepaid.Outstanding, Color: "#2196F3"},
		}),
		ActiveSlices: charts.Pie(100, 100, 80, []charts.PieInput{
			{Category: "Active", Value: float64(insights.ActiveVsClosed.Active), Color: "#2196F3"},
			{Category: "Closed", Value: float64(insights.ActiveVsClosed.Closed), Color: "#9E9E9E"},
		}),
		Outstanding:     insights.DisbursedVsRepaid.Outstanding,
		EstRejectedLost: float64(stats.RejectedCount) * avgRejectedLoanAmount,
		EstPendingValue: float64(stats.PendingCount) * avgPendingLoanAmount,
		PurposeMix:      purposeMix(stats.TotalApplications),
		TypeMix:         typeMix(stats.TotalApplications),
	}
	page.ScoreBuckets = scoreBuckets(insights.CreditScoreDistribution)

	return render(c, "admin_insights", page)
}

// scoreBuckets orders the histogram by bucket label. The upstream labels
// ("300-499", "500-649", ...) sort correctly as strings.
func scoreBuckets(dist map[string]int) []scoreBucket {
	if len(dist) == 0 {
		return nil
	}
	keys := make([]string, 0, len(dist))
	max := 0
	for k, v := range dist {
		keys = append(keys, k)
		if v > max {
			max = v
		}
	}
	sort.Strings(keys)

	buckets := make([]scoreBucket, 0, len(keys))
	for _, k := range keys {
		buckets = append(buckets, scoreBucket{
			Range: k,
			Count: dist[k],
			Pct:   charts.Percent(float64(dist[k]), float64(max)),
		})
	}
	return buckets
}

// purposeMix and typeMix are static distributions shown until the loan API
// reports the real breakdowns.
//
// TODO: compute from the insights endpoint once it exposes purpose and loan
// type counts.
func purposeMix(total int) []mixBar {
	return []mixBar{
		{Label: "Home", Width: 90, Count: int(float64(total) * 0.42)},
		{Label: "Personal", Width: 75, Count: int(float64(total) * 0.35)},
		{Label: "Education", Width: 50, Count: int(float64(total) * 0.23)},
	}
}

func typeMix(total int) []mixBar {
	return []mixBar{
		{Label: "Secured", Width: 65, Count: int(float64(total) * 0.58)},
		{Label: "Unsecured", Width: 47, Count: int(float64(total) * 0.42)},
	}
}

type adminSettingsPage struct {
	Admin *domain.Admin
	Flash string
	Users []domain.User
}

// Settings renders the admin profile and the registered user list.
func (h *AdminHandler) Settings(c echo.Context) error {
	admin, err := currentAdmin(c)
	if err != nil {
		return err
	}

	users, err := h.api.Users(c.Request().Context())
	if err != nil {
		return err
	}

	return render(c, "admin_settings", adminSettingsPage{
		Admin: admin,
		Flash: flashMessage(c.QueryParam("flash")),
		Users: users,
	})
}

// Approve relays an approval decision and bounces back to the dashboard.
func (h *AdminHandler) Approve(c echo.Context) error {
	admin, err := currentAdmin(c)
	if err != nil {
		return err
	}
	appID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid application id")
	}

	if err := h.api.Approve(c.Request().Context(), appID, admin.ID); err != nil {
		metrics.AdminActionsTotal.WithLabelValues("approve", "error").Inc()
		h.log.Error().Err(err).Int("application_id", appID).Msg("approve failed")
		return c.Redirect(http.StatusSeeOther, "/admin/dashboard?flash=error")
	}

	metrics.AdminActionsTotal.WithLabelValues("approve", "ok").Inc()
	h.log.Info().Int("application_id", appID).Int("admin_id", admin.ID).Msg("application approved")
	return c.Redirect(http.StatusSeeOther, "/admin/dashboard?flash=approved")
}

// Reject relays a rejection with its reason and bounces back to the dashboard.
func (h *AdminHandler) Reject(c echo.Context) error {
	admin, err := currentAdmin(c)
	if err != nil {
		return err
	}
	appID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid application id")
	}
	reason := c.FormValue("reason")
	if reason == "" {
		reason = "Does not meet lending criteria"
	}

	if err := h.api.Reject(c.Request().Context(), appID, admin.ID, reason); err != nil {
		metrics.AdminActionsTotal.WithLabelValues("reject", "error").Inc()
		h.log.Error().Err(err).Int("application_id", appID).Msg("reject failed")
		return c.Redirect(http.StatusSeeOther, "/admin/dashboard?flash=error")
	}

	metrics.AdminActionsTotal.WithLabelValues("reject", "ok").Inc()
	h.log.Info().Int("application_id", appID).Int("admin_id", admin.ID).Msg("application rejected")
	return c.Redirect(http.StatusSeeOther, "/admin/dashboard?flash=rejected")
}

// DeleteUser removes a borrower account and bounces back to settings.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	admin, err := currentAdmin(c)
	if err != nil {
		return err
	}
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	if err := h.api.DeleteUser(c.Request().Context(), userID); err != nil {
		metrics.AdminActionsTotal.WithLabelValues("delete_user", "error").Inc()
		h.log.Error().Err(err).Int("user_id", userID).Msg("delete user failed")
		return c.Redirect(http.StatusSeeOther, "/admin/settings?flash=error")
	}

	metrics.AdminActionsTotal.WithLabelValues("delete_user", "ok").Inc()
	h.log.Info().Int("user_id", userID).Int("admin_id", admin.ID).Msg("user deleted")
	return c.Redirect(http.StatusSeeOther, "/admin/settings?flash=user_deleted")
}

// flashMessage maps the post-redirect flash code to its banner text.
func flashMessage(code string) string {
	switch code {
	case "approved":
		return "Application approved."
	case "rejected":
		return "Application rejected."
	case "user_deleted":
		return "User account deleted."
	case "error":
		return "The action could not be completed. Please try again."
	default:
		return ""
	}
}
