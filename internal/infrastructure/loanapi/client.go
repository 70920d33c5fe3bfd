// Package loanapi is the typed HTTP client for the remote loan platform API.
// It is the only place upstream JSON is decoded: responses unmarshal into
// typed structs at this boundary, and non-2xx replies become a
// domain.UpstreamError carrying the server's detail message.
package loanapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/loansewa/loansewa-web/internal/api/metrics"
	"github.com/loansewa/loansewa-web/internal/core/domain"
	"github.com/loansewa/loansewa-web/internal/core/ports"
)

const defaultTimeout = 30 * time.Second

// Client implements ports.LoanAPI over HTTP. Calls are one-shot: no retries,
// no caching. Failures are surfaced to the caller for inline display.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient builds a Client for the given base URL (e.g.
// "http://localhost:8000/api"). A non-positive timeout falls back to 30s.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

var _ ports.LoanAPI = (*Client)(nil)

// ── Auth ──────────────────────────────────────────────────────────────────────

type userEnvelope struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user"`
}

func (c *Client) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	var env userEnvelope
	if err := c.do(ctx, "signup", http.MethodPost, "/auth/signup", nil, in, &env); err != nil {
		return nil, err
	}
	if !env.Success || env.User == nil {
		return nil, fmt.Errorf("signup: %w", domain.ErrBadUpstreamResponse)
	}
	return env.User, nil
}

func (c *Client) Login(ctx context.Context, identifier, password string) (*domain.User, error) {
	body := map[string]string{"identifier": identifier, "password": password}
	var env userEnvelope
	if err := c.do(ctx, "login", http.MethodPost, "/auth/login", nil, body, &env); err != nil {
		return nil, err
	}
	if !env.Success || env.User == nil {
		return nil, fmt.Errorf("login: %w", domain.ErrBadUpstreamResponse)
	}
	return env.User, nil
}

// ── Loans ─────────────────────────────────────────────────────────────────────

type applyEnvelope struct {
	Success     bool                    `json:"success"`
	Application *domain.LoanApplication `json:"application"`
}

func (c *Client) Apply(ctx context.Context, userID int, in ports.ApplicationInput) (*domain.LoanApplication, error) {
	query := url.Values{"user_id": {strconv.Itoa(userID)}}
	var env applyEnvelope
	if err := c.do(ctx, "apply", http.MethodPost, "/loan/apply", query, in, &env); err != nil {
		return nil, err
	}
	if !env.Success || env.Application == nil {
		return nil, fmt.Errorf("apply: %w", domain.ErrBadUpstreamResponse)
	}
	return env.Application, nil
}

func (c *Client) Applications(ctx context.Context, userID int) ([]domain.LoanApplication, error) {
	var apps []domain.LoanApplication
	path := "/loan/applications/" + strconv.Itoa(userID)
	if err := c.do(ctx, "applications", http.MethodGet, path, nil, nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

type improvementEnvelope struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message"`
	CreditScore int                 `json:"credit_score"`
	Suggestions []domain.Suggestion `json:"suggestions"`
}

func (c *Client) Improvement(ctx context.Context, userID int) (*domain.ImprovementReport, error) {
	var env improvementEnvelope
	path := "/credit/improvement/" + strconv.Itoa(userID)
	if err := c.do(ctx, "improvement", http.MethodGet, path, nil, nil, &env); err != nil {
		return nil, err
	}
	// success=false means "no scored application yet": an empty state for the
	// page, not an error.
	return &domain.ImprovementReport{
		Available:   env.Success,
		Message:     env.Message,
		CreditScore: env.CreditScore,
		Suggestions: env.Suggestions,
	}, nil
}

// ── Admin ─────────────────────────────────────────────────────────────────────

type adminEnvelope struct {
	Admin *domain.Admin `json:"admin"`
}

func (c *Client) AdminSignup(ctx context.Context, in ports.AdminSignupInput) (*domain.Admin, error) {
	var env adminEnvelope
	if err := c.do(ctx, "admin_signup", http.MethodPost, "/admin/signup", nil, in, &env); err != nil {
		return nil, err
	}
	if env.Admin == nil {
		return nil, fmt.Errorf("admin signup: %w", domain.ErrBadUpstreamResponse)
	}
	return env.Admin, nil
}

func (c *Client) AdminLogin(ctx context.Context, email, password string) (*domain.Admin, error) {
	body := map[string]string{"email": email, "password": password}
	var env adminEnvelope
	if err := c.do(ctx, "admin_login", http.MethodPost, "/admin/login", nil, body, &env); err != nil {
		return nil, err
	}
	if env.Admin == nil {
		return nil, fmt.Errorf("admin login: %w", domain.ErrBadUpstreamResponse)
	}
	return env.Admin, nil
}

func (c *Client) DashboardStats(ctx context.Context) (*domain.AdminStats, error) {
	var stats domain.AdminStats
	if err := c.do(ctx, "admin_stats", http.MethodGet, "/admin/dashboard/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) PendingApplications(ctx context.Context) ([]domain.LoanApplication, error) {
	var apps []domain.LoanApplication
	if err := c.do(ctx, "admin_pending", http.MethodGet, "/admin/applications/pending", nil, nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (c *Client) History(ctx context.Context, filter ports.HistoryFilter) ([]domain.LoanApplication, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.StartDate != "" {
		query.Set("startDate", filter.StartDate)
	}
	if filter.EndDate != "" {
		query.Set("endDate", filter.EndDate)
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}

	var apps []domain.LoanApplication
	if err := c.do(ctx, "admin_history", http.MethodGet, "/admin/applications/history", query, nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (c *Client) Insights(ctx context.Context) (*domain.Insights, error) {
	var insights domain.Insights
	if err := c.do(ctx, "admin_insights", http.MethodGet, "/admin/analytics/insights", nil, nil, &insights); err != nil {
		return nil, err
	}
	return &insights, nil
}

func (c *Client) Users(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.do(ctx, "admin_users", http.MethodGet, "/admin/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) Approve(ctx context.Context, applicationID, adminID int) error {
	query := url.Values{"admin_id": {strconv.Itoa(adminID)}}
	path := fmt.Sprintf("/admin/applications/%d/approve", applicationID)
	return c.do(ctx, "admin_approve", http.MethodPost, path, query, struct{}{}, nil)
}

func (c *Client) Reject(ctx context.Context, applicationID, adminID int, reason string) error {
	query := url.Values{"admin_id": {strconv.Itoa(adminID)}}
	path := fmt.Sprintf("/admin/applications/%d/reject", applicationID)
	body := map[string]string{"rejection_reason": reason}
	return c.do(ctx, "admin_reject", http.MethodPost, path, query, body, nil)
}

func (c *Client) DeleteUser(ctx context.Context, userID int) error {
	path := "/admin/users/" + strconv.Itoa(userID)
	return c.do(ctx, "admin_delete_user", http.MethodDelete, path, nil, nil, nil)
}

// Ping probes upstream reachability for the readiness endpoint. Any HTTP
// response counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	_ = resp.Body.Close()
	return nil
}

// ── Transport ─────────────────────────────────────────────────────────────────

// upstreamDetail matches the loan API's error envelope.
type upstreamDetail struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// do performs one request/response cycle and records metrics for it.
// endpoint is the stable metric label, not the URL path.
func (c *Client) do(ctx context.Context, endpoint, method, path string, query url.Values, body, out any) error {
	start := time.Now()
	err := c.roundTrip(ctx, method, path, query, body, out)
	metrics.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	status := "ok"
	if err != nil {
		status = "transport_error"
		var ue *domain.UpstreamError
		if errors.As(err, &ue) {
			status = "upstream_error"
		}
		c.log.Warn().Err(err).Str("endpoint", endpoint).Str("path", path).Msg("loan api request failed")
	}
	metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, status).Inc()
	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBadUpstreamResponse, err)
	}
	return nil
}

// decodeError extracts the server's detail message, falling back to a
// generic one when the body is not the expected envelope.
func decodeError(resp *http.Response) error {
	var detail upstreamDetail
	msg := ""
	if err := json.NewDecoder(resp.Body).Decode(&detail); err == nil {
		if detail.Detail != "" {
			msg = detail.Detail
		} else {
			msg = detail.Message
		}
	}
	if msg == "" {
		msg = fmt.Sprintf("loan api returned status %d", resp.StatusCode)
	}
	return &domain.UpstreamError{StatusCode: resp.StatusCode, Message: msg}
}
