package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/loansewa/loansewa-web/internal/core/domain"
)

func TestDashboardHandler_NoApplications(t *testing.T) {
	e := newTestEcho()
	stub := &stubLoanAPI{
		applicationsFn: func(ctx context.Context, userID int) ([]domain.LoanApplication, error) {
			return nil, nil
		},
	}
	h := NewDashboardHandler(stub, nopLogger())

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(CtxUserKey, &domain.User{ID: 1, FullName: "Alice", CreatedAt: time.Now()})

	if err := h.Dashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "No Application") {
		t.Fatalf("expected the empty risk band label")
	}
	if !strings.Contains(body, "No score yet") {
		t.Fatalf("expected the empty gauge state")
	}
}

func TestDashboardHandler_LatestApplicationDrivesGauge(t *testing.T) {
	e := newTestEcho()
	stub := &stubLoanAPI{
		applicationsFn: func(ctx context.Context, userID int) ([]domain.LoanApplication, error) {
			if userID != 1 {
				t.Fatalf("unexpected user id %d", userID)
			}
			return []domain.LoanApplication{
				{ID: 2, CreditScore: 780, Rating: "Excellent", Status: domain.StatusApproved, LoanAmount: 300000, CreatedAt: time.Now()},
				{ID: 1, CreditScore: 640, Rating: "Fair", Status: domain.StatusRejected, LoanAmount: 200000, CreatedAt: time.Now().AddDate(0, -2, 0)},
			}, nil
		},
	}
	h := NewDashboardHandler(stub, nopLogger())

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(CtxUserKey, &domain.User{ID: 1, FullName: "Alice", CreatedAt: time.Now()})

	if err := h.Dashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, ">780<") {
		t.Fatalf("expected the newest score on the gauge")
	}
	if !strings.Contains(body, "Low Risk - High Need") {
		t.Fatalf("expected the 750+ risk band")
	}
	// 300000 + 200000 requested across both applications.
	if !strings.Contains(body, "5.00L") {
		t.Fatalf("expected the total requested amount in lakh")
	}
}

func TestDashboardHandler_MissingSessionIdentity(t *testing.T) {
	e := newTestEcho()
	h := NewDashboardHandler(&stubLoanAPI{}, nopLogger())

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()

	err := h.Dashboard(e.NewContext(req, rec))
	if err == nil {
		t.Fatalf("expected an error without a session identity")
	}
	if !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}
