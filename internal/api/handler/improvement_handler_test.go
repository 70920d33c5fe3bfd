package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/loansewa/loansewa-web/internal/core/domain"
)

func TestImprovementHandler_RendersSuggestions(t *testing.T) {
	e := newTestEcho()
	stub := &stubLoanAPI{
		improvementFn: func(ctx context.Context, userID int) (*domain.ImprovementReport, error) {
			return &domain.ImprovementReport{
				Available:   true,
				CreditScore: 585,
				Suggestions: []domain.Suggestion{
					{Icon: "💳", Priority: "High", Title: "Reduce credit utilisation", Description: "Keep utilisation under 30% of your limit."},
					{Icon: "📅", Priority: "Medium", Title: "Pay on time", Description: "Late payments weigh heavily on your score."},
				},
			}, nil
		},
	}
	h := NewImprovementHandler(stub, nopLogger())

	req := httptest.NewRequest(http.MethodGet, "/improve", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(CtxUserKey, &domain.User{ID: 1})

	if err := h.Improve(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "Reduce credit utilisation") {
		t.Fatalf("expected the first suggestion")
	}
	if !strings.Contains(body, "Moderate Risk") {
		t.Fatalf("expected the risk band for a 585 score")
	}
}

func TestImprovementHandler_EmptyState(t *testing.T) {
	e := newTestEcho()
	stub := &stubLoanAPI{
		improvementFn: func(ctx context.Context, userID int) (*domain.ImprovementReport, error) {
			return &domain.ImprovementReport{
				Available: false,
				Message:   "No application found. Apply for a loan to get improvement suggestions.",
			}, nil
		},
	}
	h := NewImprovementHandler(stub, nopLogger())

	req := httptest.NewRequest(http.MethodGet, "/improve", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(CtxUserKey, &domain.User{ID: 1})

	if err := h.Improve(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No application found") {
		t.Fatalf("expected the server-supplied empty state message")
	}
}
