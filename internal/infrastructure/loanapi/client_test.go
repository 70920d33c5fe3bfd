package loanapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/loansewa/loansewa-web/internal/core/domain"
	"github.com/loansewa/loansewa-web/internal/core/ports"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, zerolog.Nop())
}

func TestLogin_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"user":{"id":7,"full_name":"Asha Rao","email":"asha@example.com"}}`))
	})

	user, err := client.Login(context.Background(), "asha@example.com", "secret")
	if err != nil {
		t.Fatalf("login error: %v", err)
	}
	if user.ID != 7 || user.FullName != "Asha Rao" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestLogin_UpstreamDetailSurfaced(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Invalid credentials"}`))
	})

	_, err := client.Login(context.Background(), "asha@example.com", "bad")
	var ue *domain.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if ue.StatusCode != http.StatusUnauthorized || ue.Message != "Invalid credentials" {
		t.Fatalf("unexpected error: %+v", ue)
	}
}

func TestLogin_GenericFallbackMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	})

	_, err := client.Login(context.Background(), "asha@example.com", "pw")
	var ue *domain.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if ue.Message != "loan api returned status 500" {
		t.Fatalf("unexpected message: %q", ue.Message)
	}
}

func TestLogin_SuccessFalseIsBadResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false}`))
	})

	_, err := client.Login(context.Background(), "asha@example.com", "pw")
	if !errors.Is(err, domain.ErrBadUpstreamResponse) {
		t.Fatalf("expected ErrBadUpstreamResponse, got %v", err)
	}
}

func TestApply_SendsUserIDQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/loan/apply" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("user_id"); got != "42" {
			t.Fatalf("expected user_id=42, got %q", got)
		}
		_, _ = w.Write([]byte(`{"success":true,"application":{"id":1,"status":"Pending","credit_score":712,"rating":"Good","default_probability":0.08}}`))
	})

	app, err := client.Apply(context.Background(), 42, ports.ApplicationInput{LoanAmount: 250000})
	if err != nil {
		t.Fatalf("apply error: %v", err)
	}
	if app.CreditScore != 712 || app.Status != domain.StatusPending {
		t.Fatalf("unexpected application: %+v", app)
	}
}

func TestApplications_DecodesList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/loan/applications/42" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"id":2,"credit_score":720},{"id":1,"credit_score":680}]`))
	})

	apps, err := client.Applications(context.Background(), 42)
	if err != nil {
		t.Fatalf("applications error: %v", err)
	}
	if len(apps) != 2 || apps[0].CreditScore != 720 {
		t.Fatalf("unexpected applications: %+v", apps)
	}
}

func TestImprovement_NoDataIsEmptyState(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"message":"No loan application found"}`))
	})

	report, err := client.Improvement(context.Background(), 42)
	if err != nil {
		t.Fatalf("improvement error: %v", err)
	}
	if report.Available {
		t.Fatal("expected unavailable report")
	}
	if report.Message != "No loan application found" {
		t.Fatalf("unexpected message: %q", report.Message)
	}
}

func TestHistory_ForwardsOnlySetFilters(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("status") != "Approved" || q.Get("search") != "asha" {
			t.Fatalf("unexpected query: %v", q)
		}
		if _, ok := q["startDate"]; ok {
			t.Fatal("empty startDate should be omitted")
		}
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.History(context.Background(), ports.HistoryFilter{Status: "Approved", Search: "asha"})
	if err != nil {
		t.Fatalf("history error: %v", err)
	}
}

func TestReject_SendsReasonAndAdminID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/applications/9/reject" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("admin_id"); got != "3" {
			t.Fatalf("expected admin_id=3, got %q", got)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["rejection_reason"] != "income too low" {
			t.Fatalf("unexpected body: %v", body)
		}
		w.WriteHeader(http.StatusOK)
	})

	if err := client.Reject(context.Background(), 9, 3, "income too low"); err != nil {
		t.Fatalf("reject error: %v", err)
	}
}

func TestTransportErrorWrapsUnavailable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", time.Second, zerolog.Nop())

	_, err := client.Applications(context.Background(), 1)
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}
