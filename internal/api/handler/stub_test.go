package handler

import (
	"context"

	"github.com/loansewa/loansewa-web/internal/core/domain"
	"github.com/loansewa/loansewa-web/internal/core/ports"
)

// stubLoanAPI implements ports.LoanAPI with overridable behaviour per test.
type stubLoanAPI struct {
	signupFn       func(ctx context.Context, in ports.SignupInput) (*domain.User, error)
	loginFn        func(ctx context.Context, identifier, password string) (*domain.User, error)
	applyFn        func(ctx context.Context, userID int, in ports.ApplicationInput) (*domain.LoanApplication, error)
	applicationsFn func(ctx context.Context, userID int) ([]domain.LoanApplication, error)
	improvementFn  func(ctx context.Context, userID int) (*domain.ImprovementReport, error)
	adminSignupFn  func(ctx context.Context, in ports.AdminSignupInput) (*domain.Admin, error)
	adminLoginFn   func(ctx context.Context, email, password string) (*domain.Admin, error)
	statsFn        func(ctx context.Context) (*domain.AdminStats, error)
	pendingFn      func(ctx context.Context) ([]domain.LoanApplication, error)
	historyFn      func(ctx context.Context, filter ports.HistoryFilter) ([]domain.LoanApplication, error)
	insightsFn     func(ctx context.Context) (*domain.Insights, error)
	usersFn        func(ctx context.Context) ([]domain.User, error)
	approveFn      func(ctx context.Context, applicationID, adminID int) error
	rejectFn       func(ctx context.Context, applicationID, adminID int, reason string) error
	deleteUserFn   func(ctx context.Context, userID int) error
	pingFn         func(ctx context.Context) error
}

func (s *stubLoanAPI) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	return s.signupFn(ctx, in)
}

func (s *stubLoanAPI) Login(ctx context.Context, identifier, password string) (*domain.User, error) {
	return s.loginFn(ctx, identifier, password)
}

func (s *stubLoanAPI) Apply(ctx context.Context, userID int, in ports.ApplicationInput) (*domain.LoanApplication, error) {
	return s.applyFn(ctx, userID, in)
}

func (s *stubLoanAPI) Applications(ctx context.Context, userID int) ([]domain.LoanApplication, error) {
	return s.applicationsFn(ctx, userID)
}

func (s *stubLoanAPI) Improvement(ctx context.Context, userID int) (*domain.ImprovementReport, error) {
	return s.improvementFn(ctx, userID)
}

func (s *stubLoanAPI) AdminSignup(ctx context.Context, in ports.AdminSignupInput) (*domain.Admin, error) {
	return s.adminSignupFn(ctx, in)
}

func (s *stubLoanAPI) AdminLogin(ctx context.Context, email, password string) (*domain.Admin, error) {
	return s.adminLoginFn(ctx, email, password)
}

func (s *stubLoanAPI) DashboardStats(ctx context.Context) (*domain.AdminStats, error) {
	return s.statsFn(ctx)
}

func (s *stubLoanAPI) PendingApplications(ctx context.Context) ([]domain.LoanApplication, error) {
	return s.pendingFn(ctx)
}

func (s *stubLoanAPI) History(ctx context.Context, filter ports.HistoryFilter) ([]domain.LoanApplication, error) {
	return s.historyFn(ctx, filter)
}

func (s *stubLoanAPI) Insights(ctx context.Context) (*domain.Insights, error) {
	return s.insightsFn(ctx)
}

func (s *stubLoanAPI) Users(ctx context.Context) ([]domain.User, error) {
	return s.usersFn(ctx)
}

func (s *stubLoanAPI) Approve(ctx context.Context, applicationID, adminID int) error {
	return s.approveFn(ctx, applicationID, adminID)
}

func (s *stubLoanAPI) Reject(ctx context.Context, applicationID, adminID int, reason string) error {
	return s.rejectFn(ctx, applicationID, adminID, reason)
}

func (s *stubLoanAPI) DeleteUser(ctx context.Context, userID int) error {
	return s.deleteUserFn(ctx, userID)
}

func (s *stubLoanAPI) Ping(ctx context.Context) error {
	return s.pingFn(ctx)
}
