// Package ports declares the interfaces the web layer depends on, keeping
// handlers testable against stubs.
package ports

import (
	"context"

	"github.com/loansewa/loansewa-web/internal/core/domain"
)

// SignupInput carries a new borrower registration.
type SignupInput struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobile_number"`
	Aadhar       string `json:"aadhar"`
	Password     string `json:"password"`
}

// AdminSignupInput carries a new admin registration.
type AdminSignupInput struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobile_number"`
	Password     string `json:"password"`
}

// ApplicationInput is the loan application form payload sent for scoring.
type ApplicationInput struct {
	Age                    int     `json:"age"`
	Income                 float64 `json:"income"`
	LoanAmount             float64 `json:"loan_amount"`
	LoanTenureMonths       int     `json:"loan_tenure_months"`
	AvgDPDPerDelinquency   float64 `json:"avg_dpd_per_delinquency"`
	DelinquencyRatio       float64 `json:"delinquency_ratio"`
	CreditUtilizationRatio float64 `json:"credit_utilization_ratio"`
	NumOpenAccounts        int     `json:"num_open_accounts"`
	ResidenceType          string  `json:"residence_type"`
	LoanPurpose            string  `json:"loan_purpose"`
	LoanType               string  `json:"loan_type"`
}

// HistoryFilter narrows the admin application history listing. Empty fields
// are omitted from the upstream query.
type HistoryFilter struct {
	Status    string
	StartDate string
	EndDate   string
	Search    string
}

// LoanAPI is the client-side contract with the remote loan platform API.
// Every call is a fresh request: no retries, no caching.
type LoanAPI interface {
	Signup(ctx context.Context, in SignupInput) (*domain.User, error)
	Login(ctx context.Context, identifier, password string) (*domain.User, error)

	Apply(ctx context.Context, userID int, in ApplicationInput) (*domain.LoanApplication, error)
	Applications(ctx context.Context, userID int) ([]domain.LoanApplication, error)
	Improvement(ctx context.Context, userID int) (*domain.ImprovementReport, error)

	AdminSignup(ctx context.Context, in AdminSignupInput) (*domain.Admin, error)
	AdminLogin(ctx context.Context, email, password string) (*domain.Admin, error)
	DashboardStats(ctx context.Context) (*domain.AdminStats, error)
	PendingApplications(ctx context.Context) ([]domain.LoanApplication, error)
	History(ctx context.Context, filter HistoryFilter) ([]domain.LoanApplication, error)
	Insights(ctx context.Context) (*domain.Insights, error)
	Users(ctx context.Context) ([]domain.User, error)
	Approve(ctx context.Context, applicationID, adminID int) error
	Reject(ctx context.Context, applicationID, adminID int, reason string) error
	DeleteUser(ctx context.Context, userID int) error

	Ping(ctx context.Context) error
}
