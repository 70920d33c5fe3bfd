package domain

import "time"

// ApplicationStatus is the server-controlled lifecycle state of a loan
// application. The web layer never mutates it directly; it only triggers
// approve/reject requests that the loan API fulfils.
type ApplicationStatus string

const (
	StatusPending     ApplicationStatus = "Pending"
	StatusApproved    ApplicationStatus = "Approved"
	StatusRejected    ApplicationStatus = "Rejected"
	StatusUnderReview ApplicationStatus = "Under Review"
)

// Residence types accepted by the loan API.
const (
	ResidenceOwned    = "Owned"
	ResidenceRented   = "Rented"
	ResidenceMortgage = "Mortgage"
)

// Loan purposes accepted by the loan API.
const (
	PurposeEducation = "Education"
	PurposeHome      = "Home"
	PurposeAuto      = "Auto"
	PurposePersonal  = "Personal"
)

// Loan types accepted by the loan API.
const (
	LoanSecured   = "Secured"
	LoanUnsecured = "Unsecured"
)

// Credit score bounds as defined by the scoring model.
const (
	MinCreditScore = 300
	MaxCreditScore = 900
)

// LoanApplication is a read-only, server-issued record. The user_name and
// user_email fields are only populated on admin listings.
type LoanApplication struct {
	ID     int `json:"id"`
	UserID int `json:"user_id"`

	LoanAmount             float64 `json:"loan_amount"`
	Income                 float64 `json:"income"`
	LoanTenureMonths       int     `json:"loan_tenure_months"`
	AvgDPDPerDelinquency   float64 `json:"avg_dpd_per_delinquency"`
	DelinquencyRatio       float64 `json:"delinquency_ratio"`
	CreditUtilizationRatio float64 `json:"credit_utilization_ratio"`
	NumOpenAccounts        int     `json:"num_open_accounts"`

	ResidenceType string `json:"residence_type"`
	LoanPurpose   string `json:"loan_purpose"`
	LoanType      string `json:"loan_type"`

	CreditScore        int     `json:"credit_score"`
	Rating             string  `json:"rating"`
	DefaultProbability float64 `json:"default_probability"`

	Status          ApplicationStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	RejectionReason string            `json:"rejection_reason,omitempty"`
	DisbursedAmount float64           `json:"disbursed_amount,omitempty"`
	RepaidAmount    float64           `json:"repaid_amount,omitempty"`

	UserName  string `json:"user_name,omitempty"`
	UserEmail string `json:"user_email,omitempty"`
}

// RiskBand is the UI-level grouping of a credit score into a risk label.
type RiskBand struct {
	Label string
	Color string
}

// Score thresholds for risk banding.
const (
	lowRiskHighNeedScore     = 750
	lowRiskModerateNeedScore = 650
	moderateRiskScore        = 500
)

// RiskBandForScore maps a credit score to its risk band.
func RiskBandForScore(score int) RiskBand {
	switch {
	case score >= lowRiskHighNeedScore:
		return RiskBand{Label: "Low Risk - High Need", Color: "green"}
	case score >= lowRiskModerateNeedScore:
		return RiskBand{Label: "Low Risk - Moderate Need", Color: "green"}
	case score >= moderateRiskScore:
		return RiskBand{Label: "Moderate Risk", Color: "orange"}
	default:
		return RiskBand{Label: "High Risk", Color: "red"}
	}
}

// NoApplicationBand is rendered when the user has no scored application yet.
var NoApplicationBand = RiskBand{Label: "No Application", Color: "gray"}
