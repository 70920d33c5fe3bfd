package domain

// AdminStats is the KPI block on the admin dashboard. Every field defaults to
// zero when the loan API omits it.
type AdminStats struct {
	TotalUsers     int     `json:"total_users"`
	ApprovedCount  int     `json:"approved_count"`
	RejectedCount  int     `json:"rejected_count"`
	PendingCount   int     `json:"pending_count"`
	TotalDisbursed float64 `json:"total_disbursed"`
	TotalRepaid    float64 `json:"total_repaid"`

	TotalApplications    int `json:"total_applications"`
	ApprovedApplications int `json:"approved_applications"`
	RejectedApplications int `json:"rejected_applications"`
	PendingApplications  int `json:"pending_applications"`
}

// RiskDistribution groups applications by risk band.
type RiskDistribution struct {
	LowRisk    int `json:"low_risk"`
	MediumRisk int `json:"medium_risk"`
	HighRisk   int `json:"high_risk"`
}

// DisbursedVsRepaid summarises the money flow across all approved loans.
type DisbursedVsRepaid struct {
	TotalDisbursed float64 `json:"total_disbursed"`
	TotalRepaid    float64 `json:"total_repaid"`
	Outstanding    float64 `json:"outstanding"`
}

// ActiveVsClosed counts loans still being repaid versus settled ones.
type ActiveVsClosed struct {
	Active int `json:"active"`
	Closed int `json:"closed"`
}

// Insights is the analytics payload behind the admin insights page.
type Insights struct {
	RiskDistribution        RiskDistribution  `json:"risk_distribution"`
	DisbursedVsRepaid       DisbursedVsRepaid `json:"disbursed_vs_repaid"`
	CreditScoreDistribution map[string]int    `json:"credit_score_distribution"`
	ActiveVsClosed          ActiveVsClosed    `json:"active_vs_closed"`
}

// Suggestion is a single credit improvement tip.
type Suggestion struct {
	Icon        string `json:"icon"`
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ImprovementReport is the credit improvement payload for a user. When the
// user has no scored application yet, Available is false and Message carries
// the server-supplied explanation; that is an empty state, not an error.
type ImprovementReport struct {
	Available   bool
	Message     string
	CreditScore int
	Suggestions []Suggestion
}
