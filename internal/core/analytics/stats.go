// Package analytics derives trend statistics and chart-ready series from a
// user's loan application history. All functions are pure: they take the
// newest-first application list returned by the loan API and compute without
// touching the network or the clock (callers pass "now" explicitly).
package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/loansewa/loansewa-web/internal/core/domain"
)

// ScoreStats summarises the credit score trend across all applications.
// A zero-value ScoreStats (with empty labels) means "no applications yet".
type ScoreStats struct {
	Current       int
	Previous      int
	CurrentChange int
	Highest       int
	Lowest        int
	HighestLabel  string
	LowestLabel   string
}

// ComputeScoreStats derives the score trend from a newest-first application
// list. Ties on highest/lowest resolve to the first (most recent) matching
// application when picking the associated time-ago label.
func ComputeScoreStats(apps []domain.LoanApplication, now time.Time) ScoreStats {
	if len(apps) == 0 {
		return ScoreStats{}
	}

	current := apps[0].CreditScore
	previous := current
	if len(apps) > 1 {
		previous = apps[1].CreditScore
	}

	stats := ScoreStats{
		Current:       current,
		Previous:      previous,
		CurrentChange: current - previous,
		Highest:       current,
		Lowest:        current,
	}

	var highestAt, lowestAt = apps[0].CreatedAt, apps[0].CreatedAt
	for _, app := range apps[1:] {
		if app.CreditScore > stats.Highest {
			stats.Highest = app.CreditScore
			highestAt = app.CreatedAt
		}
		if app.CreditScore < stats.Lowest {
			stats.Lowest = app.CreditScore
			lowestAt = app.CreatedAt
		}
	}

	stats.HighestLabel = TimeAgo(highestAt, now)
	stats.LowestLabel = TimeAgo(lowestAt, now)
	return stats
}

// TimeAgo renders a timestamp as whole 30-day months before now, floored.
// Zero months renders as "this month"; one month is singular.
func TimeAgo(t, now time.Time) string {
	const month = 30 * 24 * time.Hour
	months := int(math.Floor(float64(now.Sub(t)) / float64(month)))
	switch {
	case months <= 0:
		return "this month"
	case months == 1:
		return "1 month ago"
	default:
		return fmt.Sprintf("%d months ago", months)
	}
}
