package analytics

import (
	"fmt"

	"github.com/loansewa/loansewa-web/internal/core/domain"
)

// MaxChartPoints bounds how many applications feed a trend chart.
const MaxChartPoints = 6

// Point is one chart entry: a sequential label, the plotted value, and a
// short formatted date for the x axis.
type Point struct {
	Label string
	Value float64
	Date  string
}

// ScoreSeries returns the credit scores of the most recent applications,
// oldest first so the chart reads left to right, capped at MaxChartPoints.
func ScoreSeries(apps []domain.LoanApplication) []Point {
	return series(apps, func(app domain.LoanApplication) float64 {
		return float64(app.CreditScore)
	})
}

// AmountSeries returns the loan amounts of the most recent applications,
// oldest first, capped at MaxChartPoints.
func AmountSeries(apps []domain.LoanApplication) []Point {
	return series(apps, func(app domain.LoanApplication) float64 {
		return app.LoanAmount
	})
}

func series(apps []domain.LoanApplication, value func(domain.LoanApplication) float64) []Point {
	n := len(apps)
	if n > MaxChartPoints {
		n = MaxChartPoints
	}
	if n == 0 {
		return nil
	}

	points := make([]Point, 0, n)
	// apps is newest-first; walk the first n entries backwards.
	for i := n - 1; i >= 0; i-- {
		points = append(points, Point{
			Label: fmt.Sprintf("App %d", len(points)+1),
			Value: value(apps[i]),
			Date:  apps[i].CreatedAt.Format("2 Jan"),
		})
	}
	return points
}

// TotalBorrowed sums the requested loan amounts across all applications.
func TotalBorrowed(apps []domain.LoanApplication) float64 {
	var total float64
	for _, app := range apps {
		total += app.LoanAmount
	}
	return total
}

// Lakh formats a rupee amount in lakh with the given number of decimals,
// e.g. 256000 with 2 decimals renders "2.56".
func Lakh(amount float64, decimals int) string {
	return fmt.Sprintf("%.*f", decimals, amount/100000)
}
