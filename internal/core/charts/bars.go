package charts

// BarInput is one entry feeding a bar chart.
type BarInput struct {
	Label string
	Value float64
	Date  string
}

// Bar is a rendered bar. Pct is the bar's height or width as a percentage of
// the chart maximum; it can exceed 100 when the caller supplies a floor below
// the actual series maximum, which the templates simply let overflow.
type Bar struct {
	Label string
	Value float64
	Date  string
	Pct   float64
	Color string
}

// Score band colours for the credit score history chart.
const (
	colorExcellent = "#4CAF50"
	colorGood      = "#2196F3"
	colorFair      = "#FF9800"
	colorPoor      = "#F44336"
)

// Bars scales each value against max. A non-positive max yields zero-height
// bars rather than a division blowup.
func Bars(inputs []BarInput, max float64) []Bar {
	bars := make([]Bar, 0, len(inputs))
	for _, in := range inputs {
		bars = append(bars, Bar{
			Label: in.Label,
			Value: in.Value,
			Date:  in.Date,
			Pct:   Percent(in.Value, max),
		})
	}
	return bars
}

// ScoreBars renders credit scores against the fixed 900 ceiling, coloured by
// score band.
func ScoreBars(inputs []BarInput) []Bar {
	bars := Bars(inputs, 900)
	for i := range bars {
		bars[i].Color = scoreColor(bars[i].Value)
	}
	return bars
}

// AmountBars renders loan amounts against the series maximum, floored so a
// handful of small loans still produce a readable scale. The effective maximum
// is returned for the chart's axis labels.
func AmountBars(inputs []BarInput, floor float64) ([]Bar, float64) {
	max := floor
	for _, in := range inputs {
		if in.Value > max {
			max = in.Value
		}
	}
	bars := Bars(inputs, max)
	for i := range bars {
		bars[i].Color = "#9C27B0"
	}
	return bars, max
}

// Percent is the value/max ratio as a percentage, zero when max is not
// positive.
func Percent(value, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return value / max * 100
}

func scoreColor(score float64) string {
	switch {
	case score >= 750:
		return colorExcellent
	case score >= 650:
		return colorGood
	case score >= 500:
		return colorFair
	default:
		return colorPoor
	}
}
