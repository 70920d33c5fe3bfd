package charts

// The dashboard score gauge is a circle of radius 85 with a dash array of
// 534 (its circumference). The filled arc length encodes the score's
// position within the 300-900 range.
const GaugeCircumference = 534.0

// GaugeOffset returns the stroke-dashoffset for a credit score. Without an
// application the gauge stays empty (full offset).
func GaugeOffset(score int, hasApplication bool) float64 {
	if !hasApplication {
		return GaugeCircumference
	}
	normalized := float64(score-300) / 600
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}
	return GaugeCircumference * (1 - normalized)
}
