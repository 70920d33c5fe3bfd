// Package charts computes SVG geometry for the analytics and insights pages.
// It is purely computational: handlers feed it numbers, templates render the
// resulting paths and percentages.
package charts

import (
	"fmt"
	"math"
)

// PieInput is one category feeding a pie or donut chart.
type PieInput struct {
	Category string
	Value    float64
	Color    string
}

// Slice is a rendered pie wedge. Zero-valued categories never produce a
// Slice; they are skipped entirely and contribute no rotation.
type Slice struct {
	Category string
	Value    float64
	Percent  float64
	Path     string
	Color    string
}

// Pie lays out slices clockwise from the 12 o'clock position. Each slice is a
// filled wedge from the centre to two arc endpoints; the donut hole, when
// wanted, is a cosmetic circle the template draws on top afterwards.
// A non-positive total yields no slices.
func Pie(cx, cy, r float64, inputs []PieInput) []Slice {
	var total float64
	for _, in := range inputs {
		total += in.Value
	}
	if total <= 0 {
		return nil
	}

	slices := make([]Slice, 0, len(inputs))
	var angle float64
	for _, in := range inputs {
		if in.Value <= 0 {
			continue
		}
		percent := in.Value / total * 100
		span := percent / 100 * 360
		start := angle
		end := angle + span
		angle = end

		slices = append(slices, Slice{
			Category: in.Category,
			Value:    in.Value,
			Percent:  percent,
			Path:     wedgePath(cx, cy, r, start, end),
			Color:    in.Color,
		})
	}
	return slices
}

// wedgePath builds the SVG path for a wedge between two angles given in
// degrees from 12 o'clock, sweeping clockwise.
func wedgePath(cx, cy, r, startDeg, endDeg float64) string {
	x1, y1 := arcPoint(cx, cy, r, startDeg)
	x2, y2 := arcPoint(cx, cy, r, endDeg)

	largeArc := 0
	if endDeg-startDeg > 180 {
		largeArc = 1
	}

	return fmt.Sprintf("M %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f Z",
		cx, cy, x1, y1, r, r, largeArc, x2, y2)
}

// arcPoint converts an angle measured clockwise from 12 o'clock into a point
// on the circle. The -90 offset moves the SVG 3 o'clock origin to the top.
func arcPoint(cx, cy, r, deg float64) (x, y float64) {
	rad := (deg - 90) * math.Pi / 180
	return cx + r*math.Cos(rad), cy + r*math.Sin(rad)
}
