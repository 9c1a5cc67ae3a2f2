// Package chart turns rating data into renderer-independent chart descriptions.
package chart

import (
	"fmt"
	"math"

	"github.com/godilite/windrose/internal/config"
	"github.com/godilite/windrose/internal/dataset"
	"github.com/godilite/windrose/pkg/stats"
)

// Axis is one radial category axis.
type Axis struct {
	Label string
	Angle float64
}

// PolarPoint is a vertex of the radar polygon.
type PolarPoint struct {
	Angle  float64
	Radius float64
}

// Radar describes a single-month radar chart.
type Radar struct {
	Title           string
	Month           string
	Axes            []Axis
	Polygon         []PolarPoint
	ReferenceRadius float64
	RadialLimit     float64
	Ticks           []int
	Stats           stats.Derived
	StatsLines      []string
	Measure         int
	Color           Color
	TargetColor     Color
	Fonts           config.FontSizes
}

// BuildRadar lays out month's scores on equally spaced axes.
func BuildRadar(month string, scores dataset.Scores, year int, cfg *config.ChartConfig) Radar {
	n := len(scores)
	measure := cfg.Measure

	axes := make([]Axis, n)
	angles := make([]float64, 0, n+1)
	radii := make([]float64, 0, n+1)
	for i, sc := range scores {
		angle := 2 * math.Pi * float64(i) / float64(n)
		axes[i] = Axis{Label: sc.Category, Angle: angle}
		angles = append(angles, angle)
		radii = append(radii, float64(sc.Value))
	}
	if n > 0 {
		angles = append(angles, angles[0])
		radii = append(radii, radii[0])
	}

	polygon := make([]PolarPoint, len(angles))
	for i := range angles {
		polygon[i] = PolarPoint{Angle: angles[i], Radius: radii[i]}
	}

	ticks := make([]int, 0, measure+1)
	for t := 0; t <= measure; t++ {
		ticks = append(ticks, t)
	}

	derived := stats.Derive(scores.Values(), measure, angles, radii)

	return Radar{
		Title:           radarTitle(cfg.DiagramName, month, year),
		Month:           month,
		Axes:            axes,
		Polygon:         polygon,
		ReferenceRadius: float64(measure),
		RadialLimit:     float64(measure + 1),
		Ticks:           ticks,
		Stats:           derived,
		StatsLines:      StatsLines(derived, measure),
		Measure:         measure,
		Color:           RadarColor,
		TargetColor:     TargetColor,
		Fonts:           cfg.FontSizes,
	}
}

// StatsLines formats the centre annotation of a radar chart.
func StatsLines(d stats.Derived, measure int) []string {
	return []string{
		fmt.Sprintf("Mean: %.1f/%d", d.Mean, measure),
		fmt.Sprintf("Max: %d/%d", d.Max, measure),
		fmt.Sprintf("Min: %d/%d", d.Min, measure),
		fmt.Sprintf("Feeling: %.1f%%", d.Completion),
	}
}

func radarTitle(name, month string, year int) string {
	title := name + "\n" + month
	if year != 0 {
		title += fmt.Sprintf(" %d", year)
	}
	return title
}
