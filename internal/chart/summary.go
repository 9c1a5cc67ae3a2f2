package chart

import (
	"fmt"
	"strconv"

	"github.com/godilite/windrose/internal/config"
	"github.com/godilite/windrose/internal/dataset"
	"github.com/godilite/windrose/pkg/stats"
)

// Cell is one annotated heatmap cell.
type Cell struct {
	Month     int
	Category  int
	Value     int
	Label     string
	Fill      Color
	TextColor Color
	Light     bool
}

// Heatmap is the months x categories panel of the yearly summary.
type Heatmap struct {
	Title         string
	Months        []string
	Categories    []string
	Values        [][]int
	Cells         []Cell
	ScaleMin      float64
	ScaleMax      float64
	Palette       []Color
	ColorbarLabel string
}

// Trend is the mean-per-month panel with its min/max band.
type Trend struct {
	Title  string
	XLabel string
	YLabel string
	Months []string
	Mean   []float64
	Min    []float64
	Max    []float64
	YMin   float64
	YMax   float64
	Color  Color
}

// Summary describes the two coupled panels of the yearly summary.
type Summary struct {
	Year    int
	Heatmap Heatmap
	Trend   Trend
	Measure int
	Fonts   config.FontSizes
}

// LightText reports whether a heatmap label on value needs a light colour,
// that is whether value > 0.6 * measure.
func LightText(value, measure int) bool {
	return value*5 > measure*3
}

// BuildSummary builds the heatmap and trend panels over all months in order.
func BuildSummary(months []dataset.Month, year int, cfg *config.ChartConfig) (Summary, error) {
	categories, err := Align(cfg.Alignment, months)
	if err != nil {
		return Summary{}, fmt.Errorf("summary chart: %w", err)
	}

	names := make([]string, len(months))
	matrix := make([][]int, len(months))
	var cells []Cell
	for i, m := range months {
		names[i] = m.Name
		matrix[i] = valuesFor(m.Scores, categories)
		for j, v := range matrix[i] {
			light := LightText(v, cfg.Measure)
			text := DarkTextColor
			if light {
				text = LightTextColor
			}
			cells = append(cells, Cell{
				Month:     i,
				Category:  j,
				Value:     v,
				Label:     strconv.Itoa(v),
				Fill:      ScaleColor(float64(v), 0, float64(cfg.Measure)),
				TextColor: text,
				Light:     light,
			})
		}
	}

	rows := stats.DeriveRows(matrix)

	return Summary{
		Year: year,
		Heatmap: Heatmap{
			Title:         fmt.Sprintf("Progress heatmap for %d", year),
			Months:        names,
			Categories:    categories,
			Values:        matrix,
			Cells:         cells,
			ScaleMin:      0,
			ScaleMax:      float64(cfg.Measure),
			Palette:       YlGnBu,
			ColorbarLabel: "Values",
		},
		Trend: Trend{
			Title:  "Mean values dynamics by months",
			XLabel: "Month",
			YLabel: "Value",
			Months: names,
			Mean:   rows.Mean,
			Min:    rows.Min,
			Max:    rows.Max,
			YMin:   0,
			YMax:   float64(cfg.Measure + 1),
			Color:  TrendColor,
		},
		Measure: cfg.Measure,
		Fonts:   cfg.FontSizes,
	}, nil
}
