package chart

import (
	"fmt"
	"strconv"

	"github.com/godilite/windrose/internal/config"
	"github.com/godilite/windrose/internal/dataset"
)

// BarWidth is the width of one bar in category units.
const BarWidth = 0.15

// labelGap lifts a bar value label above its bar.
const labelGap = 0.1

// Bar is one month's value for one category.
type Bar struct {
	Category string
	X        float64
	Value    int
	Label    string
	LabelY   float64
}

// BarGroup holds the bars of one month.
type BarGroup struct {
	Month  string
	Color  Color
	Offset float64
	Bars   []Bar
}

// Comparison describes a grouped-bar chart over several months.
type Comparison struct {
	Title        string
	XLabel       string
	YLabel       string
	Categories   []string
	BaseX        []float64
	BarWidth     float64
	Groups       []BarGroup
	Reference    float64
	YMin         float64
	YMax         float64
	TickRotation float64
	Measure      int
	TargetColor  Color
	EdgeColor    Color
	Fonts        config.FontSizes
}

// BarOffset returns the x shift of month index idx among count months so that
// each category's group is centred on its base position.
func BarOffset(idx, count int, width float64) float64 {
	return (float64(idx)-float64(count)/2)*width + width/2
}

// BuildComparison lays out one bar group per month over the aligned categories.
func BuildComparison(months []dataset.Month, year int, cfg *config.ChartConfig) (Comparison, error) {
	categories, err := Align(cfg.Alignment, months)
	if err != nil {
		return Comparison{}, fmt.Errorf("comparison chart: %w", err)
	}

	base := make([]float64, len(categories))
	for i := range base {
		base[i] = float64(i)
	}

	groups := make([]BarGroup, len(months))
	for idx, m := range months {
		offset := BarOffset(idx, len(months), BarWidth)
		values := valuesFor(m.Scores, categories)
		bars := make([]Bar, len(categories))
		for i, v := range values {
			bars[i] = Bar{
				Category: categories[i],
				X:        base[i] + offset,
				Value:    v,
				Label:    strconv.Itoa(v),
				LabelY:   float64(v) + labelGap,
			}
		}
		groups[idx] = BarGroup{
			Month:  m.Name,
			Color:  paletteColor(Set2, idx, len(months)),
			Offset: offset,
			Bars:   bars,
		}
	}

	title := "Months comparison"
	if year != 0 {
		title += fmt.Sprintf(" %d", year)
	}

	return Comparison{
		Title:        title,
		XLabel:       "Categories",
		YLabel:       "Values",
		Categories:   categories,
		BaseX:        base,
		BarWidth:     BarWidth,
		Groups:       groups,
		Reference:    float64(cfg.Measure),
		YMin:         0,
		YMax:         float64(cfg.Measure + 1),
		TickRotation: 45,
		Measure:      cfg.Measure,
		TargetColor:  TargetColor,
		EdgeColor:    BarEdgeColor,
		Fonts:        cfg.FontSizes,
	}, nil
}
