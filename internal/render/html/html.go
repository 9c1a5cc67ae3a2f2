// Package html renders chart descriptions as interactive ECharts pages.
package html

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/godilite/windrose/internal/chart"
	"github.com/godilite/windrose/internal/config"
)

// pixelsPerInch converts figure sizes to page sizes.
const pixelsPerInch = 96

// Renderer writes self-contained HTML pages.
type Renderer struct{}

// New returns an HTML renderer.
func New() *Renderer {
	return &Renderer{}
}

// Format returns "html".
func (rn *Renderer) Format() string {
	return config.FormatHTML
}

func initOpts(title string, widthIn, heightIn int) charts.GlobalOpts {
	return charts.WithInitializationOpts(opts.Initialization{
		PageTitle: strings.ReplaceAll(title, "\n", " "),
		Width:     fmt.Sprintf("%dpx", widthIn*pixelsPerInch),
		Height:    fmt.Sprintf("%dpx", heightIn*pixelsPerInch),
	})
}

func titleOpts(title, subtitle string) charts.GlobalOpts {
	return charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle})
}

func colors(cs ...chart.Color) charts.GlobalOpts {
	out := make(opts.Colors, len(cs))
	for i, c := range cs {
		out[i] = string(c)
	}
	return charts.WithColorsOpts(out)
}

// Radar renders r as a radar chart with the target ring as a second series.
func (rn *Renderer) Radar(w io.Writer, r chart.Radar) error {
	indicators := make([]*opts.Indicator, len(r.Axes))
	for i, a := range r.Axes {
		indicators[i] = &opts.Indicator{Name: a.Label, Max: float32(r.RadialLimit)}
	}

	values := make([]int, len(r.Axes))
	target := make([]int, len(r.Axes))
	for i := range r.Axes {
		values[i] = int(r.Polygon[i].Radius)
		target[i] = r.Measure
	}

	rc := charts.NewRadar()
	rc.SetGlobalOptions(
		initOpts(r.Title, 12, 10),
		titleOpts(r.Title, strings.Join(r.StatsLines, "  ")),
		colors(r.Color, r.TargetColor),
		charts.WithRadarComponentOpts(opts.RadarComponent{
			Indicator:   indicators,
			Shape:       "circle",
			SplitNumber: r.Measure + 1,
		}),
	)
	rc.AddSeries(r.Month, []opts.RadarData{{Name: r.Month, Value: values}})
	rc.AddSeries("Target", []opts.RadarData{{Name: "Target", Value: target}},
		charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed", Width: 2}),
	)

	if err := rc.Render(w); err != nil {
		return fmt.Errorf("render radar page: %w", err)
	}
	return nil
}

// Comparison renders c as grouped bars with a marked target line.
func (rn *Renderer) Comparison(w io.Writer, c chart.Comparison) error {
	groupColors := make([]chart.Color, len(c.Groups))
	for i, g := range c.Groups {
		groupColors[i] = g.Color
	}

	bc := charts.NewBar()
	bc.SetGlobalOptions(
		initOpts(c.Title, 14, 8),
		titleOpts(c.Title, ""),
		colors(groupColors...),
		charts.WithXAxisOpts(opts.XAxis{Name: c.XLabel, AxisLabel: &opts.AxisLabel{Rotate: 45}}),
		charts.WithYAxisOpts(opts.YAxis{Name: c.YLabel, Min: c.YMin, Max: c.YMax}),
	)
	bc.SetXAxis(c.Categories)

	for i, g := range c.Groups {
		data := make([]opts.BarData, len(g.Bars))
		for j, b := range g.Bars {
			data[j] = opts.BarData{Name: b.Category, Value: b.Value}
		}
		series := []charts.SeriesOpts{
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		}
		if i == 0 {
			series = append(series, charts.WithMarkLineNameYAxisItemOpts(
				opts.MarkLineNameYAxisItem{Name: "Target", YAxis: c.Reference},
			))
		}
		bc.AddSeries(g.Month, data, series...)
	}

	if err := bc.Render(w); err != nil {
		return fmt.Errorf("render comparison page: %w", err)
	}
	return nil
}

// Summary renders the heatmap and trend panels on one page.
func (rn *Renderer) Summary(w io.Writer, s chart.Summary) error {
	page := components.NewPage()
	page.PageTitle = s.Heatmap.Title
	page.AddCharts(heatmap(s), trend(s))

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render summary page: %w", err)
	}
	return nil
}

func heatmap(s chart.Summary) *charts.HeatMap {
	h := s.Heatmap
	rows := len(h.Months)

	// echarts draws the first category row at the bottom.
	months := make([]string, rows)
	for i, m := range h.Months {
		months[rows-1-i] = m
	}

	data := make([]opts.HeatMapData, 0, len(h.Cells))
	for _, cell := range h.Cells {
		data = append(data, opts.HeatMapData{
			Value: [3]interface{}{cell.Category, rows - 1 - cell.Month, cell.Value},
		})
	}

	palette := make([]string, len(h.Palette))
	for i, c := range h.Palette {
		palette[i] = string(c)
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		initOpts(h.Title, 16, 6),
		titleOpts(h.Title, ""),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: h.Categories}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: months}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        float32(h.ScaleMin),
			Max:        float32(h.ScaleMax),
			Text:       []string{h.ColorbarLabel},
			InRange:    &opts.VisualMapInRange{Color: palette},
		}),
	)
	hm.SetXAxis(h.Categories)
	hm.AddSeries(h.ColorbarLabel, data,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}),
	)
	return hm
}

func trend(s chart.Summary) *charts.Line {
	t := s.Trend

	series := func(values []float64) []opts.LineData {
		out := make([]opts.LineData, len(values))
		for i, v := range values {
			out[i] = opts.LineData{Value: v}
		}
		return out
	}

	lc := charts.NewLine()
	lc.SetGlobalOptions(
		initOpts(t.Title, 16, 6),
		titleOpts(t.Title, ""),
		colors(t.Color, t.Color, t.Color),
		charts.WithXAxisOpts(opts.XAxis{Name: t.XLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: t.YLabel, Min: t.YMin, Max: t.YMax}),
	)
	lc.SetXAxis(t.Months)
	lc.AddSeries("Mean", series(t.Mean),
		charts.WithLineStyleOpts(opts.LineStyle{Width: 2}),
	)
	lc.AddSeries("Min", series(t.Min),
		charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed", Width: 1}),
	)
	lc.AddSeries("Max", series(t.Max),
		charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed", Width: 1}),
	)
	return lc
}
