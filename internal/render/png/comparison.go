package png

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/godilite/windrose/internal/chart"
)

func rect(x0, x1, y0, y1 float64) plotter.XYs {
	return plotter.XYs{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

// Comparison draws one bar series per month around each category position.
func (rn *Renderer) Comparison(w io.Writer, c chart.Comparison) error {
	p := newPlot(c.Title, c.Fonts)
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Y.Min, p.Y.Max = c.YMin, c.YMax
	p.Legend.Top = true

	xMin, xMax := -0.5, float64(len(c.Categories))-0.5
	p.X.Min, p.X.Max = xMin, xMax
	p.X.Tick.Marker = namedTicks(c.Categories, func(i int) float64 { return c.BaseX[i] })
	p.X.Tick.Label.Rotation = c.TickRotation * math.Pi / 180
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	p.Add(plotter.NewGrid())

	for _, g := range c.Groups {
		if err := addBarGroup(p, g, c); err != nil {
			return err
		}
	}

	target, err := plotter.NewLine(plotter.XYs{{X: xMin, Y: c.Reference}, {X: xMax, Y: c.Reference}})
	if err != nil {
		return fmt.Errorf("comparison target: %w", err)
	}
	target.LineStyle.Color = c.TargetColor.RGBA(0.7)
	target.LineStyle.Width = vg.Points(2)
	target.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
	p.Add(target)
	p.Legend.Add("Target", target)

	return writePlot(w, p, comparisonWidth, comparisonHeight)
}

func addBarGroup(p *plot.Plot, g chart.BarGroup, c chart.Comparison) error {
	if len(g.Bars) == 0 {
		return nil
	}

	half := c.BarWidth / 2
	var first *plotter.Polygon
	at := make(plotter.XYs, len(g.Bars))
	text := make([]string, len(g.Bars))
	for i, b := range g.Bars {
		bar, err := plotter.NewPolygon(rect(b.X-half, b.X+half, 0, float64(b.Value)))
		if err != nil {
			return fmt.Errorf("bar %s/%s: %w", g.Month, b.Category, err)
		}
		bar.Color = g.Color.RGBA(0.8)
		bar.LineStyle.Color = c.EdgeColor.RGBA(1)
		bar.LineStyle.Width = vg.Points(0.5)
		p.Add(bar)
		if first == nil {
			first = bar
		}

		at[i] = plotter.XY{X: b.X, Y: b.LabelY}
		text[i] = b.Label
	}
	p.Legend.Add(g.Month, first)

	values, err := labels(at, text, c.Fonts.BarValue, chart.DarkTextColor, draw.XCenter)
	if err != nil {
		return fmt.Errorf("bar labels %s: %w", g.Month, err)
	}
	for i := range values.TextStyle {
		values.TextStyle[i].YAlign = draw.YBottom
	}
	p.Add(values)
	return nil
}
