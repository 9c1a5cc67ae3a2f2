package png

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/godilite/windrose/internal/chart"
)

// circleSteps is the number of segments of a drawn circle.
const circleSteps = 120

var gridColor = color.Gray{Y: 200}

func cartesian(angle, radius float64) plotter.XY {
	return plotter.XY{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
}

func circle(radius float64) plotter.XYs {
	xys := make(plotter.XYs, circleSteps+1)
	for i := range xys {
		xys[i] = cartesian(2*math.Pi*float64(i)/circleSteps, radius)
	}
	return xys
}

// Radar draws r on a polar grid projected onto a hidden cartesian plane.
func (rn *Renderer) Radar(w io.Writer, r chart.Radar) error {
	p := newPlot(r.Title, r.Fonts)
	p.HideAxes()

	extent := r.RadialLimit * 1.35
	p.X.Min, p.X.Max = -extent, extent
	p.Y.Min, p.Y.Max = -extent, extent

	if err := addRadarGrid(p, r); err != nil {
		return err
	}
	if err := addRadarShape(p, r); err != nil {
		return err
	}

	target, err := plotter.NewLine(circle(r.ReferenceRadius))
	if err != nil {
		return fmt.Errorf("radar target: %w", err)
	}
	target.LineStyle.Color = r.TargetColor.RGBA(0.7)
	target.LineStyle.Width = vg.Points(2)
	target.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
	p.Add(target)

	statsText, err := labels(
		plotter.XYs{{X: -extent, Y: extent * 0.95}},
		[]string{strings.Join(r.StatsLines, "\n")},
		r.Fonts.StatsText, chart.DarkTextColor, draw.XLeft,
	)
	if err != nil {
		return fmt.Errorf("radar stats: %w", err)
	}
	statsText.TextStyle[0].YAlign = draw.YTop
	p.Add(statsText)

	return writePlot(w, p, radarWidth, radarHeight)
}

func addRadarGrid(p *plot.Plot, r chart.Radar) error {
	for _, t := range r.Ticks {
		if t == 0 {
			continue
		}
		ring, err := plotter.NewLine(circle(float64(t)))
		if err != nil {
			return fmt.Errorf("radar grid: %w", err)
		}
		ring.LineStyle.Color = gridColor
		ring.LineStyle.Width = vg.Points(0.5)
		p.Add(ring)
	}

	for _, a := range r.Axes {
		spoke, err := plotter.NewLine(plotter.XYs{{}, cartesian(a.Angle, r.RadialLimit)})
		if err != nil {
			return fmt.Errorf("radar axis %q: %w", a.Label, err)
		}
		spoke.LineStyle.Color = gridColor
		spoke.LineStyle.Width = vg.Points(0.5)
		p.Add(spoke)
	}

	if len(r.Ticks) > 0 {
		xys := make(plotter.XYs, len(r.Ticks))
		text := make([]string, len(r.Ticks))
		for i, t := range r.Ticks {
			xys[i] = plotter.XY{X: 0.1, Y: float64(t)}
			text[i] = fmt.Sprint(t)
		}
		tickLabels, err := labels(xys, text, r.Fonts.TickLabel/2+4, chart.DarkTextColor, draw.XLeft)
		if err != nil {
			return fmt.Errorf("radar ticks: %w", err)
		}
		p.Add(tickLabels)
	}
	return nil
}

func addRadarShape(p *plot.Plot, r chart.Radar) error {
	if len(r.Axes) == 0 {
		return nil
	}

	xys := make(plotter.XYs, len(r.Polygon))
	for i, pt := range r.Polygon {
		xys[i] = cartesian(pt.Angle, pt.Radius)
	}

	fill, err := plotter.NewPolygon(xys)
	if err != nil {
		return fmt.Errorf("radar fill: %w", err)
	}
	fill.Color = r.Color.RGBA(0.25)
	fill.LineStyle.Width = 0
	p.Add(fill)

	outline, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("radar outline: %w", err)
	}
	outline.LineStyle.Color = r.Color.RGBA(1)
	outline.LineStyle.Width = vg.Points(2)
	p.Add(outline)

	vertices, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("radar vertices: %w", err)
	}
	vertices.GlyphStyle.Shape = draw.CircleGlyph{}
	vertices.GlyphStyle.Color = r.Color.RGBA(1)
	vertices.GlyphStyle.Radius = vg.Points(4)
	p.Add(vertices)

	names := make([]string, len(r.Axes))
	at := make(plotter.XYs, len(r.Axes))
	for i, a := range r.Axes {
		names[i] = a.Label
		at[i] = cartesian(a.Angle, r.RadialLimit*1.1)
	}
	axisLabels, err := labels(at, names, r.Fonts.AxisLabel, chart.DarkTextColor, draw.XCenter)
	if err != nil {
		return fmt.Errorf("radar labels: %w", err)
	}
	p.Add(axisLabels)
	return nil
}
