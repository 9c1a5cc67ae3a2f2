// Package png draws chart descriptions as PNG images with gonum/plot.
package png

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/godilite/windrose/internal/chart"
	"github.com/godilite/windrose/internal/config"
)

// Figure sizes in inches.
const (
	radarWidth       = 12
	radarHeight      = 10
	comparisonWidth  = 14
	comparisonHeight = 8
	summaryWidth     = 16
	summaryHeight    = 12
)

// Renderer writes PNG images.
type Renderer struct{}

// New returns a PNG renderer.
func New() *Renderer {
	return &Renderer{}
}

// Format returns "png".
func (rn *Renderer) Format() string {
	return config.FormatPNG
}

func points(size int) vg.Length {
	return vg.Points(float64(size))
}

func newPlot(title string, fonts config.FontSizes) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = points(fonts.Title)
	p.X.Label.TextStyle.Font.Size = points(fonts.AxisLabel)
	p.Y.Label.TextStyle.Font.Size = points(fonts.AxisLabel)
	p.X.Tick.Label.Font.Size = points(fonts.TickLabel)
	p.Y.Tick.Label.Font.Size = points(fonts.TickLabel)
	p.Legend.TextStyle.Font.Size = points(fonts.AxisLabel)
	return p
}

// namedTicks places one labelled tick at each position.
func namedTicks(names []string, positions func(i int) float64) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(names))
	for i, n := range names {
		ticks[i] = plot.Tick{Value: positions(i), Label: n}
	}
	return ticks
}

// integerTicks labels every integer in [0, max].
func integerTicks(max int) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, 0, max+1)
	for v := 0; v <= max; v++ {
		ticks = append(ticks, plot.Tick{Value: float64(v), Label: fmt.Sprint(v)})
	}
	return ticks
}

// labels builds a text plotter where every label shares one style.
func labels(xys plotter.XYs, text []string, size int, c chart.Color, xAlign draw.XAlignment) (*plotter.Labels, error) {
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: text})
	if err != nil {
		return nil, err
	}
	for i := range l.TextStyle {
		l.TextStyle[i].Font.Size = points(size)
		l.TextStyle[i].Color = c.RGBA(1)
		l.TextStyle[i].XAlign = xAlign
		l.TextStyle[i].YAlign = draw.YCenter
	}
	return l, nil
}

func writePlot(w io.Writer, p *plot.Plot, width, height float64) error {
	wt, err := p.WriterTo(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, config.FormatPNG)
	if err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}
