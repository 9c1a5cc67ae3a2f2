package png

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/godilite/windrose/internal/chart"
)

// heatGrid exposes a months x categories matrix as a plotter.GridXYZ with
// categories along X and the first month at the top.
type heatGrid struct {
	values [][]int
	cols   int
	lo, hi float64
}

func (g heatGrid) Dims() (c, r int) { return g.cols, len(g.values) }

func (g heatGrid) X(c int) float64 { return float64(c) }

func (g heatGrid) Y(r int) float64 { return float64(r) }

func (g heatGrid) Z(c, r int) float64 {
	v := float64(g.values[len(g.values)-1-r][c])
	if v < g.lo {
		return g.lo
	}
	if v > g.hi {
		return g.hi
	}
	return v
}

// ramp is a palette.Palette over chart colours.
type ramp []color.Color

func (p ramp) Colors() []color.Color { return p }

func newRamp(colors []chart.Color) ramp {
	out := make(ramp, len(colors))
	for i, c := range colors {
		out[i] = c.RGBA(1)
	}
	return out
}

// Summary draws the heatmap above the trend panel on one canvas.
func (rn *Renderer) Summary(w io.Writer, s chart.Summary) error {
	heat, err := heatmapPlot(s)
	if err != nil {
		return err
	}
	trend, err := trendPlot(s)
	if err != nil {
		return err
	}

	img := vgimg.New(vg.Length(summaryWidth)*vg.Inch, vg.Length(summaryHeight)*vg.Inch)
	dc := draw.New(img)
	plots := [][]*plot.Plot{{heat}, {trend}}
	tiles := draw.Tiles{Rows: 2, Cols: 1, PadY: vg.Points(24), PadX: vg.Points(12), PadTop: vg.Points(12), PadBottom: vg.Points(12)}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	out := vgimg.PngCanvas{Canvas: img}
	if _, err := out.WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

func heatmapPlot(s chart.Summary) (*plot.Plot, error) {
	h := s.Heatmap
	p := newPlot(h.Title, s.Fonts)
	p.X.Label.Text = "Categories"
	p.Y.Label.Text = "Months"

	rows := len(h.Months)
	p.X.Tick.Marker = namedTicks(h.Categories, func(i int) float64 { return float64(i) })
	p.Y.Tick.Marker = namedTicks(h.Months, func(i int) float64 { return float64(rows - 1 - i) })

	if rows == 0 || len(h.Categories) == 0 {
		return p, nil
	}

	grid := heatGrid{values: h.Values, cols: len(h.Categories), lo: h.ScaleMin, hi: h.ScaleMax}
	hm := plotter.NewHeatMap(grid, newRamp(h.Palette))
	hm.Min, hm.Max = h.ScaleMin, h.ScaleMax
	p.Add(hm)

	for _, cell := range h.Cells {
		l, err := labels(
			plotter.XYs{{X: float64(cell.Category), Y: float64(rows - 1 - cell.Month)}},
			[]string{cell.Label},
			s.Fonts.StatsText, cell.TextColor, draw.XCenter,
		)
		if err != nil {
			return nil, fmt.Errorf("heatmap label: %w", err)
		}
		p.Add(l)
	}
	return p, nil
}

func trendPlot(s chart.Summary) (*plot.Plot, error) {
	t := s.Trend
	p := newPlot(t.Title, s.Fonts)
	p.X.Label.Text = t.XLabel
	p.Y.Label.Text = t.YLabel
	p.Y.Min, p.Y.Max = t.YMin, t.YMax
	p.X.Tick.Marker = namedTicks(t.Months, func(i int) float64 { return float64(i) })
	p.Y.Tick.Marker = integerTicks(int(t.YMax))
	p.Add(plotter.NewGrid())

	n := len(t.Months)
	if n == 0 {
		return p, nil
	}
	p.X.Min, p.X.Max = -0.5, float64(n)-0.5

	band := make(plotter.XYs, 0, 2*n)
	for i := 0; i < n; i++ {
		band = append(band, plotter.XY{X: float64(i), Y: t.Min[i]})
	}
	for i := n - 1; i >= 0; i-- {
		band = append(band, plotter.XY{X: float64(i), Y: t.Max[i]})
	}
	area, err := plotter.NewPolygon(band)
	if err != nil {
		return nil, fmt.Errorf("trend band: %w", err)
	}
	area.Color = t.Color.RGBA(0.2)
	area.LineStyle.Width = 0
	p.Add(area)
	p.Legend.Add("Min-Max", area)

	mean := make(plotter.XYs, n)
	for i, v := range t.Mean {
		mean[i] = plotter.XY{X: float64(i), Y: v}
	}
	line, marks, err := plotter.NewLinePoints(mean)
	if err != nil {
		return nil, fmt.Errorf("trend mean: %w", err)
	}
	line.LineStyle.Color = t.Color.RGBA(1)
	line.LineStyle.Width = vg.Points(2)
	marks.GlyphStyle.Shape = draw.CircleGlyph{}
	marks.GlyphStyle.Color = t.Color.RGBA(1)
	marks.GlyphStyle.Radius = vg.Points(4)
	p.Add(line, marks)
	p.Legend.Add("Mean", line, marks)
	p.Legend.Top = true

	return p, nil
}
