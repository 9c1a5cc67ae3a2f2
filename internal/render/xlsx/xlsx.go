// Package xlsx exports chart descriptions as Excel workbooks with native charts.
package xlsx

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/godilite/windrose/internal/chart"
	"github.com/godilite/windrose/internal/config"
)

const (
	radarSheet      = "Radar"
	comparisonSheet = "Comparison"
	heatmapSheet    = "Heatmap"
	trendSheet      = "Trend"
)

// Renderer writes workbooks.
type Renderer struct{}

// New returns an XLSX renderer.
func New() *Renderer {
	return &Renderer{}
}

// Format returns "xlsx".
func (rn *Renderer) Format() string {
	return config.FormatXLSX
}

// workbook wraps an excelize file whose first sheet is renamed to sheet.
func workbook(sheet string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	return f, nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// ref returns an absolute range reference such as Radar!$A$2:$A$5.
func ref(sheet string, col, fromRow, toRow int) string {
	c, _ := excelize.ColumnNumberToName(col)
	return fmt.Sprintf("%s!$%s$%d:$%s$%d", sheet, c, fromRow, c, toRow)
}

func setTitle(f *excelize.File, sheet, title string, size int) error {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: float64(size)}})
	if err != nil {
		return fmt.Errorf("title style: %w", err)
	}
	if err := f.SetCellValue(sheet, "A1", strings.ReplaceAll(title, "\n", " ")); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", "A1", style)
}

func chartTitle(title string) []excelize.RichTextRun {
	return []excelize.RichTextRun{{Text: strings.ReplaceAll(title, "\n", " ")}}
}

func save(f *excelize.File, w io.Writer) error {
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// Radar writes the month's scores, its statistics and a radar chart.
func (rn *Renderer) Radar(w io.Writer, r chart.Radar) error {
	f, err := workbook(radarSheet)
	if err != nil {
		return err
	}
	if err := writeRadar(f, r); err != nil {
		f.Close()
		return err
	}
	return save(f, w)
}

func writeRadar(f *excelize.File, r chart.Radar) error {
	if err := setTitle(f, radarSheet, r.Title, r.Fonts.Title); err != nil {
		return err
	}
	if err := f.SetSheetRow(radarSheet, "A2", &[]interface{}{"Category", "Score", "Target"}); err != nil {
		return err
	}

	n := len(r.Axes)
	for i, a := range r.Axes {
		row := []interface{}{a.Label, int(r.Polygon[i].Radius), r.Measure}
		if err := f.SetSheetRow(radarSheet, cell(1, i+3), &row); err != nil {
			return err
		}
	}

	for i, line := range r.StatsLines {
		if err := f.SetCellValue(radarSheet, cell(5, i+2), line); err != nil {
			return err
		}
	}
	if err := f.SetCellValue(radarSheet, cell(5, len(r.StatsLines)+2), fmt.Sprintf("Area: %.2f", r.Stats.Area)); err != nil {
		return err
	}

	if n == 0 {
		return nil
	}
	return f.AddChart(radarSheet, "G2", &excelize.Chart{
		Type: excelize.Radar,
		Series: []excelize.ChartSeries{
			{Name: ref(radarSheet, 2, 2, 2), Categories: ref(radarSheet, 1, 3, n+2), Values: ref(radarSheet, 2, 3, n+2)},
			{Name: ref(radarSheet, 3, 2, 2), Categories: ref(radarSheet, 1, 3, n+2), Values: ref(radarSheet, 3, 3, n+2)},
		},
		Title:     chartTitle(r.Title),
		Dimension: excelize.ChartDimension{Width: 12 * 72, Height: 10 * 72},
	})
}

// Comparison writes a category x month table, the target column and a
// clustered column chart.
func (rn *Renderer) Comparison(w io.Writer, c chart.Comparison) error {
	f, err := workbook(comparisonSheet)
	if err != nil {
		return err
	}
	if err := writeComparison(f, c); err != nil {
		f.Close()
		return err
	}
	return save(f, w)
}

func writeComparison(f *excelize.File, c chart.Comparison) error {
	if err := setTitle(f, comparisonSheet, c.Title, c.Fonts.Title); err != nil {
		return err
	}

	header := []interface{}{"Category"}
	for _, g := range c.Groups {
		header = append(header, g.Month)
	}
	header = append(header, "Target")
	if err := f.SetSheetRow(comparisonSheet, "A2", &header); err != nil {
		return err
	}

	n := len(c.Categories)
	for i, category := range c.Categories {
		row := []interface{}{category}
		for _, g := range c.Groups {
			row = append(row, g.Bars[i].Value)
		}
		row = append(row, c.Reference)
		if err := f.SetSheetRow(comparisonSheet, cell(1, i+3), &row); err != nil {
			return err
		}
	}

	if n == 0 || len(c.Groups) == 0 {
		return nil
	}

	series := make([]excelize.ChartSeries, len(c.Groups))
	for j := range c.Groups {
		series[j] = excelize.ChartSeries{
			Name:       ref(comparisonSheet, j+2, 2, 2),
			Categories: ref(comparisonSheet, 1, 3, n+2),
			Values:     ref(comparisonSheet, j+2, 3, n+2),
		}
	}
	targetCol := len(c.Groups) + 2
	target := &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{{
			Name:       ref(comparisonSheet, targetCol, 2, 2),
			Categories: ref(comparisonSheet, 1, 3, n+2),
			Values:     ref(comparisonSheet, targetCol, 3, n+2),
		}},
	}

	return f.AddChart(comparisonSheet, cell(targetCol+2, 2), &excelize.Chart{
		Type:      excelize.Col,
		Series:    series,
		Title:     chartTitle(c.Title),
		Dimension: excelize.ChartDimension{Width: 14 * 72, Height: 8 * 72},
	}, target)
}

// Summary writes the heatmap matrix with filled cells and the trend table
// with a line chart, one sheet each.
func (rn *Renderer) Summary(w io.Writer, s chart.Summary) error {
	f, err := workbook(heatmapSheet)
	if err != nil {
		return err
	}
	if err := writeHeatmap(f, s); err != nil {
		f.Close()
		return err
	}
	if err := writeTrend(f, s); err != nil {
		f.Close()
		return err
	}
	return save(f, w)
}

func writeHeatmap(f *excelize.File, s chart.Summary) error {
	h := s.Heatmap
	if err := setTitle(f, heatmapSheet, h.Title, s.Fonts.Title); err != nil {
		return err
	}

	header := []interface{}{"Month"}
	for _, c := range h.Categories {
		header = append(header, c)
	}
	if err := f.SetSheetRow(heatmapSheet, "A2", &header); err != nil {
		return err
	}

	for i, m := range h.Months {
		row := []interface{}{m}
		for _, v := range h.Values[i] {
			row = append(row, v)
		}
		if err := f.SetSheetRow(heatmapSheet, cell(1, i+3), &row); err != nil {
			return err
		}
	}

	return fillCells(f, h.Cells)
}

// fillCells paints every heatmap cell with its scale colour and label colour.
// Cells sharing colours share one style.
func fillCells(f *excelize.File, cells []chart.Cell) error {
	styles := map[[2]chart.Color]int{}
	for _, c := range cells {
		key := [2]chart.Color{c.Fill, c.TextColor}
		id, ok := styles[key]
		if !ok {
			var err error
			id, err = f.NewStyle(&excelize.Style{
				Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{string(c.Fill)}},
				Font:      &excelize.Font{Color: string(c.TextColor)},
				Alignment: &excelize.Alignment{Horizontal: "center"},
			})
			if err != nil {
				return fmt.Errorf("heatmap style: %w", err)
			}
			styles[key] = id
		}
		at := cell(c.Category+2, c.Month+3)
		if err := f.SetCellStyle(heatmapSheet, at, at, id); err != nil {
			return err
		}
	}
	return nil
}

func writeTrend(f *excelize.File, s chart.Summary) error {
	t := s.Trend
	if _, err := f.NewSheet(trendSheet); err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}
	if err := setTitle(f, trendSheet, t.Title, s.Fonts.Title); err != nil {
		return err
	}
	if err := f.SetSheetRow(trendSheet, "A2", &[]interface{}{t.XLabel, "Mean", "Min", "Max"}); err != nil {
		return err
	}

	n := len(t.Months)
	for i, m := range t.Months {
		row := []interface{}{m, t.Mean[i], t.Min[i], t.Max[i]}
		if err := f.SetSheetRow(trendSheet, cell(1, i+3), &row); err != nil {
			return err
		}
	}

	if n == 0 {
		return nil
	}
	series := make([]excelize.ChartSeries, 3)
	for j := range series {
		series[j] = excelize.ChartSeries{
			Name:       ref(trendSheet, j+2, 2, 2),
			Categories: ref(trendSheet, 1, 3, n+2),
			Values:     ref(trendSheet, j+2, 3, n+2),
		}
	}
	return f.AddChart(trendSheet, "F2", &excelize.Chart{
		Type:      excelize.Line,
		Series:    series,
		Title:     chartTitle(t.Title),
		Dimension: excelize.ChartDimension{Width: 16 * 72, Height: 6 * 72},
	})
}
