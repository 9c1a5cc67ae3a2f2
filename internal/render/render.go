// Package render writes chart descriptions out as files of one format.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/godilite/windrose/internal/chart"
	"github.com/godilite/windrose/internal/config"
	"github.com/godilite/windrose/internal/render/html"
	"github.com/godilite/windrose/internal/render/png"
	"github.com/godilite/windrose/internal/render/xlsx"
)

// ErrUnknownFormat is returned for an output format with no renderer.
var ErrUnknownFormat = errors.New("unknown output format")

// Renderer encodes chart descriptions in one file format.
type Renderer interface {
	// Format is the file extension written by the renderer, without the dot.
	Format() string
	Radar(w io.Writer, r chart.Radar) error
	Comparison(w io.Writer, c chart.Comparison) error
	Summary(w io.Writer, s chart.Summary) error
}

// New returns the renderer of format.
func New(format string) (Renderer, error) {
	switch format {
	case config.FormatPNG:
		return png.New(), nil
	case config.FormatHTML:
		return html.New(), nil
	case config.FormatXLSX:
		return xlsx.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// ForFormats returns one renderer per format, in order.
func ForFormats(formats []string) ([]Renderer, error) {
	out := make([]Renderer, 0, len(formats))
	for _, f := range formats {
		r, err := New(f)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
