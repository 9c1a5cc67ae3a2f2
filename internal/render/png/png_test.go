package png_test

import (
	"bytes"
	stdpng "image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godilite/windrose/internal/chart"
	"github.com/godilite/windrose/internal/config"
	"github.com/godilite/windrose/internal/dataset"
	"github.com/godilite/windrose/internal/render/png"
)

func months() []dataset.Month {
	return []dataset.Month{
		{Name: "January", Scores: dataset.Scores{{Category: "Health", Value: 7}, {Category: "Career", Value: 5}, {Category: "Sleep", Value: 9}}},
		{Name: "February", Scores: dataset.Scores{{Category: "Health", Value: 4}, {Category: "Career", Value: 8}}},
	}
}

func decode(t *testing.T, buf *bytes.Buffer) (int, int) {
	t.Helper()
	img, err := stdpng.Decode(buf)
	require.NoError(t, err)
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestRenderer(t *testing.T) {
	cfg := config.DefaultConfig()
	r := png.New()
	assert.Equal(t, "png", r.Format())

	t.Run("radar", func(t *testing.T) {
		m := months()[0]
		var buf bytes.Buffer
		require.NoError(t, r.Radar(&buf, chart.BuildRadar(m.Name, m.Scores, cfg.Year, cfg)))

		w, h := decode(t, &buf)
		assert.Greater(t, w, h)
	})

	t.Run("radar with one category", func(t *testing.T) {
		var buf bytes.Buffer
		scores := dataset.Scores{{Category: "Solo", Value: 3}}
		require.NoError(t, r.Radar(&buf, chart.BuildRadar("March", scores, 0, cfg)))
		decode(t, &buf)
	})

	t.Run("comparison", func(t *testing.T) {
		c, err := chart.BuildComparison(months(), cfg.Year, cfg)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, r.Comparison(&buf, c))
		w, h := decode(t, &buf)
		assert.Greater(t, w, h)
	})

	t.Run("summary", func(t *testing.T) {
		s, err := chart.BuildSummary(months(), cfg.Year, cfg)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, r.Summary(&buf, s))
		w, h := decode(t, &buf)
		assert.Greater(t, w, h)
	})

	t.Run("summary of one month", func(t *testing.T) {
		s, err := chart.BuildSummary(months()[:1], cfg.Year, cfg)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, r.Summary(&buf, s))
		decode(t, &buf)
	})
}
