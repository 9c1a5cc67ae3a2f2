package stats_test

import (
	"math"
	"testing"

	"github.com/godilite/windrose/pkg/stats"
	"github.com/stretchr/testify/assert"
)

func radarAngles(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 2 * math.Pi * float64(i) / float64(n)
	}
	return out
}

func toFloats(values []int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

func TestBasicStats(t *testing.T) {
	values := []int{7, 5, 8, 2}

	assert.Equal(t, 5.5, stats.Mean(values))
	assert.Equal(t, 8, stats.Max(values))
	assert.Equal(t, 2, stats.Min(values))
	assert.Equal(t, 22, stats.Sum(values))

	assert.Equal(t, 0.0, stats.Mean(nil))
	assert.Equal(t, 0, stats.Max(nil))
	assert.Equal(t, 0, stats.Min(nil))
}

func TestCompletion(t *testing.T) {
	cases := []struct {
		name     string
		values   []int
		measure  int
		expected float64
	}{
		{name: "half", values: []int{5, 5}, measure: 10, expected: 50},
		{name: "full", values: []int{10, 10, 10}, measure: 10, expected: 100},
		{name: "zero", values: []int{0, 0}, measure: 10, expected: 0},
		{name: "single category", values: []int{3}, measure: 4, expected: 75},
		{name: "no values", values: nil, measure: 10, expected: 0},
		{name: "zero measure", values: []int{1}, measure: 0, expected: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, stats.Completion(tc.values, tc.measure), 1e-9)
		})
	}
}

func TestCompletionBounded(t *testing.T) {
	const measure = 10
	for a := 0; a <= measure; a++ {
		for b := 0; b <= measure; b++ {
			c := stats.Completion([]int{a, b}, measure)
			assert.GreaterOrEqual(t, c, 0.0)
			assert.LessOrEqual(t, c, 100.0)
			assert.InDelta(t, 100*float64(a+b)/float64(2*measure), c, 1e-9)
		}
	}
}

func TestPolygonArea(t *testing.T) {
	t.Run("unit square as four radar axes", func(t *testing.T) {
		// Radius 1 on four axes is a square with diagonal 2.
		area := stats.PolygonArea(radarAngles(4), []float64{1, 1, 1, 1})
		assert.InDelta(t, 2.0, area, 1e-9)
	})

	t.Run("degenerate shapes", func(t *testing.T) {
		assert.Equal(t, 0.0, stats.PolygonArea(radarAngles(1), []float64{7}))
		assert.Equal(t, 0.0, stats.PolygonArea(radarAngles(2), []float64{7, 3}))
		assert.Equal(t, 0.0, stats.PolygonArea(nil, nil))
	})

	t.Run("closed and open sequences agree", func(t *testing.T) {
		angles := radarAngles(5)
		radii := []float64{7, 5, 8, 2, 9}
		open := stats.PolygonArea(angles, radii)
		closed := stats.PolygonArea(append(angles, angles[0]), append(radii, radii[0]))
		assert.InDelta(t, open, closed, 1e-9)
	})

	t.Run("closing vertex does not matter", func(t *testing.T) {
		angles := radarAngles(6)
		radii := toFloats([]int{3, 9, 4, 6, 1, 8})
		want := stats.PolygonArea(angles, radii)

		for shift := 1; shift < len(angles); shift++ {
			a := append(append([]float64{}, angles[shift:]...), angles[:shift]...)
			r := append(append([]float64{}, radii[shift:]...), radii[:shift]...)
			a = append(a, a[0])
			r = append(r, r[0])
			assert.InDelta(t, want, stats.PolygonArea(a, r), 1e-9, "shift %d", shift)
		}
	})
}

func TestDerive(t *testing.T) {
	values := []int{5, 5}
	d := stats.Derive(values, 10, radarAngles(2), toFloats(values))

	assert.Equal(t, 5.0, d.Mean)
	assert.Equal(t, 5, d.Max)
	assert.Equal(t, 5, d.Min)
	assert.Equal(t, 50.0, d.Completion)
	assert.Equal(t, 0.0, d.Area)
}

func TestDeriveRows(t *testing.T) {
	rows := stats.DeriveRows([][]int{{1, 2, 3}, {10, 0, 5}})

	assert.Equal(t, []float64{2, 5}, rows.Mean)
	assert.Equal(t, []float64{1, 0}, rows.Min)
	assert.Equal(t, []float64{3, 10}, rows.Max)
}
