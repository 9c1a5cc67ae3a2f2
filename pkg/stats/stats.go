// Package stats derives the summary figures shown next to rating charts.
package stats

import "math"

// Derived holds the summary of one score vector.
type Derived struct {
	Mean       float64
	Max        int
	Min        int
	Completion float64
	Area       float64
}

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	return float64(Sum(values)) / float64(len(values))
}

// Sum returns the sum of values.
func Sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

// Max returns the largest value, or 0 for an empty slice.
func Max(values []int) int {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Min returns the smallest value, or 0 for an empty slice.
func Min(values []int) int {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Completion returns sum(values) / (len(values) * measure) * 100.
// It is 0 when there is nothing to divide by.
func Completion(values []int, measure int) float64 {
	denom := len(values) * measure
	if denom <= 0 {
		return 0
	}
	return float64(Sum(values)) / float64(denom) * 100
}

// PolygonArea returns the area enclosed by the polar vertices (angles[i], radii[i])
// using the shoelace formula on their cartesian projection. The sequence may be
// open or closed by repeating the first vertex; fewer than three distinct
// vertices enclose no area.
func PolygonArea(angles, radii []float64) float64 {
	n := len(angles)
	if len(radii) < n {
		n = len(radii)
	}
	if n > 1 && angles[0] == angles[n-1] && radii[0] == radii[n-1] {
		n--
	}
	if n < 3 {
		return 0
	}

	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		xi, yi := radii[i]*math.Cos(angles[i]), radii[i]*math.Sin(angles[i])
		xj, yj := radii[j]*math.Cos(angles[j]), radii[j]*math.Sin(angles[j])
		area += xi*yj - xj*yi
	}
	return math.Abs(area) / 2
}

// Derive computes the full summary for values on a [0, measure] scale.
// Angles and radii describe the radar polygon used for the area.
func Derive(values []int, measure int, angles, radii []float64) Derived {
	return Derived{
		Mean:       Mean(values),
		Max:        Max(values),
		Min:        Min(values),
		Completion: Completion(values, measure),
		Area:       PolygonArea(angles, radii),
	}
}

// Rows summarises each row of a matrix; rows are months, columns categories.
type Rows struct {
	Mean []float64
	Min  []float64
	Max  []float64
}

// DeriveRows computes per-row mean, min and max.
func DeriveRows(matrix [][]int) Rows {
	out := Rows{
		Mean: make([]float64, len(matrix)),
		Min:  make([]float64, len(matrix)),
		Max:  make([]float64, len(matrix)),
	}
	for i, row := range matrix {
		out.Mean[i] = Mean(row)
		out.Min[i] = float64(Min(row))
		out.Max[i] = float64(Max(row))
	}
	return out
}
