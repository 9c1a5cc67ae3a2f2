package chart

import (
	"image/color"
	"strconv"
	"strings"
)

// Color is a "#rrggbb" colour.
type Color string

// Colours shared by the builders.
const (
	RadarColor     Color = "#2E86AB"
	TargetColor    Color = "#FF0000"
	TrendColor     Color = "#0000FF"
	DarkTextColor  Color = "#000000"
	LightTextColor Color = "#FFFFFF"
	BarEdgeColor   Color = "#000000"
)

// Set2 is the qualitative palette used for month bar groups.
var Set2 = []Color{
	"#66C2A5", "#FC8D62", "#8DA0CB", "#E78AC3",
	"#A6D854", "#FFD92F", "#E5C494", "#B3B3B3",
}

// YlGnBu is the sequential palette of the heatmap, from low to high.
var YlGnBu = []Color{
	"#FFFFD9", "#EDF8B1", "#C7E9B4", "#7FCDBB", "#41B6C4",
	"#1D91C0", "#225EA8", "#253494", "#081D58",
}

// RGBA parses c with the given alpha. Malformed values yield opaque black.
func (c Color) RGBA(alpha float64) color.NRGBA {
	s := strings.TrimPrefix(string(c), "#")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil || len(s) != 6 {
		v = 0
	}
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: uint8(alpha*255 + 0.5),
	}
}

// paletteColor samples palette at index of count evenly spaced positions in
// [0, 1], the way a listed colour map is sampled with linspace(0, 1, count).
func paletteColor(palette []Color, index, count int) Color {
	if len(palette) == 0 {
		return DarkTextColor
	}
	if count <= 1 {
		return palette[0]
	}
	pos := float64(index) / float64(count-1)
	i := int(pos * float64(len(palette)))
	if i >= len(palette) {
		i = len(palette) - 1
	}
	return palette[i]
}

// ScaleColor maps value in [lo, hi] onto the YlGnBu ramp.
func ScaleColor(value, lo, hi float64) Color {
	if hi <= lo {
		return YlGnBu[0]
	}
	pos := (value - lo) / (hi - lo)
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	i := int(pos * float64(len(YlGnBu)-1))
	return YlGnBu[i]
}
