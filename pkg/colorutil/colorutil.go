// Package colorutil provides shared color utilities for the garment render pipelines.
package colorutil

import (
	"image/color"
	"math"
)

// Common pipeline colors.
var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	// GridGray is the light gray used for technical-flat grid lines.
	GridGray = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// Luma601 converts RGB (0-255) to luminance using the ITU-R BT.601 weights.
func Luma601(r, g, b float64) float64 {
	return 0.299*r + 0.587*g + 0.114*b
}

// Clamp8 clamps v to the [0, 255] range and converts to a byte.
func Clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Clamp8i clamps an integer to the [0, 255] range and converts to a byte.
func Clamp8i(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Round8 rounds v to the nearest integer and clamps to [0, 255].
func Round8(v float64) uint8 {
	return Clamp8(math.Round(v))
}
