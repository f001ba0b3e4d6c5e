package pixelate

import "math"

// sRGB luminance weights used for RGB to gray conversion.
const (
	LumaR = 0.2126
	LumaG = 0.7152
	LumaB = 0.0722
)

// weightSumTolerance absorbs rounding in weight sums such as
// LumaR+LumaG+LumaB.
const weightSumTolerance = 1e-9

// clamp255 rounds v and saturates it to the byte range.
func clamp255(v float64) uint8 {
	v = math.Round(v)
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// isFinite reports whether v is neither NaN nor infinite.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
