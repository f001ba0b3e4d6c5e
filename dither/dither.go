// Package dither converts rasters to pure black and white (or binary per
// channel) using an ordered 4×4 threshold pattern or error diffusion.
package dither

import "github.com/gogpu/pixelate/raster"

const (
	patternSize = 4

	thresholdMultiplier = 16
	thresholdOffset     = 8
)

// Pattern is the 4×4 ordered-dither rank matrix, indexed [x%4][y%4].
// Ranks 0..15 map to thresholds rank*16+8, i.e. 8..248.
var Pattern = [patternSize][patternSize]uint8{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// Threshold returns the threshold used for pixel (x, y). Coordinates must
// be non-negative.
func Threshold(x, y int) uint8 {
	return Pattern[x%patternSize][y%patternSize]*thresholdMultiplier + thresholdOffset
}

// Dither applies the ordered pattern to every channel of r independently
// and returns a new raster of the same size and format whose values are
// all 0 or 255. RGB input therefore produces colored output; reduce to
// gray first for a black and white halftone.
func Dither(r *raster.Raster) *raster.Raster {
	if r.Empty() {
		return &raster.Raster{}
	}
	out := raster.NewLike(r, r.Format())
	ch := r.Channels()
	w, h := r.Bounds()
	src, dst := r.Pix(), out.Pix()

	for y := range h {
		for x := range w {
			t := Threshold(x, y)
			off := ch * (y*w + x)
			for c := range ch {
				if src[off+c] >= t {
					dst[off+c] = 255
				}
			}
		}
	}
	return out
}
