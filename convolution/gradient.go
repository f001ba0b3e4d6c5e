package convolution

import (
	"fmt"
	"math"

	"github.com/gogpu/pixelate/raster"
)

// GradientToIntensity maps a gradient field to a gray raster.
//
// The magnitude sqrt(gx²+gy²) of every pixel is computed first together
// with the global maximum. Magnitudes are then scaled by 255/max and by
// intensity (negative values count as 0), rounded and clamped to [0,255].
// A field with no gradient at all produces a black raster, and an empty
// field (as Convolve returns for an empty raster) an empty one.
func GradientToIntensity(gx, gy []float64, width, height int, intensity float64) (*raster.Raster, error) {
	if len(gx) != len(gy) {
		return nil, fmt.Errorf("%w: gx has %d values, gy has %d", ErrLengthMismatch, len(gx), len(gy))
	}
	if len(gx) != width*height {
		return nil, fmt.Errorf("%w: %d values for %dx%d", ErrLengthMismatch, len(gx), width, height)
	}

	if len(gx) == 0 {
		return &raster.Raster{}, nil
	}

	out, err := raster.New(width, height, raster.FormatGray8)
	if err != nil {
		return nil, err
	}

	mag := make([]float64, len(gx))
	var maxMag float64
	for i := range gx {
		m := math.Sqrt(gx[i]*gx[i] + gy[i]*gy[i])
		mag[i] = m
		if m > maxMag {
			maxMag = m
		}
	}

	var scale float64
	if maxMag > 0 {
		scale = 255 / maxMag
	}
	scale *= math.Max(intensity, 0)

	pix := out.Pix()
	for i, m := range mag {
		pix[i] = clampByte(math.Round(m * scale))
	}
	return out, nil
}

// clampByte converts v to a byte, saturating at 0 and 255.
func clampByte(v float64) uint8 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
