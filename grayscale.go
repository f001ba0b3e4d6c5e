package pixelate

import (
	"fmt"

	"github.com/gogpu/pixelate/raster"
)

// Grayscale reduces RGB to a single channel with weighted luminance:
// gray = min(round(r*red + g*green + b*blue), 255).
type Grayscale struct {
	red, green, blue float64
}

// NewGrayscale creates a grayscale filter. Each weight must lie in [0, 1]
// and the weights must sum to at most 1.
func NewGrayscale(red, green, blue float64) (*Grayscale, error) {
	for _, w := range []struct {
		name string
		v    float64
	}{{"red", red}, {"green", green}, {"blue", blue}} {
		if !isFinite(w.v) || w.v < 0 || w.v > 1 {
			return nil, fmt.Errorf("%w: %s weight %v not in [0, 1]", ErrInvalidParameter, w.name, w.v)
		}
	}
	if sum := red + green + blue; sum > 1+weightSumTolerance {
		return nil, fmt.Errorf("%w: weights sum to %v, must be <= 1", ErrInvalidParameter, sum)
	}
	return &Grayscale{red: red, green: green, blue: blue}, nil
}

// NewLumaGrayscale returns a grayscale filter with the sRGB luma weights.
func NewLumaGrayscale() *Grayscale {
	return &Grayscale{red: LumaR, green: LumaG, blue: LumaB}
}

// Weights returns the red, green and blue weights.
func (g *Grayscale) Weights() (red, green, blue float64) {
	return g.red, g.green, g.blue
}

func (g *Grayscale) Name() string { return "grayscale" }

func (g *Grayscale) Arity() Arity { return Arity{In: 3, Out: 1} }

func (g *Grayscale) Apply(src *raster.Raster) (*raster.Raster, error) {
	if err := checkInput(g, src); err != nil {
		return nil, err
	}
	return g.reduce(src), nil
}

// reduce converts an RGB raster without validation.
func (g *Grayscale) reduce(src *raster.Raster) *raster.Raster {
	out := raster.NewLike(src, raster.FormatGray8)
	in, dst := src.Pix(), out.Pix()
	for i := range dst {
		p := in[i*3 : i*3+3]
		dst[i] = clamp255(float64(p[0])*g.red + float64(p[1])*g.green + float64(p[2])*g.blue)
	}
	return out
}

// toGray returns src unchanged when it is already single channel and its
// luma reduction otherwise.
func toGray(src *raster.Raster) *raster.Raster {
	if src.Channels() == 1 {
		return src
	}
	return NewLumaGrayscale().reduce(src)
}
