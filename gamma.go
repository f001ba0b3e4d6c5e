package pixelate

import (
	"fmt"
	"math"

	"github.com/gogpu/pixelate/raster"
)

// Gamma applies out = round(255 * (v/255)^(1/Gamma)) to each RGB channel.
type Gamma struct {
	gamma float64
	lut   [256]uint8
}

// NewGamma creates a gamma filter. gamma must be positive and finite.
// The curve is precomputed into a 256-entry lookup table.
func NewGamma(gamma float64) (*Gamma, error) {
	if !isFinite(gamma) || gamma <= 0 {
		return nil, fmt.Errorf("%w: gamma %v must be > 0", ErrInvalidParameter, gamma)
	}
	g := &Gamma{gamma: gamma}
	inv := 1 / gamma
	for i := range g.lut {
		g.lut[i] = clamp255(255 * math.Pow(float64(i)/255, inv))
	}
	return g, nil
}

// Value returns the gamma parameter.
func (g *Gamma) Value() float64 { return g.gamma }

func (g *Gamma) Name() string { return "gamma" }

func (g *Gamma) Arity() Arity { return Arity{In: 3, Out: 3} }

func (g *Gamma) Apply(src *raster.Raster) (*raster.Raster, error) {
	if err := checkInput(g, src); err != nil {
		return nil, err
	}
	return mapPixels(src, func(v uint8) uint8 { return g.lut[v] }), nil
}
