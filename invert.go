package pixelate

import "github.com/gogpu/pixelate/raster"

// Invert replaces every RGB channel value v with 255-v.
type Invert struct{}

// NewInvert returns the inversion filter.
func NewInvert() *Invert { return &Invert{} }

func (*Invert) Name() string { return "invert" }

func (*Invert) Arity() Arity { return Arity{In: 3, Out: 3} }

func (i *Invert) Apply(src *raster.Raster) (*raster.Raster, error) {
	if err := checkInput(i, src); err != nil {
		return nil, err
	}
	return mapPixels(src, func(v uint8) uint8 { return 255 - v }), nil
}
