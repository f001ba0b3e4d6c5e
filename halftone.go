package pixelate

import (
	"github.com/gogpu/pixelate/dither"
	"github.com/gogpu/pixelate/raster"
)

// Halftone produces a black and white ordered-dither image. RGB input is
// first reduced with the sRGB luma weights, so the output is always a
// single channel with values 0 or 255.
type Halftone struct{}

// NewHalftone returns the halftone filter.
func NewHalftone() *Halftone { return &Halftone{} }

func (*Halftone) Name() string { return "halftone" }

func (*Halftone) Arity() Arity { return Arity{In: AnyChannels, Out: 1} }

func (h *Halftone) Apply(src *raster.Raster) (*raster.Raster, error) {
	if err := checkInput(h, src); err != nil {
		return nil, err
	}
	return dither.Dither(toGray(src)), nil
}

// Dither thresholds each channel independently against the ordered
// pattern. RGB input keeps three channels and may come out colored.
type Dither struct{}

// NewDither returns the per-channel ordered dither filter.
func NewDither() *Dither { return &Dither{} }

func (*Dither) Name() string { return "dither" }

func (*Dither) Arity() Arity { return Arity{In: AnyChannels, Out: AnyChannels} }

func (d *Dither) Apply(src *raster.Raster) (*raster.Raster, error) {
	if err := checkInput(d, src); err != nil {
		return nil, err
	}
	return dither.Dither(src), nil
}

// Diffuse produces a black and white image by error diffusion. RGB input
// is reduced with the sRGB luma weights first.
type Diffuse struct {
	opts dither.DiffuseOptions
}

// NewDiffuse creates an error diffusion filter. matrix must be one of
// dither.Matrices(); empty selects dither.DefaultMatrix.
func NewDiffuse(matrix string, serpentine bool) (*Diffuse, error) {
	if matrix == "" {
		matrix = dither.DefaultMatrix
	}
	if !knownMatrix(matrix) {
		return nil, invalidParam("matrix %q not one of %v", matrix, dither.Matrices())
	}
	return &Diffuse{opts: dither.DiffuseOptions{Matrix: matrix, Serpentine: serpentine}}, nil
}

func knownMatrix(name string) bool {
	for _, m := range dither.Matrices() {
		if m == name {
			return true
		}
	}
	return false
}

func (*Diffuse) Name() string { return "diffuse" }

func (*Diffuse) Arity() Arity { return Arity{In: AnyChannels, Out: 1} }

func (d *Diffuse) Apply(src *raster.Raster) (*raster.Raster, error) {
	if err := checkInput(d, src); err != nil {
		return nil, err
	}
	return dither.Diffuse(toGray(src), d.opts)
}
