package dither

import (
	"errors"
	"fmt"
	"image/color"
	"sort"

	ditherlib "github.com/makeworld-the-better-one/dither/v2"

	"github.com/gogpu/pixelate/raster"
)

// ErrUnknownMatrix is returned by Diffuse for an unrecognized matrix name.
var ErrUnknownMatrix = errors.New("dither: unknown diffusion matrix")

// DefaultMatrix is the error diffusion matrix used when none is named.
const DefaultMatrix = "floyd-steinberg"

var matrices = map[string]ditherlib.ErrorDiffusionMatrix{
	"floyd-steinberg": ditherlib.FloydSteinberg,
	"atkinson":        ditherlib.Atkinson,
	"jarvis":          ditherlib.JarvisJudiceNinke,
	"stucki":          ditherlib.Stucki,
	"burkes":          ditherlib.Burkes,
	"sierra":          ditherlib.Sierra,
}

var blackWhite = []color.Color{color.Gray{Y: 0}, color.Gray{Y: 255}}

// Matrices returns the names accepted by DiffuseOptions.Matrix, sorted.
func Matrices() []string {
	names := make([]string, 0, len(matrices))
	for name := range matrices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DiffuseOptions configures error diffusion.
type DiffuseOptions struct {
	// Matrix names the diffusion kernel. Empty means DefaultMatrix.
	Matrix string
	// Serpentine alternates scan direction on each row.
	Serpentine bool
}

// Diffuse converts r to a black and white Gray8 raster by error diffusion.
// Unlike Dither the result depends on scan order, so neighbouring outputs
// are correlated. RGB input is reduced to gray by the image/color model.
func Diffuse(r *raster.Raster, opts DiffuseOptions) (*raster.Raster, error) {
	name := opts.Matrix
	if name == "" {
		name = DefaultMatrix
	}
	matrix, ok := matrices[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMatrix, name)
	}
	if r.Empty() {
		return &raster.Raster{}, nil
	}

	d := ditherlib.NewDitherer(blackWhite)
	d.Matrix = matrix
	d.Serpentine = opts.Serpentine

	// Dither returns nil when it modified img in place. ToImage allocates,
	// so r is never touched.
	img := r.ToImage()
	if out := d.Dither(img); out != nil {
		img = out
	}
	return raster.FromImage(img, raster.FormatGray8)
}
