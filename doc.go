// Package pixelate provides composable image filters for Go.
//
// # Overview
//
// pixelate turns 8-bit gray and RGB rasters into new rasters through small,
// immutable filters: luminance reduction, gamma curves, inversion, ordered
// and error-diffusion dithering, and gradient edge detection. Filters share
// one interface and compose into pipelines.
//
// # Quick Start
//
//	import "github.com/gogpu/pixelate"
//
//	src, err := raster.Load("photo.jpg")
//	if err != nil {
//		return err
//	}
//
//	edge, _ := pixelate.NewEdgeDetect(1.5)
//	p, _ := pixelate.Compose(pixelate.NewLumaGrayscale(), edge)
//	out, err := p.Apply(src)
//	if err != nil {
//		return err
//	}
//	raster.Save("edges.png", out)
//
// Pipelines can also be parsed from text:
//
//	f, err := pixelate.ParseChain("invert,halftone")
//
// # Arity
//
// Every filter declares the channel counts it consumes and produces. Compose
// rejects pairs whose counts cannot match with ErrArityMismatch; filters
// that accept either gray or RGB input (AnyChannels) are checked when the
// pipeline runs.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Filter, Pipeline, the concrete filters and the registry
//   - raster: pixel storage and image file codecs
//   - convolution: 2D convolution and gradient-to-intensity mapping
//   - dither: ordered 4×4 and error diffusion dithering
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down.
//
// # Performance
//
// Filters allocate one output raster per call. Edge detection can spread
// each convolution pass over several goroutines with WithEdgeWorkers.
package pixelate

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
