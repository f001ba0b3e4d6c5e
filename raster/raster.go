// Package raster provides the 8-bit pixel buffer shared by every pixelate
// filter, together with decoding and encoding to common image containers.
//
// A Raster is a width×height grid with one (gray) or three (RGB) channels
// stored in a flat byte slice. Pixel (x, y) channel c lives at
//
//	channels*(y*width+x) + c
//
// Filters treat their input as read-only and always return a freshly
// allocated Raster.
package raster

import (
	"errors"
	"fmt"
)

// Common errors for raster operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("raster: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("raster: invalid format")

	// ErrDataTooSmall is returned when provided data does not match the
	// dimensions and format.
	ErrDataTooSmall = errors.New("raster: data buffer size mismatch")

	// ErrChannelMismatch is returned when an operation receives a raster
	// with a channel count it cannot handle.
	ErrChannelMismatch = errors.New("raster: channel count mismatch")

	// ErrOutOfBounds is returned when pixel coordinates are outside the raster.
	ErrOutOfBounds = errors.New("raster: coordinates out of bounds")
)

// Raster is an 8-bit-per-channel pixel grid.
//
// The zero value is an empty 0×0 raster. Engines accept it and produce
// empty results; constructors never return one.
//
// Thread safety: Raster is safe for concurrent read access. Set and writes
// through Pix or Row require external synchronization.
type Raster struct {
	pix    []uint8
	width  int
	height int
	format Format
}

// New creates a zeroed raster with the given dimensions and format.
func New(width, height int, format Format) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	return &Raster{
		pix:    make([]uint8, format.ImageBytes(width, height)),
		width:  width,
		height: height,
		format: format,
	}, nil
}

// MustNew is like New but panics on error. Intended for tests and constant
// inputs.
func MustNew(width, height int, format Format) *Raster {
	r, err := New(width, height, format)
	if err != nil {
		panic(err)
	}
	return r
}

// FromPix wraps existing pixel data without copying.
// len(pix) must equal width*height*format.Channels().
func FromPix(pix []uint8, width, height int, format Format) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if want := format.ImageBytes(width, height); len(pix) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrDataTooSmall, len(pix), want)
	}
	return &Raster{pix: pix, width: width, height: height, format: format}, nil
}

// FromFunc builds a raster by calling fn for every pixel. fn must return
// exactly format.Channels() values; extra values are ignored and missing
// ones read as zero.
func FromFunc(width, height int, format Format, fn func(x, y int) []uint8) (*Raster, error) {
	r, err := New(width, height, format)
	if err != nil {
		return nil, err
	}
	ch := format.Channels()
	for y := range height {
		for x := range width {
			copy(r.pix[r.Offset(x, y):r.Offset(x, y)+ch], fn(x, y))
		}
	}
	return r, nil
}

// NewLike allocates a zeroed raster with the same dimensions as r and the
// given format.
func NewLike(r *Raster, format Format) *Raster {
	return &Raster{
		pix:    make([]uint8, format.ImageBytes(r.width, r.height)),
		width:  r.width,
		height: r.height,
		format: format,
	}
}

// Clone creates a deep copy of the raster.
func (r *Raster) Clone() *Raster {
	pix := make([]uint8, len(r.pix))
	copy(pix, r.pix)
	return &Raster{pix: pix, width: r.width, height: r.height, format: r.format}
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int {
	return r.width
}

// Height returns the raster height in pixels.
func (r *Raster) Height() int {
	return r.height
}

// Format returns the pixel format.
func (r *Raster) Format() Format {
	return r.format
}

// Channels returns the number of channels per pixel.
func (r *Raster) Channels() int {
	return r.format.Channels()
}

// Bounds returns the raster dimensions as (width, height).
func (r *Raster) Bounds() (int, int) {
	return r.width, r.height
}

// Pix returns the raw pixel data slice.
func (r *Raster) Pix() []uint8 {
	return r.pix
}

// Empty reports whether the raster has no pixels.
func (r *Raster) Empty() bool {
	return r == nil || r.width == 0 || r.height == 0
}

// Row returns the pixel data for row y, or nil if y is out of bounds.
func (r *Raster) Row(y int) []uint8 {
	if y < 0 || y >= r.height {
		return nil
	}
	stride := r.format.RowBytes(r.width)
	return r.pix[y*stride : (y+1)*stride]
}

// Offset returns the index of channel 0 of pixel (x, y) in Pix.
// Returns -1 if the coordinates are out of bounds.
func (r *Raster) Offset(x, y int) int {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return -1
	}
	return r.format.Channels() * (y*r.width + x)
}

// At returns channel c of pixel (x, y). Out-of-bounds reads return 0.
func (r *Raster) At(x, y, c int) uint8 {
	off := r.Offset(x, y)
	if off < 0 || c < 0 || c >= r.Channels() {
		return 0
	}
	return r.pix[off+c]
}

// Set writes channel c of pixel (x, y).
func (r *Raster) Set(x, y, c int, v uint8) error {
	off := r.Offset(x, y)
	if off < 0 || c < 0 || c >= r.Channels() {
		return ErrOutOfBounds
	}
	r.pix[off+c] = v
	return nil
}

// Equal reports whether two rasters have the same dimensions, format and
// pixel values.
func (r *Raster) Equal(o *Raster) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.width != o.width || r.height != o.height || r.format != o.format {
		return false
	}
	for i := range r.pix {
		if r.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}

// String returns a short description such as "Raster(6x3 RGB8)".
func (r *Raster) String() string {
	return fmt.Sprintf("Raster(%dx%d %s)", r.width, r.height, r.format)
}
