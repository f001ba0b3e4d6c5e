package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the container format is not supported.
	ErrUnsupportedFormat = errors.New("raster: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("raster: empty data")
)

// DefaultJPEGQuality is the quality used by Save for .jpg/.jpeg paths.
const DefaultJPEGQuality = 90

// Decode decodes an image from r, auto-detecting the container, and
// converts it to an RGB8 raster. Supported: PNG, JPEG, BMP, TIFF, WebP.
func Decode(r io.Reader) (*Raster, error) {
	return DecodeFormat(r, FormatRGB8)
}

// DecodeFormat is like Decode but converts to the given format.
func DecodeFormat(r io.Reader, format Format) (*Raster, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("raster: decode: %w", err)
	}
	return FromImage(img, format)
}

// DecodeBytes decodes an image held in memory.
func DecodeBytes(data []byte) (*Raster, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Load reads and decodes the image file at path into an RGB8 raster.
func Load(path string) (*Raster, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("raster: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Save encodes r to path, choosing the container from the file extension.
func Save(path string, r *Raster) error {
	name, err := formatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("raster: create file: %w", err)
	}

	if err := Encode(f, r, name); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Encode writes r to w in the named container ("png", "jpeg", "bmp", "tiff").
func Encode(w io.Writer, r *Raster, name string) error {
	if r.Empty() {
		return ErrEmptyData
	}
	img := r.ToImage()

	var err error
	switch strings.ToLower(name) {
	case "png":
		err = png.Encode(w, img)
	case "jpeg", "jpg":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: DefaultJPEGQuality})
	case "bmp":
		err = bmp.Encode(w, img)
	case "tiff", "tif":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
	if err != nil {
		return fmt.Errorf("raster: encode %s: %w", name, err)
	}
	return nil
}

// EncodeToBytes encodes r as PNG and returns the bytes.
func EncodeToBytes(r *Raster) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, r, "png"); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// formatFromPath maps a file extension to an encoder name.
func formatFromPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return "png", nil
	case ".jpg", ".jpeg":
		return "jpeg", nil
	case ".bmp":
		return "bmp", nil
	case ".tif", ".tiff":
		return "tiff", nil
	default:
		return "", fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
	}
}

// FromImage converts a standard library image into a raster of the given
// format. Alpha is discarded.
func FromImage(img image.Image, format Format) (*Raster, error) {
	bounds := img.Bounds()
	out, err := New(bounds.Dx(), bounds.Dy(), format)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatGray8:
		gray, ok := img.(*image.Gray)
		if !ok {
			gray = image.NewGray(image.Rect(0, 0, out.width, out.height))
			xdraw.Draw(gray, gray.Bounds(), img, bounds.Min, xdraw.Src)
		}
		for y := range out.height {
			start := y * gray.Stride
			copy(out.Row(y), gray.Pix[start:start+out.width])
		}

	case FormatRGB8:
		rgba, ok := img.(*image.RGBA)
		if !ok {
			rgba = image.NewRGBA(image.Rect(0, 0, out.width, out.height))
			xdraw.Draw(rgba, rgba.Bounds(), img, bounds.Min, xdraw.Src)
		}
		for y := range out.height {
			src := rgba.Pix[y*rgba.Stride:]
			row := out.Row(y)
			for x := range out.width {
				row[x*3] = src[x*4]
				row[x*3+1] = src[x*4+1]
				row[x*3+2] = src[x*4+2]
			}
		}
	}

	return out, nil
}

// ToImage converts the raster to a standard library image.
// Returns *image.Gray for Gray8 and *image.NRGBA (opaque) for RGB8.
func (r *Raster) ToImage() image.Image {
	rect := image.Rect(0, 0, r.width, r.height)

	if r.format == FormatGray8 {
		gray := image.NewGray(rect)
		for y := range r.height {
			copy(gray.Pix[y*gray.Stride:], r.Row(y))
		}
		return gray
	}

	nrgba := image.NewNRGBA(rect)
	for y := range r.height {
		row := r.Row(y)
		dstStart := y * nrgba.Stride
		for x := range r.width {
			srcOff := x * 3
			dstOff := dstStart + x*4
			nrgba.Pix[dstOff] = row[srcOff]
			nrgba.Pix[dstOff+1] = row[srcOff+1]
			nrgba.Pix[dstOff+2] = row[srcOff+2]
			nrgba.Pix[dstOff+3] = 255
		}
	}
	return nrgba
}
