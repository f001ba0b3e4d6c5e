package pixelate

import (
	"testing"

	"github.com/gogpu/pixelate/raster"
)

// testRGB returns a deterministic RGB gradient.
func testRGB(t testing.TB, w, h int) *raster.Raster {
	t.Helper()
	r, err := raster.FromFunc(w, h, raster.FormatRGB8, func(x, y int) []uint8 {
		return []uint8{uint8(x * 37), uint8(y * 53), uint8((x + y) * 19)}
	})
	if err != nil {
		t.Fatalf("FromFunc() error = %v", err)
	}
	return r
}

// testGray returns a deterministic single channel gradient.
func testGray(t testing.TB, w, h int) *raster.Raster {
	t.Helper()
	r, err := raster.FromFunc(w, h, raster.FormatGray8, func(x, y int) []uint8 {
		return []uint8{uint8(x*29 + y*41)}
	})
	if err != nil {
		t.Fatalf("FromFunc() error = %v", err)
	}
	return r
}

func mustPix(t testing.TB, w, h int, format raster.Format, pix ...uint8) *raster.Raster {
	t.Helper()
	r, err := raster.FromPix(pix, w, h, format)
	if err != nil {
		t.Fatalf("FromPix() error = %v", err)
	}
	return r
}
