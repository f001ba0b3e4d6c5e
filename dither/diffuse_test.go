package dither

import (
	"errors"
	"testing"

	"github.com/gogpu/pixelate/raster"
)

func TestDiffuseBinaryOutput(t *testing.T) {
	src, err := raster.FromFunc(16, 8, raster.FormatRGB8, func(x, y int) []uint8 {
		v := uint8(x * 16)
		return []uint8{v, v, v}
	})
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range Matrices() {
		for _, serpentine := range []bool{false, true} {
			out, err := Diffuse(src, DiffuseOptions{Matrix: name, Serpentine: serpentine})
			if err != nil {
				t.Fatalf("Diffuse(%s) error = %v", name, err)
			}
			if out.Format() != raster.FormatGray8 {
				t.Errorf("%s: Format() = %v, want Gray8", name, out.Format())
			}
			if w, h := out.Bounds(); w != 16 || h != 8 {
				t.Errorf("%s: Bounds() = %dx%d, want 16x8", name, w, h)
			}
			for i, v := range out.Pix() {
				if v != 0 && v != 255 {
					t.Fatalf("%s: pix[%d] = %d, want 0 or 255", name, i, v)
				}
			}
		}
	}
}

func TestDiffuseExtremes(t *testing.T) {
	black := raster.MustNew(4, 4, raster.FormatGray8)
	out, err := Diffuse(black, DiffuseOptions{})
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range out.Pix() {
		if v != 0 {
			t.Fatal("black input must diffuse to black")
		}
	}
}

func TestDiffuseDoesNotMutateInput(t *testing.T) {
	src, _ := raster.FromFunc(6, 6, raster.FormatGray8, func(x, y int) []uint8 {
		return []uint8{uint8(x*40 + y)}
	})
	before := src.Clone()
	if _, err := Diffuse(src, DiffuseOptions{Matrix: "atkinson"}); err != nil {
		t.Fatal(err)
	}
	if !src.Equal(before) {
		t.Error("Diffuse modified its input")
	}
}

func TestDiffuseUnknownMatrix(t *testing.T) {
	_, err := Diffuse(raster.MustNew(2, 2, raster.FormatGray8), DiffuseOptions{Matrix: "nope"})
	if !errors.Is(err, ErrUnknownMatrix) {
		t.Errorf("error = %v, want ErrUnknownMatrix", err)
	}
}
