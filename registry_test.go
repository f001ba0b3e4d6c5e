package pixelate

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/pixelate/raster"
)

func TestNamesBuiltins(t *testing.T) {
	names := Names()
	for _, want := range []string{"diffuse", "dither", "edge", "gamma", "grayscale", "halftone", "invert"} {
		if !slices.Contains(names, want) {
			t.Errorf("Names() missing %q: %v", want, names)
		}
	}
	if !slices.IsSorted(names) {
		t.Errorf("Names() not sorted: %v", names)
	}
}

func TestLookupFoldsCase(t *testing.T) {
	for _, name := range []string{"invert", "INVERT", " Invert "} {
		if _, ok := Lookup(name); !ok {
			t.Errorf("Lookup(%q) not found", name)
		}
	}
	if _, ok := Lookup("sharpen"); ok {
		t.Error("Lookup(sharpen) found")
	}
}

func TestNewFilter(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		want    string
		wantErr error
	}{
		{"invert", nil, "invert", nil},
		{"gamma", Params{"gamma": "2.2"}, "gamma", nil},
		{"gamma", nil, "", ErrInvalidParameter},
		{"gamma", Params{"gamma": "0"}, "", ErrInvalidParameter},
		{"gamma", Params{"gamma": "x"}, "", ErrInvalidParameter},
		{"grayscale", Params{"red": "1", "green": "0", "blue": "0"}, "grayscale", nil},
		{"grayscale", Params{"red": "0.9", "green": "0.9"}, "", ErrInvalidParameter},
		{"edge", Params{"intensity": "2", "method": "prewitt"}, "edge", nil},
		{"edge", Params{"intensity": "-1"}, "", ErrInvalidParameter},
		{"edge", Params{"method": "canny"}, "", ErrInvalidParameter},
		{"diffuse", Params{"matrix": "stucki", "serpentine": "true"}, "diffuse", nil},
		{"diffuse", Params{"serpentine": "maybe"}, "", ErrInvalidParameter},
		{"invert", Params{"amount": "1"}, "", ErrInvalidParameter},
		{"sharpen", nil, "", ErrUnknownFilter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFilter(tt.name, tt.params)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("NewFilter() error = %v, want %v", err, tt.wantErr)
				}
				if f != nil {
					t.Errorf("NewFilter() = %v, want nil on error", f)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewFilter() error = %v", err)
			}
			if f.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", f.Name(), tt.want)
			}
		})
	}
}

func TestNewFilterParameters(t *testing.T) {
	f, err := NewFilter("edge", Params{"intensity": "2.5", "method": "scharr"})
	if err != nil {
		t.Fatal(err)
	}
	edge := f.(*EdgeDetect)
	if edge.Intensity() != 2.5 || edge.Method() != EdgeScharr {
		t.Errorf("edge = %v/%v, want 2.5/scharr", edge.Intensity(), edge.Method())
	}

	f, err = NewFilter("grayscale", nil)
	if err != nil {
		t.Fatal(err)
	}
	r, g, b := f.(*Grayscale).Weights()
	if r != LumaR || g != LumaG || b != LumaB {
		t.Errorf("default grayscale weights = %v, %v, %v", r, g, b)
	}
}

func TestParseChain(t *testing.T) {
	f, err := ParseChain("invert, halftone")
	if err != nil {
		t.Fatal(err)
	}
	if f.Name() != "invert,halftone" {
		t.Errorf("Name() = %q", f.Name())
	}
	if got := f.Arity(); got != (Arity{In: 3, Out: 1}) {
		t.Errorf("Arity() = %v", got)
	}

	src := testRGB(t, 6, 6)
	got, err := f.Apply(src)
	if err != nil {
		t.Fatal(err)
	}
	mid, _ := NewInvert().Apply(src)
	want, _ := NewHalftone().Apply(mid)
	if !got.Equal(want) {
		t.Error("ParseChain output differs from manual composition")
	}

	f, err = ParseChain("grayscale:red=1:green=0:blue=0,edge:intensity=2:method=sobel")
	if err != nil {
		t.Fatal(err)
	}
	if f.Name() != "grayscale,edge" {
		t.Errorf("Name() = %q", f.Name())
	}
}

func TestParseChainErrors(t *testing.T) {
	tests := []struct {
		chain string
		want  error
	}{
		{"", ErrInvalidParameter},
		{"invert,,halftone", ErrInvalidParameter},
		{"invert,blur", ErrUnknownFilter},
		{"gamma:2.2", ErrInvalidParameter},
		{"grayscale,invert", ErrArityMismatch},
	}
	for _, tt := range tests {
		if _, err := ParseChain(tt.chain); !errors.Is(err, tt.want) {
			t.Errorf("ParseChain(%q) error = %v, want %v", tt.chain, err, tt.want)
		}
	}
}

func TestRegisterCustom(t *testing.T) {
	Register("Clear", func(p Params) (Filter, error) {
		if err := p.only(); err != nil {
			return nil, err
		}
		return NewFunc("clear", Arity{In: AnyChannels, Out: AnyChannels}, func(src *raster.Raster) (*raster.Raster, error) {
			return raster.NewLike(src, src.Format()), nil
		}), nil
	})
	t.Cleanup(func() {
		filters.mu.Lock()
		delete(filters.factories, "clear")
		filters.mu.Unlock()
	})

	f, err := ParseChain("invert,clear")
	if err != nil {
		t.Fatal(err)
	}
	out, err := f.Apply(testRGB(t, 3, 3))
	if err != nil {
		t.Fatal(err)
	}
	if out.Channels() != 3 {
		t.Errorf("Channels() = %d, want 3", out.Channels())
	}
}

func TestParamsFloat(t *testing.T) {
	p := Params{"a": "0.5", "b": "7", "c": "nope"}
	if v, err := p.Float("a", 0, 0, 1); err != nil || v != 0.5 {
		t.Errorf("Float(a) = %v, %v", v, err)
	}
	if v, err := p.Float("missing", 3, 0, 1); err != nil || v != 3 {
		t.Errorf("Float(missing) = %v, %v", v, err)
	}
	if _, err := p.Float("b", 0, 0, 1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Float(b) out of range error = %v", err)
	}
	if _, err := p.Float("c", 0, 0, 1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Float(c) error = %v", err)
	}
}

func TestParseChainStageDefaults(t *testing.T) {
	f, err := ParseChain("grayscale,edge", WithStageDefaults("Edge", Params{"workers": "3"}))
	if err != nil {
		t.Fatal(err)
	}
	_, second := f.(*Pipeline).Stages()
	if got := second.(*EdgeDetect).Workers(); got != 3 {
		t.Errorf("Workers() = %d, want 3", got)
	}

	f, err = ParseChain("edge:workers=2", WithStageDefaults("edge", Params{"workers": "3"}))
	if err != nil {
		t.Fatal(err)
	}
	if got := f.(*EdgeDetect).Workers(); got != 2 {
		t.Errorf("explicit Workers() = %d, want 2", got)
	}

	// Defaults for stages absent from the chain are ignored.
	if _, err := ParseChain("invert", WithStageDefaults("edge", Params{"workers": "3"})); err != nil {
		t.Errorf("ParseChain(invert) error = %v", err)
	}
}
