package pixelate

import (
	"errors"
	"fmt"

	"github.com/gogpu/pixelate/raster"
)

// Errors returned by filters, constructors and composition.
var (
	// ErrArityMismatch is returned when a raster or a pipeline stage has a
	// channel count the receiving filter does not accept.
	ErrArityMismatch = errors.New("pixelate: arity mismatch")

	// ErrInvalidParameter is returned by filter constructors for parameters
	// out of range (negative intensity, non-positive gamma, bad weights).
	ErrInvalidParameter = errors.New("pixelate: invalid parameter")

	// ErrUnknownFilter is returned by the registry for unregistered names.
	ErrUnknownFilter = errors.New("pixelate: unknown filter")
)

// AnyChannels in Arity.In accepts both gray and RGB input. In Arity.Out it
// means the output has as many channels as the input.
const AnyChannels = 0

// Arity describes the channel counts a filter consumes and produces.
type Arity struct {
	In  int
	Out int
}

// Accepts reports whether a raster with the given channel count is valid
// input.
func (a Arity) Accepts(channels int) bool {
	if channels != 1 && channels != 3 {
		return false
	}
	return a.In == AnyChannels || a.In == channels
}

// OutputFor returns the channel count produced for input with the given
// channel count.
func (a Arity) OutputFor(channels int) int {
	if a.Out == AnyChannels {
		return channels
	}
	return a.Out
}

// String returns a form such as "3->1", "any->1" or "any->same".
func (a Arity) String() string {
	in, out := "any", "same"
	if a.In != AnyChannels {
		in = fmt.Sprint(a.In)
	}
	if a.Out != AnyChannels {
		out = fmt.Sprint(a.Out)
	}
	return in + "->" + out
}

// Filter transforms a raster into a new raster.
//
// Implementations must not modify src and must not keep mutable state
// between calls, so a Filter may be reused and shared across goroutines.
// Apply fails with ErrArityMismatch when src has a channel count that
// Arity().In does not accept.
type Filter interface {
	// Name identifies the filter in logs and pipeline descriptions.
	Name() string

	// Arity returns the channel counts the filter consumes and produces.
	Arity() Arity

	// Apply returns the filtered copy of src.
	Apply(src *raster.Raster) (*raster.Raster, error)
}

// checkInput validates src against f's declared input arity.
func checkInput(f Filter, src *raster.Raster) error {
	if src.Empty() {
		return fmt.Errorf("%s: %w", f.Name(), raster.ErrInvalidDimensions)
	}
	if a := f.Arity(); !a.Accepts(src.Channels()) {
		return fmt.Errorf("%w: %s expects %s input, got %d channels",
			ErrArityMismatch, f.Name(), a, src.Channels())
	}
	return nil
}

// funcFilter adapts a plain function to Filter.
type funcFilter struct {
	name  string
	arity Arity
	fn    func(*raster.Raster) (*raster.Raster, error)
}

// NewFunc wraps fn as a Filter with the given name and arity. Input is
// checked against arity before fn is called.
func NewFunc(name string, arity Arity, fn func(*raster.Raster) (*raster.Raster, error)) Filter {
	return &funcFilter{name: name, arity: arity, fn: fn}
}

func (f *funcFilter) Name() string { return f.name }

func (f *funcFilter) Arity() Arity { return f.arity }

func (f *funcFilter) Apply(src *raster.Raster) (*raster.Raster, error) {
	if err := checkInput(f, src); err != nil {
		return nil, err
	}
	return f.fn(src)
}

// mapPixels applies fn to every channel value of src and returns the result
// in a new raster of the same format.
func mapPixels(src *raster.Raster, fn func(uint8) uint8) *raster.Raster {
	out := raster.NewLike(src, src.Format())
	dst := out.Pix()
	for i, v := range src.Pix() {
		dst[i] = fn(v)
	}
	return out
}

// invalidParam wraps ErrInvalidParameter with a formatted detail.
func invalidParam(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidParameter}, args...)...)
}
