package pixelate

import (
	"fmt"

	"github.com/gogpu/pixelate/raster"
)

// Pipeline runs two filters end to end: the output of first is the input
// of second. A Pipeline is itself a Filter, so pipelines nest.
type Pipeline struct {
	first  Filter
	second Filter
	arity  Arity
}

// Compose returns a filter that applies first and then second.
//
// It fails with ErrArityMismatch when first's output channel count cannot
// be accepted by second. When first passes its channel count through,
// the pipeline takes on second's input requirement. Stages whose arity is
// AnyChannels are checked again when the pipeline runs.
func Compose(first, second Filter) (*Pipeline, error) {
	if first == nil || second == nil {
		return nil, fmt.Errorf("%w: nil filter", ErrInvalidParameter)
	}
	a, b := first.Arity(), second.Arity()
	if a.In == AnyChannels && a.Out == AnyChannels && b.In != AnyChannels {
		// first passes channels through, so second fixes the input count.
		a.In = b.In
	}
	out := resolvedOut(a)
	if b.In != AnyChannels && out != AnyChannels && out != b.In {
		return nil, fmt.Errorf("%w: %s produces %d channels, %s expects %d",
			ErrArityMismatch, first.Name(), out, second.Name(), b.In)
	}

	arity := Arity{In: a.In, Out: b.Out}
	if b.Out == AnyChannels {
		arity.Out = out
	}
	return &Pipeline{first: first, second: second, arity: arity}, nil
}

// resolvedOut returns the concrete output channel count of a, or
// AnyChannels when it depends on the runtime input.
func resolvedOut(a Arity) int {
	if a.Out != AnyChannels {
		return a.Out
	}
	return a.In
}

// Chain composes filters left to right. A single filter is returned as is.
func Chain(filters ...Filter) (Filter, error) {
	if len(filters) == 0 {
		return nil, fmt.Errorf("%w: empty chain", ErrInvalidParameter)
	}
	acc := filters[0]
	for _, f := range filters[1:] {
		p, err := Compose(acc, f)
		if err != nil {
			return nil, err
		}
		acc = p
	}
	if acc == nil {
		return nil, fmt.Errorf("%w: nil filter", ErrInvalidParameter)
	}
	return acc, nil
}

// Then composes p with next.
func (p *Pipeline) Then(next Filter) (*Pipeline, error) {
	return Compose(p, next)
}

// Name returns the stage names joined with commas, the same syntax
// ParseChain accepts.
func (p *Pipeline) Name() string {
	return p.first.Name() + "," + p.second.Name()
}

// Arity returns the combined arity of both stages.
func (p *Pipeline) Arity() Arity {
	return p.arity
}

// Stages returns the two composed filters.
func (p *Pipeline) Stages() (first, second Filter) {
	return p.first, p.second
}

// Apply checks src against the combined arity, then runs first and second
// on its result. Errors from either stage are returned unchanged.
func (p *Pipeline) Apply(src *raster.Raster) (*raster.Raster, error) {
	if err := checkInput(p, src); err != nil {
		return nil, err
	}
	mid, err := applyStage(p.first, src)
	if err != nil {
		return nil, err
	}
	return applyStage(p.second, mid)
}

// applyStage applies f and logs the stage. Nested pipelines log their own
// stages instead.
func applyStage(f Filter, src *raster.Raster) (*raster.Raster, error) {
	if _, nested := f.(*Pipeline); !nested && !src.Empty() {
		Logger().Debug("pixelate: apply",
			"filter", f.Name(),
			"width", src.Width(),
			"height", src.Height(),
			"channels", src.Channels())
	}
	return f.Apply(src)
}
