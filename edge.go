package pixelate

import (
	"fmt"
	"sync"

	"github.com/gogpu/pixelate/convolution"
	"github.com/gogpu/pixelate/raster"
)

// EdgeMethod selects the gradient kernel pair used by EdgeDetect.
type EdgeMethod string

// Supported edge detection methods.
const (
	EdgeSobel   EdgeMethod = "sobel"
	EdgePrewitt EdgeMethod = "prewitt"
	EdgeScharr  EdgeMethod = "scharr"
)

var edgeKernels = map[EdgeMethod][2]convolution.Kernel{
	EdgeSobel:   {convolution.SobelX, convolution.SobelY},
	EdgePrewitt: {convolution.PrewittX, convolution.PrewittY},
	EdgeScharr:  {convolution.ScharrX, convolution.ScharrY},
}

// ParseEdgeMethod parses a method name, folding case and surrounding space
// the way registry names are folded.
func ParseEdgeMethod(s string) (EdgeMethod, error) {
	m := EdgeMethod(foldName(s))
	if _, ok := edgeKernels[m]; !ok {
		return "", invalidParam("edge method %q (want sobel, prewitt or scharr)", s)
	}
	return m, nil
}

// EdgeOption configures an EdgeDetect filter.
type EdgeOption func(*EdgeDetect)

// WithEdgeMethod selects the kernel pair. The default is EdgeSobel.
func WithEdgeMethod(m EdgeMethod) EdgeOption {
	return func(e *EdgeDetect) {
		e.method = m
	}
}

// WithEdgeWorkers convolves with n goroutines per pass.
func WithEdgeWorkers(n int) EdgeOption {
	return func(e *EdgeDetect) {
		e.workers = n
	}
}

// EdgeDetect computes the normalized gradient magnitude of an image.
//
// RGB input is reduced with the sRGB luma weights. The gray image is
// convolved with the horizontal and vertical kernels of the method, and the
// two gradients are mapped to intensity with convolution.GradientToIntensity.
type EdgeDetect struct {
	intensity float64
	method    EdgeMethod
	workers   int
}

// NewEdgeDetect creates an edge filter. intensity scales the output after
// normalization and must be >= 0; values above 1 brighten edges.
func NewEdgeDetect(intensity float64, opts ...EdgeOption) (*EdgeDetect, error) {
	if !isFinite(intensity) || intensity < 0 {
		return nil, fmt.Errorf("%w: intensity %v must be >= 0", ErrInvalidParameter, intensity)
	}
	e := &EdgeDetect{intensity: intensity, method: EdgeSobel, workers: 1}
	for _, opt := range opts {
		opt(e)
	}
	if _, ok := edgeKernels[e.method]; !ok {
		return nil, invalidParam("edge method %q", e.method)
	}
	return e, nil
}

// Method returns the configured kernel pair name.
func (e *EdgeDetect) Method() EdgeMethod { return e.method }

// Workers returns the goroutine count used per convolution pass.
func (e *EdgeDetect) Workers() int { return e.workers }

// Intensity returns the post-normalization multiplier.
func (e *EdgeDetect) Intensity() float64 { return e.intensity }

func (e *EdgeDetect) Name() string { return "edge" }

func (e *EdgeDetect) Arity() Arity { return Arity{In: AnyChannels, Out: 1} }

func (e *EdgeDetect) Apply(src *raster.Raster) (*raster.Raster, error) {
	if err := checkInput(e, src); err != nil {
		return nil, err
	}
	gray := toGray(src)
	w, h := gray.Bounds()
	kernels := edgeKernels[e.method]

	gx := getGradient(w * h)
	defer putGradient(gx)
	gy := getGradient(w * h)
	defer putGradient(gy)

	workers := convolution.WithWorkers(e.workers)
	if err := convolution.ConvolveInto(gx.data, gray, kernels[0], workers); err != nil {
		return nil, err
	}
	if err := convolution.ConvolveInto(gy.data, gray, kernels[1], workers); err != nil {
		return nil, err
	}
	return convolution.GradientToIntensity(gx.data, gy.data, w, h, e.intensity)
}

// gradientBuffer holds one gradient pass. Buffers are pooled because a
// gradient field is discarded as soon as it has been mapped.
type gradientBuffer struct {
	data []float64
}

var gradientPool = sync.Pool{
	New: func() any { return &gradientBuffer{} },
}

// getGradient returns a buffer of exactly n values. Contents are undefined;
// ConvolveInto overwrites all of them.
func getGradient(n int) *gradientBuffer {
	b := gradientPool.Get().(*gradientBuffer)
	if cap(b.data) < n {
		b.data = make([]float64, n)
	}
	b.data = b.data[:n]
	return b
}

func putGradient(b *gradientBuffer) {
	gradientPool.Put(b)
}
