package convolution

import (
	"fmt"

	"github.com/gogpu/pixelate/internal/parallel"
	"github.com/gogpu/pixelate/raster"
)

// Convolve convolves a single-channel raster with k and returns one float
// per pixel in row-major order.
//
// For output (x, y) it sums in(x+kx-r, y+ky-r) * k[ky][kx] over the kernel,
// r = K/2, with zero contribution from coordinates outside the raster.
// An empty raster yields an empty slice.
func Convolve(r *raster.Raster, k Kernel, opts ...Option) ([]float64, error) {
	if err := k.validate(); err != nil {
		return nil, err
	}
	if r.Empty() {
		return []float64{}, nil
	}
	dst := make([]float64, r.Width()*r.Height())
	if err := ConvolveInto(dst, r, k, opts...); err != nil {
		return nil, err
	}
	return dst, nil
}

// ConvolveInto is like Convolve but writes into dst, which must hold at
// least Width*Height values. Every element in that range is overwritten.
func ConvolveInto(dst []float64, r *raster.Raster, k Kernel, opts ...Option) error {
	if err := k.validate(); err != nil {
		return err
	}
	if r.Empty() {
		return nil
	}
	if r.Channels() != 1 {
		return fmt.Errorf("%w: convolution needs 1 channel, got %d", raster.ErrChannelMismatch, r.Channels())
	}
	w, h := r.Bounds()
	if len(dst) < w*h {
		return fmt.Errorf("%w: dst holds %d values, need %d", ErrLengthMismatch, len(dst), w*h)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var pool *parallel.Pool
	if o.workers > 1 && h >= parallelMinRows {
		pool = parallel.NewPool(o.workers)
		defer pool.Close()
	}

	parallel.ForEachBand(pool, h, func(y0, y1 int) {
		convolveRows(dst, r.Pix(), w, h, k, y0, y1)
	})
	return nil
}

// convolveRows computes output rows [y0, y1).
func convolveRows(dst []float64, pix []uint8, w, h int, k Kernel, y0, y1 int) {
	size := k.size
	rad := size / 2

	for y := y0; y < y1; y++ {
		for x := 0; x < w; x++ {
			var acc float64
			for ky := 0; ky < size; ky++ {
				iy := y + ky - rad
				if iy < 0 || iy >= h {
					continue
				}
				row := pix[iy*w : (iy+1)*w]
				weights := k.weights[ky*size : (ky+1)*size]
				for kx, wt := range weights {
					ix := x + kx - rad
					if ix < 0 || ix >= w {
						continue
					}
					acc += float64(row[ix]) * wt
				}
			}
			dst[y*w+x] = acc
		}
	}
}
