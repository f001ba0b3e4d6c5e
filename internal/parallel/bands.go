package parallel

// Band is a half-open row range [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Bands splits height rows into at most n contiguous bands of near-equal
// size. Returns nil for non-positive height.
func Bands(height, n int) []Band {
	if height <= 0 {
		return nil
	}
	n = min(max(n, 1), height)

	bands := make([]Band, 0, n)
	base, extra := height/n, height%n
	y := 0
	for i := range n {
		size := base
		if i < extra {
			size++
		}
		bands = append(bands, Band{Y0: y, Y1: y + size})
		y += size
	}
	return bands
}

// ForEachBand runs fn for every band of height rows using pool. A nil or
// closed pool, or a single band, runs fn inline on the calling goroutine.
func ForEachBand(pool *Pool, height int, fn func(y0, y1 int)) {
	workers := 1
	if pool != nil {
		workers = pool.Workers()
	}
	bands := Bands(height, workers)
	if pool == nil || len(bands) <= 1 {
		for _, b := range bands {
			fn(b.Y0, b.Y1)
		}
		return
	}

	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { fn(b.Y0, b.Y1) }
	}
	if !pool.Run(work) {
		for _, b := range bands {
			fn(b.Y0, b.Y1)
		}
	}
}
