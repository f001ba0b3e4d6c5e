package convolution

// parallelMinRows is the smallest height worth splitting into bands.
const parallelMinRows = 64

// Option configures a convolution call.
type Option func(*options)

type options struct {
	workers int
}

func defaultOptions() options {
	return options{workers: 1}
}

// WithWorkers runs the convolution on n goroutines, each handling a band
// of rows. n <= 1 keeps the sequential path. Output does not depend on n.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}
