// Package parallel runs row-band work items on a fixed set of goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Pool runs batches of band functions on a fixed number of goroutines.
//
// All workers read from one queue. ForEachBand never submits more bands
// than there are workers, so each band starts as soon as it is queued.
//
// Thread safety: Pool is safe for concurrent use. Run calls that overlap a
// Close finish before the workers stop.
type Pool struct {
	workers int
	jobs    chan func()
	wg      sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewPool starts a pool with n workers. n <= 0 uses GOMAXPROCS.
func NewPool(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: n,
		jobs:    make(chan func(), n),
	}
	p.wg.Add(n)
	for range n {
		go p.work()
	}
	return p
}

func (p *Pool) work() {
	defer p.wg.Done()
	for fn := range p.jobs {
		fn()
	}
}

// Run executes every function in fns and returns when all have finished.
// Run on a closed pool does nothing and returns false.
func (p *Pool) Run(fns []func()) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}

	var done sync.WaitGroup
	done.Add(len(fns))
	for _, fn := range fns {
		p.jobs <- func() {
			defer done.Done()
			fn()
		}
	}
	done.Wait()
	return true
}

// Close stops the workers after pending Run calls return. It is safe to
// call more than once.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// Closed reports whether Close has been called.
func (p *Pool) Closed() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.closed
}
