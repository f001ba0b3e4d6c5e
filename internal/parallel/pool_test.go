package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

// =============================================================================
// Pool Tests
// =============================================================================

func TestPoolWorkers(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"explicit", 4, 4},
		{"zero uses GOMAXPROCS", 0, runtime.GOMAXPROCS(0)},
		{"negative uses GOMAXPROCS", -2, runtime.GOMAXPROCS(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(tt.n)
			defer pool.Close()
			if got := pool.Workers(); got != tt.want {
				t.Errorf("Workers() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPoolRunMoreJobsThanWorkers(t *testing.T) {
	pool := NewPool(3)
	defer pool.Close()

	var mu sync.Mutex
	seen := make(map[int]int)
	work := make([]func(), 25)
	for i := range work {
		work[i] = func() {
			mu.Lock()
			seen[i]++
			mu.Unlock()
		}
	}

	if !pool.Run(work) {
		t.Fatal("Run() = false on an open pool")
	}
	for i := range work {
		if seen[i] != 1 {
			t.Errorf("job %d ran %d times, want 1", i, seen[i])
		}
	}
}

func TestPoolRunEmpty(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	if !pool.Run(nil) {
		t.Error("Run(nil) = false")
	}
}

func TestPoolConcurrentRun(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	var total atomic.Int64
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			work := make([]func(), 10)
			for i := range work {
				work[i] = func() { total.Add(1) }
			}
			pool.Run(work)
		}()
	}
	wg.Wait()

	if got := total.Load(); got != 80 {
		t.Errorf("ran %d jobs, want 80", got)
	}
}

func TestPoolCloseIdempotent(t *testing.T) {
	pool := NewPool(2)
	pool.Close()
	pool.Close()

	if !pool.Closed() {
		t.Error("Closed() = false after Close")
	}

	var ran atomic.Bool
	if pool.Run([]func(){func() { ran.Store(true) }}) {
		t.Error("Run() = true on a closed pool")
	}
	if ran.Load() {
		t.Error("closed pool should not execute work")
	}
}

// =============================================================================
// Band Tests
// =============================================================================

func TestBands(t *testing.T) {
	tests := []struct {
		name   string
		height int
		n      int
		want   []Band
	}{
		{"even split", 6, 3, []Band{{0, 2}, {2, 4}, {4, 6}}},
		{"remainder first", 7, 3, []Band{{0, 3}, {3, 5}, {5, 7}}},
		{"more workers than rows", 2, 8, []Band{{0, 1}, {1, 2}}},
		{"single", 5, 1, []Band{{0, 5}}},
		{"zero workers", 5, 0, []Band{{0, 5}}},
		{"no rows", 0, 4, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bands(tt.height, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("Bands(%d, %d) = %v, want %v", tt.height, tt.n, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("band %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestForEachBandCoversEveryRow(t *testing.T) {
	for _, withPool := range []bool{false, true} {
		var pool *Pool
		if withPool {
			pool = NewPool(4)
		}

		rows := make([]int32, 37)
		ForEachBand(pool, len(rows), func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				atomic.AddInt32(&rows[y], 1)
			}
		})

		for y, n := range rows {
			if n != 1 {
				t.Errorf("pool=%v: row %d visited %d times, want 1", withPool, y, n)
			}
		}

		if pool != nil {
			pool.Close()
		}
	}
}

func TestForEachBandClosedPoolRunsInline(t *testing.T) {
	pool := NewPool(3)
	pool.Close()

	var rows atomic.Int32
	ForEachBand(pool, 10, func(y0, y1 int) {
		rows.Add(int32(y1 - y0))
	})
	if got := rows.Load(); got != 10 {
		t.Errorf("covered %d rows, want 10", got)
	}
}
