package convolution

import (
	"errors"
	"fmt"
)

// Errors returned by the convolution engine.
var (
	// ErrInvalidKernel is returned for kernels whose size is not odd or
	// whose rows are not all the same length as the number of rows.
	ErrInvalidKernel = errors.New("convolution: invalid kernel")

	// ErrLengthMismatch is returned when gradient slices disagree in length.
	ErrLengthMismatch = errors.New("convolution: length mismatch")
)

// Kernel is an immutable square matrix of weights.
//
// The zero value has size 0 and is rejected by Convolve.
type Kernel struct {
	size    int
	weights []float64 // row-major, size*size
}

// NewKernel creates a kernel from rows. The input is copied.
// Every row must have len(rows) entries and len(rows) must be odd.
func NewKernel(rows [][]float64) (Kernel, error) {
	n := len(rows)
	if n == 0 || n%2 == 0 {
		return Kernel{}, fmt.Errorf("%w: size %d is not odd", ErrInvalidKernel, n)
	}
	weights := make([]float64, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return Kernel{}, fmt.Errorf("%w: row %d has %d entries, want %d", ErrInvalidKernel, i, len(row), n)
		}
		weights = append(weights, row...)
	}
	return Kernel{size: n, weights: weights}, nil
}

// MustKernel is like NewKernel but panics on error.
func MustKernel(rows [][]float64) Kernel {
	k, err := NewKernel(rows)
	if err != nil {
		panic(err)
	}
	return k
}

// Size returns K for a K×K kernel.
func (k Kernel) Size() int {
	return k.size
}

// Radius returns K/2.
func (k Kernel) Radius() int {
	return k.size / 2
}

// At returns the weight at row ky, column kx.
func (k Kernel) At(kx, ky int) float64 {
	return k.weights[ky*k.size+kx]
}

// Rows returns a copy of the weights as a matrix.
func (k Kernel) Rows() [][]float64 {
	rows := make([][]float64, k.size)
	for i := range rows {
		rows[i] = append([]float64(nil), k.weights[i*k.size:(i+1)*k.size]...)
	}
	return rows
}

// validate reports ErrInvalidKernel for a kernel not built by NewKernel.
func (k Kernel) validate() error {
	if k.size == 0 || k.size%2 == 0 || len(k.weights) != k.size*k.size {
		return fmt.Errorf("%w: size %d", ErrInvalidKernel, k.size)
	}
	return nil
}

// Predefined kernels. Gradient pairs are unnormalized integer weights.
var (
	// Identity3 reproduces its input.
	Identity3 = MustKernel([][]float64{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})

	// SobelX responds to horizontal intensity change (vertical edges).
	SobelX = MustKernel([][]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	})

	// SobelY responds to vertical intensity change (horizontal edges).
	SobelY = MustKernel([][]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	})

	PrewittX = MustKernel([][]float64{
		{-1, 0, 1},
		{-1, 0, 1},
		{-1, 0, 1},
	})

	PrewittY = MustKernel([][]float64{
		{-1, -1, -1},
		{0, 0, 0},
		{1, 1, 1},
	})

	ScharrX = MustKernel([][]float64{
		{-3, 0, 3},
		{-10, 0, 10},
		{-3, 0, 3},
	})

	ScharrY = MustKernel([][]float64{
		{-3, -10, -3},
		{0, 0, 0},
		{3, 10, 3},
	})
)
