package convolution

import (
	"errors"
	"testing"
)

func TestNewKernel(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]float64
		wantErr error
	}{
		{"1x1", [][]float64{{2}}, nil},
		{"3x3", [][]float64{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}}, nil},
		{"empty", nil, ErrInvalidKernel},
		{"2x2 even", [][]float64{{1, 0}, {0, 1}}, ErrInvalidKernel},
		{"4x4 even", [][]float64{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}, ErrInvalidKernel},
		{"ragged", [][]float64{{0, 0, 0}, {0, 1}, {0, 0, 0}}, ErrInvalidKernel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := NewKernel(tt.rows)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewKernel() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && k.Size() != len(tt.rows) {
				t.Errorf("Size() = %d, want %d", k.Size(), len(tt.rows))
			}
		})
	}
}

func TestKernelCopiesInput(t *testing.T) {
	rows := [][]float64{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}}
	k := MustKernel(rows)
	rows[1][1] = 42

	if k.At(1, 1) != 1 {
		t.Errorf("At(1,1) = %v after mutating input, want 1", k.At(1, 1))
	}

	out := k.Rows()
	out[1][1] = 7
	if k.At(1, 1) != 1 {
		t.Error("Rows() exposes internal storage")
	}
}

func TestKernelAccessors(t *testing.T) {
	if SobelX.Size() != 3 || SobelX.Radius() != 1 {
		t.Errorf("SobelX size/radius = %d/%d, want 3/1", SobelX.Size(), SobelX.Radius())
	}
	// row 1 (ky=1), column 2 (kx=2)
	if got := SobelX.At(2, 1); got != 2 {
		t.Errorf("SobelX.At(2,1) = %v, want 2", got)
	}
	if got := SobelY.At(1, 2); got != 2 {
		t.Errorf("SobelY.At(1,2) = %v, want 2", got)
	}
}

func TestGradientPairsSumToZero(t *testing.T) {
	for name, k := range map[string]Kernel{
		"SobelX": SobelX, "SobelY": SobelY,
		"PrewittX": PrewittX, "PrewittY": PrewittY,
		"ScharrX": ScharrX, "ScharrY": ScharrY,
	} {
		var sum float64
		for _, row := range k.Rows() {
			for _, v := range row {
				sum += v
			}
		}
		if sum != 0 {
			t.Errorf("%s weights sum = %v, want 0", name, sum)
		}
	}
}
