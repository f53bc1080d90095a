package numeric

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrate(t *testing.T) {
	tests := []struct {
		name   string
		f      Func
		lo, hi float64
		want   float64
	}{
		{
			name: "polynomial",
			f:    func(x float64) float64 { return x * x },
			lo:   0, hi: 1,
			want: 1.0 / 3.0,
		},
		{
			name: "exponential",
			f:    math.Exp,
			lo:   0, hi: 1,
			want: math.E - 1,
		},
		{
			name: "oscillatory",
			f:    func(x float64) float64 { return math.Sin(x) },
			lo:   0, hi: math.Pi,
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Integrate(tt.f, tt.lo, tt.hi)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestIntegrateToInf(t *testing.T) {
	// int_0^inf e^{-x} dx = 1
	got, err := IntegrateToInf(func(x float64) float64 { return math.Exp(-x) }, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-8)

	// int_0^inf e^{-x^2/2} dx = sqrt(pi/2)
	got, err = IntegrateToInf(func(x float64) float64 { return math.Exp(-x * x / 2) }, 0)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(math.Pi/2), got, 1e-8)

	// integrable endpoint singularity, as in the hitting time kernels:
	// int_0^inf x^{-1/2} e^{-x} dx = sqrt(pi)
	got, err = IntegrateToInf(func(x float64) float64 { return math.Exp(-x) / math.Sqrt(x) }, 0)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(math.Pi), got, 1e-6)
}

func TestDifferentiate(t *testing.T) {
	got, err := Differentiate(math.Sin, 1.0)
	require.NoError(t, err)
	assert.InDelta(t, math.Cos(1.0), got, 1e-8)

	got, err = Differentiate(func(x float64) float64 { return x * x * x }, 2.0)
	require.NoError(t, err)
	assert.InDelta(t, 12.0, got, 1e-6)
}

func TestBrentRoot(t *testing.T) {
	got, err := BrentRoot(func(x float64) float64 { return x*x - 2 }, 0, 2)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, got, 1e-4)

	got, err = BrentRoot(math.Cos, 1, 2)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, got, 1e-4)
}

func TestBrentRootInvalidInterval(t *testing.T) {
	_, err := BrentRoot(func(x float64) float64 { return x }, 2, 1)
	assert.True(t, errors.Is(err, ErrInvalidInterval))
}

func TestBrentRootNoSignChange(t *testing.T) {
	// no root in the bracket: must not panic, must report no solution
	_, err := BrentRoot(func(x float64) float64 { return x*x + 1 }, -1, 1)
	assert.True(t, errors.Is(err, ErrNoSolution) || errors.Is(err, ErrZeroDivision))
}
