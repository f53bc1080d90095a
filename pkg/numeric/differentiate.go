package numeric

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/diff/fd"
)

// differentiation step matches the gsl_deriv_central default used upstream
const differentiationStep = 1e-5

// Differentiate computes f'(x) with the central difference formula and a
// step of 1e-5. A non-finite result is reported as ErrNoSolution; failures
// inside f itself should be captured by the caller through the closure.
func Differentiate(f Func, x float64) (float64, error) {
	value := fd.Derivative(f, x, &fd.Settings{
		Formula: fd.Central,
		Step:    differentiationStep,
	})

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, errors.Wrap(ErrNoSolution, "derivative is not finite")
	}

	return value, nil
}
