package numeric

import "github.com/pkg/errors"

// Failure kinds surfaced by the numeric primitives. Callers should match
// these with errors.Is since the primitives wrap them with call context.
var (
	// ErrMaxIterations is returned when the adaptive integrator exhausts
	// its subdivision budget before reaching the requested tolerance.
	ErrMaxIterations = errors.New("maximum number of subdivisions reached during numerical integration")

	// ErrNoSolution is returned when a solver finished its iteration
	// budget without producing a point within the convergence tolerance.
	ErrNoSolution = errors.New("no solution found")

	// ErrZeroDivision is returned when a derivative vanished inside the
	// root finding iteration.
	ErrZeroDivision = errors.New("derivative vanished in root finding solver")

	// ErrSingularity is returned when an integrand produced a non-finite
	// value that subdivision could not isolate.
	ErrSingularity = errors.New("singularity encountered during numerical integration")

	// ErrInvalidInterval is returned when a solver is called with
	// lower >= upper.
	ErrInvalidInterval = errors.New("invalid interval: lower bound must be less than upper bound")
)
