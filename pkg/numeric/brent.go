package numeric

import (
	"math"

	"github.com/pkg/errors"
)

const (
	brentMaxIterations = 100

	// interval width below which the iteration is considered converged
	brentTolerance = 1e-4
)

// BrentRoot finds a root of f on [lo, hi] with Brent's method. The interval
// must satisfy lo < hi or ErrInvalidInterval is returned. The bracket is not
// required to straddle zero: when it does not, a bounded secant iteration is
// run instead and the result is accepted only if the residual is within the
// convergence tolerance. At most 100 iterations are performed.
func BrentRoot(f Func, lo, hi float64) (float64, error) {
	if lo >= hi {
		return 0, ErrInvalidInterval
	}

	a, b := lo, hi
	fa, fb := f(a), f(b)
	if math.IsNaN(fa) || math.IsNaN(fb) {
		return 0, errors.Wrap(ErrNoSolution, "function is undefined at a bracket endpoint")
	}

	if fa*fb > 0 {
		return secantInBracket(f, a, b, fa, fb)
	}

	// classic Brent iteration: inverse quadratic interpolation with
	// bisection fallback
	c, fc := a, fa
	d := b - a
	e := d

	for iter := 0; iter < brentMaxIterations; iter++ {
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol1 := 2*math.SmallestNonzeroFloat64*math.Abs(b) + 0.5*brentTolerance
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol1 || fb == 0 {
			return b, nil
		}

		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			s := fb / fa
			var p, q float64
			if a == c {
				// secant
				p = 2 * xm * s
				q = 1 - s
			} else {
				// inverse quadratic
				q = fa / fc
				r := fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			if 2*p < math.Min(3*xm*q-math.Abs(tol1*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}

		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		fb = f(b)
		if math.IsNaN(fb) {
			return 0, errors.Wrap(ErrNoSolution, "function is undefined inside the bracket")
		}
		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
	}

	return 0, errors.Wrapf(ErrNoSolution, "no root found in [%v, %v] after %d iterations", lo, hi, brentMaxIterations)
}

// secantInBracket runs a secant iteration clamped to [lo, hi] for brackets
// that do not straddle zero. The upstream routine tolerates such brackets,
// so a best-effort point is accepted when its residual meets the tolerance.
func secantInBracket(f Func, lo, hi, flo, fhi float64) (float64, error) {
	x0, x1 := lo, hi
	f0, f1 := flo, fhi

	for iter := 0; iter < brentMaxIterations; iter++ {
		denom := f1 - f0
		if denom == 0 {
			return 0, errors.Wrap(ErrZeroDivision, "secant step degenerated")
		}
		x2 := x1 - f1*(x1-x0)/denom
		if x2 < lo {
			x2 = lo
		} else if x2 > hi {
			x2 = hi
		}
		f2 := f(x2)
		if math.IsNaN(f2) {
			return 0, errors.Wrap(ErrNoSolution, "function is undefined inside the bracket")
		}
		if math.Abs(f2) <= brentTolerance || math.Abs(x2-x1) <= brentTolerance {
			if math.Abs(f2) <= brentTolerance {
				return x2, nil
			}
			return 0, errors.Wrapf(ErrNoSolution, "no sign change in [%v, %v]", lo, hi)
		}
		x0, f0 = x1, f1
		x1, f1 = x2, f2
	}

	return 0, errors.Wrapf(ErrNoSolution, "no root found in [%v, %v] after %d iterations", lo, hi, brentMaxIterations)
}
