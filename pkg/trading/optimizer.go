// Package trading solves for optimal entry and exit levels of a position
// whose underlying follows a fitted Ornstein-Uhlenbeck process.
package trading

import (
	"math"

	"github.com/c9s/stochmodels/pkg/hittingtime"
	"github.com/c9s/stochmodels/pkg/numeric"
)

// Optimizer evaluates the eigenfunctions, value function and first order
// conditions of an optimal double-stopping problem. The first order
// conditions are written as root equations: the optimal level is the zero
// of the corresponding method in x.
//
// r is the continuously compounded discount rate and c the transaction
// cost, both per trade. Levels with no definition for a given optimizer
// return ErrNotApplicable.
type Optimizer interface {
	// F is the increasing eigenfunction of the process generator.
	F(k *hittingtime.OrnsteinUhlenbeck, x, r, c float64) (float64, error)
	// G is the decreasing eigenfunction of the process generator.
	G(k *hittingtime.OrnsteinUhlenbeck, x, r, c float64) (float64, error)

	// V is the expected discounted value of holding the position at x
	// given the optimal exit level bStar.
	V(k *hittingtime.OrnsteinUhlenbeck, x, bStar, r, c float64) (float64, error)
	// VStopLoss is V constrained by a forced liquidation at stopLoss.
	VStopLoss(k *hittingtime.OrnsteinUhlenbeck, x, bStar, stopLoss, r, c float64) (float64, error)

	// B is the first order condition of the optimal exit level.
	B(k *hittingtime.OrnsteinUhlenbeck, x, r, c float64) (float64, error)
	// BStopLoss is B constrained by a forced liquidation at stopLoss.
	BStopLoss(k *hittingtime.OrnsteinUhlenbeck, x, stopLoss, r, c float64) (float64, error)

	// D is the first order condition of the optimal entry level given the
	// optimal exit level bStar.
	D(k *hittingtime.OrnsteinUhlenbeck, x, bStar, r, c float64) (float64, error)
	// DStopLoss is D constrained by a forced liquidation at stopLoss.
	DStopLoss(k *hittingtime.OrnsteinUhlenbeck, x, bStar, stopLoss, r, c float64) (float64, error)

	// A is the first order condition of the lower boundary of the entry
	// region given the optimal exit level bStar.
	A(k *hittingtime.OrnsteinUhlenbeck, x, bStar, r, c float64) (float64, error)
	// AStopLoss is A constrained by a forced liquidation at stopLoss.
	AStopLoss(k *hittingtime.OrnsteinUhlenbeck, x, bStar, stopLoss, r, c float64) (float64, error)

	// LStar is the break-even level of the holding problem.
	LStar(k *hittingtime.OrnsteinUhlenbeck, r, c float64) float64
}

// derivative evaluates d/dx f at x for an f that can fail. A failure inside
// the difference stencil surfaces as NaN and is reported once the stencil
// completes.
func derivative(f func(float64) (float64, error), x float64) (float64, error) {
	var inner error
	d, err := numeric.Differentiate(func(y float64) float64 {
		v, e := f(y)
		if e != nil {
			inner = e
			return math.NaN()
		}
		return v
	}, x)

	if inner != nil {
		return 0, inner
	}
	return d, err
}
