// Package hittingtime evaluates first hitting time quantities of a fitted
// Ornstein-Uhlenbeck process on a finite interval.
package hittingtime

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c9s/stochmodels/pkg/numeric"
)

// OrnsteinUhlenbeck holds the fitted process parameters used by the hitting
// time density and the optimal trading kernels.
type OrnsteinUhlenbeck struct {
	Mu    float64
	Alpha float64
	Sigma float64
}

func NewOrnsteinUhlenbeck(mu, alpha, sigma float64) *OrnsteinUhlenbeck {
	return &OrnsteinUhlenbeck{Mu: mu, Alpha: alpha, Sigma: sigma}
}

// DensityCore is the unnormalised scale density
//
//	s(x) = exp(alpha x (x - 2 mu) / sigma^2)
//
// whose normalised integral gives the probability of hitting the upper
// boundary before the lower one.
func (m *OrnsteinUhlenbeck) DensityCore(x float64) float64 {
	return math.Exp(x * m.Alpha * (x - 2*m.Mu) / (m.Sigma * m.Sigma))
}

// FCore is the integrand of the increasing eigenfunction F used by the
// optimal trading level equations. r is the discount rate.
func (m *OrnsteinUhlenbeck) FCore(x, u, r float64) float64 {
	return math.Pow(u, r/m.Alpha-1) *
		math.Exp(math.Sqrt(2*m.Alpha/(m.Sigma*m.Sigma))*(x-m.Mu)*u-u*u/2)
}

// GCore is the integrand of the decreasing eigenfunction G, the mirror
// image of FCore around the process mean.
func (m *OrnsteinUhlenbeck) GCore(x, u, r float64) float64 {
	return math.Pow(u, r/m.Alpha-1) *
		math.Exp(math.Sqrt(2*m.Alpha/(m.Sigma*m.Sigma))*(m.Mu-x)*u-u*u/2)
}

// LStar is the break-even level below which holding the position can never
// recover the transaction cost c at discount rate r.
func (m *OrnsteinUhlenbeck) LStar(r, c float64) float64 {
	return (m.Alpha*m.Mu + r*c) / (r + m.Alpha)
}

// Density returns the probability that the process started at x hits upper
// before lower. x must lie within [lower, upper].
func (m *OrnsteinUhlenbeck) Density(x, upper, lower float64) (float64, error) {
	if x < lower || x > upper {
		return 0, errors.Wrapf(numeric.ErrInvalidInterval,
			"start %v outside boundaries [%v, %v]", x, lower, upper)
	}

	numerator, err := numeric.Integrate(m.DensityCore, lower, x)
	if err != nil {
		return 0, errors.Wrap(err, "hitting time numerator")
	}

	denominator, err := numeric.Integrate(m.DensityCore, lower, upper)
	if err != nil {
		return 0, errors.Wrap(err, "hitting time denominator")
	}

	if denominator == 0 {
		return 0, errors.Wrap(numeric.ErrZeroDivision, "hitting time denominator")
	}

	return numerator / denominator, nil
}
