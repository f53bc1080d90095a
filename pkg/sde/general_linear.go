package sde

import (
	"math"

	"github.com/c9s/stochmodels/pkg/dist"
)

// GeneralLinear is the multiplicative linear SDE
//
//	X_{t+1} = e^{mu} X_t + sigma eps_t,  eps_t ~ N(0, 1)
//
// used as the driving dynamics of the kinetic components filter.
type GeneralLinear struct {
	Mu    float64
	Sigma float64

	noise *dist.Gaussian
}

func NewGeneralLinear(mu, sigma float64) *GeneralLinear {
	return &GeneralLinear{Mu: mu, Sigma: sigma, noise: dist.NewStandardGaussian()}
}

func NewGeneralLinearSeed(mu, sigma float64, seed uint64) *GeneralLinear {
	return &GeneralLinear{Mu: mu, Sigma: sigma, noise: dist.NewGaussianSeed(0, 1, seed)}
}

// Mean returns 0: the process has no stationary mean level of its own.
func (m *GeneralLinear) Mean() float64 {
	return 0
}

func (m *GeneralLinear) UnconditionalVariance() float64 {
	if m.Mu == 0 {
		return 0
	}
	return (m.Sigma * m.Sigma / (2 * m.Mu)) * (math.Exp(2*m.Mu) - 1)
}

// ConditionalVariance returns the one-step-ahead variance used for the
// filter transition covariance.
func (m *GeneralLinear) ConditionalVariance() float64 {
	if m.Mu == 0 {
		return 0
	}
	return (2 * m.Sigma * m.Mu) / (math.Exp(2*m.Mu) - math.Exp(m.Mu))
}

func (m *GeneralLinear) Simulate(start float64, n int, dt float64) []float64 {
	if n <= 0 {
		return nil
	}

	draws := m.noise.Sample(n - 1)
	path := make([]float64, 0, n)
	path = append(path, start)

	for _, eps := range draws {
		path = append(path, m.step(path[len(path)-1], eps, dt))
	}

	return path
}

func (m *GeneralLinear) step(x, eps, dt float64) float64 {
	return x*math.Exp(m.Mu*dt) + m.Sigma*eps
}

var _ StochasticModel = (*GeneralLinear)(nil)
