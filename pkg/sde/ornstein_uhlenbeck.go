package sde

import (
	"math"

	"github.com/c9s/stochmodels/pkg/dist"
)

// OrnsteinUhlenbeck is the mean-reverting process
//
//	dX = alpha*(mu - X) dt + sigma dW
//
// discretised with the exact one-step scheme
//
//	x_{k+1} = x_k e^{-alpha dt} + mu (1 - e^{-alpha dt}) + dt sigma eps_k
type OrnsteinUhlenbeck struct {
	Mu    float64
	Alpha float64
	Sigma float64

	noise *dist.Gaussian
}

func NewOrnsteinUhlenbeck(mu, alpha, sigma float64) *OrnsteinUhlenbeck {
	return &OrnsteinUhlenbeck{Mu: mu, Alpha: alpha, Sigma: sigma, noise: dist.NewStandardGaussian()}
}

// NewOrnsteinUhlenbeckSeed constructs a model whose simulations are
// reproducible for a given seed.
func NewOrnsteinUhlenbeckSeed(mu, alpha, sigma float64, seed uint64) *OrnsteinUhlenbeck {
	return &OrnsteinUhlenbeck{Mu: mu, Alpha: alpha, Sigma: sigma, noise: dist.NewGaussianSeed(0, 1, seed)}
}

func (m *OrnsteinUhlenbeck) Mean() float64 {
	return m.Mu
}

func (m *OrnsteinUhlenbeck) UnconditionalVariance() float64 {
	return m.Sigma * m.Sigma / (2 * m.Alpha)
}

func (m *OrnsteinUhlenbeck) Simulate(start float64, n int, dt float64) []float64 {
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

func (m *OrnsteinUhlenbeck) step(x, eps, dt float64) float64 {
	decay := math.Exp(-m.Alpha * dt)
	return x*decay + m.Mu*(1-decay) + dt*m.Sigma*eps
}

var _ StochasticModel = (*OrnsteinUhlenbeck)(nil)
