package likelihood

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// OrnsteinUhlenbeckComponents are the sufficient statistics of the
// closed-form OU maximum likelihood estimator: the running sums of the lead
// and lag of the observation series, their squares, their cross product, and
// the number of observations.
type OrnsteinUhlenbeckComponents struct {
	LeadSum           float64
	LagSum            float64
	LeadSumSquared    float64
	LagSumSquared     float64
	LeadLagSumProduct float64
	NObs              uint32
}

// OrnsteinUhlenbeckParameters are the fitted OU parameters. Sigma follows
// the upstream convention and is returned unsquared from the variance-form
// kernel; do not reinterpret it without a domain review.
type OrnsteinUhlenbeckParameters struct {
	Mu    float64
	Alpha float64
	Sigma float64
}

// OrnsteinUhlenbeck is the stateless batch calculator for OU maximum
// likelihood components and parameters.
type OrnsteinUhlenbeck struct{}

// CalculateComponents computes the sufficient statistics of the series.
func (OrnsteinUhlenbeck) CalculateComponents(data []float64) (OrnsteinUhlenbeckComponents, error) {
	if len(data) < 2 {
		return OrnsteinUhlenbeckComponents{}, ErrInsufficientObservations
	}

	lead := data[1:]
	lag := data[:len(data)-1]

	return OrnsteinUhlenbeckComponents{
		LeadSum:           floats.Sum(lead),
		LagSum:            floats.Sum(lag),
		LeadSumSquared:    floats.Dot(lead, lead),
		LagSumSquared:     floats.Dot(lag, lag),
		LeadLagSumProduct: floats.Dot(lag, lead),
		NObs:              uint32(len(data)),
	}, nil
}

// UpdateComponents folds one new observation into the running components.
// lastObservation is the final observation of the series the components
// were computed from.
func (OrnsteinUhlenbeck) UpdateComponents(c OrnsteinUhlenbeckComponents, newObservation, lastObservation float64) OrnsteinUhlenbeckComponents {
	return OrnsteinUhlenbeckComponents{
		LeadSum:           c.LeadSum + newObservation,
		LagSum:            c.LagSum + lastObservation,
		LeadSumSquared:    c.LeadSumSquared + newObservation*newObservation,
		LagSumSquared:     c.LagSumSquared + lastObservation*lastObservation,
		LeadLagSumProduct: c.LeadLagSumProduct + lastObservation*newObservation,
		NObs:              c.NObs + 1,
	}
}

// CalculateParameters evaluates the closed-form estimators on the
// components.
func (OrnsteinUhlenbeck) CalculateParameters(c OrnsteinUhlenbeckComponents) OrnsteinUhlenbeckParameters {
	mu := calculateOUMu(c)
	alpha := calculateOUAlpha(c, mu)
	sigma := calculateOUSigma(c, mu, alpha)
	return OrnsteinUhlenbeckParameters{Mu: mu, Alpha: alpha, Sigma: sigma}
}

func calculateOUMu(c OrnsteinUhlenbeckComponents) float64 {
	n := float64(c.NObs)
	return (c.LeadSum*c.LagSumSquared - c.LagSum*c.LeadLagSumProduct) /
		(n*(c.LagSumSquared-c.LeadLagSumProduct) - (c.LagSum*c.LagSum - c.LeadSum*c.LagSum))
}

func calculateOUAlpha(c OrnsteinUhlenbeckComponents, mu float64) float64 {
	n := float64(c.NObs)
	return math.Log(c.LagSumSquared-2*mu*c.LagSum+n*mu*mu) -
		math.Log(c.LeadLagSumProduct-mu*c.LagSum-mu*c.LeadSum+n*mu*mu)
}

func calculateOUSigma(c OrnsteinUhlenbeckComponents, mu, alpha float64) float64 {
	n := float64(c.NObs)
	expAlpha := math.Exp(-alpha)

	sigma := c.LeadSumSquared -
		2*expAlpha*c.LeadLagSumProduct +
		expAlpha*expAlpha*c.LagSumSquared -
		2*mu*(1-expAlpha)*(c.LeadSum-expAlpha*c.LagSum) +
		n*mu*mu*(1-expAlpha)*(1-expAlpha)
	sigma *= 1.0 / n
	sigma *= 2 * expAlpha / (1 - expAlpha*expAlpha)
	return sigma
}
