package likelihood

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// GeneralLinearComponents are the sufficient statistics of the general
// linear SDE maximum likelihood estimator. LagSquared skips the first
// element of the series so that the ratio with LeadLagInnerProduct stays a
// pure one-step growth estimate.
type GeneralLinearComponents struct {
	LagSquared          float64
	LeadLagInnerProduct float64
	SquaredError        float64
	NObs                uint32
}

// GeneralLinearParameters are the fitted general linear SDE parameters.
type GeneralLinearParameters struct {
	Mu    float64
	Sigma float64
}

// GeneralLinear is the stateless batch calculator for general linear SDE
// maximum likelihood components and parameters.
type GeneralLinear struct{}

// CalculateComponents computes the sufficient statistics of the series.
func (g GeneralLinear) CalculateComponents(data []float64) (GeneralLinearComponents, error) {
	if len(data) < 2 {
		return GeneralLinearComponents{}, ErrInsufficientObservations
	}

	lead := data[1:]
	lag := data[:len(data)-1]

	crossProduct := floats.Dot(lag, lead)

	// sum of squares over data[1:], not over the lag slice
	lagSquared := floats.Dot(lead, lead)

	mu := math.Log(seriesMean(crossProduct, lagSquared))

	return GeneralLinearComponents{
		LagSquared:          lagSquared,
		LeadLagInnerProduct: crossProduct,
		SquaredError:        squaredError(data, mu),
		NObs:                uint32(len(data)),
	}, nil
}

// UpdateComponents folds one new observation into the running components.
func (g GeneralLinear) UpdateComponents(c GeneralLinearComponents, newObservation, lastObservation float64) GeneralLinearComponents {
	lagSquared := c.LagSquared + lastObservation*lastObservation
	crossProduct := c.LeadLagInnerProduct + lastObservation*newObservation

	mean := seriesMean(crossProduct, lagSquared)

	n := float64(c.NObs)
	residual := newObservation - mean*lastObservation
	squaredError := c.SquaredError + (n/(n+1))*residual*residual

	return GeneralLinearComponents{
		LagSquared:          lagSquared,
		LeadLagInnerProduct: crossProduct,
		SquaredError:        squaredError,
		NObs:                c.NObs + 1,
	}
}

// CalculateParameters evaluates the closed-form estimators on the
// components.
func (g GeneralLinear) CalculateParameters(c GeneralLinearComponents) GeneralLinearParameters {
	mu := math.Log(seriesMean(c.LeadLagInnerProduct, c.LagSquared))

	var sigma float64
	if c.SquaredError != 0 && c.NObs > 0 {
		sigma = math.Sqrt(c.SquaredError / float64(c.NObs))
	}

	return GeneralLinearParameters{Mu: mu, Sigma: sigma}
}

// ConditionalVariance returns the one-step-ahead variance implied by the
// fitted parameters, used as the transition noise of the kinetic filter.
func (g GeneralLinear) ConditionalVariance(p GeneralLinearParameters) float64 {
	return (2 * p.Sigma * p.Mu) / (math.Exp(2*p.Mu) - math.Exp(p.Mu))
}

func seriesMean(numerator, denominator float64) float64 {
	if denominator == 0 || numerator == 0 {
		return 0
	}
	return numerator / denominator
}

func squaredError(data []float64, mu float64) float64 {
	expMu := math.Exp(mu)

	var acc float64
	for i := 1; i < len(data); i++ {
		residual := data[i] - data[i-1]*expMu
		acc += residual * residual
	}
	return acc
}
