// Package kalman implements the Kalman filter behind Kinetic Components
// Analysis: a constant acceleration state space whose transition block is
// fitted from the observed series with the general linear SDE estimator.
package kalman

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/c9s/stochmodels/pkg/likelihood"
	"github.com/c9s/stochmodels/pkg/numeric"
)

// SystemDimensions declares the shapes of the filter system matrices.
// Serialized state blobs are validated against these before use.
type SystemDimensions struct {
	StateMeanDimension           int     `json:"state_mean_dimension"`
	StateCovarianceRows          int     `json:"state_covariance_rows"`
	StateCovarianceColumns       int     `json:"state_covariance_columns"`
	ObservationMatrixRows        int     `json:"observation_matrix_rows"`
	ObservationMatrixColumns     int     `json:"observation_matrix_columns"`
	ObservationCovarianceRows    int     `json:"observation_covariance_rows"`
	ObservationCovarianceColumns int     `json:"observation_covariance_columns"`
	ObservationOffset            float64 `json:"observation_offset"`
}

// DefaultSystemDimensions is the canonical position, velocity, acceleration
// system with a single position observation.
func DefaultSystemDimensions() SystemDimensions {
	return SystemDimensions{
		StateMeanDimension:           3,
		StateCovarianceRows:          3,
		StateCovarianceColumns:       3,
		ObservationMatrixRows:        1,
		ObservationMatrixColumns:     3,
		ObservationCovarianceRows:    1,
		ObservationCovarianceColumns: 1,
	}
}

// States holds the full internal state of the filter: the fitted transition
// model, the posterior state estimate and the last prior prediction.
type States struct {
	dimensions SystemDimensions

	transitionMatrix     *mat.Dense
	transitionCovariance *mat.Dense

	currentStateMean       *mat.VecDense
	currentStateCovariance *mat.Dense

	observationMatrix *mat.Dense
	observationOffset float64

	predictedStateMean             *mat.VecDense
	predictedStateCovariance       *mat.Dense
	predictedObservationMean       *mat.VecDense
	predictedObservationCovariance *mat.Dense

	initialised bool
	priorsValid bool
}

// NewStates allocates a zeroed state for the given dimensions.
func NewStates(dimensions SystemDimensions) *States {
	return &States{
		dimensions: dimensions,

		transitionMatrix: mat.NewDense(
			dimensions.StateCovarianceRows, dimensions.StateCovarianceColumns, nil),
		transitionCovariance: mat.NewDense(
			dimensions.StateCovarianceRows, dimensions.StateCovarianceColumns, nil),

		currentStateMean: mat.NewVecDense(dimensions.StateMeanDimension, nil),
		currentStateCovariance: mat.NewDense(
			dimensions.StateCovarianceRows, dimensions.StateCovarianceColumns, nil),

		observationMatrix: mat.NewDense(
			dimensions.ObservationMatrixRows, dimensions.ObservationMatrixColumns, nil),

		predictedStateMean: mat.NewVecDense(dimensions.StateMeanDimension, nil),
		predictedStateCovariance: mat.NewDense(
			dimensions.StateCovarianceRows, dimensions.StateCovarianceColumns, nil),
		predictedObservationMean: mat.NewVecDense(dimensions.StateMeanDimension, nil),
		predictedObservationCovariance: mat.NewDense(
			dimensions.ObservationCovarianceRows, dimensions.ObservationCovarianceColumns, nil),
	}
}

func (s *States) Dimensions() SystemDimensions { return s.dimensions }

func (s *States) IsInitialised() bool { return s.initialised }

func (s *States) ArePriorsValid() bool { return s.priorsValid }

func (s *States) TransitionMatrix() *mat.Dense { return s.transitionMatrix }

func (s *States) TransitionCovariance() *mat.Dense { return s.transitionCovariance }

func (s *States) CurrentStateCovariance() *mat.Dense { return s.currentStateCovariance }

func (s *States) ObservationMatrix() *mat.Dense { return s.observationMatrix }

func (s *States) ObservationOffset() float64 { return s.observationOffset }

func (s *States) PredictedStateMean() *mat.VecDense { return s.predictedStateMean }

func (s *States) PredictedStateCovariance() *mat.Dense { return s.predictedStateCovariance }

// CurrentStateMean returns a copy of the posterior state estimate.
func (s *States) CurrentStateMean() []float64 {
	out := make([]float64, s.currentStateMean.Len())
	for i := range out {
		out[i] = s.currentStateMean.AtVec(i)
	}
	return out
}

// SetInitialState fits the transition block to the data series and resets
// the posterior to the projected last observation. h is the sampling step
// of the kinetic expansion and q the process noise of the velocity and
// acceleration components.
func (s *States) SetInitialState(dataSeries []float64, h, q float64) error {
	var gl likelihood.GeneralLinear

	components, err := gl.CalculateComponents(dataSeries)
	if err != nil {
		return errors.Wrap(err, "fitting the transition model")
	}
	params := gl.CalculateParameters(components)
	conditionalVariance := gl.ConditionalVariance(params)

	expMu := math.Exp(params.Mu)

	s.transitionMatrix = mat.NewDense(3, 3, []float64{
		expMu, h, 0.5 * h * h,
		0, 1, h,
		0, 0, 1,
	})
	s.transitionCovariance = mat.NewDense(3, 3, []float64{
		conditionalVariance, 0, 0,
		0, q, 0,
		0, 0, q,
	})

	last := dataSeries[len(dataSeries)-1]
	s.currentStateMean = mat.NewVecDense(3, []float64{last * expMu, 0, 0})
	s.currentStateCovariance = mat.NewDense(3, 3, nil)

	s.observationMatrix = mat.NewDense(1, 3, []float64{1, 0, 0})
	s.observationOffset = 0

	s.initialised = true
	s.priorsValid = false
	return nil
}

// UpdatePredictedState projects the posterior one step ahead through the
// transition model.
func (s *States) UpdatePredictedState() error {
	if !s.initialised {
		return ErrNotInitialized
	}

	predictedMean := mat.NewVecDense(s.currentStateMean.Len(), nil)
	predictedMean.MulVec(s.transitionMatrix, s.currentStateMean)

	var inner, predictedCovariance mat.Dense
	inner.Mul(s.currentStateCovariance, s.transitionMatrix.T())
	predictedCovariance.Mul(s.transitionMatrix, &inner)
	predictedCovariance.Add(&predictedCovariance, s.transitionCovariance)

	s.predictedStateMean = predictedMean
	s.predictedStateCovariance = mat.DenseCopyOf(&predictedCovariance)

	s.priorsValid = true
	return nil
}

// UpdateCurrentState folds one observation into the predicted state.
// innovationSigma is the standard deviation of the observation noise.
func (s *States) UpdateCurrentState(observation, innovationSigma float64) error {
	if !s.initialised {
		return ErrNotInitialized
	}
	if !s.priorsValid {
		return ErrInvalidOperation
	}

	// predicted observation mean z = H m + o
	predictedObservationMean := mat.NewVecDense(s.dimensions.ObservationMatrixRows, nil)
	predictedObservationMean.MulVec(s.observationMatrix, s.predictedStateMean)
	for i := 0; i < predictedObservationMean.Len(); i++ {
		predictedObservationMean.SetVec(i, predictedObservationMean.AtVec(i)+s.observationOffset)
	}

	// predicted observation covariance R = H P H^T + sigma^2
	var covarianceInner, predictedObservationCovariance mat.Dense
	covarianceInner.Mul(s.predictedStateCovariance, s.observationMatrix.T())
	predictedObservationCovariance.Mul(s.observationMatrix, &covarianceInner)
	sigmaSquared := innovationSigma * innovationSigma
	predictedObservationCovariance.Apply(func(_, _ int, v float64) float64 {
		return v + sigmaSquared
	}, &predictedObservationCovariance)

	// kalman gain K = P H^T R^-1
	var observationInverse mat.Dense
	if err := observationInverse.Inverse(&predictedObservationCovariance); err != nil {
		return errors.Wrap(numeric.ErrSingularity, "inverting the predicted observation covariance")
	}
	var kalmanGain mat.Dense
	kalmanGain.Mul(&covarianceInner, &observationInverse)

	innovation := observation - predictedObservationMean.AtVec(0)

	currentStateMean := mat.NewVecDense(s.predictedStateMean.Len(), nil)
	currentStateMean.AddScaledVec(s.predictedStateMean, innovation, kalmanGain.ColView(0))

	// P' = P - K H P
	var observationProjection, gainProjection, currentStateCovariance mat.Dense
	observationProjection.Mul(s.observationMatrix, s.predictedStateCovariance)
	gainProjection.Mul(&kalmanGain, &observationProjection)
	currentStateCovariance.Sub(s.predictedStateCovariance, &gainProjection)

	s.predictedObservationMean = predictedObservationMean
	s.predictedObservationCovariance = mat.DenseCopyOf(&predictedObservationCovariance)
	s.currentStateMean = currentStateMean
	s.currentStateCovariance = mat.DenseCopyOf(&currentStateCovariance)

	s.priorsValid = false
	return nil
}
