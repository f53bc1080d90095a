// Package stochmodels is the flat entry point surface of the library. Each
// function assembles the underlying model, estimator or solver and returns
// plain values, so callers do not have to hold the intermediate objects.
package stochmodels

import (
	"github.com/c9s/stochmodels/pkg/hittingtime"
	"github.com/c9s/stochmodels/pkg/kalman"
	"github.com/c9s/stochmodels/pkg/likelihood"
	"github.com/c9s/stochmodels/pkg/sde"
	"github.com/c9s/stochmodels/pkg/trading"
)

// SimulateOrnsteinUhlenbeck simulates a path of size points starting at
// start with step dt.
func SimulateOrnsteinUhlenbeck(mu, alpha, sigma, start float64, size int, dt float64) []float64 {
	return sde.NewOrnsteinUhlenbeck(mu, alpha, sigma).Simulate(start, size, dt)
}

// OrnsteinUhlenbeckMaximumLikelihood fits the OU parameters to the series
// and returns them with the sufficient statistics, so callers can resume
// the fit online.
func OrnsteinUhlenbeckMaximumLikelihood(series []float64) (likelihood.OrnsteinUhlenbeckParameters, likelihood.OrnsteinUhlenbeckComponents, error) {
	var calc likelihood.OrnsteinUhlenbeck

	components, err := calc.CalculateComponents(series)
	if err != nil {
		return likelihood.OrnsteinUhlenbeckParameters{}, likelihood.OrnsteinUhlenbeckComponents{}, err
	}
	return calc.CalculateParameters(components), components, nil
}

// UpdateOrnsteinUhlenbeck folds one observation into a previous OU fit.
func UpdateOrnsteinUhlenbeck(
	components likelihood.OrnsteinUhlenbeckComponents,
	parameters likelihood.OrnsteinUhlenbeckParameters,
	newObservation, lastObservation float64,
) (likelihood.OrnsteinUhlenbeckParameters, likelihood.OrnsteinUhlenbeckComponents) {
	updater := likelihood.NewOrnsteinUhlenbeckUpdater(components, parameters)
	params := updater.Update(newObservation, lastObservation)
	return params, updater.Components()
}

// GeneralLinearMaximumLikelihood fits the general linear SDE parameters to
// the series and returns them with the sufficient statistics.
func GeneralLinearMaximumLikelihood(series []float64) (likelihood.GeneralLinearParameters, likelihood.GeneralLinearComponents, error) {
	var calc likelihood.GeneralLinear

	components, err := calc.CalculateComponents(series)
	if err != nil {
		return likelihood.GeneralLinearParameters{}, likelihood.GeneralLinearComponents{}, err
	}
	return calc.CalculateParameters(components), components, nil
}

// UpdateGeneralLinearSDE folds one observation into a previous general
// linear fit.
func UpdateGeneralLinearSDE(
	components likelihood.GeneralLinearComponents,
	parameters likelihood.GeneralLinearParameters,
	newObservation, lastObservation float64,
) (likelihood.GeneralLinearParameters, likelihood.GeneralLinearComponents) {
	updater := likelihood.NewGeneralLinearUpdater(components, parameters)
	params := updater.Update(newObservation, lastObservation)
	return params, updater.Components()
}

// HittingTimeDensityOrnsteinUhlenbeck returns the probability that the
// process started at x hits upper before lower.
func HittingTimeDensityOrnsteinUhlenbeck(x, mu, alpha, sigma, upper, lower float64) (float64, error) {
	return hittingtime.NewOrnsteinUhlenbeck(mu, alpha, sigma).Density(x, upper, lower)
}

// OptimalExitLevel solves for the optimal liquidation level b*.
func OptimalExitLevel(mu, alpha, sigma, r, c float64) (float64, error) {
	return trading.NewLevels(mu, alpha, sigma).OptimalExit(r, c)
}

// OptimalExitLevelStopLoss solves for b* under a forced liquidation level.
func OptimalExitLevelStopLoss(mu, alpha, sigma, stopLoss, r, c float64) (float64, error) {
	return trading.NewLevels(mu, alpha, sigma).OptimalExitStopLoss(stopLoss, r, c)
}

// OptimalExitLevelExponential solves for b* of the exponential of the
// process, quoted as a log price.
func OptimalExitLevelExponential(mu, alpha, sigma, r, c float64) (float64, error) {
	return trading.NewExponentialLevels(mu, alpha, sigma).OptimalExit(r, c)
}

// OptimalEntryLevel solves for the optimal entry level d* given b*.
func OptimalEntryLevel(bStar, mu, alpha, sigma, r, c float64) (float64, error) {
	return trading.NewLevels(mu, alpha, sigma).OptimalEntry(bStar, r, c)
}

func OptimalEntryLevelStopLoss(bStar, mu, alpha, sigma, stopLoss, r, c float64) (float64, error) {
	return trading.NewLevels(mu, alpha, sigma).OptimalEntryStopLoss(bStar, stopLoss, r, c)
}

func OptimalEntryLevelExponential(bStar, mu, alpha, sigma, r, c float64) (float64, error) {
	return trading.NewExponentialLevels(mu, alpha, sigma).OptimalEntry(bStar, r, c)
}

// OptimalEntryLevelLower solves for the lower boundary a* of the entry
// region given d* and b*.
func OptimalEntryLevelLower(dStar, bStar, mu, alpha, sigma, r, c float64) (float64, error) {
	return trading.NewLevels(mu, alpha, sigma).OptimalEntryLower(dStar, bStar, r, c)
}

func OptimalEntryLevelLowerStopLoss(dStar, bStar, mu, alpha, sigma, stopLoss, r, c float64) (float64, error) {
	return trading.NewLevels(mu, alpha, sigma).OptimalEntryLowerStopLoss(dStar, bStar, stopLoss, r, c)
}

func OptimalEntryLevelLowerExponential(dStar, bStar, mu, alpha, sigma, r, c float64) (float64, error) {
	return trading.NewExponentialLevels(mu, alpha, sigma).OptimalEntryLower(dStar, bStar, r, c)
}

// GetInitializedKCAState fits the kinetic components filter to the series
// and returns its serialized state.
func GetInitializedKCAState(dataSeries []float64, h, q float64, systemDimensions string) (string, error) {
	dimensions, err := kalman.UnmarshalSystemDimensions(systemDimensions)
	if err != nil {
		return "", err
	}

	kc := kalman.NewKineticComponents(dimensions)
	if err := kc.InitializeFilter(dataSeries, h, q); err != nil {
		return "", err
	}

	return kalman.MarshalState(kc.FilterState())
}

// GetUpdatedKCAState runs one predict and correct cycle on a serialized
// filter state and returns the updated state.
func GetUpdatedKCAState(state, systemDimensions string, observation, innovationSigma float64) (string, error) {
	dimensions, err := kalman.UnmarshalSystemDimensions(systemDimensions)
	if err != nil {
		return "", err
	}

	filterState, err := kalman.UnmarshalState(state, dimensions)
	if err != nil {
		return "", err
	}

	kc := kalman.NewKineticComponents(dimensions)
	kc.SetFilterState(filterState)

	if err := kc.UpdatePriors(); err != nil {
		return "", err
	}
	if err := kc.UpdatePosteriors(observation, innovationSigma); err != nil {
		return "", err
	}

	return kalman.MarshalState(kc.FilterState())
}
