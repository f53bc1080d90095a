package stochmodels

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/stochmodels/pkg/kalman"
	"github.com/c9s/stochmodels/pkg/likelihood"
)

func TestSimulateOrnsteinUhlenbeck(t *testing.T) {
	path := SimulateOrnsteinUhlenbeck(0.3, 8, 0.3, 0.5, 100, 1.0)
	require.Len(t, path, 100)
	assert.Equal(t, 0.5, path[0])
}

func TestOrnsteinUhlenbeckMaximumLikelihood(t *testing.T) {
	params, components, err := OrnsteinUhlenbeckMaximumLikelihood(
		[]float64{0.5, 0.25, 0.5, 0.75, 1.5, 0.5})
	require.NoError(t, err)

	assert.InDelta(t, 0.58333333, params.Mu, 1e-8)
	assert.InDelta(t, 1.06784063, params.Alpha, 1e-8)
	assert.InDelta(t, 0.15277777, params.Sigma, 1e-8)
	assert.Equal(t, uint32(6), components.NObs)

	_, _, err = OrnsteinUhlenbeckMaximumLikelihood([]float64{0.5})
	assert.ErrorIs(t, err, likelihood.ErrInsufficientObservations)
}

func TestUpdateOrnsteinUhlenbeck(t *testing.T) {
	series := []float64{0.5, 0.25, 0.5, 0.75, 1.5, 0.5}
	params, components, err := OrnsteinUhlenbeckMaximumLikelihood(series)
	require.NoError(t, err)

	updatedParams, updatedComponents := UpdateOrnsteinUhlenbeck(
		components, params, 0.75, series[len(series)-1])
	assert.Equal(t, uint32(7), updatedComponents.NObs)

	batchParams, _, err := OrnsteinUhlenbeckMaximumLikelihood(append(series, 0.75))
	require.NoError(t, err)
	assert.InDelta(t, batchParams.Mu, updatedParams.Mu, 1e-12)
	assert.InDelta(t, batchParams.Alpha, updatedParams.Alpha, 1e-12)
	assert.InDelta(t, batchParams.Sigma, updatedParams.Sigma, 1e-12)
}

func TestGeneralLinearMaximumLikelihoodAndUpdate(t *testing.T) {
	series := []float64{
		1094.1, 1104.1, 1107.7, 1123.6, 1115.6,
		1112.7, 1118.4, 1116.9, 1127.9, 1153.2,
		1159.6, 1153.6, 1138.3, 1124.6, 1122.6,
		1134.0, 1132.5, 1139.8, 1133.6, 1124.5,
	}

	params, components, err := GeneralLinearMaximumLikelihood(series)
	require.NoError(t, err)
	assert.InDelta(t, -0.00143647, params.Mu, 1e-5)
	assert.InDelta(t, 10.4573, params.Sigma, 1e-4)

	updatedParams, updatedComponents := UpdateGeneralLinearSDE(
		components, params, 1125.25, 1124.5)
	assert.InDelta(t, -0.00133194, updatedParams.Mu, 1e-5)
	assert.InDelta(t, 10.2165, updatedParams.Sigma, 1e-4)
	assert.Equal(t, uint32(21), updatedComponents.NObs)
}

func TestHittingTimeDensityOrnsteinUhlenbeck(t *testing.T) {
	p, err := HittingTimeDensityOrnsteinUhlenbeck(1.02, 0.998, 0.0045, 0.0038, 1.04, 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 0.43046005, p, 1e-6)
}

func TestOptimalLevels(t *testing.T) {
	b, err := OptimalExitLevel(0.3, 8, 0.3, 0.05, 0.02)
	require.NoError(t, err)
	assert.InDelta(t, 0.466836, b, 1e-4)

	d, err := OptimalEntryLevel(b, 0.3, 8, 0.3, 0.05, 0.02)
	require.NoError(t, err)
	assert.InDelta(t, 0.116948, d, 2e-4)
}

func TestKCAStateEntryPoints(t *testing.T) {
	series := []float64{
		10.51255, 10.51985, 10.52405, 10.4656,
		10.47, 10.5403, 10.4425, 10.3087,
		10.1994, 10.1839, 10.24645, 10.1795,
		10.21715, 10.14995, 10.194, 10.22505,
		10.27325, 10.25095, 10.30575, 10.27645,
	}

	dimensionsBlob, err := kalman.MarshalSystemDimensions(kalman.DefaultSystemDimensions())
	require.NoError(t, err)

	stateBlob, err := GetInitializedKCAState(series, 1.0, 0.001, dimensionsBlob)
	require.NoError(t, err)

	var state struct {
		CurrentStateMean     []float64   `json:"current_state_mean"`
		TransitionMatrix     [][]float64 `json:"transition_matrix"`
		TransitionCovariance [][]float64 `json:"transition_covariance"`
	}
	require.NoError(t, json.Unmarshal([]byte(stateBlob), &state))
	assert.InDelta(t, 10.288741828687053, state.CurrentStateMean[0], 1e-12)
	assert.InDelta(t, 1.0011961162353782, state.TransitionMatrix[0][0], 1e-12)
	assert.InDelta(t, 0.12695229227341848, state.TransitionCovariance[0][0], 1e-12)

	updatedBlob, err := GetUpdatedKCAState(stateBlob, dimensionsBlob, 10.3, 0.1)
	require.NoError(t, err)

	var updated struct {
		CurrentStateMean       []float64   `json:"current_state_mean"`
		CurrentStateCovariance [][]float64 `json:"current_state_covariance"`
	}
	require.NoError(t, json.Unmarshal([]byte(updatedBlob), &updated))
	assert.InDelta(t, 10.3000765492722, updated.CurrentStateMean[0], 1e-10)
	assert.InDelta(t, 0.009269818720519449, updated.CurrentStateCovariance[0][0], 1e-10)
}
