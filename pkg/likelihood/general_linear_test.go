package likelihood

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generalLinearSeries = []float64{
	1094.1, 1104.1, 1107.7, 1123.6, 1115.6,
	1112.7, 1118.4, 1116.9, 1127.9, 1153.2,
	1159.6, 1153.6, 1138.3, 1124.6, 1122.6,
	1134.0, 1132.5, 1139.8, 1133.6, 1124.5,
}

func TestGeneralLinearParameters(t *testing.T) {
	var likelihood GeneralLinear
	components, err := likelihood.CalculateComponents(generalLinearSeries)
	require.NoError(t, err)

	params := likelihood.CalculateParameters(components)
	assert.InDelta(t, -0.00143647, params.Mu, 1e-5)
	assert.InDelta(t, 10.4573, params.Sigma, 1e-4)
}

func TestGeneralLinearInsufficientObservations(t *testing.T) {
	var likelihood GeneralLinear

	_, err := likelihood.CalculateComponents([]float64{1.0})
	assert.ErrorIs(t, err, ErrInsufficientObservations)
}

func TestGeneralLinearUpdate(t *testing.T) {
	var likelihood GeneralLinear
	components, err := likelihood.CalculateComponents(generalLinearSeries)
	require.NoError(t, err)

	updater := NewGeneralLinearUpdater(components, likelihood.CalculateParameters(components))

	params := updater.Update(1125.25, 1124.5)
	assert.InDelta(t, -0.00133194, params.Mu, 1e-5)
	assert.InDelta(t, 10.2165, params.Sigma, 1e-4)

	assert.Equal(t, uint32(len(generalLinearSeries)+1), updater.Components().NObs)
}

func TestGeneralLinearConditionalVariance(t *testing.T) {
	var likelihood GeneralLinear
	params := GeneralLinearParameters{Mu: 0.2, Sigma: 0.5}

	want := (2 * 0.5 * 0.2) / (math.Exp(0.4) - math.Exp(0.2))
	assert.InDelta(t, want, likelihood.ConditionalVariance(params), 1e-12)
}
