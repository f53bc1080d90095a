package trading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reference values were produced by a high precision offline calculation
// for an OU process with mu=0.3, alpha=8, sigma=0.3 at r=0.05, c=0.02.

func TestOptimalExit(t *testing.T) {
	levels := NewLevels(0.3, 8, 0.3)

	b, err := levels.OptimalExit(0.05, 0.02)
	require.NoError(t, err)
	assert.InDelta(t, 0.466836, b, 1e-4)
}

func TestOptimalExitStopLoss(t *testing.T) {
	levels := NewLevels(0.3, 8, 0.3)

	b, err := levels.OptimalExitStopLoss(0.05, 0.05, 0.02)
	require.NoError(t, err)
	assert.InDelta(t, 0.46912012, b, 1e-4)
}

func TestOptimalEntry(t *testing.T) {
	levels := NewLevels(0.3, 8, 0.3)

	d, err := levels.OptimalEntry(0.466836, 0.05, 0.02)
	require.NoError(t, err)
	assert.InDelta(t, 0.116948, d, 2e-4)
}

func TestOptimalEntryStopLoss(t *testing.T) {
	levels := NewLevels(0.3, 8, 0.3)

	d, err := levels.OptimalEntryStopLoss(0.450895, 0.05, 0.05, 0.02)
	require.NoError(t, err)
	assert.InDelta(t, 0.136755, d, 2e-4)
}

func TestOptimalEntryLowerStopLoss(t *testing.T) {
	levels := NewLevels(0.3, 8, 0.3)

	a, err := levels.OptimalEntryLowerStopLoss(0.136755, 0.450895, 0.05, 0.05, 0.02)
	require.NoError(t, err)
	assert.InDelta(t, 0.118451, a, 2e-4)
}

func TestOptimalEntryLowerWithoutStopLoss(t *testing.T) {
	levels := NewLevels(0.3, 8, 0.3)

	_, err := levels.OptimalEntryLower(0.116948, 0.466836, 0.05, 0.02)
	assert.ErrorIs(t, err, ErrNotApplicable)
}

func TestOptimalEntryNoSolution(t *testing.T) {
	levels := NewLevels(1.818978, 0.000116, 0.006623)

	_, err := levels.OptimalEntry(0.750895, 0.05, 0.02)
	assert.Error(t, err)
}

func TestOptimalExitExponential(t *testing.T) {
	levels := NewExponentialLevels(1.3499, 5, 0.15)

	b, err := levels.OptimalExit(0.05, 0.02)
	require.NoError(t, err)
	assert.InDelta(t, 1.4093, b, 2e-4)
}

func TestOptimalEntryExponential(t *testing.T) {
	levels := NewExponentialLevels(1.3499, 5, 0.15)

	d, err := levels.OptimalEntry(1.4093, 0.05, 0.02)
	require.NoError(t, err)
	assert.InDelta(t, 1.24096, d, 2e-4)
}

func TestOptimalEntryLowerExponential(t *testing.T) {
	levels := NewExponentialLevels(1.3499, 5, 0.15)

	a, err := levels.OptimalEntryLower(1.24096, 1.4093, 0.05, 0.02)
	require.NoError(t, err)
	assert.InDelta(t, 1.16016, a, 2e-4)
}

func TestOptimalExitExponentialNoSolution(t *testing.T) {
	levels := NewExponentialLevels(1.818978, 0.000116, 0.006623)

	_, err := levels.OptimalExit(0.05, 0.02)
	assert.Error(t, err)
}

func TestExponentialStopLossNotApplicable(t *testing.T) {
	levels := NewExponentialLevels(1.3499, 5, 0.15)

	_, err := levels.OptimalExitStopLoss(1.1, 0.05, 0.02)
	assert.ErrorIs(t, err, ErrNotApplicable)

	_, err = levels.OptimalEntryStopLoss(1.4093, 1.1, 0.05, 0.02)
	assert.ErrorIs(t, err, ErrNotApplicable)

	_, err = levels.OptimalEntryLowerStopLoss(1.24096, 1.4093, 1.1, 0.05, 0.02)
	assert.ErrorIs(t, err, ErrNotApplicable)
}

func TestSolverBounds(t *testing.T) {
	levels := NewLevels(0.3, 8, 0.3)

	// L* = (alpha mu + r c) / (r + alpha) dominates the transaction cost here
	assert.InDelta(t, (8*0.3+0.05*0.02)/(8.05), levels.ExitLowerBound(0.05, 0.02), 1e-12)

	assert.Greater(t, levels.ExitUpperBound(), 0.3)
	assert.Less(t, levels.EntryLowerBound(), 0.3)
}
