package kalman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const initializedStateBlob = `{"current_state_covariance":[[0.0,0.0,0.0],[0.0,0.0,0.0],[0.0,0.0,0.0]],` +
	`"current_state_mean":[10.288741828687053,0.0,0.0],` +
	`"observation_matrix":[[1.0,0.0,0.0]],"observation_offset":0.0,` +
	`"transition_covariance":[[0.12695229227341848,0.0,0.0],[0.0,0.001,0.0],[0.0,0.0,0.001]],` +
	`"transition_matrix":[[1.0011961162353782,1.0,0.5],[0.0,1.0,1.0],[0.0,0.0,1.0]]}`

func TestUnmarshalState(t *testing.T) {
	state, err := UnmarshalState(initializedStateBlob, DefaultSystemDimensions())
	require.NoError(t, err)

	// a deserialized state is ready for an update cycle
	assert.True(t, state.IsInitialised())
	assert.False(t, state.ArePriorsValid())

	assert.InDelta(t, 1.0011961162353782, state.TransitionMatrix().At(0, 0), 1e-15)
	assert.InDelta(t, 0.12695229227341848, state.TransitionCovariance().At(0, 0), 1e-15)
	assert.InDelta(t, 10.288741828687053, state.CurrentStateMean()[0], 1e-15)
	assert.Equal(t, 1.0, state.ObservationMatrix().At(0, 0))
	assert.Zero(t, state.ObservationOffset())
}

func TestStateRoundTrip(t *testing.T) {
	state, err := UnmarshalState(initializedStateBlob, DefaultSystemDimensions())
	require.NoError(t, err)

	blob, err := MarshalState(state)
	require.NoError(t, err)

	restored, err := UnmarshalState(blob, DefaultSystemDimensions())
	require.NoError(t, err)

	assert.Equal(t, state.CurrentStateMean(), restored.CurrentStateMean())
	assert.Equal(t, state.TransitionMatrix().RawMatrix().Data,
		restored.TransitionMatrix().RawMatrix().Data)
	assert.Equal(t, state.TransitionCovariance().RawMatrix().Data,
		restored.TransitionCovariance().RawMatrix().Data)
}

func TestUnmarshalStateErrors(t *testing.T) {
	dims := DefaultSystemDimensions()

	_, err := UnmarshalState("not json", dims)
	assert.ErrorIs(t, err, ErrStateParse)

	_, err = UnmarshalState(`{"current_state_mean":[1.0,0.0,0.0]}`, dims)
	assert.ErrorIs(t, err, ErrStateParse)

	// declared dimensions do not match the blob
	small := dims
	small.StateMeanDimension = 2
	_, err = UnmarshalState(initializedStateBlob, small)
	assert.ErrorIs(t, err, ErrStateParse)
}

func TestSystemDimensionsRoundTrip(t *testing.T) {
	dims := DefaultSystemDimensions()

	blob, err := MarshalSystemDimensions(dims)
	require.NoError(t, err)

	restored, err := UnmarshalSystemDimensions(blob)
	require.NoError(t, err)
	assert.Equal(t, dims, restored)

	_, err = UnmarshalSystemDimensions("{")
	assert.ErrorIs(t, err, ErrStateParse)
}

func TestUpdateFromSerializedState(t *testing.T) {
	state, err := UnmarshalState(initializedStateBlob, DefaultSystemDimensions())
	require.NoError(t, err)

	kc := NewKineticComponents(DefaultSystemDimensions())
	kc.SetFilterState(state)

	require.NoError(t, kc.UpdatePriors())
	require.NoError(t, kc.UpdatePosteriors(10.3, 0.1))

	mean := kc.CurrentState()
	assert.InDelta(t, 10.3000765492722, mean[0], 1e-12)
	assert.InDelta(t, 0.009269818720519449,
		kc.FilterState().CurrentStateCovariance().At(0, 0), 1e-12)
}
