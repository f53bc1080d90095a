package kalman

import (
	"encoding/json"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// stateBlob is the wire form of a filter state. Field order matches the
// alphabetical key order of the blobs emitted by downstream consumers.
type stateBlob struct {
	CurrentStateCovariance [][]float64 `json:"current_state_covariance"`
	CurrentStateMean       []float64   `json:"current_state_mean"`
	ObservationMatrix      [][]float64 `json:"observation_matrix"`
	ObservationOffset      float64     `json:"observation_offset"`
	TransitionCovariance   [][]float64 `json:"transition_covariance"`
	TransitionMatrix       [][]float64 `json:"transition_matrix"`
}

// MarshalState serializes the persistent part of the filter state. The
// prior prediction is transient and is not carried in the blob.
func MarshalState(s *States) (string, error) {
	blob := stateBlob{
		CurrentStateCovariance: denseToRows(s.currentStateCovariance),
		CurrentStateMean:       s.CurrentStateMean(),
		ObservationMatrix:      denseToRows(s.observationMatrix),
		ObservationOffset:      s.observationOffset,
		TransitionCovariance:   denseToRows(s.transitionCovariance),
		TransitionMatrix:       denseToRows(s.transitionMatrix),
	}

	out, err := json.Marshal(blob)
	if err != nil {
		return "", errors.Wrap(err, "serializing the filter state")
	}
	return string(out), nil
}

// UnmarshalState decodes a state blob, validates it against the declared
// dimensions and returns an initialised state ready for an update cycle.
func UnmarshalState(state string, dimensions SystemDimensions) (*States, error) {
	var blob stateBlob
	if err := json.Unmarshal([]byte(state), &blob); err != nil {
		return nil, errors.Wrap(ErrStateParse, err.Error())
	}

	if blob.CurrentStateMean == nil || blob.CurrentStateCovariance == nil ||
		blob.TransitionMatrix == nil || blob.TransitionCovariance == nil ||
		blob.ObservationMatrix == nil {
		return nil, errors.Wrap(ErrStateParse, "missing state component")
	}

	s := NewStates(dimensions)

	if len(blob.CurrentStateMean) != dimensions.StateMeanDimension {
		return nil, errors.Wrap(ErrStateParse, "state mean dimension mismatch")
	}
	s.currentStateMean = mat.NewVecDense(dimensions.StateMeanDimension, blob.CurrentStateMean)

	var err error
	if s.currentStateCovariance, err = rowsToDense(blob.CurrentStateCovariance,
		dimensions.StateCovarianceRows, dimensions.StateCovarianceColumns); err != nil {
		return nil, errors.Wrap(err, "current state covariance")
	}
	if s.transitionMatrix, err = rowsToDense(blob.TransitionMatrix,
		dimensions.StateCovarianceRows, dimensions.StateCovarianceColumns); err != nil {
		return nil, errors.Wrap(err, "transition matrix")
	}
	if s.transitionCovariance, err = rowsToDense(blob.TransitionCovariance,
		dimensions.StateCovarianceRows, dimensions.StateCovarianceColumns); err != nil {
		return nil, errors.Wrap(err, "transition covariance")
	}
	if s.observationMatrix, err = rowsToDense(blob.ObservationMatrix,
		dimensions.ObservationMatrixRows, dimensions.ObservationMatrixColumns); err != nil {
		return nil, errors.Wrap(err, "observation matrix")
	}
	s.observationOffset = blob.ObservationOffset

	s.initialised = true
	return s, nil
}

// MarshalSystemDimensions serializes the system dimensions.
func MarshalSystemDimensions(dimensions SystemDimensions) (string, error) {
	out, err := json.Marshal(dimensions)
	if err != nil {
		return "", errors.Wrap(err, "serializing the system dimensions")
	}
	return string(out), nil
}

// UnmarshalSystemDimensions decodes the system dimensions.
func UnmarshalSystemDimensions(state string) (SystemDimensions, error) {
	var dimensions SystemDimensions
	if err := json.Unmarshal([]byte(state), &dimensions); err != nil {
		return SystemDimensions{}, errors.Wrap(ErrStateParse, err.Error())
	}
	return dimensions, nil
}

func denseToRows(m *mat.Dense) [][]float64 {
	rows, cols := m.Dims()
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			out[i][j] = m.At(i, j)
		}
	}
	return out
}

func rowsToDense(rows [][]float64, wantRows, wantCols int) (*mat.Dense, error) {
	if len(rows) != wantRows {
		return nil, errors.Wrapf(ErrStateParse, "expected %d rows, got %d", wantRows, len(rows))
	}

	out := mat.NewDense(wantRows, wantCols, nil)
	for i, row := range rows {
		if len(row) != wantCols {
			return nil, errors.Wrapf(ErrStateParse, "expected %d columns in row %d, got %d", wantCols, i, len(row))
		}
		out.SetRow(i, row)
	}
	return out, nil
}
