package kalman

import "github.com/pkg/errors"

var (
	// ErrNotInitialized is returned when a filter operation runs before the
	// state has been initialised from a data series or a serialized blob.
	ErrNotInitialized = errors.New("the kinetic components filter has not been initialised")

	// ErrInvalidOperation is returned when a posterior update runs without
	// a fresh prior prediction.
	ErrInvalidOperation = errors.New("the filter priors must be updated before a posterior update")

	// ErrStateParse is returned when a serialized filter state cannot be
	// decoded or does not match the declared system dimensions.
	ErrStateParse = errors.New("cannot parse the serialized filter state")
)
