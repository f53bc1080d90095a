package likelihood

import "github.com/pkg/errors"

// ErrInsufficientObservations is returned when a series with fewer than two
// samples is handed to a component calculator.
var ErrInsufficientObservations = errors.New("number of observations must be greater than 1")
