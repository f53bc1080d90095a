package trading

import "github.com/pkg/errors"

// ErrNotApplicable is returned when a trading level has no mathematical
// definition for the chosen optimizer, such as stop-loss levels under the
// exponential price map.
var ErrNotApplicable = errors.New("trading level is not defined for this optimizer")
