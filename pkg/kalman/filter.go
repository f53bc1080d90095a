package kalman

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "kalman")

// KineticComponents drives the two phase predict and update cycle of the
// filter over a States instance.
type KineticComponents struct {
	filterState *States
}

func NewKineticComponents(dimensions SystemDimensions) *KineticComponents {
	return &KineticComponents{filterState: NewStates(dimensions)}
}

func (k *KineticComponents) SetFilterState(state *States) {
	k.filterState = state
}

func (k *KineticComponents) FilterState() *States {
	return k.filterState
}

func (k *KineticComponents) IsInitialised() bool {
	return k.filterState.IsInitialised()
}

func (k *KineticComponents) IsPriorStateValid() bool {
	return k.filterState.ArePriorsValid()
}

// CurrentState returns the posterior position, velocity and acceleration
// estimates.
func (k *KineticComponents) CurrentState() []float64 {
	return k.filterState.CurrentStateMean()
}

// InitializeFilter fits the filter to the data series.
func (k *KineticComponents) InitializeFilter(dataSeries []float64, h, q float64) error {
	if err := k.filterState.SetInitialState(dataSeries, h, q); err != nil {
		log.WithError(err).Errorf("can not initialise the kinetic components filter")
		return err
	}
	return nil
}

// UpdatePriors runs the prediction phase.
func (k *KineticComponents) UpdatePriors() error {
	if err := k.filterState.UpdatePredictedState(); err != nil {
		err = errors.Wrap(err, "updating the prior kinetic components state")
		log.WithError(err).Errorf("can not update the filter priors")
		return err
	}
	return nil
}

// UpdatePosteriors runs the correction phase with one observation.
func (k *KineticComponents) UpdatePosteriors(observation, innovationSigma float64) error {
	if err := k.filterState.UpdateCurrentState(observation, innovationSigma); err != nil {
		err = errors.Wrap(err, "updating the posterior kinetic components state")
		log.WithError(err).Errorf("can not update the filter posteriors")
		return err
	}
	return nil
}
