package likelihood

// OrnsteinUhlenbeckUpdater applies O(1) online updates to a fitted OU
// estimate. Feeding it the trailing (new, last) observation pairs of a
// series produces exactly the parameters the batch estimator would have
// produced on the whole series.
type OrnsteinUhlenbeckUpdater struct {
	components OrnsteinUhlenbeckComponents
	parameters OrnsteinUhlenbeckParameters
	likelihood OrnsteinUhlenbeck
}

func NewOrnsteinUhlenbeckUpdater(components OrnsteinUhlenbeckComponents, parameters OrnsteinUhlenbeckParameters) *OrnsteinUhlenbeckUpdater {
	return &OrnsteinUhlenbeckUpdater{components: components, parameters: parameters}
}

func (u *OrnsteinUhlenbeckUpdater) Parameters() OrnsteinUhlenbeckParameters {
	return u.parameters
}

func (u *OrnsteinUhlenbeckUpdater) Components() OrnsteinUhlenbeckComponents {
	return u.components
}

// Update folds one observation into the running components and recomputes
// the closed-form parameters.
func (u *OrnsteinUhlenbeckUpdater) Update(newObservation, lastObservation float64) OrnsteinUhlenbeckParameters {
	u.components = u.likelihood.UpdateComponents(u.components, newObservation, lastObservation)
	u.parameters = u.likelihood.CalculateParameters(u.components)
	return u.parameters
}
