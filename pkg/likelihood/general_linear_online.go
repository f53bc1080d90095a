package likelihood

// GeneralLinearUpdater applies O(1) online updates to a fitted general
// linear SDE estimate.
type GeneralLinearUpdater struct {
	components GeneralLinearComponents
	parameters GeneralLinearParameters
	likelihood GeneralLinear
}

func NewGeneralLinearUpdater(components GeneralLinearComponents, parameters GeneralLinearParameters) *GeneralLinearUpdater {
	return &GeneralLinearUpdater{components: components, parameters: parameters}
}

func (u *GeneralLinearUpdater) Parameters() GeneralLinearParameters {
	return u.parameters
}

func (u *GeneralLinearUpdater) Components() GeneralLinearComponents {
	return u.components
}

// Update folds one observation into the running components and recomputes
// the parameters.
func (u *GeneralLinearUpdater) Update(newObservation, lastObservation float64) GeneralLinearParameters {
	u.components = u.likelihood.UpdateComponents(u.components, newObservation, lastObservation)
	u.parameters = u.likelihood.CalculateParameters(u.components)
	return u.parameters
}
