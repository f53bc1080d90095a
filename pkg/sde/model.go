package sde

// StochasticModel is a one-dimensional stochastic process that can report
// its stationary moments and simulate a discretised path.
type StochasticModel interface {
	// Mean returns the long-run mean of the process.
	Mean() float64

	// UnconditionalVariance returns the stationary variance of the process.
	UnconditionalVariance() float64

	// Simulate produces a path of n samples starting at start with time
	// step dt between consecutive samples.
	Simulate(start float64, n int, dt float64) []float64
}
