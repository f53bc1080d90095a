package trading

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/c9s/stochmodels/pkg/hittingtime"
	"github.com/c9s/stochmodels/pkg/numeric"
	"github.com/c9s/stochmodels/pkg/sde"
)

var log = logrus.WithField("component", "trading")

// Levels solves the first order conditions of an Optimizer over brackets
// derived from the fitted process moments.
type Levels struct {
	optimizer Optimizer
	model     *sde.OrnsteinUhlenbeck
	kernel    *hittingtime.OrnsteinUhlenbeck
}

// NewLevels builds a solver for levels quoted in the process units.
func NewLevels(mu, alpha, sigma float64) *Levels {
	return &Levels{
		optimizer: &MeanReversion{},
		model:     sde.NewOrnsteinUhlenbeck(mu, alpha, sigma),
		kernel:    hittingtime.NewOrnsteinUhlenbeck(mu, alpha, sigma),
	}
}

// NewExponentialLevels builds a solver for levels of the exponential of
// the process, with inputs quoted as log prices.
func NewExponentialLevels(mu, alpha, sigma float64) *Levels {
	return &Levels{
		optimizer: &ExponentialMeanReversion{},
		model:     sde.NewOrnsteinUhlenbeck(mu, alpha, sigma),
		kernel:    hittingtime.NewOrnsteinUhlenbeck(mu, alpha, sigma),
	}
}

func (l *Levels) Optimizer() Optimizer { return l.optimizer }

func (l *Levels) Kernel() *hittingtime.OrnsteinUhlenbeck { return l.kernel }

// ExitLowerBound floors the exit bracket at the break-even level and the
// transaction cost.
func (l *Levels) ExitLowerBound(r, c float64) float64 {
	return math.Max(l.optimizer.LStar(l.kernel, r, c), c)
}

// ExitUpperBound caps the exit bracket four stationary deviations above
// the mean.
func (l *Levels) ExitUpperBound() float64 {
	return l.model.Mean() + 4*math.Sqrt(l.model.UnconditionalVariance())
}

// EntryLowerBound floors the entry bracket four stationary deviations
// below the mean.
func (l *Levels) EntryLowerBound() float64 {
	return l.model.Mean() - 4*math.Sqrt(l.model.UnconditionalVariance())
}

// OptimalExit solves for the level at which an open position is closed.
func (l *Levels) OptimalExit(r, c float64) (float64, error) {
	return l.solve("exit", l.ExitLowerBound(r, c), l.ExitUpperBound(),
		func(x float64) (float64, error) {
			return l.optimizer.B(l.kernel, x, r, c)
		})
}

// OptimalExitStopLoss solves for the exit level of a position carrying a
// forced liquidation at stopLoss.
func (l *Levels) OptimalExitStopLoss(stopLoss, r, c float64) (float64, error) {
	return l.solve("exit", l.ExitLowerBound(r, c), l.ExitUpperBound(),
		func(x float64) (float64, error) {
			return l.optimizer.BStopLoss(l.kernel, x, stopLoss, r, c)
		})
}

// OptimalEntry solves for the level at which the position is opened, given
// the exit level bStar.
func (l *Levels) OptimalEntry(bStar, r, c float64) (float64, error) {
	return l.solve("entry", l.EntryLowerBound(), bStar,
		func(x float64) (float64, error) {
			return l.optimizer.D(l.kernel, x, bStar, r, c)
		})
}

func (l *Levels) OptimalEntryStopLoss(bStar, stopLoss, r, c float64) (float64, error) {
	return l.solve("entry", stopLoss, bStar,
		func(x float64) (float64, error) {
			return l.optimizer.DStopLoss(l.kernel, x, bStar, stopLoss, r, c)
		})
}

// OptimalEntryLower solves for the lower boundary of the entry region,
// given the entry level dStar and the exit level bStar.
func (l *Levels) OptimalEntryLower(dStar, bStar, r, c float64) (float64, error) {
	return l.solve("entry lower", l.EntryLowerBound(), dStar,
		func(x float64) (float64, error) {
			return l.optimizer.A(l.kernel, x, bStar, r, c)
		})
}

func (l *Levels) OptimalEntryLowerStopLoss(dStar, bStar, stopLoss, r, c float64) (float64, error) {
	return l.solve("entry lower", stopLoss, dStar,
		func(x float64) (float64, error) {
			return l.optimizer.AStopLoss(l.kernel, x, bStar, stopLoss, r, c)
		})
}

func (l *Levels) solve(name string, lower, upper float64, eq func(x float64) (float64, error)) (float64, error) {
	var inner error
	root, err := numeric.BrentRoot(func(x float64) float64 {
		v, e := eq(x)
		if e != nil {
			inner = e
			return math.NaN()
		}
		return v
	}, lower, upper)

	if inner != nil {
		err = errors.Wrapf(inner, "%s level equation", name)
		log.WithError(err).Errorf("can not solve the %s level", name)
		return 0, err
	}
	if err != nil {
		err = errors.Wrapf(err, "%s level in [%v, %v]", name, lower, upper)
		log.WithError(err).Errorf("can not solve the %s level", name)
		return 0, err
	}

	log.WithFields(logrus.Fields{
		"level": name,
		"root":  root,
		"lower": lower,
		"upper": upper,
	}).Debug("trading level solved")
	return root, nil
}
