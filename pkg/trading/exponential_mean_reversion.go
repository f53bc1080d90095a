package trading

import (
	"math"

	"github.com/pkg/errors"

	"github.com/c9s/stochmodels/pkg/hittingtime"
	"github.com/c9s/stochmodels/pkg/numeric"
)

// ExponentialMeanReversion optimizes levels of a price that is the
// exponential of the fitted process, so x is a log price and payoffs are
// exp(x) - c. Stop-loss levels have no definition under the exponential
// map and return ErrNotApplicable.
type ExponentialMeanReversion struct{}

func (o *ExponentialMeanReversion) F(k *hittingtime.OrnsteinUhlenbeck, x, r, c float64) (float64, error) {
	return numeric.IntegrateToInf(func(u float64) float64 {
		return k.FCore(x, u, r)
	}, 0)
}

func (o *ExponentialMeanReversion) G(k *hittingtime.OrnsteinUhlenbeck, x, r, c float64) (float64, error) {
	return numeric.IntegrateToInf(func(u float64) float64 {
		return k.GCore(x, u, r)
	}, 0)
}

func (o *ExponentialMeanReversion) LStar(k *hittingtime.OrnsteinUhlenbeck, r, c float64) float64 {
	return k.LStar(r, c)
}

func (o *ExponentialMeanReversion) V(k *hittingtime.OrnsteinUhlenbeck, x, bStar, r, c float64) (float64, error) {
	if x >= bStar {
		return math.Exp(x) - c, nil
	}

	fX, err := o.F(k, x, r, c)
	if err != nil {
		return 0, err
	}
	fBStar, err := o.F(k, bStar, r, c)
	if err != nil {
		return 0, err
	}
	if fBStar == 0 {
		return 0, errors.Wrap(numeric.ErrZeroDivision, "value function normalisation")
	}

	return (math.Exp(bStar) - c) * fX / fBStar, nil
}

func (o *ExponentialMeanReversion) VStopLoss(k *hittingtime.OrnsteinUhlenbeck, x, bStar, stopLoss, r, c float64) (float64, error) {
	return 0, errors.Wrap(ErrNotApplicable, "exponential value function with stop loss")
}

// B is the smooth pasting condition of the exit problem on the price
// scale, exp(x) F(x) - (exp(x) - c) F'(x).
func (o *ExponentialMeanReversion) B(k *hittingtime.OrnsteinUhlenbeck, x, r, c float64) (float64, error) {
	fX, err := o.F(k, x, r, c)
	if err != nil {
		return 0, err
	}

	fPrime, err := derivative(func(y float64) (float64, error) {
		return o.F(k, y, r, c)
	}, x)
	if err != nil {
		return 0, err
	}

	return math.Exp(x)*fX - (math.Exp(x)-c)*fPrime, nil
}

func (o *ExponentialMeanReversion) BStopLoss(k *hittingtime.OrnsteinUhlenbeck, x, stopLoss, r, c float64) (float64, error) {
	return 0, errors.Wrap(ErrNotApplicable, "exponential exit level with stop loss")
}

func (o *ExponentialMeanReversion) D(k *hittingtime.OrnsteinUhlenbeck, x, bStar, r, c float64) (float64, error) {
	gX, err := o.G(k, x, r, c)
	if err != nil {
		return 0, err
	}
	gPrime, err := derivative(func(y float64) (float64, error) {
		return o.G(k, y, r, c)
	}, x)
	if err != nil {
		return 0, err
	}

	vX, err := o.V(k, x, bStar, r, c)
	if err != nil {
		return 0, err
	}
	vPrime, err := derivative(func(y float64) (float64, error) {
		return o.V(k, y, bStar, r, c)
	}, x)
	if err != nil {
		return 0, err
	}

	return gX*(vPrime-math.Exp(x)) - gPrime*(vX-math.Exp(x)-c), nil
}

func (o *ExponentialMeanReversion) DStopLoss(k *hittingtime.OrnsteinUhlenbeck, x, bStar, stopLoss, r, c float64) (float64, error) {
	return 0, errors.Wrap(ErrNotApplicable, "exponential entry level with stop loss")
}

func (o *ExponentialMeanReversion) A(k *hittingtime.OrnsteinUhlenbeck, x, bStar, r, c float64) (float64, error) {
	fX, err := o.F(k, x, r, c)
	if err != nil {
		return 0, err
	}
	fPrime, err := derivative(func(y float64) (float64, error) {
		return o.F(k, y, r, c)
	}, x)
	if err != nil {
		return 0, err
	}

	vX, err := o.V(k, x, bStar, r, c)
	if err != nil {
		return 0, err
	}
	vPrime, err := derivative(func(y float64) (float64, error) {
		return o.V(k, y, bStar, r, c)
	}, x)
	if err != nil {
		return 0, err
	}

	return fX*(vPrime-math.Exp(x)) - fPrime*(vX-math.Exp(x)-c), nil
}

func (o *ExponentialMeanReversion) AStopLoss(k *hittingtime.OrnsteinUhlenbeck, x, bStar, stopLoss, r, c float64) (float64, error) {
	return 0, errors.Wrap(ErrNotApplicable, "exponential lower entry level with stop loss")
}

var _ Optimizer = (*ExponentialMeanReversion)(nil)
