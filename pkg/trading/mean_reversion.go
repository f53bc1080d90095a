package trading

import (
	"github.com/pkg/errors"

	"github.com/c9s/stochmodels/pkg/hittingtime"
	"github.com/c9s/stochmodels/pkg/numeric"
)

// MeanReversion optimizes levels quoted directly in the process units.
type MeanReversion struct{}

func (o *MeanReversion) F(k *hittingtime.OrnsteinUhlenbeck, x, r, c float64) (float64, error) {
	return numeric.IntegrateToInf(func(u float64) float64 {
		return k.FCore(x, u, r)
	}, 0)
}

func (o *MeanReversion) G(k *hittingtime.OrnsteinUhlenbeck, x, r, c float64) (float64, error) {
	return numeric.IntegrateToInf(func(u float64) float64 {
		return k.GCore(x, u, r)
	}, 0)
}

func (o *MeanReversion) LStar(k *hittingtime.OrnsteinUhlenbeck, r, c float64) float64 {
	return k.LStar(r, c)
}

// V is (bStar - c) F(x) / F(bStar) below the exit level and the immediate
// liquidation value x - c at or above it.
func (o *MeanReversion) V(k *hittingtime.OrnsteinUhlenbeck, x, bStar, r, c float64) (float64, error) {
	if x >= bStar {
		return x - c, nil
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

	return (bStar - c) * fX / fBStar, nil
}

// VStopLoss expands the holding value in both eigenfunctions so that the
// boundary conditions at bStar and at the stop loss hold simultaneously.
func (o *MeanReversion) VStopLoss(k *hittingtime.OrnsteinUhlenbeck, x, bStar, stopLoss, r, c float64) (float64, error) {
	if x >= bStar || x <= stopLoss {
		return x - c, nil
	}

	fL, err := o.F(k, stopLoss, r, c)
	if err != nil {
		return 0, err
	}
	fBStar, err := o.F(k, bStar, r, c)
	if err != nil {
		return 0, err
	}
	gL, err := o.G(k, stopLoss, r, c)
	if err != nil {
		return 0, err
	}
	gBStar, err := o.G(k, bStar, r, c)
	if err != nil {
		return 0, err
	}

	det := fBStar*gL - fL*gBStar
	if det == 0 {
		return 0, errors.Wrap(numeric.ErrZeroDivision, "value function boundary system")
	}

	cf := ((bStar-c)*gL - (stopLoss-c)*gBStar) / det
	cg := ((stopLoss-c)*fBStar - (bStar-c)*fL) / det

	fX, err := o.F(k, x, r, c)
	if err != nil {
		return 0, err
	}
	gX, err := o.G(k, x, r, c)
	if err != nil {
		return 0, err
	}

	return cf*fX + cg*gX, nil
}

// B is the smooth pasting condition F(x) - (x - c) F'(x) of the exit
// problem.
func (o *MeanReversion) B(k *hittingtime.OrnsteinUhlenbeck, x, r, c float64) (float64, error) {
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

	return fX - (x-c)*fPrime, nil
}

// BStopLoss is the smooth pasting condition of the exit problem with a
// forced liquidation boundary.
func (o *MeanReversion) BStopLoss(k *hittingtime.OrnsteinUhlenbeck, x, stopLoss, r, c float64) (float64, error) {
	fL, err := o.F(k, stopLoss, r, c)
	if err != nil {
		return 0, err
	}
	fX, err := o.F(k, x, r, c)
	if err != nil {
		return 0, err
	}
	gL, err := o.G(k, stopLoss, r, c)
	if err != nil {
		return 0, err
	}
	gX, err := o.G(k, x, r, c)
	if err != nil {
		return 0, err
	}

	fPrime, err := derivative(func(y float64) (float64, error) {
		return o.F(k, y, r, c)
	}, x)
	if err != nil {
		return 0, err
	}
	gPrime, err := derivative(func(y float64) (float64, error) {
		return o.G(k, y, r, c)
	}, x)
	if err != nil {
		return 0, err
	}

	return ((stopLoss-c)*gX-(x-c)*gL)*fPrime +
		((x-c)*fL-(stopLoss-c)*fX)*gPrime -
		(gX*fL - gL*fX), nil
}

// D matches the marginal value of waiting against the marginal cost of
// entering at x.
func (o *MeanReversion) D(k *hittingtime.OrnsteinUhlenbeck, x, bStar, r, c float64) (float64, error) {
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

	return gX*(vPrime-1) - gPrime*(vX-x-c), nil
}

func (o *MeanReversion) DStopLoss(k *hittingtime.OrnsteinUhlenbeck, x, bStar, stopLoss, r, c float64) (float64, error) {
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

	vX, err := o.VStopLoss(k, x, bStar, stopLoss, r, c)
	if err != nil {
		return 0, err
	}
	vPrime, err := derivative(func(y float64) (float64, error) {
		return o.VStopLoss(k, y, bStar, stopLoss, r, c)
	}, x)
	if err != nil {
		return 0, err
	}

	return gX*(vPrime-1) - gPrime*(vX-x-c), nil
}

// A has no definition without a stop loss: the entry region of the plain
// problem is unbounded from below.
func (o *MeanReversion) A(k *hittingtime.OrnsteinUhlenbeck, x, bStar, r, c float64) (float64, error) {
	return 0, errors.Wrap(ErrNotApplicable, "lower entry level without stop loss")
}

func (o *MeanReversion) AStopLoss(k *hittingtime.OrnsteinUhlenbeck, x, bStar, stopLoss, r, c float64) (float64, error) {
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

	vX, err := o.VStopLoss(k, x, bStar, stopLoss, r, c)
	if err != nil {
		return 0, err
	}
	vPrime, err := derivative(func(y float64) (float64, error) {
		return o.VStopLoss(k, y, bStar, stopLoss, r, c)
	}, x)
	if err != nil {
		return 0, err
	}

	return fX*(vPrime-1) - fPrime*(vX-x-c), nil
}

var _ Optimizer = (*MeanReversion)(nil)
