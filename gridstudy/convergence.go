package gridstudy

import (
	"fmt"

	"github.com/maseology/objfunc"
)

// Convergence summarizes how closely a coarse-grid response series tracks the
// next refinement.
type Convergence struct {
	RMSE, NSE, KGE, Bias float64
}

// Compare scores a coarse-grid series against a refined one. Series must pair
// up one-to-one.
func Compare(coarse, fine []float64) (Convergence, error) {
	if len(coarse) != len(fine) || len(coarse) == 0 {
		return Convergence{}, fmt.Errorf(" gridstudy.Compare: series lengths disagree (%d/%d)", len(coarse), len(fine))
	}
	return Convergence{
		RMSE: objfunc.RMSE(fine, coarse),
		NSE:  objfunc.NSE(fine, coarse),
		KGE:  objfunc.KGE(fine, coarse),
		Bias: objfunc.Bias(fine, coarse),
	}, nil
}

func (c Convergence) String() string {
	return fmt.Sprintf("  KGE: %.3f  NSE: %.3f  RMSE: %.3f  Bias: %.3f", c.KGE, c.NSE, c.RMSE, c.Bias)
}
