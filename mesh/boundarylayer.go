// Package mesh derives boundary-layer mesh sizing (first-cell height, layer
// stacks, growth rates) for CFD pre-processing.
package mesh

import (
	"fmt"
	"math"
)

// FirstLayerThickness returns the wall-normal first-cell height y+·μ/(u_fric·ρ) for a target y+.
func FirstLayerThickness(rho, mu, ufric, yplus float64) (float64, error) {
	if ufric == 0. {
		return 0., fmt.Errorf(" mesh.FirstLayerThickness: friction velocity must be non-zero")
	}
	if rho <= 0. {
		return 0., fmt.Errorf(" mesh.FirstLayerThickness: density must be positive, got %g", rho)
	}
	return yplus * mu / (ufric * rho), nil
}

// FirstLayerThicknessBatch sizes several mesh passes at once, one first-cell
// height per y+ value, order preserved.
func FirstLayerThicknessBatch(rho, mu, ufric float64, yplus []float64) ([]float64, error) {
	if len(yplus) == 0 {
		return nil, fmt.Errorf(" mesh.FirstLayerThicknessBatch: no y+ values given")
	}
	ds := make([]float64, len(yplus))
	for i, yp := range yplus {
		d, err := FirstLayerThickness(rho, mu, ufric, yp)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}

// TransitionX returns the streamwise station Re_t·μ/(ρ·u∞) where the boundary
// layer is assumed to trip from laminar to turbulent.
func TransitionX(rho, mu, uinf, reTransition float64) (float64, error) {
	if rho <= 0. {
		return 0., fmt.Errorf(" mesh.TransitionX: density must be positive, got %g", rho)
	}
	if uinf == 0. {
		return 0., fmt.Errorf(" mesh.TransitionX: free-stream velocity must be non-zero")
	}
	return reTransition * mu / (rho * uinf), nil
}

// LaminarThickness returns the Blasius flat-plate boundary-layer thickness 5x/√re.
func LaminarThickness(re, x float64) (float64, error) {
	if re <= 0. {
		return 0., fmt.Errorf(" mesh.LaminarThickness: Reynolds number must be positive, got %g", re)
	}
	return 5. * x / math.Sqrt(re), nil
}

// TurbulentThickness returns the empirical turbulent flat-plate thickness 0.37x/re^0.2.
func TurbulentThickness(re, x float64) (float64, error) {
	if re <= 0. {
		return 0., fmt.Errorf(" mesh.TurbulentThickness: Reynolds number must be positive, got %g", re)
	}
	return 0.37 * x / math.Pow(re, 0.2), nil
}

// Thickness selects the boundary-layer correlation by station: laminar ahead of
// the transition point, turbulent at or beyond it.
func Thickness(rho, mu, uinf, x, re, reTransition float64) (float64, error) {
	xt, err := TransitionX(rho, mu, uinf, reTransition)
	if err != nil {
		return 0., err
	}
	if x >= xt {
		return TurbulentThickness(re, x)
	}
	return LaminarThickness(re, x)
}
