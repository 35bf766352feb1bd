package mesh

import (
	"github.com/mscotty/CFD-stuff/atmosphere"
	"github.com/mscotty/CFD-stuff/fluid"
)

// Sizing collects everything the mesher needs from one pass: the layer stacks
// (one per y+), the boundary-layer thickness at the station, the first-cell
// heights, and the intermediate skin-friction state for reporting.
type Sizing struct {
	Stacks []Stack
	Delta  float64   // boundary-layer thickness at the station [m]
	DeltaS []float64 // first-cell heights, one per y+ [m]
	YPlus  []float64
	State  fluid.State
}

// conditions runs atmosphere and the skin-friction chain, then the
// boundary-layer thickness at station x.
func conditions(altM, uinf, l, x, reTransition float64) (rho, mu, delta float64, st fluid.State, err error) {
	atm := atmosphere.New(altM)
	rho, mu = atm.Density, atm.DynamicViscosity
	st, err = fluid.Chain(rho, mu, uinf, l)
	if err != nil {
		return
	}
	delta, err = Thickness(rho, mu, uinf, x, st.Re, reTransition)
	return
}

// FindLayers is the full sizing pipeline: ISA properties at altitude, the
// skin-friction chain, first-cell heights for each target y+, the
// boundary-layer thickness at station x, and a grown stack per y+.
func FindLayers(altM, uinf, l float64, yplus []float64, x, reTransition, growthFactor float64) (Sizing, error) {
	rho, mu, delta, st, err := conditions(altM, uinf, l, x, reTransition)
	if err != nil {
		return Sizing{}, err
	}
	ds, err := FirstLayerThicknessBatch(rho, mu, st.Ufric, yplus)
	if err != nil {
		return Sizing{}, err
	}
	stks, err := GrowLayersBatch(ds, delta, growthFactor)
	if err != nil {
		return Sizing{}, err
	}
	return Sizing{Stacks: stks, Delta: delta, DeltaS: ds, YPlus: yplus, State: st}, nil
}

// FindLayersGivenFirstLayer sizes from prescribed first-cell heights instead,
// back-computing the y+ each height realizes.
func FindLayersGivenFirstLayer(altM, uinf, l float64, deltaS []float64, x, reTransition, growthFactor float64) (Sizing, error) {
	rho, mu, delta, st, err := conditions(altM, uinf, l, x, reTransition)
	if err != nil {
		return Sizing{}, err
	}
	yp := make([]float64, len(deltaS))
	for i, ds := range deltaS {
		if yp[i], err = fluid.YPlus(ds, st.Ufric, rho, mu); err != nil {
			return Sizing{}, err
		}
	}
	stks, err := GrowLayersBatch(deltaS, delta, growthFactor)
	if err != nil {
		return Sizing{}, err
	}
	return Sizing{Stacks: stks, Delta: delta, DeltaS: deltaS, YPlus: yp, State: st}, nil
}

// FindLayersGivenCount fixes the layer count and searches the growth factor
// per y+ instead. Returns the sizing and the growth factor found per element.
func FindLayersGivenCount(altM, uinf, l float64, yplus []float64, x float64, layers int, reTransition float64) (Sizing, []float64, error) {
	rho, mu, delta, st, err := conditions(altM, uinf, l, x, reTransition)
	if err != nil {
		return Sizing{}, nil, err
	}
	ds, err := FirstLayerThicknessBatch(rho, mu, st.Ufric, yplus)
	if err != nil {
		return Sizing{}, nil, err
	}
	gfs := make([]float64, len(ds))
	stks := make([]Stack, len(ds))
	for i, d := range ds {
		if gfs[i], err = GrowthForLayerCount(d, delta, layers); err != nil {
			return Sizing{}, nil, err
		}
		if stks[i], err = GrowLayers(d, delta, gfs[i]); err != nil {
			return Sizing{}, nil, err
		}
	}
	return Sizing{Stacks: stks, Delta: delta, DeltaS: ds, YPlus: yplus, State: st}, gfs, nil
}
