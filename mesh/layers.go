package mesh

import (
	"fmt"
	"math"

	"github.com/maseology/glbopt"
	"github.com/maseology/mmaths"
)

// Stack is the result of growing mesh layers from a first-cell height δ_s out
// to a target boundary-layer thickness δ. Cum begins with 0 then δ_s and is
// strictly increasing; its last element is the first value to reach δ and
// equals Total.
type Stack struct {
	DeltaS float64   // first-cell height [m]
	Delta  float64   // target boundary-layer thickness [m]
	Total  float64   // thickness reached once the stack covers δ [m]
	Cum    []float64 // cumulative thickness per layer [m]
}

// Layers returns the number of grown cells in the stack.
func (s *Stack) Layers() int { return len(s.Cum) - 1 }

// GrowLayers grows a layer stack: starting from δ_s the running thickness is
// inflated by (1+growthFactor) per layer until it reaches or exceeds δ.
// growthFactor must be positive or the stack would never terminate.
func GrowLayers(deltaS, delta, growthFactor float64) (Stack, error) {
	if growthFactor <= 0. {
		return Stack{}, fmt.Errorf(" mesh.GrowLayers: growth factor must be positive, got %g", growthFactor)
	}
	if deltaS <= 0. {
		return Stack{}, fmt.Errorf(" mesh.GrowLayers: first-layer thickness must be positive, got %g", deltaS)
	}
	if delta <= 0. {
		return Stack{}, fmt.Errorf(" mesh.GrowLayers: boundary-layer thickness must be positive, got %g", delta)
	}
	cum := []float64{0., deltaS}
	tot := deltaS
	for tot < delta {
		tot *= 1. + growthFactor
		cum = append(cum, tot)
	}
	return Stack{DeltaS: deltaS, Delta: delta, Total: tot, Cum: cum}, nil
}

// GrowLayersBatch grows one stack per first-cell height, order preserved.
// Fails atomically: either every element succeeds or no stacks are returned.
func GrowLayersBatch(deltaS []float64, delta, growthFactor float64) ([]Stack, error) {
	if len(deltaS) == 0 {
		return nil, fmt.Errorf(" mesh.GrowLayersBatch: no first-layer thicknesses given")
	}
	stks := make([]Stack, len(deltaS))
	for i, ds := range deltaS {
		s, err := GrowLayers(ds, delta, growthFactor)
		if err != nil {
			return nil, err
		}
		stks[i] = s
	}
	return stks, nil
}

// GrowthForLayerCount searches for the growth factor that stacks from δ_s to δ
// in exactly n layers. The search variable is log-linear over [.001,10].
func GrowthForLayerCount(deltaS, delta float64, n int) (float64, error) {
	if n < 2 {
		return 0., fmt.Errorf(" mesh.GrowthForLayerCount: need at least 2 layers, got %d", n)
	}
	if deltaS <= 0. || delta <= deltaS {
		return 0., fmt.Errorf(" mesh.GrowthForLayerCount: need 0 < δ_s (%g) < δ (%g)", deltaS, delta)
	}
	smpl := func(u float64) float64 {
		return mmaths.LogLinearTransform(.001, 10., u)
	}
	opt := func(u []float64) float64 {
		gf := smpl(u[0])
		s, err := GrowLayers(deltaS, delta, gf)
		if err != nil {
			return math.MaxFloat64
		}
		return math.Abs(float64(s.Layers() - n))
	}
	u, _ := glbopt.Fibonacci(func(u1 float64) float64 { return opt([]float64{u1}) })
	gf := smpl(u)
	if s, err := GrowLayers(deltaS, delta, gf); err != nil || s.Layers() != n {
		return 0., fmt.Errorf(" mesh.GrowthForLayerCount: no growth factor reaches %d layers for δ_s=%g δ=%g", n, deltaS, delta)
	}
	return gf, nil
}
