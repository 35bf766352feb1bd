// Package fluid computes the flat-plate skin-friction chain from free-stream conditions
package fluid

import (
	"fmt"
	"math"
)

// State holds the derived skin-friction chain at a reference length,
// each term computed strictly from the one before it.
type State struct {
	Re      float64 // Reynolds number [-]
	Cf      float64 // skin-friction coefficient [-]
	TauWall float64 // wall shear stress [Pa]
	Ufric   float64 // friction velocity [m/s]
}

// ReynoldsNumber returns ρ·u∞·L/μ.
func ReynoldsNumber(rho, mu, uinf, l float64) (float64, error) {
	if mu <= 0. {
		return 0., fmt.Errorf(" fluid.ReynoldsNumber: dynamic viscosity must be positive, got %g", mu)
	}
	if rho <= 0. {
		return 0., fmt.Errorf(" fluid.ReynoldsNumber: density must be positive, got %g", rho)
	}
	if l <= 0. {
		return 0., fmt.Errorf(" fluid.ReynoldsNumber: reference length must be positive, got %g", l)
	}
	if uinf == 0. {
		return 0., fmt.Errorf(" fluid.ReynoldsNumber: free-stream velocity must be non-zero")
	}
	return rho * uinf * l / mu, nil
}

// FrictionCoefficient returns the power-law flat-plate turbulent correlation 0.026/re^(1/7).
func FrictionCoefficient(re float64) (float64, error) {
	if re <= 0. {
		return 0., fmt.Errorf(" fluid.FrictionCoefficient: Reynolds number must be positive, got %g", re)
	}
	return 0.026 / math.Pow(re, 1./7.), nil
}

// WallShear returns Cf·ρ·u∞²/2.
func WallShear(rho, uinf, cf float64) (float64, error) {
	if rho < 0. || cf < 0. {
		return 0., fmt.Errorf(" fluid.WallShear: negative density (%g) or friction coefficient (%g)", rho, cf)
	}
	return cf * rho * uinf * uinf / 2., nil
}

// FrictionVelocity returns sqrt(τ_wall/ρ).
func FrictionVelocity(rho, tauWall float64) (float64, error) {
	if rho <= 0. {
		return 0., fmt.Errorf(" fluid.FrictionVelocity: density must be positive, got %g", rho)
	}
	if tauWall < 0. {
		return 0., fmt.Errorf(" fluid.FrictionVelocity: wall shear must be non-negative, got %g", tauWall)
	}
	return math.Sqrt(tauWall / rho), nil
}

// YPlus returns the non-dimensional wall distance δ_s·u_fric·ρ/μ of a given first-cell height.
func YPlus(deltaS, ufric, rho, mu float64) (float64, error) {
	if mu <= 0. {
		return 0., fmt.Errorf(" fluid.YPlus: dynamic viscosity must be positive, got %g", mu)
	}
	return deltaS * ufric * rho / mu, nil
}

// Chain derives the full skin-friction state re → Cf → τ_wall → u_fric.
func Chain(rho, mu, uinf, l float64) (State, error) {
	re, err := ReynoldsNumber(rho, mu, uinf, l)
	if err != nil {
		return State{}, err
	}
	cf, err := FrictionCoefficient(re)
	if err != nil {
		return State{}, err
	}
	tau, err := WallShear(rho, uinf, cf)
	if err != nil {
		return State{}, err
	}
	ufric, err := FrictionVelocity(rho, tau)
	if err != nil {
		return State{}, err
	}
	return State{Re: re, Cf: cf, TauWall: tau, Ufric: ufric}, nil
}
