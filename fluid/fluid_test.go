package fluid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_chain01(tst *testing.T) {

	chk.PrintTitle("chain01. skin-friction chain")

	// ρ=1.2, μ=0.01, u∞=10, L=2
	s, err := Chain(1.2, 0.01, 10., 2.)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "re", 1e-10, s.Re, 2400.)
	chk.Float64(tst, "Cf", 1e-6, s.Cf, 0.0085524)
	chk.Float64(tst, "tau_wall", 1e-4, s.TauWall, 0.513144)
	chk.Float64(tst, "u_fric", 1e-4, s.Ufric, 0.653926)

	// idempotent
	s2, _ := Chain(1.2, 0.01, 10., 2.)
	chk.Float64(tst, "re repeat", 0, s2.Re, s.Re)
	chk.Float64(tst, "u_fric repeat", 0, s2.Ufric, s.Ufric)
}

func Test_chain02(tst *testing.T) {

	chk.PrintTitle("chain02. friction coefficient monotone decreasing")

	last := 1.
	for _, re := range []float64{1e3, 1e4, 1e5, 1e6, 1e7} {
		cf, err := FrictionCoefficient(re)
		if err != nil {
			tst.Fatal(err)
		}
		if cf >= last {
			tst.Errorf("Cf not decreasing: Cf(%g) = %g >= %g", re, cf, last)
		}
		last = cf
	}
}

func Test_chain03(tst *testing.T) {

	chk.PrintTitle("chain03. domain errors")

	if _, err := ReynoldsNumber(1.2, 0., 10., 2.); err == nil {
		tst.Error("expected error for zero viscosity")
	}
	if _, err := ReynoldsNumber(1.2, 0.01, 0., 2.); err == nil {
		tst.Error("expected error for zero velocity")
	}
	if _, err := ReynoldsNumber(1.2, 0.01, 10., 0.); err == nil {
		tst.Error("expected error for zero length")
	}
	if _, err := FrictionCoefficient(0.); err == nil {
		tst.Error("expected error for non-positive re")
	}
	if _, err := FrictionCoefficient(-100.); err == nil {
		tst.Error("expected error for negative re")
	}
	if _, err := WallShear(-1., 10., 0.005); err == nil {
		tst.Error("expected error for negative density")
	}
	if _, err := FrictionVelocity(0., 1.); err == nil {
		tst.Error("expected error for zero density")
	}
	if _, err := FrictionVelocity(1.2, -1.); err == nil {
		tst.Error("expected error for negative wall shear")
	}
	if _, err := YPlus(1e-5, 1., 1.2, 0.); err == nil {
		tst.Error("expected error for zero viscosity")
	}
}

func Test_chain04(tst *testing.T) {

	chk.PrintTitle("chain04. non-negativity")

	tau, err := WallShear(1.225, 0., 0.003)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "tau_wall at rest", 0, tau, 0.)
	uf, err := FrictionVelocity(1.225, tau)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "u_fric at rest", 0, uf, 0.)
}
