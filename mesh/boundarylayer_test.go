package mesh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_bl01(tst *testing.T) {

	chk.PrintTitle("bl01. thickness correlations")

	// re=10000, x=1
	lam, err := LaminarThickness(10000., 1.)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "laminar", 1e-12, lam, 0.05)
	trb, err := TurbulentThickness(10000., 1.)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "turbulent", 1e-6, trb, 0.058641)

	if _, err := LaminarThickness(0., 1.); err == nil {
		tst.Error("expected error for non-positive re")
	}
	if _, err := TurbulentThickness(-1., 1.); err == nil {
		tst.Error("expected error for non-positive re")
	}
}

func Test_bl02(tst *testing.T) {

	chk.PrintTitle("bl02. transition tie-break")

	// x_t = 5e5·1e-5/(1·10) = 0.5
	rho, mu, uinf, ret := 1., 1e-5, 10., 500000.
	xt, err := TransitionX(rho, mu, uinf, ret)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "x_t", 1e-12, xt, 0.5)

	re := 10000.
	lam, _ := LaminarThickness(re, 0.4)
	trbAt, _ := TurbulentThickness(re, 0.5)

	d, err := Thickness(rho, mu, uinf, 0.4, re, ret)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "laminar below x_t", 0, d, lam)

	// equality routes turbulent
	d, err = Thickness(rho, mu, uinf, 0.5, re, ret)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "turbulent at x_t", 0, d, trbAt)
}

func Test_bl03(tst *testing.T) {

	chk.PrintTitle("bl03. first-layer sizing")

	rho, mu, ufric := 1.225, 1.7894e-5, 0.5
	ds, err := FirstLayerThickness(rho, mu, ufric, 1.)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "δ_s", 1e-10, ds, 1.7894e-5/(0.5*1.225))

	// batch maps element-wise, shape preserved
	yp := []float64{1., 5., 30.}
	dss, err := FirstLayerThicknessBatch(rho, mu, ufric, yp)
	if err != nil {
		tst.Fatal(err)
	}
	if len(dss) != len(yp) {
		tst.Fatalf("expected %d thicknesses, got %d", len(yp), len(dss))
	}
	for i, y := range yp {
		chk.Float64(tst, "linear in y+", 1e-12, dss[i], ds*y)
	}

	if _, err := FirstLayerThickness(rho, mu, 0., 1.); err == nil {
		tst.Error("expected error for zero friction velocity")
	}
	if _, err := FirstLayerThicknessBatch(rho, mu, ufric, nil); err == nil {
		tst.Error("expected error for empty batch")
	}
}
