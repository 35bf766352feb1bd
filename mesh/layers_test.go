package mesh

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_layers01(tst *testing.T) {

	chk.PrintTitle("layers01. doubling stack")

	// δ_s=0.01, δ=0.1, growth factor 1 doubles the running thickness
	s, err := GrowLayers(0.01, 0.1, 1.)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Array(tst, "cum", 1e-12, s.Cum, []float64{0., 0.01, 0.02, 0.04, 0.08, 0.16})
	chk.Float64(tst, "total", 1e-12, s.Total, 0.16)
	if s.Layers() != 5 {
		tst.Errorf("expected 5 layers, got %d", s.Layers())
	}
}

func Test_layers02(tst *testing.T) {

	chk.PrintTitle("layers02. stack invariants")

	s, err := GrowLayers(1e-5, 0.02, 0.2)
	if err != nil {
		tst.Fatal(err)
	}
	if s.Cum[0] != 0. || s.Cum[1] != 1e-5 {
		tst.Errorf("stack must start 0, δ_s; got %v", s.Cum[:2])
	}
	for i := 1; i < len(s.Cum); i++ {
		if s.Cum[i] <= s.Cum[i-1] {
			tst.Errorf("stack not strictly increasing at %d", i)
		}
	}
	last := s.Cum[len(s.Cum)-1]
	if last < s.Delta {
		tst.Errorf("stack stops short of δ: %g < %g", last, s.Delta)
	}
	if s.Cum[len(s.Cum)-2] >= s.Delta {
		tst.Errorf("terminal element is not the first to reach δ")
	}
	chk.Float64(tst, "total = last", 0, s.Total, last)
}

func Test_layers03(tst *testing.T) {

	chk.PrintTitle("layers03. rejected growth factors")

	if _, err := GrowLayers(0.01, 0.1, 0.); err == nil {
		tst.Error("expected error for zero growth factor")
	}
	if _, err := GrowLayers(0.01, 0.1, -0.5); err == nil {
		tst.Error("expected error for negative growth factor")
	}
	if _, err := GrowLayers(0., 0.1, 0.2); err == nil {
		tst.Error("expected error for zero first-layer thickness")
	}
	if _, err := GrowLayers(0.01, 0., 0.2); err == nil {
		tst.Error("expected error for zero boundary-layer thickness")
	}
}

func Test_layers04(tst *testing.T) {

	chk.PrintTitle("layers04. batch fan-out")

	ds := []float64{1e-5, 5e-5, 3e-4}
	stks, err := GrowLayersBatch(ds, 0.015, 0.2)
	if err != nil {
		tst.Fatal(err)
	}
	if len(stks) != len(ds) {
		tst.Fatalf("expected %d stacks, got %d", len(ds), len(stks))
	}
	for i, s := range stks {
		chk.Float64(tst, "δ_s preserved", 0, s.DeltaS, ds[i])
		sref, _ := GrowLayers(ds[i], 0.015, 0.2)
		chk.Array(tst, "batch matches scalar", 0, s.Cum, sref.Cum)
	}
	// fails atomically
	if _, err := GrowLayersBatch([]float64{1e-5, -1.}, 0.015, 0.2); err == nil {
		tst.Error("expected error for bad batch element")
	}
	if _, err := GrowLayersBatch(nil, 0.015, 0.2); err == nil {
		tst.Error("expected error for empty batch")
	}
}

func Test_layers05(tst *testing.T) {

	chk.PrintTitle("layers05. growth factor search")

	deltaS, delta := 0.001, 0.1
	n := 10
	gf, err := GrowthForLayerCount(deltaS, delta, n)
	if err != nil {
		tst.Fatal(err)
	}
	s, err := GrowLayers(deltaS, delta, gf)
	if err != nil {
		tst.Fatal(err)
	}
	if s.Layers() != n {
		tst.Errorf("expected %d layers at gf=%g, got %d", n, gf, s.Layers())
	}
	// closed form: n layers ⇔ (δ/δ_s)^(1/(n-1)) - 1 ≤ gf < (δ/δ_s)^(1/(n-2)) - 1
	lo := math.Pow(delta/deltaS, 1./float64(n-1)) - 1.
	hi := math.Pow(delta/deltaS, 1./float64(n-2)) - 1.
	if gf < lo || gf >= hi {
		tst.Errorf("gf=%g outside feasible interval [%g,%g)", gf, lo, hi)
	}

	if _, err := GrowthForLayerCount(deltaS, delta, 1); err == nil {
		tst.Error("expected error for single-layer request")
	}
	if _, err := GrowthForLayerCount(0.2, 0.1, 5); err == nil {
		tst.Error("expected error for δ_s ≥ δ")
	}
}
