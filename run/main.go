package main

import (
	"fmt"
	"log"

	"github.com/maseology/mmio"
	"github.com/mscotty/CFD-stuff/mesh"
)

func main() {

	const (
		alt    = 0.     // altitude [m]
		uinf   = 1735.  // free-stream velocity [m/s]
		l      = 5.825  // reference length [m]
		ret    = 500000 // transition Reynolds number
		gf     = 0.2    // layer growth factor
		layers = 35
	)
	yplus := []float64{1., 5., 30.}

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap("\nRun complete.")

	s, err := mesh.FindLayers(alt, uinf, l, yplus, l, ret, gf)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Printf(" re: %.4g  Cf: %.5f  tau_wall: %.2f Pa  u_fric: %.3f m/s\n", s.State.Re, s.State.Cf, s.State.TauWall, s.State.Ufric)
	fmt.Printf(" boundary-layer thickness at x=%.3f m: %.6f m\n", l, s.Delta)
	for i, stk := range s.Stacks {
		fmt.Printf("  y+=%g: first layer %.4g m, %d layers to %.6f m\n", yplus[i], stk.DeltaS, stk.Layers(), stk.Total)
	}
	mesh.PlotStacks("layers.png", &s)

	// fixed layer count, searched growth factor
	sc, gfs, err := mesh.FindLayersGivenCount(alt, uinf, l, yplus, l, layers, ret)
	if err != nil {
		log.Fatalln(err)
	}
	for i, stk := range sc.Stacks {
		fmt.Printf("  y+=%g: %d layers at growth factor %.4f to %.6f m\n", yplus[i], stk.Layers(), gfs[i], stk.Total)
	}
}
