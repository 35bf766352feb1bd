package mesh

import (
	"fmt"

	"github.com/maseology/mmio"
)

// PlotStacks prints the cumulative layer profiles to a png, one series per y+.
func PlotStacks(fp string, s *Sizing) {
	n := 0
	for _, stk := range s.Stacks {
		if stk.Layers() > n {
			n = stk.Layers()
		}
	}
	xs := make([]float64, n+1)
	for i := range xs {
		xs[i] = float64(i)
	}
	ys := make(map[string][]float64, len(s.Stacks))
	for i, stk := range s.Stacks {
		v := make([]float64, n+1)
		for j := range v {
			if j < len(stk.Cum) {
				v[j] = stk.Cum[j]
			} else {
				v[j] = stk.Total // stack already covers δ
			}
		}
		ys[fmt.Sprintf("y+=%g", s.YPlus[i])] = v
	}
	mmio.Line(fp, xs, ys, 48.)
}
