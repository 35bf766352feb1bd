package sampling

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/cpmech/gosl/la"
	"github.com/maseology/glbopt"
	"github.com/maseology/mmaths"
	"github.com/maseology/mmio"
	"github.com/maseology/objfunc"
)

const nCoef = 6 // 1, h, u, h², hu, u²

// Surrogate is a quadratic response surface over altitude and speed, fit to
// solver outputs (lift, drag, normal force) at sampled flight conditions.
type Surrogate struct{ Coef [nCoef]float64 }

func terms(alt, speed float64) [nCoef]float64 {
	return [nCoef]float64{1., alt, speed, alt * alt, alt * speed, speed * speed}
}

// Predict evaluates the surface at a flight condition.
func (s *Surrogate) Predict(alt, speed float64) float64 {
	t, y := terms(alt, speed), 0.
	for j := 0; j < nCoef; j++ {
		y += s.Coef[j] * t[j]
	}
	return y
}

// FitSurrogate least-squares fits a quadratic surface to the sampled
// responses by solving the normal equations.
func FitSurrogate(alt, speed, y []float64) (*Surrogate, error) {
	n := len(y)
	if len(alt) != n || len(speed) != n {
		return nil, fmt.Errorf(" sampling.FitSurrogate: input lengths disagree (%d/%d/%d)", len(alt), len(speed), n)
	}
	if n < nCoef {
		return nil, fmt.Errorf(" sampling.FitSurrogate: need at least %d samples, got %d", nCoef, n)
	}
	xtx := la.NewMatrix(nCoef, nCoef)
	xty := la.NewVector(nCoef)
	for i := 0; i < n; i++ {
		t := terms(alt[i], speed[i])
		for j := 0; j < nCoef; j++ {
			xty[j] += t[j] * y[i]
			for k := 0; k < nCoef; k++ {
				xtx.Set(j, k, xtx.Get(j, k)+t[j]*t[k])
			}
		}
	}
	c := la.NewVector(nCoef)
	la.DenSolve(c, xtx, xty, false)
	var s Surrogate
	copy(s.Coef[:], c)
	return &s, nil
}

// Score reports the fit quality of a surrogate against observed responses.
func (s *Surrogate) Score(alt, speed, y []float64) (rmse, nse float64) {
	sim := make([]float64, len(y))
	for i := range y {
		sim[i] = s.Predict(alt[i], speed[i])
	}
	return objfunc.RMSE(y, sim), objfunc.NSE(y, sim)
}

// Correlation returns the Pearson correlation matrix of the given columns.
func Correlation(cols ...[]float64) ([][]float64, error) {
	m := len(cols)
	if m == 0 {
		return nil, fmt.Errorf(" sampling.Correlation: no columns given")
	}
	n := len(cols[0])
	for _, c := range cols {
		if len(c) != n {
			return nil, fmt.Errorf(" sampling.Correlation: column lengths disagree")
		}
	}
	if n < 2 {
		return nil, fmt.Errorf(" sampling.Correlation: need at least 2 rows, got %d", n)
	}
	mu := make([]float64, m)
	for i, c := range cols {
		for _, v := range c {
			mu[i] += v
		}
		mu[i] /= float64(n)
	}
	r := make([][]float64, m)
	for i := range r {
		r[i] = make([]float64, m)
	}
	for i := 0; i < m; i++ {
		for j := i; j < m; j++ {
			var sij, sii, sjj float64
			for k := 0; k < n; k++ {
				di, dj := cols[i][k]-mu[i], cols[j][k]-mu[j]
				sij += di * dj
				sii += di * di
				sjj += dj * dj
			}
			r[i][j] = sij / math.Sqrt(sii*sjj)
			r[j][i] = r[i][j]
		}
	}
	return r, nil
}

// RangeReduce searches the fitted surface for the flight condition whose
// predicted response meets the target, within the given bounds.
func RangeReduce(rng *rand.Rand, s *Surrogate, alt, speed Range, target float64) (altOpt, speedOpt, predicted float64) {
	gen := func(u []float64) float64 {
		d := s.Predict(mmaths.LinearTransform(alt.Min, alt.Max, u[0]), mmaths.LinearTransform(speed.Min, speed.Max, u[1])) - target
		return d * d
	}
	uFinal, _ := glbopt.SCE(16, 2, rng, gen, true)
	altOpt = mmaths.LinearTransform(alt.Min, alt.Max, uFinal[0])
	speedOpt = mmaths.LinearTransform(speed.Min, speed.Max, uFinal[1])
	return altOpt, speedOpt, s.Predict(altOpt, speedOpt)
}

// SpeedRange reduces the speed corridor to the band bounded below by the
// fastest sample at or under the given drag quantile.
func SpeedRange(speed, drag []float64, quantile float64) (Range, error) {
	n := len(drag)
	if len(speed) != n || n == 0 {
		return Range{}, fmt.Errorf(" sampling.SpeedRange: input lengths disagree (%d/%d)", len(speed), n)
	}
	if quantile < 0. || quantile > 1. {
		return Range{}, fmt.Errorf(" sampling.SpeedRange: quantile %g outside [0,1]", quantile)
	}
	srt := append([]float64{}, drag...)
	sort.Float64s(srt)
	pos := quantile * float64(n-1)
	i, f := int(pos), pos-math.Floor(pos)
	target := srt[i]
	if i+1 < n {
		target += f * (srt[i+1] - srt[i])
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, u := range speed {
		lo = math.Min(lo, u)
		hi = math.Max(hi, u)
	}
	best := math.Inf(-1)
	for i, d := range drag {
		if d <= target {
			best = math.Max(best, speed[i])
		}
	}
	if !math.IsInf(best, -1) {
		lo = best
	}
	return Range{lo, hi}, nil
}

// PlotFit writes an observed-against-fitted series plot for a surrogate.
func PlotFit(fp string, s *Surrogate, alt, speed, y []float64) {
	xs, sim := make([]float64, len(y)), make([]float64, len(y))
	for i := range y {
		xs[i] = float64(i)
		sim[i] = s.Predict(alt[i], speed[i])
	}
	mmio.Line(fp, xs, map[string][]float64{"observed": y, "fitted": sim}, 48.)
}
