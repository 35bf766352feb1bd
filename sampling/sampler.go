// Package sampling builds Latin-hypercube flight-condition samples over an
// aerodynamic envelope, filtered to a flyable Mach/dynamic-pressure corridor.
package sampling

import (
	"fmt"
	"math/rand"

	"github.com/gosuri/uiprogress"
	"github.com/maseology/mmaths"
	"github.com/maseology/mmio"
	"github.com/maseology/montecarlo/smpln"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
	"github.com/mscotty/CFD-stuff/atmosphere"
)

const nDim = 7

// Range is a closed sampling interval.
type Range struct{ Min, Max float64 }

func (r Range) contains(v float64) bool { return v >= r.Min && v <= r.Max }

// Envelope bounds each sampled flight variable.
type Envelope struct {
	Mach, Altitude, Alpha, Beta, DeflYaw, DeflPitch, DeflRoll Range
}

// Point is one sampled flight condition.
type Point struct {
	Mach, Altitude, Alpha, Beta, DeflYaw, DeflPitch, DeflRoll float64
}

// DynamicPressure returns ½ρ(M·a)² with ρ and a from the standard atmosphere
// at the point's altitude.
func (p Point) DynamicPressure() float64 {
	atm := atmosphere.New(p.Altitude)
	u := p.Mach * atm.SpeedOfSound
	return 0.5 * atm.Density * u * u
}

// NewRNG returns the generator used for sampling plans.
func NewRNG(seed int64) *rand.Rand {
	rng := rand.New(mrg63k3a.New())
	rng.Seed(seed)
	return rng
}

// Generate draws n flight conditions from a Latin-hypercube plan scaled onto
// the envelope.
func Generate(rng *rand.Rand, env Envelope, n int) []Point {
	sp := smpln.NewLHC(rng, n, nDim, false)
	rs := [nDim]Range{env.Mach, env.Altitude, env.Alpha, env.Beta, env.DeflYaw, env.DeflPitch, env.DeflRoll}
	pts := make([]Point, n)
	for k := 0; k < n; k++ {
		var v [nDim]float64
		for j := 0; j < nDim; j++ {
			v[j] = mmaths.LinearTransform(rs[j].Min, rs[j].Max, sp.U[j][k])
		}
		pts[k] = Point{v[0], v[1], v[2], v[3], v[4], v[5], v[6]}
	}
	return pts
}

// Filter keeps the points whose Mach number and dynamic pressure fall within
// the given corridors.
func Filter(pts []Point, mach, q Range) []Point {
	kept := make([]Point, 0, len(pts))
	for _, p := range pts {
		if mach.contains(p.Mach) && q.contains(p.DynamicPressure()) {
			kept = append(kept, p)
		}
	}
	return kept
}

// Valid batch-samples the envelope until nDesired points survive the
// Mach/dynamic-pressure filter, then truncates to exactly nDesired.
func Valid(rng *rand.Rand, env Envelope, mach, q Range, nDesired, batch int) ([]Point, error) {
	if nDesired <= 0 || batch <= 0 {
		return nil, fmt.Errorf(" sampling.Valid: need positive sample counts, got %d/%d", nDesired, batch)
	}
	uiprogress.Start()
	bar := uiprogress.AddBar(nDesired).AppendCompleted().PrependElapsed()
	// an empty first batch means the filter rejects the whole envelope
	valid := make([]Point, 0, nDesired)
	for len(valid) < nDesired {
		kept := Filter(Generate(rng, env, batch), mach, q)
		if len(kept) == 0 && len(valid) == 0 {
			uiprogress.Stop()
			return nil, fmt.Errorf(" sampling.Valid: no points in a batch of %d pass the Mach/q filter", batch)
		}
		for range kept {
			bar.Incr()
		}
		valid = append(valid, kept...)
	}
	uiprogress.Stop()
	return valid[:nDesired], nil
}

// WriteCSV saves accepted points for the run matrix.
func WriteCSV(fp string, pts []Point) {
	n := len(pts)
	m, a, al, b, dy, dp, dr := make([]interface{}, n), make([]interface{}, n), make([]interface{}, n), make([]interface{}, n), make([]interface{}, n), make([]interface{}, n), make([]interface{}, n)
	for i, p := range pts {
		m[i], a[i], al[i], b[i], dy[i], dp[i], dr[i] = p.Mach, p.Altitude, p.Alpha, p.Beta, p.DeflYaw, p.DeflPitch, p.DeflRoll
	}
	mmio.WriteCSV(fp, "mach,altitude,alpha,beta,deflection_yaw,deflection_pitch,deflection_roll", m, a, al, b, dy, dp, dr)
}
