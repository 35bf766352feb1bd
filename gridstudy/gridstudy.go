// Package gridstudy scales mesh-sizing control files across a set of grid
// refinement factors for grid-convergence studies.
package gridstudy

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/maseology/mmio"
	"github.com/mscotty/CFD-stuff/atmosphere"
	"github.com/mscotty/CFD-stuff/fluid"
	"github.com/mscotty/CFD-stuff/mesh"
)

const reTransition = 500000.

// FlightConditions describes the flow state a grid is sized for. Rho and Mu
// may be left out of the json; they are then taken from the standard
// atmosphere at Alt.
type FlightConditions struct {
	Alt   float64  `json:"alt"`
	Uinf  float64  `json:"u_inf"`
	L     float64  `json:"L"`
	YPlus float64  `json:"y_plus"`
	Rho   *float64 `json:"rho,omitempty"`
	Mu    *float64 `json:"mu,omitempty"`
}

// BLSpec is the boundary-layer extrusion control for one surface.
type BLSpec struct {
	GrowthRate          float64 `json:"Growth_Rate"`
	FirstLayerThickness float64 `json:"1st_Layer_Thickness"`
	NumberOfLayers      int     `json:"Number_of_Layers"`
}

// Part is the sizing control block of one geometry component.
type Part struct {
	GlobalSizing map[string]float64 `json:"Global_Sizing,omitempty"`
	TopoSizing   map[string]float64 `json:"Topo_Sizing,omitempty"`
	BLSizing     map[string]BLSpec  `json:"BL_Sizing,omitempty"`
}

// the as-written control file keeps topo and boundary-layer sizing as
// parallel arrays keyed by surface name
type rawPart struct {
	GlobalSizing map[string]float64 `json:"Global_Sizing"`
	TopoSizing   *struct {
		Name []string  `json:"name"`
		Val  []float64 `json:"val"`
	} `json:"Topo_Sizing"`
	BLSizing *struct {
		Name                []string  `json:"name"`
		GrowthRate          []float64 `json:"Growth_Rate"`
		FirstLayerThickness []float64 `json:"1st_Layer_Thickness"`
		NumberOfLayers      []int     `json:"Number_of_Layers"`
	} `json:"BL_Sizing"`
}

// ReadFlightConditions loads a flight-condition json, filling fluid properties
// from the standard atmosphere when only an altitude is given.
func ReadFlightConditions(fp string) (*FlightConditions, error) {
	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf(" gridstudy.ReadFlightConditions: %v", err)
	}
	var fc FlightConditions
	if err := json.Unmarshal(b, &fc); err != nil {
		return nil, fmt.Errorf(" gridstudy.ReadFlightConditions: %v", err)
	}
	if fc.Rho == nil || fc.Mu == nil {
		atm := atmosphere.New(fc.Alt)
		if fc.Rho == nil {
			rho := atm.Density
			fc.Rho = &rho
		}
		if fc.Mu == nil {
			mu := atm.DynamicViscosity
			fc.Mu = &mu
		}
	}
	return &fc, nil
}

// Load reads a grid sizing json and reforms its parallel-array blocks into
// surface-keyed maps.
func Load(fp string) (map[string]Part, error) {
	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf(" gridstudy.Load: %v", err)
	}
	raw := make(map[string]rawPart)
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf(" gridstudy.Load: %v", err)
	}
	out := make(map[string]Part, len(raw))
	for k, rp := range raw {
		p := Part{GlobalSizing: rp.GlobalSizing}
		if rp.TopoSizing != nil {
			if len(rp.TopoSizing.Name) != len(rp.TopoSizing.Val) {
				return nil, fmt.Errorf(" gridstudy.Load: %s Topo_Sizing name/val lengths disagree (%d/%d)", k, len(rp.TopoSizing.Name), len(rp.TopoSizing.Val))
			}
			p.TopoSizing = make(map[string]float64, len(rp.TopoSizing.Name))
			for i, nm := range rp.TopoSizing.Name {
				p.TopoSizing[nm] = rp.TopoSizing.Val[i]
			}
		}
		if rp.BLSizing != nil {
			n := len(rp.BLSizing.Name)
			if len(rp.BLSizing.GrowthRate) != n || len(rp.BLSizing.FirstLayerThickness) != n || len(rp.BLSizing.NumberOfLayers) != n {
				return nil, fmt.Errorf(" gridstudy.Load: %s BL_Sizing array lengths disagree", k)
			}
			p.BLSizing = make(map[string]BLSpec, n)
			for i, nm := range rp.BLSizing.Name {
				p.BLSizing[nm] = BLSpec{
					GrowthRate:          rp.BLSizing.GrowthRate[i],
					FirstLayerThickness: rp.BLSizing.FirstLayerThickness[i],
					NumberOfLayers:      rp.BLSizing.NumberOfLayers[i],
				}
			}
		}
		out[k] = p
	}
	return out, nil
}

// scaleGlobal applies the grid factor to the global sizing block. Size
// increments scale about unity so a factor of 1 leaves them unchanged.
func scaleGlobal(g map[string]float64, f float64) map[string]float64 {
	out := make(map[string]float64, len(g))
	for k, v := range g {
		switch k {
		case "Scaling_Factor", "Global_Size", "Minimum_Size":
			out[k] = v * f
		case "Size_Increment":
			out[k] = 1. + (v-1.)*f
		default:
			out[k] = v
		}
	}
	return out
}

func scaleTopo(t map[string]float64, f float64) map[string]float64 {
	out := make(map[string]float64, len(t))
	for k, v := range t {
		out[k] = v * f
	}
	return out
}

// scaleBL scales the first-layer heights and re-derives each surface's growth
// rate so the (unchanged) layer count still spans the boundary layer.
func scaleBL(b map[string]BLSpec, fc *FlightConditions, f float64) (map[string]BLSpec, error) {
	st, err := fluid.Chain(*fc.Rho, *fc.Mu, fc.Uinf, fc.L)
	if err != nil {
		return nil, err
	}
	delta, err := mesh.Thickness(*fc.Rho, *fc.Mu, fc.Uinf, fc.L, st.Re, reTransition)
	if err != nil {
		return nil, err
	}
	out := make(map[string]BLSpec, len(b))
	for k, s := range b {
		ds := s.FirstLayerThickness * f
		gf, err := mesh.GrowthForLayerCount(ds, delta, s.NumberOfLayers)
		if err != nil {
			return nil, fmt.Errorf(" gridstudy.scaleBL: surface %s: %v", k, err)
		}
		out[k] = BLSpec{
			GrowthRate:          1. + gf, // ratio convention of the mesher
			FirstLayerThickness: ds,
			NumberOfLayers:      s.NumberOfLayers,
		}
	}
	return out, nil
}

// Scale returns the sizing control scaled by one grid factor.
func Scale(parts map[string]Part, fc *FlightConditions, f float64) (map[string]Part, error) {
	out := make(map[string]Part, len(parts))
	for k, p := range parts {
		var sp Part
		if p.GlobalSizing != nil {
			sp.GlobalSizing = scaleGlobal(p.GlobalSizing, f)
		}
		if p.TopoSizing != nil {
			sp.TopoSizing = scaleTopo(p.TopoSizing, f)
		}
		if p.BLSizing != nil {
			bl, err := scaleBL(p.BLSizing, fc, f)
			if err != nil {
				return nil, err
			}
			sp.BLSizing = bl
		}
		out[k] = sp
	}
	return out, nil
}

func writeJSON(fp string, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf(" gridstudy.writeJSON: %v", err)
	}
	if err := os.WriteFile(fp, b, 0644); err != nil {
		return fmt.Errorf(" gridstudy.writeJSON: %v", err)
	}
	return nil
}

// CreateGrids loads the sizing and flight-condition jsons and writes one
// refined sizing file per grid factor, plus a combined *_complete.json.
func CreateGrids(gridFP, flightFP string, factors []float64) error {
	if _, ok := mmio.FileExists(gridFP); !ok {
		return fmt.Errorf(" gridstudy.CreateGrids: no file found at %s", gridFP)
	}
	fc, err := ReadFlightConditions(flightFP)
	if err != nil {
		return err
	}
	parts, err := Load(gridFP)
	if err != nil {
		return err
	}
	prfx := mmio.RemoveExtension(gridFP)
	grids := make(map[string]map[string]Part, len(factors))
	for _, f := range factors {
		fmt.Printf(" grid factor: %g\n", f)
		sp, err := Scale(parts, fc, f)
		if err != nil {
			return err
		}
		if err := writeJSON(fmt.Sprintf("%s%g.json", prfx, f), sp); err != nil {
			return err
		}
		grids[fmt.Sprintf("factor%g", f)] = sp
	}
	return writeJSON(prfx+"_complete.json", grids)
}
