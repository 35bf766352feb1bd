// Package atmosphere implements the International Standard Atmosphere up through the lower stratosphere
package atmosphere

import (
	"fmt"
	"math"
)

const (
	R     = 287.05  // specific gas constant for dry air [J/(kg·K)]
	G0    = 9.80665 // standard gravity [m/s²]
	Gamma = 1.4     // ratio of specific heats for dry air
	P0    = 101325. // sea-level standard pressure [Pa]
	T0    = 288.15  // sea-level standard temperature [K]
	S     = 110.4   // Sutherland's constant [K]
	Lapse = -0.0065 // tropospheric temperature lapse rate [K/m]
	Htrop = 11000.  // tropopause height [m]
)

// Profile holds the state of the standard atmosphere at one altitude.
type Profile struct {
	Altitude           float64 // [m]
	Temperature        float64 // [K]
	Pressure           float64 // [Pa]
	Density            float64 // [kg/m³]
	SpeedOfSound       float64 // [m/s]
	DynamicViscosity   float64 // [Pa·s]
	KinematicViscosity float64 // [m²/s]
	Cp, Cv             float64 // specific heats [J/(kg·K)]
}

// New computes the atmospheric profile at altitude altM. Above the tropopause
// temperature is held constant and pressure decays exponentially.
func New(altM float64) Profile {
	var p Profile
	p.Altitude = altM
	p.Temperature = temperature(altM)
	p.Pressure = pressure(altM)
	p.Density = p.Pressure / (R * p.Temperature)
	p.SpeedOfSound = math.Sqrt(Gamma * R * p.Temperature)
	p.DynamicViscosity = 1.458e-6 * math.Pow(p.Temperature, 1.5) / (p.Temperature + S) // Sutherland
	p.KinematicViscosity = p.DynamicViscosity / p.Density
	p.Cp = Gamma * R / (Gamma - 1.)
	p.Cv = R / (Gamma - 1.)
	return p
}

func temperature(altM float64) float64 {
	if altM <= Htrop {
		return T0 + Lapse*altM
	}
	return T0 + Lapse*Htrop
}

func pressure(altM float64) float64 {
	if altM <= Htrop {
		return P0 * math.Pow(1.+Lapse*altM/T0, -G0/(R*Lapse))
	}
	ptrop := P0 * math.Pow(1.+Lapse*Htrop/T0, -G0/(R*Lapse))
	return ptrop * math.Exp(-G0*(altM-Htrop)/(R*temperature(altM)))
}

func (p Profile) String() string {
	return fmt.Sprintf("Altitude: %.0f m\nTemperature: %.2f K\nPressure: %.2f Pa\nDensity: %.4f kg/m³\nSpeed of Sound: %.2f m/s\nDynamic Viscosity: %.6e Pa·s\nKinematic Viscosity: %.6e m²/s\nCp: %.2f J/(kg·K)\nCv: %.2f J/(kg·K)",
		p.Altitude, p.Temperature, p.Pressure, p.Density, p.SpeedOfSound, p.DynamicViscosity, p.KinematicViscosity, p.Cp, p.Cv)
}
