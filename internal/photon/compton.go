package photon

import (
	"math"

	"github.com/san-kum/photonlab/internal/constants"
)

// ComptonResult describes a photon scattered off a free electron.
type ComptonResult struct {
	ScatteredEnergy      float64 // keV
	WavelengthChange     float64 // Å
	RecoilElectronEnergy float64 // keV
	EnergyLost           float64 // keV
	ComptonWavelength    float64 // Å
}

func (r ComptonResult) Fields() map[string]float64 {
	return map[string]float64{
		"scattered_energy":       r.ScatteredEnergy,
		"wavelength_change":      r.WavelengthChange,
		"recoil_electron_energy": r.RecoilElectronEnergy,
		"energy_lost":            r.EnergyLost,
		"compton_wavelength":     r.ComptonWavelength,
	}
}

// Compton computes scattering of a photon of incidentKeV through angleDeg.
// The angle is not range checked; values outside [0, 180] are accepted.
func Compton(incidentKeV, angleDeg float64) (ComptonResult, error) {
	if err := constants.Check("incident_energy_kev", incidentKeV); err != nil {
		return ComptonResult{}, err
	}
	if math.IsNaN(angleDeg) || math.IsInf(angleDeg, 0) {
		return ComptonResult{}, &constants.InputError{Param: "scattering_angle", Value: angleDeg, Wrapped: constants.ErrInvalidInput}
	}

	theta := angleDeg * math.Pi / 180
	lambdaC := constants.ComptonWavelength

	lambdaI, err := constants.EnergyToWavelength(incidentKeV)
	if err != nil {
		return ComptonResult{}, err
	}
	lambdaI *= constants.MetersToAngstrom

	shift := lambdaC * (1 - math.Cos(theta))
	lambdaF := lambdaI + shift

	scattered, err := constants.WavelengthToEnergy(lambdaF * constants.AngstromToMeters)
	if err != nil {
		return ComptonResult{}, err
	}

	lost := incidentKeV - scattered

	// non-relativistic approximation
	recoil := lost * (1 - math.Cos(theta)) / (1 + lost/constants.ElectronRestKeV)

	return ComptonResult{
		ScatteredEnergy:      scattered,
		WavelengthChange:     lambdaF - lambdaI,
		RecoilElectronEnergy: recoil,
		EnergyLost:           lost,
		ComptonWavelength:    lambdaC,
	}, nil
}

// ComptonMaxShift is the wavelength change at 180° in Å. It does not depend
// on the incident energy.
func ComptonMaxShift() float64 {
	return 2 * constants.ComptonWavelength
}

// EnergyBalance returns |E0 - (E' + E_recoil)| in keV, the residual left by
// the recoil approximation.
func EnergyBalance(incidentKeV float64, r ComptonResult) float64 {
	return math.Abs(incidentKeV - (r.ScatteredEnergy + r.RecoilElectronEnergy))
}

// Momenta returns the incident photon, scattered photon and recoil
// electron momenta in keV/c. Photon momentum is E/c, so in these units it
// equals the energy; the electron uses its recoil kinetic energy the same
// way.
func (r ComptonResult) Momenta(incidentKeV float64) (incident, scattered, electron float64) {
	return incidentKeV, r.ScatteredEnergy, r.RecoilElectronEnergy
}

// Vec3 is a point in the schematic drawing space.
type Vec3 struct{ X, Y, Z float64 }

// Geometry holds schematic unit-scale paths for drawing a scattering event
// with the electron at the origin.
type Geometry struct {
	Incident  [2]Vec3
	Scattered [2]Vec3
	Electron  [2]Vec3
}

// ScatteringGeometry lays out incident photon, scattered photon and recoil
// electron for a scattering angle in degrees. The electron leaves at a
// right angle to the scattered photon; this is a drawing aid, not kinematics.
func ScatteringGeometry(angleDeg float64) Geometry {
	theta := angleDeg * math.Pi / 180
	c, s := math.Cos(theta), math.Sin(theta)
	phi := theta + math.Pi/2

	return Geometry{
		Incident:  [2]Vec3{{}, {X: c, Y: s}},
		Scattered: [2]Vec3{{X: c, Y: s}, {X: 2 * c, Y: 2 * s}},
		Electron:  [2]Vec3{{}, {X: 0.5 * math.Cos(phi), Y: 0.5 * math.Sin(phi), Z: 0.2}},
	}
}
