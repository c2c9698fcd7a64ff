package photon

import (
	"math"

	"github.com/san-kum/photonlab/internal/constants"
)

// PairProductionResult describes electron-positron creation near a nucleus.
type PairProductionResult struct {
	ThresholdEnergy float64 // keV
	ExcessEnergy    float64 // keV
	// KineticEnergyEach assumes the excess is shared equally.
	KineticEnergyEach float64 // keV
	CanOccur          bool
	MinimumEnergy     float64 // keV
	EnergyDeficit     float64 // keV
}

func (r PairProductionResult) Fields() map[string]float64 {
	return map[string]float64{
		"threshold_energy":    r.ThresholdEnergy,
		"excess_energy":       r.ExcessEnergy,
		"kinetic_energy_each": r.KineticEnergyEach,
		"can_occur":           boolField(r.CanOccur),
		"minimum_energy":      r.MinimumEnergy,
		"energy_deficit":      r.EnergyDeficit,
	}
}

// PairProduction computes electron-positron pair creation for a photon of
// incidentKeV in the field of a nucleus.
func PairProduction(incidentKeV float64) (PairProductionResult, error) {
	if err := constants.CheckNonNegative("incident_energy_kev", incidentKeV); err != nil {
		return PairProductionResult{}, err
	}

	threshold := constants.PairThresholdKeV
	r := PairProductionResult{
		ThresholdEnergy: threshold,
		MinimumEnergy:   threshold,
	}

	if incidentKeV < threshold {
		r.EnergyDeficit = threshold - incidentKeV
		return r, nil
	}

	r.CanOccur = true
	r.ExcessEnergy = incidentKeV - threshold
	r.KineticEnergyEach = r.ExcessEnergy / 2
	return r, nil
}

// PairCrossSection is a schematic Bethe-Heitler cross-section in barns for
// a photon of energyMeV near a nucleus of charge z. It is zero at or below
// the pair threshold.
func PairCrossSection(energyMeV float64, z int) float64 {
	if energyMeV <= constants.KeVToMeV(constants.PairThresholdKeV) {
		return 0
	}
	rest := constants.KeVToMeV(constants.ElectronRestKeV)
	return 1.5e-2 * (1 / energyMeV) * (math.Log(2*energyMeV/rest) - 1) * float64(z*z)
}

// ScreeningCorrection is the schematic lowering of the pair threshold by the
// field of a nucleus of charge z, 0.001·Z^(1/3) MeV, returned in keV.
func ScreeningCorrection(z int) float64 {
	if z < 1 {
		return 0
	}
	return constants.MeVToKeV(0.001 * math.Cbrt(float64(z)))
}

// EffectiveThreshold is the pair threshold less the nuclear screening
// correction, in keV.
func EffectiveThreshold(z int) float64 {
	return constants.PairThresholdKeV - ScreeningCorrection(z)
}
