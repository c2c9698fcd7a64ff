package photon

import (
	"github.com/san-kum/photonlab/internal/constants"
)

// PhotoelectricResult is the outcome of one photon striking a surface.
type PhotoelectricResult struct {
	// KineticEnergy of the ejected electron in eV, 0 when CanEject is false.
	KineticEnergy       float64
	MaxElectronEnergy   float64
	ThresholdFrequency  float64 // Hz
	ThresholdWavelength float64 // m
	CanEject            bool
	// EnergyDeficit is how far below the work function the photon is, in eV.
	EnergyDeficit float64
}

func (r PhotoelectricResult) Fields() map[string]float64 {
	return map[string]float64{
		"kinetic_energy":       r.KineticEnergy,
		"max_electron_energy":  r.MaxElectronEnergy,
		"threshold_frequency":  r.ThresholdFrequency,
		"threshold_wavelength": r.ThresholdWavelength,
		"can_eject":            boolField(r.CanEject),
		"energy_deficit":       r.EnergyDeficit,
	}
}

// Photoelectric computes the photoelectric effect for a photon of
// incidentEV striking a surface with the given work function (eV).
func Photoelectric(incidentEV, workFunctionEV float64) (PhotoelectricResult, error) {
	if err := constants.CheckNonNegative("incident_energy_ev", incidentEV); err != nil {
		return PhotoelectricResult{}, err
	}
	if err := constants.Check("work_function_ev", workFunctionEV); err != nil {
		return PhotoelectricResult{}, err
	}

	thresholdWavelength, err := constants.EnergyToWavelength(constants.EVToKeV(workFunctionEV))
	if err != nil {
		return PhotoelectricResult{}, err
	}

	r := PhotoelectricResult{
		ThresholdFrequency:  ThresholdFrequency(workFunctionEV),
		ThresholdWavelength: thresholdWavelength,
	}

	if incidentEV < workFunctionEV {
		r.EnergyDeficit = workFunctionEV - incidentEV
		return r, nil
	}

	r.CanEject = true
	r.KineticEnergy = incidentEV - workFunctionEV
	r.MaxElectronEnergy = r.KineticEnergy
	return r, nil
}

// PhotoelectricForMaterial looks up the work function of a named material
// and evaluates Photoelectric.
func PhotoelectricForMaterial(incidentEV float64, material string) (PhotoelectricResult, error) {
	wf, err := constants.WorkFunction(material)
	if err != nil {
		return PhotoelectricResult{}, err
	}
	return Photoelectric(incidentEV, wf)
}

// ThresholdFrequency is the lowest photon frequency (Hz) that can eject an
// electron from a surface with the given work function (eV).
func ThresholdFrequency(workFunctionEV float64) float64 {
	return constants.EnergyToFrequency(workFunctionEV)
}

// ThresholdWavelength is the longest wavelength (m) that can eject an electron.
func ThresholdWavelength(workFunctionEV float64) float64 {
	return constants.SpeedOfLight / ThresholdFrequency(workFunctionEV)
}

// WavelengthCalculation is a photon of a given wavelength checked against a
// work function.
type WavelengthCalculation struct {
	WavelengthNM float64
	EnergyEV     float64
	Result       PhotoelectricResult
}

// FromWavelength converts a wavelength in nm to a photon energy and
// evaluates the photoelectric effect for it.
func FromWavelength(wavelengthNM, workFunctionEV float64) (WavelengthCalculation, error) {
	energyKeV, err := constants.WavelengthToEnergy(wavelengthNM * constants.NanometerToMeter)
	if err != nil {
		return WavelengthCalculation{}, err
	}
	energyEV := constants.KeVToEV(energyKeV)

	r, err := Photoelectric(energyEV, workFunctionEV)
	if err != nil {
		return WavelengthCalculation{}, err
	}
	return WavelengthCalculation{WavelengthNM: wavelengthNM, EnergyEV: energyEV, Result: r}, nil
}
