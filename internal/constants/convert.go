package constants

import "math"

// EnergyToWavelength converts a photon energy in keV to a wavelength in meters.
func EnergyToWavelength(energyKeV float64) (float64, error) {
	if !Positive(energyKeV) {
		return 0, invalid("energy_kev", energyKeV)
	}
	return (Planck * SpeedOfLight) / (energyKeV * KeVToJoules), nil
}

// WavelengthToEnergy converts a wavelength in meters to a photon energy in keV.
func WavelengthToEnergy(wavelengthM float64) (float64, error) {
	if !Positive(wavelengthM) {
		return 0, invalid("wavelength_m", wavelengthM)
	}
	return (Planck * SpeedOfLight) / (wavelengthM * KeVToJoules), nil
}

// EnergyToFrequency returns the photon frequency in Hz for an energy in eV.
func EnergyToFrequency(energyEV float64) float64 {
	return energyEV * EVToJoules / Planck
}

// FrequencyToEnergy returns the photon energy in eV for a frequency in Hz.
func FrequencyToEnergy(hz float64) float64 {
	return hz * Planck / EVToJoules
}

// EVToKeV converts electronvolts to kiloelectronvolts.
func EVToKeV(ev float64) float64 { return ev / 1000 }

// KeVToEV converts kiloelectronvolts to electronvolts.
func KeVToEV(kev float64) float64 { return kev * 1000 }

// MeVToKeV converts megaelectronvolts to kiloelectronvolts.
func MeVToKeV(mev float64) float64 { return mev * 1000 }

// KeVToMeV converts kiloelectronvolts to megaelectronvolts.
func KeVToMeV(kev float64) float64 { return kev / 1000 }

// Positive reports whether v is a finite value greater than zero.
func Positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// NonNegative reports whether v is finite and >= 0.
func NonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Check returns an *InputError for param when v is not positive and finite.
func Check(param string, v float64) error {
	if !Positive(v) {
		return invalid(param, v)
	}
	return nil
}

// CheckNonNegative is Check that also accepts zero.
func CheckNonNegative(param string, v float64) error {
	if !NonNegative(v) {
		return invalid(param, v)
	}
	return nil
}
