package sweep

import (
	"math"

	"github.com/san-kum/photonlab/internal/constants"
	"github.com/san-kum/photonlab/internal/photon"
)

const (
	angleLabel  = "Scattering Angle (°)"
	energyLabel = "Photon Energy (MeV)"
)

// ComptonAngles sweeps the scattering angle over 0..180° in n samples for a
// photon of incidentKeV. It returns scattered photon energy and recoil
// electron energy (MeV), the wavelength change (Å) and the electron/photon
// energy ratio, in that order.
func ComptonAngles(incidentKeV float64, n int) ([]Series, error) {
	angles, err := Linspace(0.0, 180.0, n)
	if err != nil {
		return nil, err
	}
	s, err := Generate(angles, func(a float64) (photon.ComptonResult, error) {
		return photon.Compton(incidentKeV, a)
	})
	if err != nil {
		return nil, err
	}

	return []Series{
		s.Series("Scattered Photon", angleLabel, "Energy (MeV)", func(r photon.ComptonResult) float64 {
			return constants.KeVToMeV(r.ScatteredEnergy)
		}),
		s.Series("Recoil Electron", angleLabel, "Energy (MeV)", func(r photon.ComptonResult) float64 {
			return constants.KeVToMeV(r.RecoilElectronEnergy)
		}),
		s.Series("Δλ", angleLabel, "Wavelength Change (Å)", func(r photon.ComptonResult) float64 {
			return r.WavelengthChange
		}),
		s.Series("E_electron/E_photon", angleLabel, "Ratio", func(r photon.ComptonResult) float64 {
			return r.RecoilElectronEnergy / r.ScatteredEnergy
		}),
	}, nil
}

// PairEnergies sweeps the photon energy linearly over [minMeV, maxMeV] and
// returns threshold, excess energy and kinetic energy per particle (MeV).
func PairEnergies(minMeV, maxMeV float64, n int) ([]Series, error) {
	energies, err := Linspace(minMeV, maxMeV, n)
	if err != nil {
		return nil, err
	}
	s, err := Generate(energies, func(e float64) (photon.PairProductionResult, error) {
		return photon.PairProduction(constants.MeVToKeV(e))
	})
	if err != nil {
		return nil, err
	}

	return []Series{
		s.Series("Threshold Energy", energyLabel, "Energy (MeV)", func(r photon.PairProductionResult) float64 {
			return constants.KeVToMeV(r.ThresholdEnergy)
		}),
		s.Series("Excess Energy", energyLabel, "Energy (MeV)", func(r photon.PairProductionResult) float64 {
			return constants.KeVToMeV(r.ExcessEnergy)
		}),
		s.Series("Kinetic Energy per Particle", energyLabel, "Energy (MeV)", func(r photon.PairProductionResult) float64 {
			return constants.KeVToMeV(r.KineticEnergyEach)
		}),
	}, nil
}

// PairCrossSection samples the schematic Bethe-Heitler cross-section on a
// log grid over [minMeV, maxMeV] for nuclear charge z.
func PairCrossSection(z int, minMeV, maxMeV float64, n int) (Series, error) {
	energies, err := Logspace(minMeV, maxMeV, n)
	if err != nil {
		return Series{}, err
	}
	return Map("Cross Section", energyLabel, "Cross Section (barns)", energies, func(e float64) float64 {
		return photon.PairCrossSection(e, z)
	}), nil
}

// PhotoelectricEnergyFrequency returns photon energy against frequency
// (×10¹⁴ Hz) up to maxEV, and the maximum kinetic energy above threshold
// drawn on top of the work function.
func PhotoelectricEnergyFrequency(workFunctionEV, maxEV float64, n int) ([]Series, error) {
	if err := constants.Check("work_function_ev", workFunctionEV); err != nil {
		return nil, err
	}
	const unit = 1e14
	freqs, err := Linspace(0, constants.EnergyToFrequency(maxEV)/unit, n)
	if err != nil {
		return nil, err
	}
	photonLine := Map("Photon Energy (E = hf)", "Frequency (×10¹⁴ Hz)", "Energy (eV)", freqs, func(f float64) float64 {
		return constants.FrequencyToEnergy(f * unit)
	})

	threshold := photon.ThresholdFrequency(workFunctionEV) / unit
	above, err := Linspace(threshold, max(threshold, freqs[len(freqs)-1]), n)
	if err != nil {
		return nil, err
	}
	kinetic := Map("Max Kinetic Energy", "Frequency (×10¹⁴ Hz)", "Energy (eV)", above, func(f float64) float64 {
		r, err := photon.Photoelectric(constants.FrequencyToEnergy(f*unit), workFunctionEV)
		if err != nil {
			return 0
		}
		return r.KineticEnergy + workFunctionEV
	})

	return []Series{photonLine, kinetic}, nil
}

// ThomsonDistribution is the classical angular distribution
// I(θ) ∝ 1 + cos²θ over 0..180°, normalised to a peak of 1.
func ThomsonDistribution(n int) (Series, error) {
	angles, err := Linspace(0.0, 180.0, n)
	if err != nil {
		return Series{}, err
	}
	s := Map("Normalized intensity", angleLabel, "Normalized I(θ)", angles, func(a float64) float64 {
		c := math.Cos(a * math.Pi / 180)
		return 1 + c*c
	})
	Normalize(s.Y)
	return s, nil
}

// RayleighWidth is the heuristic angular width (degrees) of the schematic
// Rayleigh distribution: narrower for higher energy and higher Z.
func RayleighWidth(energyKeV float64, z int) float64 {
	theta0 := 35.0 * (30.0 / max(energyKeV, 1.0)) * math.Cbrt(10.0/float64(max(z, 1)))
	return min(max(theta0, 5.0), 60.0)
}

// RayleighDistribution is a forward-peaked Gaussian in angle,
// exp(-(θ/θ0)²), normalised to a peak of 1.
func RayleighDistribution(energyKeV float64, z, n int) (Series, error) {
	angles, err := Linspace(0.0, 180.0, n)
	if err != nil {
		return Series{}, err
	}
	theta0 := RayleighWidth(energyKeV, z)
	s := Map("Normalized intensity", angleLabel, "Normalized Intensity", angles, func(a float64) float64 {
		r := a / theta0
		return math.Exp(-r * r)
	})
	Normalize(s.Y)
	return s, nil
}

// TripletEnergies sweeps from the triplet threshold (4 m_e c², ~2.044 MeV)
// to maxMeV. The available kinetic energy is shared by three leptons.
func TripletEnergies(maxMeV float64, n int) ([]Series, error) {
	threshold := constants.KeVToMeV(constants.TripletThresholdKeV)
	energies, err := Linspace(threshold, max(threshold, maxMeV), n)
	if err != nil {
		return nil, err
	}
	available := Map("Available kinetic (total)", energyLabel, "Energy (MeV)", energies, func(e float64) float64 {
		return max(e-threshold, 0)
	})
	perParticle := Map("Avg KE per lepton (~1/3)", energyLabel, "Energy (MeV)", energies, func(e float64) float64 {
		return max(e-threshold, 0) / 3
	})
	return []Series{available, perParticle}, nil
}

// Giant dipole resonance shape used by Photodisintegration, in MeV.
const (
	PhotonuclearThresholdMeV = 8.0
	ResonancePeakMeV         = 15.0
	ResonanceWidthMeV        = 5.0
)

// Photodisintegration samples a schematic relative photonuclear
// cross-section over [0, maxMeV]: zero below threshold and a Gaussian
// resonance above it, normalised to a peak of 1.
func Photodisintegration(maxMeV float64, n int) (Series, error) {
	energies, err := Linspace(0.0, maxMeV, n)
	if err != nil {
		return Series{}, err
	}
	s := Map("Relative cross-section", "Photon Energy (MeV)", "Relative Cross-section", energies, func(e float64) float64 {
		if e < PhotonuclearThresholdMeV {
			return 0
		}
		d := (e - ResonancePeakMeV) / ResonanceWidthMeV
		return math.Exp(-0.5 * d * d)
	})
	Normalize(s.Y)
	return s, nil
}

// ScatteringPaths projects the Compton scattering diagram onto the
// scattering plane: incident photon, scattered photon and recoil electron
// as two-point paths with the electron at the origin.
func ScatteringPaths(angleDeg float64) []Series {
	g := photon.ScatteringGeometry(angleDeg)
	path := func(name string, p [2]photon.Vec3) Series {
		return Series{
			Name:   name,
			XLabel: "Beam Axis (schematic)",
			YLabel: "Transverse (schematic)",
			X:      []float64{p[0].X, p[1].X},
			Y:      []float64{p[0].Y, p[1].Y},
		}
	}
	return []Series{
		path("Incident Photon Path", g.Incident),
		path("Scattered Photon Path", g.Scattered),
		path("Recoil Electron Path", g.Electron),
	}
}
