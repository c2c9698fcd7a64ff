package experiment

import (
	"fmt"

	"github.com/san-kum/photonlab/internal/config"
	"github.com/san-kum/photonlab/internal/constants"
	"github.com/san-kum/photonlab/internal/photon"
	"github.com/san-kum/photonlab/internal/sweep"
)

// Angle explorer grid: every 5 degrees.
const angleSamples = 37

var photoelectricUnits = map[string]string{
	"kinetic_energy":       "eV",
	"max_electron_energy":  "eV",
	"threshold_frequency":  "Hz",
	"threshold_wavelength": "m",
	"energy_deficit":       "eV",
}

func runPhotoelectric(cfg *config.Config) (*Report, error) {
	pc := cfg.Photoelectric
	wf, err := cfg.WorkFunction()
	if err != nil {
		return nil, err
	}
	res, err := photon.Photoelectric(pc.PhotonEV, wf)
	if err != nil {
		return nil, err
	}

	rep := &Report{Flags: map[string]bool{"can_eject": res.CanEject}}
	rep.add("photon_energy", pc.PhotonEV, "eV")
	rep.add("work_function", wf, "eV")
	rep.addAll(res.Fields(), photoelectricUnits)

	calc, err := photon.FromWavelength(pc.WavelengthNM, wf)
	if err != nil {
		return nil, err
	}
	rep.add("calculator_wavelength", calc.WavelengthNM, "nm")
	rep.add("calculator_energy", calc.EnergyEV, "eV")
	rep.add("calculator_kinetic_energy", calc.Result.KineticEnergy, "eV")
	rep.Flags["calculator_can_eject"] = calc.Result.CanEject

	rep.Series, err = sweep.PhotoelectricEnergyFrequency(wf, pc.MaxEV, cfg.Samples)
	if err != nil {
		return nil, err
	}

	if pc.Material != "" && pc.WorkFunctionEV <= 0 {
		rep.Notes = append(rep.Notes, fmt.Sprintf("material: %s", pc.Material))
	}
	if !res.CanEject {
		rep.Notes = append(rep.Notes, fmt.Sprintf("insufficient energy: %.2f eV short of the work function", res.EnergyDeficit))
	}
	return rep, nil
}

var comptonUnits = map[string]string{
	"scattered_energy":       "keV",
	"wavelength_change":      "Å",
	"recoil_electron_energy": "keV",
	"energy_lost":            "keV",
	"compton_wavelength":     "Å",
}

func runCompton(cfg *config.Config) (*Report, error) {
	cc := cfg.Compton
	incident := constants.MeVToKeV(cc.IncidentMeV)
	res, err := photon.Compton(incident, cc.AngleDeg)
	if err != nil {
		return nil, err
	}

	rep := &Report{}
	rep.add("incident_energy", incident, "keV")
	rep.add("scattering_angle", cc.AngleDeg, "°")
	rep.addAll(res.Fields(), comptonUnits)
	rep.add("max_wavelength_change", photon.ComptonMaxShift(), "Å")

	pIn, pOut, pElectron := res.Momenta(incident)
	rep.add("incident_momentum", pIn, "keV/c")
	rep.add("scattered_momentum", pOut, "keV/c")
	rep.add("electron_momentum", pElectron, "keV/c")

	balance := photon.EnergyBalance(incident, res)
	rep.add("energy_balance_residual", balance, "keV")
	if balance >= 10 {
		rep.Notes = append(rep.Notes, fmt.Sprintf("recoil energy is a non-relativistic approximation; energy balance off by %.3f keV", balance))
	}

	rep.Series, err = sweep.ComptonAngles(incident, angleSamples)
	if err != nil {
		return nil, err
	}
	rep.Series = append(rep.Series, sweep.ScatteringPaths(cc.AngleDeg)...)
	return rep, nil
}

var pairUnits = map[string]string{
	"threshold_energy":    "keV",
	"excess_energy":       "keV",
	"kinetic_energy_each": "keV",
	"minimum_energy":      "keV",
	"energy_deficit":      "keV",
}

func runPair(cfg *config.Config) (*Report, error) {
	pc := cfg.Pair
	incident := constants.MeVToKeV(pc.IncidentMeV)
	res, err := photon.PairProduction(incident)
	if err != nil {
		return nil, err
	}

	rep := &Report{Flags: map[string]bool{"can_occur": res.CanOccur}}
	rep.add("incident_energy", incident, "keV")
	rep.addAll(res.Fields(), pairUnits)
	rep.add("cross_section", photon.PairCrossSection(pc.IncidentMeV, pc.NuclearCharge), "b")
	rep.add("annihilation_photon_energy", constants.AnnihilationPhotonKeV, "keV")

	effective := photon.EffectiveThreshold(pc.NuclearCharge)
	rep.add("screening_correction", photon.ScreeningCorrection(pc.NuclearCharge), "keV")
	rep.add("effective_threshold", effective, "keV")
	rep.Flags["nuclear_field_enhanced"] = incident >= effective

	energies, err := sweep.PairEnergies(0.5, max(pc.MaxMeV, 0.5), cfg.Samples)
	if err != nil {
		return nil, err
	}
	xs, err := sweep.PairCrossSection(pc.NuclearCharge, 1.1, max(pc.MaxMeV, 1.1), 50)
	if err != nil {
		return nil, err
	}
	rep.Series = append(energies, xs)

	if !res.CanOccur {
		rep.Notes = append(rep.Notes, fmt.Sprintf("insufficient energy for pair production: %.3f MeV short", constants.KeVToMeV(res.EnergyDeficit)))
	}
	return rep, nil
}

func runThomson(cfg *config.Config) (*Report, error) {
	s, err := sweep.ThomsonDistribution(361)
	if err != nil {
		return nil, err
	}
	rep := &Report{Series: []sweep.Series{s}}
	rep.add("classical_electron_radius", constants.ClassicalRadiusM, "m")
	return rep, nil
}

func runRayleigh(cfg *config.Config) (*Report, error) {
	rc := cfg.Rayleigh
	s, err := sweep.RayleighDistribution(rc.EnergyKeV, rc.AtomicNumber, 361)
	if err != nil {
		return nil, err
	}
	rep := &Report{Series: []sweep.Series{s}}
	rep.add("photon_energy", rc.EnergyKeV, "keV")
	rep.add("atomic_number", float64(rc.AtomicNumber), "")
	rep.add("angular_width", sweep.RayleighWidth(rc.EnergyKeV, rc.AtomicNumber), "°")
	rep.Notes = append(rep.Notes, "schematic distribution; exact modelling requires atomic form factors")
	return rep, nil
}

func runTriplet(cfg *config.Config) (*Report, error) {
	series, err := sweep.TripletEnergies(cfg.Triplet.MaxMeV, 300)
	if err != nil {
		return nil, err
	}
	rep := &Report{Series: series}
	rep.add("threshold_energy", constants.TripletThresholdKeV, "keV")
	rep.Notes = append(rep.Notes, "schematic energy budget")
	return rep, nil
}

func runPhotodisintegration(cfg *config.Config) (*Report, error) {
	s, err := sweep.Photodisintegration(cfg.Photodisintegration.MaxMeV, 600)
	if err != nil {
		return nil, err
	}
	rep := &Report{Series: []sweep.Series{s}}
	rep.add("threshold_energy", constants.MeVToKeV(sweep.PhotonuclearThresholdMeV), "keV")
	rep.add("resonance_peak", constants.MeVToKeV(sweep.ResonancePeakMeV), "keV")
	rep.Notes = append(rep.Notes, "schematic cross-section, not database values")
	return rep, nil
}
