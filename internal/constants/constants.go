// Package constants is the single source of physical constants, unit
// converters and the static material tables used by the photon calculations.
package constants

import "math"

// Fundamental constants, SI unless the name says otherwise.
const (
	Planck           = 6.62607015e-34
	PlanckBar        = Planck / (2 * math.Pi)
	SpeedOfLight     = 2.99792458e8
	ElectronMass     = 9.1093837015e-31
	ProtonMass       = 1.67262192369e-27
	NeutronMass      = 1.67492749804e-27
	ElectronCharge   = 1.602176634e-19
	ClassicalRadiusM = 2.8179403262e-15

	// ElectronRestKeV is m_e c^2 in keV.
	ElectronRestKeV = 510.998946
)

// Energy conversion factors.
const (
	EVToJoules  = 1.602176634e-19
	KeVToJoules = 1.602176634e-16
	MeVToJoules = 1.602176634e-13
	JoulesToEV  = 1 / EVToJoules
	JoulesToKeV = 1 / KeVToJoules
	JoulesToMeV = 1 / MeVToJoules
)

// Length conversion factors.
const (
	AngstromToMeters = 1e-10
	MetersToAngstrom = 1e10
	NanometerToMeter = 1e-9
)

// Derived values.
const (
	// ComptonWavelength is h/(m_e c) in angstrom, about 0.0243.
	ComptonWavelength = Planck / (ElectronMass * SpeedOfLight) * MetersToAngstrom

	// PairThresholdKeV is the rest energy of an electron-positron pair.
	PairThresholdKeV = 2 * ElectronRestKeV

	// TripletThresholdKeV is 4 m_e c^2, the threshold in the field of an electron.
	TripletThresholdKeV = 4 * ElectronRestKeV

	// AnnihilationPhotonKeV is the energy of each photon from e+e- annihilation at rest.
	AnnihilationPhotonKeV = ElectronRestKeV
)
