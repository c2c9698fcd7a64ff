// Package photon implements the closed-form photon-matter interaction
// calculations used by the experiments:
//
//   - [Photoelectric]: electron ejection against a material work function
//   - [Compton]: incoherent scattering off a free electron
//   - [PairProduction]: electron-positron creation above 2 m_e c^2
//
// Every calculation is a pure function of its scalar inputs and returns a
// value result. Falling short of a threshold is not an error; it is
// reported through the CanEject and CanOccur flags. Non-physical inputs
// (zero or negative energies, non-finite values) return an error wrapping
// [constants.ErrInvalidInput].
//
// Units are never converted between calls. Photoelectric inputs are eV,
// Compton and pair production inputs are keV:
//
//	r, err := photon.Compton(constants.MeVToKeV(1.0), 90)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(r.ScatteredEnergy) // keV
//
// # Approximations
//
// The Compton recoil energy uses a non-relativistic approximation and pair
// production shares the excess energy equally between electron and
// positron. Both are kept as is so results match the reference values.
package photon
