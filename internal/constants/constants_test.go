package constants

import (
	"errors"
	"math"
	"testing"
)

func TestEnergyWavelengthRoundTrip(t *testing.T) {
	for _, e := range []float64{1e-3, 0.0021, 1, 60, 511, 1021.998, 1e4, 1e7} {
		lambda, err := EnergyToWavelength(e)
		if err != nil {
			t.Fatalf("EnergyToWavelength(%g): %v", e, err)
		}
		back, err := WavelengthToEnergy(lambda)
		if err != nil {
			t.Fatalf("WavelengthToEnergy(%g): %v", lambda, err)
		}
		if math.Abs(back-e)/e > 1e-12 {
			t.Errorf("round trip %g keV -> %g keV", e, back)
		}
	}
}

func TestEnergyToWavelength_Known(t *testing.T) {
	// hc = 12.398 keV·Å
	lambda, err := EnergyToWavelength(12.398419843)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(lambda*MetersToAngstrom-1.0) > 1e-6 {
		t.Errorf("expected 1 Å, got %g Å", lambda*MetersToAngstrom)
	}
}

func TestConvertersRejectInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float64) (float64, error)
		in   float64
	}{
		{"zero energy", EnergyToWavelength, 0},
		{"negative energy", EnergyToWavelength, -5},
		{"NaN energy", EnergyToWavelength, math.NaN()},
		{"inf energy", EnergyToWavelength, math.Inf(1)},
		{"zero wavelength", WavelengthToEnergy, 0},
		{"negative wavelength", WavelengthToEnergy, -1e-10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn(tt.in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			var ie *InputError
			if !errors.As(err, &ie) {
				t.Fatalf("expected *InputError, got %T", err)
			}
		})
	}
}

func TestComptonWavelength(t *testing.T) {
	if math.Abs(ComptonWavelength-0.0243) > 1e-4 {
		t.Errorf("compton wavelength %g Å, want ~0.0243", ComptonWavelength)
	}
	if math.Abs(PairThresholdKeV-1021.997892) > 1e-6 {
		t.Errorf("pair threshold %g keV", PairThresholdKeV)
	}
}

func TestFrequencyRoundTrip(t *testing.T) {
	f := EnergyToFrequency(2.1)
	if math.Abs(f-5.0777e14)/5.0777e14 > 1e-3 {
		t.Errorf("threshold frequency for 2.1 eV: %g Hz", f)
	}
	if math.Abs(FrequencyToEnergy(f)-2.1) > 1e-12 {
		t.Errorf("frequency round trip: %g", FrequencyToEnergy(f))
	}
}

func TestWorkFunction(t *testing.T) {
	wf, err := WorkFunction("Cesium")
	if err != nil {
		t.Fatal(err)
	}
	if wf != 2.1 {
		t.Errorf("Cesium work function %g, want 2.1", wf)
	}

	_, err = WorkFunction("Unobtainium")
	if !errors.Is(err, ErrUnknownMaterial) {
		t.Errorf("expected ErrUnknownMaterial, got %v", err)
	}
}

func TestAtomicNumber(t *testing.T) {
	z, err := AtomicNumber("Pb")
	if err != nil || z != 82 {
		t.Errorf("Pb: got %d, %v", z, err)
	}
	if _, err := AtomicNumber("Xx"); !errors.Is(err, ErrUnknownMaterial) {
		t.Errorf("expected ErrUnknownMaterial, got %v", err)
	}
}

func TestMaterialsOrdered(t *testing.T) {
	names := Materials()
	if len(names) != 8 {
		t.Fatalf("expected 8 materials, got %d", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("materials not sorted: %v", names)
		}
	}

	elems := Elements()
	if elems[0] != "H" || elems[len(elems)-1] != "U" {
		t.Errorf("elements not ordered by Z: %v", elems)
	}
}
