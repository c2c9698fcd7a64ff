package photon

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/photonlab/internal/constants"
)

func TestPhotoelectric_Cesium(t *testing.T) {
	r, err := Photoelectric(6.0, 2.1)
	if err != nil {
		t.Fatal(err)
	}
	if !r.CanEject {
		t.Fatal("expected ejection for 6.0 eV on cesium")
	}
	if r.KineticEnergy != 3.9 {
		t.Errorf("kinetic energy %v, want 3.9", r.KineticEnergy)
	}
	if r.MaxElectronEnergy != r.KineticEnergy {
		t.Errorf("max electron energy %v != kinetic %v", r.MaxElectronEnergy, r.KineticEnergy)
	}
}

func TestPhotoelectric_BelowThreshold(t *testing.T) {
	for _, e := range []float64{0, 0.5, 1.0, 2.0, 2.0999} {
		r, err := Photoelectric(e, 2.1)
		if err != nil {
			t.Fatalf("incident %g: %v", e, err)
		}
		if r.CanEject {
			t.Errorf("incident %g: unexpected ejection", e)
		}
		if r.KineticEnergy != 0 {
			t.Errorf("incident %g: kinetic energy %g, want 0", e, r.KineticEnergy)
		}
		if math.Abs(r.EnergyDeficit-(2.1-e)) > 1e-12 {
			t.Errorf("incident %g: deficit %g", e, r.EnergyDeficit)
		}
	}
}

func TestPhotoelectric_AboveThreshold(t *testing.T) {
	for _, wf := range []float64{2.1, 2.28, 4.3, 6.35} {
		for _, e := range []float64{wf, wf + 0.5, 10, 50} {
			r, err := Photoelectric(e, wf)
			if err != nil {
				t.Fatal(err)
			}
			if !r.CanEject {
				t.Errorf("φ=%g E=%g: expected ejection", wf, e)
			}
			if r.KineticEnergy != e-wf {
				t.Errorf("φ=%g E=%g: kinetic %g, want %g", wf, e, r.KineticEnergy, e-wf)
			}
		}
	}
}

func TestPhotoelectric_ThresholdIndependentOfIncident(t *testing.T) {
	a, _ := Photoelectric(1.0, 4.3)
	b, _ := Photoelectric(20.0, 4.3)

	if a.ThresholdFrequency != b.ThresholdFrequency {
		t.Errorf("threshold frequency depends on incident energy: %g vs %g", a.ThresholdFrequency, b.ThresholdFrequency)
	}
	if math.Abs(a.ThresholdWavelength-ThresholdWavelength(4.3))/a.ThresholdWavelength > 1e-9 {
		t.Errorf("threshold wavelength %g vs c/f %g", a.ThresholdWavelength, ThresholdWavelength(4.3))
	}
	// 4.3 eV ~ 288 nm
	if nm := a.ThresholdWavelength / constants.NanometerToMeter; math.Abs(nm-288.3) > 0.5 {
		t.Errorf("threshold wavelength %g nm", nm)
	}
}

func TestPhotoelectric_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		incident float64
		wf       float64
	}{
		{"negative incident", -1, 2.1},
		{"zero work function", 5, 0},
		{"negative work function", 5, -2},
		{"NaN incident", math.NaN(), 2.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Photoelectric(tt.incident, tt.wf); !errors.Is(err, constants.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestPhotoelectricForMaterial(t *testing.T) {
	r, err := PhotoelectricForMaterial(6.0, "Cesium")
	if err != nil {
		t.Fatal(err)
	}
	if r.KineticEnergy != 3.9 {
		t.Errorf("kinetic energy %v, want 3.9", r.KineticEnergy)
	}

	if _, err := PhotoelectricForMaterial(6.0, "Kryptonite"); !errors.Is(err, constants.ErrUnknownMaterial) {
		t.Errorf("expected ErrUnknownMaterial, got %v", err)
	}
}

func TestFromWavelength(t *testing.T) {
	// 200 nm is about 6.2 eV
	calc, err := FromWavelength(200, 4.7)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(calc.EnergyEV-6.199) > 0.01 {
		t.Errorf("energy %g eV, want ~6.199", calc.EnergyEV)
	}
	if !calc.Result.CanEject {
		t.Error("expected ejection from copper at 200 nm")
	}

	calc, err = FromWavelength(500, 4.7)
	if err != nil {
		t.Fatal(err)
	}
	if calc.Result.CanEject {
		t.Error("visible light should not eject from copper")
	}

	if _, err := FromWavelength(0, 4.7); !errors.Is(err, constants.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPhotoelectricFields(t *testing.T) {
	r, _ := Photoelectric(6.0, 2.1)
	f := r.Fields()
	if f["can_eject"] != 1 || f["kinetic_energy"] != 3.9 {
		t.Errorf("unexpected fields: %v", f)
	}
	for _, key := range []string{"kinetic_energy", "threshold_frequency", "can_eject", "threshold_wavelength"} {
		if _, ok := f[key]; !ok {
			t.Errorf("missing field %s", key)
		}
	}
}
