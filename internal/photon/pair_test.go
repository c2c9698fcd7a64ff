package photon

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/photonlab/internal/constants"
)

func TestPairProduction_BelowThreshold(t *testing.T) {
	for _, e := range []float64{0, 511, 1000, 1021.99} {
		r, err := PairProduction(e)
		if err != nil {
			t.Fatal(err)
		}
		if r.CanOccur {
			t.Errorf("E=%g: pair production should not occur", e)
		}
		if r.ExcessEnergy != 0 || r.KineticEnergyEach != 0 {
			t.Errorf("E=%g: excess %g each %g", e, r.ExcessEnergy, r.KineticEnergyEach)
		}
		if r.MinimumEnergy != r.ThresholdEnergy {
			t.Errorf("E=%g: minimum %g != threshold %g", e, r.MinimumEnergy, r.ThresholdEnergy)
		}
	}
}

func TestPairProduction_Threshold(t *testing.T) {
	r, err := PairProduction(constants.PairThresholdKeV)
	if err != nil {
		t.Fatal(err)
	}
	if !r.CanOccur {
		t.Error("expected pair production at threshold")
	}
	if math.Abs(r.ExcessEnergy) > 1e-9 {
		t.Errorf("excess %g at threshold", r.ExcessEnergy)
	}
	if math.Abs(r.ThresholdEnergy-1021.998) > 1e-3 {
		t.Errorf("threshold %g keV", r.ThresholdEnergy)
	}
}

func TestPairProduction_AboveThreshold(t *testing.T) {
	r, err := PairProduction(2021.998)
	if err != nil {
		t.Fatal(err)
	}
	if !r.CanOccur {
		t.Fatal("expected pair production")
	}
	if math.Abs(r.ExcessEnergy-1000) > 1e-3 {
		t.Errorf("excess %g, want ~1000", r.ExcessEnergy)
	}
	if math.Abs(r.KineticEnergyEach-500) > 1e-3 {
		t.Errorf("each %g, want ~500", r.KineticEnergyEach)
	}
	if r.KineticEnergyEach != r.ExcessEnergy/2 {
		t.Error("excess not shared equally")
	}
}

func TestPairProduction_InvalidInput(t *testing.T) {
	if _, err := PairProduction(-1); !errors.Is(err, constants.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPairCrossSection(t *testing.T) {
	if PairCrossSection(1.0, 26) != 0 {
		t.Error("cross-section should vanish below threshold")
	}
	lo := PairCrossSection(2.0, 26)
	if lo <= 0 {
		t.Errorf("cross-section %g at 2 MeV", lo)
	}
	if hi := PairCrossSection(2.0, 82); hi <= lo {
		t.Errorf("cross-section should grow with Z: %g <= %g", hi, lo)
	}
}

func TestResultInterface(t *testing.T) {
	var results []Result
	p, _ := Photoelectric(6, 2.1)
	c, _ := Compton(500, 90)
	pp, _ := PairProduction(3000)
	results = append(results, p, c, pp)

	for _, r := range results {
		if len(r.Fields()) < 5 {
			t.Errorf("%T: expected at least 5 fields, got %d", r, len(r.Fields()))
		}
	}
}
