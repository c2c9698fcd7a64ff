package sweep_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/photonlab/internal/constants"
	"github.com/san-kum/photonlab/internal/photon"
	"github.com/san-kum/photonlab/internal/sweep"
)

func expectAligned(series ...sweep.Series) {
	for _, s := range series {
		Expect(s.Y).To(HaveLen(len(s.X)), "series %q", s.Name)
	}
}

var _ = Describe("Generate", func() {
	It("pairs every sample with its result", func() {
		xs := []float64{1000, 2000, 3000}
		s, err := sweep.Generate(xs, photon.PairProduction)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.X).To(Equal(xs))
		Expect(s.Results).To(HaveLen(3))
		Expect(s.Results[0].CanOccur).To(BeFalse())
		Expect(s.Results[2].CanOccur).To(BeTrue())
	})

	It("propagates the calculation error", func() {
		_, err := sweep.Generate([]float64{100, 0}, func(e float64) (photon.ComptonResult, error) {
			return photon.Compton(e, 90)
		})
		Expect(errors.Is(err, constants.ErrInvalidInput)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("sample 1"))
	})

	It("does not share the input slice", func() {
		xs := []float64{1, 2}
		s, _ := sweep.Generate(xs, func(x float64) (float64, error) { return x, nil })
		xs[0] = 99
		Expect(s.X[0]).To(Equal(1.0))
	})
})

var _ = Describe("Generators", func() {
	It("sweeps Compton results over 0..180 degrees", func() {
		series, err := sweep.ComptonAngles(1000, 37)
		Expect(err).NotTo(HaveOccurred())
		Expect(series).To(HaveLen(4))
		expectAligned(series...)

		scattered, shift := series[0], series[2]
		Expect(scattered.X[0]).To(Equal(0.0))
		Expect(scattered.X[36]).To(Equal(180.0))
		Expect(scattered.Y[0]).To(BeNumerically("~", 1.0, 1e-9))
		Expect(shift.Y[0]).To(BeNumerically("~", 0, 1e-15))
		for i := 1; i < shift.Len(); i++ {
			Expect(shift.Y[i]).To(BeNumerically(">=", shift.Y[i-1]))
		}
		Expect(shift.Y[36]).To(BeNumerically("~", photon.ComptonMaxShift(), 1e-12))
	})

	It("fails a Compton sweep with no energy", func() {
		_, err := sweep.ComptonAngles(0, 10)
		Expect(errors.Is(err, constants.ErrInvalidInput)).To(BeTrue())
	})

	It("sweeps pair production across the threshold", func() {
		series, err := sweep.PairEnergies(0.5, 5.0, 200)
		Expect(err).NotTo(HaveOccurred())
		Expect(series).To(HaveLen(3))
		expectAligned(series...)

		threshold, excess, each := series[0], series[1], series[2]
		Expect(threshold.Y[0]).To(BeNumerically("~", 1.022, 1e-3))
		Expect(excess.Y[0]).To(Equal(0.0))
		Expect(excess.Y[199]).To(BeNumerically("~", 5.0-1.021997892, 1e-9))
		Expect(each.Y[199]).To(BeNumerically("~", excess.Y[199]/2, 1e-12))
	})

	It("builds a log-spaced pair cross-section that vanishes below threshold", func() {
		s, err := sweep.PairCrossSection(26, 0.9, 10, 50)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Len()).To(Equal(50))
		Expect(s.Y[0]).To(Equal(0.0))
		Expect(s.Y[49]).To(BeNumerically(">", 0))
	})

	It("draws the photoelectric energy-frequency lines", func() {
		series, err := sweep.PhotoelectricEnergyFrequency(2.1, 10, 100)
		Expect(err).NotTo(HaveOccurred())
		Expect(series).To(HaveLen(2))
		expectAligned(series...)
		Expect(series[0].Y[0]).To(Equal(0.0))
		Expect(series[0].Y[99]).To(BeNumerically("~", 10, 1e-9))
		Expect(series[1].X[0]).To(BeNumerically("~", 5.0778, 1e-3))
		Expect(series[1].Y[99]).To(BeNumerically("~", 10, 1e-9))
	})

	It("normalises the Thomson distribution with peaks at 0 and 180", func() {
		s, err := sweep.ThomsonDistribution(361)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Len()).To(Equal(361))
		Expect(s.Y[0]).To(Equal(1.0))
		Expect(s.Y[180]).To(BeNumerically("~", 0.5, 1e-12))
		Expect(s.Y[360]).To(BeNumerically("~", 1.0, 1e-12))
	})

	DescribeTable("clips the Rayleigh width to [5, 60] degrees",
		func(energy float64, z int, want float64) {
			Expect(sweep.RayleighWidth(energy, z)).To(BeNumerically("~", want, 1e-9))
		},
		Entry("low energy, light element", 1.0, 1, 60.0),
		Entry("high energy, heavy element", 10000.0, 92, 5.0),
		Entry("aluminium at 60 keV", 60.0, 13, 16.0345557238),
	)

	It("makes the Rayleigh distribution forward peaked", func() {
		s, err := sweep.RayleighDistribution(60, 13, 361)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Y[0]).To(Equal(1.0))
		Expect(s.Y[360]).To(BeNumerically("<", 1e-6))
	})

	It("starts triplet production at 4 electron masses", func() {
		series, err := sweep.TripletEnergies(20, 300)
		Expect(err).NotTo(HaveOccurred())
		expectAligned(series...)
		Expect(series[0].X[0]).To(BeNumerically("~", 2.044, 1e-3))
		Expect(series[0].Y[0]).To(Equal(0.0))
		Expect(series[1].Y[299]).To(BeNumerically("~", series[0].Y[299]/3, 1e-12))
	})

	It("zeroes photodisintegration below threshold and peaks at the resonance", func() {
		s, err := sweep.Photodisintegration(30, 601)
		Expect(err).NotTo(HaveOccurred())
		for i, e := range s.X {
			if e < sweep.PhotonuclearThresholdMeV {
				Expect(s.Y[i]).To(Equal(0.0))
			}
		}
		Expect(s.Y[300]).To(Equal(1.0))
	})

	It("keeps an all-zero photodisintegration curve at zero", func() {
		s, err := sweep.Photodisintegration(5, 50)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Y).To(HaveEach(0.0))
	})
})

var _ = Describe("ScatteringPaths", func() {
	It("draws three connected two-point paths in the scattering plane", func() {
		paths := sweep.ScatteringPaths(90)
		Expect(paths).To(HaveLen(3))
		expectAligned(paths...)
		for _, p := range paths {
			Expect(p.Len()).To(Equal(2))
		}

		incident, scattered, electron := paths[0], paths[1], paths[2]
		Expect(incident.Y[1]).To(BeNumerically("~", 1, 1e-12))
		Expect(scattered.X[0]).To(Equal(incident.X[1]))
		Expect(scattered.Y[0]).To(Equal(incident.Y[1]))
		Expect(electron.X[0]).To(Equal(0.0))
		Expect(electron.X[1]).To(BeNumerically("~", -0.5, 1e-12))
	})
})
