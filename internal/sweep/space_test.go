package sweep_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/photonlab/internal/sweep"
)

var _ = Describe("Spacing", func() {
	DescribeTable("Linspace returns exactly n points spanning [a, b]",
		func(a, b float64, n int) {
			xs, err := sweep.Linspace(a, b, n)
			Expect(err).NotTo(HaveOccurred())
			Expect(xs).To(HaveLen(n))
			Expect(xs[0]).To(Equal(a))
			Expect(xs[n-1]).To(Equal(b))
			for i := 1; i < n; i++ {
				Expect(xs[i]).To(BeNumerically(">=", xs[i-1]))
			}
		},
		Entry("angles", 0.0, 180.0, 37),
		Entry("pair energies", 0.5, 5.0, 200),
		Entry("two points", 1.0, 2.0, 2),
		Entry("degenerate range", 3.0, 3.0, 5),
	)

	It("returns the start for a single sample", func() {
		xs, err := sweep.Linspace(2.0, 9.0, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(xs).To(Equal([]float64{2.0}))
	})

	It("rejects a zero sample count", func() {
		_, err := sweep.Linspace(0.0, 1.0, 0)
		Expect(err).To(MatchError(sweep.ErrSampleCount))
	})

	It("rejects non-finite bounds", func() {
		_, err := sweep.Linspace(0.0, math.Inf(1), 10)
		Expect(err).To(MatchError(sweep.ErrInvalidRange))
	})

	It("works for float32", func() {
		xs, err := sweep.Linspace[float32](0, 1, 11)
		Expect(err).NotTo(HaveOccurred())
		Expect(xs[5]).To(BeNumerically("~", 0.5, 1e-6))
	})

	Describe("Logspace", func() {
		It("spaces points geometrically and keeps the endpoints", func() {
			xs, err := sweep.Logspace(1.1, 10.0, 50)
			Expect(err).NotTo(HaveOccurred())
			Expect(xs).To(HaveLen(50))
			Expect(xs[0]).To(Equal(1.1))
			Expect(xs[49]).To(Equal(10.0))
			ratio := xs[1] / xs[0]
			for i := 2; i < len(xs); i++ {
				Expect(xs[i] / xs[i-1]).To(BeNumerically("~", ratio, 1e-9))
			}
		})

		It("returns the lower bound for a single sample, like Linspace", func() {
			lin, err := sweep.Linspace(2.0, 8.0, 1)
			Expect(err).NotTo(HaveOccurred())
			xs, err := sweep.Logspace(2.0, 8.0, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(xs).To(Equal([]float64{2}))
			Expect(xs).To(Equal(lin))
		})

		It("rejects non-positive bounds", func() {
			_, err := sweep.Logspace(0.0, 10.0, 5)
			Expect(err).To(MatchError(sweep.ErrInvalidRange))
		})
	})

	Describe("Normalize", func() {
		It("scales the peak to 1", func() {
			Expect(sweep.Normalize([]float64{1, 2, 4})).To(Equal([]float64{0.25, 0.5, 1}))
		})

		It("leaves an all-zero curve alone", func() {
			Expect(sweep.Normalize([]float64{0, 0})).To(Equal([]float64{0, 0}))
		})
	})
})
