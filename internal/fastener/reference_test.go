package fastener_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/boltjoint/internal/fastener"
)

var _ = Describe("5/16-18 UNC grade 5 bolt", func() {
	const (
		d       = 5.0 / 16
		dMinor  = 0.24033
		sEnd    = 25726.0
		sUt     = 120000.0
		sY      = 92000.0
		loadMax = 1000.0
		loadMin = 0.0
	)

	var params fastener.FatigueParams

	BeforeEach(func() {
		aTs, err := fastener.TensileStressArea(d, dMinor, fastener.ThreadsPerInch(18))
		Expect(err).NotTo(HaveOccurred())
		params = fastener.FatigueParams{
			D: d, ATs: aTs, Sut: sUt, Se: sEnd, Sy: sY, Units: fastener.USCustomary,
		}
	})

	Context("with the joint constant from Norton example 15-3", func() {
		BeforeEach(func() {
			params.C = 0.09056
		})

		It("reproduces the published safety factors", func() {
			preload := 4011.0

			ny, err := fastener.YieldSafetyFactor(params.C, loadMax, preload, params.ATs, params.Sy)
			Expect(err).NotTo(HaveOccurred())
			Expect(ny).To(BeNumerically("~", 1.18, 0.005))

			nf, err := fastener.FatigueSafetyFactor(params, loadMax, loadMin, preload)
			Expect(err).NotTo(HaveOccurred())
			Expect(nf).To(BeNumerically("~", 1.37, 0.005))

			nj, err := fastener.SeparationSafetyFactor(params.C, loadMax, preload)
			Expect(err).NotTo(HaveOccurred())
			Expect(nj).To(BeNumerically("~", 4.4, 0.05))
		})

		It("scales kf with the unit system flag, not with magnitude", func() {
			iso := params
			iso.Units = fastener.ISO
			nfUS, err := fastener.FatigueSafetyFactor(params, loadMax, loadMin, 4011)
			Expect(err).NotTo(HaveOccurred())
			nfISO, err := fastener.FatigueSafetyFactor(iso, loadMax, loadMin, 4011)
			Expect(err).NotTo(HaveOccurred())
			Expect(nfISO).NotTo(Equal(nfUS))
		})
	})

	Context("in a 3 in grip of steel plates", func() {
		var preload fastener.Series

		BeforeEach(func() {
			c, err := fastener.JointConstant(d, 3, 30e6, 30e6)
			Expect(err).NotTo(HaveOccurred())
			params.C = c
			preload = fastener.Linspace(0, 4456, 1000)
		})

		It("has a single best preload on the minimum safety factor curve", func() {
			sf, err := fastener.Evaluate(params, fastener.Scalar(loadMax), fastener.Scalar(loadMin), preload)
			Expect(err).NotTo(HaveOccurred())
			Expect(sf.Min).To(HaveLen(len(preload)))

			best := sf.Min.ArgMax()
			Expect(best).To(BeNumerically(">", 0))
			Expect(best).To(BeNumerically("<", len(preload)-1))
			for i, v := range sf.Min {
				Expect(v).To(BeNumerically("<=", sf.Min[best]))
				if i < best {
					Expect(v).To(BeNumerically("<", sf.Min[best]))
				}
			}
		})

		It("keeps the bolt share of the load below one", func() {
			Expect(params.C).To(BeNumerically(">", 0))
			Expect(params.C).To(BeNumerically("<", 1))
			bolt, member := fastener.SegregateLoad(params.C, loadMax)
			Expect(bolt + member).To(BeNumerically("~", loadMax, 1e-9))
		})
	})
})

var _ = Describe("mean stress concentration", func() {
	It("returns zero when the local peak equals yield exactly", func() {
		kf := 4.0
		sigmaMean, sigmaAlt := 15000.0, 5000.0
		sy := kf * (sigmaMean + sigmaAlt)
		Expect(fastener.MeanStressConcentrationFactor(sigmaMean, sigmaAlt, sy, kf)).To(BeZero())
	})

	It("falls back to kf below yield", func() {
		Expect(fastener.MeanStressConcentrationFactor(100, 50, 1e6, 3)).To(Equal(3.0))
	})

	It("reduces kfm above yield", func() {
		kfm := fastener.MeanStressConcentrationFactor(40000, 1000, 92000, 5.9)
		Expect(kfm).To(BeNumerically("<", 5.9))
		Expect(math.IsNaN(kfm)).To(BeFalse())
	})
})

var _ = Describe("series broadcasting", func() {
	It("rejects mismatched lengths", func() {
		_, err := fastener.SeparationSafetyFactors(0.2, fastener.Series{1, 2}, fastener.Series{1, 2, 3})
		Expect(err).To(MatchError(fastener.ErrLengthMismatch))
	})

	It("rejects empty series", func() {
		_, err := fastener.SeparationSafetyFactors(0.2, fastener.Series{}, fastener.Scalar(1))
		Expect(err).To(MatchError(fastener.ErrEmptySeries))
	})
})
