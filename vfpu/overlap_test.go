package vfpu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/pspvfpu/vfpu"
)

var vectorSizes = []vfpu.VectorSize{vfpu.VSingle, vfpu.VPair, vfpu.VTriple, vfpu.VQuad}
var matrixSizes = []vfpu.MatrixSize{vfpu.M2x2, vfpu.M3x3, vfpu.M4x4}

var _ = Describe("Overlap", func() {
	Describe("GetVectorOverlap", func() {
		It("should report a column and a row through the same corner as partial", func() {
			Expect(vfpu.GetVectorOverlap(0x00, vfpu.VQuad, 0x20, vfpu.VQuad)).To(Equal(vfpu.OverlapPartial))
			Expect(vfpu.GetVectorOverlapCount(0x00, vfpu.VQuad, 0x20, vfpu.VQuad)).To(Equal(1))
		})

		It("should report a prefix of a vector as partial", func() {
			Expect(vfpu.GetVectorOverlap(0x00, vfpu.VQuad, 0x00, vfpu.VPair)).To(Equal(vfpu.OverlapPartial))
			Expect(vfpu.GetVectorOverlapCount(0x00, vfpu.VQuad, 0x00, vfpu.VPair)).To(Equal(2))
		})

		It("should report parallel columns as disjoint", func() {
			Expect(vfpu.GetVectorOverlap(0x00, vfpu.VQuad, 0x01, vfpu.VQuad)).To(Equal(vfpu.OverlapNone))
		})

		It("should report every access as equal to itself", func() {
			for reg := 0; reg < 128; reg++ {
				for _, sz := range vectorSizes {
					Expect(vfpu.GetVectorOverlap(reg, sz, reg, sz)).To(Equal(vfpu.OverlapEqual))
				}
			}
		})

		It("should be symmetric", func() {
			for a := 0; a < 128; a += 3 {
				for b := 0; b < 128; b += 5 {
					for _, sa := range vectorSizes {
						for _, sb := range vectorSizes {
							Expect(vfpu.GetVectorOverlap(a, sa, b, sb)).To(Equal(vfpu.GetVectorOverlap(b, sb, a, sa)))
						}
					}
				}
			}
		})

		It("should report vectors in different banks as disjoint", func() {
			for a := 0; a < 128; a++ {
				for b := 0; b < 128; b++ {
					if vfpu.GetMtx(a) == vfpu.GetMtx(b) {
						continue
					}
					Expect(vfpu.GetVectorOverlap(a, vfpu.VQuad, b, vfpu.VQuad)).To(Equal(vfpu.OverlapNone))
				}
			}
		})

		It("should report a single inside a column as partial", func() {
			// S010 is lane 32, the second element of C000.
			Expect(vfpu.GetVectorOverlap(0x20, vfpu.VSingle, 0x00, vfpu.VQuad)).To(Equal(vfpu.OverlapPartial))
		})
	})

	Describe("GetMatrixOverlap", func() {
		It("should report a matrix and its transpose as equal storage", func() {
			Expect(vfpu.GetMatrixOverlap(0x00, 0x20, vfpu.M4x4)).To(Equal(vfpu.OverlapEqual))
			Expect(vfpu.IsMatrixTransposed(0x20)).NotTo(Equal(vfpu.IsMatrixTransposed(0x00)))
		})

		It("should report different banks as disjoint", func() {
			Expect(vfpu.GetMatrixOverlap(0x00, 0x04, vfpu.M4x4)).To(Equal(vfpu.OverlapNone))
		})

		It("should report side-by-side 2x2 blocks as disjoint", func() {
			Expect(vfpu.GetMatrixOverlap(0x00, 0x02, vfpu.M2x2)).To(Equal(vfpu.OverlapNone))
			Expect(vfpu.GetMatrixOverlap(0x00, 0x40, vfpu.M2x2)).To(Equal(vfpu.OverlapNone))
		})

		It("should report shifted 3x3 blocks as partial", func() {
			Expect(vfpu.GetMatrixOverlap(0x00, 0x01, vfpu.M3x3)).To(Equal(vfpu.OverlapPartial))
		})

		It("should be symmetric", func() {
			for a := 0; a < 128; a++ {
				for b := 0; b < 128; b += 7 {
					for _, sz := range matrixSizes {
						Expect(vfpu.GetMatrixOverlap(a, b, sz)).To(Equal(vfpu.GetMatrixOverlap(b, a, sz)))
					}
				}
			}
		})
	})

	Describe("GetMaskOverlap", func() {
		It("should compare a column against a matrix", func() {
			col := vfpu.VectorMask(0x01, vfpu.VQuad)
			mtx := vfpu.MatrixMask(0x00, vfpu.M4x4)

			Expect(vfpu.GetMaskOverlap(col, mtx)).To(Equal(vfpu.OverlapPartial))
			Expect(mtx.Count()).To(Equal(16))
			Expect(mtx.Has(97)).To(BeTrue())
			Expect(mtx.Has(4)).To(BeFalse())
		})

		It("should report two empty sets as disjoint", func() {
			Expect(vfpu.GetMaskOverlap(vfpu.LaneMask{}, vfpu.LaneMask{})).To(Equal(vfpu.OverlapNone))
		})
	})

	It("should name the classifications", func() {
		Expect(vfpu.OverlapNone.String()).To(Equal("none"))
		Expect(vfpu.OverlapPartial.String()).To(Equal("partial"))
		Expect(vfpu.OverlapEqual.String()).To(Equal("equal"))
	})
})
