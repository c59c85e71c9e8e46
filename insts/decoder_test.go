package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/pspvfpu/insts"
	"github.com/sarchlab/pspvfpu/vfpu"
)

var _ = Describe("Decoder", func() {
	var decoder *insts.Decoder

	BeforeEach(func() {
		decoder = insts.NewDecoder()
	})

	Describe("Vector groups", func() {
		// vadd.q C000, C010, C020 -> 0x60028180
		// Encoding: 011000 | 000 | vt=2 | 1 | vs=1 | 1 | vd=0
		It("should decode vadd.q C000, C010, C020", func() {
			inst := decoder.Decode(0x60028180)

			Expect(inst.Format).To(Equal(insts.FormatVFPU0))
			Expect(inst.Op).To(Equal(insts.OpVector))
			Expect(inst.Vd).To(Equal(uint8(0)))
			Expect(inst.Vs).To(Equal(uint8(1)))
			Expect(inst.Vt).To(Equal(uint8(2)))
			Expect(inst.VecSize).To(Equal(vfpu.VQuad))
			Expect(inst.MtxSize).To(Equal(vfpu.MInvalid))
			Expect(inst.IsMatrix()).To(BeFalse())
		})

		DescribeTable("size bits",
			func(word uint32, size vfpu.VectorSize) {
				Expect(decoder.Decode(word).VecSize).To(Equal(size))
			},
			Entry("single", uint32(0x60000000), vfpu.VSingle),
			Entry("pair", uint32(0x60000080), vfpu.VPair),
			Entry("triple", uint32(0x60008000), vfpu.VTriple),
			Entry("quad", uint32(0x60008080), vfpu.VQuad),
		)

		DescribeTable("groups",
			func(word uint32, format insts.Format) {
				Expect(decoder.Decode(word).Format).To(Equal(format))
			},
			Entry("VFPU1 vdot", uint32(0x64808080), insts.FormatVFPU1),
			Entry("VFPU3 vcmp", uint32(0x6C000000), insts.FormatVFPU3),
			Entry("VFPU4 vmov", uint32(0xD0000000), insts.FormatVFPU4),
			Entry("not a VFPU op", uint32(0x00000000), insts.FormatUnknown),
		)

		DescribeTable("source counts",
			func(word uint32, sources int) {
				Expect(decoder.Decode(word).Sources).To(Equal(sources))
			},
			Entry("vadd reads vs and vt", uint32(0x60028180), 2),
			Entry("vcmp reads vs and vt", uint32(0x6C000000), 2),
			Entry("vsin reads vs only", uint32(0xD0120504), 1),
			Entry("a prefix reads nothing", uint32(0xDC0000E4), 0),
		)

		It("should not take the vsin selector for a register", func() {
			// vsin.s S100, S110
			inst := decoder.Decode(0xD0120504)

			Expect(inst.Format).To(Equal(insts.FormatVFPU4))
			Expect(inst.Vd).To(Equal(uint8(0x04)))
			Expect(inst.Vs).To(Equal(uint8(0x05)))
			Expect(inst.SrcSize).To(Equal(vfpu.VSingle))
			Expect(inst.Sources).To(Equal(1))
		})
	})

	Describe("Matrix group", func() {
		// vmmul.q M000, M100, M200 -> 0xF0088480
		It("should decode vmmul.q", func() {
			inst := decoder.Decode(0xF0088480)

			Expect(inst.Format).To(Equal(insts.FormatVFPU6))
			Expect(inst.Op).To(Equal(insts.OpMatrixMul))
			Expect(inst.Vs).To(Equal(uint8(4)))
			Expect(inst.Vt).To(Equal(uint8(8)))
			Expect(inst.MtxSize).To(Equal(vfpu.M4x4))
			Expect(inst.IsMatrix()).To(BeTrue())
		})

		It("should mark a single-size matrix op invalid", func() {
			Expect(decoder.Decode(0xF0000000).MtxSize).To(Equal(vfpu.MInvalid))
		})

		It("should decode vmscl.t with a scalar scale", func() {
			inst := decoder.Decode(0xF2008000)

			Expect(inst.Op).To(Equal(insts.OpMatrixScale))
			Expect(inst.MtxSize).To(Equal(vfpu.M3x3))
			Expect(inst.VecSize).To(Equal(vfpu.VSingle))
		})

		It("should decode vmmov.q", func() {
			inst := decoder.Decode(0xF3808080)

			Expect(inst.Op).To(Equal(insts.OpMatrixMove))
			Expect(inst.Sources).To(Equal(1))
		})

		DescribeTable("matrix initializers read no source",
			func(word uint32) {
				inst := decoder.Decode(word)

				Expect(inst.Op).To(Equal(insts.OpMatrixMove))
				Expect(inst.MtxSize).To(Equal(vfpu.M4x4))
				Expect(inst.Sources).To(BeZero())
			},
			Entry("vmidt.q M100", uint32(0xF3838084)),
			Entry("vmzero.q M100", uint32(0xF3868084)),
			Entry("vmone.q M100", uint32(0xF3878084)),
		)

		It("should decode vrot as a vector op with a scalar source", func() {
			// vrot.t C000, S000, [c, s, s]
			inst := decoder.Decode(0xF3A08000)

			Expect(inst.Op).To(Equal(insts.OpVector))
			Expect(inst.VecSize).To(Equal(vfpu.VTriple))
			Expect(inst.MtxSize).To(Equal(vfpu.MInvalid))
			Expect(inst.SrcSize).To(Equal(vfpu.VSingle))
			Expect(inst.Sources).To(Equal(1))
			Expect(inst.IsMatrix()).To(BeFalse())
		})

		It("should treat vtfm4 as a vector op", func() {
			inst := decoder.Decode(0xF1808080)

			Expect(inst.Op).To(Equal(insts.OpVector))
			Expect(inst.VecSize).To(Equal(vfpu.VQuad))
		})
	})

	Describe("Prefix group", func() {
		It("should decode vpfxs, vpfxt and vpfxd", func() {
			s := decoder.Decode(0xDC0000E4)
			Expect(s.Op).To(Equal(insts.OpVPFXS))
			Expect(s.PrefixData).To(Equal(uint32(0xE4)))
			Expect(s.IsPrefix()).To(BeTrue())

			Expect(decoder.Decode(0xDD0000E4).Op).To(Equal(insts.OpVPFXT))

			d := decoder.Decode(0xDE000F00)
			Expect(d.Op).To(Equal(insts.OpVPFXD))
			Expect(d.PrefixData).To(Equal(uint32(0xF00)))
		})

		It("should leave viim unclassified", func() {
			inst := decoder.Decode(0xDF000000)

			Expect(inst.Format).To(Equal(insts.FormatVFPU5))
			Expect(inst.Op).To(Equal(insts.OpUnknown))
		})
	})
})

var _ = Describe("Fields", func() {
	It("should extract the register fields", func() {
		Expect(insts.VD(0x0000007F)).To(Equal(0x7F))
		Expect(insts.VD(0xFFFFFF80)).To(Equal(0))
		Expect(insts.VS(0x00007F00)).To(Equal(0x7F))
		Expect(insts.VT(0x007F0000)).To(Equal(0x7F))
		Expect(insts.VT(0xFF80FFFF)).To(Equal(0))
	})

	It("should agree between strict and safe vector sizes", func() {
		for _, word := range []uint32{0, 0x80, 0x8000, 0x8080} {
			Expect(insts.GetVecSize(word)).To(Equal(insts.GetVecSizeSafe(word)))
		}
	})

	It("should reject the single encoding for matrices", func() {
		Expect(insts.GetMtxSizeSafe(0)).To(Equal(vfpu.MInvalid))
		Expect(insts.GetMtxSizeSafe(0x8080)).To(Equal(vfpu.M4x4))
		Expect(insts.GetMtxSize(0x0080)).To(Equal(vfpu.M2x2))
	})
})
