package vfpu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/pspvfpu/vfpu"
)

var _ = Describe("Prefix codec", func() {
	It("should pack a mask and recover each lane", func() {
		mask := vfpu.Mask(1, 0, 1, 0)

		Expect(mask).To(Equal(uint32(0x5)))
		Expect([]int{
			vfpu.MaskLane(mask, 0),
			vfpu.MaskLane(mask, 1),
			vfpu.MaskLane(mask, 2),
			vfpu.MaskLane(mask, 3),
		}).To(Equal([]int{1, 0, 1, 0}))
	})

	It("should pack swizzles two bits per lane", func() {
		sw := vfpu.Swizzle(1, 0, 3, 2)

		Expect(sw).To(Equal(uint32(0xB1)))
		Expect(vfpu.SwizzleLane(sw, 0)).To(Equal(1))
		Expect(vfpu.SwizzleLane(sw, 2)).To(Equal(3))
		Expect(vfpu.Swizzle(0, 1, 2, 3)).To(Equal(vfpu.DefaultPrefix))
		Expect(vfpu.Swizzle(3, 3, 3, 3)).To(Equal(vfpu.AnySwizzle()))
	})

	It("should place each modifier in its own field", func() {
		Expect(vfpu.Abs(1, 1, 1, 1)).To(Equal(uint32(0x00F00)))
		Expect(vfpu.Const(1, 1, 1, 1)).To(Equal(uint32(0x0F000)))
		Expect(vfpu.Negate(1, 1, 1, 1)).To(Equal(uint32(0xF0000)))

		word := vfpu.Swizzle(0, 1, 2, 3) | vfpu.Abs(0, 1, 0, 0) | vfpu.Negate(0, 0, 0, 1)
		Expect(vfpu.AbsLane(word, 1)).To(BeTrue())
		Expect(vfpu.AbsLane(word, 0)).To(BeFalse())
		Expect(vfpu.NegateLane(word, 3)).To(BeTrue())
		Expect(vfpu.ConstLane(word, 3)).To(BeFalse())
		Expect(vfpu.SwizzleLane(word, 3)).To(Equal(3))
	})

	Describe("RewritePrefix", func() {
		It("should clear then set", func() {
			Expect(vfpu.RewritePrefix(0xFFFFF, vfpu.AnySwizzle(), vfpu.Swizzle(1, 0, 3, 2))).To(Equal(uint32(0xFFFB1)))
			Expect(vfpu.RewritePrefix(0xE4, 0, vfpu.Negate(1, 0, 0, 0))).To(Equal(uint32(0x100E4)))
		})

		DescribeTable("is idempotent",
			func(prefix, remove, add uint32) {
				once := vfpu.RewritePrefix(prefix, remove, add)
				Expect(vfpu.RewritePrefix(once, remove, add)).To(Equal(once))
			},
			Entry("swizzle replacement", uint32(0xE4), vfpu.AnySwizzle(), vfpu.Swizzle(2, 2, 2, 2)),
			Entry("overlapping remove and add", uint32(0xF00FF), uint32(0xF0F0F), uint32(0x0F0F0)),
			Entry("no-op", uint32(0x12345), uint32(0), uint32(0)),
			Entry("everything", uint32(0xFFFFFFFF), uint32(0xFFFFFFFF), uint32(0x1)),
		)
	})

	Describe("destination prefix", func() {
		It("should read saturation and write mask per lane", func() {
			dprefix := uint32(1<<0|3<<2) | vfpu.Mask(0, 0, 1, 0)<<vfpu.WriteMaskShift

			Expect(vfpu.SatLane(dprefix, 0)).To(Equal(1))
			Expect(vfpu.SatLane(dprefix, 1)).To(Equal(3))
			Expect(vfpu.SatLane(dprefix, 2)).To(Equal(0))
			Expect(vfpu.WriteMaskLane(dprefix, 2)).To(BeTrue())
			Expect(vfpu.WriteMaskLane(dprefix, 0)).To(BeFalse())
		})
	})

	Describe("IsIdentityPrefix", func() {
		It("should accept the default prefix", func() {
			Expect(vfpu.IsIdentityPrefix(vfpu.DefaultPrefix, 4)).To(BeTrue())
		})

		It("should reject modifiers on used lanes only", func() {
			Expect(vfpu.IsIdentityPrefix(vfpu.DefaultPrefix|vfpu.Negate(1, 0, 0, 0), 4)).To(BeFalse())
			Expect(vfpu.IsIdentityPrefix(vfpu.DefaultPrefix|vfpu.Abs(0, 0, 0, 1), 3)).To(BeTrue())
			Expect(vfpu.IsIdentityPrefix(vfpu.Swizzle(0, 1, 3, 3), 2)).To(BeTrue())
			Expect(vfpu.IsIdentityPrefix(vfpu.Swizzle(0, 1, 3, 3), 3)).To(BeFalse())
		})
	})
})
