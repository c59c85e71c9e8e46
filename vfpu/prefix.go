package vfpu

// Source prefix control word layout. Each field holds one entry per lane,
// lanes x, y, z, w from least to most significant.
const (
	SwizzleShift = 0  // 2 bits per lane: source lane index
	AbsShift     = 8  // 1 bit per lane: take the absolute value
	ConstShift   = 12 // 1 bit per lane: substitute a constant
	NegateShift  = 16 // 1 bit per lane: negate
)

// Destination prefix control word layout.
const (
	SatShift       = 0 // 2 bits per lane: 0 none, 1 clamp [0,1], 3 clamp [-1,1]
	WriteMaskShift = 8 // 1 bit per lane: lane is not written
)

// DefaultPrefix is a source prefix that passes every lane through
// unchanged (swizzle x, y, z, w and no modifiers).
const DefaultPrefix uint32 = 0xE4

// Swizzle packs four 2-bit source lane selectors.
func Swizzle(x, y, z, w int) uint32 {
	return uint32(x<<0 | y<<2 | z<<4 | w<<6)
}

// Mask packs four 1-bit lane flags.
func Mask(x, y, z, w int) uint32 {
	return uint32(x<<0 | y<<1 | z<<2 | w<<3)
}

// AnySwizzle is the all-ones swizzle field. Rewrite logic treats it as
// "no particular permutation requested", and removing it clears the whole
// swizzle field.
func AnySwizzle() uint32 {
	return 0x000000FF
}

// Abs packs absolute-value flags at their prefix position.
func Abs(x, y, z, w int) uint32 {
	return Mask(x, y, z, w) << AbsShift
}

// Const packs constant-substitution flags at their prefix position.
func Const(x, y, z, w int) uint32 {
	return Mask(x, y, z, w) << ConstShift
}

// Negate packs negation flags at their prefix position.
func Negate(x, y, z, w int) uint32 {
	return Mask(x, y, z, w) << NegateShift
}

// RewritePrefix clears the bits in remove and then sets the bits in add.
// It does nothing else, so applying the same rewrite twice changes
// nothing the second time.
func RewritePrefix(prefix, remove, add uint32) uint32 {
	return (prefix &^ remove) | add
}

// SwizzleLane returns the source lane selected for lane i.
func SwizzleLane(prefix uint32, i int) int {
	return int(prefix>>(SwizzleShift+2*uint(i))) & 3
}

// MaskLane returns the flag of lane i in a packed Mask.
func MaskLane(mask uint32, i int) int {
	return int(mask>>uint(i)) & 1
}

// AbsLane reports whether lane i takes the absolute value.
func AbsLane(prefix uint32, i int) bool {
	return MaskLane(prefix>>AbsShift, i) != 0
}

// ConstLane reports whether lane i is a constant substitution.
func ConstLane(prefix uint32, i int) bool {
	return MaskLane(prefix>>ConstShift, i) != 0
}

// NegateLane reports whether lane i is negated.
func NegateLane(prefix uint32, i int) bool {
	return MaskLane(prefix>>NegateShift, i) != 0
}

// SatLane returns the saturation mode of lane i of a destination prefix.
func SatLane(prefix uint32, i int) int {
	return int(prefix>>(SatShift+2*uint(i))) & 3
}

// WriteMaskLane reports whether lane i is masked off (not written) by a
// destination prefix.
func WriteMaskLane(prefix uint32, i int) bool {
	return MaskLane(prefix>>WriteMaskShift, i) != 0
}

// IsIdentityPrefix reports whether a source prefix changes none of the
// first n lanes.
func IsIdentityPrefix(prefix uint32, n int) bool {
	for i := 0; i < n; i++ {
		if SwizzleLane(prefix, i) != i || AbsLane(prefix, i) || ConstLane(prefix, i) || NegateLane(prefix, i) {
			return false
		}
	}
	return true
}
