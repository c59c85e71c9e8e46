package vfpu

import "math"

// VFPU half-float layout.
const (
	Float16ExpMax   = 0x1f
	Float16SignSh   = 15
	Float16SignMask = 0x1
	Float16ExpSh    = 10
	Float16ExpMask  = 0x1f
	Float16FracSh   = 0
	Float16FracMask = 0x3ff
)

// float16Bias rebiases a half exponent (bias 15) to single (bias 127).
const float16Bias = 127 - 15

// Float16ToFloat32 converts a VFPU half-float bit pattern to float32.
//
// Two details follow the hardware rather than IEEE binary16: a NaN keeps
// its fraction in the low bits of the single-precision fraction, and a
// denormal is normalised without the one-step exponent correction.
func Float16ToFloat32(h uint16) float32 {
	sign := uint32(h>>Float16SignSh) & Float16SignMask
	exponent := int32(h>>Float16ExpSh) & Float16ExpMask
	fraction := uint32(h>>Float16FracSh) & Float16FracMask

	switch {
	case exponent == Float16ExpMax:
		return math.Float32frombits(sign<<31 | 0xFF<<23 | fraction)
	case exponent == 0 && fraction == 0:
		return math.Float32frombits(sign << 31)
	}

	if exponent == 0 {
		for {
			fraction <<= 1
			exponent--
			if fraction&(Float16FracMask+1) != 0 {
				break
			}
		}
		fraction &= Float16FracMask
	}

	return math.Float32frombits(sign<<31 | uint32(exponent+float16Bias)<<23 | fraction<<13)
}
