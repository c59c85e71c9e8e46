package vfpu

import (
	"math"

	"golang.org/x/sys/cpu"
)

// halfPi is pi/2 rounded to single precision, the scale applied to a
// reduced angle before calling the library sine and cosine.
const halfPi = float32(math.Pi / 2)

// fusedSinCos selects math.Sincos for SinCos. The fused routine shares its
// reduction and polynomials with math.Sin and math.Cos, except on s390x with
// the vector facility, where Sin and Cos run in assembly.
var fusedSinCos = !cpu.S390X.HasVX

// reduceAngle maps an angle to one period. The VFPU measures angles in
// quarter turns, so a full turn is 4.
func reduceAngle(angle float32) float32 {
	turns := float32(math.Floor(float64(angle * 0.25)))
	return angle - turns*4
}

// Sin returns the VFPU sine of an angle in quarter turns.
//
// Games depend on exact results at the quarter points, which the library
// sine does not give, so those are answered from a table. Zeros in the
// table are always +0.0; signing them breaks other results.
func Sin(angle float32) float32 {
	angle = reduceAngle(angle)

	switch angle {
	case 0, 2:
		return 0
	case 1:
		return 1
	case 3:
		return -1
	}

	scaled := angle * halfPi
	return float32(math.Sin(float64(scaled)))
}

// Cos returns the VFPU cosine of an angle in quarter turns.
func Cos(angle float32) float32 {
	angle = reduceAngle(angle)

	switch angle {
	case 1, 3:
		return 0
	case 0:
		return 1
	case 2:
		return -1
	}

	scaled := angle * halfPi
	return float32(math.Cos(float64(scaled)))
}

// SinCos returns Sin(angle) and Cos(angle), bit-identical to the separate
// calls.
func SinCos(angle float32) (sine, cosine float32) {
	angle = reduceAngle(angle)

	switch angle {
	case 0:
		return 0, 1
	case 1:
		return 1, 0
	case 2:
		return 0, -1
	case 3:
		return -1, 0
	}

	scaled := float64(angle * halfPi)
	if fusedSinCos {
		s, c := math.Sincos(scaled)
		return float32(s), float32(c)
	}
	return float32(math.Sin(scaled)), float32(math.Cos(scaled))
}

// Asin returns the arcsine of v in quarter turns.
func Asin(v float32) float32 {
	radians := float32(math.Asin(float64(v)))
	return float32(float64(radians) / (math.Pi / 2))
}

// Clamp limits v to [lo, hi] the way the VFPU saturates. The upper bound
// is tested first and both tests are ordered comparisons, so NaN passes
// through unchanged and -0.0 clamps to a +0.0 lower bound.
func Clamp(v, lo, hi float32) float32 {
	if v >= hi {
		return hi
	}
	if v <= lo {
		return lo
	}
	return v
}
