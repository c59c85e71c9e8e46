// Package vfpu provides register addressing and hardware-exact math for the
// PSP vector floating-point unit.
//
// The VFPU register file holds 128 single-precision lanes arranged as eight
// 4x4 banks. A 7-bit register code names a scalar, a vector (a column or a
// row of a bank) or a matrix (a square sub-block, optionally transposed).
// Everything in this package is a pure function over value types and is
// safe to call from any goroutine.
//
// Usage:
//
//	regs := vfpu.GetVectorRegs(vfpu.VQuad, 0x20) // R000
//	for i := 0; i < regs.Len(); i++ {
//		fmt.Println(regs.At(i))
//	}
package vfpu

// VectorSize is the number of lanes of a vector operand.
type VectorSize int

// Vector sizes.
const (
	VSingle  VectorSize = 1
	VPair    VectorSize = 2
	VTriple  VectorSize = 3
	VQuad    VectorSize = 4
	VInvalid VectorSize = -1
)

// MatrixSize is the side length of a square matrix operand.
type MatrixSize int

// Matrix sizes.
const (
	M2x2     MatrixSize = 2
	M3x3     MatrixSize = 3
	M4x4     MatrixSize = 4
	MInvalid MatrixSize = -1
)

// IsValid reports whether sz is one of the four lane counts.
func (sz VectorSize) IsValid() bool {
	return sz >= VSingle && sz <= VQuad
}

// IsValid reports whether sz is one of the three side lengths.
func (sz MatrixSize) IsValid() bool {
	return sz >= M2x2 && sz <= M4x4
}

// GetVectorSize returns the vector size matching the side of sz.
func GetVectorSize(sz MatrixSize) VectorSize {
	switch sz {
	case M2x2:
		return VPair
	case M3x3:
		return VTriple
	case M4x4:
		return VQuad
	default:
		return VInvalid
	}
}

// GetMatrixSize returns the square matrix whose side is sz lanes.
// Single lanes have no matrix counterpart.
func GetMatrixSize(sz VectorSize) MatrixSize {
	switch sz {
	case VPair:
		return M2x2
	case VTriple:
		return M3x3
	case VQuad:
		return M4x4
	default:
		return MInvalid
	}
}

// MatrixVectorSizeSafe is GetVectorSize under the name used by instruction
// handlers that size a row of a matrix operand.
func MatrixVectorSizeSafe(sz MatrixSize) VectorSize {
	return GetVectorSize(sz)
}

// MatrixVectorSize is the strict form of MatrixVectorSizeSafe.
func MatrixVectorSize(sz MatrixSize) VectorSize {
	return VectorSize(sz)
}

// GetNumVectorElements returns the lane count of sz, or 0 when invalid.
func GetNumVectorElements(sz VectorSize) int {
	if !sz.IsValid() {
		return 0
	}
	return int(sz)
}

// GetMatrixSideSafe returns the side of sz, or 0 when invalid.
func GetMatrixSideSafe(sz MatrixSize) int {
	if !sz.IsValid() {
		return 0
	}
	return int(sz)
}

// GetMatrixSide is the strict form of GetMatrixSideSafe.
func GetMatrixSide(sz MatrixSize) int {
	return int(sz)
}

// GetHalfVectorSizeSafe halves a pair or quad. Other sizes have no half.
func GetHalfVectorSizeSafe(sz VectorSize) VectorSize {
	switch sz {
	case VPair:
		return VSingle
	case VQuad:
		return VPair
	default:
		return VInvalid
	}
}

// GetHalfVectorSize is the strict form of GetHalfVectorSizeSafe; the caller
// guarantees sz is a pair or a quad.
func GetHalfVectorSize(sz VectorSize) VectorSize {
	return sz / 2
}

// GetDoubleVectorSizeSafe doubles a single or pair. Other sizes have no
// double.
func GetDoubleVectorSizeSafe(sz VectorSize) VectorSize {
	switch sz {
	case VSingle:
		return VPair
	case VPair:
		return VQuad
	default:
		return VInvalid
	}
}

// GetDoubleVectorSize is the strict form of GetDoubleVectorSizeSafe; the
// caller guarantees sz is a single or a pair.
func GetDoubleVectorSize(sz VectorSize) VectorSize {
	return sz * 2
}
