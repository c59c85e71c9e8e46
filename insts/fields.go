package insts

import "github.com/sarchlab/pspvfpu/vfpu"

// VD extracts the destination register code, bits [6:0].
func VD(op uint32) int {
	return int(op & 0x7F)
}

// VS extracts the first source register code, bits [14:8].
func VS(op uint32) int {
	return int((op >> 8) & 0x7F)
}

// VT extracts the second source register code, bits [22:16].
func VT(op uint32) int {
	return int((op >> 16) & 0x7F)
}

// sizeField combines bit 7 (low) and bit 15 (high) into the 2-bit size.
func sizeField(op uint32) int {
	a := int(op>>7) & 1
	b := int(op>>14) & 2
	return a | b
}

// GetVecSizeSafe returns the vector size encoded in op.
func GetVecSizeSafe(op uint32) vfpu.VectorSize {
	switch sizeField(op) {
	case 0:
		return vfpu.VSingle
	case 1:
		return vfpu.VPair
	case 2:
		return vfpu.VTriple
	case 3:
		return vfpu.VQuad
	}
	return vfpu.VInvalid
}

// GetVecSize is the strict form of GetVecSizeSafe. Every value of the
// 2-bit field is a valid vector size, so the two agree.
func GetVecSize(op uint32) vfpu.VectorSize {
	return vfpu.VectorSize(sizeField(op) + 1)
}

// GetMtxSizeSafe returns the matrix size encoded in op. The single-lane
// encoding has no matrix and yields MInvalid.
func GetMtxSizeSafe(op uint32) vfpu.MatrixSize {
	switch sizeField(op) {
	case 1:
		return vfpu.M2x2
	case 2:
		return vfpu.M3x3
	case 3:
		return vfpu.M4x4
	}
	return vfpu.MInvalid
}

// GetMtxSize is the strict form of GetMtxSizeSafe. The caller guarantees
// op does not use the single-lane encoding.
func GetMtxSize(op uint32) vfpu.MatrixSize {
	return vfpu.MatrixSize(sizeField(op) + 1)
}
