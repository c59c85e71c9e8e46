package vfpu

import "math/bits"

// Overlap classifies how two decoded register accesses share storage.
type Overlap int

// Overlap classifications.
const (
	// OverlapNone means no lane is shared.
	OverlapNone Overlap = iota
	// OverlapPartial means some, but not all, lanes are shared.
	OverlapPartial
	// OverlapEqual means both accesses cover the same lane set. A matrix
	// and its transposed view report OverlapEqual; use IsMatrixTransposed
	// to tell them apart.
	OverlapEqual
)

// String returns a short name for the classification.
func (o Overlap) String() string {
	switch o {
	case OverlapNone:
		return "none"
	case OverlapPartial:
		return "partial"
	case OverlapEqual:
		return "equal"
	default:
		return "unknown"
	}
}

// LaneMask is a set of lanes of the 128-lane register file.
type LaneMask struct {
	Lo uint64 // lanes 0-63
	Hi uint64 // lanes 64-127
}

// Add inserts a lane into the mask.
func (m *LaneMask) Add(lane uint8) {
	if lane < 64 {
		m.Lo |= 1 << lane
	} else {
		m.Hi |= 1 << (lane - 64)
	}
}

// Has reports whether lane is in the mask.
func (m LaneMask) Has(lane uint8) bool {
	if lane < 64 {
		return m.Lo&(1<<lane) != 0
	}
	return m.Hi&(1<<(lane-64)) != 0
}

// And returns the intersection of two masks.
func (m LaneMask) And(o LaneMask) LaneMask {
	return LaneMask{Lo: m.Lo & o.Lo, Hi: m.Hi & o.Hi}
}

// IsEmpty reports whether the mask holds no lanes.
func (m LaneMask) IsEmpty() bool {
	return m.Lo == 0 && m.Hi == 0
}

// Count returns the number of lanes in the mask.
func (m LaneMask) Count() int {
	return bits.OnesCount64(m.Lo) + bits.OnesCount64(m.Hi)
}

// VectorMask returns the lane set of a vector access.
func VectorMask(reg int, size VectorSize) LaneMask {
	var m LaneMask
	regs := GetVectorRegs(size, reg)
	for i := 0; i < regs.N; i++ {
		m.Add(regs.Regs[i])
	}
	return m
}

// MatrixMask returns the lane set of a matrix access.
func MatrixMask(reg int, size MatrixSize) LaneMask {
	var m LaneMask
	regs := GetMatrixRegs(size, reg)
	for i := 0; i < regs.Len(); i++ {
		m.Add(regs.Regs[i])
	}
	return m
}

// GetMaskOverlap classifies two lane sets. It works for any mix of vector
// and matrix accesses.
func GetMaskOverlap(a, b LaneMask) Overlap {
	shared := a.And(b)
	switch {
	case shared.IsEmpty():
		return OverlapNone
	case shared == a && shared == b:
		return OverlapEqual
	default:
		return OverlapPartial
	}
}

// GetVectorOverlap classifies the storage shared by two vector accesses.
// The result does not depend on argument order.
func GetVectorOverlap(reg1 int, size1 VectorSize, reg2 int, size2 VectorSize) Overlap {
	if GetMtx(reg1) != GetMtx(reg2) {
		return OverlapNone
	}
	return GetMaskOverlap(VectorMask(reg1, size1), VectorMask(reg2, size2))
}

// GetVectorOverlapCount returns the number of lanes shared by two vector
// accesses.
func GetVectorOverlapCount(reg1 int, size1 VectorSize, reg2 int, size2 VectorSize) int {
	if GetMtx(reg1) != GetMtx(reg2) {
		return 0
	}
	return VectorMask(reg1, size1).And(VectorMask(reg2, size2)).Count()
}

// GetMatrixOverlap classifies the storage shared by two matrix accesses of
// the same size. Only storage is compared, not orientation.
func GetMatrixOverlap(mtx1, mtx2 int, msize MatrixSize) Overlap {
	if mtx1 == mtx2 && msize.IsValid() {
		return OverlapEqual
	}
	if GetMtx(mtx1) != GetMtx(mtx2) {
		return OverlapNone
	}
	return GetMaskOverlap(MatrixMask(mtx1, msize), MatrixMask(mtx2, msize))
}
