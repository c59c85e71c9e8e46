// Package emu provides the VFPU register file and operand access.
package emu

import (
	"github.com/sarchlab/pspvfpu/vfpu"
)

// VFPU control registers.
const (
	CtrlSPrefix = 0 // source prefix for vs
	CtrlTPrefix = 1 // source prefix for vt
	CtrlDPrefix = 2 // destination prefix for vd
	CtrlCC      = 3 // condition codes
	CtrlInf4    = 4
	CtrlRev     = 7
	CtrlRCX0    = 8 // first of eight random number generator registers

	NumCtrl = 16
)

// RegFile represents the VFPU register file.
// It contains 128 single-precision lanes addressed through the register
// codes decoded by package vfpu, and 16 control registers.
type RegFile struct {
	// V holds the lanes, indexed by flat lane number.
	V [vfpu.NumLanes]float32

	// Ctrl holds the control registers, including the prefixes.
	Ctrl [NumCtrl]uint32
}

// NewRegFile creates a register file with identity prefixes.
func NewRegFile() *RegFile {
	r := &RegFile{}
	r.ResetPrefixes()
	return r
}

// ResetPrefixes restores the prefixes an instruction sees when no vpfx
// instruction precedes it.
func (r *RegFile) ResetPrefixes() {
	r.Ctrl[CtrlSPrefix] = vfpu.DefaultPrefix
	r.Ctrl[CtrlTPrefix] = vfpu.DefaultPrefix
	r.Ctrl[CtrlDPrefix] = 0
}

// RewritePrefix returns the value of prefix register ctrl with the remove
// bits cleared and the add bits set. The register is not modified.
func (r *RegFile) RewritePrefix(ctrl int, remove, add uint32) uint32 {
	return vfpu.RewritePrefix(r.Ctrl[ctrl], remove, add)
}

// WriteMask reports whether lane i is masked off by the destination prefix.
func (r *RegFile) WriteMask(i int) bool {
	return vfpu.WriteMaskLane(r.Ctrl[CtrlDPrefix], i)
}

// ReadVector reads the lanes of vector reg into rd. rd must hold at least
// GetNumVectorElements(size) values.
func (r *RegFile) ReadVector(rd []float32, size vfpu.VectorSize, reg int) {
	regs := vfpu.GetVectorRegs(size, reg)
	for i := 0; i < regs.N; i++ {
		rd[i] = r.V[regs.Regs[i]]
	}
}

// WriteVector writes rs to vector reg. Lanes masked off by the destination
// prefix keep their previous value.
func (r *RegFile) WriteVector(rs []float32, size vfpu.VectorSize, reg int) {
	regs := vfpu.GetVectorRegs(size, reg)
	for i := 0; i < regs.N; i++ {
		if r.WriteMask(i) {
			continue
		}
		r.V[regs.Regs[i]] = rs[i]
	}
}

// ReadMatrix reads matrix reg into rd using a stride of 4: element
// (row i, column j) lands in rd[j*4+i]. rd must hold 16 values.
func (r *RegFile) ReadMatrix(rd []float32, size vfpu.MatrixSize, reg int) {
	regs := vfpu.GetMatrixRegs(size, reg)
	for j := 0; j < regs.Side; j++ {
		for i := 0; i < regs.Side; i++ {
			rd[j*4+i] = r.V[regs.At(i, j)]
		}
	}
}

// WriteMatrix writes rs, laid out as for ReadMatrix, to matrix reg.
func (r *RegFile) WriteMatrix(rs []float32, size vfpu.MatrixSize, reg int) {
	regs := vfpu.GetMatrixRegs(size, reg)
	for j := 0; j < regs.Side; j++ {
		for i := 0; i < regs.Side; i++ {
			r.V[regs.At(i, j)] = rs[j*4+i]
		}
	}
}
