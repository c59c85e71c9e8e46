// Package insts provides VFPU instruction definitions and operand decoding.
package insts

import "github.com/sarchlab/pspvfpu/vfpu"

// Op represents the operand shape class of a VFPU instruction.
type Op uint16

// VFPU operation classes.
const (
	OpUnknown Op = iota
	OpVector      // vd = f(vs, vt), all vectors of the encoded size
	OpMatrixMul   // md = ms * mt
	OpMatrixScale // md = ms * s[vt]
	OpMatrixMove  // vmmov, vmidt, vmzero, vmone
	OpVPFXS
	OpVPFXT
	OpVPFXD
)

// Format represents the primary opcode group of a VFPU instruction.
type Format uint8

// Instruction formats.
const (
	FormatUnknown Format = iota
	FormatVFPU0          // vadd, vsub, vsbn, vdiv
	FormatVFPU1          // vmul, vdot, vscl, vhdp, vcrs, vdet
	FormatVFPU3          // vcmp, vmin, vmax, vscmp, vsge, vslt
	FormatVFPU4          // single-source ops and conversions
	FormatVFPU5          // prefixes and immediates
	FormatVFPU6          // matrix ops
)

// Primary opcodes (bits [31:26]).
const (
	primaryVFPU0 = 0x18
	primaryVFPU1 = 0x19
	primaryVFPU3 = 0x1B
	primaryVFPU4 = 0x34
	primaryVFPU5 = 0x37
	primaryVFPU6 = 0x3C
)

// Instruction represents a decoded VFPU instruction.
type Instruction struct {
	Op     Op     // Operand shape class
	Format Format // Primary opcode group
	Word   uint32 // Raw opcode

	// Register codes
	Vd uint8 // Destination register
	Vs uint8 // First source register
	Vt uint8 // Second source register

	// Operand sizes; the one that does not apply is invalid.
	VecSize vfpu.VectorSize
	MtxSize vfpu.MatrixSize

	// Sources is how many of vs and vt (in that order) are read.
	Sources int
	// SrcSize is the size of the vector sources of an OpVector.
	SrcSize vfpu.VectorSize

	// PrefixData is the 20-bit control word set by vpfxs, vpfxt and vpfxd.
	PrefixData uint32
}

// IsMatrix reports whether the register fields name matrices.
func (inst *Instruction) IsMatrix() bool {
	switch inst.Op {
	case OpMatrixMul, OpMatrixScale, OpMatrixMove:
		return true
	default:
		return false
	}
}

// IsPrefix reports whether the instruction sets a prefix register.
func (inst *Instruction) IsPrefix() bool {
	return inst.Op == OpVPFXS || inst.Op == OpVPFXT || inst.Op == OpVPFXD
}

// Decoder decodes VFPU machine code into instructions.
type Decoder struct{}

// NewDecoder creates a new VFPU instruction decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode decodes a 32-bit VFPU instruction word. Words outside the VFPU
// groups decode with FormatUnknown and invalid sizes.
func (d *Decoder) Decode(word uint32) *Instruction {
	inst := &Instruction{
		Op:      OpUnknown,
		Format:  FormatUnknown,
		Word:    word,
		VecSize: vfpu.VInvalid,
		MtxSize: vfpu.MInvalid,
		SrcSize: vfpu.VInvalid,
	}

	switch word >> 26 {
	case primaryVFPU0:
		d.decodeVector(word, FormatVFPU0, inst)
	case primaryVFPU1:
		d.decodeVector(word, FormatVFPU1, inst)
	case primaryVFPU3:
		d.decodeVector(word, FormatVFPU3, inst)
	case primaryVFPU4:
		d.decodeVector(word, FormatVFPU4, inst)
	case primaryVFPU5:
		d.decodePrefix(word, inst)
	case primaryVFPU6:
		d.decodeMatrix(word, inst)
	}

	return inst
}

func (d *Decoder) decodeRegs(word uint32, inst *Instruction) {
	inst.Vd = uint8(VD(word))
	inst.Vs = uint8(VS(word))
	inst.Vt = uint8(VT(word))
}

// decodeVector decodes the three-register vector groups.
// Format: group | vt | size.hi | vs | size.lo | vd
// VFPU4 ops read vs only; bits [22:16] select the operation.
func (d *Decoder) decodeVector(word uint32, format Format, inst *Instruction) {
	inst.Op = OpVector
	inst.Format = format
	d.decodeRegs(word, inst)
	inst.VecSize = GetVecSizeSafe(word)
	inst.SrcSize = inst.VecSize

	inst.Sources = 2
	if format == FormatVFPU4 {
		inst.Sources = 1
	}
}

// decodePrefix decodes vpfxs, vpfxt and vpfxd.
// Format: 110111 | which(2) | 0000 | data(20)
// which == 3 selects viim/vfim, which are left as OpUnknown.
func (d *Decoder) decodePrefix(word uint32, inst *Instruction) {
	inst.Format = FormatVFPU5

	switch (word >> 24) & 3 {
	case 0:
		inst.Op = OpVPFXS
	case 1:
		inst.Op = OpVPFXT
	case 2:
		inst.Op = OpVPFXD
	default:
		return
	}

	inst.PrefixData = word & 0xFFFFF
}

// decodeMatrix decodes the matrix group. Bits [25:23] select the
// operation. In group 7, bit 21 separates vrot from the vmmov family,
// whose bits [22:16] pick vmmov (0), vmidt (3), vmzero (6) or vmone (7).
func (d *Decoder) decodeMatrix(word uint32, inst *Instruction) {
	inst.Format = FormatVFPU6
	d.decodeRegs(word, inst)

	switch (word >> 23) & 7 {
	case 0:
		inst.Op = OpMatrixMul
		inst.Sources = 2
	case 4:
		inst.Op = OpMatrixScale
		inst.Sources = 2
	case 7:
		if word&(1<<21) != 0 {
			// vrot: vector destination, scalar source, angle selector
			// in bits [20:16].
			inst.Op = OpVector
			inst.VecSize = GetVecSizeSafe(word)
			inst.SrcSize = vfpu.VSingle
			inst.Sources = 1
			return
		}
		inst.Op = OpMatrixMove
		if (word>>16)&0x7F == 0 {
			inst.Sources = 1
		}
	default:
		// vtfm, vhtfm, vcrsp and vqmul mix shapes; their vector
		// destination is still addressable.
		inst.Op = OpVector
		inst.VecSize = GetVecSizeSafe(word)
		inst.SrcSize = inst.VecSize
		inst.Sources = 2
		return
	}

	inst.MtxSize = GetMtxSizeSafe(word)
	if inst.Op == OpMatrixScale {
		inst.VecSize = vfpu.VSingle
	}
}
