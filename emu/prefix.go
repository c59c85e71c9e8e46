package emu

import (
	"math"

	"github.com/sarchlab/pspvfpu/insts"
	"github.com/sarchlab/pspvfpu/vfpu"
)

// prefixConstants are the values a source prefix can substitute. The
// constant is chosen by the swizzle selector plus 4 when the abs bit is set.
var prefixConstants = [8]float32{0, 1, 2, 0.5, 3, 1.0 / 3.0, 0.25, 1.0 / 6.0}

const signBit = 0x80000000

// ApplyPrefix loads a decoded vpfxs, vpfxt or vpfxd into its control
// register. It returns false for any other instruction.
func (r *RegFile) ApplyPrefix(inst *insts.Instruction) bool {
	switch inst.Op {
	case insts.OpVPFXS:
		r.Ctrl[CtrlSPrefix] = inst.PrefixData
	case insts.OpVPFXT:
		r.Ctrl[CtrlTPrefix] = inst.PrefixData
	case insts.OpVPFXD:
		r.Ctrl[CtrlDPrefix] = inst.PrefixData
	default:
		return false
	}
	return true
}

// ApplySourcePrefix rewrites the first n values of v in place according to
// a source prefix: swizzle, then abs or constant, then negate.
func ApplySourcePrefix(v []float32, n int, prefix uint32) {
	if prefix == vfpu.DefaultPrefix {
		return
	}

	var orig [4]float32
	copy(orig[:], v[:n])

	for i := 0; i < n; i++ {
		sel := vfpu.SwizzleLane(prefix, i)
		abs := vfpu.AbsLane(prefix, i)

		var bits uint32
		switch {
		case vfpu.ConstLane(prefix, i):
			idx := sel
			if abs {
				idx += 4
			}
			bits = math.Float32bits(prefixConstants[idx])
		case abs:
			bits = math.Float32bits(orig[sel]) &^ signBit
		default:
			bits = math.Float32bits(orig[sel])
		}

		if vfpu.NegateLane(prefix, i) {
			bits ^= signBit
		}
		v[i] = math.Float32frombits(bits)
	}
}

// ApplyDestPrefix saturates the first n values of v in place according to
// a destination prefix. The write mask is honored by WriteVector.
func ApplyDestPrefix(v []float32, n int, prefix uint32) {
	for i := 0; i < n; i++ {
		switch vfpu.SatLane(prefix, i) {
		case 1:
			v[i] = vfpu.Clamp(v[i], 0, 1)
		case 3:
			v[i] = vfpu.Clamp(v[i], -1, 1)
		}
	}
}

// ReadVectorPrefixed reads vector reg and applies source prefix register
// ctrl (CtrlSPrefix or CtrlTPrefix) to it.
func (r *RegFile) ReadVectorPrefixed(rd []float32, size vfpu.VectorSize, reg int, ctrl int) {
	r.ReadVector(rd, size, reg)
	ApplySourcePrefix(rd, vfpu.GetNumVectorElements(size), r.Ctrl[ctrl])
}

// WriteVectorPrefixed saturates rs in place with the destination prefix and
// writes the unmasked lanes to vector reg.
func (r *RegFile) WriteVectorPrefixed(rs []float32, size vfpu.VectorSize, reg int) {
	ApplyDestPrefix(rs, vfpu.GetNumVectorElements(size), r.Ctrl[CtrlDPrefix])
	r.WriteVector(rs, size, reg)
}
