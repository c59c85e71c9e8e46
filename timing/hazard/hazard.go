// Package hazard detects data hazards between VFPU instructions.
//
// VFPU operands alias each other: a row, a column and a matrix in the same
// bank can share lanes without sharing a register code. Hazards are
// therefore found by comparing decoded lane sets rather than register
// numbers.
package hazard

import (
	"github.com/sarchlab/pspvfpu/insts"
	"github.com/sarchlab/pspvfpu/timing/latency"
	"github.com/sarchlab/pspvfpu/vfpu"
)

// Operands holds the lanes an instruction writes and reads.
type Operands struct {
	// Dest is the set of lanes written.
	Dest vfpu.LaneMask
	// Src holds the lanes read through vs and vt.
	Src [2]vfpu.LaneMask
}

// Result contains the hazards of a later instruction against an earlier one.
type Result struct {
	// RAW is set when the later instruction reads lanes the earlier writes.
	RAW bool
	// WAR is set when the later instruction writes lanes the earlier reads.
	WAR bool
	// WAW is set when both write a common lane.
	WAW bool
	// ReadOverlap is the strongest overlap between the earlier destination
	// and a later source.
	ReadOverlap vfpu.Overlap
	// StallCycles is the number of cycles the later instruction must wait
	// when issued right after the earlier one.
	StallCycles uint64
}

// Any reports whether any hazard was found.
func (r Result) Any() bool {
	return r.RAW || r.WAR || r.WAW
}

// HazardUnit detects data hazards between decoded VFPU instructions.
type HazardUnit struct {
	latency *latency.Table
}

// NewHazardUnit creates a new hazard detection unit. A nil table uses the
// default latencies.
func NewHazardUnit(table *latency.Table) *HazardUnit {
	if table == nil {
		table = latency.NewTable()
	}
	return &HazardUnit{latency: table}
}

// DecodeOperands returns the lane sets of an instruction's operands.
// Only the first inst.Sources of vs and vt are read. Prefix and unknown
// instructions touch no lanes.
func DecodeOperands(inst *insts.Instruction) Operands {
	var ops Operands
	var src [2]vfpu.LaneMask

	switch inst.Op {
	case insts.OpVector:
		ops.Dest = vfpu.VectorMask(int(inst.Vd), inst.VecSize)
		src[0] = vfpu.VectorMask(int(inst.Vs), inst.SrcSize)
		src[1] = vfpu.VectorMask(int(inst.Vt), inst.SrcSize)
	case insts.OpMatrixMul:
		ops.Dest = vfpu.MatrixMask(int(inst.Vd), inst.MtxSize)
		src[0] = vfpu.MatrixMask(int(inst.Vs), inst.MtxSize)
		src[1] = vfpu.MatrixMask(int(inst.Vt), inst.MtxSize)
	case insts.OpMatrixScale:
		ops.Dest = vfpu.MatrixMask(int(inst.Vd), inst.MtxSize)
		src[0] = vfpu.MatrixMask(int(inst.Vs), inst.MtxSize)
		src[1] = vfpu.VectorMask(int(inst.Vt), vfpu.VSingle)
	case insts.OpMatrixMove:
		ops.Dest = vfpu.MatrixMask(int(inst.Vd), inst.MtxSize)
		src[0] = vfpu.MatrixMask(int(inst.Vs), inst.MtxSize)
	}

	for i := 0; i < inst.Sources && i < len(src); i++ {
		ops.Src[i] = src[i]
	}

	return ops
}

// Detect checks the later instruction against the earlier one.
func (h *HazardUnit) Detect(earlier, later *insts.Instruction) Result {
	var result Result

	e := DecodeOperands(earlier)
	l := DecodeOperands(later)

	for _, src := range l.Src {
		switch vfpu.GetMaskOverlap(e.Dest, src) {
		case vfpu.OverlapEqual:
			result.RAW = true
			result.ReadOverlap = vfpu.OverlapEqual
		case vfpu.OverlapPartial:
			result.RAW = true
			if result.ReadOverlap == vfpu.OverlapNone {
				result.ReadOverlap = vfpu.OverlapPartial
			}
		}
	}

	for _, src := range e.Src {
		if !l.Dest.And(src).IsEmpty() {
			result.WAR = true
		}
	}

	result.WAW = !e.Dest.And(l.Dest).IsEmpty()

	if lat := h.latency.GetLatency(earlier); result.RAW && lat > 0 {
		result.StallCycles = lat - 1
	}

	return result
}

// CanReorder reports whether two instructions may be swapped without
// changing the lanes either one observes.
func (h *HazardUnit) CanReorder(a, b *insts.Instruction) bool {
	if a.IsPrefix() || b.IsPrefix() {
		return false
	}
	return !h.Detect(a, b).Any()
}
