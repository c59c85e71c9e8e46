package main

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/sarchlab/pspvfpu/insts"
	"github.com/sarchlab/pspvfpu/timing/hazard"
	"github.com/sarchlab/pspvfpu/vfpu"
)

// parseWord parses a hex opcode, with or without a 0x prefix.
func parseWord(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid opcode %q: %w", s, err)
	}
	return uint32(v), nil
}

// parseBinary splits raw little-endian machine code into words.
func parseBinary(data []byte) ([]uint32, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("length %d is not a multiple of 4", len(data))
	}

	words := make([]uint32, 0, len(data)/4)
	for i := 0; i < len(data); i += 4 {
		words = append(words, binary.LittleEndian.Uint32(data[i:]))
	}
	return words, nil
}

func formatName(f insts.Format) string {
	switch f {
	case insts.FormatVFPU0:
		return "vfpu0"
	case insts.FormatVFPU1:
		return "vfpu1"
	case insts.FormatVFPU3:
		return "vfpu3"
	case insts.FormatVFPU4:
		return "vfpu4"
	case insts.FormatVFPU5:
		return "vfpu5"
	case insts.FormatVFPU6:
		return "vfpu6"
	default:
		return "unknown"
	}
}

func opName(op insts.Op) string {
	switch op {
	case insts.OpVector:
		return "vector"
	case insts.OpMatrixMul:
		return "mmul"
	case insts.OpMatrixScale:
		return "mscl"
	case insts.OpMatrixMove:
		return "mmov"
	case insts.OpVPFXS:
		return "vpfxs"
	case insts.OpVPFXT:
		return "vpfxt"
	case insts.OpVPFXD:
		return "vpfxd"
	default:
		return "unknown"
	}
}

// formatLanes prints lane indices as a bracketed list.
func formatLanes(lanes []uint8) string {
	parts := make([]string, len(lanes))
	for i, l := range lanes {
		parts[i] = strconv.Itoa(int(l))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func vectorOperand(reg uint8, size vfpu.VectorSize) string {
	regs, ok := vfpu.GetVectorRegsSafe(size, int(reg))
	if !ok {
		return vfpu.GetVectorNotation(int(reg), size)
	}
	return vfpu.GetVectorNotation(int(reg), size) + formatLanes(regs.Regs[:regs.N])
}

func matrixOperand(reg uint8, size vfpu.MatrixSize) string {
	regs, ok := vfpu.GetMatrixRegsSafe(size, int(reg))
	if !ok {
		return vfpu.GetMatrixNotation(int(reg), size)
	}
	return vfpu.GetMatrixNotation(int(reg), size) + formatLanes(regs.Regs[:regs.Len()])
}

// describe renders one decoded instruction on a single line.
func describe(inst *insts.Instruction) string {
	head := fmt.Sprintf("%08X  %-7s %-7s", inst.Word, formatName(inst.Format), opName(inst.Op))

	switch inst.Op {
	case insts.OpVector:
		operands := []string{vectorOperand(inst.Vd, inst.VecSize)}
		for _, reg := range []uint8{inst.Vs, inst.Vt}[:inst.Sources] {
			operands = append(operands, vectorOperand(reg, inst.SrcSize))
		}
		return head + " " + strings.Join(operands, ", ")
	case insts.OpMatrixMul:
		return fmt.Sprintf("%s %s, %s, %s", head,
			matrixOperand(inst.Vd, inst.MtxSize),
			matrixOperand(inst.Vs, inst.MtxSize),
			matrixOperand(inst.Vt, inst.MtxSize))
	case insts.OpMatrixScale:
		return fmt.Sprintf("%s %s, %s, %s", head,
			matrixOperand(inst.Vd, inst.MtxSize),
			matrixOperand(inst.Vs, inst.MtxSize),
			vectorOperand(inst.Vt, vfpu.VSingle))
	case insts.OpMatrixMove:
		if inst.Sources == 0 {
			return fmt.Sprintf("%s %s", head, matrixOperand(inst.Vd, inst.MtxSize))
		}
		return fmt.Sprintf("%s %s, %s", head,
			matrixOperand(inst.Vd, inst.MtxSize),
			matrixOperand(inst.Vs, inst.MtxSize))
	case insts.OpVPFXS, insts.OpVPFXT, insts.OpVPFXD:
		return fmt.Sprintf("%s 0x%05X", head, inst.PrefixData)
	default:
		return strings.TrimRight(head, " ")
	}
}

// describeHazard summarizes a hazard result, or returns "" when there is
// none.
func describeHazard(r hazard.Result) string {
	if !r.Any() {
		return ""
	}

	var kinds []string
	if r.RAW {
		kinds = append(kinds, "RAW")
	}
	if r.WAR {
		kinds = append(kinds, "WAR")
	}
	if r.WAW {
		kinds = append(kinds, "WAW")
	}

	line := "hazard: " + strings.Join(kinds, ",")
	if r.RAW {
		line += fmt.Sprintf(" overlap=%s stall=%d", r.ReadOverlap, r.StallCycles)
	}
	return line
}
