// Package insts provides VFPU instruction definitions and operand decoding.
//
// This package extracts the register and size fields of PSP VFPU opcodes.
// It classifies the instruction groups the register addressing layer needs:
//   - Vector ALU groups (VFPU0, VFPU1, VFPU3, VFPU4): vd, vs, vt vectors
//   - Matrix group (VFPU6): vmmul, vmscl and friends
//   - Prefix instructions (VFPU5): vpfxs, vpfxt, vpfxd
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst := decoder.Decode(0x60028180) // vadd.q C000, C010, C020
//	fmt.Printf("Vd: %d, Vs: %d, Vt: %d, size: %d\n", inst.Vd, inst.Vs, inst.Vt, inst.VecSize)
package insts
