// Package main provides the entry point for pspvfpu.
// pspvfpu models the PSP VFPU register file: operand decoding, lane
// overlap, prefixes and the unit's transcendental arithmetic.
//
// For the disassembler, use: go run ./cmd/vfpudis
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("pspvfpu - PSP VFPU register and operand model")
	fmt.Println("")
	fmt.Println("Usage: vfpudis [options] <opcode>...")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -elf       Read opcodes from a PSP ELF")
	fmt.Println("  -file      Read opcodes from a raw binary file")
	fmt.Println("  -hazards   Report hazards between consecutive instructions")
	fmt.Println("  -config    Path to timing configuration JSON file")
	fmt.Println("  -v         Verbose output")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/vfpudis' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/vfpudis' instead.")
	}
}
