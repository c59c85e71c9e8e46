// Package main provides vfpudis, a VFPU operand disassembler.
// It decodes VFPU opcodes into register notation and physical lane lists,
// and optionally reports data hazards between consecutive instructions.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/xyproto/env/v2"

	"github.com/sarchlab/pspvfpu/insts"
	"github.com/sarchlab/pspvfpu/loader"
	"github.com/sarchlab/pspvfpu/timing/hazard"
	"github.com/sarchlab/pspvfpu/timing/latency"
)

var (
	hazards    = flag.Bool("hazards", env.Bool("VFPUDIS_HAZARDS"), "Report hazards between consecutive instructions")
	configPath = flag.String("config", env.Str("VFPUDIS_CONFIG"), "Path to timing configuration JSON file")
	inputPath  = flag.String("file", "", "Read little-endian opcodes from a raw binary file")
	elfPath    = flag.String("elf", "", "Read opcodes from the executable segments of a PSP ELF")
	verbose    = flag.Bool("v", env.Bool("VFPUDIS_VERBOSE"), "Verbose output")
)

func main() {
	flag.Parse()

	logrus.SetOutput(os.Stderr)
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if flag.NArg() < 1 && *inputPath == "" && *elfPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: vfpudis [options] <opcode>...\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	words, err := collectWords(flag.Args(), *inputPath, *elfPath)
	if err != nil {
		logrus.WithError(err).Error("Error reading opcodes")
		os.Exit(1)
	}

	var hazardUnit *hazard.HazardUnit
	if *hazards {
		table, err := loadTable(*configPath)
		if err != nil {
			logrus.WithError(err).Error("Error loading timing config")
			os.Exit(1)
		}
		hazardUnit = hazard.NewHazardUnit(table)
	}

	decoder := insts.NewDecoder()
	var prev *insts.Instruction
	for _, word := range words {
		inst := decoder.Decode(word)
		logrus.WithFields(logrus.Fields{
			"word":   fmt.Sprintf("0x%08X", word),
			"format": formatName(inst.Format),
			"op":     opName(inst.Op),
		}).Debug("Decoded")

		if inst.Format == insts.FormatUnknown {
			logrus.WithField("word", fmt.Sprintf("0x%08X", word)).Warn("Not a VFPU instruction")
		}

		fmt.Println(describe(inst))

		if hazardUnit != nil && prev != nil {
			if line := describeHazard(hazardUnit.Detect(prev, inst)); line != "" {
				fmt.Println("    " + line)
			}
		}
		prev = inst
	}
}

// collectWords gathers opcodes from a PSP ELF, a raw binary file and the
// command line, in that order. Empty paths are skipped.
func collectWords(args []string, path, elfFile string) ([]uint32, error) {
	var words []uint32

	if elfFile != "" {
		prog, err := loader.Load(elfFile)
		if err != nil {
			return nil, err
		}
		code := prog.CodeWords()
		logrus.WithFields(logrus.Fields{
			"entry":    fmt.Sprintf("0x%08X", prog.EntryPoint),
			"segments": len(prog.Segments),
			"words":    len(code),
		}).Debug("Loaded ELF")
		for _, w := range code {
			words = append(words, w.Value)
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read opcode file: %w", err)
		}
		fileWords, err := parseBinary(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		words = append(words, fileWords...)
	}

	for _, arg := range args {
		word, err := parseWord(arg)
		if err != nil {
			return nil, err
		}
		words = append(words, word)
	}

	return words, nil
}

// loadTable builds the latency table from path, or the defaults when path
// is empty.
func loadTable(path string) (*latency.Table, error) {
	if path == "" {
		return latency.NewTable(), nil
	}

	config, err := latency.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid timing config: %w", err)
	}

	return latency.NewTableWithConfig(config), nil
}
