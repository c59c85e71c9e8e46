// Package latency provides VFPU instruction timing estimates.
//
// The latency values are estimates for the PSP VFPU pipeline and can be
// configured via TimingConfig.
package latency

import (
	"github.com/sarchlab/pspvfpu/insts"
)

// Table provides instruction latency lookups.
type Table struct {
	config *TimingConfig
}

// NewTable creates a new latency table with default timing values.
func NewTable() *Table {
	return &Table{
		config: DefaultTimingConfig(),
	}
}

// NewTableWithConfig creates a new latency table with custom timing configuration.
func NewTableWithConfig(config *TimingConfig) *Table {
	return &Table{
		config: config,
	}
}

// GetLatency returns the execution latency in cycles for the given instruction.
func (t *Table) GetLatency(inst *insts.Instruction) uint64 {
	if inst == nil {
		return 1
	}

	switch inst.Op {
	case insts.OpVPFXS, insts.OpVPFXT, insts.OpVPFXD:
		return t.config.PrefixLatency
	case insts.OpMatrixMul, insts.OpMatrixScale:
		return t.config.MatrixLatency
	case insts.OpMatrixMove:
		return t.config.MatrixMoveLatency
	}

	switch inst.Format {
	case insts.FormatVFPU0:
		return t.config.VectorALULatency
	case insts.FormatVFPU1, insts.FormatVFPU6:
		return t.config.VectorMulLatency
	case insts.FormatVFPU3:
		return t.config.CompareLatency
	case insts.FormatVFPU4:
		return t.config.UnaryLatency
	default:
		return 1
	}
}

// Config returns the current timing configuration.
func (t *Table) Config() *TimingConfig {
	return t.config
}
