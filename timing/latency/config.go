package latency

import (
	"encoding/json"
	"fmt"
	"os"
)

// TimingConfig holds latency values for the VFPU instruction groups.
// Values are estimates of the PSP VFPU pipeline depth per group.
type TimingConfig struct {
	// VectorALULatency covers vadd, vsub and friends (VFPU0).
	// Default: 5 cycles.
	VectorALULatency uint64 `json:"vector_alu_latency"`

	// VectorMulLatency covers vmul, vdot, vscl and vcrs (VFPU1).
	// Default: 5 cycles.
	VectorMulLatency uint64 `json:"vector_mul_latency"`

	// CompareLatency covers vcmp, vmin, vmax (VFPU3). Default: 1 cycle.
	CompareLatency uint64 `json:"compare_latency"`

	// UnaryLatency covers single-source ops and conversions (VFPU4),
	// including the transcendentals. Default: 7 cycles.
	UnaryLatency uint64 `json:"unary_latency"`

	// MatrixLatency covers vmmul and vmscl. Default: 13 cycles.
	MatrixLatency uint64 `json:"matrix_latency"`

	// MatrixMoveLatency covers vmmov, vmidt, vmzero and vmone.
	// Default: 4 cycles.
	MatrixMoveLatency uint64 `json:"matrix_move_latency"`

	// PrefixLatency covers vpfxs, vpfxt and vpfxd. Default: 1 cycle.
	PrefixLatency uint64 `json:"prefix_latency"`
}

// DefaultTimingConfig returns a TimingConfig with the default estimates.
func DefaultTimingConfig() *TimingConfig {
	return &TimingConfig{
		VectorALULatency:  5,
		VectorMulLatency:  5,
		CompareLatency:    1,
		UnaryLatency:      7,
		MatrixLatency:     13,
		MatrixMoveLatency: 4,
		PrefixLatency:     1,
	}
}

// LoadConfig loads a TimingConfig from a JSON file. Fields missing from
// the file keep their defaults.
func LoadConfig(path string) (*TimingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read timing config file: %w", err)
	}

	config := DefaultTimingConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse timing config: %w", err)
	}

	return config, nil
}

// SaveConfig writes a TimingConfig to a JSON file.
func (c *TimingConfig) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize timing config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write timing config file: %w", err)
	}

	return nil
}

// Validate checks that all latency values are valid (> 0).
func (c *TimingConfig) Validate() error {
	if c.VectorALULatency == 0 {
		return fmt.Errorf("vector_alu_latency must be > 0")
	}
	if c.VectorMulLatency == 0 {
		return fmt.Errorf("vector_mul_latency must be > 0")
	}
	if c.CompareLatency == 0 {
		return fmt.Errorf("compare_latency must be > 0")
	}
	if c.UnaryLatency == 0 {
		return fmt.Errorf("unary_latency must be > 0")
	}
	if c.MatrixLatency == 0 {
		return fmt.Errorf("matrix_latency must be > 0")
	}
	if c.MatrixMoveLatency == 0 {
		return fmt.Errorf("matrix_move_latency must be > 0")
	}
	if c.PrefixLatency == 0 {
		return fmt.Errorf("prefix_latency must be > 0")
	}
	return nil
}

// Clone returns a copy of the TimingConfig.
func (c *TimingConfig) Clone() *TimingConfig {
	clone := *c
	return &clone
}
