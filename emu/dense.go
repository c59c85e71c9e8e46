package emu

import (
	"gonum.org/v1/gonum/mat"

	"github.com/sarchlab/pspvfpu/vfpu"
)

// MatrixDense returns a copy of matrix reg as a gonum matrix, with rows and
// columns as the VFPU sees them (a transposed code gives the transpose).
// An invalid size returns nil.
func (r *RegFile) MatrixDense(size vfpu.MatrixSize, reg int) *mat.Dense {
	regs, ok := vfpu.GetMatrixRegsSafe(size, reg)
	if !ok {
		return nil
	}

	data := make([]float64, regs.Len())
	for i := 0; i < regs.Side; i++ {
		for j := 0; j < regs.Side; j++ {
			data[i*regs.Side+j] = float64(r.V[regs.At(i, j)])
		}
	}

	return mat.NewDense(regs.Side, regs.Side, data)
}

// SetMatrixDense stores m into matrix reg, rounding to single precision.
// m must be GetMatrixSide(size) square.
func (r *RegFile) SetMatrixDense(size vfpu.MatrixSize, reg int, m mat.Matrix) {
	regs := vfpu.GetMatrixRegs(size, reg)
	for i := 0; i < regs.Side; i++ {
		for j := 0; j < regs.Side; j++ {
			r.V[regs.At(i, j)] = float32(m.At(i, j))
		}
	}
}
