package vfpu

import "fmt"

// GetVectorNotation formats a vector code the way VFPU disassemblers do:
// S for a single, C for a column, R for a row, followed by bank, column
// and row digits. An invalid size prints '?'.
func GetVectorNotation(reg int, size VectorSize) string {
	mtx := GetMtx(reg)
	col := reg & 3
	row, _, transpose := vectorRowAndLength(size, reg)

	var c byte
	switch size {
	case VSingle:
		c = 'S'
	case VPair, VTriple, VQuad:
		c = 'C'
	default:
		c = '?'
	}
	if transpose != 0 && c == 'C' {
		c = 'R'
	}

	if transpose != 0 {
		return fmt.Sprintf("%c%d%d%d", c, mtx, row, col)
	}
	return fmt.Sprintf("%c%d%d%d", c, mtx, col, row)
}

// GetMatrixNotation formats a matrix code: M for a matrix, E for a
// transposed matrix, followed by bank, column and row digits.
func GetMatrixNotation(reg int, size MatrixSize) string {
	mtx := GetMtx(reg)
	col := reg & 3
	row, _ := matrixRowAndSide(size, reg)
	transpose := IsMatrixTransposed(reg)

	c := byte('?')
	if size.IsValid() {
		c = 'M'
		if transpose {
			c = 'E'
		}
	}

	if transpose {
		return fmt.Sprintf("%c%d%d%d", c, mtx, row, col)
	}
	return fmt.Sprintf("%c%d%d%d", c, mtx, col, row)
}
