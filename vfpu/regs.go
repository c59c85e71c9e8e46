package vfpu

// NumLanes is the number of physical float registers in the VFPU.
const NumLanes = 128

// NumBanks is the number of 4x4 register banks.
const NumBanks = 8

// Register code layout.
//
//	bits 0-1: column within the bank
//	bits 2-4: bank
//	bit  5:   orientation (transpose for matrices, row slice for vectors)
//	bits 5-6: starting row, interpretation depends on the operand size
const (
	transposeBit = 0x20
	bankMask     = 0x1C
)

// VectorRegs is the decoded lane list of a vector operand.
// Regs[:N] holds flat lane indices in element order.
type VectorRegs struct {
	Regs [4]uint8
	N    int
}

// Len returns the number of decoded lanes.
func (v VectorRegs) Len() int {
	return v.N
}

// At returns the lane index of element i.
func (v VectorRegs) At(i int) uint8 {
	return v.Regs[i]
}

// MatrixRegs is the decoded lane list of a matrix operand.
// Regs[j*Side+i] is the lane of row i of column j; in other words the
// list runs column by column.
type MatrixRegs struct {
	Regs [16]uint8
	Side int
}

// Len returns the number of decoded lanes, Side*Side.
func (m MatrixRegs) Len() int {
	return m.Side * m.Side
}

// At returns the lane index of the element at (row, column).
func (m MatrixRegs) At(row, column int) uint8 {
	return m.Regs[column*m.Side+row]
}

// Xpose toggles the orientation bit of a register code.
func Xpose(reg int) int {
	return reg ^ transposeBit
}

// TransposeMatrixReg returns the code of the transposed view of a matrix.
// Applying it twice returns the original code.
func TransposeMatrixReg(matrixReg int) int {
	return matrixReg ^ transposeBit
}

// GetMtx returns the bank (0-7) addressed by a register code. Two 4x4
// operands overlap exactly when their banks match.
func GetMtx(reg int) int {
	return (reg >> 2) & 7
}

// IsMatrixTransposed reports whether a matrix code addresses the
// transposed (E) view of its bank.
//
// The orientation bit is shared by vectors and matrices: a matrix code with
// the bit set is transposed, while a vector code with the bit set names a
// row rather than a column. IsVectorColumn is therefore the negation of
// IsMatrixTransposed on the same code.
func IsMatrixTransposed(matrixReg int) bool {
	return (matrixReg>>5)&1 != 0
}

// IsVectorColumn reports whether a vector code names a column slice.
func IsVectorColumn(vectorReg int) bool {
	return (vectorReg>>5)&1 == 0
}

// vectorRowAndLength decodes the starting row of a vector operand.
func vectorRowAndLength(size VectorSize, reg int) (row, length, transpose int) {
	transpose = (reg >> 5) & 1

	switch size {
	case VSingle:
		transpose = 0
		row = (reg >> 5) & 3
		length = 1
	case VPair:
		row = (reg >> 5) & 2
		length = 2
	case VTriple:
		row = (reg >> 6) & 1
		length = 3
	case VQuad:
		row = (reg >> 5) & 2
		length = 4
	}

	return row, length, transpose
}

// matrixRowAndSide decodes the starting row of a matrix operand.
func matrixRowAndSide(size MatrixSize, reg int) (row, side int) {
	switch size {
	case M2x2:
		row = (reg >> 5) & 2
		side = 2
	case M3x3:
		row = (reg >> 6) & 1
		side = 3
	case M4x4:
		row = (reg >> 5) & 2
		side = 4
	}

	return row, side
}

// laneIndex maps a bank-relative (col, row) to a flat lane. Columns are
// adjacent lanes, banks start 4 lanes apart and rows are 32 lanes apart.
// A transposed access swaps the two axes.
func laneIndex(mtx, col, row int, transpose bool) uint8 {
	if transpose {
		return uint8(mtx*4 + (row & 3) + (col&3)*32)
	}
	return uint8(mtx*4 + (col & 3) + (row&3)*32)
}

// GetVectorRegs decodes a vector register code into its lanes. The lanes
// walk down a column (or along a row when the orientation bit is set) and
// wrap within the bank. An invalid size decodes to an empty list.
func GetVectorRegs(size VectorSize, vectorReg int) VectorRegs {
	var out VectorRegs

	mtx := GetMtx(vectorReg)
	col := vectorReg & 3
	row, length, transpose := vectorRowAndLength(size, vectorReg)

	for i := 0; i < length; i++ {
		out.Regs[i] = laneIndex(mtx, col, row+i, transpose != 0)
	}
	out.N = length

	return out
}

// GetVectorRegsSafe is GetVectorRegs with an explicit validity result.
func GetVectorRegsSafe(size VectorSize, vectorReg int) (VectorRegs, bool) {
	if !size.IsValid() {
		return VectorRegs{}, false
	}
	return GetVectorRegs(size, vectorReg), true
}

// GetMatrixRegs decodes a matrix register code into its lanes. Sizes below
// 4x4 take the sub-block starting at the coded row and column. An invalid
// size decodes to an empty list.
func GetMatrixRegs(size MatrixSize, matrixReg int) MatrixRegs {
	var out MatrixRegs

	mtx := GetMtx(matrixReg)
	col := matrixReg & 3
	row, side := matrixRowAndSide(size, matrixReg)
	transpose := IsMatrixTransposed(matrixReg)

	for j := 0; j < side; j++ {
		for i := 0; i < side; i++ {
			out.Regs[j*side+i] = laneIndex(mtx, col+j, row+i, transpose)
		}
	}
	out.Side = side

	return out
}

// GetMatrixRegsSafe is GetMatrixRegs with an explicit validity result.
func GetMatrixRegsSafe(size MatrixSize, matrixReg int) (MatrixRegs, bool) {
	if !size.IsValid() {
		return MatrixRegs{}, false
	}
	return GetMatrixRegs(size, matrixReg), true
}

// GetColumnName returns the vector code of column `column` of the matrix
// in bank `matrix`, starting `offset` rows down.
//
// If the matrix is itself transposed, the column code reads a row of the
// transposed view, and GetRowName reads a column.
func GetColumnName(matrix int, msize MatrixSize, column, offset int) int {
	return matrix*4 + column + offset*32
}

// GetRowName returns the vector code of row `row` of the matrix in bank
// `matrix`, starting `offset` columns across.
func GetRowName(matrix int, msize MatrixSize, row, offset int) int {
	return transposeBit | (matrix*4 + row + offset*32)
}

// GetMatrixName returns the matrix code for the sub-block of bank `matrix`
// starting at (row, column). Only 2x2 and 3x3 sub-blocks may start away
// from the origin: a 3x3 starts at 0 or 1, a 2x2 at 0 or 2.
func GetMatrixName(matrix int, msize MatrixSize, column, row int, transposed bool) int {
	name := matrix * 4
	if transposed {
		name |= transposeBit
	}

	switch msize {
	case M3x3:
		name |= (row << 6) | column
	case M2x2:
		name |= (row << 5) | column
	}

	return name
}

// GetMatrixColumns returns the vector codes of each column of a matrix.
// Only the first GetMatrixSide(msize) entries are meaningful.
func GetMatrixColumns(matrixReg int, msize MatrixSize) [4]uint8 {
	var vecs [4]uint8

	n := GetMatrixSideSafe(msize)
	col := matrixReg & 3
	row := (matrixReg >> 5) & 2
	transpose := (matrixReg >> 5) & 1

	for i := 0; i < n; i++ {
		vecs[i] = uint8((transpose << 5) | (row << 5) | (matrixReg & bankMask) | (i + col))
	}

	return vecs
}

// GetMatrixRows returns the vector codes of each row of a matrix.
// Only the first GetMatrixSide(msize) entries are meaningful.
func GetMatrixRows(matrixReg int, msize MatrixSize) [4]uint8 {
	var vecs [4]uint8

	n := GetMatrixSideSafe(msize)
	col := matrixReg & 3
	row := (matrixReg >> 5) & 2

	swappedCol := 0
	if row != 0 {
		swappedCol = 2
		if msize == M3x3 {
			swappedCol = 1
		}
	}
	swappedRow := 0
	if col != 0 {
		swappedRow = 2
	}
	transpose := ((matrixReg >> 5) & 1) ^ 1

	for i := 0; i < n; i++ {
		vecs[i] = uint8((transpose << 5) | (swappedRow << 5) | (matrixReg & bankMask) | (i + swappedCol))
	}

	return vecs
}
