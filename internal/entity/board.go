package entity

import "strings"

// BoardSize is the side length of the board the game is played on.
const BoardSize = 3

// Board is a square grid of marks addressed row by row.
type Board struct {
	size  int
	cells [][]Mark
}

// NewBoard - creates a size×size board with every cell Empty.
func NewBoard(size int) *Board {
	cells := make([][]Mark, size)
	for row := range cells {
		cells[row] = make([]Mark, size)
	}

	return &Board{
		size:  size,
		cells: cells,
	}
}

func (that *Board) Size() int {
	return that.size
}

// Cells returns the number of cells on the board.
func (that *Board) Cells() int {
	return that.size * that.size
}

// Place puts mark on the cell with the given row-major index, overwriting whatever was there.
// The index must already be validated to lie in [0, Cells()); anything else panics.
func (that *Board) Place(index int, mark Mark) {
	that.cells[index/that.size][index%that.size] = mark
}

// At returns the mark on the cell with the given row-major index. Same precondition as Place.
func (that *Board) At(index int) Mark {
	return that.cells[index/that.size][index%that.size]
}

func (that *Board) IsFull() bool {
	for _, row := range that.cells {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

// Winner returns the mark owning a complete line, or Empty if there is none.
// Lines are checked rows first, then columns, then the main diagonal, then the anti-diagonal.
func (that *Board) Winner() Mark {
	n := that.size

	for row := 0; row < n; row++ {
		if mark := that.line(row, 0, 0, 1); mark != Empty {
			return mark
		}
	}

	for col := 0; col < n; col++ {
		if mark := that.line(0, col, 1, 0); mark != Empty {
			return mark
		}
	}

	if mark := that.line(0, 0, 1, 1); mark != Empty {
		return mark
	}

	return that.line(0, n-1, 1, -1)
}

// line walks n cells from (row, col) in steps of (dRow, dCol) and returns their mark
// if all of them hold the same one, Empty otherwise.
func (that *Board) line(row, col, dRow, dCol int) Mark {
	mark := that.cells[row][col]
	if mark == Empty {
		return Empty
	}

	for i := 1; i < that.size; i++ {
		if that.cells[row+i*dRow][col+i*dCol] != mark {
			return Empty
		}
	}

	return mark
}

// String renders the grid with "|" between cells and "-+-" lines between rows.
func (that *Board) String() string {
	separator := "-" + strings.Repeat("+-", that.size-1)

	rows := make([]string, 0, that.size)
	for _, row := range that.cells {
		glyphs := make([]string, 0, that.size)
		for _, cell := range row {
			glyphs = append(glyphs, cell.String())
		}

		rows = append(rows, strings.Join(glyphs, "|"))
	}

	return strings.Join(rows, "\n"+separator+"\n")
}
