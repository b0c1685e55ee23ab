package entity

import "strings"

// Board - 3x3 grid stored row-major. It is a value type: assigning or passing a Board
// copies all nine cells.
type Board [3][3]Cell

// Triple - one row of the board, left to right.
type Triple [3]Cell

// EmptyBoard - returns a board with every cell empty.
func EmptyBoard() Board {
	return Board{}
}

// Get - returns the cell at the given position.
func (that Board) Get(pos Position) Cell {
	return that[pos.Row.value][pos.Col.value]
}

// IsEmpty - reports whether nothing has been placed at pos.
func (that Board) IsEmpty(pos Position) bool {
	return that.Get(pos) == CellEmpty
}

// IsFull - reports whether no empty cell is left.
func (that Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == CellEmpty {
				return false
			}
		}
	}

	return true
}

// ToRows - splits the board into its three rows for display.
func (that Board) ToRows() (Triple, Triple, Triple) {
	return Triple(that[0]), Triple(that[1]), Triple(that[2])
}

func (that Board) String() string {
	var sb strings.Builder

	for i, row := range that {
		if i > 0 {
			sb.WriteByte('/')
		}
		for _, cell := range row {
			sb.WriteString(cell.String())
		}
	}

	return sb.String()
}
