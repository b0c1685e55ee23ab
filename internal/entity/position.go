package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tiptaptoe/internal/apperror"
)

// Index - row or column coordinate. Only Index0, Index1 and Index2 can be constructed,
// so every Index is in range.
type Index struct {
	value uint8
}

var (
	Index0 = Index{value: 0}
	Index1 = Index{value: 1}
	Index2 = Index{value: 2}

	// Indexes lists every coordinate in board order.
	Indexes = [3]Index{Index0, Index1, Index2}
)

// ParseIndex - validates an integer coordinate coming from outside the engine.
func ParseIndex(i int) (Index, error) {
	if i < 0 || i >= len(Indexes) {
		return Index{}, fmt.Errorf("%w: %d", apperror.ErrInvalidIndex, i)
	}

	return Indexes[i], nil
}

func (that Index) Int() int {
	return int(that.value)
}

// Position - (row, col) address of a cell.
type Position struct {
	Row Index
	Col Index
}

func At(row, col Index) Position {
	return Position{Row: row, Col: col}
}

// ParsePosition - builds a Position from two integer coordinates.
func ParsePosition(row, col int) (Position, error) {
	r, err := ParseIndex(row)
	if err != nil {
		return Position{}, fmt.Errorf("row: %w", err)
	}

	c, err := ParseIndex(col)
	if err != nil {
		return Position{}, fmt.Errorf("col: %w", err)
	}

	return At(r, c), nil
}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row.Int(), that.Col.Int())
}

func (that Position) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}
