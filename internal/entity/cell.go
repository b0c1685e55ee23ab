package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tiptaptoe/internal/apperror"
)

// Cell - content of a single square on the board.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellO
	CellX
)

// Player - a mark that can be placed on the board. Only PlayerO and PlayerX are
// valid; the zero Player is not a mark.
type Player uint8

const (
	PlayerO Player = Player(CellO)
	PlayerX Player = Player(CellX)
)

func (that Cell) String() string {
	switch that {
	case CellEmpty:
		return " "
	case CellO:
		return "O"
	case CellX:
		return "X"
	default:
		return "?"
	}
}

func (that Cell) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

// IsValid - reports whether the player is O or X.
func (that Player) IsValid() bool {
	return that == PlayerO || that == PlayerX
}

// Cell - returns the cell value a player's mark occupies.
func (that Player) Cell() Cell {
	return Cell(that)
}

func (that Player) String() string {
	if !that.IsValid() {
		return ""
	}

	return that.Cell().String()
}

func (that Player) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

// ParsePlayer - converts "O" or "X" into a Player.
func ParsePlayer(mark string) (Player, error) {
	switch mark {
	case "O":
		return PlayerO, nil
	case "X":
		return PlayerX, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownPlayer, mark)
	}
}
