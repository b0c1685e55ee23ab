package tictactoe

import (
	"github.com/rocketscienceinc/tiptaptoe/internal/apperror"
	"github.com/rocketscienceinc/tiptaptoe/internal/entity"
)

// PlayOutcome - whether Play placed the mark.
type PlayOutcome uint8

const (
	Applied PlayOutcome = iota + 1
	Occupied
	InvalidPlayer
)

func (that PlayOutcome) String() string {
	switch that {
	case Applied:
		return "applied"
	case Occupied:
		return "occupied"
	case InvalidPlayer:
		return "invalid_player"
	default:
		return "unknown"
	}
}

// PlayResult - board produced by Play. Unless Applied it is the input board, unchanged.
type PlayResult struct {
	Outcome PlayOutcome
	Board   entity.Board
}

// Err - returns the rejection reason, nil for an applied move.
func (that PlayResult) Err() error {
	switch that.Outcome {
	case Occupied:
		return apperror.ErrCellOccupied
	case InvalidPlayer:
		return apperror.ErrUnknownPlayer
	default:
		return nil
	}
}

// SetCell - returns a copy of board with player's mark at pos. It overwrites
// unconditionally; callers check emptiness first.
func SetCell(board entity.Board, pos entity.Position, player entity.Player) entity.Board {
	board[pos.Row.Int()][pos.Col.Int()] = player.Cell()

	return board
}

// Play - places player's mark at pos if the cell is empty.
func Play(board entity.Board, pos entity.Position, player entity.Player) PlayResult {
	if !player.IsValid() {
		return PlayResult{Outcome: InvalidPlayer, Board: board}
	}

	if !board.IsEmpty(pos) {
		return PlayResult{Outcome: Occupied, Board: board}
	}

	return PlayResult{Outcome: Applied, Board: SetCell(board, pos, player)}
}
