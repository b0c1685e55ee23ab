package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tiptaptoe/internal/apperror"
	"github.com/rocketscienceinc/tiptaptoe/internal/entity"
)

// NewGame - returns the initial state: an empty board, in progress.
func NewGame() entity.GameState {
	return entity.NewGameState(entity.EmptyBoard())
}

// Advance - plays one call of the game.
//
// The win check looks at the board as it stands before this call's move, for the
// acting player. A line completed by a move is therefore reported by the next call
// that player makes, and that call's position is not played.
//
// On error, including a player that is neither O nor X, the input state is returned
// as is.
func Advance(state entity.GameState, pos entity.Position, player entity.Player) (entity.GameState, error) {
	if state.IsFinished() {
		return state, fmt.Errorf("%w: %s won", apperror.ErrGameFinished, state.Winner)
	}

	if !player.IsValid() {
		return state, fmt.Errorf("%w: %d", apperror.ErrUnknownPlayer, player)
	}

	if AnyWin(state.Board, player) {
		return entity.GameState{
			Board:  state.Board,
			Status: entity.StatusWon,
			Winner: player,
		}, nil
	}

	result := Play(state.Board, pos, player)
	if err := result.Err(); err != nil {
		return state, fmt.Errorf("invalid turn %s at %s: %w", player, pos, err)
	}

	return entity.NewGameState(result.Board), nil
}

// GameController - NewGame and Advance as methods, for callers that take the
// controller as a dependency.
type GameController struct{}

func NewGameController() *GameController {
	return &GameController{}
}

func (that *GameController) NewGame() entity.GameState {
	return NewGame()
}

func (that *GameController) Advance(state entity.GameState, pos entity.Position, player entity.Player) (entity.GameState, error) {
	return Advance(state, pos, player)
}
