package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tiptaptoe/internal/apperror"
	"github.com/rocketscienceinc/tiptaptoe/internal/entity"
	"github.com/rocketscienceinc/tiptaptoe/internal/tictactoe"
	"github.com/rocketscienceinc/tiptaptoe/testing/suite"
)

var errControllerDown = errors.New("controller down")

func move(t *testing.T, row, col int, player entity.Player) entity.Move {
	t.Helper()

	pos, err := entity.ParsePosition(row, col)
	require.NoError(t, err)

	return entity.Move{Position: pos, Player: player}
}

func openingMoves(t *testing.T) []entity.Move {
	t.Helper()

	return []entity.Move{
		move(t, 0, 0, entity.PlayerO),
		move(t, 1, 0, entity.PlayerX),
		move(t, 0, 1, entity.PlayerO),
		move(t, 1, 1, entity.PlayerX),
		move(t, 0, 2, entity.PlayerO),
	}
}

// failingController rejects every move after the first n.
type failingController struct {
	tictactoe.GameController
	allowed int
}

func (that *failingController) Advance(state entity.GameState, pos entity.Position, player entity.Player) (entity.GameState, error) {
	if that.allowed == 0 {
		return state, errControllerDown
	}
	that.allowed--

	return tictactoe.Advance(state, pos, player)
}

func TestGameReplayer_Replay(t *testing.T) {
	t.Run("Plays the five-move opening", func(t *testing.T) {
		ctx, st := suite.New(t)
		replayer := NewGameReplayer(st.Logger, tictactoe.NewGameController())

		// When: replaying the opening
		report, err := replayer.Replay(ctx, openingMoves(t))

		// Then: all moves are applied and O's row is not yet reported
		require.NoError(t, err)
		assert.NotEmpty(t, report.ID)
		assert.Equal(t, 5, report.Applied)
		assert.Equal(t, 0, report.Skipped)
		assert.True(t, report.State.IsInProgress())

		expected := entity.Board{
			{entity.CellO, entity.CellO, entity.CellO},
			{entity.CellX, entity.CellX, entity.CellEmpty},
		}
		assert.Equal(t, expected, report.State.Board)
	})

	t.Run("Stops at the call that surfaces the win", func(t *testing.T) {
		ctx, st := suite.New(t)
		replayer := NewGameReplayer(st.Logger, tictactoe.NewGameController())

		// Given: the opening followed by two more O calls
		moves := append(openingMoves(t), move(t, 2, 2, entity.PlayerO), move(t, 2, 1, entity.PlayerX))

		// When: replaying
		report, err := replayer.Replay(ctx, moves)

		// Then: O wins on the sixth call and neither trailing move is played
		require.NoError(t, err)
		assert.Equal(t, entity.StatusWon, report.State.Status)
		assert.Equal(t, entity.PlayerO, report.State.Winner)
		assert.Equal(t, 5, report.Applied)
		assert.Equal(t, 2, report.Skipped)
		assert.True(t, report.State.Board.IsEmpty(entity.At(entity.Index2, entity.Index2)))
	})

	t.Run("Stops at an occupied cell", func(t *testing.T) {
		ctx, st := suite.New(t)
		replayer := NewGameReplayer(st.Logger, tictactoe.NewGameController())

		// Given: X plays on O's cell
		moves := []entity.Move{
			move(t, 0, 0, entity.PlayerO),
			move(t, 0, 0, entity.PlayerX),
			move(t, 1, 1, entity.PlayerX),
		}

		// When: replaying
		report, err := replayer.Replay(ctx, moves)

		// Then: the error wraps ErrCellOccupied and the board holds only the first move
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Contains(t, err.Error(), "move 1")
		assert.Equal(t, 1, report.Applied)
		assert.Equal(t, entity.Board{{entity.CellO}}, report.State.Board)
	})

	t.Run("Propagates controller errors", func(t *testing.T) {
		ctx, st := suite.New(t)
		replayer := NewGameReplayer(st.Logger, &failingController{allowed: 2})

		// When: the controller fails on the third move
		report, err := replayer.Replay(ctx, openingMoves(t))

		// Then: the error is returned with the state after two moves
		require.ErrorIs(t, err, errControllerDown)
		assert.Equal(t, 2, report.Applied)
	})

	t.Run("Stops when the context is canceled", func(t *testing.T) {
		ctx, st := suite.New(t)
		replayer := NewGameReplayer(st.Logger, tictactoe.NewGameController())

		ctx, cancel := context.WithCancel(ctx)
		cancel()

		// When: replaying with a canceled context
		report, err := replayer.Replay(ctx, openingMoves(t))

		// Then: nothing is played
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, report.Applied)
		assert.Equal(t, tictactoe.NewGame(), report.State)
	})

	t.Run("Empty script", func(t *testing.T) {
		ctx, st := suite.New(t)
		replayer := NewGameReplayer(st.Logger, tictactoe.NewGameController())

		report, err := replayer.Replay(ctx, nil)

		require.NoError(t, err)
		assert.Equal(t, tictactoe.NewGame(), report.State)
	})
}
