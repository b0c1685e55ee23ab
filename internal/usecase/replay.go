package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tiptaptoe/internal/entity"
)

type gameController interface {
	NewGame() entity.GameState
	Advance(state entity.GameState, pos entity.Position, player entity.Player) (entity.GameState, error)
}

// ReplayReport - outcome of running a scripted game.
type ReplayReport struct {
	ID    string
	State entity.GameState

	// Applied counts moves that were placed on the board.
	Applied int
	// Skipped counts moves that were not played because the game had been won,
	// including the call that surfaced the win.
	Skipped int
}

type GameReplayer struct {
	logger     *slog.Logger
	controller gameController
}

func NewGameReplayer(logger *slog.Logger, controller gameController) *GameReplayer {
	return &GameReplayer{
		logger:     logger.With("component", "replayer"),
		controller: controller,
	}
}

// Replay - threads a new game through moves, one Advance call per move. It stops at the
// first win or at the first rejected move; on rejection the report holds the last good
// state and the returned error wraps the rejection.
func (that *GameReplayer) Replay(ctx context.Context, moves []entity.Move) (*ReplayReport, error) {
	report := &ReplayReport{
		ID:    uuid.NewString(),
		State: that.controller.NewGame(),
	}

	log := that.logger.With("method", "Replay", "replayID", report.ID)

	for i, move := range moves {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("replay stopped before move %d: %w", i, err)
		}

		next, err := that.controller.Advance(report.State, move.Position, move.Player)
		if err != nil {
			log.Warn("move rejected", "move", i, "position", move.Position, "player", move.Player, "error", err)
			return report, fmt.Errorf("failed move %d: %w", i, err)
		}

		report.State = next

		if next.IsFinished() {
			report.Skipped = len(moves) - i
			log.Info("game won", "winner", next.Winner, "skipped", report.Skipped)
			return report, nil
		}

		report.Applied++
		log.Debug("move applied", "move", i, "position", move.Position, "player", move.Player, "board", next.Board.String())
	}

	log.Info("replay finished", "applied", report.Applied, "status", report.State.Status)

	return report, nil
}
