package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tiptaptoe/internal/config"
	"github.com/rocketscienceinc/tiptaptoe/internal/display"
	"github.com/rocketscienceinc/tiptaptoe/internal/tictactoe"
	"github.com/rocketscienceinc/tiptaptoe/internal/usecase"
)

// RunApp - replays the configured game and prints the final board.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, display.NewRenderer(os.Stdout, !conf.NoColor))
}

// Run - replays conf's moves and prints the resulting board with renderer.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, renderer *display.Renderer) error {
	log := logger.With("component", "app")

	moves, err := conf.ScriptedMoves()
	if err != nil {
		return fmt.Errorf("invalid script: %w", err)
	}

	replayer := usecase.NewGameReplayer(logger, tictactoe.NewGameController())

	report, err := replayer.Replay(ctx, moves)
	if err != nil {
		return fmt.Errorf("replay %s failed: %w", report.ID, err)
	}

	log.Info("Game replayed",
		"replayID", report.ID,
		"status", report.State.Status,
		"applied", report.Applied,
		"skipped", report.Skipped,
	)

	if report.State.IsFinished() {
		log.Info("Game won", "winner", report.State.Winner)
	}

	if err = renderer.Print(report.State.Board); err != nil {
		return fmt.Errorf("could not print board: %w", err)
	}

	return nil
}
