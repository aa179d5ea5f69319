package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/config"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-terminal/transport/terminal"
)

// RunApp - plays a single game on the given input and output.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	first, err := entity.ParseMark(conf.FirstMark)
	if err != nil {
		return fmt.Errorf("invalid first mark: %w", err)
	}

	term := terminal.New(logger, in, out)
	gameController := tictactoe.NewGameController(logger, term)
	game := entity.NewGame(first)

	log.Info("Starting game", "first", first.String(), "board_size", game.Board.Size())

	if err = gameController.Play(ctx, game); err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	return nil
}
