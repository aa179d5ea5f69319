package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

const cellTakenMessage = "That cell is already taken"

type terminal interface {
	ReadCell(ctx context.Context, mark entity.Mark, cells int) (int, error)
	ShowBoard(board *entity.Board) error
	Notify(message string) error
}

type GameController struct {
	logger   *slog.Logger
	terminal terminal
}

func NewGameController(logger *slog.Logger, terminal terminal) *GameController {
	return &GameController{
		logger:   logger.With("component", "game_controller"),
		terminal: terminal,
	}
}

// Play runs the game until somebody wins or the board is full.
func (that *GameController) Play(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("method", "Play")

	for !game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("game interrupted: %w", err)
		}

		if err := that.terminal.ShowBoard(game.Board); err != nil {
			return fmt.Errorf("failed to show board: %w", err)
		}

		if err := that.makeTurn(ctx, game); err != nil {
			return err
		}
	}

	if err := that.terminal.ShowBoard(game.Board); err != nil {
		return fmt.Errorf("failed to show board: %w", err)
	}

	log.Info("game finished", "winner", game.Winner.String(), "draw", game.IsDraw())

	if err := that.terminal.Notify(game.Result()); err != nil {
		return fmt.Errorf("failed to announce result: %w", err)
	}

	return nil
}

// makeTurn - reads cells until the current player picks a free one.
func (that *GameController) makeTurn(ctx context.Context, game *entity.Game) error {
	for {
		mark := game.Turn

		cell, err := that.terminal.ReadCell(ctx, mark, game.Board.Cells())
		if err != nil {
			return fmt.Errorf("failed to read cell: %w", err)
		}

		err = game.MakeTurn(cell)
		if errors.Is(err, apperror.ErrCellOccupied) {
			that.logger.Debug("cell occupied", "mark", mark.String(), "cell", cell)

			if err = that.terminal.Notify(cellTakenMessage); err != nil {
				return fmt.Errorf("failed to notify player: %w", err)
			}

			continue
		}

		if err != nil {
			return fmt.Errorf("invalid turn: %w", err)
		}

		that.logger.Debug("turn made", "mark", mark.String(), "cell", cell)

		return nil
	}
}
