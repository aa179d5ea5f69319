package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

const invalidNumberMessage = "Input is not a valid number"

// Terminal reads cells from a line-based input and prints the game to an output.
type Terminal struct {
	logger *slog.Logger

	scanner *bufio.Scanner
	out     io.Writer
}

func New(logger *slog.Logger, in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		logger:  logger.With("component", "terminal"),
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ReadCell prompts until the player enters a number in [1, cells] and returns it as a zero-based index.
func (that *Terminal) ReadCell(ctx context.Context, mark entity.Mark, cells int) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		if _, err := fmt.Fprintf(that.out, "Player %s, enter a cell (1-%d): ", mark, cells); err != nil {
			return 0, fmt.Errorf("failed to write prompt: %w", err)
		}

		line, err := that.readLine()
		if err != nil {
			return 0, err
		}

		cell, err := parseCell(line, cells)
		if err != nil {
			that.logger.Debug("rejected input", "input", line, "error", err)

			if err = that.Notify(invalidNumberMessage); err != nil {
				return 0, err
			}

			continue
		}

		return cell - 1, nil
	}
}

func (that *Terminal) ShowBoard(board *entity.Board) error {
	if _, err := fmt.Fprintf(that.out, "%s\n\n", board); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

func (that *Terminal) Notify(message string) error {
	if _, err := fmt.Fprintln(that.out, message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Terminal) readLine() (string, error) {
	if that.scanner.Scan() {
		return that.scanner.Text(), nil
	}

	if err := that.scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return "", fmt.Errorf("failed to read input: %w", io.ErrUnexpectedEOF)
}

// parseCell - parses a one-based cell number and checks it lies in [1, cells].
func parseCell(line string, cells int) (int, error) {
	cell, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", apperror.ErrInvalidNumber, err)
	}

	if cell < 1 || cell > cells {
		return 0, fmt.Errorf("%w: %d is out of range", apperror.ErrInvalidNumber, cell)
	}

	return cell, nil
}
