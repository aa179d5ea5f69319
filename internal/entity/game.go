package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Game is the state of a single game: the board, whose turn it is and how it ended.
type Game struct {
	Board  *Board
	Turn   Mark
	Winner Mark
	Status string
}

func NewGame(first Mark) *Game {
	return &Game{
		Board:  NewBoard(BoardSize),
		Turn:   first,
		Winner: Empty,
		Status: StatusOngoing,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == Empty
}

// MakeTurn places the current player's mark on cell and passes the turn on.
func (that *Game) MakeTurn(cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= that.Board.Cells() {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Board.At(cell) != Empty {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that.Board.Place(cell, that.Turn)
	that.UpdateGameState()

	if !that.IsFinished() {
		that.Turn = that.Turn.Opposite()
	}

	return nil
}

func (that *Game) UpdateGameState() {
	if winner := that.Board.Winner(); winner != Empty {
		that.Winner = winner
		that.Status = StatusFinished
		return
	}

	// the game will continue until all the squares are full
	if that.Board.IsFull() {
		that.Winner = Empty
		that.Status = StatusFinished
		return
	}

	that.Status = StatusOngoing
}

// Result - the closing line printed once the game is finished.
func (that *Game) Result() string {
	if that.Winner != Empty {
		return that.Winner.String() + " wins!"
	}

	return "It's a cat's game!"
}
