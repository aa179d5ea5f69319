package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
)

// Mark is the occupant of a single cell.
type Mark uint8

const (
	Empty Mark = iota
	First
	Second
)

// Opposite returns the other player's mark. Empty stays Empty.
func (that Mark) Opposite() Mark {
	switch that {
	case First:
		return Second
	case Second:
		return First
	default:
		return Empty
	}
}

func (that Mark) String() string {
	switch that {
	case First:
		return "X"
	case Second:
		return "O"
	default:
		return " "
	}
}

// ParseMark - converts "X" or "O" into a player mark.
func ParseMark(s string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return First, nil
	case "O":
		return Second, nil
	}

	return Empty, fmt.Errorf("%w: %q", apperror.ErrUnknownMark, s)
}
