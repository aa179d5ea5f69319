package terminal

import (
	"io"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const prompt = "Player X, enter a cell (1-9): "

func TestTerminal_ReadCell(t *testing.T) {
	t.Run("Valid number", func(t *testing.T) {
		// Given: the player types 5
		ctx, st := suite.New(t, "5")
		term := New(st.Logger, st.Input, st.Output)

		// When: a cell is read
		cell, err := term.ReadCell(ctx, entity.First, 9)

		// Then: the zero-based center index is returned
		require.NoError(t, err)
		assert.Equal(t, 4, cell)
		assert.Equal(t, prompt, st.Output.String())
	})

	t.Run("Surrounding spaces are ignored", func(t *testing.T) {
		ctx, st := suite.New(t, "  9 ")
		term := New(st.Logger, st.Input, st.Output)

		cell, err := term.ReadCell(ctx, entity.First, 9)

		require.NoError(t, err)
		assert.Equal(t, 8, cell)
	})

	t.Run("Re-prompts on malformed and out of range input", func(t *testing.T) {
		// Given: garbage, zero and ten before a valid cell
		ctx, st := suite.New(t, "abc", "0", "10", "", "1")
		term := New(st.Logger, st.Input, st.Output)

		// When: a cell is read
		cell, err := term.ReadCell(ctx, entity.First, 9)

		// Then: every bad line is answered with the same message
		require.NoError(t, err)
		assert.Equal(t, 0, cell)

		retry := prompt + invalidNumberMessage + "\n"
		assert.Equal(t, strings.Repeat(retry, 4)+prompt, st.Output.String())
	})

	t.Run("Prompt names the current player", func(t *testing.T) {
		ctx, st := suite.New(t, "3")
		term := New(st.Logger, st.Input, st.Output)

		_, err := term.ReadCell(ctx, entity.Second, 9)

		require.NoError(t, err)
		assert.Equal(t, "Player O, enter a cell (1-9): ", st.Output.String())
	})

	t.Run("Closed input is an error", func(t *testing.T) {
		// Given: no input at all
		ctx, st := suite.New(t)
		term := New(st.Logger, st.Input, st.Output)

		// When: a cell is read
		_, err := term.ReadCell(ctx, entity.First, 9)

		// Then: the end of input is reported
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}

func TestTerminal_ShowBoard(t *testing.T) {
	_, st := suite.New(t)
	term := New(st.Logger, st.Input, st.Output)

	board := entity.NewBoard(entity.BoardSize)
	board.Place(0, entity.First)
	board.Place(4, entity.Second)

	require.NoError(t, term.ShowBoard(board))

	expected := "X| | \n" +
		"-+-+-\n" +
		" |O| \n" +
		"-+-+-\n" +
		" | | \n\n"
	assert.Equal(t, expected, st.Output.String())
}

func TestParseCell(t *testing.T) {
	cell, err := parseCell("7", 9)
	require.NoError(t, err)
	assert.Equal(t, 7, cell)

	_, err = parseCell("seven", 9)
	require.ErrorIs(t, err, apperror.ErrInvalidNumber)

	_, err = parseCell("-2", 9)
	require.ErrorIs(t, err, apperror.ErrInvalidNumber)
}
