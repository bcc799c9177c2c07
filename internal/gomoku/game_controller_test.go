package gomoku

import (
	"testing"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyMove(t *testing.T) {
	t.Run("Places the mark on a copy", func(t *testing.T) {
		// Given: an empty board
		board := entity.EmptyBoard()

		// When: X plays the center
		next, err := ApplyMove(board, 112, entity.MarkX)

		// Then: only the new board holds the mark
		require.NoError(t, err)
		assert.Equal(t, entity.MarkX, next[112])
		assert.True(t, board.IsEmpty())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where cell 0 holds X
		board := entity.EmptyBoard()
		board[0] = entity.MarkX

		// When: O tries the same cell
		next, err := ApplyMove(board, 0, entity.MarkO)

		// Then: ErrCellOccupied is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, board, next)
	})

	t.Run("Error on move after win", func(t *testing.T) {
		// Given: a board where X already has five in a row
		board := entity.EmptyBoard()
		for i := 0; i < 5; i++ {
			board[i] = entity.MarkX
		}

		// When: O plays an empty cell
		_, err := ApplyMove(board, 100, entity.MarkO)

		// Then: ErrGameFinished is returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Rejection is idempotent", func(t *testing.T) {
		// Given: an occupied cell
		board := entity.EmptyBoard()
		board[3] = entity.MarkO

		for i := 0; i < 3; i++ {
			// When: the same move is tried again and again
			next, err := ApplyMove(board, 3, entity.MarkX)

			// Then: the same unchanged board comes back every time
			require.ErrorIs(t, err, apperror.ErrCellOccupied)
			assert.Equal(t, board, next)
		}
	})

	t.Run("Invalid cells", func(t *testing.T) {
		for _, cell := range []int{-1, entity.BoardCells, 1000} {
			_, err := ApplyMove(entity.EmptyBoard(), cell, entity.MarkX)
			assert.ErrorIs(t, err, ErrInvalidCell)
		}
	})

	t.Run("Empty mark", func(t *testing.T) {
		_, err := ApplyMove(entity.EmptyBoard(), 0, entity.Empty)
		assert.ErrorIs(t, err, ErrInvalidMark)
	})
}

func TestActivateCell(t *testing.T) {
	t.Run("Alternates marks", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123")

		// When: two cells are activated
		changed, err := ActivateCell(game, 0)
		require.NoError(t, err)
		require.True(t, changed)

		changed, err = ActivateCell(game, 1)
		require.NoError(t, err)
		require.True(t, changed)

		// Then: X and O were placed in turn
		assert.Equal(t, entity.MarkX, game.Current()[0])
		assert.Equal(t, entity.MarkO, game.Current()[1])
		assert.Equal(t, 2, game.CurrentMove)
		assert.Equal(t, entity.MarkX, game.ActiveMark())
	})

	t.Run("Second click on the same cell is a no-op", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123")

		// When: index 0 is activated twice in a row
		first, err := ActivateCell(game, 0)
		require.NoError(t, err)
		second, err := ActivateCell(game, 0)
		require.NoError(t, err)

		// Then: only one transition happened
		assert.True(t, first)
		assert.False(t, second)
		assert.Len(t, game.History, 2)
		assert.Equal(t, 1, game.CurrentMove)
	})

	t.Run("Clicks after a win are ignored", func(t *testing.T) {
		// Given: X has won along the first row
		game := playCells(t, 0, 15, 1, 16, 2, 17, 3, 18, 4)
		require.Equal(t, "Winner: X", Status(game))

		// When: O activates an empty cell
		changed, err := ActivateCell(game, 200)

		// Then: nothing changes
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Len(t, game.History, 10)
	})

	t.Run("Invalid cell is an error", func(t *testing.T) {
		game := entity.NewGame("123")

		changed, err := ActivateCell(game, -5)

		require.ErrorIs(t, err, ErrInvalidCell)
		assert.False(t, changed)
		assert.Len(t, game.History, 1)
	})

	t.Run("Playing after time travel discards the future", func(t *testing.T) {
		// Given: a game with four moves
		game := playCells(t, 0, 1, 2, 3)
		require.NoError(t, game.JumpTo(2))

		// When: a different cell is activated
		changed, err := ActivateCell(game, 50)

		// Then: the branch replaces moves 3 and 4
		require.NoError(t, err)
		require.True(t, changed)
		assert.Len(t, game.History, 4)
		assert.Equal(t, 3, game.CurrentMove)
		assert.Equal(t, entity.MarkX, game.Current()[50])
		assert.Equal(t, entity.Empty, game.Current()[2])
		assert.Equal(t, entity.Empty, game.Current()[3])
	})
}

// playCells activates cells in order and fails on any rejection.
func playCells(t *testing.T, cells ...int) *entity.Game {
	t.Helper()

	game := entity.NewGame("test")
	for _, cell := range cells {
		changed, err := ActivateCell(game, cell)
		require.NoError(t, err)
		require.True(t, changed, "cell %d", cell)
	}

	return game
}
