package gomoku

import (
	"testing"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWinLines(t *testing.T) {
	t.Run("Counts per direction", func(t *testing.T) {
		// 15 rows * 11 starts, twice, plus 11 * 11 starts for each diagonal
		assert.Len(t, WinLines, 165+165+121+121)
	})

	t.Run("Enumeration order", func(t *testing.T) {
		assert.Equal(t, Line{0, 1, 2, 3, 4}, WinLines[0])
		assert.Equal(t, Line{0, 15, 30, 45, 60}, WinLines[165])
		assert.Equal(t, Line{0, 16, 32, 48, 64}, WinLines[330])
		assert.Equal(t, Line{60, 46, 32, 18, 4}, WinLines[451])
	})

	t.Run("Every line stays on the board and is contiguous", func(t *testing.T) {
		for _, line := range WinLines {
			for k, index := range line {
				require.True(t, entity.IsValidCell(index), "line %v", line)

				if k == 0 {
					continue
				}

				prevRow, prevCol := entity.CellPosition(line[k-1])
				row, col := entity.CellPosition(index)
				assert.LessOrEqual(t, abs(row-prevRow), 1, "line %v", line)
				assert.LessOrEqual(t, abs(col-prevCol), 1, "line %v", line)
			}
		}
	})
}

func TestDetectWinner(t *testing.T) {
	t.Run("Every embedded line wins for either mark", func(t *testing.T) {
		for _, mark := range []entity.Mark{entity.MarkX, entity.MarkO} {
			for _, line := range WinLines {
				// Given: a board holding only this line
				board := entity.EmptyBoard()
				for _, index := range line {
					board[index] = mark
				}

				// When: detecting the winner
				winner, ok := DetectWinner(board)

				// Then: the line's mark wins
				require.True(t, ok, "line %v", line)
				require.Equal(t, mark, winner, "line %v", line)
			}
		}
	})

	t.Run("Empty board has no winner", func(t *testing.T) {
		winner, ok := DetectWinner(entity.EmptyBoard())

		assert.False(t, ok)
		assert.Equal(t, entity.Empty, winner)
	})

	t.Run("Four in a row is not enough", func(t *testing.T) {
		// Given: four X in each direction
		board := entity.EmptyBoard()
		for k := 0; k < 4; k++ {
			board[entity.CellIndex(0, k)] = entity.MarkX
			board[entity.CellIndex(2+k, 14)] = entity.MarkX
			board[entity.CellIndex(5+k, 5+k)] = entity.MarkX
			board[entity.CellIndex(14-k, k)] = entity.MarkX
		}

		// When: detecting the winner
		_, ok := DetectWinner(board)

		// Then: nobody wins
		assert.False(t, ok)
	})

	t.Run("Broken line does not win", func(t *testing.T) {
		// Given: X X X O X X across a row
		board := entity.EmptyBoard()
		for col, mark := range []entity.Mark{entity.MarkX, entity.MarkX, entity.MarkX, entity.MarkO, entity.MarkX, entity.MarkX} {
			board[entity.CellIndex(7, col)] = mark
		}

		_, ok := DetectWinner(board)

		assert.False(t, ok)
	})

	t.Run("Runs do not wrap around rows", func(t *testing.T) {
		// Given: the last three cells of row 0 and the first two of row 1
		board := entity.EmptyBoard()
		for _, index := range []int{12, 13, 14, 15, 16} {
			board[index] = entity.MarkO
		}

		_, ok := DetectWinner(board)

		assert.False(t, ok)
	})

	t.Run("Full board without five in a row", func(t *testing.T) {
		// Given: a full board patterned so no line has five equal marks
		board := entity.EmptyBoard()
		for row := 0; row < entity.BoardSize; row++ {
			for col := 0; col < entity.BoardSize; col++ {
				board[entity.CellIndex(row, col)] = stripeMark(row, col)
			}
		}

		// When: detecting the winner
		_, ok := DetectWinner(board)

		// Then: there is none, draws are not detected
		assert.False(t, ok)
	})

	t.Run("Longer runs still win", func(t *testing.T) {
		board := entity.EmptyBoard()
		for row := 3; row < 10; row++ {
			board[entity.CellIndex(row, 9)] = entity.MarkO
		}

		winner, ok := DetectWinner(board)

		require.True(t, ok)
		assert.Equal(t, entity.MarkO, winner)
	})
}

func TestWinningLine(t *testing.T) {
	t.Run("Returns the first line in scan order", func(t *testing.T) {
		// Given: a vertical and a horizontal run of X
		board := entity.EmptyBoard()
		for k := 0; k < 5; k++ {
			board[entity.CellIndex(k, 0)] = entity.MarkX
			board[entity.CellIndex(10, 5+k)] = entity.MarkX
		}

		// When: finding the winning line
		line, ok := WinningLine(board)

		// Then: the horizontal line comes first
		require.True(t, ok)
		assert.Equal(t, Line{155, 156, 157, 158, 159}, line)
	})

	t.Run("Anti-diagonal", func(t *testing.T) {
		board := entity.EmptyBoard()
		for k := 0; k < 5; k++ {
			board[entity.CellIndex(14-k, 10+k)] = entity.MarkO
		}

		line, ok := WinningLine(board)

		require.True(t, ok)
		assert.Equal(t, Line{220, 206, 192, 178, 164}, line)
	})
}

// stripeMark fills the board with 2x2 checkered blocks whose phase flips every four rows,
// which never lines up five equal marks.
func stripeMark(row, col int) entity.Mark {
	if ((row/2)+(col/2)+(row/4))%2 == 0 {
		return entity.MarkX
	}
	return entity.MarkO
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
