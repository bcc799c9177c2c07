package gomoku

import "github.com/rocketscienceinc/gomoku-backend/internal/entity"

const LineLength = 5

// Line is a run of LineLength consecutive cell indexes.
type Line [LineLength]int

// WinLines lists every line on the board in scan order:
// horizontal, vertical, diagonal down-right, diagonal up-right.
var WinLines = buildWinLines(entity.BoardSize)

func buildWinLines(size int) []Line {
	lines := make([]Line, 0, 4*size*size)

	// horizontal
	for i := 0; i < size; i++ {
		for j := 0; j <= size-LineLength; j++ {
			lines = append(lines, lineFrom(size, i, j, 0, 1))
		}
	}

	// vertical
	for i := 0; i <= size-LineLength; i++ {
		for j := 0; j < size; j++ {
			lines = append(lines, lineFrom(size, i, j, 1, 0))
		}
	}

	// diagonal, top-left to bottom-right
	for i := 0; i <= size-LineLength; i++ {
		for j := 0; j <= size-LineLength; j++ {
			lines = append(lines, lineFrom(size, i, j, 1, 1))
		}
	}

	// diagonal, bottom-left to top-right
	for i := LineLength - 1; i < size; i++ {
		for j := 0; j <= size-LineLength; j++ {
			lines = append(lines, lineFrom(size, i, j, -1, 1))
		}
	}

	return lines
}

func lineFrom(size, row, col, deltaRow, deltaCol int) Line {
	var line Line
	for k := range line {
		line[k] = (row+k*deltaRow)*size + col + k*deltaCol
	}
	return line
}

// DetectWinner returns the mark holding the first complete line, if any.
func DetectWinner(board entity.Board) (entity.Mark, bool) {
	line, ok := WinningLine(board)
	if !ok {
		return entity.Empty, false
	}

	return board[line[0]], true
}

// WinningLine returns the first line whose cells all hold the same non-empty mark.
func WinningLine(board entity.Board) (Line, bool) {
	for _, line := range WinLines {
		first := board[line[0]]
		if first == entity.Empty {
			continue
		}

		if isComplete(board, line, first) {
			return line, true
		}
	}

	return Line{}, false
}

func isComplete(board entity.Board, line Line, mark entity.Mark) bool {
	for _, index := range line[1:] {
		if board[index] != mark {
			return false
		}
	}
	return true
}
