package gomoku

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

var (
	ErrInvalidCell = errors.New("invalid cell index")
	ErrInvalidMark = errors.New("invalid mark")
)

// ApplyMove returns a copy of board with mark placed at index.
// The input board is never modified.
func ApplyMove(board entity.Board, index int, mark entity.Mark) (entity.Board, error) {
	if err := validateMove(board, index, mark); err != nil {
		return board, err
	}

	board[index] = mark

	return board, nil
}

// validateMove - checks if the move is valid.
func validateMove(board entity.Board, index int, mark entity.Mark) error {
	if !entity.IsValidCell(index) {
		return fmt.Errorf("%w: cell %d", ErrInvalidCell, index)
	}

	if mark != entity.MarkX && mark != entity.MarkO {
		return fmt.Errorf("%w: %d", ErrInvalidMark, mark)
	}

	if _, decided := DetectWinner(board); decided {
		return apperror.ErrGameFinished
	}

	if board[index] != entity.Empty {
		return apperror.ErrCellOccupied
	}

	return nil
}

// IsRejection reports whether err is a move the player may simply not make.
// Such moves are ignored without telling the player.
func IsRejection(err error) bool {
	return errors.Is(err, apperror.ErrGameFinished) || errors.Is(err, apperror.ErrCellOccupied)
}

// ActivateCell plays the active mark at index on the current board.
// It reports whether the game changed; rejected moves return false and no error.
func ActivateCell(game *entity.Game, index int) (bool, error) {
	next, err := ApplyMove(game.Current(), index, game.ActiveMark())
	if IsRejection(err) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("invalid turn: %w", err)
	}

	game.Play(next)

	return true, nil
}
