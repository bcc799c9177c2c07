package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

var ErrCorruptedGame = errors.New("corrupted game")

// Game owns the move history of one session and the pointer to the displayed move.
// Everything else (status, winner, next mark) is derived from these two fields.
type Game struct {
	ID          string  `json:"id"`
	History     []Board `json:"history"`
	CurrentMove int     `json:"current_move"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:          id,
		History:     []Board{EmptyBoard()},
		CurrentMove: 0,
	}
}

// Current returns the board at the current move.
func (that *Game) Current() Board {
	return that.History[that.CurrentMove]
}

// ActiveMark returns the mark that plays next: X on even moves, O on odd.
func (that *Game) ActiveMark() Mark {
	return markAt(that.CurrentMove)
}

func markAt(move int) Mark {
	if move%2 == 0 {
		return MarkX
	}
	return MarkO
}

// Play drops every entry after the current move, appends next and points at it.
func (that *Game) Play(next Board) {
	history := make([]Board, that.CurrentMove+1, that.CurrentMove+2)
	copy(history, that.History[:that.CurrentMove+1])

	that.History = append(history, next)
	that.CurrentMove = len(that.History) - 1
}

// JumpTo moves the pointer without touching the history.
func (that *Game) JumpTo(move int) error {
	if move < 0 || move >= len(that.History) {
		return fmt.Errorf("%w: move %d of %d", apperror.ErrMoveOutOfRange, move, len(that.History))
	}

	that.CurrentMove = move

	return nil
}

// Moves returns the number of history entries, the initial empty board included.
func (that *Game) Moves() int {
	return len(that.History)
}

// Validate checks the invariants of a game restored from storage.
func (that *Game) Validate() error {
	if len(that.History) == 0 {
		return fmt.Errorf("%w: empty history", ErrCorruptedGame)
	}

	if !that.History[0].IsEmpty() {
		return fmt.Errorf("%w: first board is not empty", ErrCorruptedGame)
	}

	if that.CurrentMove < 0 || that.CurrentMove >= len(that.History) {
		return fmt.Errorf("%w: current move %d of %d", ErrCorruptedGame, that.CurrentMove, len(that.History))
	}

	for move := 1; move < len(that.History); move++ {
		if err := checkStep(that.History[move-1], that.History[move], markAt(move-1)); err != nil {
			return fmt.Errorf("%w: move %d: %w", ErrCorruptedGame, move, err)
		}
	}

	return nil
}

// checkStep reports whether next is prev with exactly one empty cell taken by mark.
func checkStep(prev, next Board, mark Mark) error {
	placed := -1

	for index := range prev {
		if prev[index] == next[index] {
			continue
		}

		if placed != -1 {
			return fmt.Errorf("cells %d and %d changed", placed, index)
		}

		if prev[index] != Empty || next[index] != mark {
			return fmt.Errorf("cell %d changed from %q to %q, want %q", index, prev[index], next[index], mark)
		}

		placed = index
	}

	if placed == -1 {
		return errors.New("no cell changed")
	}

	return nil
}
