package entity

import (
	"errors"
	"fmt"
)

const (
	BoardSize  = 15
	BoardCells = BoardSize * BoardSize
)

const (
	Empty Mark = iota
	MarkX
	MarkO
)

const (
	PlayerX   = "X"
	PlayerO   = "O"
	EmptyCell = ""
)

var ErrUnknownMark = errors.New("unknown mark")

// Mark is the content of a single cell.
type Mark uint8

func (that Mark) String() string {
	switch that {
	case MarkX:
		return PlayerX
	case MarkO:
		return PlayerO
	default:
		return EmptyCell
	}
}

func (that Mark) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Mark) UnmarshalText(text []byte) error {
	switch string(text) {
	case PlayerX:
		*that = MarkX
	case PlayerO:
		*that = MarkO
	case EmptyCell:
		*that = Empty
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMark, text)
	}

	return nil
}

// Board is one snapshot of the grid in row-major order.
// It is an array, so assigning or passing it copies every cell.
type Board [BoardCells]Mark

// EmptyBoard returns a board with every cell empty.
func EmptyBoard() Board {
	return Board{}
}

// CellIndex converts a row/column pair to a board index.
func CellIndex(row, col int) int {
	return row*BoardSize + col
}

// CellPosition converts a board index to its row/column pair.
func CellPosition(index int) (int, int) {
	return index / BoardSize, index % BoardSize
}

func IsValidCell(index int) bool {
	return index >= 0 && index < BoardCells
}

func (that Board) IsEmpty() bool {
	return that == Board{}
}

// Labels returns the text of every cell, "" for empty ones.
func (that Board) Labels() []string {
	labels := make([]string, len(that))
	for i, mark := range that {
		labels[i] = mark.String()
	}

	return labels
}
