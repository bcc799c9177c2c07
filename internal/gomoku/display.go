package gomoku

import (
	"strconv"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const (
	gameStartLabel = "Go to game start"
	moveLabel      = "Go to move #"

	winnerStatus     = "Winner: "
	nextPlayerStatus = "Next player: "
)

// DisplayModel is everything a view needs to draw a game.
// It is rebuilt from the game on every call and never stored.
type DisplayModel struct {
	ID            string   `json:"id"`
	Cells         []string `json:"cells"`
	Status        string   `json:"status"`
	HistoryLabels []string `json:"history_labels"`
	CurrentMove   int      `json:"current_move"`
	NextPlayer    string   `json:"next_player,omitempty"`
	Winner        string   `json:"winner,omitempty"`
	WinningLine   []int    `json:"winning_line,omitempty"`
}

// Winner returns the winner on the current board, if any.
func Winner(game *entity.Game) (entity.Mark, bool) {
	return DetectWinner(game.Current())
}

func Status(game *entity.Game) string {
	if winner, ok := Winner(game); ok {
		return winnerStatus + winner.String()
	}

	return nextPlayerStatus + game.ActiveMark().String()
}

// HistoryLabels returns one label per history entry.
func HistoryLabels(game *entity.Game) []string {
	labels := make([]string, game.Moves())
	for move := range labels {
		labels[move] = historyLabel(move)
	}

	return labels
}

func historyLabel(move int) string {
	if move == 0 {
		return gameStartLabel
	}

	return moveLabel + strconv.Itoa(move)
}

func BuildDisplayModel(game *entity.Game) DisplayModel {
	current := game.Current()

	model := DisplayModel{
		ID:            game.ID,
		Cells:         current.Labels(),
		Status:        Status(game),
		HistoryLabels: HistoryLabels(game),
		CurrentMove:   game.CurrentMove,
	}

	if line, ok := WinningLine(current); ok {
		model.Winner = current[line[0]].String()
		model.WinningLine = line[:]
	} else {
		model.NextPlayer = game.ActiveMark().String()
	}

	return model
}
