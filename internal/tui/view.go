// Package tui draws a gomoku game on a terminal screen and maps keys to game operations.
package tui

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

const (
	statusRow  = 0
	boardRow   = 2
	historyRow = boardRow + entity.BoardSize + 1
	helpRow    = historyRow + 2

	cellWidth = 2

	helpText = "arrows: move  enter/space: play  [ ]: history  n: new game  q: quit"
)

var (
	cursorStyle  = tcell.StyleDefault.Reverse(true)
	winningStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	markStyles   = map[entity.Mark]tcell.Style{
		entity.MarkX: tcell.StyleDefault.Foreground(tcell.ColorRed),
		entity.MarkO: tcell.StyleDefault.Foreground(tcell.ColorBlue),
	}
)

// View is a local game together with the cursor a player moves over the board.
type View struct {
	logger *slog.Logger
	newID  func() string

	game     *entity.Game
	row, col int
}

func New(logger *slog.Logger, newID func() string) *View {
	center := entity.BoardSize / 2

	return &View{
		logger: logger.With("component", "tui"),
		newID:  newID,
		game:   entity.NewGame(newID()),
		row:    center,
		col:    center,
	}
}

func (that *View) Game() *entity.Game {
	return that.game
}

// Cursor returns the index of the selected cell.
func (that *View) Cursor() int {
	return entity.CellIndex(that.row, that.col)
}

// HandleKey applies a key press and reports whether the view should keep running.
func (that *View) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		that.moveCursor(-1, 0)
	case tcell.KeyDown:
		that.moveCursor(1, 0)
	case tcell.KeyLeft:
		that.moveCursor(0, -1)
	case tcell.KeyRight:
		that.moveCursor(0, 1)
	case tcell.KeyEnter:
		that.activate()
	case tcell.KeyRune:
		return that.handleRune(ev.Rune())
	default:
	}

	return true
}

func (that *View) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case ' ':
		that.activate()
	case '[':
		that.jump(that.game.CurrentMove - 1)
	case ']':
		that.jump(that.game.CurrentMove + 1)
	case 'n':
		that.game = entity.NewGame(that.newID())
		that.logger.Info("new game started", "gameID", that.game.ID)
	}

	return true
}

func (that *View) moveCursor(dRow, dCol int) {
	that.row = clamp(that.row+dRow)
	that.col = clamp(that.col+dCol)
}

func (that *View) activate() {
	log := that.logger.With("method", "activate")

	changed, err := gomoku.ActivateCell(that.game, that.Cursor())
	if err != nil {
		log.Error("failed to play cell", "cell", that.Cursor(), "error", err)
		return
	}

	if !changed {
		return
	}

	if winner, ok := gomoku.Winner(that.game); ok {
		log.Info("game won", "gameID", that.game.ID, "winner", winner.String())
	}
}

// jump ignores moves outside the history so the bracket keys stop at both ends.
func (that *View) jump(move int) {
	if move < 0 || move >= that.game.Moves() {
		return
	}

	if err := that.game.JumpTo(move); err != nil {
		that.logger.Error("failed to jump", "move", move, "error", err)
	}
}

// Draw renders the status line, the board, the history position and the key help.
func (that *View) Draw(screen tcell.Screen) {
	screen.Clear()

	model := gomoku.BuildDisplayModel(that.game)
	current := that.game.Current()

	winning := make(map[int]bool, len(model.WinningLine))
	for _, cell := range model.WinningLine {
		winning[cell] = true
	}

	drawText(screen, 0, statusRow, tcell.StyleDefault.Bold(true), model.Status)

	for index, mark := range current {
		row, col := entity.CellPosition(index)

		label := '.'
		if mark != entity.Empty {
			label = []rune(mark.String())[0]
		}

		style := markStyles[mark]
		if winning[index] {
			style = winningStyle
		}
		if index == that.Cursor() {
			style = style.Reverse(true)
		}

		screen.SetContent(col*cellWidth, boardRow+row, label, nil, style)
	}

	drawText(screen, 0, historyRow, tcell.StyleDefault, fmt.Sprintf("%s (%d/%d)",
		model.HistoryLabels[model.CurrentMove], model.CurrentMove, len(model.HistoryLabels)-1))
	drawText(screen, 0, helpRow, tcell.StyleDefault.Dim(true), helpText)

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func clamp(value int) int {
	return max(0, min(value, entity.BoardSize-1))
}
