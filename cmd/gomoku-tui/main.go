package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/gomoku-backend/internal/pkg"
	"github.com/rocketscienceinc/gomoku-backend/internal/tui"
)

func main() {
	logPath := flag.String("log", "", "write JSON logs to this file")
	flag.Parse()

	logger, closeLog, err := initLogger(*logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}

	err = run(logger)
	if err != nil {
		logger.Error("terminal client failed", "error", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}

	closeLog()

	if err != nil {
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}

	if err = screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	view := tui.New(logger, pkg.GenerateGameID)
	view.Draw(screen)

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if !view.HandleKey(ev) {
				return nil
			}
		case nil:
			return nil
		}

		view.Draw(screen)
	}
}

// the screen owns stdout, so logs go to a file or nowhere.
func initLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewJSONHandler(io.Discard, nil)), func() {}, nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}

	logger := slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return logger, func() { _ = file.Close() }, nil
}
