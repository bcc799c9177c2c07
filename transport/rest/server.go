package rest

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

//go:embed web
var webFiles embed.FS

type uGame interface {
	GetGame(ctx context.Context, id string) (*entity.Game, error)
}

type Server struct {
	logger     *slog.Logger
	uGame      uGame
	socketPort string
}

func New(logger *slog.Logger, uGame uGame, socketPort string) *Server {
	return &Server{
		logger:     logger.With("component", "rest"),
		uGame:      uGame,
		socketPort: socketPort,
	}
}

// Handler returns the routes of the HTTP API and the board page.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", pingHandler)
	mux.HandleFunc("GET /api/config", that.getClientConfig)
	mux.HandleFunc("GET /api/games/{id}", that.getGame)

	static, err := fs.Sub(webFiles, "web")
	if err != nil {
		panic(fmt.Errorf("embedded web files: %w", err))
	}
	mux.Handle("GET /", http.FileServerFS(static))

	return mux
}

// Start - starts HTTP server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
