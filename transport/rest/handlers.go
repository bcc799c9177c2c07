package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
	"github.com/rocketscienceinc/gomoku-backend/internal/pkg"
)

type errorResponse struct {
	Error string `json:"error"`
}

// clientConfig tells the board page where the websocket server listens.
type clientConfig struct {
	SocketPort string `json:"socket_port"`
}

func (that *Server) getClientConfig(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, clientConfig{SocketPort: that.socketPort})
}

func (that *Server) getGame(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "getGame")

	id := r.PathValue("id")
	if !pkg.IsValidID(id) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "game not found"})
		return
	}

	game, err := that.uGame.GetGame(r.Context(), id)
	if errors.Is(err, apperror.ErrGameNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "game not found"})
		return
	}

	if err != nil {
		log.Error("failed to get game", "gameID", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
		return
	}

	writeJSON(w, http.StatusOK, gomoku.BuildDisplayModel(game))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}
